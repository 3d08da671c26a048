// Package timestamps records who created and who last modified a term.
//
// Creation is captured once: created_by and created_timestamp are written
// with set-if-absent semantics. Every modification overwrites the
// last_modified_* keys and appends an AuditRecord to the modifications
// history. All writes of one event share a single user id and timestamp and
// run in one transaction.
package timestamps

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/pkg/ctxutil"
)

// Event names used in logs, spans and metric labels.
const (
	EventCreated  = "created"
	EventModified = "modified"
)

type metaStore interface {
	SetIfAbsent(ctx context.Context, termID int64, key string, value any) (bool, error)
	Set(ctx context.Context, termID int64, key string, value any) error
	Append(ctx context.Context, termID int64, key string, value any) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Recorder writes the audit trail for term lifecycle events.
type Recorder struct {
	meta    metaStore
	tx      txManager
	keys    domain.MetaKeys
	now     func() time.Time
	loc     *time.Location
	metrics *Metrics
	hook    RecordHook
	log     *slog.Logger
}

// RecordHook returns the value appended to the modifications history for
// one edit. It receives the record the recorder built and may return it
// unchanged, an enriched copy or any other JSON-encodable value. The
// last_modified_* keys are written from rec regardless.
type RecordHook func(ctx context.Context, rec domain.AuditRecord, termID int64, taxonomy string) any

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(r *Recorder) { r.now = now }
}

// WithLocation sets the timezone stored timestamps are written in.
// Defaults to UTC.
func WithLocation(loc *time.Location) Option {
	return func(r *Recorder) {
		if loc != nil {
			r.loc = loc
		}
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) Option {
	return func(r *Recorder) { r.metrics = m }
}

// WithRecordHook installs a hook that shapes each appended history entry.
func WithRecordHook(h RecordHook) Option {
	return func(r *Recorder) { r.hook = h }
}

// NewRecorder creates a Recorder writing under the given meta keys.
func NewRecorder(log *slog.Logger, meta metaStore, tx txManager, keys domain.MetaKeys, opts ...Option) *Recorder {
	r := &Recorder{
		meta: meta,
		tx:   tx,
		keys: keys,
		now:  time.Now,
		loc:  time.UTC,
		log:  log.With("service", "timestamps"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OnEntityCreated records the creator and creation time of a term.
// Repeated calls for the same term leave the first values in place.
func (r *Recorder) OnEntityCreated(ctx context.Context, termID int64, taxonomy string) (err error) {
	ctx, finish := r.begin(ctx, EventCreated, termID, taxonomy)
	defer func() { finish(err) }()

	userID := currentUser(ctx)
	stamp := r.stamp()

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.meta.SetIfAbsent(ctx, termID, r.keys.CreatedBy, userID); err != nil {
			return fmt.Errorf("set %s: %w", r.keys.CreatedBy, err)
		}
		if _, err := r.meta.SetIfAbsent(ctx, termID, r.keys.CreatedTimestamp, stamp); err != nil {
			return fmt.Errorf("set %s: %w", r.keys.CreatedTimestamp, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record creation of term %d: %w", termID, err)
	}

	return nil
}

// OnEntityModified records an edit: it overwrites the last-modified keys
// and appends the edit to the modifications history.
func (r *Recorder) OnEntityModified(ctx context.Context, termID int64, taxonomy string) (err error) {
	ctx, finish := r.begin(ctx, EventModified, termID, taxonomy)
	defer func() { finish(err) }()

	rec := domain.AuditRecord{
		UserID:    currentUser(ctx),
		Timestamp: r.stamp(),
	}

	var entry any = rec
	if r.hook != nil {
		entry = r.hook(ctx, rec, termID, taxonomy)
	}

	err = r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := r.meta.Set(ctx, termID, r.keys.LastModifiedBy, rec.UserID); err != nil {
			return fmt.Errorf("set %s: %w", r.keys.LastModifiedBy, err)
		}
		if err := r.meta.Set(ctx, termID, r.keys.LastModifiedTimestamp, rec.Timestamp); err != nil {
			return fmt.Errorf("set %s: %w", r.keys.LastModifiedTimestamp, err)
		}
		if err := r.meta.Append(ctx, termID, r.keys.Modifications, entry); err != nil {
			return fmt.Errorf("append %s: %w", r.keys.Modifications, err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("record modification of term %d: %w", termID, err)
	}

	return nil
}

// TermCreated implements the term service listener.
func (r *Recorder) TermCreated(ctx context.Context, ev domain.TermEvent) error {
	return r.OnEntityCreated(ctx, ev.TermID, ev.Taxonomy)
}

// TermEdited implements the term service listener.
func (r *Recorder) TermEdited(ctx context.Context, ev domain.TermEvent) error {
	return r.OnEntityModified(ctx, ev.TermID, ev.Taxonomy)
}

func (r *Recorder) stamp() string {
	return r.now().In(r.loc).Format(domain.StoreTimeLayout)
}

// begin opens a span and returns a finisher that ends it, records metrics
// and logs the outcome.
func (r *Recorder) begin(ctx context.Context, event string, termID int64, taxonomy string) (context.Context, func(error)) {
	start := time.Now()
	ctx, end := startSpan(ctx, "timestamps."+event, termID, taxonomy)

	return ctx, func(err error) {
		end(err)

		if r.metrics != nil {
			r.metrics.ObserveEvent(event, err, time.Since(start))
		}

		attrs := []any{
			slog.String("event", event),
			slog.Int64("term_id", termID),
			slog.String("taxonomy", taxonomy),
		}
		if err != nil {
			r.log.ErrorContext(ctx, "audit write failed", append(attrs, slog.String("error", err.Error()))...)
			return
		}
		r.log.DebugContext(ctx, "audit recorded", attrs...)
	}
}

// currentUser returns the acting user id, or 0 for an anonymous context.
func currentUser(ctx context.Context) int64 {
	id, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0
	}
	return id
}
