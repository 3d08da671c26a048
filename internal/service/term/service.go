package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/termstamps/internal/domain"
)

type termRepo interface {
	Create(ctx context.Context, t domain.Term) (*domain.Term, error)
	Update(ctx context.Context, id int64, params domain.TermUpdateParams) (*domain.Term, error)
	GetByID(ctx context.Context, id int64) (*domain.Term, error)
	List(ctx context.Context, taxonomy string, limit, offset int) ([]domain.Term, error)
}

type taxonomyRepo interface {
	List(ctx context.Context) ([]domain.Taxonomy, error)
	GetByName(ctx context.Context, name string) (*domain.Taxonomy, error)
}

// Listener reacts to term lifecycle events. Listeners run after the term
// has been persisted, in registration order.
type Listener interface {
	TermCreated(ctx context.Context, ev domain.TermEvent) error
	TermEdited(ctx context.Context, ev domain.TermEvent) error
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// ErrListener marks errors returned by lifecycle listeners. The term the
// event was about has been persisted.
var ErrListener = errors.New("term listener failed")

// Service manages taxonomy terms and fires lifecycle events.
type Service struct {
	terms      termRepo
	taxonomies taxonomyRepo
	listeners  []Listener
	log        *slog.Logger
}

// NewService creates a new term Service.
func NewService(
	log *slog.Logger,
	terms termRepo,
	taxonomies taxonomyRepo,
	listeners ...Listener,
) *Service {
	return &Service{
		terms:      terms,
		taxonomies: taxonomies,
		listeners:  listeners,
		log:        log.With("service", "term"),
	}
}

// dispatch calls fn for every listener. All listeners run even if one
// fails; the failures are joined.
func (s *Service) dispatch(ctx context.Context, event string, ev domain.TermEvent, fn func(Listener) error) error {
	var errs []error
	for _, l := range s.listeners {
		if err := fn(l); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}

	err := errors.Join(errs...)
	s.log.ErrorContext(ctx, "term listener failed",
		slog.String("event", event),
		slog.Int64("term_id", ev.TermID),
		slog.String("error", err.Error()),
	)
	return fmt.Errorf("%w: %s term %d: %w", ErrListener, event, ev.TermID, err)
}

func eventOf(t *domain.Term) domain.TermEvent {
	return domain.TermEvent{
		TermID:         t.ID,
		TermTaxonomyID: t.TermTaxonomyID,
		Taxonomy:       t.Taxonomy,
	}
}
