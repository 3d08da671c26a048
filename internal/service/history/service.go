// Package history reads the audit trail written by the timestamps recorder
// and shapes it for API consumers: display-formatted times, positive user
// ids and newest-first history.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/termstamps/internal/domain"
)

type metaReader interface {
	GetSingle(ctx context.Context, termID int64, key string) (json.RawMessage, error)
	GetAll(ctx context.Context, termID int64, key string) ([]json.RawMessage, error)
}

type userLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// Record is an audit record prepared for display. Time is nil when the
// stored timestamp is missing or unparseable; UserID is nil when the stored
// id is missing or not a positive integer.
type Record struct {
	Time   *string
	UserID *int64
}

// Service provides read access to term audit history.
type Service struct {
	meta  metaReader
	users userLookup
	keys  domain.MetaKeys
	loc   *time.Location
	log   *slog.Logger
}

// NewService creates a history Service. loc is the timezone stored
// timestamps were written in; nil means UTC.
func NewService(log *slog.Logger, meta metaReader, users userLookup, keys domain.MetaKeys, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		meta:  meta,
		users: users,
		keys:  keys,
		loc:   loc,
		log:   log.With("service", "history"),
	}
}

// Created returns who created the term and when, or nil if nothing was
// recorded.
func (s *Service) Created(ctx context.Context, termID int64) (*Record, error) {
	return s.latest(ctx, termID, s.keys.CreatedTimestamp, s.keys.CreatedBy)
}

// LastModified returns who last modified the term and when, or nil if it
// was never modified.
func (s *Service) LastModified(ctx context.Context, termID int64) (*Record, error) {
	return s.latest(ctx, termID, s.keys.LastModifiedTimestamp, s.keys.LastModifiedBy)
}

// Modifications returns every recorded edit, newest first, or nil when
// there are none. Malformed entries keep their position with nil fields.
func (s *Service) Modifications(ctx context.Context, termID int64) ([]Record, error) {
	raws, err := s.meta.GetAll(ctx, termID, s.keys.Modifications)
	if err != nil {
		return nil, fmt.Errorf("history modifications of term %d: %w", termID, err)
	}
	if len(raws) == 0 {
		return nil, nil
	}

	records := make([]Record, len(raws))
	for i, raw := range raws {
		records[i] = decodeRecord(raw, s.loc)
		if records[i].Time == nil {
			s.log.DebugContext(ctx, "malformed modification entry",
				slog.Int64("term_id", termID), slog.Int("index", i))
		}
	}
	slices.Reverse(records)

	return records, nil
}

// UserRef resolves a recorded user id. Nil, non-positive and unknown ids
// resolve to nil without error.
func (s *Service) UserRef(ctx context.Context, userID *int64) (*domain.User, error) {
	if userID == nil || *userID <= 0 {
		return nil, nil
	}

	u, err := s.users.GetByID(ctx, *userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history user %d: %w", *userID, err)
	}
	return u, nil
}

func (s *Service) latest(ctx context.Context, termID int64, timeKey, userKey string) (*Record, error) {
	rawTime, err := s.meta.GetSingle(ctx, termID, timeKey)
	if err != nil {
		return nil, fmt.Errorf("history %s of term %d: %w", timeKey, termID, err)
	}
	rawUser, err := s.meta.GetSingle(ctx, termID, userKey)
	if err != nil {
		return nil, fmt.Errorf("history %s of term %d: %w", userKey, termID, err)
	}

	if rawTime == nil && rawUser == nil {
		return nil, nil
	}

	rec := &Record{UserID: decodeUserID(rawUser)}
	if ts, ok := decodeString(rawTime); ok {
		rec.Time = FormatTime(ts, s.loc)
	}
	return rec, nil
}
