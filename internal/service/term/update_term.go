package term

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/pkg/ctxutil"
)

// UpdateTerm applies the provided fields and notifies listeners. Listener
// failures are reported the same way as in CreateTerm.
func (s *Service) UpdateTerm(ctx context.Context, input UpdateTermInput) (*domain.Term, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var params domain.TermUpdateParams
	if input.Name != nil {
		name := domain.NormalizeName(*input.Name)
		params.Name = &name
	}
	if input.Slug != nil {
		slug := domain.Slugify(*input.Slug)
		params.Slug = &slug
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		params.Description = &desc
	}

	updated, err := s.terms.Update(ctx, input.TermID, params)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", "already used in this taxonomy")
		}
		return nil, fmt.Errorf("update term: %w", err)
	}

	s.log.InfoContext(ctx, "term updated",
		slog.Int64("user_id", userID),
		slog.Int64("term_id", updated.ID),
	)

	ev := eventOf(updated)
	if err := s.dispatch(ctx, "edited", ev, func(l Listener) error {
		return l.TermEdited(ctx, ev)
	}); err != nil {
		return updated, err
	}

	return updated, nil
}
