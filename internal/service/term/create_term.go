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

// CreateTerm creates a term and notifies listeners. If a listener fails,
// the persisted term is returned together with an error wrapping
// ErrListener.
func (s *Service) CreateTerm(ctx context.Context, input CreateTermInput) (*domain.Term, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	tax, err := s.taxonomies.GetByName(ctx, strings.TrimSpace(input.Taxonomy))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("taxonomy", "unknown taxonomy")
		}
		return nil, fmt.Errorf("get taxonomy: %w", err)
	}

	name := domain.NormalizeName(input.Name)
	slug := domain.Slugify(name)
	if input.Slug != nil {
		slug = domain.Slugify(*input.Slug)
	}
	var description string
	if input.Description != nil {
		description = strings.TrimSpace(*input.Description)
	}

	created, err := s.terms.Create(ctx, domain.Term{
		Taxonomy:    tax.Name,
		Name:        name,
		Slug:        slug,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.NewValidationError("slug", "already used in this taxonomy")
		}
		return nil, fmt.Errorf("create term: %w", err)
	}

	s.log.InfoContext(ctx, "term created",
		slog.Int64("user_id", userID),
		slog.Int64("term_id", created.ID),
		slog.String("taxonomy", created.Taxonomy),
	)

	ev := eventOf(created)
	if err := s.dispatch(ctx, "created", ev, func(l Listener) error {
		return l.TermCreated(ctx, ev)
	}); err != nil {
		return created, err
	}

	return created, nil
}
