package term

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/termstamps/internal/domain"
)

// GetTerm returns a term by id.
func (s *Service) GetTerm(ctx context.Context, id int64) (*domain.Term, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "must be positive")
	}

	t, err := s.terms.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get term: %w", err)
	}
	return t, nil
}

// ListTerms returns a page of terms in a taxonomy. A non-positive limit
// uses DefaultListLimit; larger limits are capped at MaxListLimit.
func (s *Service) ListTerms(ctx context.Context, taxonomy string, limit, offset int) ([]domain.Term, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	limit = min(limit, MaxListLimit)

	if _, err := s.taxonomies.GetByName(ctx, taxonomy); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("taxonomy", "unknown taxonomy")
		}
		return nil, fmt.Errorf("get taxonomy: %w", err)
	}

	terms, err := s.terms.List(ctx, taxonomy, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// ListTaxonomies returns every registered taxonomy.
func (s *Service) ListTaxonomies(ctx context.Context) ([]domain.Taxonomy, error) {
	out, err := s.taxonomies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list taxonomies: %w", err)
	}
	return out, nil
}
