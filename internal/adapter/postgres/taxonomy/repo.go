// Package taxonomy implements read access to registered taxonomies.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/termstamps/internal/adapter/postgres"
	"github.com/heartmarshall/termstamps/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var base = psql.Select(
	"name", "label", "show_ui", "show_in_graphql", "graphql_single_name", "graphql_plural_name",
).From("taxonomies")

// Repo provides taxonomy lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new taxonomy repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// List returns all taxonomies ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Taxonomy, error) {
	sql, args, err := base.OrderBy("name").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list taxonomies: %w", err)
	}

	var out []domain.Taxonomy
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, sql, args...); err != nil {
		return nil, fmt.Errorf("list taxonomies: %w", err)
	}
	return out, nil
}

// GetByName returns the taxonomy with the given name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Taxonomy, error) {
	sql, args, err := base.Where(squirrel.Eq{"name": name}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get taxonomy: %w", err)
	}

	var t domain.Taxonomy
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("taxonomy %s: %w", name, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("taxonomy %s: %w", name, err)
	}
	return &t, nil
}
