// Package term implements the term store using PostgreSQL.
package term

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/termstamps/internal/adapter/postgres"
	"github.com/heartmarshall/termstamps/internal/domain"
)

const table = "terms"

var columns = []string{
	"id", "term_taxonomy_id", "taxonomy", "name", "slug", "description", "created_at", "updated_at",
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new term repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a term and returns it with generated ids and timestamps.
// A duplicate slug within the taxonomy maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, t domain.Term) (*domain.Term, error) {
	insert := psql.Insert(table).
		Columns("taxonomy", "name", "slug", "description").
		Values(t.Taxonomy, t.Name, t.Slug, t.Description).
		Suffix("RETURNING " + returning())

	return r.getOne(ctx, insert, 0)
}

// Update applies the non-nil fields of params and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id int64, params domain.TermUpdateParams) (*domain.Term, error) {
	update := psql.Update(table).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + returning())

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Slug != nil {
		update = update.Set("slug", *params.Slug)
	}
	if params.Description != nil {
		update = update.Set("description", *params.Description)
	}

	return r.getOne(ctx, update, id)
}

// GetByID returns a term by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	query := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	return r.getOne(ctx, query, id)
}

// List returns terms of a taxonomy ordered by id.
func (r *Repo) List(ctx context.Context, taxonomy string, limit, offset int) ([]domain.Term, error) {
	sql, args, err := psql.Select(columns...).
		From(table).
		Where(squirrel.Eq{"taxonomy": taxonomy}).
		OrderBy("id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list terms: %w", err)
	}

	var terms []domain.Term
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &terms, sql, args...); err != nil {
		return nil, fmt.Errorf("list terms %s: %w", taxonomy, err)
	}

	return terms, nil
}

func (r *Repo) getOne(ctx context.Context, q squirrel.Sqlizer, id int64) (*domain.Term, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build term query: %w", err)
	}

	var t domain.Term
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &t, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "term", id)
	}

	return &t, nil
}

func returning() string {
	return strings.Join(columns, ", ")
}
