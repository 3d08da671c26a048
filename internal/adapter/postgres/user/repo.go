// Package user implements read access to users using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/termstamps/internal/adapter/postgres"
	"github.com/heartmarshall/termstamps/internal/domain"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var base = psql.Select("id", "username", "name", "email", "created_at").From("users")

// Repo provides user lookups backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	sql, args, err := base.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u domain.User
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &u, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := base.Where(squirrel.Eq{"id": ids}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get users: %w", err)
	}

	var users []domain.User
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &users, sql, args...); err != nil {
		return nil, fmt.Errorf("get users by ids: %w", err)
	}
	return users, nil
}
