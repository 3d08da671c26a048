// Package termmeta implements the term metadata store using PostgreSQL.
//
// Each (term_id, meta_key) pair maps to an ordered list of JSON values,
// ordered by meta_id. Single-value reads return the oldest row, so the first
// of two racing set-if-absent inserts wins.
package termmeta

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/termstamps/internal/adapter/postgres"
)

const table = "term_meta"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides term metadata persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new term meta repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// SetIfAbsent stores value under key unless the key already has a value.
// It reports whether a row was inserted.
func (r *Repo) SetIfAbsent(ctx context.Context, termID int64, key string, value any) (bool, error) {
	raw, err := encode(value)
	if err != nil {
		return false, fmt.Errorf("term_meta %d %s: %w", termID, key, err)
	}

	sel := squirrel.Select().
		Column(squirrel.Expr("?::bigint", termID)).
		Column(squirrel.Expr("?::text", key)).
		Column(squirrel.Expr("?::jsonb", raw)).
		Where("NOT EXISTS (SELECT 1 FROM term_meta WHERE term_id = ? AND meta_key = ?)", termID, key)

	sql, args, err := psql.Insert(table).
		Columns("term_id", "meta_key", "meta_value").
		Select(sel).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("term_meta build set-if-absent: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, table, termID)
	}

	return tag.RowsAffected() == 1, nil
}

// Set replaces every value stored under key with value.
func (r *Repo) Set(ctx context.Context, termID int64, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("term_meta %d %s: %w", termID, key, err)
	}

	sql, args, err := psql.Insert(table).
		Prefix("WITH removed AS (DELETE FROM term_meta WHERE term_id = ? AND meta_key = ?)", termID, key).
		Columns("term_id", "meta_key", "meta_value").
		Values(termID, key, squirrel.Expr("?::jsonb", raw)).
		ToSql()
	if err != nil {
		return fmt.Errorf("term_meta build set: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, table, termID)
	}

	return nil
}

// Append adds value to the end of the list stored under key.
func (r *Repo) Append(ctx context.Context, termID int64, key string, value any) error {
	raw, err := encode(value)
	if err != nil {
		return fmt.Errorf("term_meta %d %s: %w", termID, key, err)
	}

	sql, args, err := psql.Insert(table).
		Columns("term_id", "meta_key", "meta_value").
		Values(termID, key, squirrel.Expr("?::jsonb", raw)).
		ToSql()
	if err != nil {
		return fmt.Errorf("term_meta build append: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, table, termID)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetSingle returns the oldest value stored under key, or nil if there is none.
func (r *Repo) GetSingle(ctx context.Context, termID int64, key string) (json.RawMessage, error) {
	sql, args, err := psql.Select("meta_value").
		From(table).
		Where(squirrel.Eq{"term_id": termID, "meta_key": key}).
		OrderBy("meta_id").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("term_meta build get: %w", err)
	}

	var raw []byte
	err = postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, table, termID)
	}

	return json.RawMessage(raw), nil
}

// GetAll returns every value stored under key, oldest first.
func (r *Repo) GetAll(ctx context.Context, termID int64, key string) ([]json.RawMessage, error) {
	sql, args, err := psql.Select("meta_value").
		From(table).
		Where(squirrel.Eq{"term_id": termID, "meta_key": key}).
		OrderBy("meta_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("term_meta build get all: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, table, termID)
	}

	values, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (json.RawMessage, error) {
		var raw []byte
		if err := row.Scan(&raw); err != nil {
			return nil, err
		}
		return json.RawMessage(raw), nil
	})
	if err != nil {
		return nil, postgres.MapError(err, table, termID)
	}

	if len(values) == 0 {
		return nil, nil
	}
	return values, nil
}

// encode marshals value to its JSON text. json.RawMessage values pass
// through unchanged.
func encode(value any) (string, error) {
	if raw, ok := value.(json.RawMessage); ok {
		if !json.Valid(raw) {
			return "", errors.New("invalid raw JSON value")
		}
		return string(raw), nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("marshal value: %w", err)
	}
	return string(b), nil
}
