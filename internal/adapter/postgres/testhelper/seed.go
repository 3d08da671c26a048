package testhelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/termstamps/internal/domain"
)

var seq atomic.Int64

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixNano()%1_000_000, seq.Add(1))
}

// SeedUser inserts a user with unique username and email.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	name := "Test User " + suffix
	user := domain.User{
		Username: "user-" + suffix,
		Name:     &name,
		Email:    "user-" + suffix + "@example.com",
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, name, email) VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		user.Username, user.Name, user.Email,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeedTerm inserts a term into the given seeded taxonomy ("category" or "post_tag").
func SeedTerm(t *testing.T, pool *pgxpool.Pool, taxonomy string) domain.Term {
	t.Helper()

	suffix := uniqueSuffix()
	term := domain.Term{
		Taxonomy: taxonomy,
		Name:     "Term " + suffix,
		Slug:     "term-" + suffix,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO terms (taxonomy, name, slug) VALUES ($1, $2, $3)
		 RETURNING id, term_taxonomy_id, description, created_at, updated_at`,
		term.Taxonomy, term.Name, term.Slug,
	).Scan(&term.ID, &term.TermTaxonomyID, &term.Description, &term.CreatedAt, &term.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTerm: %v", err)
	}

	return term
}

// SeedMeta inserts a raw meta row, bypassing repository semantics.
// value must be valid JSON.
func SeedMeta(t *testing.T, pool *pgxpool.Pool, termID int64, key, value string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO term_meta (term_id, meta_key, meta_value) VALUES ($1, $2, $3::jsonb)`,
		termID, key, value,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeta: %v", err)
	}
}
