// Package dataloader provides per-request DataLoaders that batch user
// lookups made while resolving audit records into single store calls.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/termstamps/internal/domain"
	"github.com/heartmarshall/termstamps/internal/transport/middleware"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// Repos holds the stores DataLoaders read from.
type Repos struct {
	User userRepo
}

// Loaders contains the per-request DataLoaders. Created per request via
// NewLoaders.
type Loaders struct {
	UsersByID *dataloader.Loader[int64, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given
// repositories. Must be called per request (loaders cache results within a
// single request).
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		UsersByID: newLoader(newUsersBatchFn(repos.User)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[int64, V]) *dataloader.Loader[int64, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[int64, V](wait),
		dataloader.WithBatchCapacity[int64, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// LoadersFromContext retrieves Loaders from the context.
func LoadersFromContext(ctx context.Context) (*Loaders, bool) {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	return l, ok && l != nil
}

// Middleware gives each request its own Loaders. Loader caches hold users
// for the lifetime of one request and are never shared between requests.
func Middleware(repos *Repos) middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), NewLoaders(repos))))
		})
	}
}
