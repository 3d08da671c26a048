package dataloader

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/termstamps/internal/domain"
)

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[int64, *domain.User] {
	return func(ctx context.Context, keys []int64) []*dataloader.Result[*domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.User](len(keys), err)
		}

		byID := make(map[int64]*domain.User, len(users))
		for i := range users {
			byID[users[i].ID] = &users[i]
		}

		results := make([]*dataloader.Result[*domain.User], len(keys))
		for i, key := range keys {
			if u, ok := byID[key]; ok {
				results[i] = &dataloader.Result[*domain.User]{Data: u}
			} else {
				results[i] = &dataloader.Result[*domain.User]{Error: domain.ErrNotFound}
			}
		}
		return results
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type userByID interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// UserLookup resolves single users through the request's UsersByID loader,
// so concurrent lookups within a request share one store call. Outside a
// request with loaders it falls back to direct lookups.
type UserLookup struct {
	fallback userByID
}

// NewUserLookup returns a UserLookup that uses fallback when no loaders are
// in the context.
func NewUserLookup(fallback userByID) *UserLookup {
	return &UserLookup{fallback: fallback}
}

// GetByID returns the user or domain.ErrNotFound.
func (l *UserLookup) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	loaders, ok := LoadersFromContext(ctx)
	if !ok {
		return l.fallback.GetByID(ctx, id)
	}
	return loaders.UsersByID.Load(ctx, id)()
}
