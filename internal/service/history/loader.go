package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/ballotwiki-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// newUserLoader creates a loader that batches user lookups into GetByIDs
// calls. It caches for its lifetime, so one is created per Describe call.
func newUserLoader(repo userRepo) *dataloader.Loader[uuid.UUID, domain.User] {
	return dataloader.NewBatchedLoader(
		newUsersBatchFn(repo),
		dataloader.WithWait[uuid.UUID, domain.User](wait),
		dataloader.WithBatchCapacity[uuid.UUID, domain.User](maxBatch),
	)
}

func newUsersBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, domain.User] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.User] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.User](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.User, len(users))
		for _, u := range users {
			byID[u.ID] = u
		}

		results := make([]*dataloader.Result[domain.User], len(keys))
		for i, key := range keys {
			if u, ok := byID[key]; ok {
				results[i] = &dataloader.Result[domain.User]{Data: u}
			} else {
				results[i] = &dataloader.Result[domain.User]{Error: fmt.Errorf("user %s: %w", key, domain.ErrNotFound)}
			}
		}
		return results
	}
}

// errorResults creates n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
