// Package memory is an in-process item store with the same semantics as the
// MongoDB repository. It backs the test suites.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"

	"item-service/internal/item/repository"
)

// Repository keeps documents in insertion order.
type Repository struct {
	mu    sync.RWMutex
	docs  map[bson.ObjectID]repository.Document
	order []bson.ObjectID
	down  bool
}

var _ repository.Repository = (*Repository)(nil)

// New creates an empty Repository.
func New() *Repository {
	return &Repository{docs: make(map[bson.ObjectID]repository.Document)}
}

// SetDown makes every call fail with ErrStorageUnavailable while down is true.
func (r *Repository) SetDown(down bool) {
	r.mu.Lock()
	r.down = down
	r.mu.Unlock()
}

// Ready reports storage availability.
func (r *Repository) Ready(ctx context.Context) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.down {
		return repository.ErrStorageUnavailable
	}
	return nil
}
