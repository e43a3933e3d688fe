package mongo

import (
	"context"
	"fmt"

	mongoDriver "go.mongodb.org/mongo-driver/v2/mongo"

	"item-service/internal/item/repository"
	"item-service/pkg/log"
)

// DatabaseProvider supplies the shared database handle. It is consulted on
// every call so a handle that becomes available later is picked up.
type DatabaseProvider interface {
	Database(ctx context.Context) (*mongoDriver.Database, error)
}

type implRepository struct {
	db DatabaseProvider
	l  log.Logger
}

// New creates a MongoDB-backed Repository for the item domain.
func New(db DatabaseProvider, l log.Logger) repository.Repository {
	if db == nil {
		panic("item/repository/mongo: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("item/repository/mongo.%s", method)
}

func (r *implRepository) collection(ctx context.Context, method string) (*mongoDriver.Collection, error) {
	db, err := r.db.Database(ctx)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repository.ErrStorageUnavailable
	}
	return db.Collection(repository.CollectionName), nil
}
