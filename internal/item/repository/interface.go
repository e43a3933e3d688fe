package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	ItemRepository
}

// ItemRepository is the minimal document-store surface the item use case needs.
// Keys are unique, so matched/deleted counts are always 0 or 1.
type ItemRepository interface {
	// FindOne returns found == false when no document has the key.
	FindOne(ctx context.Context, id bson.ObjectID) (doc Document, found bool, err error)
	FindMany(ctx context.Context, opt FindManyOptions) ([]Document, error)
	InsertOne(ctx context.Context, doc Document) (bson.ObjectID, error)
	UpdateOne(ctx context.Context, id bson.ObjectID, fields UpdateFields) (matched int64, err error)
	DeleteOne(ctx context.Context, id bson.ObjectID) (deleted int64, err error)
}
