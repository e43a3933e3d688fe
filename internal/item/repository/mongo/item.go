package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongoDriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"item-service/internal/item/repository"
)

// FindOne fetches a document by primary key.
func (r *implRepository) FindOne(ctx context.Context, id bson.ObjectID) (repository.Document, bool, error) {
	coll, err := r.collection(ctx, "FindOne")
	if err != nil {
		return repository.Document{}, false, err
	}

	res := coll.FindOne(ctx, byID(id))
	if err := res.Err(); err != nil {
		if errors.Is(err, mongoDriver.ErrNoDocuments) {
			return repository.Document{}, false, nil
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindOne"), err)
		return repository.Document{}, false, repository.ErrStorageUnavailable
	}

	var doc repository.Document
	if err := res.Decode(&doc); err != nil {
		r.l.Errorf(ctx, "%s decode: %v", r.dsn("FindOne"), err)
		return repository.Document{}, false, repository.ErrCorruptedDocument
	}
	return doc, true, nil
}

// FindMany returns up to opt.Limit documents in natural order.
func (r *implRepository) FindMany(ctx context.Context, opt repository.FindManyOptions) ([]repository.Document, error) {
	coll, err := r.collection(ctx, "FindMany")
	if err != nil {
		return nil, err
	}

	findOpts := options.Find()
	if opt.Limit > 0 {
		findOpts.SetLimit(opt.Limit)
	}

	cursor, err := coll.Find(ctx, bson.D{}, findOpts)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("FindMany"), err)
		return nil, repository.ErrStorageUnavailable
	}
	defer cursor.Close(ctx)

	docs := make([]repository.Document, 0)
	for cursor.Next(ctx) {
		var doc repository.Document
		if err := cursor.Decode(&doc); err != nil {
			r.l.Errorf(ctx, "%s decode: %v", r.dsn("FindMany"), err)
			return nil, repository.ErrCorruptedDocument
		}
		docs = append(docs, doc)
	}
	if err := cursor.Err(); err != nil {
		r.l.Errorf(ctx, "%s cursor: %v", r.dsn("FindMany"), err)
		return nil, repository.ErrStorageUnavailable
	}
	return docs, nil
}

// InsertOne stores doc and returns its key, generating one if doc has none.
func (r *implRepository) InsertOne(ctx context.Context, doc repository.Document) (bson.ObjectID, error) {
	coll, err := r.collection(ctx, "InsertOne")
	if err != nil {
		return bson.NilObjectID, err
	}

	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	if _, err := coll.InsertOne(ctx, doc); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("InsertOne"), err)
		return bson.NilObjectID, repository.ErrStorageUnavailable
	}
	return doc.ID, nil
}

// UpdateOne merges fields into the stored document and returns the matched count.
func (r *implRepository) UpdateOne(ctx context.Context, id bson.ObjectID, fields repository.UpdateFields) (int64, error) {
	coll, err := r.collection(ctx, "UpdateOne")
	if err != nil {
		return 0, err
	}

	res, err := coll.UpdateOne(ctx, byID(id), buildUpdatePipeline(fields))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateOne"), err)
		return 0, repository.ErrStorageUnavailable
	}
	return res.MatchedCount, nil
}

// DeleteOne removes a document by key and returns the deleted count.
func (r *implRepository) DeleteOne(ctx context.Context, id bson.ObjectID) (int64, error) {
	coll, err := r.collection(ctx, "DeleteOne")
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteOne(ctx, byID(id))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteOne"), err)
		return 0, repository.ErrStorageUnavailable
	}
	return res.DeletedCount, nil
}
