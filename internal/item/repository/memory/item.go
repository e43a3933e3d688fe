package memory

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"item-service/internal/item/repository"
)

func (r *Repository) FindOne(ctx context.Context, id bson.ObjectID) (repository.Document, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.down {
		return repository.Document{}, false, repository.ErrStorageUnavailable
	}
	doc, ok := r.docs[id]
	return doc, ok, nil
}

func (r *Repository) FindMany(ctx context.Context, opt repository.FindManyOptions) ([]repository.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.down {
		return nil, repository.ErrStorageUnavailable
	}

	n := int64(len(r.order))
	if opt.Limit > 0 && opt.Limit < n {
		n = opt.Limit
	}
	docs := make([]repository.Document, 0, n)
	for _, id := range r.order[:n] {
		docs = append(docs, r.docs[id])
	}
	return docs, nil
}

func (r *Repository) InsertOne(ctx context.Context, doc repository.Document) (bson.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return bson.NilObjectID, repository.ErrStorageUnavailable
	}

	if doc.ID.IsZero() {
		doc.ID = bson.NewObjectID()
	}
	if _, exists := r.docs[doc.ID]; !exists {
		r.order = append(r.order, doc.ID)
	}
	r.docs[doc.ID] = doc
	return doc.ID, nil
}

func (r *Repository) UpdateOne(ctx context.Context, id bson.ObjectID, fields repository.UpdateFields) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return 0, repository.ErrStorageUnavailable
	}

	doc, ok := r.docs[id]
	if !ok {
		return 0, nil
	}
	if fields.Name != nil {
		doc.Name = *fields.Name
	}
	if fields.Type != nil {
		doc.Type = *fields.Type
	}
	doc.UpdatedTime = laterTime(fields.UpdatedTime, doc.UpdatedTime.Add(repository.MinTimeStep))
	r.docs[id] = doc
	return 1, nil
}

func (r *Repository) DeleteOne(ctx context.Context, id bson.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.down {
		return 0, repository.ErrStorageUnavailable
	}

	if _, ok := r.docs[id]; !ok {
		return 0, nil
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func laterTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
