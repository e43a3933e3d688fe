package usecase_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"item-service/internal/item/repository"
	"item-service/internal/item/repository/memory"
)

// fakeClock advances by step on every reading.
type fakeClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func newFakeClock() *fakeClock {
	return newClockWithStep(50 * time.Millisecond)
}

func newClockWithStep(step time.Duration) *fakeClock {
	return &fakeClock{t: time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

// countingRepo records how many calls reached the store.
type countingRepo struct {
	*memory.Repository
	mu    sync.Mutex
	calls int
}

func newCountingRepo() *countingRepo {
	return &countingRepo{Repository: memory.New()}
}

func (r *countingRepo) hit() {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
}

func (r *countingRepo) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

func (r *countingRepo) FindOne(ctx context.Context, id bson.ObjectID) (repository.Document, bool, error) {
	r.hit()
	return r.Repository.FindOne(ctx, id)
}

func (r *countingRepo) FindMany(ctx context.Context, opt repository.FindManyOptions) ([]repository.Document, error) {
	r.hit()
	return r.Repository.FindMany(ctx, opt)
}

func (r *countingRepo) InsertOne(ctx context.Context, doc repository.Document) (bson.ObjectID, error) {
	r.hit()
	return r.Repository.InsertOne(ctx, doc)
}

func (r *countingRepo) UpdateOne(ctx context.Context, id bson.ObjectID, fields repository.UpdateFields) (int64, error) {
	r.hit()
	return r.Repository.UpdateOne(ctx, id, fields)
}

func (r *countingRepo) DeleteOne(ctx context.Context, id bson.ObjectID) (int64, error) {
	r.hit()
	return r.Repository.DeleteOne(ctx, id)
}
