package mongo_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcMongo "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongoDriver "go.mongodb.org/mongo-driver/v2/mongo"

	"item-service/internal/item"
	"item-service/internal/item/repository"
	itemMongo "item-service/internal/item/repository/mongo"
	"item-service/internal/item/usecase"
	"item-service/pkg/log"
	pkgMongo "item-service/pkg/mongo"
)

const mongoImage = "mongo:7"

var (
	containerOnce sync.Once
	container     *tcMongo.MongoDBContainer
	containerURL  string
	containerErr  error

	dbSeq atomic.Int64
)

func TestMain(m *testing.M) {
	code := m.Run()
	if container != nil {
		if err := testcontainers.TerminateContainer(container); err != nil {
			fmt.Fprintf(os.Stderr, "terminate mongo container: %v\n", err)
		}
	}
	os.Exit(code)
}

// serverURL returns MONGODB_TEST_URL when set, otherwise a shared container.
func serverURL(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("MongoDB tests skipped in short mode")
	}
	if url := os.Getenv("MONGODB_TEST_URL"); url != "" {
		return url
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	containerOnce.Do(func() {
		ctx := context.Background()
		container, containerErr = tcMongo.Run(ctx, mongoImage)
		if containerErr != nil {
			return
		}
		containerURL, containerErr = container.ConnectionString(ctx)
	})
	require.NoError(t, containerErr)
	return containerURL
}

// newRepo connects to a fresh database and drops it when the test ends.
func newRepo(t *testing.T) (repository.Repository, *mongoDriver.Database) {
	t.Helper()
	ctx := context.Background()

	db := pkgMongo.New(pkgMongo.Config{
		URL:            serverURL(t),
		Database:       fmt.Sprintf("itemtest_%d_%d", os.Getpid(), dbSeq.Add(1)),
		ConnectTimeout: 10 * time.Second,
	}, log.NewNop())
	require.NoError(t, db.Connect(ctx))

	handle, err := db.Database(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = handle.Drop(context.Background())
		_ = db.Close(context.Background())
	})

	return itemMongo.New(db, log.NewNop()), handle
}

func newDoc(name, typ string) repository.Document {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return repository.Document{Name: name, Type: typ, CreatedTime: now, UpdatedTime: now}
}

func TestMongoInsertAndFindOne(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	doc := newDoc("Test Item", "Test Type")
	id, err := r.InsertOne(ctx, doc)
	require.NoError(t, err)
	require.False(t, id.IsZero())

	got, found, err := r.FindOne(ctx, id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Test Item", got.Name)
	assert.Equal(t, "Test Type", got.Type)
	assert.True(t, got.CreatedTime.Equal(doc.CreatedTime))
	assert.True(t, got.UpdatedTime.Equal(doc.UpdatedTime))

	_, found, err = r.FindOne(ctx, bson.NewObjectID())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMongoFindManyLimit(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	var ids []bson.ObjectID
	for i := 0; i < 5; i++ {
		id, err := r.InsertOne(ctx, newDoc(fmt.Sprintf("Item %d", i), "T"))
		require.NoError(t, err)
		ids = append(ids, id)
	}

	docs, err := r.FindMany(ctx, repository.FindManyOptions{Limit: 3})
	require.NoError(t, err)
	require.Len(t, docs, 3)
	for i, doc := range docs {
		assert.Equal(t, ids[i], doc.ID)
	}

	docs, err = r.FindMany(ctx, repository.FindManyOptions{})
	require.NoError(t, err)
	assert.Len(t, docs, 5)
}

func TestMongoFindManyEmpty(t *testing.T) {
	r, _ := newRepo(t)

	docs, err := r.FindMany(context.Background(), repository.FindManyOptions{Limit: 100})
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMongoUpdateOne(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	doc := newDoc("Test Item", "Test Type")
	id, err := r.InsertOne(ctx, doc)
	require.NoError(t, err)

	name := "Updated Item Name"
	later := doc.UpdatedTime.Add(time.Second)
	matched, err := r.UpdateOne(ctx, id, repository.UpdateFields{Name: &name, UpdatedTime: later})
	require.NoError(t, err)
	assert.EqualValues(t, 1, matched)

	got, _, err := r.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Updated Item Name", got.Name)
	assert.Equal(t, "Test Type", got.Type)
	assert.True(t, got.CreatedTime.Equal(doc.CreatedTime))
	assert.True(t, got.UpdatedTime.Equal(later))

	// a clock reading that does not move forward still advances updated_time
	matched, err = r.UpdateOne(ctx, id, repository.UpdateFields{UpdatedTime: later})
	require.NoError(t, err)
	assert.EqualValues(t, 1, matched)
	got, _, err = r.FindOne(ctx, id)
	require.NoError(t, err)
	assert.True(t, got.UpdatedTime.Equal(later.Add(repository.MinTimeStep)), "got %v", got.UpdatedTime)

	// values that look like field paths are stored as-is
	dollar := "$type"
	_, err = r.UpdateOne(ctx, id, repository.UpdateFields{Type: &dollar, UpdatedTime: later.Add(time.Second)})
	require.NoError(t, err)
	got, _, err = r.FindOne(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "$type", got.Type)

	matched, err = r.UpdateOne(ctx, bson.NewObjectID(), repository.UpdateFields{Name: &name, UpdatedTime: later})
	require.NoError(t, err)
	assert.EqualValues(t, 0, matched)
}

func TestMongoDeleteOne(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)

	id, err := r.InsertOne(ctx, newDoc("Test Item", "Test Type"))
	require.NoError(t, err)

	deleted, err := r.DeleteOne(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	_, found, err := r.FindOne(ctx, id)
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err = r.DeleteOne(ctx, id)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)
}

func TestMongoCorruptedDocument(t *testing.T) {
	ctx := context.Background()
	r, db := newRepo(t)

	_, err := db.Collection(repository.CollectionName).InsertOne(ctx, bson.D{
		{Key: "_id", Value: "not-an-objectid"},
		{Key: "name", Value: "broken"},
		{Key: "type", Value: "t"},
	})
	require.NoError(t, err)

	_, err = r.FindMany(ctx, repository.FindManyOptions{Limit: 100})
	assert.True(t, errors.Is(err, repository.ErrCorruptedDocument), "got %v", err)

	_, err = usecase.New(r).List(ctx)
	assert.ErrorIs(t, err, item.ErrCorruptedRecord)
}

func TestMongoUseCaseRoundTrip(t *testing.T) {
	ctx := context.Background()
	r, _ := newRepo(t)
	uc := usecase.New(r)

	created, err := uc.Create(ctx, item.CreateItemInput{Name: "Test Item", Type: "Test Type"})
	require.NoError(t, err)
	assert.Equal(t, created.Item.CreatedTime, created.Item.UpdatedTime)

	name := "Updated Item Name"
	updated, err := uc.Update(ctx, item.UpdateItemInput{ID: created.Item.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Test Type", updated.Item.Type)
	assert.True(t, updated.Item.UpdatedTime.After(created.Item.UpdatedTime))

	_, err = uc.Delete(ctx, created.Item.ID)
	require.NoError(t, err)

	_, err = uc.Detail(ctx, created.Item.ID)
	assert.ErrorIs(t, err, item.ErrItemNotFound)
	_, err = uc.Update(ctx, item.UpdateItemInput{ID: created.Item.ID, Name: &name})
	assert.ErrorIs(t, err, item.ErrItemNotFound)
}
