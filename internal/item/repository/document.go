package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"item-service/internal/item"
	"item-service/pkg/objectid"
)

// CollectionName is the collection items are stored in.
const CollectionName = "itemcollection"

// Field names as stored.
const (
	FieldID          = "_id"
	FieldName        = "name"
	FieldType        = "type"
	FieldCreatedTime = "created_time"
	FieldUpdatedTime = "updated_time"
)

// Document is the stored shape of an item.
type Document struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Name        string        `bson:"name"`
	Type        string        `bson:"type"`
	CreatedTime time.Time     `bson:"created_time"`
	UpdatedTime time.Time     `bson:"updated_time"`
}

// ToItem converts a stored document, translating the primary key into the
// external id. A document without a key is reported as ErrCorruptedRecord.
func (d Document) ToItem() (item.Item, error) {
	if d.ID.IsZero() {
		return item.Item{}, item.ErrCorruptedRecord
	}
	it := item.Item{
		ID:          objectid.Format(d.ID),
		CreatedTime: d.CreatedTime.UTC(),
		UpdatedTime: d.UpdatedTime.UTC(),
		Name:        d.Name,
		Type:        d.Type,
	}
	if err := it.Validate(); err != nil {
		return item.Item{}, err
	}
	return it, nil
}
