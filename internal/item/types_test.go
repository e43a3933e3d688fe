package item_test

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"item-service/internal/item"
)

func TestItemValidate(t *testing.T) {
	valid := item.Item{ID: bson.NewObjectID().Hex(), Name: "n", Type: "t"}
	if err := valid.Validate(); err != nil {
		t.Errorf("expected valid item, got %v", err)
	}

	for _, id := range []string{"", "invalid", "123"} {
		it := item.Item{ID: id, Name: "n", Type: "t"}
		if err := it.Validate(); !errors.Is(err, item.ErrCorruptedRecord) {
			t.Errorf("id %q: expected ErrCorruptedRecord, got %v", id, err)
		}
	}
}
