package item

import (
	"time"

	"item-service/pkg/objectid"
)

// MaxListItems caps the number of records List returns.
const MaxListItems = 100

// --- Item Domain Model ---

// Item is a stored record as exposed to clients.
type Item struct {
	ID          string
	CreatedTime time.Time
	UpdatedTime time.Time
	Name        string
	Type        string
}

// Validate checks the record invariants. A failure means the stored document
// is corrupted, not that the request was bad.
func (i Item) Validate() error {
	if !objectid.IsValid(i.ID) {
		return ErrCorruptedRecord
	}
	return nil
}

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name string
	Type string
}

// UpdateItemInput carries only the fields the client sent; nil means "leave as is".
type UpdateItemInput struct {
	ID   string
	Name *string
	Type *string
}

// --- UseCase Outputs ---

type CreateItemOutput struct {
	Item Item
}

type ListItemsOutput struct {
	Items []Item
}

type DetailItemOutput struct {
	Item Item
}

type UpdateItemOutput struct {
	Item Item
}

type DeleteItemOutput struct {
	ID string
}
