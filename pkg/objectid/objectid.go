// Package objectid converts between the public string form of an item id and
// the document store's native ObjectID.
package objectid

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalid is returned by Parse for anything that is not a 24 character hex ObjectID.
var ErrInvalid = errors.New("Invalid ObjectId")

// Parse decodes an external id. It never touches the store.
func Parse(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, ErrInvalid
	}
	return id, nil
}

// Format returns the canonical (lowercase hex) form of id.
func Format(id bson.ObjectID) string {
	return id.Hex()
}

// IsValid reports whether s would be accepted by Parse.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
