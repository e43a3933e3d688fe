package item

import (
	"errors"

	"item-service/pkg/objectid"
)

var (
	ErrItemNotFound       = errors.New("item not found")
	ErrInvalidIdentifier  = objectid.ErrInvalid
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptedRecord    = errors.New("stored item has no valid identifier")
	ErrReadBackFailed     = errors.New("written item could not be read back")
)
