package repository

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrCorruptedDocument  = errors.New("stored document could not be decoded")
)
