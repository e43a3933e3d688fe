package usecase

import (
	"errors"
	"time"

	"item-service/internal/item"
	"item-service/internal/item/repository"
)

// timestamp returns the current time as BSON stores it: UTC, millisecond precision.
func (uc *implUseCase) timestamp() time.Time {
	return uc.now().UTC().Truncate(time.Millisecond)
}

// mapRepoError classifies store errors into the item error taxonomy.
func (uc *implUseCase) mapRepoError(err error) error {
	switch {
	case errors.Is(err, repository.ErrStorageUnavailable):
		return item.ErrStorageUnavailable
	case errors.Is(err, repository.ErrCorruptedDocument):
		return item.ErrCorruptedRecord
	default:
		return err
	}
}

func toItems(docs []repository.Document) ([]item.Item, error) {
	items := make([]item.Item, 0, len(docs))
	for _, doc := range docs {
		it, err := doc.ToItem()
		if err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}
