package usecase

import (
	"context"
	"fmt"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// Create stores a new Item with both timestamps set to now and returns it as stored.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	now := uc.timestamp()

	id, err := uc.repo.InsertOne(ctx, repo.Document{
		Name:        input.Name,
		Type:        input.Type,
		CreatedTime: now,
		UpdatedTime: now,
	})
	if err != nil {
		return item.CreateItemOutput{}, uc.mapRepoError(err)
	}

	doc, found, err := uc.repo.FindOne(ctx, id)
	if err != nil {
		return item.CreateItemOutput{}, uc.mapRepoError(err)
	}
	if !found {
		// deleted between insert and read-back
		return item.CreateItemOutput{}, fmt.Errorf("%w: %s", item.ErrReadBackFailed, id.Hex())
	}

	it, err := doc.ToItem()
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: it}, nil
}
