package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
)

// List returns up to item.MaxListItems Items in store order.
func (uc *implUseCase) List(ctx context.Context) (item.ListItemsOutput, error) {
	docs, err := uc.repo.FindMany(ctx, repo.FindManyOptions{Limit: item.MaxListItems})
	if err != nil {
		return item.ListItemsOutput{}, uc.mapRepoError(err)
	}

	items, err := toItems(docs)
	if err != nil {
		return item.ListItemsOutput{}, err
	}
	return item.ListItemsOutput{Items: items}, nil
}
