package usecase

import (
	"context"

	"item-service/internal/item"
	repo "item-service/internal/item/repository"
	"item-service/pkg/objectid"
)

// Detail retrieves a single Item by ID. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (item.DetailItemOutput, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return item.DetailItemOutput{}, item.ErrInvalidIdentifier
	}

	doc, found, err := uc.repo.FindOne(ctx, oid)
	if err != nil {
		return item.DetailItemOutput{}, uc.mapRepoError(err)
	}
	if !found {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}

	it, err := doc.ToItem()
	if err != nil {
		return item.DetailItemOutput{}, err
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update merges the provided fields into an existing Item and always refreshes
// updated_time. Returns ErrItemNotFound when no document matched.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	oid, err := objectid.Parse(input.ID)
	if err != nil {
		return item.UpdateItemOutput{}, item.ErrInvalidIdentifier
	}

	matched, err := uc.repo.UpdateOne(ctx, oid, repo.UpdateFields{
		Name:        input.Name,
		Type:        input.Type,
		UpdatedTime: uc.timestamp(),
	})
	if err != nil {
		return item.UpdateItemOutput{}, uc.mapRepoError(err)
	}
	if matched == 0 {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	// The read-back may observe a later concurrent write to the same id.
	doc, found, err := uc.repo.FindOne(ctx, oid)
	if err != nil {
		return item.UpdateItemOutput{}, uc.mapRepoError(err)
	}
	if !found {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	it, err := doc.ToItem()
	if err != nil {
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: it}, nil
}

// Delete removes an Item by ID. Returns ErrItemNotFound when nothing was removed.
func (uc *implUseCase) Delete(ctx context.Context, id string) (item.DeleteItemOutput, error) {
	oid, err := objectid.Parse(id)
	if err != nil {
		return item.DeleteItemOutput{}, item.ErrInvalidIdentifier
	}

	deleted, err := uc.repo.DeleteOne(ctx, oid)
	if err != nil {
		return item.DeleteItemOutput{}, uc.mapRepoError(err)
	}
	if deleted != 1 {
		return item.DeleteItemOutput{}, item.ErrItemNotFound
	}
	return item.DeleteItemOutput{ID: id}, nil
}
