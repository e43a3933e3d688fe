package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) (ListItemsOutput, error)
	Detail(ctx context.Context, id string) (DetailItemOutput, error)
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	Delete(ctx context.Context, id string) (DeleteItemOutput, error)
}
