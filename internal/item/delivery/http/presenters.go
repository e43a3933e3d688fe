package http

import (
	"fmt"
	"time"

	"item-service/internal/item"
)

// --- Request DTOs ---

// createReq is ItemNew.
type createReq struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name: r.Name,
		Type: r.Type,
	}
}

// updateReq is ItemUpdate. Absent and null fields stay nil and are not written.
type updateReq struct {
	ID   string  `json:"-"` // populated from URI param
	Name *string `json:"name" binding:"omitnil,min=1"`
	Type *string `json:"type" binding:"omitnil,min=1"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:   r.ID,
		Name: r.Name,
		Type: r.Type,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          string    `json:"id"`
	CreatedTime time.Time `json:"created_time"`
	UpdatedTime time.Time `json:"updated_time"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		CreatedTime: it.CreatedTime,
		UpdatedTime: it.UpdatedTime,
		Name:        it.Name,
		Type:        it.Type,
	}
}

func (h *handler) newListResp(out item.ListItemsOutput) []itemResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return items
}

func (h *handler) newDetailResp(out item.DetailItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newCreateResp(out item.CreateItemOutput) itemResp {
	return newItemResp(out.Item)
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) itemResp {
	return newItemResp(out.Item)
}

type deleteResp struct {
	Detail string `json:"detail"`
}

func (h *handler) newDeleteResp(out item.DeleteItemOutput) deleteResp {
	return deleteResp{Detail: fmt.Sprintf("Item %s deleted successfully", out.ID)}
}
