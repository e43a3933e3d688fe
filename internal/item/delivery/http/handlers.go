package http

import (
	"github.com/gin-gonic/gin"

	"item-service/pkg/response"
)

// List godoc
// @Summary     List all items
// @Description Returns at most 100 items in storage order.
// @Tags        Items
// @Produce     json
// @Success     200 {array}  itemResp
// @Failure     500 {object} response.DetailResp "Database Connection Error"
// @Router      /item/ [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.writeError(c, h.mapError(err, ""))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     View single item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID (ObjectId hex)"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.DetailResp     "Item not found"
// @Failure     422 {object} response.ValidationResp "Invalid ObjectId"
// @Failure     500 {object} response.DetailResp     "Database Connection Error"
// @Router      /item/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "uc.Detail: %v", err)
		h.writeError(c, h.mapError(err, id))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Create godoc
// @Summary     Create a new item and return it
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} itemResp
// @Failure     422 {object} response.ValidationResp "Missing or invalid fields"
// @Failure     500 {object} response.DetailResp     "Database Connection Error"
// @Router      /item/ [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		h.writeError(c, h.mapError(err, ""))
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Update an existing item and return it
// @Description Updates individual fields of an existing item. Omitted fields are left unchanged.
// @Tags        Items
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID (ObjectId hex)"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} itemResp
// @Failure     404 {object} response.DetailResp     "Item not found"
// @Failure     422 {object} response.ValidationResp "Invalid ObjectId or fields"
// @Failure     500 {object} response.DetailResp     "Database Connection Error"
// @Router      /item/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Debugf(ctx, "uc.Update: %v", err)
		h.writeError(c, h.mapError(err, req.ID))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an existing item
// @Tags        Items
// @Produce     json
// @Param       id path string true "Item ID (ObjectId hex)"
// @Success     200 {object} response.DetailResp     "Item {id} deleted successfully"
// @Failure     404 {object} response.DetailResp     "Item not found"
// @Failure     422 {object} response.ValidationResp "Invalid ObjectId"
// @Failure     500 {object} response.DetailResp     "Database Connection Error"
// @Router      /item/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Debugf(ctx, "uc.Delete: %v", err)
		h.writeError(c, h.mapError(err, id))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
