package http

import (
	"github.com/gin-gonic/gin"

	"item-service/internal/product"
	"item-service/pkg/response"
)

type productResp struct {
	Quantity *int `json:"quantity"`
}

// Get godoc
// @Summary     Return an example product
// @Tags        Products
// @Produce     json
// @Success     200 {object} productResp
// @Router      /product/ [GET]
func Get(c *gin.Context) {
	p := product.Example()
	response.OK(c, productResp{Quantity: p.Quantity})
}

// RegisterRoutes registers /product with and without the trailing slash.
func RegisterRoutes(r gin.IRouter) {
	products := r.Group("/product")
	{
		products.GET("", Get)
		products.GET("/", Get)
	}
}
