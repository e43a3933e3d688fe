package http

import (
	"github.com/gin-gonic/gin"

	"item-service/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods under /item.
// Every route requires a ready storage handle; the collection routes answer
// with and without the trailing slash.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	items := r.Group("/item", mw.RateLimit(), mw.RequireStorage())
	{
		items.GET("", h.List)
		items.GET("/", h.List)
		items.POST("", h.Create)
		items.POST("/", h.Create)
		items.GET("/:id", h.Detail)
		items.PUT("/:id", h.Update)
		items.DELETE("/:id", h.Delete)
	}
}
