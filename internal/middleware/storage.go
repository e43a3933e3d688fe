package middleware

import (
	"github.com/gin-gonic/gin"

	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/response"
)

// RequireStorage aborts with 500 "Database Connection Error" when the storage
// handle is unset or unreachable, before any handler runs.
func (m Middleware) RequireStorage() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if m.storage == nil {
			m.l.Error(ctx, "internal.middleware.RequireStorage: ", pkgErrors.ErrDatabaseConnection.Message)
			response.Error(c, pkgErrors.ErrDatabaseConnection)
			return
		}
		if err := m.storage.Ready(ctx); err != nil {
			m.l.Errorf(ctx, "internal.middleware.RequireStorage: %s: %v", pkgErrors.ErrDatabaseConnection.Message, err)
			response.Error(c, pkgErrors.ErrDatabaseConnection)
			return
		}
		c.Next()
	}
}
