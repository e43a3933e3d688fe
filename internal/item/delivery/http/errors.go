package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"item-service/internal/item"
	pkgErrors "item-service/pkg/errors"
	"item-service/pkg/objectid"
	"item-service/pkg/response"
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error, id string) error {
	switch {
	case errors.Is(err, item.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Item %s not found", id))
	case errors.Is(err, item.ErrStorageUnavailable):
		return pkgErrors.ErrDatabaseConnection
	case errors.Is(err, item.ErrInvalidIdentifier):
		return &requestError{fields: []response.FieldError{{
			Loc:  []string{"path", "id"},
			Msg:  objectid.ErrInvalid.Error(),
			Type: "value_error",
		}}}
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// writeError sends err, which is either a *requestError or anything mapError returns.
func (h *handler) writeError(c *gin.Context, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		response.ValidationError(c, reqErr.fields)
		return
	}
	response.Error(c, err)
}
