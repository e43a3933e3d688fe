package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "item-service/pkg/errors"
)

// OK sends 200 JSON with data as the body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Detail sends a {"detail": msg} body with the given status.
func Detail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, DetailResp{Detail: msg})
}

// Error sends err as a detail response. *errors.HTTPError values keep their
// status; anything else is reported as 500.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		Detail(c, httpErr.Code, httpErr.Message)
		return
	}
	InternalError(c)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context) {
	Detail(c, http.StatusInternalServerError, pkgErrors.ErrInternalServerError.Message)
}

// ValidationError sends 422 with field-level detail.
func ValidationError(c *gin.Context, fields []FieldError) {
	if fields == nil {
		fields = []FieldError{}
	}
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ValidationResp{Detail: fields})
}
