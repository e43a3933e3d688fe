package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"item-service/pkg/objectid"
	"item-service/pkg/response"
)

// requestError is a 422 with field-level detail.
type requestError struct {
	fields []response.FieldError
}

func (e *requestError) Error() string {
	if len(e.fields) == 0 {
		return "invalid request"
	}
	return fmt.Sprintf("%v: %s", e.fields[0].Loc, e.fields[0].Msg)
}

// processIDReq validates the {id} path parameter before anything else runs.
func (h *handler) processIDReq(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !objectid.IsValid(id) {
		return id, &requestError{fields: []response.FieldError{{
			Loc:  []string{"path", "id"},
			Msg:  objectid.ErrInvalid.Error(),
			Type: "value_error",
		}}}
	}
	return id, nil
}

// processCreateReq binds and validates the create item request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	return req, nil
}

// processUpdateReq validates the URI param, then binds the update body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDReq(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}
	req.ID = id
	return req, nil
}

// bindError converts gin binding failures into field-level detail.
func bindError(err error) error {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		fields := make([]response.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError(fe))
		}
		return &requestError{fields: fields}
	case errors.As(err, &typeErr):
		return &requestError{fields: []response.FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("Input should be a valid %s", typeErr.Type.String()),
			Type: "type_error",
		}}}
	case errors.Is(err, io.EOF):
		return &requestError{fields: []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  "Field required",
			Type: "missing",
		}}}
	case errors.As(err, &synErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &requestError{fields: []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}}
	default:
		return &requestError{fields: []response.FieldError{{
			Loc:  []string{"body"},
			Msg:  err.Error(),
			Type: "value_error",
		}}}
	}
}

func fieldError(fe validator.FieldError) response.FieldError {
	fe2 := response.FieldError{Loc: []string{"body", fe.Field()}}
	switch fe.Tag() {
	case "required":
		fe2.Msg = "Field required"
		fe2.Type = "missing"
	case "min":
		fe2.Msg = fmt.Sprintf("String should have at least %s character", fe.Param())
		fe2.Type = "string_too_short"
	default:
		fe2.Msg = fe.Error()
		fe2.Type = "value_error"
	}
	return fe2
}
