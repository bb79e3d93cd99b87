package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	countrydomain "github.com/smallbiznis/contacts/internal/country/domain"
	persondomain "github.com/smallbiznis/contacts/internal/person/domain"
	"github.com/smallbiznis/contacts/internal/validation"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string                  `json:"type"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrorHandlingMiddleware renders the last error a handler recorded.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &validation.Errors{
		Errors: []validation.FieldError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	var vErr *validation.Errors
	if errors.As(err, &vErr) && vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	if field, code, ok := invalidArgument(err); ok {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []validation.FieldError{
				{
					Field:   field,
					Code:    code,
					Message: err.Error(),
				},
			},
		}
	}

	if isNotFoundError(err) {
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	}

	return http.StatusInternalServerError, errorPayload{
		Type:    "internal_error",
		Message: "internal server error",
	}
}

// invalidArgument maps domain invalid-argument sentinels to the field they
// concern.
func invalidArgument(err error) (field, code string, ok bool) {
	switch {
	case errors.Is(err, persondomain.ErrInvalidRequest):
		return "request", "invalid_request", true
	case errors.Is(err, persondomain.ErrUnknownPerson):
		return "id", "unknown_person", true
	case errors.Is(err, persondomain.ErrUnknownCountry):
		return "country_id", "unknown_country", true
	case errors.Is(err, countrydomain.ErrInvalidRequest):
		return "request", "invalid_request", true
	case errors.Is(err, countrydomain.ErrDuplicateName):
		return "country_name", "duplicate_country_name", true
	case errors.Is(err, countrydomain.ErrInvalidID):
		return "id", "invalid_country_id", true
	default:
		return "", "", false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, persondomain.ErrNotFound),
		errors.Is(err, countrydomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}
