package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	// ErrorResponse carries the failure message under "detail", the field
	// the client application expects.
	ErrorResponse struct {
		Detail string `json:"detail"`
	}

	FieldError struct {
		Field string `json:"field"`
		Error string `json:"error"`
	}

	ValidationErrorResponse struct {
		Detail []FieldError `json:"detail"`
	}
)

// HTTPErrorHandler maps errors escaping the handlers to responses: request
// validation failures become 422 with per-field detail, echo errors keep
// their status code, and everything else (store failures included) becomes a
// 500 carrying the error message.
func HTTPErrorHandler(log *slog.Logger) func(err error, c echo.Context) {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log.ErrorContext(c.Request().Context(), "failed to process request", "error", err)

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]FieldError, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, FieldError{
					Field: fe.Field(),
					Error: fe.Tag(),
				})
			}
			writeError(log, c, http.StatusUnprocessableEntity, ValidationErrorResponse{Detail: fields})
			return
		}

		var echoError *echo.HTTPError
		if errors.As(err, &echoError) {
			writeError(log, c, echoError.Code, ErrorResponse{Detail: fmt.Sprintf("%v", echoError.Message)})
			return
		}

		writeError(log, c, http.StatusInternalServerError, ErrorResponse{Detail: err.Error()})
	}
}

func writeError(log *slog.Logger, c echo.Context, code int, body any) {
	if err := c.JSON(code, body); err != nil {
		log.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}
