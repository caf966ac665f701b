package http

import (
	"errors"
	"log/slog"
	"net/http"

	"labflow/internal/generated/servers"
	"labflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// NewErrorHandler maps domain errors onto HTTP responses. Internal failures are
// logged and their message is withheld from clients outside development.
func NewErrorHandler(logger *slog.Logger, development bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := describeError(err)
		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				slog.String("endpoint", c.Request().Method+" "+c.Request().URL.Path),
				slog.Any("error", err),
			)
			if !development {
				body.Message = "internal server error"
				body.Details = nil
			}
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, body)
		}
		if writeErr != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", slog.Any("error", writeErr))
		}
	}
}

func describeError(err error) (int, servers.Error) {
	status := statusOf(err)
	body := servers.Error{
		Error:   http.StatusText(status),
		Message: err.Error(),
		Details: errorDetails(err),
	}

	var httpErr *echo.HTTPError
	var unauthorized *errs.UnauthorizedError
	switch {
	case errors.Is(err, errs.ErrInternal):
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(httpErr.Code)
		}
		body.Details = nil
		if httpErr.Internal != nil {
			body.Details = []string{httpErr.Internal.Error()}
		}
	case errors.As(err, &unauthorized):
		body.Message = unauthorized.Reason
		body.Details = nil
	}

	return status, body
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.Is(err, errs.ErrInternal):
		return http.StatusInternalServerError
	case errors.As(err, &httpErr):
		return httpErr.Code
	case isValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, errs.ErrValueIsInvalid) ||
		errors.Is(err, errs.ErrValueIsRequired) ||
		errors.Is(err, errs.ErrValueIsOutOfRange)
}

// errorDetails flattens errors.Join trees into one message per leaf. A single
// error carries no details; its message already says everything.
func errorDetails(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}

	var details []string
	for _, e := range joined.Unwrap() {
		if nested := errorDetails(e); len(nested) > 0 {
			details = append(details, nested...)
			continue
		}
		details = append(details, e.Error())
	}
	return details
}
