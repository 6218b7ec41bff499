package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

var kindStatus = map[string]int{
	domain.KindUnauthenticated: http.StatusUnauthorized,
	domain.KindForbidden:       http.StatusForbidden,
	domain.KindConflict:        http.StatusConflict,
	domain.KindNotFound:        http.StatusNotFound,
	domain.KindInvalidID:       http.StatusBadRequest,
	domain.KindInvalidPayload:  http.StatusBadRequest,
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps domain error
// kinds and echo errors to status codes and renders {"error", "code"}.
// Unexpected errors are logged and never leaked to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	if de, ok := domain.AsError(err); ok {
		if status, known := kindStatus[de.Kind()]; known {
			return status, errorResponse{Error: de.Error(), Code: de.Kind()}
		}
	}

	// Echo's own errors (bind failures, validation, unknown routes).
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message), Code: kindForStatus(he.Code)}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error", Code: domain.KindInternal}
}

func kindForStatus(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return domain.KindUnauthenticated
	case http.StatusForbidden:
		return domain.KindForbidden
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return domain.KindNotFound
	case http.StatusConflict:
		return domain.KindConflict
	default:
		return domain.KindInvalidPayload
	}
}
