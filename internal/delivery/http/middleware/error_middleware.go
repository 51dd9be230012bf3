// Package middleware contains HTTP middleware for the delivery layer.
package middleware

import (
	"log/slog"
	"net/http"

	"guidematch/internal/delivery/http/response"
	domainerrors "guidematch/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Domain AppErrors carry their own HTTP status and public message;
// everything else is reported as a generic internal error without
// leaking detail to the client.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		_ = c.JSON(appErr.HTTPCode(), response.Error{
			Error: appErr.Message(),
			Code:  appErr.ErrorCode(),
		})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, response.Error{
			Error: message,
			Code:  "HTTP_ERROR",
		})

		return
	}

	m.logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = c.JSON(http.StatusInternalServerError, response.Error{
		Error: "Internal server error",
		Code:  "INTERNAL_ERROR",
	})
}
