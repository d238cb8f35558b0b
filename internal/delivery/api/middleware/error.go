// Package middleware holds the API-specific echo middleware.
package middleware

import (
	"log/slog"
	"net/http"

	"multipost/internal/delivery/api/response"
	deliverycontext "multipost/internal/delivery/context"
	domainerrors "multipost/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const allowNotFoundKey = "allow_not_found"

// AllowNotFound lets NotFound errors on a route keep their 404 status.
func AllowNotFound(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set(allowNotFoundKey, true)

		return next(c)
	}
}

func notFoundAllowed(c echo.Context) bool {
	allowed, _ := c.Get(allowNotFoundKey).(bool)

	return allowed
}

// StatusFor maps an application error to the response status. Only request
// problems are reported as 400; NotFound keeps 404 on routes that opt in;
// everything else is a 200 carrying success:false.
func StatusFor(c echo.Context, appErr domainerrors.AppError) int {
	switch appErr.HTTPCode() {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return http.StatusBadRequest
	case http.StatusNotFound:
		if notFoundAllowed(c) {
			return http.StatusNotFound
		}
	}

	return http.StatusOK
}

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		_ = response.Error(c, StatusFor(c, appErr), appErr.ErrorCode(), appErr.Message(), appErr.Details())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(httpErr.Code)

			return
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusOK, domainerrors.ErrInternalError.ErrorCode(), "Internal server error, please try again later", "")
}
