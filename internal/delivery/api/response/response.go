// Package response writes the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "multipost/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for failed responses. Error carries the
// human-readable message so existing dashboards can display it directly.
type ErrorResponse struct {
	Success bool      `json:"success"`
	Error   string    `json:"error"`
	Code    string    `json:"code"`
	Details string    `json:"details,omitempty"`
	Meta    *MetaInfo `json:"meta"`
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

// Success returns a successful response
func Success(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    data,
		Meta:    meta(c),
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   message,
		Code:    errorCode,
		Details: details,
		Meta:    meta(c),
	})
}
