// Package handler implements the HTTP handlers behind the API routes.
package handler

import (
	"net/http"
	"strings"

	"multipost/internal/delivery/api/response"
	"multipost/internal/domain/entity"
	domainerrors "multipost/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, map[string]string{"status": "ok"})
}

// Root answers the bare origin when no dashboard assets are served.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, "Multipost API Active")
}

// bind decodes path, query and body into req and validates it. A JSON body
// sent without a content type is still accepted.
func bind(c echo.Context, req any) error {
	r := c.Request()
	if r.ContentLength != 0 && r.Header.Get(echo.HeaderContentType) == "" {
		r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidation.WithMessage("malformed request")
	}

	return c.Validate(req)
}

// owner picks the first usable identifier the client sent. Clients use either
// "user_id" or "owner", and some send "null" or "undefined" for the one they
// leave unset.
func owner(candidates ...string) string {
	for _, candidate := range candidates {
		if normalized, ok := entity.NormalizeOwnerID(candidate); ok {
			return normalized
		}
	}

	return ""
}

func parseID(raw string) uuid.UUID {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil
	}

	return id
}

// list keeps empty results encoded as [] rather than null.
func list[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
