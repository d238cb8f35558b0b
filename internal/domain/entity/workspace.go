package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Workspace is a named folder grouping linked platform accounts.
type Workspace struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	OwnerID   *string   `json:"user_id"` // nil in single-tenant mode
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeOwnerID trims the raw owner and rejects the empty string and the
// literal "null"/"undefined" placeholders sent by misbehaving clients.
func NormalizeOwnerID(raw string) (string, bool) {
	owner := strings.TrimSpace(raw)
	switch strings.ToLower(owner) {
	case "", "null", "undefined":
		return "", false
	default:
		return owner, true
	}
}
