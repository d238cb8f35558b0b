package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is the legacy, append-only record written on every successful link.
type Account struct {
	ID           uuid.UUID `json:"id"`
	WorkspaceID  uuid.UUID `json:"folder_id"`
	OwnerID      *string   `json:"user_id"`
	Platform     Platform  `json:"platform"`
	Nickname     string    `json:"nickname"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}
