package entity

import (
	"time"

	"github.com/google/uuid"
)

// Token is the canonical credential, unique per (workspace, platform, external account).
type Token struct {
	ID                uuid.UUID
	WorkspaceID       uuid.UUID
	Platform          Platform
	ExternalAccountID string
	AccessToken       string
	RefreshToken      string
	ExpiresAt         *time.Time
	Scope             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// IsComplete reports whether the record carries every field of the upsert key
// plus a credential.
func (t *Token) IsComplete() bool {
	return t != nil &&
		t.WorkspaceID != uuid.Nil &&
		t.Platform != "" &&
		t.ExternalAccountID != "" &&
		t.AccessToken != ""
}

// Summary strips credential material for listing.
func (t *Token) Summary() TokenSummary {
	return TokenSummary{
		WorkspaceID:       t.WorkspaceID,
		Platform:          t.Platform,
		ExternalAccountID: t.ExternalAccountID,
		ExpiresAt:         t.ExpiresAt,
		Scope:             t.Scope,
		HasRefreshToken:   t.RefreshToken != "",
		UpdatedAt:         t.UpdatedAt,
	}
}

// TokenSummary is the listing view of a Token.
type TokenSummary struct {
	WorkspaceID       uuid.UUID  `json:"folder_id"`
	Platform          Platform   `json:"platform"`
	ExternalAccountID string     `json:"external_account_id"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	Scope             string     `json:"scope,omitempty"`
	HasRefreshToken   bool       `json:"has_refresh_token"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
