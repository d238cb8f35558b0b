package model

import (
	"time"

	"github.com/google/uuid"
)

// TokenModel is the GORM-specific struct for the canonical 'tokens' table.
type TokenModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tokens_identity,priority:1"`
	Platform          string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_tokens_identity,priority:2"`
	ExternalAccountID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_tokens_identity,priority:3"`
	AccessToken       string    `gorm:"type:text;not null"`
	RefreshToken      string    `gorm:"type:text"`
	ExpiresAt         *time.Time
	Scope             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (TokenModel) TableName() string {
	return "tokens"
}
