package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel is the GORM-specific struct for the legacy 'accounts' table.
// Rows are append-only; there is no uniqueness constraint besides the ID.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	WorkspaceID  uuid.UUID `gorm:"column:folder_id;type:uuid;not null;index"`
	OwnerID      *string   `gorm:"column:user_id;type:varchar(255);index"`
	Platform     string    `gorm:"type:varchar(32);not null"`
	Nickname     string    `gorm:"type:varchar(255);not null"`
	AccessToken  string    `gorm:"type:text;not null"`
	RefreshToken string    `gorm:"type:text"`
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
