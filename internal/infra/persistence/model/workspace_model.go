// Package model holds the GORM table mappings.
package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceModel is the GORM-specific struct for the 'folders' table.
type WorkspaceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	OwnerID   *string   `gorm:"column:user_id;type:varchar(255);index"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WorkspaceModel) TableName() string {
	return "folders"
}
