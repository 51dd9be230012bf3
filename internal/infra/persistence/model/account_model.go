package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. IDs are generated by the
// application so the seeding path can reference them before insert.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(120);unique;not null;index"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"not null"`

	Guide *GuideModel `gorm:"foreignKey:ID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
