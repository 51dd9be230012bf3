package model

import (
	"github.com/google/uuid"
)

// GuideModel mirrors the 'guides' table. The primary key is also a foreign
// key to accounts.id, enforcing the one-to-one ownership. The FK is
// RESTRICT: an account cannot be deleted while its guide profile exists.
//
// Specialties, languages and areas are comma-joined tag strings, matched
// by the directory filter with ILIKE substring comparisons.
type GuideModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;constraint:OnDelete:RESTRICT"`
	NameRomanized string    `gorm:"type:varchar(120)"`
	Bio           string    `gorm:"type:varchar(1000)"`
	Specialties   string    `gorm:"type:varchar(255)"`
	Rating        float64
	Languages     string `gorm:"type:varchar(255)"`
	Areas         string `gorm:"type:varchar(255)"`
	PriceRange    string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (GuideModel) TableName() string {
	return "guides"
}
