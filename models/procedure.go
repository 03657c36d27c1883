package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Procedure categories
const (
	CategoryManicure          = "Manicure"
	CategoryHairdresserFemale = "Cabeleireira – Feminino"
	CategoryHairdresserMale   = "Cabeleireira – Masculino"
	CategoryExtras            = "Extras"
)

func ValidCategory(category string) bool {
	switch category {
	case CategoryManicure, CategoryHairdresserFemale, CategoryHairdresserMale, CategoryExtras:
		return true
	}
	return false
}

type Procedure struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Category string    `gorm:"type:varchar(40);not null" json:"category"`
	IsActive bool      `gorm:"default:true" json:"active"`

	gorm.Model `json:"-"`
}

func (p *Procedure) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
