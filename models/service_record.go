package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service record statuses
const (
	StatusDone    = "Fez"
	StatusNotDone = "Não Fez"
)

func ValidStatus(status string) bool {
	return status == StatusDone || status == StatusNotDone
}

// ExtraOptions is the fixed list of selectable add-on services. Presence of
// any extra (not the count) triggers one flat surcharge.
var ExtraOptions = []string{"Limpeza", "São Miguel", "Toalhas", "Limpeza Alicates"}

func ValidExtra(extra string) bool {
	for _, opt := range ExtraOptions {
		if opt == extra {
			return true
		}
	}
	return false
}

// ServiceRecord is an immutable appointment entry. Date is stored as a plain
// YYYY-MM-DD string, never as a timestamp, so that filtering and grouping can
// compare dates lexically without timezone shifts. CalculatedValue is frozen
// at creation time and never recomputed from the current price config.
type ServiceRecord struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"type:varchar(10);index;not null" json:"date"`

	CollaboratorID uuid.UUID `gorm:"type:uuid;index;not null" json:"collaboratorId"`
	ProcedureID    uuid.UUID `gorm:"type:uuid;index;not null" json:"procedureId"`

	Status string     `gorm:"type:varchar(20);not null" json:"status"`
	Notes  string     `json:"notes"`
	Extras StringList `gorm:"type:jsonb;default:'[]'" json:"extras"`

	CalculatedValue decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"calculatedValue"`

	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (r *ServiceRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return
}
