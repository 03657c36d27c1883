package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PriceConfig holds the three amounts used to value a service record:
// the price when performed, the price when not performed (no-show fee) and a
// flat surcharge applied once when any extras were selected. At most one
// active config per procedure is meaningful; the price controller deactivates
// the previous one on create.
type PriceConfig struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProcedureID uuid.UUID `gorm:"type:uuid;index;not null" json:"procedureId"`

	ValueDone       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valueDone"`
	ValueNotDone    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valueNotDone"`
	ValueAdditional decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"valueAdditional"`

	IsActive bool `gorm:"default:true" json:"active"`

	gorm.Model `json:"-"`
}

func (p *PriceConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
