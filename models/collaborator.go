package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collaborator roles
const (
	RoleManicure    = "Manicure"
	RoleHairdresser = "Cabeleireira"
	RoleBoth        = "Ambas"
)

func ValidRole(role string) bool {
	switch role {
	case RoleManicure, RoleHairdresser, RoleBoth:
		return true
	}
	return false
}

type Collaborator struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name string    `gorm:"not null" json:"name"`
	Role string    `gorm:"type:varchar(20);not null" json:"role"`

	// Procedures this collaborator is allowed to perform. References are not
	// enforced against the procedures table; dangling ids degrade to a
	// placeholder label on read.
	AllowedProcedureIDs StringList `gorm:"type:jsonb;default:'[]'" json:"allowedProcedureIds"`

	Notes    string `json:"notes"`
	IsActive bool   `gorm:"default:true" json:"active"`

	gorm.Model `json:"-"`
}

func (c *Collaborator) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// StringList is a JSONB-backed string slice used for allowed procedure ids
// and selected extras.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, l)
}

func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}
