package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Hospital struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`

	Name  string `gorm:"size:150;not null" json:"name"`
	TaxID string `gorm:"size:18" json:"tax_id"`

	PaymentTermDays int              `gorm:"not null;default:0" json:"payment_term_days"`
	CutoffDay       int              `gorm:"not null;default:0" json:"cutoff_day"`
	DefaultValue    *decimal.Decimal `gorm:"type:numeric(12,2)" json:"default_value"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (h *Hospital) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
