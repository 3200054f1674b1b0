package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Receipt struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`
	ShiftID        uuid.UUID `gorm:"type:uuid;index;not null" json:"shift_id"`

	ReceivedValue decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"received_value"`
	ReceivedOn    time.Time       `gorm:"type:date;not null" json:"received_on"`

	Conciliated   bool       `gorm:"default:false" json:"conciliated"`
	ConciliatedAt *time.Time `json:"conciliated_at"`
	ProofURL      string     `gorm:"size:500" json:"proof_url"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
