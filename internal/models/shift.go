package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Shift é um plantão: um período trabalhado em um hospital numa data.
type Shift struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ProfessionalID uuid.UUID `gorm:"type:uuid;index;not null" json:"professional_id"`

	HospitalID uuid.UUID `gorm:"type:uuid;index;not null" json:"hospital_id"`
	Hospital   *Hospital `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"hospital,omitempty"`

	Date      time.Time `gorm:"type:date;index;not null" json:"date"`
	StartTime string    `gorm:"size:5" json:"start_time"`
	EndTime   string    `gorm:"size:5" json:"end_time"`
	Label     string    `gorm:"size:50" json:"label"`

	GrossValue decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"gross_value"`
	Notes      string          `gorm:"size:500" json:"notes"`

	Status              string     `gorm:"size:20;index;default:'LANCADO'" json:"status"`
	ExpectedPaymentDate *time.Time `gorm:"type:date" json:"expected_payment_date"`

	Receipts []Receipt `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"receipts,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Shift) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// FirstReceipt returns the receipt views read; a shift is expected to have
// at most one.
func (s *Shift) FirstReceipt() *Receipt {
	if len(s.Receipts) == 0 {
		return nil
	}
	return &s.Receipts[0]
}
