package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/money"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

type ReceiptDTO struct {
	ID            uuid.UUID       `json:"id"`
	ReceivedValue decimal.Decimal `json:"received_value"`
	ReceivedFmt   string          `json:"received_value_fmt"`
	ReceivedOn    string          `json:"received_on"`
	Conciliated   bool            `json:"conciliated"`
	ConciliatedAt *time.Time      `json:"conciliated_at,omitempty"`
	ProofURL      string          `json:"proof_url,omitempty"`
}

// ShiftListDTO carries both the stored status and the one shown to the
// user (ATRASADO, or RECEBIDO when a receipt exists).
type ShiftListDTO struct {
	ID                  uuid.UUID       `json:"id"`
	HospitalID          uuid.UUID       `json:"hospital_id"`
	HospitalName        string          `json:"hospital_name"`
	Date                string          `json:"date"`
	StartTime           string          `json:"start_time,omitempty"`
	EndTime             string          `json:"end_time,omitempty"`
	Label               string          `json:"label,omitempty"`
	GrossValue          decimal.Decimal `json:"gross_value"`
	GrossValueFmt       string          `json:"gross_value_fmt"`
	Notes               string          `json:"notes,omitempty"`
	Status              string          `json:"status"`
	DisplayStatus       string          `json:"display_status"`
	StatusLabel         string          `json:"status_label"`
	StatusColor         string          `json:"status_color"`
	ExpectedPaymentDate *string         `json:"expected_payment_date"`
	Deletable           bool            `json:"deletable"`
	Receipt             *ReceiptDTO     `json:"receipt,omitempty"`
}

func FromShift(s models.Shift, today time.Time) ShiftListDTO {
	display := domain.DisplayStatus(s.Status, s.ExpectedPaymentDate, len(s.Receipts) > 0, today)

	out := ShiftListDTO{
		ID:            s.ID,
		HospitalID:    s.HospitalID,
		Date:          timezone.FormatDate(s.Date),
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		Label:         s.Label,
		GrossValue:    s.GrossValue,
		GrossValueFmt: money.FormatBRL(s.GrossValue),
		Notes:         s.Notes,
		Status:        s.Status,
		DisplayStatus: display,
		StatusLabel:   domain.Label(display),
		StatusColor:   domain.Color(display),
		Deletable:     domain.CanDelete(s.Status) == nil,
	}

	if s.Hospital != nil {
		out.HospitalName = s.Hospital.Name
	}
	if s.ExpectedPaymentDate != nil {
		d := timezone.FormatDate(*s.ExpectedPaymentDate)
		out.ExpectedPaymentDate = &d
	}
	if r := s.FirstReceipt(); r != nil {
		out.Receipt = &ReceiptDTO{
			ID:            r.ID,
			ReceivedValue: r.ReceivedValue,
			ReceivedFmt:   money.FormatBRL(r.ReceivedValue),
			ReceivedOn:    timezone.FormatDate(r.ReceivedOn),
			Conciliated:   r.Conciliated,
			ConciliatedAt: r.ConciliatedAt,
			ProofURL:      r.ProofURL,
		}
	}

	return out
}

func FromShifts(shifts []models.Shift, today time.Time) []ShiftListDTO {
	out := make([]ShiftListDTO, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, FromShift(s, today))
	}
	return out
}
