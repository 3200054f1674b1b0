package shift

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

var validate = validator.New()

// Fields is the editable part of a shift as typed in the form.
type Fields struct {
	HospitalID uuid.UUID
	Date       string
	StartTime  string
	EndTime    string
	Label      string
	Notes      string
	GrossValue *decimal.Decimal
}

type formFields struct {
	Date      string `validate:"required,datetime=2006-01-02"`
	StartTime string `validate:"omitempty,datetime=15:04"`
	EndTime   string `validate:"omitempty,datetime=15:04"`
	Label     string `validate:"max=50"`
	Notes     string `validate:"max=500"`
}

var fieldErrors = map[string]httperr.ValidationError{
	"Date":      {Code: "invalid_date", Message: "Informe uma data válida (AAAA-MM-DD)."},
	"StartTime": {Code: "invalid_start_time", Message: "Horário de início inválido (HH:MM)."},
	"EndTime":   {Code: "invalid_end_time", Message: "Horário de término inválido (HH:MM)."},
	"Label":     {Code: "invalid_label", Message: "Turno muito longo."},
	"Notes":     {Code: "invalid_notes", Message: "Observações muito longas."},
}

// ValidateFields checks the form and returns the parsed calendar date.
// A nil value is accepted here; the caller falls back to the hospital's
// default value.
func ValidateFields(f Fields) (time.Time, error) {
	if f.HospitalID == uuid.Nil {
		return time.Time{}, httperr.ErrValidation("invalid_hospital", "Selecione um hospital.")
	}

	err := validate.Struct(formFields{
		Date:      strings.TrimSpace(f.Date),
		StartTime: f.StartTime,
		EndTime:   f.EndTime,
		Label:     f.Label,
		Notes:     f.Notes,
	})

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if fe, ok := fieldErrors[verrs[0].Field()]; ok {
			return time.Time{}, fe
		}
	}
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_shift", "Dados do plantão inválidos.")
	}

	if f.GrossValue != nil && f.GrossValue.IsNegative() {
		return time.Time{}, httperr.ErrValidation("invalid_value", "Valor deve ser maior ou igual a zero.")
	}

	date, err := timezone.ParseDate(strings.TrimSpace(f.Date))
	if err != nil {
		return time.Time{}, fieldErrors["Date"]
	}

	return date, nil
}

// ===============================
// Receipt form
// ===============================

func ValidateReceipt(value decimal.Decimal, receivedOn string) (time.Time, error) {
	if value.IsNegative() {
		return time.Time{}, httperr.ErrValidation("invalid_received_value", "Valor recebido deve ser maior ou igual a zero.")
	}

	receivedOn = strings.TrimSpace(receivedOn)
	if receivedOn == "" {
		return time.Time{}, httperr.ErrValidation("invalid_received_on", "Informe a data do recebimento.")
	}

	day, err := timezone.ParseDate(receivedOn)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_received_on", "Data do recebimento inválida (AAAA-MM-DD).")
	}

	return day, nil
}
