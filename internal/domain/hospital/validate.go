package hospital

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

var validate = validator.New()

type terms struct {
	Name            string `validate:"required,max=150"`
	TaxID           string `validate:"omitempty,max=18"`
	PaymentTermDays int    `validate:"gte=0"`
	CutoffDay       int    `validate:"gte=0,lte=31"`
}

var fieldErrors = map[string]httperr.ValidationError{
	"Name":            {Code: "invalid_name", Message: "Informe o nome do hospital."},
	"TaxID":           {Code: "invalid_tax_id", Message: "CNPJ inválido."},
	"PaymentTermDays": {Code: "invalid_payment_term", Message: "Prazo de pagamento não pode ser negativo."},
	"CutoffDay":       {Code: "invalid_cutoff_day", Message: "Dia de corte deve estar entre 0 e 31."},
}

// Validate checks the invariants of a hospital before it is written.
func Validate(h *models.Hospital) error {
	err := validate.Struct(terms{
		Name:            strings.TrimSpace(h.Name),
		TaxID:           h.TaxID,
		PaymentTermDays: h.PaymentTermDays,
		CutoffDay:       h.CutoffDay,
	})

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if fe, ok := fieldErrors[verrs[0].Field()]; ok {
			return fe
		}
		return httperr.ErrValidation("invalid_hospital", "Dados do hospital inválidos.")
	}
	if err != nil {
		return httperr.ErrValidation("invalid_hospital", "Dados do hospital inválidos.")
	}

	if h.DefaultValue != nil && h.DefaultValue.LessThan(decimal.Zero) {
		return httperr.ErrValidation("invalid_default_value", "Valor padrão deve ser maior ou igual a zero.")
	}

	return nil
}
