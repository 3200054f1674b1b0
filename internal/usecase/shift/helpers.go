package shift

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

func resolveValue(in domain.Fields, hospital *models.Hospital) (decimal.Decimal, error) {
	if in.GrossValue != nil {
		return *in.GrossValue, nil
	}
	if hospital.DefaultValue != nil {
		return *hospital.DefaultValue, nil
	}
	return decimal.Zero, httperr.ErrValidation("invalid_value", "Informe o valor do plantão.")
}

func parseShiftID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errShiftNotFound
	}
	return id, nil
}

var errShiftNotFound = httperr.ErrNotFound("shift_not_found", "Plantão não encontrado.")
