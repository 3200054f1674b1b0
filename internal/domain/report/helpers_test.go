package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/models"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func newShift(hospitalID uuid.UUID, day, value, status string) models.Shift {
	return models.Shift{
		ID:         uuid.New(),
		HospitalID: hospitalID,
		Date:       date(day),
		GrossValue: decimal.RequireFromString(value),
		Status:     status,
	}
}
