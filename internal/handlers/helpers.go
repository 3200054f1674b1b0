package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

func bindError(c *gin.Context, err error) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos: "+err.Error())
}

// parseHospitalID accepts an empty value as "not selected".
func parseHospitalID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, httperr.ErrValidation("invalid_hospital", "Hospital inválido.")
	}
	return id, nil
}

// yearMonth reads ?year=&month=, defaulting to the current month.
func yearMonth(c *gin.Context, tz string) (int, time.Month, error) {
	today := timezone.TodayIn(tz)
	year, month := today.Year(), today.Month()

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1900 || y > 9999 {
			return 0, 0, httperr.ErrValidation("invalid_year", "Ano inválido.")
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, httperr.ErrValidation("invalid_month", "Mês inválido.")
		}
		month = time.Month(m)
	}

	return year, month, nil
}
