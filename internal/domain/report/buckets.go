package report

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// DayKey identifies a calendar day by the value's own Y/M/D.
func DayKey(t time.Time) string {
	return timezone.FormatDate(timezone.DateOf(t))
}

// ===============================
// Day lookup (calendar)
// ===============================

type DayIndex map[string][]models.Shift

func IndexByDay(shifts []models.Shift) DayIndex {
	idx := make(DayIndex)
	for _, s := range shifts {
		key := DayKey(s.Date)
		idx[key] = append(idx[key], s)
	}
	return idx
}

// IndexByExpectedDay buckets by expected payment date; shifts without one
// are left out.
func IndexByExpectedDay(shifts []models.Shift) DayIndex {
	idx := make(DayIndex)
	for _, s := range shifts {
		if s.ExpectedPaymentDate == nil {
			continue
		}
		key := DayKey(*s.ExpectedPaymentDate)
		idx[key] = append(idx[key], s)
	}
	return idx
}

func (idx DayIndex) Has(day time.Time) bool {
	return len(idx[DayKey(day)]) > 0
}

func (idx DayIndex) On(day time.Time) []models.Shift {
	out := idx[DayKey(day)]
	if out == nil {
		return []models.Shift{}
	}
	return out
}

// Days lists the days that have at least one shift, in order.
func (idx DayIndex) Days() []string {
	days := make([]string, 0, len(idx))
	for k, v := range idx {
		if len(v) > 0 {
			days = append(days, k)
		}
	}
	sort.Strings(days)
	return days
}

// ===============================
// Month window (closed interval)
// ===============================

func MonthWindow(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, httperr.ErrValidation("invalid_month", "Mês inválido.")
	}

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end, nil
}

// FilterMonth keeps shifts dated within [first day, last day] of the month.
func FilterMonth(shifts []models.Shift, year int, month time.Month) ([]models.Shift, error) {
	start, end, err := MonthWindow(year, month)
	if err != nil {
		return nil, err
	}
	return FilterRange(shifts, start, end), nil
}

// FilterRange is inclusive on both calendar days.
func FilterRange(shifts []models.Shift, from, to time.Time) []models.Shift {
	out := make([]models.Shift, 0, len(shifts))
	for _, s := range shifts {
		if timezone.BeforeDay(s.Date, from) || timezone.BeforeDay(to, s.Date) {
			continue
		}
		out = append(out, s)
	}
	return out
}
