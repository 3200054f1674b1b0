package report

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

// ===============================
// Per hospital
// ===============================

type HospitalTotal struct {
	HospitalID uuid.UUID       `json:"hospital_id"`
	Name       string          `json:"name"`
	Count      int             `json:"count"`
	Value      decimal.Decimal `json:"value"`
	Share      float64         `json:"share"`
}

func TotalsByHospital(shifts []models.Shift) map[uuid.UUID]HospitalTotal {
	totals := make(map[uuid.UUID]HospitalTotal)
	for _, s := range shifts {
		t := totals[s.HospitalID]
		t.HospitalID = s.HospitalID
		t.Count++
		t.Value = t.Value.Add(s.GrossValue)
		totals[s.HospitalID] = t
	}
	return totals
}

// HospitalShares flattens the totals, fills names and the percentage of the
// overall value, largest first.
func HospitalShares(totals map[uuid.UUID]HospitalTotal, names map[uuid.UUID]string) []HospitalTotal {
	overall := decimal.Zero
	for _, t := range totals {
		overall = overall.Add(t.Value)
	}

	out := make([]HospitalTotal, 0, len(totals))
	for id, t := range totals {
		t.Name = names[id]
		t.Share = Percentage(t.Value, overall)
		out = append(out, t)
	}

	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Value.Cmp(out[j].Value); c != 0 {
			return c > 0
		}
		return out[i].HospitalID.String() < out[j].HospitalID.String()
	})
	return out
}

// Percentage returns part/total*100 rounded to two places, 0 when total is 0.
func Percentage(part, total decimal.Decimal) float64 {
	if total.IsZero() {
		return 0
	}
	pct, _ := part.Div(total).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

// ===============================
// Per status
// ===============================

type StatusTotals struct {
	Count       int             `json:"count"`
	Total       decimal.Decimal `json:"total"`
	Received    decimal.Decimal `json:"received"`
	Expected    decimal.Decimal `json:"expected"`
	Conciliated decimal.Decimal `json:"conciliated"`
}

// TotalsByStatus sums gross values: RECEBIDO into Received, PREVISTO and
// LANCADO into Expected, CONCILIADO into Conciliated. Unknown statuses only
// count toward Total.
func TotalsByStatus(shifts []models.Shift) StatusTotals {
	t := StatusTotals{
		Total:       decimal.Zero,
		Received:    decimal.Zero,
		Expected:    decimal.Zero,
		Conciliated: decimal.Zero,
	}

	for _, s := range shifts {
		t.Count++
		t.Total = t.Total.Add(s.GrossValue)

		st, ok := domain.ParseStatus(s.Status)
		if !ok {
			continue
		}
		switch st {
		case domain.StatusRecebido:
			t.Received = t.Received.Add(s.GrossValue)
		case domain.StatusPrevisto, domain.StatusLancado:
			t.Expected = t.Expected.Add(s.GrossValue)
		case domain.StatusConciliado:
			t.Conciliated = t.Conciliated.Add(s.GrossValue)
		}
	}

	return t
}

// ===============================
// Overdue / upcoming (dashboard)
// ===============================

type OverdueTotals struct {
	Count int             `json:"count"`
	Value decimal.Decimal `json:"value"`
}

func OverdueSummary(shifts []models.Shift, today time.Time) OverdueTotals {
	out := OverdueTotals{Value: decimal.Zero}
	for _, s := range shifts {
		display := domain.DisplayStatus(s.Status, s.ExpectedPaymentDate, len(s.Receipts) > 0, today)
		if display == domain.DisplayOverdue {
			out.Count++
			out.Value = out.Value.Add(s.GrossValue)
		}
	}
	return out
}

// Upcoming lists unpaid shifts whose expected payment is today or later,
// soonest first.
func Upcoming(shifts []models.Shift, today time.Time, limit int) []models.Shift {
	out := make([]models.Shift, 0)
	for _, s := range shifts {
		if s.ExpectedPaymentDate == nil || len(s.Receipts) > 0 {
			continue
		}
		st, ok := domain.ParseStatus(s.Status)
		if !ok || (st != domain.StatusLancado && st != domain.StatusPrevisto) {
			continue
		}
		if DayKey(*s.ExpectedPaymentDate) < DayKey(today) {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ExpectedPaymentDate.Before(*out[j].ExpectedPaymentDate)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
