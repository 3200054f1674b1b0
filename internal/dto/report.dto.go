package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/domain/report"
	"github.com/BruksfildServices01/plantoes/internal/money"
)

type TotalsDTO struct {
	Count          int             `json:"count"`
	Total          decimal.Decimal `json:"total"`
	TotalFmt       string          `json:"total_fmt"`
	Received       decimal.Decimal `json:"received"`
	ReceivedFmt    string          `json:"received_fmt"`
	Expected       decimal.Decimal `json:"expected"`
	ExpectedFmt    string          `json:"expected_fmt"`
	Conciliated    decimal.Decimal `json:"conciliated"`
	ConciliatedFmt string          `json:"conciliated_fmt"`
}

func FromTotals(t report.StatusTotals) TotalsDTO {
	return TotalsDTO{
		Count:          t.Count,
		Total:          t.Total,
		TotalFmt:       money.FormatBRL(t.Total),
		Received:       t.Received,
		ReceivedFmt:    money.FormatBRL(t.Received),
		Expected:       t.Expected,
		ExpectedFmt:    money.FormatBRL(t.Expected),
		Conciliated:    t.Conciliated,
		ConciliatedFmt: money.FormatBRL(t.Conciliated),
	}
}

type HospitalTotalDTO struct {
	report.HospitalTotal
	ValueFmt string `json:"value_fmt"`
}

func FromHospitalTotals(in []report.HospitalTotal) []HospitalTotalDTO {
	out := make([]HospitalTotalDTO, 0, len(in))
	for _, t := range in {
		out = append(out, HospitalTotalDTO{HospitalTotal: t, ValueFmt: money.FormatBRL(t.Value)})
	}
	return out
}
