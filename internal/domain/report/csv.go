package report

import (
	"encoding/csv"
	"io"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/money"
)

const csvDateLayout = "02/01/2006"

var csvHeader = []string{
	"Data",
	"Hospital",
	"Horário",
	"Valor Bruto",
	"Status",
	"Previsão de Pagamento",
	"Data Recebimento",
	"Valor Recebido",
}

// WriteCSV exports the history as ';' separated rows with pt-BR dates and
// decimal commas. Only the first receipt of a shift is exported.
func WriteCSV(w io.Writer, shifts []models.Shift) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range shifts {
		if err := cw.Write(csvRow(s)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(s models.Shift) []string {
	hospital := "-"
	if s.Hospital != nil {
		hospital = s.Hospital.Name
	}

	schedule := "-"
	switch {
	case s.StartTime != "" && s.EndTime != "":
		schedule = s.StartTime + " - " + s.EndTime
	case s.Label != "":
		schedule = s.Label
	}

	expected := "-"
	if s.ExpectedPaymentDate != nil {
		expected = s.ExpectedPaymentDate.Format(csvDateLayout)
	}

	receivedOn, receivedValue := "-", "-"
	if r := s.FirstReceipt(); r != nil {
		receivedOn = r.ReceivedOn.Format(csvDateLayout)
		receivedValue = money.CSVAmount(r.ReceivedValue)
	}

	return []string{
		s.Date.Format(csvDateLayout),
		hospital,
		schedule,
		money.CSVAmount(s.GrossValue),
		statusText(s.Status),
		expected,
		receivedOn,
		receivedValue,
	}
}

// statusText keeps the raw value for statuses it does not know.
func statusText(status string) string {
	if _, ok := domain.ParseStatus(status); ok {
		return domain.Label(status)
	}
	return status
}
