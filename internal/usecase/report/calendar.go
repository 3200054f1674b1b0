package report

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/report"
	shiftdomain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// ======================================================
// CALENDAR
// ======================================================

// CalendarView carries two collections: shifts by the day they were worked
// and unpaid shifts by the day their payment is expected.
type CalendarView struct {
	Year        int
	Month       time.Month
	Days        []string
	Selected    time.Time
	Shifts      []models.Shift
	PaymentDays []string
	Payments    []models.Shift
}

type Calendar struct {
	repo shiftdomain.Repository
}

func NewCalendar(repo shiftdomain.Repository) *Calendar {
	return &Calendar{repo: repo}
}

// Execute loads the month once and answers both the highlighted days and
// the list of the selected day. An empty selection means the first day of
// the month.
func (uc *Calendar) Execute(
	ctx context.Context,
	sess session.Session,
	year int,
	month time.Month,
	selected string,
) (*CalendarView, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	start, end, err := domain.MonthWindow(year, month)
	if err != nil {
		return nil, err
	}

	day := start
	if selected = strings.TrimSpace(selected); selected != "" {
		day, err = timezone.ParseDate(selected)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_date", "Data selecionada inválida (AAAA-MM-DD).")
		}
	}

	shifts, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, shiftdomain.ShiftFilter{
		From: &start,
		To:   &end,
	})
	if err != nil {
		return nil, err
	}

	// Pagamentos previstos no mês, mesmo de plantões de meses anteriores
	pending, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, shiftdomain.ShiftFilter{
		ExpectedFrom:    &start,
		ExpectedTo:      &end,
		AwaitingPayment: true,
	})
	if err != nil {
		return nil, err
	}

	idx := domain.IndexByDay(shifts)
	payments := domain.IndexByExpectedDay(pending)

	return &CalendarView{
		Year:        year,
		Month:       month,
		Days:        idx.Days(),
		Selected:    day,
		Shifts:      idx.On(day),
		PaymentDays: payments.Days(),
		Payments:    payments.On(day),
	}, nil
}
