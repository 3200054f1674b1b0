package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/report"
	shiftdomain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// UpcomingLimit is the size of the "próximos recebimentos" list.
const UpcomingLimit = 5

type DashboardView struct {
	Month        time.Time
	Totals       domain.StatusTotals
	ReceivedRate float64
	Overdue      domain.OverdueTotals
	Upcoming     []models.Shift
	ByHospital   []domain.HospitalTotal
}

type Dashboard struct {
	repo shiftdomain.Repository
}

func NewDashboard(repo shiftdomain.Repository) *Dashboard {
	return &Dashboard{repo: repo}
}

// Execute summarizes today's month. Overdue and upcoming look at every
// shift still awaiting payment, whatever its month.
func (uc *Dashboard) Execute(
	ctx context.Context,
	sess session.Session,
	today time.Time,
) (*DashboardView, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	start, end, err := domain.MonthWindow(today.Year(), today.Month())
	if err != nil {
		return nil, err
	}

	month, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, shiftdomain.ShiftFilter{
		From: &start,
		To:   &end,
	})
	if err != nil {
		return nil, err
	}

	pending, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, shiftdomain.ShiftFilter{
		AwaitingPayment: true,
	})
	if err != nil {
		return nil, err
	}

	names, err := hospitalNames(ctx, uc.repo, sess.ProfessionalID)
	if err != nil {
		return nil, err
	}

	totals := domain.TotalsByStatus(month)

	return &DashboardView{
		Month:        start,
		Totals:       totals,
		ReceivedRate: domain.Percentage(totals.Received.Add(totals.Conciliated), totals.Total),
		Overdue:      domain.OverdueSummary(pending, today),
		Upcoming:     domain.Upcoming(pending, today, UpcomingLimit),
		ByHospital:   domain.HospitalShares(domain.TotalsByHospital(month), names),
	}, nil
}
