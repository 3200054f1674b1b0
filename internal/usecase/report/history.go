package report

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/report"
	shiftdomain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

type HistoryView struct {
	From       time.Time
	To         time.Time
	Shifts     []models.Shift
	Totals     domain.StatusTotals
	ByHospital []domain.HospitalTotal
}

func summarize(shifts []models.Shift, from, to time.Time, names map[uuid.UUID]string) *HistoryView {
	return &HistoryView{
		From:       from,
		To:         to,
		Shifts:     shifts,
		Totals:     domain.TotalsByStatus(shifts),
		ByHospital: domain.HospitalShares(domain.TotalsByHospital(shifts), names),
	}
}

func hospitalNames(ctx context.Context, repo shiftdomain.Repository, professionalID uuid.UUID) (map[uuid.UUID]string, error) {
	hospitals, err := repo.ListHospitals(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(hospitals))
	for _, h := range hospitals {
		names[h.ID] = h.Name
	}
	return names, nil
}

// ======================================================
// HISTORY (one month)
// ======================================================

type History struct {
	repo shiftdomain.Repository
}

func NewHistory(repo shiftdomain.Repository) *History {
	return &History{repo: repo}
}

func (uc *History) Execute(
	ctx context.Context,
	sess session.Session,
	year int,
	month time.Month,
) (*HistoryView, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	start, end, err := domain.MonthWindow(year, month)
	if err != nil {
		return nil, err
	}

	shifts, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, shiftdomain.ShiftFilter{
		From:       &start,
		To:         &end,
		Descending: true,
	})
	if err != nil {
		return nil, err
	}

	names, err := hospitalNames(ctx, uc.repo, sess.ProfessionalID)
	if err != nil {
		return nil, err
	}

	return summarize(domain.FilterRange(shifts, start, end), start, end, names), nil
}

// ======================================================
// HISTORY RANGE (filters + CSV export)
// ======================================================

type RangeFilter struct {
	From       string
	To         string
	HospitalID string
	Status     string
}

// monthsBack is how far the range reaches when no start is given.
const monthsBack = 3

type HistoryRange struct {
	repo shiftdomain.Repository
	tz   string
}

func NewHistoryRange(repo shiftdomain.Repository, tz string) *HistoryRange {
	return &HistoryRange{repo: repo, tz: tz}
}

// DefaultRange runs from the first day of the month three months before
// today through the last day of today's month.
func DefaultRange(today time.Time) (time.Time, time.Time) {
	y, m, _ := today.Date()
	from := time.Date(y, m-monthsBack, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC)
	return from, to
}

func (uc *HistoryRange) Execute(
	ctx context.Context,
	sess session.Session,
	in RangeFilter,
) (*HistoryView, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	from, to := DefaultRange(timezone.TodayIn(uc.tz))

	if v := strings.TrimSpace(in.From); v != "" {
		d, err := timezone.ParseDate(v)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_from", "Data inicial inválida (AAAA-MM-DD).")
		}
		from = d
	}
	if v := strings.TrimSpace(in.To); v != "" {
		d, err := timezone.ParseDate(v)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_to", "Data final inválida (AAAA-MM-DD).")
		}
		to = d
	}
	if to.Before(from) {
		return nil, httperr.ErrValidation("invalid_range", "Data final anterior à data inicial.")
	}

	filter := shiftdomain.ShiftFilter{
		From:       &from,
		To:         &to,
		Descending: true,
	}

	if v := strings.TrimSpace(in.HospitalID); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_hospital", "Hospital inválido.")
		}
		filter.HospitalID = &id
	}

	if v := strings.TrimSpace(in.Status); v != "" {
		if _, ok := shiftdomain.ParseStatus(v); !ok {
			return nil, httperr.ErrValidation("invalid_status", "Status inválido.")
		}
		filter.Status = v
	}

	shifts, err := uc.repo.ListShifts(ctx, sess.ProfessionalID, filter)
	if err != nil {
		return nil, err
	}

	names, err := hospitalNames(ctx, uc.repo, sess.ProfessionalID)
	if err != nil {
		return nil, err
	}

	return summarize(shifts, from, to, names), nil
}
