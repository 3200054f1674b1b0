// Package usecasetest holds in-memory stores for use case tests.
package usecasetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

// ShiftRepo scopes every lookup by professional the way the gorm store does.
type ShiftRepo struct {
	Hospitals map[uuid.UUID]models.Hospital
	Shifts    map[uuid.UUID]models.Shift

	FailRecord error
}

func NewShiftRepo() *ShiftRepo {
	return &ShiftRepo{
		Hospitals: make(map[uuid.UUID]models.Hospital),
		Shifts:    make(map[uuid.UUID]models.Shift),
	}
}

func (f *ShiftRepo) GetHospital(_ context.Context, professionalID, hospitalID uuid.UUID) (*models.Hospital, error) {
	h, ok := f.Hospitals[hospitalID]
	if !ok || h.ProfessionalID != professionalID {
		return nil, httperr.ErrNotFound("hospital_not_found", "Hospital não encontrado.")
	}
	return &h, nil
}

func (f *ShiftRepo) ListHospitals(_ context.Context, professionalID uuid.UUID) ([]models.Hospital, error) {
	out := []models.Hospital{}
	for _, h := range f.Hospitals {
		if h.ProfessionalID == professionalID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *ShiftRepo) ListShifts(_ context.Context, professionalID uuid.UUID, filter domain.ShiftFilter) ([]models.Shift, error) {
	out := []models.Shift{}
	for _, s := range f.Shifts {
		if s.ProfessionalID != professionalID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		if filter.AwaitingPayment && s.Status != string(domain.StatusLancado) && s.Status != string(domain.StatusPrevisto) {
			continue
		}
		if filter.HospitalID != nil && s.HospitalID != *filter.HospitalID {
			continue
		}
		if filter.From != nil && timezone.BeforeDay(s.Date, *filter.From) {
			continue
		}
		if filter.To != nil && timezone.BeforeDay(*filter.To, s.Date) {
			continue
		}
		if filter.ExpectedFrom != nil || filter.ExpectedTo != nil {
			if s.ExpectedPaymentDate == nil {
				continue
			}
			if filter.ExpectedFrom != nil && timezone.BeforeDay(*s.ExpectedPaymentDate, *filter.ExpectedFrom) {
				continue
			}
			if filter.ExpectedTo != nil && timezone.BeforeDay(*filter.ExpectedTo, *s.ExpectedPaymentDate) {
				continue
			}
		}
		if h, ok := f.Hospitals[s.HospitalID]; ok {
			s.Hospital = &h
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if filter.Descending {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].Date.Before(out[j].Date)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *ShiftRepo) GetShift(_ context.Context, professionalID, shiftID uuid.UUID) (*models.Shift, error) {
	s, ok := f.Shifts[shiftID]
	if !ok || s.ProfessionalID != professionalID {
		return nil, httperr.ErrNotFound("shift_not_found", "Plantão não encontrado.")
	}
	s.Receipts = append([]models.Receipt(nil), s.Receipts...)
	return &s, nil
}

func (f *ShiftRepo) CreateShift(_ context.Context, s *models.Shift) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.Shifts[s.ID] = *s
	return nil
}

func (f *ShiftRepo) UpdateShift(_ context.Context, s *models.Shift) error {
	f.Shifts[s.ID] = *s
	return nil
}

func (f *ShiftRepo) DeleteShift(_ context.Context, professionalID, shiftID uuid.UUID) error {
	delete(f.Shifts, shiftID)
	return nil
}

func (f *ShiftRepo) RecordReceipt(_ context.Context, s *models.Shift, r *models.Receipt) error {
	if f.FailRecord != nil {
		return f.FailRecord
	}
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	stored := *s
	stored.Receipts = append(append([]models.Receipt(nil), s.Receipts...), *r)
	f.Shifts[s.ID] = stored
	return nil
}

func (f *ShiftRepo) ConciliateReceipt(_ context.Context, s *models.Shift, r *models.Receipt) error {
	stored := *s
	stored.Receipts = []models.Receipt{*r}
	f.Shifts[s.ID] = stored
	return nil
}

var _ domain.Repository = (*ShiftRepo)(nil)

// -------- audit --------

type Audit struct {
	mu     sync.Mutex
	events []audit.Event
}

func (a *Audit) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

func (a *Audit) Actions() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, 0, len(a.events))
	for _, ev := range a.events {
		out = append(out, ev.Action)
	}
	return out
}

// -------- fixtures --------

func Authenticated() session.Session {
	return session.Session{
		ProfessionalID: uuid.New(),
		TokenID:        uuid.NewString(),
		ExpiresAt:      time.Now().Add(time.Hour),
		State:          session.Authenticated,
	}
}

func (f *ShiftRepo) AddHospital(owner uuid.UUID, term, cutoff int) models.Hospital {
	h := models.Hospital{
		ID:              uuid.New(),
		ProfessionalID:  owner,
		Name:            "Hospital São Lucas",
		PaymentTermDays: term,
		CutoffDay:       cutoff,
	}
	f.Hospitals[h.ID] = h
	return h
}

// AddShift stores s as-is, receipts included, bypassing the use cases.
func (f *ShiftRepo) AddShift(s models.Shift) models.Shift {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.Shifts[s.ID] = s
	return s
}
