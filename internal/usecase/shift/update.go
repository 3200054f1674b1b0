package shift

import (
	"context"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

type UpdateShift struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateShift(
	repo domain.Repository,
	audit audit.Recorder,
) *UpdateShift {
	return &UpdateShift{
		repo:  repo,
		audit: audit,
	}
}

// Execute replaces the editable fields. Status is never touched here; the
// expected payment date is re-derived only while no receipt exists.
func (uc *UpdateShift) Execute(
	ctx context.Context,
	sess session.Session,
	shiftID string,
	in domain.Fields,
) (*models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	id, err := parseShiftID(shiftID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ValidateFields(in)
	if err != nil {
		return nil, err
	}

	s, err := uc.repo.GetShift(ctx, sess.ProfessionalID, id)
	if err != nil {
		return nil, err
	}

	hospital, err := uc.repo.GetHospital(ctx, sess.ProfessionalID, in.HospitalID)
	if err != nil {
		return nil, err
	}

	value, err := resolveValue(in, hospital)
	if err != nil {
		return nil, err
	}

	s.HospitalID = hospital.ID
	s.Hospital = hospital
	s.Date = date
	s.StartTime = in.StartTime
	s.EndTime = in.EndTime
	s.Label = in.Label
	s.Notes = in.Notes
	s.GrossValue = value

	if st, ok := domain.ParseStatus(s.Status); ok && st == domain.StatusLancado {
		s.ExpectedPaymentDate = domain.ExpectedPaymentDate(
			date,
			hospital.PaymentTermDays,
			hospital.CutoffDay,
		)
	}

	if err := uc.repo.UpdateShift(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "shift_updated",
		Entity:         "shift",
		EntityID:       &s.ID,
	})

	return s, nil
}
