package shift

import (
	"context"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// ======================================================
// USE CASE
// ======================================================

type RecordShift struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewRecordShift(
	repo domain.Repository,
	audit audit.Recorder,
) *RecordShift {
	return &RecordShift{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordShift) Execute(
	ctx context.Context,
	sess session.Session,
	in domain.Fields,
) (*models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Formulário
	// --------------------------------------------------
	date, err := domain.ValidateFields(in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Hospital do profissional
	// --------------------------------------------------
	hospital, err := uc.repo.GetHospital(ctx, sess.ProfessionalID, in.HospitalID)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Valor (padrão do hospital quando omitido)
	// --------------------------------------------------
	value, err := resolveValue(in, hospital)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Criação (status inicial centralizado)
	// --------------------------------------------------
	s := &models.Shift{
		ProfessionalID: sess.ProfessionalID,
		HospitalID:     hospital.ID,
		Date:           date,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Label:          in.Label,
		Notes:          in.Notes,
		GrossValue:     value,
		Status:         string(domain.InitialStatus()),
		ExpectedPaymentDate: domain.ExpectedPaymentDate(
			date,
			hospital.PaymentTermDays,
			hospital.CutoffDay,
		),
	}

	if err := uc.repo.CreateShift(ctx, s); err != nil {
		return nil, err
	}
	s.Hospital = hospital

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "shift_created",
		Entity:         "shift",
		EntityID:       &s.ID,
		Metadata: map[string]any{
			"hospital_id": hospital.ID,
			"date":        in.Date,
			"value":       value.StringFixed(2),
		},
	})

	return s, nil
}
