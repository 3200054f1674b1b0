package hospital

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/hospital"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// ======================================================
// INPUT
// ======================================================

type HospitalInput struct {
	Name            string
	TaxID           string
	PaymentTermDays int
	CutoffDay       int
	DefaultValue    *decimal.Decimal
}

func (in HospitalInput) apply(h *models.Hospital) {
	h.Name = strings.TrimSpace(in.Name)
	h.TaxID = strings.TrimSpace(in.TaxID)
	h.PaymentTermDays = in.PaymentTermDays
	h.CutoffDay = in.CutoffDay
	h.DefaultValue = in.DefaultValue
}

var errHospitalNotFound = httperr.ErrNotFound("hospital_not_found", "Hospital não encontrado.")

func parseHospitalID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errHospitalNotFound
	}
	return id, nil
}

// ======================================================
// CREATE
// ======================================================

type CreateHospital struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewCreateHospital(repo domain.Repository, audit audit.Recorder) *CreateHospital {
	return &CreateHospital{repo: repo, audit: audit}
}

func (uc *CreateHospital) Execute(
	ctx context.Context,
	sess session.Session,
	in HospitalInput,
) (*models.Hospital, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	h := &models.Hospital{ProfessionalID: sess.ProfessionalID}
	in.apply(h)

	if err := domain.Validate(h); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "hospital_created",
		Entity:         "hospital",
		EntityID:       &h.ID,
		Metadata: map[string]any{
			"name": h.Name,
		},
	})

	return h, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdateHospital struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewUpdateHospital(repo domain.Repository, audit audit.Recorder) *UpdateHospital {
	return &UpdateHospital{repo: repo, audit: audit}
}

// Execute changes the hospital terms. Expected payment dates of shifts
// already recorded are not recomputed.
func (uc *UpdateHospital) Execute(
	ctx context.Context,
	sess session.Session,
	hospitalID string,
	in HospitalInput,
) (*models.Hospital, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	id, err := parseHospitalID(hospitalID)
	if err != nil {
		return nil, err
	}

	h, err := uc.repo.Get(ctx, sess.ProfessionalID, id)
	if err != nil {
		return nil, err
	}

	in.apply(h)

	if err := domain.Validate(h); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "hospital_updated",
		Entity:         "hospital",
		EntityID:       &h.ID,
	})

	return h, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteHospital struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteHospital(repo domain.Repository, audit audit.Recorder) *DeleteHospital {
	return &DeleteHospital{repo: repo, audit: audit}
}

// Execute refuses to delete a hospital that still has shifts.
func (uc *DeleteHospital) Execute(
	ctx context.Context,
	sess session.Session,
	hospitalID string,
) error {

	if err := sess.Require(); err != nil {
		return err
	}

	id, err := parseHospitalID(hospitalID)
	if err != nil {
		return err
	}

	if _, err := uc.repo.Get(ctx, sess.ProfessionalID, id); err != nil {
		return err
	}

	n, err := uc.repo.CountShifts(ctx, sess.ProfessionalID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return httperr.ErrBusiness("hospital_in_use")
	}

	if err := uc.repo.Delete(ctx, sess.ProfessionalID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "hospital_deleted",
		Entity:         "hospital",
		EntityID:       &id,
	})

	return nil
}

// ======================================================
// READ
// ======================================================

type ListHospitals struct {
	repo domain.Repository
}

func NewListHospitals(repo domain.Repository) *ListHospitals {
	return &ListHospitals{repo: repo}
}

func (uc *ListHospitals) Execute(ctx context.Context, sess session.Session) ([]models.Hospital, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}
	return uc.repo.List(ctx, sess.ProfessionalID)
}

type GetHospital struct {
	repo domain.Repository
}

func NewGetHospital(repo domain.Repository) *GetHospital {
	return &GetHospital{repo: repo}
}

func (uc *GetHospital) Execute(ctx context.Context, sess session.Session, hospitalID string) (*models.Hospital, error) {
	if err := sess.Require(); err != nil {
		return nil, err
	}

	id, err := parseHospitalID(hospitalID)
	if err != nil {
		return nil, err
	}

	return uc.repo.Get(ctx, sess.ProfessionalID, id)
}
