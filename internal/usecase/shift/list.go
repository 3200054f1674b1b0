package shift

import (
	"context"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// ======================================================
// LIST (tabs of the shifts page)
// ======================================================

// Page size of the shifts page; out-of-range limits fall back to the default.
const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type ListShifts struct {
	repo domain.Repository
}

func NewListShifts(repo domain.Repository) *ListShifts {
	return &ListShifts{repo: repo}
}

func (uc *ListShifts) Execute(
	ctx context.Context,
	sess session.Session,
	filter domain.ShiftFilter,
) ([]models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	if filter.Status != "" {
		if _, ok := domain.ParseStatus(filter.Status); !ok {
			return nil, httperr.ErrValidation("invalid_status", "Status inválido.")
		}
	}

	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		filter.Limit = DefaultListLimit
	}

	filter.Descending = true
	return uc.repo.ListShifts(ctx, sess.ProfessionalID, filter)
}

// ======================================================
// GET
// ======================================================

type GetShift struct {
	repo domain.Repository
}

func NewGetShift(repo domain.Repository) *GetShift {
	return &GetShift{repo: repo}
}

func (uc *GetShift) Execute(
	ctx context.Context,
	sess session.Session,
	shiftID string,
) (*models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	id, err := parseShiftID(shiftID)
	if err != nil {
		return nil, err
	}

	return uc.repo.GetShift(ctx, sess.ProfessionalID, id)
}

