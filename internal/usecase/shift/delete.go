package shift

import (
	"context"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

type DeleteShift struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteShift(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteShift {
	return &DeleteShift{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteShift) Execute(
	ctx context.Context,
	sess session.Session,
	shiftID string,
) error {

	if err := sess.Require(); err != nil {
		return err
	}

	id, err := parseShiftID(shiftID)
	if err != nil {
		return err
	}

	s, err := uc.repo.GetShift(ctx, sess.ProfessionalID, id)
	if err != nil {
		return err
	}

	if err := domain.CanDelete(s.Status); err != nil {
		return err
	}

	if err := uc.repo.DeleteShift(ctx, sess.ProfessionalID, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "shift_deleted",
		Entity:         "shift",
		EntityID:       &id,
		Metadata: map[string]any{
			"date":   s.Date.Format("2006-01-02"),
			"status": s.Status,
		},
	})

	return nil
}
