package shift

import (
	"context"
	"time"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

type ConciliateShift struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewConciliateShift(
	repo domain.Repository,
	audit audit.Recorder,
) *ConciliateShift {
	return &ConciliateShift{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// Execute takes a received shift to CONCILIADO and stamps its receipt.
func (uc *ConciliateShift) Execute(
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

	s, err := uc.repo.GetShift(ctx, sess.ProfessionalID, id)
	if err != nil {
		return nil, err
	}

	next, effects, err := domain.Transition(s.Status, domain.EventConciliate)
	if err != nil {
		return nil, err
	}

	r := s.FirstReceipt()
	if r == nil {
		return nil, httperr.ErrBusiness("receipt_missing")
	}

	if domain.HasEffect(effects, domain.EffectConciliateReceipt) {
		at := uc.now()
		r.Conciliated = true
		r.ConciliatedAt = &at
	}

	s.Status = string(next)

	if err := uc.repo.ConciliateReceipt(ctx, s, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "shift_conciliated",
		Entity:         "shift",
		EntityID:       &s.ID,
		Metadata: map[string]any{
			"receipt_id": r.ID,
		},
	})

	return s, nil
}
