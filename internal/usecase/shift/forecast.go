package shift

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
	"github.com/BruksfildServices01/plantoes/internal/timezone"
)

type ForecastShift struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewForecastShift(
	repo domain.Repository,
	audit audit.Recorder,
) *ForecastShift {
	return &ForecastShift{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the shift as PREVISTO. An empty date falls back to the one
// derived from the hospital terms.
func (uc *ForecastShift) Execute(
	ctx context.Context,
	sess session.Session,
	shiftID string,
	expectedOn string,
) (*models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	id, err := parseShiftID(shiftID)
	if err != nil {
		return nil, err
	}

	var explicit *time.Time
	if expectedOn = strings.TrimSpace(expectedOn); expectedOn != "" {
		d, err := timezone.ParseDate(expectedOn)
		if err != nil {
			return nil, httperr.ErrValidation("invalid_expected_payment_date", "Data prevista inválida (AAAA-MM-DD).")
		}
		explicit = &d
	}

	s, err := uc.repo.GetShift(ctx, sess.ProfessionalID, id)
	if err != nil {
		return nil, err
	}

	next, effects, err := domain.Transition(s.Status, domain.EventForecast)
	if err != nil {
		return nil, err
	}

	if domain.HasEffect(effects, domain.EffectSetExpectedPayment) {
		switch {
		case explicit != nil:
			s.ExpectedPaymentDate = explicit
		default:
			hospital, err := uc.repo.GetHospital(ctx, sess.ProfessionalID, s.HospitalID)
			if err != nil {
				return nil, err
			}
			if derived := domain.ExpectedPaymentDate(s.Date, hospital.PaymentTermDays, hospital.CutoffDay); derived != nil {
				s.ExpectedPaymentDate = derived
			}
		}
		if s.ExpectedPaymentDate == nil {
			return nil, httperr.ErrValidation("invalid_expected_payment_date", "Informe a data prevista de pagamento.")
		}
	}

	s.Status = string(next)

	if err := uc.repo.UpdateShift(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "shift_forecast",
		Entity:         "shift",
		EntityID:       &s.ID,
		Metadata: map[string]any{
			"expected_payment_date": timezone.FormatDate(*s.ExpectedPaymentDate),
		},
	})

	return s, nil
}
