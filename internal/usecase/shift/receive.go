package shift

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/plantoes/internal/audit"
	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
	"github.com/BruksfildServices01/plantoes/internal/session"
)

// ======================================================
// INPUT
// ======================================================

type RecordReceiptInput struct {
	ShiftID       string
	ReceivedValue decimal.Decimal
	ReceivedOn    string
	Conciliated   bool
	ProofURL      string
}

// ======================================================
// USE CASE
// ======================================================

type RecordReceipt struct {
	repo  domain.Repository
	audit audit.Recorder
	now   func() time.Time
}

func NewRecordReceipt(
	repo domain.Repository,
	audit audit.Recorder,
) *RecordReceipt {
	return &RecordReceipt{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *RecordReceipt) Execute(
	ctx context.Context,
	sess session.Session,
	in RecordReceiptInput,
) (*models.Shift, error) {

	if err := sess.Require(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 1️⃣ Formulário
	// --------------------------------------------------
	id, err := parseShiftID(in.ShiftID)
	if err != nil {
		return nil, err
	}

	receivedOn, err := domain.ValidateReceipt(in.ReceivedValue, in.ReceivedOn)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Plantão visível para a sessão
	// --------------------------------------------------
	s, err := uc.repo.GetShift(ctx, sess.ProfessionalID, id)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Transição (única fonte de mudança de status)
	// --------------------------------------------------
	next, effects, err := domain.Transition(s.Status, domain.ReceiveEvent(in.Conciliated))
	if err != nil {
		return nil, err
	}

	r := &models.Receipt{
		ProfessionalID: sess.ProfessionalID,
		ShiftID:        s.ID,
		ReceivedValue:  in.ReceivedValue,
		ReceivedOn:     receivedOn,
		Conciliated:    in.Conciliated,
		ProofURL:       in.ProofURL,
	}
	if in.Conciliated {
		at := uc.now()
		r.ConciliatedAt = &at
	}

	s.Status = string(next)

	// --------------------------------------------------
	// 4️⃣ Recebimento + status numa única transação
	// --------------------------------------------------
	if domain.HasEffect(effects, domain.EffectCreateReceipt) {
		if err := uc.repo.RecordReceipt(ctx, s, r); err != nil {
			return nil, err
		}
		s.Receipts = append(s.Receipts, *r)
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		ProfessionalID: sess.ProfessionalID,
		Action:         "receipt_recorded",
		Entity:         "shift",
		EntityID:       &s.ID,
		Metadata: map[string]any{
			"receipt_id":     r.ID,
			"received_value": in.ReceivedValue.StringFixed(2),
			"received_on":    in.ReceivedOn,
			"conciliated":    in.Conciliated,
		},
	})

	return s, nil
}
