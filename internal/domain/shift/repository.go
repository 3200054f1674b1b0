package shift

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/models"
)

// ShiftFilter mirrors the store queries used by the views: equality on
// hospital and status, an inclusive date range, ordering and a limit.
// AwaitingPayment narrows to LANCADO and PREVISTO. ExpectedFrom/ExpectedTo
// bound expected_payment_date inclusively; rows without one are excluded.
type ShiftFilter struct {
	From            *time.Time
	To              *time.Time
	ExpectedFrom    *time.Time
	ExpectedTo      *time.Time
	HospitalID      *uuid.UUID
	Status          string
	AwaitingPayment bool
	Descending      bool
	Limit           int
}

// AwaitingPaymentStatuses backs ShiftFilter.AwaitingPayment in stores.
func AwaitingPaymentStatuses() []string {
	return []string{string(StatusLancado), string(StatusPrevisto)}
}

// Repository is scoped by professionalID on every call; rows owned by
// someone else behave as missing.
type Repository interface {
	// -------- Hospital (lookups) --------
	GetHospital(
		ctx context.Context,
		professionalID uuid.UUID,
		hospitalID uuid.UUID,
	) (*models.Hospital, error)

	ListHospitals(
		ctx context.Context,
		professionalID uuid.UUID,
	) ([]models.Hospital, error)

	// -------- Shift --------
	ListShifts(
		ctx context.Context,
		professionalID uuid.UUID,
		filter ShiftFilter,
	) ([]models.Shift, error)

	GetShift(
		ctx context.Context,
		professionalID uuid.UUID,
		shiftID uuid.UUID,
	) (*models.Shift, error)

	CreateShift(
		ctx context.Context,
		s *models.Shift,
	) error

	UpdateShift(
		ctx context.Context,
		s *models.Shift,
	) error

	DeleteShift(
		ctx context.Context,
		professionalID uuid.UUID,
		shiftID uuid.UUID,
	) error

	// -------- Receipt (status change + receipt in one unit) --------
	RecordReceipt(
		ctx context.Context,
		s *models.Shift,
		r *models.Receipt,
	) error

	ConciliateReceipt(
		ctx context.Context,
		s *models.Shift,
		r *models.Receipt,
	) error
}
