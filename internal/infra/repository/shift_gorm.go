package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/shift"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

type ShiftGormRepository struct {
	db *gorm.DB
}

func NewShiftGormRepository(db *gorm.DB) *ShiftGormRepository {
	return &ShiftGormRepository{db: db}
}

// --------------------------------------------------
// Hospital (lookups)
// --------------------------------------------------

func (r *ShiftGormRepository) GetHospital(
	ctx context.Context,
	professionalID uuid.UUID,
	hospitalID uuid.UUID,
) (*models.Hospital, error) {

	var h models.Hospital
	err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", hospitalID, professionalID).
		First(&h).Error
	if err != nil {
		return nil, translate(err, errHospitalNotFound, "hospital_get_failed")
	}
	return &h, nil
}

func (r *ShiftGormRepository) ListHospitals(
	ctx context.Context,
	professionalID uuid.UUID,
) ([]models.Hospital, error) {

	var hospitals []models.Hospital
	if err := r.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("name ASC").
		Find(&hospitals).Error; err != nil {
		return nil, translate(err, errHospitalNotFound, "hospital_list_failed")
	}
	return hospitals, nil
}

// --------------------------------------------------
// Shift
// --------------------------------------------------

func (r *ShiftGormRepository) ListShifts(
	ctx context.Context,
	professionalID uuid.UUID,
	filter domain.ShiftFilter,
) ([]models.Shift, error) {

	q := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Receipts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("professional_id = ?", professionalID)

	if filter.From != nil {
		q = q.Where("date >= ?", filter.From.Format("2006-01-02"))
	}
	if filter.To != nil {
		q = q.Where("date <= ?", filter.To.Format("2006-01-02"))
	}
	if filter.ExpectedFrom != nil {
		q = q.Where("expected_payment_date >= ?", filter.ExpectedFrom.Format("2006-01-02"))
	}
	if filter.ExpectedTo != nil {
		q = q.Where("expected_payment_date <= ?", filter.ExpectedTo.Format("2006-01-02"))
	}
	if filter.HospitalID != nil {
		q = q.Where("hospital_id = ?", *filter.HospitalID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AwaitingPayment {
		q = q.Where("status IN ?", domain.AwaitingPaymentStatuses())
	}

	if filter.Descending {
		q = q.Order("date DESC").Order("start_time DESC")
	} else {
		q = q.Order("date ASC").Order("start_time ASC")
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var shifts []models.Shift
	if err := q.Find(&shifts).Error; err != nil {
		return nil, translate(err, errShiftNotFound, "shift_list_failed")
	}
	return shifts, nil
}

func (r *ShiftGormRepository) GetShift(
	ctx context.Context,
	professionalID uuid.UUID,
	shiftID uuid.UUID,
) (*models.Shift, error) {

	var s models.Shift
	err := r.db.WithContext(ctx).
		Preload("Hospital").
		Preload("Receipts", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ? AND professional_id = ?", shiftID, professionalID).
		First(&s).Error
	if err != nil {
		return nil, translate(err, errShiftNotFound, "shift_get_failed")
	}
	return &s, nil
}

func (r *ShiftGormRepository) CreateShift(
	ctx context.Context,
	s *models.Shift,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(s).Error
	return translate(err, errShiftNotFound, "shift_create_failed")
}

func (r *ShiftGormRepository) UpdateShift(
	ctx context.Context,
	s *models.Shift,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("id = ? AND professional_id = ?", s.ID, s.ProfessionalID).
		Select(
			"hospital_id", "date", "start_time", "end_time", "label",
			"gross_value", "notes", "status", "expected_payment_date", "updated_at",
		).
		Updates(s)
	if res.Error != nil {
		return translate(res.Error, errShiftNotFound, "shift_update_failed")
	}
	if res.RowsAffected == 0 {
		return errShiftNotFound
	}
	return nil
}

func (r *ShiftGormRepository) DeleteShift(
	ctx context.Context,
	professionalID uuid.UUID,
	shiftID uuid.UUID,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", shiftID, professionalID).
		Delete(&models.Shift{})
	if res.Error != nil {
		return translate(res.Error, errShiftNotFound, "shift_delete_failed")
	}
	if res.RowsAffected == 0 {
		return errShiftNotFound
	}
	return nil
}

// --------------------------------------------------
// Receipt (status + receipt in one transaction)
// --------------------------------------------------

func (r *ShiftGormRepository) RecordReceipt(
	ctx context.Context,
	s *models.Shift,
	rc *models.Receipt,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockShift(tx, s, domain.AwaitingPaymentStatuses(), "receipt_create_failed"); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(rc).Error; err != nil {
			return translate(err, errShiftNotFound, "receipt_create_failed")
		}

		return updateStatus(tx, s, "receipt_create_failed")
	})
}

func (r *ShiftGormRepository) ConciliateReceipt(
	ctx context.Context,
	s *models.Shift,
	rc *models.Receipt,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockShift(tx, s, []string{string(domain.StatusRecebido)}, "receipt_conciliate_failed"); err != nil {
			return err
		}

		res := tx.Model(&models.Receipt{}).
			Where("id = ? AND shift_id = ?", rc.ID, s.ID).
			Updates(map[string]any{
				"conciliated":    rc.Conciliated,
				"conciliated_at": rc.ConciliatedAt,
			})
		if res.Error != nil {
			return translate(res.Error, errShiftNotFound, "receipt_conciliate_failed")
		}
		if res.RowsAffected == 0 {
			return errShiftNotFound
		}

		return updateStatus(tx, s, "receipt_conciliate_failed")
	})
}

// lockShift takes the row lock and re-checks the stored status, so two
// concurrent receipts for the same shift cannot both commit.
func lockShift(tx *gorm.DB, s *models.Shift, allowed []string, code string) error {
	var current models.Shift
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "status").
		Where("id = ? AND professional_id = ?", s.ID, s.ProfessionalID).
		First(&current).Error
	if err != nil {
		return translate(err, errShiftNotFound, code)
	}

	for _, st := range allowed {
		if current.Status == st {
			return nil
		}
	}
	return errStaleStatus
}

func updateStatus(tx *gorm.DB, s *models.Shift, code string) error {
	res := tx.Model(&models.Shift{}).
		Where("id = ? AND professional_id = ?", s.ID, s.ProfessionalID).
		Update("status", s.Status)
	if res.Error != nil {
		return translate(res.Error, errShiftNotFound, code)
	}
	if res.RowsAffected == 0 {
		return errShiftNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ShiftGormRepository)(nil)
