package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/hospital"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

type HospitalGormRepository struct {
	db *gorm.DB
}

func NewHospitalGormRepository(db *gorm.DB) *HospitalGormRepository {
	return &HospitalGormRepository{db: db}
}

func (r *HospitalGormRepository) List(
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

func (r *HospitalGormRepository) Get(
	ctx context.Context,
	professionalID uuid.UUID,
	hospitalID uuid.UUID,
) (*models.Hospital, error) {

	var h models.Hospital
	if err := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", hospitalID, professionalID).
		First(&h).Error; err != nil {
		return nil, translate(err, errHospitalNotFound, "hospital_get_failed")
	}
	return &h, nil
}

func (r *HospitalGormRepository) Create(
	ctx context.Context,
	h *models.Hospital,
) error {
	err := r.db.WithContext(ctx).Create(h).Error
	return translate(err, errHospitalNotFound, "hospital_create_failed")
}

func (r *HospitalGormRepository) Update(
	ctx context.Context,
	h *models.Hospital,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Hospital{}).
		Where("id = ? AND professional_id = ?", h.ID, h.ProfessionalID).
		Select("name", "tax_id", "payment_term_days", "cutoff_day", "default_value", "updated_at").
		Updates(h)
	if res.Error != nil {
		return translate(res.Error, errHospitalNotFound, "hospital_update_failed")
	}
	if res.RowsAffected == 0 {
		return errHospitalNotFound
	}
	return nil
}

// Delete relies on the RESTRICT foreign key as the last word: a shift
// inserted after the count check still blocks the delete.
func (r *HospitalGormRepository) Delete(
	ctx context.Context,
	professionalID uuid.UUID,
	hospitalID uuid.UUID,
) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND professional_id = ?", hospitalID, professionalID).
		Delete(&models.Hospital{})
	if res.Error != nil {
		if httperr.IsForeignKeyViolation(res.Error) {
			return httperr.ErrBusiness("hospital_in_use")
		}
		return translate(res.Error, errHospitalNotFound, "hospital_delete_failed")
	}
	if res.RowsAffected == 0 {
		return errHospitalNotFound
	}
	return nil
}

func (r *HospitalGormRepository) CountShifts(
	ctx context.Context,
	professionalID uuid.UUID,
	hospitalID uuid.UUID,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Shift{}).
		Where("hospital_id = ? AND professional_id = ?", hospitalID, professionalID).
		Count(&count).Error; err != nil {
		return 0, translate(err, errHospitalNotFound, "hospital_count_failed")
	}
	return count, nil
}

// Compile-time check
var _ domain.Repository = (*HospitalGormRepository)(nil)
