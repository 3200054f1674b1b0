package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/plantoes/internal/domain/professional"
	"github.com/BruksfildServices01/plantoes/internal/httperr"
	"github.com/BruksfildServices01/plantoes/internal/models"
)

type ProfessionalGormRepository struct {
	db *gorm.DB
}

func NewProfessionalGormRepository(db *gorm.DB) *ProfessionalGormRepository {
	return &ProfessionalGormRepository{db: db}
}

func (r *ProfessionalGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, translate(err, errProfessionalNotFound, "professional_get_failed")
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*models.Professional, error) {

	var p models.Professional
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, translate(err, errProfessionalNotFound, "professional_get_failed")
	}
	return &p, nil
}

func (r *ProfessionalGormRepository) Create(
	ctx context.Context,
	p *models.Professional,
) error {
	err := r.db.WithContext(ctx).Create(p).Error
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrBusiness("email_already_exists")
	}
	return translate(err, errProfessionalNotFound, "professional_create_failed")
}

func (r *ProfessionalGormRepository) Update(
	ctx context.Context,
	p *models.Professional,
) error {
	err := r.db.WithContext(ctx).
		Model(&models.Professional{}).
		Where("id = ?", p.ID).
		Select("name", "cpf", "class_council", "registry_number", "specialty", "phone", "address", "updated_at").
		Updates(p).Error
	return translate(err, errProfessionalNotFound, "professional_update_failed")
}

// Compile-time check
var _ domain.Repository = (*ProfessionalGormRepository)(nil)
