package hospital

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/models"
)

type Repository interface {
	List(ctx context.Context, professionalID uuid.UUID) ([]models.Hospital, error)
	Get(ctx context.Context, professionalID, hospitalID uuid.UUID) (*models.Hospital, error)
	Create(ctx context.Context, h *models.Hospital) error
	Update(ctx context.Context, h *models.Hospital) error
	Delete(ctx context.Context, professionalID, hospitalID uuid.UUID) error

	CountShifts(ctx context.Context, professionalID, hospitalID uuid.UUID) (int64, error)
}
