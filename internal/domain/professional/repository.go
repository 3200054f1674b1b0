package professional

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/plantoes/internal/models"
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*models.Professional, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Professional, error)
	Create(ctx context.Context, p *models.Professional) error
	Update(ctx context.Context, p *models.Professional) error
}
