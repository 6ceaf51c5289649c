package billings

import (
	"context"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]models.Billing, error)
	GetByID(ctx context.Context, id string) (*models.Billing, error)
	CreateOrUpdate(ctx context.Context, b *models.Billing) error
	DeleteByID(ctx context.Context, id string) error
	TotalValue(ctx context.Context) (float64, error)
}
