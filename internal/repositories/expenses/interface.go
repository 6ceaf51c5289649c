package expenses

import (
	"context"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]models.Expense, error)
	GetByID(ctx context.Context, id string) (*models.Expense, error)
	CreateOrUpdate(ctx context.Context, e *models.Expense) error
	DeleteByID(ctx context.Context, id string) error
	TotalValue(ctx context.Context) (float64, error)
}
