package users

import (
	"context"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

type Repository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	CreateOrUpdate(ctx context.Context, u *models.User) error
	CreateIfMissing(ctx context.Context, u *models.User) error
	UpdateCredentials(ctx context.Context, id string, salt, verifier []byte) error
	DeleteByID(ctx context.Context, id string) error
}
