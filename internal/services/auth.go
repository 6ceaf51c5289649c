package services

import (
	"context"
	"errors"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/auth"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/users"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

type AuthService struct {
	ctrl          *syncer.Controller
	provider      auth.Provider
	secretKey     []byte
	tokenValidity time.Duration
}

func NewAuthService(ctrl *syncer.Controller, provider auth.Provider, secretKey []byte, tokenValidity time.Duration) *AuthService {
	return &AuthService{
		ctrl:          ctrl,
		provider:      provider,
		secretKey:     secretKey,
		tokenValidity: tokenValidity,
	}
}

// Login authenticates by credential match: case-insensitive username,
// constant-time verifier comparison. Bad credentials are a normal
// negative result reported as common.ErrorUnauthorized; the returned
// token identifies the session for the UI collaborator.
func (s *AuthService) Login(ctx context.Context, username string, password []byte) (*models.User, string, error) {
	repo := users.NewSQLiteRepository(s.ctrl.DB())

	u, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !s.provider.Verify(password, u.Salt, u.Verifier) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(u.ID, s.secretKey, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	u.Salt = nil
	u.Verifier = nil
	return u, token, nil
}
