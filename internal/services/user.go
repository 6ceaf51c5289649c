package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/auth"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/users"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

type UserService struct {
	ctrl     *syncer.Controller
	provider auth.Provider
}

func NewUserService(ctrl *syncer.Controller, provider auth.Provider) *UserService {
	return &UserService{ctrl: ctrl, provider: provider}
}

// List returns all accounts with credential material blanked: callers
// render user lists, they never need salts or verifiers.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	all, err := users.NewSQLiteRepository(s.ctrl.DB()).GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].Salt = nil
		all[i].Verifier = nil
	}
	return all, nil
}

// Save creates or updates an account. For a new account (empty id) a
// password is required; for an existing one an empty password keeps the
// current credentials.
func (s *UserService) Save(ctx context.Context, u *models.User, password []byte) error {
	isNew := u.ID == ""
	if isNew {
		if len(password) == 0 {
			return errors.New("password required for new user")
		}
		u.ID = uuid.NewString()
	}

	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		repo := users.NewSQLiteRepository(db)

		if len(password) > 0 {
			salt, verifier, err := s.provider.Hash(password)
			if err != nil {
				return err
			}
			u.Salt = salt
			u.Verifier = verifier
		} else {
			existing, err := repo.GetByID(ctx, u.ID)
			if err != nil {
				return err
			}
			u.Salt = existing.Salt
			u.Verifier = existing.Verifier
		}

		return repo.CreateOrUpdate(ctx, u)
	})
}

// Delete removes an account. Deleting a protected bootstrap account is a
// no-op, not an error: the UI treats those rows as fixed.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if IsProtectedUserID(id) {
		return nil
	}
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return users.NewSQLiteRepository(db).DeleteByID(ctx, id)
	})
}

// ChangePassword rehashes and stores new credentials for the account.
func (s *UserService) ChangePassword(ctx context.Context, id string, newPassword []byte) error {
	salt, verifier, err := s.provider.Hash(newPassword)
	if err != nil {
		return err
	}
	return s.ctrl.Mutate(ctx, func(ctx context.Context, db dbx.DBTX) error {
		return users.NewSQLiteRepository(db).UpdateCredentials(ctx, id, salt, verifier)
	})
}

// GetByID returns one account, credentials blanked.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, err := users.NewSQLiteRepository(s.ctrl.DB()).GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Salt = nil
	u.Verifier = nil
	return u, nil
}
