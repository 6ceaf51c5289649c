package services

import (
	"context"
	"fmt"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/auth"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/repositories/users"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/syncer"
)

// Bootstrap accounts guarantee at least one admin login exists after
// every initialization, regardless of sync state. They are inserted only
// when missing, so password changes and renames survive restarts, and
// they can never be hard-deleted.
var bootstrapAccounts = []models.User{
	{ID: "1", Username: "dujao22", Name: "João", Role: models.RoleAdmin},
	{ID: "2", Username: "joao.adm", Name: "João (Administração)", Role: models.RoleAdmin},
	{ID: "3", Username: "bianca.adm", Name: "Bianca (Administração)", Role: models.RoleAdmin},
}

// bootstrapPassword is the initial password of the fixed accounts; it is
// hashed before it ever reaches the database.
const bootstrapPassword = "12345"

// IsProtectedUserID reports whether id belongs to a bootstrap account.
func IsProtectedUserID(id string) bool {
	for _, acc := range bootstrapAccounts {
		if acc.ID == id {
			return true
		}
	}
	return false
}

// EnsureBootstrapAccounts returns the setup hook the synchronization
// controller runs after hydration and migration.
func EnsureBootstrapAccounts(provider auth.Provider) syncer.SetupFunc {
	return func(ctx context.Context, db dbx.DBTX) error {
		repo := users.NewSQLiteRepository(db)
		for _, acc := range bootstrapAccounts {
			salt, verifier, err := provider.Hash([]byte(bootstrapPassword))
			if err != nil {
				return fmt.Errorf("hash bootstrap password: %w", err)
			}
			acc.Salt = salt
			acc.Verifier = verifier
			if err := repo.CreateIfMissing(ctx, &acc); err != nil {
				return err
			}
		}
		return nil
	}
}
