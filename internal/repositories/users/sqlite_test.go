package users

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  id       TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE COLLATE NOCASE,
  salt     BLOB NOT NULL,
  verifier BLOB NOT NULL,
  name     TEXT NOT NULL,
  role     TEXT NOT NULL DEFAULT 'staff'
);
`)
	require.NoError(t, err)
	return db
}

func sample() *models.User {
	return &models.User{
		ID:       "u1",
		Username: "dujao22",
		Salt:     []byte("salt"),
		Verifier: []byte("verifier"),
		Name:     "João",
		Role:     models.RoleAdmin,
	}
}

func TestGetByUsername_CaseInsensitive(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))

	got, err := r.GetByUsername(ctx, "DuJao22")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestGetByUsername_MissingReturnsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByUsername(context.Background(), "nobody")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCreateIfMissing_PreservesExistingRow(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))
	require.NoError(t, r.UpdateCredentials(ctx, "u1", []byte("new-salt"), []byte("new-verifier")))

	// bootstrap re-run must not reset the changed credentials
	require.NoError(t, r.CreateIfMissing(ctx, sample()))

	got, err := r.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []byte("new-salt"), got.Salt)
	assert.Equal(t, []byte("new-verifier"), got.Verifier)
}

func TestCreateIfMissing_IsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateIfMissing(ctx, sample()))
	require.NoError(t, r.CreateIfMissing(ctx, sample()))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateCredentials_MissingUser(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	err := r.UpdateCredentials(context.Background(), "missing", []byte("s"), []byte("v"))
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestDeleteByID_RemovesRow(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))
	require.NoError(t, r.DeleteByID(ctx, "u1"))

	_, err := r.GetByID(ctx, "u1")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}
