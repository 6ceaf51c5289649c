package expenses

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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
CREATE TABLE expenses (
  id          TEXT PRIMARY KEY,
  description TEXT NOT NULL,
  value       REAL NOT NULL,
  date        TEXT NOT NULL,
  created_by  TEXT NOT NULL DEFAULT ''
);
`)
	require.NoError(t, err)
	return db
}

func sample() *models.Expense {
	return &models.Expense{
		ID:          "e1",
		Description: "Sabão automotivo",
		Value:       35.5,
		Date:        "2024-01-01",
		CreatedBy:   "dujao22",
	}
}

func TestCreateOrUpdate_InsertAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))

	got, err := r.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, sample(), got)
}

func TestCreateOrUpdate_UpdatesExisting(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))

	edited := sample()
	edited.Value = 42.0
	edited.Description = "Cera"
	require.NoError(t, r.CreateOrUpdate(ctx, edited))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 42.0, all[0].Value)
	assert.Equal(t, "Cera", all[0].Description)
}

func TestDeleteByID_RemovesRow(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.CreateOrUpdate(ctx, sample()))
	require.NoError(t, r.DeleteByID(ctx, "e1"))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetByID_MissingReturnsNotFound(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.GetByID(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestTotalValue_SumsAllRows(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	e1 := sample()
	e2 := sample()
	e2.ID = "e2"
	e2.Value = 14.5
	require.NoError(t, r.CreateOrUpdate(ctx, e1))
	require.NoError(t, r.CreateOrUpdate(ctx, e2))

	total, err := r.TotalValue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50.0, total)
}

func TestGetAll_PropagatesQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, description, value, date, created_by FROM expenses").
		WillReturnError(errors.New("disk I/O error"))

	_, err = NewSQLiteRepository(db).GetAll(context.Background())
	assert.ErrorContains(t, err, "disk I/O error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAll_PropagatesRowError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "description", "value", "date", "created_by"}).
		AddRow("e1", "Sabão", 10.0, "2024-01-01", "").
		RowError(0, errors.New("database is locked"))
	mock.ExpectQuery("SELECT id, description, value, date, created_by FROM expenses").
		WillReturnRows(rows)

	_, err = NewSQLiteRepository(db).GetAll(context.Background())
	assert.ErrorContains(t, err, "database is locked")
	assert.NoError(t, mock.ExpectationsWereMet())
}
