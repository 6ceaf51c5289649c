// Package expenses persists operating expenses inside the embedded database.
package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Expense, error) {
	query := `SELECT id, description, value, date, created_by FROM expenses ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select expenses: %w", err)
	}
	defer rows.Close()

	var result []models.Expense
	for rows.Next() {
		var item models.Expense
		if err := rows.Scan(&item.ID, &item.Description, &item.Value, &item.Date, &item.CreatedBy); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Expense, error) {
	query := `SELECT id, description, value, date, created_by FROM expenses WHERE id = ?`
	e := &models.Expense{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&e.ID, &e.Description, &e.Value, &e.Date, &e.CreatedBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// CreateOrUpdate upserts an expense by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, e *models.Expense) error {
	query := `INSERT INTO expenses (id, description, value, date, created_by)
	          VALUES (?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET description = excluded.description,
	              value = excluded.value,
	              date = excluded.date,
	              created_by = excluded.created_by`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Description, e.Value, e.Date, e.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert expense: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(value), 0) FROM expenses`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
