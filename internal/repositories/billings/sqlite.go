// Package billings persists service sales inside the embedded database.
package billings

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

func scanBilling(row interface{ Scan(...any) error }, b *models.Billing) error {
	return row.Scan(&b.ID, &b.WashType, &b.Size, &b.PaymentMethod, &b.Value, &b.Date, &b.Time, &b.CreatedBy)
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Billing, error) {
	query := `SELECT id, wash_type, size, payment_method, value, date, time, created_by
	          FROM billings ORDER BY date DESC, time DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select billings: %w", err)
	}
	defer rows.Close()

	var result []models.Billing
	for rows.Next() {
		var item models.Billing
		if err := scanBilling(rows, &item); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Billing, error) {
	query := `SELECT id, wash_type, size, payment_method, value, date, time, created_by
	          FROM billings WHERE id = ?`
	b := &models.Billing{}
	if err := scanBilling(r.db.QueryRowContext(ctx, query, id), b); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return b, nil
}

// CreateOrUpdate upserts a billing by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, b *models.Billing) error {
	query := `INSERT INTO billings (id, wash_type, size, payment_method, value, date, time, created_by)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET wash_type = excluded.wash_type,
	              size = excluded.size,
	              payment_method = excluded.payment_method,
	              value = excluded.value,
	              date = excluded.date,
	              time = excluded.time,
	              created_by = excluded.created_by`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, b.WashType, b.Size, b.PaymentMethod, b.Value, b.Date, b.Time, b.CreatedBy)
	if err != nil {
		return fmt.Errorf("failed to upsert billing: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM billings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete billing: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) TotalValue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(SUM(value), 0) FROM billings`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}
