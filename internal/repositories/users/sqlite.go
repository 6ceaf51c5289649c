// Package users persists accounts inside the embedded database. Username
// lookups are case-insensitive (the column carries COLLATE NOCASE).
package users

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

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, username, salt, verifier, name, role FROM users ORDER BY username`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var item models.User
		if err := rows.Scan(&item.ID, &item.Username, &item.Salt, &item.Verifier, &item.Name, &item.Role); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.ID, &u.Username, &u.Salt, &u.Verifier, &u.Name, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return u, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, username, salt, verifier, name, role FROM users WHERE id = ?`, id)
}

func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.getOne(ctx, `SELECT id, username, salt, verifier, name, role FROM users WHERE username = ?`, username)
}

// CreateOrUpdate upserts a user by id.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, u *models.User) error {
	query := `INSERT INTO users (id, username, salt, verifier, name, role)
	          VALUES (?, ?, ?, ?, ?, ?)
	          ON CONFLICT(id) DO UPDATE SET username = excluded.username,
	              salt = excluded.salt,
	              verifier = excluded.verifier,
	              name = excluded.name,
	              role = excluded.role`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.Salt, u.Verifier, u.Name, u.Role)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

// CreateIfMissing inserts a user only when the id is not present yet.
// Used for bootstrap accounts: existence is guaranteed, later edits
// (a changed password, a new display name) are preserved.
func (r *SQLiteRepository) CreateIfMissing(ctx context.Context, u *models.User) error {
	query := `INSERT OR IGNORE INTO users (id, username, salt, verifier, name, role)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.Salt, u.Verifier, u.Name, u.Role)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) UpdateCredentials(ctx context.Context, id string, salt, verifier []byte) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET salt = ?, verifier = ? WHERE id = ?`, salt, verifier, id)
	if err != nil {
		return fmt.Errorf("failed to update credentials: %w", err)
	}
	ra, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if ra == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
