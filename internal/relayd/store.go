// Package relayd implements a minimal blob relay: named JSON objects
// with create, update, fetch and list operations. It keeps no business
// knowledge; clients exchange whole snapshots through it.
package relayd

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
)

// Object is one stored blob. Data carries whatever JSON the client
// uploaded; the relay never inspects it.
type Object struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Store persists objects in a single SQLite file.
type Store struct {
	db *sql.DB
}

func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open relay database: %w", err)
	}
	db.SetMaxOpenConns(1)

	schema := `CREATE TABLE IF NOT EXISTS objects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		data       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_objects_name ON objects (name);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init relay schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Create(ctx context.Context, name string, data json.RawMessage) (*Object, error) {
	obj := &Object{
		ID:        uuid.NewString(),
		Name:      name,
		Data:      data,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO objects (id, name, data, updated_at) VALUES (?, ?, ?, ?)`,
		obj.ID, obj.Name, string(obj.Data), obj.UpdatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return nil, fmt.Errorf("failed to insert object: %w", err)
	}
	return obj, nil
}

func (s *Store) Update(ctx context.Context, id, name string, data json.RawMessage) (*Object, error) {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		`UPDATE objects SET name = ?, data = ?, updated_at = ? WHERE id = ?`,
		name, string(data), now.Format(time.RFC3339Nano), id)
	if err != nil {
		return nil, fmt.Errorf("failed to update object: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, common.ErrorNotFound
	}
	return &Object{ID: id, Name: name, Data: data, UpdatedAt: now}, nil
}

func (s *Store) Get(ctx context.Context, id string) (*Object, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, data, updated_at FROM objects WHERE id = ?`, id)
	obj, err := scanObject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return obj, nil
}

// List returns all objects, optionally filtered by name.
func (s *Store) List(ctx context.Context, name string) ([]Object, error) {
	query := `SELECT id, name, data, updated_at FROM objects`
	args := []any{}
	if name != "" {
		query += ` WHERE name = ?`
		args = append(args, name)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select objects: %w", err)
	}
	defer rows.Close()

	result := []Object{}
	for rows.Next() {
		obj, err := scanObject(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *obj)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func scanObject(row interface{ Scan(dest ...any) error }) (*Object, error) {
	var obj Object
	var data, updatedAt string
	if err := row.Scan(&obj.ID, &obj.Name, &data, &updatedAt); err != nil {
		return nil, err
	}
	obj.Data = json.RawMessage(data)
	ts, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err == nil {
		obj.UpdatedAt = ts
	}
	return &obj, nil
}
