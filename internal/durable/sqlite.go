package durable

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// SQLiteStore keeps the key/value area in its own database file, separate
// from the engine's working copy, so it survives engine hot-swaps.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the durability store at
// dataDir/local.db.
func OpenSQLite(ctx context.Context, dataDir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dataDir, 0o770); err != nil {
		return nil, fmt.Errorf("durable dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, "local.db"))
	if err != nil {
		return nil, fmt.Errorf("durable open: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS metadata (
			key   TEXT PRIMARY KEY,
			value BLOB
		)`)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("durable schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) SaveRecord(ctx context.Context, rec *models.SyncRecord) error {
	if err := s.Set(ctx, KeySnapshot, rec.Snapshot); err != nil {
		return err
	}
	if err := s.Set(ctx, KeySnapshotTS, []byte(strconv.FormatInt(rec.Timestamp, 10))); err != nil {
		return err
	}
	return s.Set(ctx, KeySnapshotOrigin, []byte(rec.Origin))
}

func (s *SQLiteStore) LoadRecord(ctx context.Context) (*models.SyncRecord, error) {
	snapshot, err := s.Get(ctx, KeySnapshot)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		return nil, nil
	}

	rec := &models.SyncRecord{Snapshot: snapshot}

	if raw, err := s.Get(ctx, KeySnapshotTS); err != nil {
		return nil, err
	} else if raw != nil {
		// A mangled timestamp degrades to zero: the snapshot is still
		// usable, it just loses ties against any remote record.
		rec.Timestamp, _ = strconv.ParseInt(string(raw), 10, 64)
	}

	if raw, err := s.Get(ctx, KeySnapshotOrigin); err != nil {
		return nil, err
	} else if raw != nil {
		rec.Origin = string(raw)
	}

	return rec, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
