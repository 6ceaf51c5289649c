// Package engine wraps the in-process SQLite database: opening a fresh
// store or restoring one from a serialized snapshot, idempotent schema
// migration, and exporting the full state as a point-in-time byte image.
//
// Persistence is the caller's responsibility: the engine keeps its
// working file in a private temp directory that is removed on Close.
package engine

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/engine/migrations"
)

// Engine is a handle to one embedded database instance. It is owned by
// the synchronization controller and must not be shared across tabs of
// control flow: the application model is single-writer.
type Engine struct {
	dir string
	db  *sql.DB
}

// Open constructs a fresh store, or restores one from a prior snapshot
// when snapshot is non-empty. Malformed snapshot bytes yield
// common.ErrInvalidSnapshot; the caller is expected to fall back to the
// next-best source.
func Open(ctx context.Context, snapshot []byte) (*Engine, error) {
	dir, err := os.MkdirTemp("", "lavarapido-engine-*")
	if err != nil {
		return nil, fmt.Errorf("engine workdir: %w", err)
	}

	path := filepath.Join(dir, "data.db")
	if len(snapshot) > 0 {
		if err := os.WriteFile(path, snapshot, 0o600); err != nil {
			_ = os.RemoveAll(dir)
			return nil, fmt.Errorf("engine restore: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("engine open: %w", err)
	}

	// The application model is single-threaded; one connection also keeps
	// VACUUM INTO from racing concurrent statements.
	db.SetMaxOpenConns(1)

	if len(snapshot) > 0 {
		var n int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM sqlite_master`).Scan(&n); err != nil {
			_ = db.Close()
			_ = os.RemoveAll(dir)
			return nil, fmt.Errorf("%w: %v", common.ErrInvalidSnapshot, err)
		}
	} else if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("engine ping: %w", err)
	}

	return &Engine{dir: dir, db: db}, nil
}

// DB exposes the underlying handle for repositories.
func (e *Engine) DB() *sql.DB {
	return e.db
}

// Migrate applies the embedded schema migrations. Safe to re-run on
// every startup, including on databases hydrated from another device.
func (e *Engine) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, e.db, "."); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Export produces a full snapshot of the database via VACUUM INTO, which
// writes a consistent point-in-time copy regardless of page cache state.
func (e *Engine) Export(ctx context.Context) ([]byte, error) {
	target := filepath.Join(e.dir, fmt.Sprintf("export-%d.db", time.Now().UnixNano()))
	defer os.Remove(target)

	if _, err := e.db.ExecContext(ctx, `VACUUM INTO ?`, target); err != nil {
		return nil, fmt.Errorf("vacuum into: %w", err)
	}

	data, err := os.ReadFile(target)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}
	return data, nil
}

// Close releases the database handle and removes the working directory.
func (e *Engine) Close() error {
	err := e.db.Close()
	_ = os.RemoveAll(e.dir)
	return err
}
