// Package syncer orchestrates the local-first synchronization cycle:
// hydrate on startup, persist locally and push on every mutation, and
// replace the in-memory engine wholesale when a poll finds a newer
// remote snapshot.
package syncer

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/dbx"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/durable"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/engine"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/logging"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/relay"
)

// SetupFunc runs once after hydration, with the schema already migrated.
// It is the hook through which bootstrap accounts are upserted.
type SetupFunc func(ctx context.Context, db dbx.DBTX) error

// Controller owns the engine handle for one application session. All
// domain access goes through it: reads via DB(), writes via Mutate.
//
// Consistency model: at-least-eventually-consistent. Concurrent writers
// on two devices can silently clobber each other because the tie-break
// is whole-snapshot overwrite by latest timestamp, not per-row merge.
type Controller struct {
	mu sync.Mutex

	engine   *engine.Engine
	local    durable.Store
	relay    relay.Relay
	resolver ConflictResolver
	log      logging.Logger
	origin   string
	setup    SetupFunc

	lastTimestamp int64
	ready         bool

	// test seam
	now func() time.Time
}

// Options bundles the controller's collaborators.
type Options struct {
	Local    durable.Store
	Relay    relay.Relay
	Resolver ConflictResolver
	Logger   logging.Logger
	Origin   string
	Setup    SetupFunc
}

func NewController(opts Options) *Controller {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = LastWriterWins{}
	}
	return &Controller{
		local:    opts.Local,
		relay:    opts.Relay,
		resolver: resolver,
		log:      opts.Logger,
		origin:   opts.Origin,
		setup:    opts.Setup,
		now:      time.Now,
	}
}

// Initialize decides the hydration source and brings the controller to
// Ready: cloud when preferCloud is set or the remote record is newer,
// else the local durability record, else a fresh empty store. Transport
// and decode failures fall through to the next-best source.
func (c *Controller) Initialize(ctx context.Context, preferCloud bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ready {
		return nil
	}

	remote, err := c.relay.Pull(ctx)
	if err != nil {
		c.log.Warn(ctx, "relay unreachable, starting from local state", "error", err.Error())
		remote = nil
	}

	localRec, err := c.local.LoadRecord(ctx)
	if err != nil {
		c.log.Warn(ctx, "durability store unreadable", "error", err.Error())
		localRec = nil
	}

	var localTS int64
	if localRec != nil {
		localTS = localRec.Timestamp
	}

	if remote != nil && (preferCloud || remote.Newer(localTS)) {
		if eng, err := engine.Open(ctx, remote.Snapshot); err == nil {
			c.engine = eng
			c.lastTimestamp = remote.Timestamp
			if err := c.local.SaveRecord(ctx, remote); err != nil {
				c.log.Warn(ctx, "write-through to durability store failed", "error", err.Error())
			}
		} else {
			c.log.Warn(ctx, "remote snapshot rejected", "error", err.Error())
		}
	}

	if c.engine == nil && localRec != nil {
		if eng, err := engine.Open(ctx, localRec.Snapshot); err == nil {
			c.engine = eng
			c.lastTimestamp = localRec.Timestamp
		} else {
			c.log.Warn(ctx, "local snapshot rejected", "error", err.Error())
		}
	}

	if c.engine == nil {
		eng, err := engine.Open(ctx, nil)
		if err != nil {
			return fmt.Errorf("open empty engine: %w", err)
		}
		c.engine = eng
		c.lastTimestamp = 0
	}

	if err := c.engine.Migrate(ctx); err != nil {
		return err
	}
	if c.setup != nil {
		if err := c.setup(ctx, c.engine.DB()); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}

	c.ready = true
	c.log.Info(ctx, "sync controller ready", "timestamp", c.lastTimestamp, "origin", c.origin)
	return nil
}

// DB hands out the current engine handle for read paths. The handle is
// only valid until the next hot-swap; callers should fetch it per
// operation rather than hold it.
func (c *Controller) DB() *sql.DB {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.DB()
}

// Timestamp returns the logical timestamp of the state currently loaded.
func (c *Controller) Timestamp() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastTimestamp
}

// Mutate applies fn to the engine inside a transaction, then persists
// the new state: export, write-through to the durability store, push to
// the relay. A failed
// push never rolls back the mutation; the write stays durable locally
// and propagates on a later push or poll cycle.
func (c *Controller) Mutate(ctx context.Context, fn func(ctx context.Context, db dbx.DBTX) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := dbx.WithTx(ctx, c.engine.DB(), nil, fn); err != nil {
		return err
	}

	snapshot, err := c.engine.Export(ctx)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	ts := c.now().UnixMilli()
	if ts <= c.lastTimestamp {
		ts = c.lastTimestamp + 1
	}

	rec := &models.SyncRecord{Snapshot: snapshot, Timestamp: ts, Origin: c.origin}

	if err := c.local.SaveRecord(ctx, rec); err != nil {
		return fmt.Errorf("persist local: %w", err)
	}
	c.lastTimestamp = ts

	if err := c.relay.Push(ctx, rec); err != nil {
		c.log.Warn(ctx, "push failed, mutation kept locally", "error", err.Error(), "timestamp", ts)
	}
	return nil
}

// CheckForUpdates pulls the remote record and, when the resolver says it
// wins, discards the in-memory engine and hydrates a new one from the
// remote bytes. Returns whether an update was applied so the caller can
// refresh its view. Safe to call at any cadence, including never.
func (c *Controller) CheckForUpdates(ctx context.Context) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	remote, err := c.relay.Pull(ctx)
	if err != nil {
		c.log.Warn(ctx, "poll failed", "error", err.Error())
		return false, nil
	}
	if remote == nil || !c.resolver.RemoteWins(c.lastTimestamp, remote.Timestamp) {
		return false, nil
	}

	eng, err := engine.Open(ctx, remote.Snapshot)
	if err != nil {
		c.log.Warn(ctx, "remote snapshot rejected", "error", err.Error(), "timestamp", remote.Timestamp)
		return false, nil
	}
	if err := eng.Migrate(ctx); err != nil {
		_ = eng.Close()
		c.log.Warn(ctx, "remote snapshot migration failed", "error", err.Error())
		return false, nil
	}

	old := c.engine
	c.engine = eng
	c.lastTimestamp = remote.Timestamp
	if old != nil {
		_ = old.Close()
	}

	if err := c.local.SaveRecord(ctx, remote); err != nil {
		c.log.Warn(ctx, "write-through to durability store failed", "error", err.Error())
	}

	c.log.Info(ctx, "applied remote snapshot", "timestamp", remote.Timestamp, "origin", remote.Origin)
	return true, nil
}

// Close releases the engine. The durability store is owned by the caller.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.engine == nil {
		return nil
	}
	err := c.engine.Close()
	c.engine = nil
	c.ready = false
	return err
}
