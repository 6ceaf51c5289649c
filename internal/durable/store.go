// Package durable implements the local durability store: a small
// key/value area persisted independently of the in-memory engine. It
// holds the last known snapshot plus its timestamp, so a restart without
// network still sees the latest locally-made change, and it seeds the
// engine when the cloud relay is unreachable.
package durable

import (
	"context"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// Store is synchronous-feeling key/value access. Get returns nil (not an
// error) when a key is absent: first runs are a normal condition.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error

	// SaveRecord persists a full SyncRecord under the fixed snapshot keys.
	SaveRecord(ctx context.Context, rec *models.SyncRecord) error

	// LoadRecord returns the stored SyncRecord, or nil when none exists.
	LoadRecord(ctx context.Context) (*models.SyncRecord, error)

	Close() error
}

// Fixed keys for the durability record and the relay discovery cache.
const (
	KeySnapshot       = "snapshot"
	KeySnapshotTS     = "snapshot_ts"
	KeySnapshotOrigin = "snapshot_origin"
	KeyRelayObjectID  = "relay_object_id"
)
