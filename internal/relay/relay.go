// Package relay implements the cloud relay client: a thin transport that
// moves serialized database snapshots through a shared blob store. The
// relay never interprets the snapshot, it only
// carries bytes plus ordering metadata.
//
// Failure semantics: the relay degrades, it does not escalate. A Pull
// that cannot produce a usable record reports "no update available";
// a failed Push leaves the caller on its current local state, to be
// retried naturally on the next mutation or poll tick.
package relay

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// ErrNotFound signals that the shared blob does not exist yet.
var ErrNotFound = errors.New("relay: object not found")

// Relay is the transport contract the synchronization controller depends
// on. Implementations must be safe to call at any cadence.
type Relay interface {
	// Push uploads rec as the current shared snapshot.
	Push(ctx context.Context, rec *models.SyncRecord) error

	// Pull fetches the current remote snapshot. It returns (nil, nil)
	// when there is no remote record or the stored one cannot be decoded;
	// transport errors are returned for logging but mean the same thing
	// to callers: no update available.
	Pull(ctx context.Context) (*models.SyncRecord, error)
}

// payload is the data element stored in the blob: the snapshot encoded
// as base64 plus its logical timestamp and originating device label.
type payload struct {
	SQLite    string `json:"sqlite"`
	Timestamp int64  `json:"timestamp"`
	Origin    string `json:"origin,omitempty"`
}

func encodeRecord(rec *models.SyncRecord) payload {
	return payload{
		SQLite:    base64.StdEncoding.EncodeToString(rec.Snapshot),
		Timestamp: rec.Timestamp,
		Origin:    rec.Origin,
	}
}

// decodeRecord turns a payload back into a SyncRecord. Corrupt base64
// yields nil: the record is treated as absent, never as a fatal error.
func decodeRecord(p payload) *models.SyncRecord {
	snapshot, err := base64.StdEncoding.DecodeString(p.SQLite)
	if err != nil || len(snapshot) == 0 {
		return nil
	}
	return &models.SyncRecord{Snapshot: snapshot, Timestamp: p.Timestamp, Origin: p.Origin}
}
