package models

// SyncRecord is the unit exchanged with the cloud relay and kept in the
// local durability store: a full database snapshot plus ordering metadata.
//
// Timestamp is in milliseconds since epoch and strictly increases with
// each successful write from any device in well-behaved operation. Ties
// are resolved arbitrarily: the record read last wins, there is no causal
// ordering across devices.
type SyncRecord struct {
	Snapshot  []byte
	Timestamp int64
	Origin    string
}

// Newer reports whether r carries a strictly greater timestamp than ts.
func (r *SyncRecord) Newer(ts int64) bool {
	return r != nil && r.Timestamp > ts
}
