package syncer

// ConflictResolver decides whether a remote record replaces local state.
// The shipped policy is whole-snapshot last-write-wins; the interface
// exists so a per-row merge strategy could be substituted later without
// touching the transport or durability layers.
type ConflictResolver interface {
	// RemoteWins reports whether a remote record at remoteTS should
	// replace local state known at localTS.
	RemoteWins(localTS, remoteTS int64) bool
}

// LastWriterWins replaces local state only for a strictly greater remote
// timestamp. Equal timestamps are a no-op: whichever record a device read
// first keeps winning from that device's point of view.
type LastWriterWins struct{}

func (LastWriterWins) RemoteWins(localTS, remoteTS int64) bool {
	return remoteTS > localTS
}
