package durable

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(context.Background(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGet_MissingKeyReturnsNilNoError(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestSetGet_Overwrite(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestLoadRecord_EmptyStoreReturnsNil(t *testing.T) {
	s := setupStore(t)

	rec, err := s.LoadRecord(context.Background())
	require.NoError(t, err)
	assert.Nil(t, rec)
}

func TestSaveLoadRecord_RoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	in := &models.SyncRecord{
		Snapshot:  []byte{0x53, 0x51, 0x4c, 0x69, 0x74, 0x65},
		Timestamp: 1700000000123,
		Origin:    "device-a",
	}
	require.NoError(t, s.SaveRecord(ctx, in))

	out, err := s.LoadRecord(ctx)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Snapshot, out.Snapshot)
	assert.Equal(t, in.Timestamp, out.Timestamp)
	assert.Equal(t, in.Origin, out.Origin)
}

func TestSaveRecord_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveRecord(ctx, &models.SyncRecord{Snapshot: []byte("snap"), Timestamp: 42, Origin: "a"}))
	require.NoError(t, s.Close())

	s2, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	defer s2.Close()

	rec, err := s2.LoadRecord(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, int64(42), rec.Timestamp)
}
