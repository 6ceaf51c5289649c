package relayd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/logging"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/relay"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := OpenStore(context.Background(), filepath.Join(t.TempDir(), "relay.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(NewRouter(log, NewHandler(store)))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	require.NoError(t, err)
	return resp
}

func decodeObject(t *testing.T, resp *http.Response) Object {
	t.Helper()
	defer resp.Body.Close()
	var obj Object
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&obj))
	return obj
}

func TestHealthz(t *testing.T) {
	srv := setupServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateGetList(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/objects", map[string]any{
		"name": "loja",
		"data": map[string]any{"timestamp": 42},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decodeObject(t, resp)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "loja", created.Name)

	resp2, err := http.Get(srv.URL + "/objects/" + created.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	got := decodeObject(t, resp2)
	assert.Equal(t, created.ID, got.ID)
	assert.JSONEq(t, `{"timestamp": 42}`, string(got.Data))

	resp3, err := http.Get(srv.URL + "/objects?name=loja")
	require.NoError(t, err)
	defer resp3.Body.Close()
	require.Equal(t, http.StatusOK, resp3.StatusCode)
	var list []Object
	require.NoError(t, json.NewDecoder(resp3.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	resp4, err := http.Get(srv.URL + "/objects?name=outra")
	require.NoError(t, err)
	defer resp4.Body.Close()
	var empty []Object
	require.NoError(t, json.NewDecoder(resp4.Body).Decode(&empty))
	assert.Empty(t, empty)
}

func TestUpdate(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/objects", map[string]any{"name": "loja", "data": map[string]any{"v": 1}})
	created := decodeObject(t, resp)

	b, _ := json.Marshal(map[string]any{"name": "loja", "data": map[string]any{"v": 2}})
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/objects/"+created.ID, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	updated := decodeObject(t, resp2)
	assert.JSONEq(t, `{"v": 2}`, string(updated.Data))

	req2, err := http.NewRequest(http.MethodPut, srv.URL+"/objects/missing", bytes.NewReader(b))
	require.NoError(t, err)
	req2.Header.Set("Content-Type", "application/json")
	resp3, err := http.DefaultClient.Do(req2)
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp3.StatusCode)
}

func TestCreate_MissingNameRejected(t *testing.T) {
	srv := setupServer(t)

	resp := postJSON(t, srv.URL+"/objects", map[string]any{"data": map[string]any{}})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

type memCache struct {
	mu sync.Mutex
	m  map[string][]byte
}

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.m[key], nil
}

func (c *memCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.m == nil {
		c.m = map[string][]byte{}
	}
	c.m[key] = value
	return nil
}

// The HTTP relay client and this server must agree on the wire format.
func TestClientRoundTrip(t *testing.T) {
	srv := setupServer(t)
	ctx := context.Background()

	a := relay.NewHTTPRelay(srv.Client(), srv.URL, "loja", &memCache{})
	b := relay.NewHTTPRelay(srv.Client(), srv.URL, "loja", &memCache{})

	rec, err := b.Pull(ctx)
	require.NoError(t, err)
	assert.Nil(t, rec, "empty relay must read as no snapshot")

	pushed := &models.SyncRecord{Snapshot: []byte("snapshot-bytes"), Timestamp: 1700000000000, Origin: "caixa-1"}
	require.NoError(t, a.Push(ctx, pushed))

	rec, err = b.Pull(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, pushed.Snapshot, rec.Snapshot)
	assert.Equal(t, pushed.Timestamp, rec.Timestamp)
	assert.Equal(t, pushed.Origin, rec.Origin)

	// second push updates in place instead of creating a new object
	pushed2 := &models.SyncRecord{Snapshot: []byte("newer"), Timestamp: 1700000000001, Origin: "caixa-1"}
	require.NoError(t, a.Push(ctx, pushed2))

	resp, err := http.Get(srv.URL + "/objects?name=loja")
	require.NoError(t, err)
	defer resp.Body.Close()
	var list []Object
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
}
