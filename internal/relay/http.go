package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/durable"
	"github.com/DuJao22/sistema-controle-lava-rapido/internal/models"
)

// IDCache persists the logical-name-to-blob-id mapping between runs so
// the whole object collection is not re-scanned on every call. The
// durability store satisfies this interface.
type IDCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// HTTPRelay talks to a generic object-storage HTTP API:
//
//	POST /objects           {name, data}  create
//	PUT  /objects/{id}      {name, data}  update
//	GET  /objects?name=...                list/filter
//	GET  /objects/{id}                    fetch one
//
// All devices sharing the business agree on a single logical name; when
// several remote entries match it, the greatest data.timestamp wins.
type HTTPRelay struct {
	httpClient *http.Client
	baseURL    string
	name       string
	cache      IDCache
}

type httpObject struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Data payload `json:"data"`
}

type httpEnvelope struct {
	Name string  `json:"name"`
	Data payload `json:"data"`
}

func NewHTTPRelay(httpClient *http.Client, baseURL, name string, cache IDCache) *HTTPRelay {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPRelay{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		name:       name,
		cache:      cache,
	}
}

// Push uploads rec to the shared blob. When a cached object id exists it
// updates in place; a "not found" on update (the backing store may
// silently evict entries) falls back to creating a new object. The
// resulting id is cached for reuse.
func (r *HTTPRelay) Push(ctx context.Context, rec *models.SyncRecord) error {
	env := httpEnvelope{Name: r.name, Data: encodeRecord(rec)}

	id := r.cachedID(ctx)
	if id != "" {
		_, err := r.do(ctx, http.MethodPut, "/objects/"+id, env)
		if err == nil {
			return nil
		}
		if !errors.Is(err, ErrNotFound) {
			return err
		}
		// evicted remotely, create a fresh object
	}

	obj, err := r.do(ctx, http.MethodPost, "/objects", env)
	if err != nil {
		return err
	}
	if obj != nil && obj.ID != "" {
		_ = r.cache.Set(ctx, durable.KeyRelayObjectID, []byte(obj.ID))
	}
	return nil
}

// Pull fetches the current remote snapshot for the logical name. Any
// network, parse, or not-found condition degrades to "no update".
func (r *HTTPRelay) Pull(ctx context.Context) (*models.SyncRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.baseURL+"/objects?name="+url.QueryEscape(r.name), nil)
	if err != nil {
		return nil, err
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("relay: list status %d", resp.StatusCode)
	}

	var objects []httpObject
	if err := json.NewDecoder(resp.Body).Decode(&objects); err != nil {
		// Malformed listing is indistinguishable from an empty relay.
		return nil, nil
	}

	var best *httpObject
	for i := range objects {
		obj := &objects[i]
		if obj.Name != r.name {
			continue
		}
		if best == nil || obj.Data.Timestamp > best.Data.Timestamp {
			best = obj
		}
	}
	if best == nil {
		return nil, nil
	}

	if best.ID != "" {
		_ = r.cache.Set(ctx, durable.KeyRelayObjectID, []byte(best.ID))
	}
	return decodeRecord(best.Data), nil
}

func (r *HTTPRelay) cachedID(ctx context.Context) string {
	raw, err := r.cache.Get(ctx, durable.KeyRelayObjectID)
	if err != nil {
		return ""
	}
	return string(raw)
}

func (r *HTTPRelay) do(ctx context.Context, method, path string, body any) (*httpObject, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("relay: %s %s status %d", method, path, resp.StatusCode)
	}

	var obj httpObject
	if err := json.NewDecoder(resp.Body).Decode(&obj); err != nil {
		// The write itself succeeded; a mangled response body only costs
		// the id cache refresh.
		return nil, nil
	}
	return &obj, nil
}
