package schema

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Sidecar is the metadata record written alongside every cached schema
// blob, per spec.md §4.D: "{ cached_at, source_url, size, content_hash }".
type Sidecar struct {
	CachedAt    time.Time `json:"cached_at"`
	SourceURL   string    `json:"source_url"`
	Size        int64     `json:"size"`
	ContentHash string    `json:"content_hash"`
}

// Cache is a time-bounded, on-disk schema cache. Writes are atomic
// (temp file + rename); concurrent misses for the same name are
// serialized per-entry so the cache never exposes a partial file.
//
// Grounded on certificate.CertificateCache's TTL/mutex shape, replacing
// in-memory entries with blob+sidecar files on disk and LRU eviction
// with per-name single-writer locking (spec.md §5: "Shared resources:
// Schema cache (on-disk): exclusive-write per entry").
type Cache struct {
	Dir           string
	RefreshPeriod time.Duration
	BaseURL       string
	HTTPClient    *http.Client

	mu        sync.Mutex
	nameLocks map[string]*sync.Mutex
}

// NewCache builds a Cache rooted at dir, refreshing entries older than
// refreshPeriod by fetching from baseURL.
func NewCache(dir, baseURL string, refreshPeriod time.Duration, httpClient *http.Client) *Cache {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Cache{
		Dir:           dir,
		RefreshPeriod: refreshPeriod,
		BaseURL:       baseURL,
		HTTPClient:    httpClient,
		nameLocks:     map[string]*sync.Mutex{},
	}
}

func (c *Cache) lockFor(name string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.nameLocks[name]
	if !ok {
		l = &sync.Mutex{}
		c.nameLocks[name] = l
	}
	return l
}

func (c *Cache) blobPath(name string) string   { return filepath.Join(c.Dir, name+".xsd") }
func (c *Cache) sidecarPath(name string) string { return filepath.Join(c.Dir, name+".json") }

// entryState records whether the cached entry for a name is fresh, stale
// (but present), or absent.
type entryState int

const (
	stateMissing entryState = iota
	stateFresh
	stateStale
)

func (c *Cache) state(name string) (entryState, *Sidecar) {
	sc, err := c.readSidecar(name)
	if err != nil {
		return stateMissing, nil
	}
	if time.Since(sc.CachedAt) > c.RefreshPeriod {
		return stateStale, sc
	}
	return stateFresh, sc
}

func (c *Cache) readSidecar(name string) (*Sidecar, error) {
	b, err := os.ReadFile(c.sidecarPath(name))
	if err != nil {
		return nil, err
	}
	var sc Sidecar
	if err := json.Unmarshal(b, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Get returns the schema blob for name, fetching or refreshing it as
// needed. A fetch failure for a name with no existing entry is fatal
// (returns an error); a fetch failure for a name with a stale-but-present
// entry falls back to the stale copy, and staleFallback is reported true
// so the caller can attach a warning finding.
func (c *Cache) Get(ctx context.Context, name string) (content []byte, staleFallback bool, err error) {
	lock := c.lockFor(name)
	lock.Lock()
	defer lock.Unlock()

	state, _ := c.state(name)
	switch state {
	case stateFresh:
		b, err := os.ReadFile(c.blobPath(name))
		if err == nil {
			return b, false, nil
		}
		// fresh sidecar but missing blob: treat as missing, refetch.
	case stateStale:
		b, fetchErr := c.fetch(ctx, name)
		if fetchErr == nil {
			return b, false, nil
		}
		stale, readErr := os.ReadFile(c.blobPath(name))
		if readErr != nil {
			return nil, false, fmt.Errorf("schema cache: refresh failed and no stale copy for %q: %w", name, fetchErr)
		}
		return stale, true, nil
	}

	b, err := c.fetch(ctx, name)
	if err != nil {
		return nil, false, fmt.Errorf("schema cache: fetch failed for %q: %w", name, err)
	}
	return b, false, nil
}

func (c *Cache) fetch(ctx context.Context, name string) ([]byte, error) {
	url := c.BaseURL + "/" + name + ".xsd"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if err := c.writeAtomic(name, url, body); err != nil {
		return nil, err
	}
	return body, nil
}

// writeAtomic writes the blob and sidecar with temp-file-then-rename so a
// reader never observes a partial file.
func (c *Cache) writeAtomic(name, sourceURL string, content []byte) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}
	sum := sha256.Sum256(content)
	sidecar := Sidecar{
		CachedAt:    time.Now(),
		SourceURL:   sourceURL,
		Size:        int64(len(content)),
		ContentHash: hex.EncodeToString(sum[:]),
	}
	sidecarBytes, err := json.Marshal(sidecar)
	if err != nil {
		return err
	}

	if err := atomicWrite(c.blobPath(name), content); err != nil {
		return err
	}
	return atomicWrite(c.sidecarPath(name), sidecarBytes)
}

func atomicWrite(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
