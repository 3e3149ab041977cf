package assets

import (
	"context"
	"fmt"
	"image"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	// Decoders for the image formats the content document may reference.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// Info describes a fetched image asset. Only the header is decoded;
// pixel data is never kept.
type Info struct {
	URL    string
	Width  int
	Height int
	Format string
}

// Status is the lifecycle state of an asset in the cache.
type Status int

const (
	// StatusUnknown: never requested.
	StatusUnknown Status = iota
	// StatusLoading: a fetch is in flight.
	StatusLoading
	// StatusLoaded: header decoded, Info available.
	StatusLoaded
	// StatusFailed: the fetch or decode failed; the asset is hidden.
	StatusFailed
)

// Cache coordinates concurrent image fetches between command
// goroutines and the UI loop. Begin marks an asset in flight so each
// URL is fetched at most once per pass; Fetch records the result.
type Cache struct {
	mu       sync.RWMutex
	http     *http.Client
	base     *url.URL
	loaded   map[string]Info
	failed   map[string]error
	inflight map[string]struct{}
}

const fetchTimeout = 10 * time.Second

// NewCache builds a cache whose relative asset paths resolve against
// baseURL (normally the content document URL).
func NewCache(baseURL string) (*Cache, error) {
	base, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse asset base url %q: %w", baseURL, err)
	}
	return &Cache{
		http:     &http.Client{Timeout: fetchTimeout},
		base:     base,
		loaded:   make(map[string]Info),
		failed:   make(map[string]error),
		inflight: make(map[string]struct{}),
	}, nil
}

// Resolve turns an asset path from the document into an absolute URL.
// Absolute URLs pass through untouched.
func (c *Cache) Resolve(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	rel, err := url.Parse(trimmed)
	if err != nil {
		return ""
	}
	return c.base.ResolveReference(rel).String()
}

// Status reports the lifecycle state of the given asset URL.
func (c *Cache) Status(assetURL string) Status {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.loaded[assetURL]; ok {
		return StatusLoaded
	}
	if _, ok := c.failed[assetURL]; ok {
		return StatusFailed
	}
	if _, ok := c.inflight[assetURL]; ok {
		return StatusLoading
	}
	return StatusUnknown
}

// Info returns the decoded header for a loaded asset.
func (c *Cache) Info(assetURL string) (Info, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.loaded[assetURL]
	return info, ok
}

// Begin marks the asset as in flight. It returns false when the asset
// is already loading, loaded, or failed, in which case the caller must
// not start another fetch.
func (c *Cache) Begin(assetURL string) bool {
	if strings.TrimSpace(assetURL) == "" {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.loaded[assetURL]; ok {
		return false
	}
	if _, ok := c.failed[assetURL]; ok {
		return false
	}
	if _, ok := c.inflight[assetURL]; ok {
		return false
	}
	c.inflight[assetURL] = struct{}{}
	return true
}

// Fetch retrieves the asset and decodes its header, recording the
// outcome. Callers must have claimed the asset with Begin first.
func (c *Cache) Fetch(ctx context.Context, assetURL string) (Info, error) {
	info, err := c.fetch(ctx, assetURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, assetURL)
	if err != nil {
		c.failed[assetURL] = err
		return Info{}, err
	}
	c.loaded[assetURL] = info
	return info, nil
}

// Reset forgets all recorded outcomes. Called at the start of a full
// render pass so a reload retries previously failed assets.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = make(map[string]Info)
	c.failed = make(map[string]error)
	c.inflight = make(map[string]struct{})
}

func (c *Cache) fetch(ctx context.Context, assetURL string) (Info, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, assetURL, nil)
	if err != nil {
		return Info{}, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("fetch image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Info{}, fmt.Errorf("fetch image %s: status %d", assetURL, resp.StatusCode)
	}

	cfg, format, err := image.DecodeConfig(resp.Body)
	if err != nil {
		return Info{}, fmt.Errorf("decode image %s: %w", assetURL, err)
	}
	return Info{URL: assetURL, Width: cfg.Width, Height: cfg.Height, Format: format}, nil
}
