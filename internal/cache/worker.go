// Package cache implements the terminal's offline asset cache: a versioned
// named cache pre-populated from a manifest, with stale-while-revalidate
// serving for same-origin GET traffic. It runs in its own execution context
// and shares no mutable state with the theme system.
package cache

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/google/uuid"

	applog "neuralrecon/internal/log"
)

const cacheNamePrefix = "recon-assets-"

// Client is one page client controlled by the worker.
type Client struct {
	ID         string
	Controlled bool
}

// Worker owns one versioned asset cache in front of an upstream origin.
// Bumping the version string is the invalidation mechanism: Activate removes
// every cache whose name does not match the current one.
type Worker struct {
	name     string
	origin   *url.URL
	manifest []string
	storage  *Storage
	client   *http.Client

	mu      sync.Mutex
	clients map[string]*Client

	revalidations sync.WaitGroup
}

// NewWorker builds a worker for the given cache version and asset origin.
// A nil http client falls back to http.DefaultClient.
func NewWorker(version, origin string, manifest []string, storage *Storage, client *http.Client) (*Worker, error) {
	parsed, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("parse asset origin: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("asset origin %q must be an absolute URL", origin)
	}
	if strings.TrimSpace(version) == "" {
		return nil, fmt.Errorf("cache version must not be empty")
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Worker{
		name:     cacheNamePrefix + version,
		origin:   parsed,
		manifest: manifest,
		storage:  storage,
		client:   client,
		clients:  make(map[string]*Client),
	}, nil
}

// CacheName returns the versioned cache name.
func (w *Worker) CacheName() string {
	return w.name
}

func (w *Worker) sameOrigin(u *url.URL) bool {
	return u.Scheme == w.origin.Scheme && u.Host == w.origin.Host
}

func (w *Worker) absolute(path string) string {
	return w.origin.JoinPath(path).String()
}

func requestKey(u *url.URL) string {
	key := u.Path
	if u.RawQuery != "" {
		key += "?" + u.RawQuery
	}
	return key
}

// Install pre-populates the cache from the manifest. The population is
// all-or-nothing: if any entry cannot be fetched with a 200, nothing is
// cached and the install fails.
func (w *Worker) Install(ctx context.Context) error {
	fetched := make(map[string]*snapshot, len(w.manifest))
	for _, path := range w.manifest {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, w.absolute(path), nil)
		if err != nil {
			return fmt.Errorf("precache %s: %w", path, err)
		}
		resp, err := w.client.Do(req)
		if err != nil {
			return fmt.Errorf("precache %s: %w", path, err)
		}
		snap, err := takeSnapshot(resp)
		if err != nil {
			return fmt.Errorf("precache %s: %w", path, err)
		}
		if snap.Status != http.StatusOK {
			return fmt.Errorf("precache %s: unexpected status %d", path, snap.Status)
		}
		fetched[requestKey(req.URL)] = snap
	}

	cache := w.storage.Open(w.name)
	for key, snap := range fetched {
		cache.put(key, snap)
	}
	applog.Info(ctx, "asset cache populated", "cache", w.name, "entries", len(fetched))
	return nil
}

// Activate deletes every cache whose name differs from the current one and
// claims all registered clients.
func (w *Worker) Activate(ctx context.Context) {
	for _, name := range w.storage.Names() {
		if name == w.name {
			continue
		}
		w.storage.Delete(name)
		applog.Info(ctx, "stale asset cache removed", "cache", name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	for _, client := range w.clients {
		client.Controlled = true
	}
}

// RegisterClient records a page client and returns its identifier. Clients
// become controlled when Activate claims them.
func (w *Worker) RegisterClient() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	id := uuid.NewString()
	w.clients[id] = &Client{ID: id}
	return id
}

// Controls reports whether the identified client has been claimed.
func (w *Worker) Controls(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	client, ok := w.clients[id]
	return ok && client.Controlled
}

// Rewrite returns a copy of u addressed to the worker's origin, preserving
// path and query. Inbound server requests carry relative URLs; this maps
// them onto the upstream asset origin before handing them to Fetch.
func (w *Worker) Rewrite(u *url.URL) *url.URL {
	rewritten := *u
	rewritten.Scheme = w.origin.Scheme
	rewritten.Host = w.origin.Host
	return &rewritten
}

// Fetch serves one request through the cache. Non-GET and cross-origin
// requests pass through to the network untouched. Same-origin GETs return
// the cached response immediately when present, revalidating in the
// background; on a miss the caller waits on the network, and a miss combined
// with a network failure yields an error.
func (w *Worker) Fetch(ctx context.Context, req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet || !w.sameOrigin(req.URL) {
		return w.client.Do(req)
	}

	key := requestKey(req.URL)
	cache := w.storage.Open(w.name)
	if snap := cache.match(key); snap != nil {
		w.revalidations.Add(1)
		go func(rawURL string) {
			defer w.revalidations.Done()
			if _, err := w.refresh(context.WithoutCancel(ctx), key, rawURL); err != nil {
				applog.Debug(context.Background(), "background revalidation failed", "key", key, "error", err)
			}
		}(req.URL.String())
		return snap.response(req), nil
	}

	snap, err := w.refresh(ctx, key, req.URL.String())
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	return snap.response(req), nil
}

// refresh fetches the URL and overwrites the cache entry when the response
// is a 200 from the worker's own origin.
func (w *Worker) refresh(ctx context.Context, key, rawURL string) (*snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, err
	}
	snap, err := takeSnapshot(resp)
	if err != nil {
		return nil, err
	}
	finalURL := req.URL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL
	}
	if snap.Status == http.StatusOK && w.sameOrigin(finalURL) {
		w.storage.Open(w.name).put(key, snap)
	}
	return snap, nil
}

// Wait blocks until every in-flight background revalidation has finished.
// Used on shutdown and by tests that need the refreshed entry to be visible.
func (w *Worker) Wait() {
	w.revalidations.Wait()
}
