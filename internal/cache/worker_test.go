package cache

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
)

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	return string(body)
}

func newGet(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	return req
}

func TestInstallPopulatesManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "asset:"+r.URL.Path)
	}))
	defer server.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, []string{"/index.html", "/app.js"}, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	if err := worker.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}
	if got := storage.Open(worker.CacheName()).Len(); got != 2 {
		t.Fatalf("expected 2 precached entries, got %d", got)
	}
}

func TestInstallIsAllOrNothing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing.js" {
			http.NotFound(w, r)
			return
		}
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, []string{"/index.html", "/missing.js"}, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	if err := worker.Install(context.Background()); err == nil {
		t.Fatal("expected install to fail on an unfetchable manifest entry")
	}
	if names := storage.Names(); len(names) != 0 {
		t.Fatalf("expected nothing cached after failed install, got %v", names)
	}
}

func TestFetchStaleWhileRevalidate(t *testing.T) {
	var version atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if version.Load() == 0 {
			io.WriteString(w, "stale body")
			return
		}
		io.WriteString(w, "fresh body")
	}))
	defer server.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, []string{"/index.html"}, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}
	if err := worker.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}
	version.Store(1)

	resp, err := worker.Fetch(context.Background(), newGet(t, server.URL+"/index.html"))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := readBody(t, resp); got != "stale body" {
		t.Fatalf("expected the cached body served immediately, got %q", got)
	}

	worker.Wait()

	resp, err = worker.Fetch(context.Background(), newGet(t, server.URL+"/index.html"))
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := readBody(t, resp); got != "fresh body" {
		t.Fatalf("expected the revalidated body on the next fetch, got %q", got)
	}
}

func TestFetchMissPopulatesCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "network body")
	}))

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, nil, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	resp, err := worker.Fetch(context.Background(), newGet(t, server.URL+"/late.js"))
	if err != nil {
		t.Fatalf("fetch on miss: %v", err)
	}
	if got := readBody(t, resp); got != "network body" {
		t.Fatalf("expected network body on miss, got %q", got)
	}

	server.Close()

	resp, err = worker.Fetch(context.Background(), newGet(t, server.URL+"/late.js"))
	if err != nil {
		t.Fatalf("fetch after network loss: %v", err)
	}
	if got := readBody(t, resp); got != "network body" {
		t.Fatalf("expected cached body while offline, got %q", got)
	}
	worker.Wait()
}

func TestFetchMissWithNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	origin := server.URL
	server.Close()

	worker, err := NewWorker("v1", origin, nil, NewStorage(), nil)
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	if _, err := worker.Fetch(context.Background(), newGet(t, origin+"/gone.js")); err == nil {
		t.Fatal("expected a true miss with a dead network to yield an error")
	}
}

func TestFetchPassesThroughNonGET(t *testing.T) {
	var sawPost atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			sawPost.Store(true)
		}
		io.WriteString(w, "posted")
	}))
	defer server.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, nil, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/submit", strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	resp, err := worker.Fetch(context.Background(), req)
	if err != nil {
		t.Fatalf("pass-through fetch: %v", err)
	}
	if got := readBody(t, resp); got != "posted" {
		t.Fatalf("expected pass-through body, got %q", got)
	}
	if !sawPost.Load() {
		t.Fatal("expected the POST to reach the network")
	}
	if storage.Open(worker.CacheName()).Len() != 0 {
		t.Fatal("expected non-GET traffic to stay uncached")
	}
}

func TestFetchPassesThroughCrossOrigin(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "same origin")
	}))
	defer origin.Close()
	foreign := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "foreign origin")
	}))
	defer foreign.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", origin.URL, nil, storage, origin.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}

	resp, err := worker.Fetch(context.Background(), newGet(t, foreign.URL+"/cdn.js"))
	if err != nil {
		t.Fatalf("cross-origin fetch: %v", err)
	}
	if got := readBody(t, resp); got != "foreign origin" {
		t.Fatalf("expected cross-origin pass-through, got %q", got)
	}
	if storage.Open(worker.CacheName()).Len() != 0 {
		t.Fatal("expected cross-origin responses to stay uncached")
	}
}

func TestBackgroundRevalidationIgnoresNon200(t *testing.T) {
	var failing atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "maintenance", http.StatusInternalServerError)
			return
		}
		io.WriteString(w, "good body")
	}))
	defer server.Close()

	storage := NewStorage()
	worker, err := NewWorker("v1", server.URL, []string{"/index.html"}, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}
	if err := worker.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}
	failing.Store(true)

	resp, err := worker.Fetch(context.Background(), newGet(t, server.URL+"/index.html"))
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	readBody(t, resp)
	worker.Wait()

	resp, err = worker.Fetch(context.Background(), newGet(t, server.URL+"/index.html"))
	if err != nil {
		t.Fatalf("second fetch: %v", err)
	}
	if got := readBody(t, resp); got != "good body" {
		t.Fatalf("expected the cached body to survive a failed revalidation, got %q", got)
	}
	worker.Wait()
}

func TestActivateDeletesStaleCachesAndClaimsClients(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	storage := NewStorage()
	storage.Open("recon-assets-v0").put("/old.js", &snapshot{Status: http.StatusOK})

	worker, err := NewWorker("v1", server.URL, []string{"/index.html"}, storage, server.Client())
	if err != nil {
		t.Fatalf("build worker: %v", err)
	}
	if err := worker.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}

	clientID := worker.RegisterClient()
	if worker.Controls(clientID) {
		t.Fatal("expected client uncontrolled before activation")
	}

	worker.Activate(context.Background())

	names := storage.Names()
	if len(names) != 1 || names[0] != worker.CacheName() {
		t.Fatalf("expected only the current cache to survive activation, got %v", names)
	}
	if !worker.Controls(clientID) {
		t.Fatal("expected client claimed after activation")
	}
}
