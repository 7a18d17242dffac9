package cache

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
)

// snapshot is a fully buffered response suitable for repeated replay.
type snapshot struct {
	Status int
	Header http.Header
	Body   []byte
}

func takeSnapshot(resp *http.Response) (*snapshot, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("buffer response body: %w", err)
	}
	return &snapshot{
		Status: resp.StatusCode,
		Header: resp.Header.Clone(),
		Body:   body,
	}, nil
}

func (s *snapshot) response(req *http.Request) *http.Response {
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", s.Status, http.StatusText(s.Status)),
		StatusCode:    s.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        s.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(s.Body)),
		ContentLength: int64(len(s.Body)),
		Request:       req,
	}
}

// NamedCache is one bucket of request-key to response entries.
type NamedCache struct {
	mu      sync.RWMutex
	entries map[string]*snapshot
}

func newNamedCache() *NamedCache {
	return &NamedCache{entries: make(map[string]*snapshot)}
}

func (c *NamedCache) match(key string) *snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.entries[key]
}

func (c *NamedCache) put(key string, snap *snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = snap
}

// Len reports the number of cached entries.
func (c *NamedCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Storage is the registry of named caches. It is safe for concurrent use;
// background revalidations write through it while request goroutines read.
type Storage struct {
	mu     sync.RWMutex
	caches map[string]*NamedCache
}

func NewStorage() *Storage {
	return &Storage{caches: make(map[string]*NamedCache)}
}

// Open returns the named cache, creating it when absent.
func (s *Storage) Open(name string) *NamedCache {
	s.mu.Lock()
	defer s.mu.Unlock()
	cache, ok := s.caches[name]
	if !ok {
		cache = newNamedCache()
		s.caches[name] = cache
	}
	return cache
}

// Names lists every existing cache name, sorted.
func (s *Storage) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.caches))
	for name := range s.caches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Delete removes a named cache, reporting whether it existed.
func (s *Storage) Delete(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.caches[name]
	delete(s.caches, name)
	return ok
}
