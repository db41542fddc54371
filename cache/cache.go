// Package cache provides the in-process read-through cache used by the
// store layer. Entries live for a TTL and are removed lazily on read or
// explicitly by substring invalidation. Process-lifetime only; in a
// multi-instance deployment each process keeps its own cache and the
// database stays authoritative.
package cache

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultTTL applies to primary listing queries.
	DefaultTTL = 5 * time.Minute
	// DerivedTTL applies to narrower derived queries (e.g. courses filtered
	// by one instructor), which are more likely to go stale unnoticed.
	DerivedTTL = 2 * time.Minute
)

type entry struct {
	data      interface{}
	timestamp time.Time
	ttl       time.Duration
}

// Store is a key->entry map with per-entry TTL. Safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// New returns a Store using the wall clock.
func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock returns a Store with an injected clock for deterministic tests.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     now,
	}
}

// Key builds a deterministic cache key from a collection name and optional
// query parameters. encoding/json marshals map keys in sorted order, so two
// logically identical parameter sets always produce byte-identical keys.
func Key(collection string, params interface{}) string {
	if params == nil {
		return collection + "_all"
	}
	b, err := json.Marshal(params)
	if err != nil {
		return collection + "_all"
	}
	return collection + "_" + string(b)
}

// Get returns the payload stored under key. An absent entry and an expired
// entry are the same miss; expired entries are removed on the way out.
func (s *Store) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if s.now().Sub(e.timestamp) > e.ttl {
		s.mu.Lock()
		// Only delete if the entry is still expired: a concurrent Set may
		// have refreshed it between the two locks.
		if cur, ok := s.entries[key]; ok && s.now().Sub(cur.timestamp) > cur.ttl {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return nil, false
	}

	return e.data, true
}

// Set stores data under key with the default TTL, overwriting any entry.
func (s *Store) Set(key string, data interface{}) {
	s.SetTTL(key, data, DefaultTTL)
}

// SetTTL stores data under key with an explicit TTL.
func (s *Store) SetTTL(key string, data interface{}, ttl time.Duration) {
	s.mu.Lock()
	s.entries[key] = entry{
		data:      data,
		timestamp: s.now(),
		ttl:       ttl,
	}
	s.mu.Unlock()
}

// Invalidate removes every entry whose key contains pattern as a substring.
// An empty pattern clears the whole cache.
func (s *Store) Invalidate(pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pattern == "" {
		s.entries = make(map[string]entry)
		return
	}

	for key := range s.entries {
		if strings.Contains(key, pattern) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of entries, expired ones included.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Keys returns a snapshot of all stored keys.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.entries))
	for key := range s.entries {
		keys = append(keys, key)
	}
	return keys
}
