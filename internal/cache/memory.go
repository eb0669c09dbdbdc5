package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rpgo/savings-projector/internal/domain"
)

type memoryEntry struct {
	result  *domain.ProjectionResult
	expires time.Time
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

// MemoryCache is an in-process ResultCache with a fixed TTL.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache creates a cache whose entries expire after ttl (ttl <= 0 never expires).
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetNowFunc overrides the clock used for expiry.
func (m *MemoryCache) SetNowFunc(f func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = f
}

func (m *MemoryCache) Get(_ context.Context, key string) (*domain.ProjectionResult, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	now := m.now()
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if e.expired(now) {
		m.mu.Lock()
		// A concurrent Set may have refreshed the key since the read lock was released.
		if cur, ok := m.entries[key]; ok && cur.expired(m.now()) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return nil, false
	}
	return e.result, true
}

// Set stores result under key and evicts every entry that has already expired.
func (m *MemoryCache) Set(_ context.Context, key string, result *domain.ProjectionResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
		}
	}
	e := memoryEntry{result: result}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
	}
	m.entries[key] = e
	return nil
}

// Len returns the number of stored entries, including expired ones not yet evicted.
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
