package chartstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/kundali/internal/domain/kundali"
)

const (
	defaultMaxEntries = 10000
	sweepInterval     = time.Minute
)

type entry struct {
	payload   kundali.Response
	storedAt  time.Time
	expiresAt time.Time
}

// MemoryStore is an in-memory chart cache used for tests/dev and as the
// fallback when Valkey is unreachable. Expired entries are swept on write
// and the oldest entry is evicted once maxEntries is reached.
type MemoryStore struct {
	mu         sync.RWMutex
	entries    map[string]entry
	maxEntries int
	lastSweep  time.Time
	now        func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries:    make(map[string]entry),
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
}

// GetResponse implements kundali.Store.
func (s *MemoryStore) GetResponse(_ context.Context, fingerprint string) (kundali.Response, bool, error) {
	if fingerprint == "" {
		return kundali.Response{}, false, nil
	}
	s.mu.RLock()
	record, ok := s.entries[fingerprint]
	s.mu.RUnlock()
	if !ok {
		return kundali.Response{}, false, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.entries, fingerprint)
		s.mu.Unlock()
		return kundali.Response{}, false, nil
	}
	return record.payload, true, nil
}

// SaveResponse caches the response with optional TTL.
func (s *MemoryStore) SaveResponse(_ context.Context, fingerprint string, resp kundali.Response, ttl time.Duration) error {
	if fingerprint == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if now.Sub(s.lastSweep) >= sweepInterval || len(s.entries) >= s.maxEntries {
		s.sweepLocked(now)
	}
	if _, exists := s.entries[fingerprint]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.entries[fingerprint] = entry{payload: resp, storedAt: now, expiresAt: exp}
	return nil
}

// Len reports the number of cached entries, expired ones included until the
// next sweep.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for key, record := range s.entries {
		if !record.expiresAt.IsZero() && record.expiresAt.Before(now) {
			delete(s.entries, key)
		}
	}
	s.lastSweep = now
}

func (s *MemoryStore) evictOldestLocked() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for key, record := range s.entries {
		if oldestKey == "" || record.storedAt.Before(oldest) {
			oldestKey, oldest = key, record.storedAt
		}
	}
	delete(s.entries, oldestKey)
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ kundali.Store = (*MemoryStore)(nil)
