package storage

import (
	"errors"
	"sync"
	"time"
)

var errClosed = errors.New("storage is closed")

type entry struct {
	digest  string
	expires time.Time
}

// memoryStore keeps digests in a map. Expired entries are dropped on read and
// swept at most once per cleanup interval.
type memoryStore struct {
	mu              sync.Mutex
	entries         map[string]entry
	closed          bool
	lastCleanup     time.Time
	digestTTL       time.Duration
	cleanupInterval time.Duration
	now             func() time.Time
}

func newMemoryStore(opts Options, now func() time.Time) *memoryStore {
	return &memoryStore{
		entries:         make(map[string]entry),
		lastCleanup:     now(),
		digestTTL:       opts.DigestTTL,
		cleanupInterval: opts.CleanupInterval,
		now:             now,
	}
}

func (m *memoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.entries = nil
	return nil
}

// Digest returns the live digest stored for key.
func (m *memoryStore) Digest(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return "", false, errClosed
	}

	now := m.now()
	m.maybeCleanupLocked(now)

	e, ok := m.entries[key]
	if !ok {
		return "", false, nil
	}
	if !e.expires.After(now) {
		delete(m.entries, key)
		return "", false, nil
	}
	return e.digest, true, nil
}

// SetDigest stores digest for key, replacing any previous value.
func (m *memoryStore) SetDigest(key, digest string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errClosed
	}

	now := m.now()
	m.maybeCleanupLocked(now)
	m.entries[key] = entry{digest: digest, expires: now.Add(m.digestTTL)}
	return nil
}

func (m *memoryStore) maybeCleanupLocked(now time.Time) {
	if now.Sub(m.lastCleanup) < m.cleanupInterval {
		return
	}
	for k, e := range m.entries {
		if !e.expires.After(now) {
			delete(m.entries, k)
		}
	}
	m.lastCleanup = now
}

func (m *memoryStore) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}
