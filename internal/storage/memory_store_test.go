package storage

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestMemoryStoreStoresAndExpiresDigests(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := newMemoryStore(Options{DigestTTL: time.Minute, CleanupInterval: time.Hour}, clock.now)

	if _, ok, err := store.Digest("agent"); err != nil || ok {
		t.Fatalf("expected no digest, ok=%v err=%v", ok, err)
	}
	if err := store.SetDigest("agent", "abc"); err != nil {
		t.Fatalf("SetDigest: %v", err)
	}
	got, ok, err := store.Digest("agent")
	if err != nil || !ok || got != "abc" {
		t.Fatalf("expected abc, got %q ok=%v err=%v", got, ok, err)
	}

	clock.advance(2 * time.Minute)
	if _, ok, _ := store.Digest("agent"); ok {
		t.Fatalf("expected digest to expire")
	}
}

func TestMemoryStoreSweepsOnInterval(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := newMemoryStore(Options{DigestTTL: time.Minute, CleanupInterval: 10 * time.Minute}, clock.now)

	_ = store.SetDigest("a", "1")
	_ = store.SetDigest("b", "2")
	clock.advance(5 * time.Minute)
	_ = store.SetDigest("c", "3")
	if store.size() != 3 {
		t.Fatalf("expected no sweep before interval, size=%d", store.size())
	}

	clock.advance(6 * time.Minute)
	if _, ok, _ := store.Digest("c"); ok {
		t.Fatalf("expected c to be expired")
	}
	if store.size() != 0 {
		t.Fatalf("expected sweep to drop expired entries, size=%d", store.size())
	}
}

func TestMemoryStoreClosed(t *testing.T) {
	store := newMemoryStore(Options{DigestTTL: time.Minute, CleanupInterval: time.Minute}, time.Now)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.SetDigest("a", "1"); err == nil {
		t.Fatalf("expected error after close")
	}
}

func TestNewStoreTypes(t *testing.T) {
	for _, typ := range []string{"", "memory", "none", "DISABLED"} {
		store, err := NewStore(typ, Options{})
		if err != nil {
			t.Fatalf("NewStore(%q): %v", typ, err)
		}
		_ = store.Close()
	}
	if _, err := NewStore("bbolt", Options{}); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}
