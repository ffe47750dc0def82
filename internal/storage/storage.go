package storage

import (
	"fmt"
	"strings"
	"time"
)

// Package storage remembers the last published digest of each snapshot key so
// unchanged snapshots are not published twice.

// Store tracks the digest last published for a snapshot key.
type Store interface {
	Close() error
	Digest(key string) (string, bool, error)
	SetDigest(key, digest string) error
}

// Options controls retention characteristics for concrete store implementations.
type Options struct {
	DigestTTL       time.Duration
	CleanupInterval time.Duration
}

const (
	defaultDigestTTL       = 24 * time.Hour
	defaultCleanupInterval = time.Hour
)

// NewStore creates the configured storage backend.
func NewStore(typ string, opts Options) (Store, error) {
	typ = strings.TrimSpace(strings.ToLower(typ))
	opts = normalizeOptions(opts)

	switch typ {
	case "none", "disabled":
		return noopStore{}, nil
	case "", "memory":
		return newMemoryStore(opts, time.Now), nil
	default:
		return nil, fmt.Errorf("unsupported storage type %q", typ)
	}
}

func normalizeOptions(opts Options) Options {
	if opts.DigestTTL <= 0 {
		opts.DigestTTL = defaultDigestTTL
	}
	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = defaultCleanupInterval
	}
	return opts
}

type noopStore struct{}

func (noopStore) Close() error                        { return nil }
func (noopStore) Digest(string) (string, bool, error) { return "", false, nil }
func (noopStore) SetDigest(string, string) error      { return nil }
