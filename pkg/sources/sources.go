// Package sources declares which SpaceTraders resources are watched and how
// each one is collected into a snapshot.
package sources

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/Adda-Baaj/spacetraders-go/internal/fileconf"
)

// Source is one watched resource.
type Source struct {
	ID             string              `json:"id" yaml:"id"`
	Name           string              `json:"name" yaml:"name"`
	Kind           domain.SnapshotKind `json:"kind" yaml:"kind"`
	Target         string              `json:"target" yaml:"target"`
	MaxPages       int                 `json:"max_pages" yaml:"max_pages"`
	RequestDelayMs int                 `json:"request_delay_ms" yaml:"request_delay_ms"`
}

type registryFile struct {
	Sources []Source `json:"sources" yaml:"sources"`
}

// Registry holds the sources loaded from a file.
type Registry struct {
	mu      sync.RWMutex
	sources []Source
	idx     map[string]Source
}

const (
	defaultRequestDelayMs = 500
	defaultMaxPages       = 5
)

var knownKinds = map[domain.SnapshotKind]bool{
	domain.KindAgent:     true,
	domain.KindContracts: true,
	domain.KindFleet:     true,
	domain.KindMarket:    true,
	domain.KindShipyard:  true,
}

// LoadRegistry loads the source registry from a YAML or JSON file.
func LoadRegistry(path string) (*Registry, error) {
	file, err := fileconf.Load[registryFile](path, "sources")
	if err != nil {
		return nil, err
	}
	return NewRegistry(file.Sources)
}

// NewRegistry validates srcs and indexes them by id.
func NewRegistry(srcs []Source) (*Registry, error) {
	if len(srcs) == 0 {
		return nil, errors.New("sources file contains no sources entries")
	}

	reg := &Registry{
		sources: make([]Source, len(srcs)),
		idx:     make(map[string]Source, len(srcs)),
	}
	for i := range srcs {
		s := sanitizeSource(srcs[i])
		if err := validateSource(s); err != nil {
			return nil, fmt.Errorf("source[%d]: %w", i, err)
		}
		if _, exists := reg.idx[s.ID]; exists {
			return nil, fmt.Errorf("duplicate source id %q", s.ID)
		}
		reg.sources[i] = s
		reg.idx[s.ID] = s
	}
	return reg, nil
}

// All returns a copy of the loaded sources.
func (r *Registry) All() []Source {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// ByID returns the source entry for the given id.
func (r *Registry) ByID(id string) (Source, bool) {
	if r == nil {
		return Source{}, false
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Source{}, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.idx[id]
	return s, ok
}

func sanitizeSource(s Source) Source {
	s.ID = strings.TrimSpace(s.ID)
	s.Name = strings.TrimSpace(s.Name)
	s.Kind = domain.SnapshotKind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
	s.Target = strings.ToUpper(strings.TrimSpace(s.Target))

	if s.Name == "" {
		s.Name = s.ID
	}
	if s.MaxPages <= 0 {
		s.MaxPages = defaultMaxPages
	}
	if s.RequestDelayMs <= 0 {
		s.RequestDelayMs = defaultRequestDelayMs
	}
	return s
}

func validateSource(s Source) error {
	if s.ID == "" {
		return errors.New("id is required")
	}
	if s.Kind == "" {
		return fmt.Errorf("kind is required for source %q", s.ID)
	}
	if !knownKinds[s.Kind] {
		return fmt.Errorf("unknown kind %q for source %q", s.Kind, s.ID)
	}
	if (s.Kind == domain.KindMarket || s.Kind == domain.KindShipyard) && s.Target == "" {
		return fmt.Errorf("target waypoint is required for %s source %q", s.Kind, s.ID)
	}
	return nil
}

// RequestDelay returns the pause between consecutive sources.
func (s Source) RequestDelay() time.Duration {
	if s.RequestDelayMs <= 0 {
		return time.Duration(defaultRequestDelayMs) * time.Millisecond
	}
	return time.Duration(s.RequestDelayMs) * time.Millisecond
}
