package sources

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
)

// collectorRegistry implements CollectorRegistry.
type collectorRegistry struct {
	byID   map[string]Collector
	byKind map[domain.SnapshotKind]Collector
	mu     sync.RWMutex
}

// NewCollectorRegistry builds a registry with kind-based collectors and
// optional per-source overrides keyed by source id.
func NewCollectorRegistry(kinds []Collector, overrides map[string]Collector) CollectorRegistry {
	reg := &collectorRegistry{
		byID:   make(map[string]Collector),
		byKind: make(map[domain.SnapshotKind]Collector),
	}
	for _, c := range kinds {
		reg.registerKind(c)
	}
	for id, c := range overrides {
		reg.registerID(id, c)
	}
	return reg
}

func (r *collectorRegistry) registerKind(c Collector) {
	if c == nil || c.Kind() == "" {
		return
	}
	r.mu.Lock()
	r.byKind[c.Kind()] = c
	r.mu.Unlock()
}

func (r *collectorRegistry) registerID(id string, c Collector) {
	key := strings.ToLower(strings.TrimSpace(id))
	if c == nil || key == "" {
		return
	}
	r.mu.Lock()
	r.byID[key] = c
	r.mu.Unlock()
}

// CollectorFor selects the collector for the given source by id, then kind.
func (r *collectorRegistry) CollectorFor(src Source) (Collector, error) {
	if r == nil {
		return nil, fmt.Errorf("collector registry is nil")
	}
	if strings.TrimSpace(src.ID) == "" {
		return nil, fmt.Errorf("source id is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.byID[strings.ToLower(strings.TrimSpace(src.ID))]; ok {
		return c, nil
	}
	if c, ok := r.byKind[src.Kind]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("no collector registered for source %q (kind %q)", src.ID, src.Kind)
}

// DefaultCollectorRegistry wires up a collector for every snapshot kind.
func DefaultCollectorRegistry(api API) CollectorRegistry {
	return NewCollectorRegistry([]Collector{
		agentCollector{api: api},
		contractsCollector{api: api},
		fleetCollector{api: api},
		marketCollector{api: api},
		shipyardCollector{api: api},
	}, nil)
}

type agentCollector struct{ api API }

func (agentCollector) Kind() domain.SnapshotKind { return domain.KindAgent }

// Collect reads the authenticated agent, or the public profile named by Target.
func (c agentCollector) Collect(ctx context.Context, src Source) (domain.Snapshot, error) {
	var (
		agent spacetraders.Agent
		err   error
	)
	if src.Target != "" {
		agent, err = c.api.Agent(ctx, src.Target)
	} else {
		agent, err = c.api.MyAgent(ctx)
	}
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch agent: %w", err)
	}
	return newSnapshot(src, agent.Symbol, agent)
}

type contractsCollector struct{ api API }

func (contractsCollector) Kind() domain.SnapshotKind { return domain.KindContracts }

func (c contractsCollector) Collect(ctx context.Context, src Source) (domain.Snapshot, error) {
	contracts, err := spacetraders.Collect(ctx, src.MaxPages, c.api.Contracts)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch contracts: %w", err)
	}
	return newSnapshot(src, "", contracts)
}

type fleetCollector struct{ api API }

func (fleetCollector) Kind() domain.SnapshotKind { return domain.KindFleet }

func (c fleetCollector) Collect(ctx context.Context, src Source) (domain.Snapshot, error) {
	ships, err := spacetraders.Collect(ctx, src.MaxPages, c.api.Ships)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch ships: %w", err)
	}
	return newSnapshot(src, "", ships)
}

type marketCollector struct{ api API }

func (marketCollector) Kind() domain.SnapshotKind { return domain.KindMarket }

func (c marketCollector) Collect(ctx context.Context, src Source) (domain.Snapshot, error) {
	market, err := c.api.Market(ctx, spacetraders.SystemOf(src.Target), src.Target)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch market %s: %w", src.Target, err)
	}
	return newSnapshot(src, src.Target, market)
}

type shipyardCollector struct{ api API }

func (shipyardCollector) Kind() domain.SnapshotKind { return domain.KindShipyard }

func (c shipyardCollector) Collect(ctx context.Context, src Source) (domain.Snapshot, error) {
	yard, err := c.api.Shipyard(ctx, spacetraders.SystemOf(src.Target), src.Target)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("fetch shipyard %s: %w", src.Target, err)
	}
	return newSnapshot(src, src.Target, yard)
}
