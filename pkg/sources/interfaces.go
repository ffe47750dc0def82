package sources

import (
	"context"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/Adda-Baaj/spacetraders-go/pkg/spacetraders"
)

// Collector captures the current state of a source as a snapshot.
type Collector interface {
	Kind() domain.SnapshotKind
	Collect(ctx context.Context, src Source) (domain.Snapshot, error)
}

// CollectorRegistry resolves the collector for a given source.
type CollectorRegistry interface {
	CollectorFor(src Source) (Collector, error)
}

// API is the subset of *spacetraders.Client the collectors use.
type API interface {
	MyAgent(ctx context.Context) (spacetraders.Agent, error)
	Agent(ctx context.Context, symbol string) (spacetraders.Agent, error)
	Contracts(ctx context.Context, p spacetraders.Pagination) (spacetraders.Page[spacetraders.Contract], error)
	Ships(ctx context.Context, p spacetraders.Pagination) (spacetraders.Page[spacetraders.Ship], error)
	Market(ctx context.Context, system, waypoint string) (spacetraders.Market, error)
	Shipyard(ctx context.Context, system, waypoint string) (spacetraders.Shipyard, error)
}
