package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/config"
	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/Adda-Baaj/spacetraders-go/internal/storage"
	"github.com/Adda-Baaj/spacetraders-go/internal/watch"
	"github.com/Adda-Baaj/spacetraders-go/pkg/publishers"
	"github.com/Adda-Baaj/spacetraders-go/pkg/sources"
)

// Watcher is the long-running poll loop. It owns the publishers and the digest
// store and releases both when Run returns.
type Watcher struct {
	cfg          *config.Config
	sourceReg    *sources.Registry
	pubs         []publishers.Publisher
	fanout       *publishers.Fanout
	watchService *watch.Service
	pollInterval time.Duration
	log          logger.Logger
	store        storage.Store
}

// NewWatcher builds a watcher runtime from config files.
func NewWatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*Watcher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	sourceReg, err := sources.LoadRegistry(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("load sources registry: %w", err)
	}
	if sourceReg, err = withPublicAgent(sourceReg, cfg.PublicAgent()); err != nil {
		return nil, fmt.Errorf("apply agent_symbol: %w", err)
	}
	sourceList := sourceReg.All()
	sourceIDs := make([]string, 0, len(sourceList))
	for _, s := range sourceList {
		sourceIDs = append(sourceIDs, s.ID)
	}
	log.InfoObj("sources registry loaded", "sources_meta", map[string]any{
		"count": len(sourceIDs),
		"ids":   sourceIDs,
	})

	publisherReg, err := publishers.LoadRegistry(cfg.PublishersFile)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabledPublishers := publisherReg.Enabled()
	if len(enabledPublishers) == 0 {
		return nil, fmt.Errorf("no publishers configured")
	}

	api, err := NewAPIClient(cfg, log)
	if err != nil {
		return nil, err
	}

	pubClients, err := publishers.BuildAll(ctx, publishers.DefaultBuilders(), enabledPublishers, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	publisherSummaries := make([]map[string]string, 0, len(enabledPublishers))
	for _, pubCfg := range enabledPublishers {
		publisherSummaries = append(publisherSummaries, map[string]string{
			"id":   pubCfg.ID,
			"type": pubCfg.Type,
		})
	}
	log.InfoObj("publishers registry loaded", "publishers_meta", map[string]any{
		"count":      len(publisherSummaries),
		"publishers": publisherSummaries,
	})

	store, err := storage.NewStore(cfg.StorageType, storage.Options{
		DigestTTL:       cfg.StorageTTL,
		CleanupInterval: cfg.StorageCleanupInterval,
	})
	if err != nil {
		_ = publishers.CloseAll(pubClients)
		return nil, fmt.Errorf("init storage: %w", err)
	}
	log.InfoObj("storage initialized", "storage_config", map[string]any{
		"type":                     cfg.StorageType,
		"digest_ttl_seconds":       int(cfg.StorageTTL.Seconds()),
		"cleanup_interval_seconds": int(cfg.StorageCleanupInterval.Seconds()),
	})

	fanout := publishers.NewFanout(pubClients)
	collectors := sources.DefaultCollectorRegistry(api)

	return &Watcher{
		cfg:          cfg,
		sourceReg:    sourceReg,
		pubs:         pubClients,
		fanout:       fanout,
		watchService: watch.NewService(collectors, fanout, log, store),
		pollInterval: cfg.PollInterval,
		log:          log,
		store:        store,
	}, nil
}

// withPublicAgent points untargeted agent sources at symbol, so a watcher
// without a token reads the public profile instead of my/agent.
func withPublicAgent(reg *sources.Registry, symbol string) (*sources.Registry, error) {
	if symbol == "" {
		return reg, nil
	}
	srcs := reg.All()
	for i := range srcs {
		if srcs[i].Kind == domain.KindAgent && srcs[i].Target == "" {
			srcs[i].Target = symbol
		}
	}
	return sources.NewRegistry(srcs)
}

// Run starts the poll loop until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	if w == nil || w.watchService == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.close()

	srcs := w.sourceReg.All()
	w.log.InfoObj("watch loop starting", "watcher_state", map[string]any{
		"sources_count":    len(srcs),
		"publishers_count": w.fanout.Size(),
		"poll_interval":    w.pollInterval.String(),
	})

	if err := w.runOnce(ctx, srcs); err != nil {
		w.log.ErrorObj("initial poll failed", "error", err)
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.InfoObj("watch loop exiting", "reason", ctx.Err())
			return nil
		case <-ticker.C:
			if err := w.runOnce(ctx, srcs); err != nil {
				w.log.ErrorObj("scheduled poll failed", "error", err)
			}
		}
	}
}

// RunOnce performs a single pass and releases resources.
func (w *Watcher) RunOnce(ctx context.Context) error {
	if w == nil || w.watchService == nil {
		return fmt.Errorf("watcher is not initialized")
	}
	defer w.close()
	return w.runOnce(ctx, w.sourceReg.All())
}

func (w *Watcher) runOnce(ctx context.Context, srcs []sources.Source) error {
	start := time.Now()
	w.log.InfoObj("poll started", "poll_meta", map[string]any{
		"sources_count": len(srcs),
		"started_at":    start.UTC(),
	})
	if err := w.watchService.Run(ctx, srcs); err != nil {
		return err
	}
	w.log.InfoObj("poll completed", "poll_meta", map[string]any{
		"sources_count": len(srcs),
		"elapsed_ms":    time.Since(start).Milliseconds(),
	})
	return nil
}

func (w *Watcher) close() {
	if err := publishers.CloseAll(w.pubs); err != nil {
		w.log.ErrorObj("publisher close failed", "error", err)
	}
	if w.store == nil {
		return
	}
	if err := w.store.Close(); err != nil {
		w.log.ErrorObj("storage close failed", "error", err)
	}
}
