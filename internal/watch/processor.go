package watch

import (
	"context"
	"fmt"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/Adda-Baaj/spacetraders-go/pkg/publishers"
	"github.com/Adda-Baaj/spacetraders-go/pkg/sources"
)

// SourceProcessor collects one source and publishes its snapshot when it
// differs from the last one published.
type SourceProcessor struct {
	registry  sources.CollectorRegistry
	publisher EventPublisher
	log       logger.Logger
	digests   DigestStore
}

// NewSourceProcessor wires a processor. A nil digest store publishes every
// snapshot.
func NewSourceProcessor(reg sources.CollectorRegistry, pub EventPublisher, log logger.Logger, digests DigestStore) *SourceProcessor {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &SourceProcessor{
		registry:  reg,
		publisher: pub,
		log:       log,
		digests:   digests,
	}
}

// Process collects src and publishes it if it changed.
func (p *SourceProcessor) Process(ctx context.Context, src sources.Source) error {
	collector, err := p.registry.CollectorFor(src)
	if err != nil {
		return fmt.Errorf("resolve collector for source %s: %w", src.ID, err)
	}

	snap, err := collector.Collect(ctx, src)
	if err != nil {
		return fmt.Errorf("collect source %s: %w", src.ID, err)
	}

	if !p.changed(snap) {
		p.log.DebugObj("snapshot unchanged", "snapshot_meta", snapshotMeta(snap))
		return nil
	}

	if p.publisher == nil {
		p.log.WarnObj("no publisher configured; snapshot dropped", "snapshot_meta", snapshotMeta(snap))
		return nil
	}

	sent, err := p.publisher.Publish(ctx, publishers.NewEvent(snap))
	if err != nil && sent == 0 {
		return fmt.Errorf("publish source %s: %w", src.ID, err)
	}
	if err != nil {
		p.log.WarnObj("snapshot partially published", "publish_error", map[string]any{
			"source_id": src.ID,
			"delivered": sent,
			"error":     err.Error(),
		})
	}

	if p.digests != nil {
		if err := p.digests.SetDigest(snap.Key(), snap.Digest); err != nil {
			p.log.WarnObj("digest store write failed", "storage_error", map[string]any{
				"key":   snap.Key(),
				"error": err.Error(),
			})
		}
	}

	p.log.InfoObj("snapshot published", "snapshot_meta", snapshotMeta(snap))
	return nil
}

// changed reports whether snap differs from the last published digest. Store
// read failures count as changed.
func (p *SourceProcessor) changed(snap domain.Snapshot) bool {
	if p.digests == nil {
		return true
	}
	prev, ok, err := p.digests.Digest(snap.Key())
	if err != nil {
		p.log.WarnObj("digest store read failed", "storage_error", map[string]any{
			"key":   snap.Key(),
			"error": err.Error(),
		})
		return true
	}
	return !ok || prev != snap.Digest
}

func snapshotMeta(snap domain.Snapshot) map[string]any {
	return map[string]any{
		"source_id": snap.SourceID,
		"kind":      snap.Kind,
		"subject":   snap.Subject,
		"digest":    snap.Digest,
	}
}
