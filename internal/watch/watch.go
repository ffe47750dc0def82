// Package watch polls configured sources and publishes snapshots that changed
// since the last poll.
package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/logger"
	"github.com/Adda-Baaj/spacetraders-go/pkg/sources"
)

// Service runs a watch pass across multiple sources.
type Service struct {
	processor *SourceProcessor
	log       logger.Logger
	sleep     func(ctx context.Context, d time.Duration) error
}

// NewService wires a watch service.
func NewService(reg sources.CollectorRegistry, pub EventPublisher, log logger.Logger, digests DigestStore) *Service {
	if log == nil {
		log = &logger.NopLogger{}
	}
	return &Service{
		processor: NewSourceProcessor(reg, pub, log, digests),
		log:       log,
		sleep:     sleepCtx,
	}
}

// Run processes every source once, in order. Failures do not stop the pass;
// they are returned joined.
func (s *Service) Run(ctx context.Context, srcs []sources.Source) error {
	if s == nil || s.processor == nil || s.processor.registry == nil {
		return fmt.Errorf("watch service is not initialized")
	}
	if len(srcs) == 0 {
		return fmt.Errorf("no sources configured for watching")
	}

	if errs := s.runAll(ctx, srcs); len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func (s *Service) runAll(ctx context.Context, srcs []sources.Source) []error {
	errs := make([]error, 0, len(srcs))

	for i, src := range srcs {
		if ctx.Err() != nil {
			break
		}
		if i > 0 {
			if err := s.sleep(ctx, src.RequestDelay()); err != nil {
				break
			}
		}
		if err := s.processor.Process(ctx, src); err != nil {
			errs = append(errs, err)
			s.log.ErrorObj("source watch failed", "source_error", map[string]any{
				"source_id": src.ID,
				"error":     err.Error(),
			})
		}
	}

	return errs
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
