package watch

import (
	"context"

	"github.com/Adda-Baaj/spacetraders-go/pkg/publishers"
)

// EventPublisher publishes change events downstream.
type EventPublisher interface {
	Publish(ctx context.Context, evt publishers.Event) (int, error)
}

// DigestStore remembers the last published digest per snapshot key.
type DigestStore interface {
	Digest(key string) (string, bool, error)
	SetDigest(key, digest string) error
}
