package publishers

import "context"

// Publisher delivers change events to one downstream sink. Sinks that hold
// connections also implement io.Closer.
type Publisher interface {
	ID() string
	Type() string
	Publish(ctx context.Context, evt Event) error
}

// sender is the transport half of a queue publisher.
type sender interface {
	Send(ctx context.Context, evt Event) error
	Close() error
}
