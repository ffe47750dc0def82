package publishers

import (
	"time"

	"github.com/Adda-Baaj/spacetraders-go/internal/domain"
	"github.com/goccy/go-json"
)

// Event represents the payload published downstream.
type Event struct {
	SourceID    string              `json:"source_id"`
	Kind        domain.SnapshotKind `json:"kind"`
	Subject     string              `json:"subject"`
	Digest      string              `json:"digest"`
	Payload     any                 `json:"payload"`
	CollectedAt time.Time           `json:"collected_at"`
	PublishedAt time.Time           `json:"published_at"`
}

// NewEvent constructs an Event for the given snapshot.
func NewEvent(snap domain.Snapshot) Event {
	return Event{
		SourceID:    snap.SourceID,
		Kind:        snap.Kind,
		Subject:     snap.Subject,
		Digest:      snap.Digest,
		Payload:     snap.Payload,
		CollectedAt: snap.CollectedAt,
		PublishedAt: time.Now().UTC(),
	}
}

// attributes are attached to queue messages so consumers can filter without
// decoding the body.
func (e Event) attributes() map[string]string {
	return map[string]string{
		"source_id": e.SourceID,
		"kind":      string(e.Kind),
		"subject":   e.Subject,
	}
}

func (e Event) marshal() ([]byte, error) {
	return json.Marshal(e)
}
