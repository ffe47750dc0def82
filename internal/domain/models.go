package domain

import "time"

// Domain contains the snapshot model shared by collectors, the watcher and
// publishers.

// SnapshotKind names what a snapshot captures.
type SnapshotKind string

const (
	KindAgent     SnapshotKind = "agent"
	KindContracts SnapshotKind = "contracts"
	KindFleet     SnapshotKind = "fleet"
	KindMarket    SnapshotKind = "market"
	KindShipyard  SnapshotKind = "shipyard"
)

// Snapshot is the state of one watched resource at a point in time.
type Snapshot struct {
	SourceID    string       `json:"source_id"`
	Kind        SnapshotKind `json:"kind"`
	Subject     string       `json:"subject"`
	Digest      string       `json:"digest"`
	Payload     any          `json:"payload"`
	CollectedAt time.Time    `json:"collected_at"`
}

// Key identifies the watched resource across polls.
func (s Snapshot) Key() string {
	return s.SourceID + "/" + string(s.Kind) + "/" + s.Subject
}
