package models

import (
	"encoding/json"
	"time"
)

// SnapshotKind records how a snapshot came to exist.
type SnapshotKind string

const (
	SnapshotKindScheduled SnapshotKind = "scheduled"
	SnapshotKindManual    SnapshotKind = "manual"
)

// Snapshot is an immutable, timestamped copy of the full document set.
// The payload is written once at creation and never mutated afterwards.
type Snapshot struct {
	ID        string          `db:"id" json:"id"`
	Name      string          `db:"name" json:"name"`
	Kind      SnapshotKind    `db:"kind" json:"kind"`
	Size      string          `db:"size" json:"size"`
	Payload   json.RawMessage `db:"payload" json:"-"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
}

// SnapshotPayload is the canonical on-disk shape of a snapshot's data blob.
// Ids are embedded copies, not references to live rows.
type SnapshotPayload struct {
	Templates []Template `json:"templates"`
	Proposals []Proposal `json:"proposals"`
}
