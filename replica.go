package gocrdt

import (
	"bytes"
	"encoding/json"

	"github.com/google/uuid"
)

// ReplicaId is an opaque, globally-unique, 128-bit identifier for a
// replica. It is stable for the life of a replica, cheaply comparable, and
// totally ordered so it can serve as the tie-break leg of a HybridTimestamp
// and as a map key throughout the CRDT types in this package.
type ReplicaId struct {
	id uuid.UUID
}

// NewReplicaID draws a fresh 128-bit identifier from a cryptographically
// secure random source. Per the package's "no cached global state" design,
// the underlying RNG is obtained fresh on every call, never reused.
func NewReplicaID() ReplicaId {
	return ReplicaId{id: uuid.New()}
}

// ReplicaIdFromBytes builds a ReplicaId from caller-supplied bytes, for
// hosts that provision replica identity externally (e.g. from a config
// file or a cluster coordinator) rather than drawing a random one.
func ReplicaIdFromBytes(b [16]byte) ReplicaId {
	return ReplicaId{id: uuid.UUID(b)}
}

// Bytes returns the 16 raw bytes of the identifier.
func (r ReplicaId) Bytes() [16]byte {
	return [16]byte(r.id)
}

// String returns the canonical UUID string form.
func (r ReplicaId) String() string {
	return r.id.String()
}

// IsZero reports whether this is the zero-value ReplicaId (never produced
// by NewReplicaID; useful as a sentinel for "no replica").
func (r ReplicaId) IsZero() bool {
	return r.id == uuid.Nil
}

// Less provides the total order used to tie-break HybridTimestamp values
// and to keep map iteration order deterministic where callers sort by
// ReplicaId explicitly.
func (r ReplicaId) Less(other ReplicaId) bool {
	return bytes.Compare(r.id[:], other.id[:]) < 0
}

// MarshalText renders the identifier as its canonical UUID string. This is
// what lets encoding/json use ReplicaId as a map key (map[ReplicaId]...),
// since json only accepts string, integer, or encoding.TextMarshaler keys.
func (r ReplicaId) MarshalText() ([]byte, error) {
	return []byte(r.id.String()), nil
}

// UnmarshalText parses a canonical UUID string back into a ReplicaId.
func (r *ReplicaId) UnmarshalText(text []byte) error {
	parsed, err := uuid.Parse(string(text))
	if err != nil {
		return &DeserializationError{Type: "ReplicaId", Cause: err}
	}
	r.id = parsed
	return nil
}

// MarshalJSON renders the identifier as its canonical UUID string.
func (r ReplicaId) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.id.String())
}

// UnmarshalJSON parses a canonical UUID string back into a ReplicaId.
func (r *ReplicaId) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DeserializationError{Type: "ReplicaId", Cause: err}
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return &DeserializationError{Type: "ReplicaId", Cause: err}
	}
	r.id = parsed
	return nil
}
