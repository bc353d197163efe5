package gocrdt

import (
	"encoding/json"
	"testing"
)

func TestReplicaId_UniqueAndNotZero(t *testing.T) {
	a := NewReplicaID()
	b := NewReplicaID()

	if a.IsZero() || b.IsZero() {
		t.Error("expected freshly drawn replica ids to be non-zero")
	}
	if a == b {
		t.Error("expected two draws to produce distinct replica ids")
	}
}

func TestReplicaId_ZeroValueIsZero(t *testing.T) {
	var r ReplicaId
	if !r.IsZero() {
		t.Error("expected zero-value ReplicaId to report IsZero")
	}
}

func TestReplicaId_LessTotalOrder(t *testing.T) {
	a := ReplicaIdFromBytes([16]byte{1})
	b := ReplicaIdFromBytes([16]byte{2})

	if !a.Less(b) {
		t.Error("expected a < b")
	}
	if b.Less(a) == a.Less(b) {
		t.Error("expected Less to be antisymmetric")
	}
	if a.Less(a) {
		t.Error("expected Less to be irreflexive")
	}
}

func TestReplicaId_JSONRoundTrip(t *testing.T) {
	original := NewReplicaID()

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored ReplicaId
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if restored != original {
		t.Errorf("expected round-trip to preserve identity, got %v want %v", restored, original)
	}
}

func TestReplicaId_AsMapKeyRoundTrip(t *testing.T) {
	counters := map[ReplicaId]uint64{
		NewReplicaID(): 1,
		NewReplicaID(): 2,
	}

	data, err := json.Marshal(counters)
	if err != nil {
		t.Fatalf("marshal map keyed by ReplicaId: %v", err)
	}

	restored := map[ReplicaId]uint64{}
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("unmarshal map keyed by ReplicaId: %v", err)
	}
	if len(restored) != len(counters) {
		t.Fatalf("expected %d entries, got %d", len(counters), len(restored))
	}
	for replica, count := range counters {
		if restored[replica] != count {
			t.Errorf("expected %d for %v, got %d", count, replica, restored[replica])
		}
	}
}

func TestReplicaId_UnmarshalInvalidUUID(t *testing.T) {
	var r ReplicaId
	err := json.Unmarshal([]byte(`"not-a-uuid"`), &r)
	if err == nil {
		t.Fatal("expected error unmarshaling invalid UUID string")
	}
	if _, ok := err.(*DeserializationError); !ok {
		t.Errorf("expected *DeserializationError, got %T", err)
	}
}
