package gocrdt

import (
	"encoding/json"
	"testing"
)

func TestORSet_AddContains(t *testing.T) {
	s := NewORSet[string]()
	replica := NewReplicaID()

	s.Add("a", replica)
	if !s.Contains("a") {
		t.Error("expected set to contain a")
	}
	if s.Contains("b") {
		t.Error("expected set to not contain b")
	}
}

func TestORSet_RemoveThenReAdd(t *testing.T) {
	s := NewORSet[string]()
	replica := NewReplicaID()

	s.Add("a", replica)
	s.Remove("a", replica)
	if s.Contains("a") {
		t.Error("expected a to be removed")
	}

	s.Add("a", replica)
	if !s.Contains("a") {
		t.Error("expected a to be visible again after re-add")
	}
}

func TestORSet_ConcurrentAddWinsOverRemove(t *testing.T) {
	replicaA := NewReplicaID()
	replicaB := NewReplicaID()

	a := NewORSet[string]()
	a.Add("x", replicaA)

	// b starts from a copy that has seen the add, then concurrently a
	// second replica re-adds "x" with a fresh tag that b never observed
	// before removing.
	b := a.Clone()
	b.Remove("x", replicaB)

	concurrent := a.Clone()
	concurrent.Add("x", replicaB) // new witness b never saw

	b.Merge(concurrent)
	if !b.Contains("x") {
		t.Error("expected concurrent add to win over an unaware remove")
	}
}

func TestORSet_RemoveOnlyKillsObservedWitnesses(t *testing.T) {
	replicaA := NewReplicaID()
	replicaB := NewReplicaID()

	a := NewORSet[string]()
	a.Add("x", replicaA)

	b := NewORSet[string]()
	b.Add("x", replicaB)

	// a has never observed b's witness, so a's remove only kills its own.
	a.Remove("x", replicaA)
	a.Merge(b)

	if !a.Contains("x") {
		t.Error("expected b's independent witness to survive a's unaware remove")
	}
}

func TestORSet_Idempotent(t *testing.T) {
	s := NewORSet[string]()
	s.Add("a", NewReplicaID())

	s.Merge(s.Clone())
	if !s.Contains("a") {
		t.Error("expected idempotent merge to preserve membership")
	}
}

func TestORSet_Commutative(t *testing.T) {
	a := NewORSet[string]()
	a.Add("x", NewReplicaID())
	b := NewORSet[string]()
	b.Add("y", NewReplicaID())

	left := a.Clone()
	left.Merge(b)
	right := b.Clone()
	right.Merge(a)

	if !left.Equal(right) {
		t.Error("expected commutative merge")
	}
}

func TestORSet_JSONRoundTrip(t *testing.T) {
	original := NewORSet[string]()
	replica := NewReplicaID()
	original.Add("keep", replica)
	original.Add("gone", replica)
	original.Remove("gone", replica)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	restored := NewORSet[string]()
	if err := json.Unmarshal(data, restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !original.Equal(restored) {
		t.Error("expected round-trip to preserve structural equality")
	}
	if !restored.Contains("keep") || restored.Contains("gone") {
		t.Error("expected restored set to preserve visibility")
	}
}
