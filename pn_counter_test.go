package gocrdt

import "testing"

func TestPNCounter_Basic(t *testing.T) {
	replica := NewReplicaID()
	counter := NewPNCounter()

	counter.Increment(replica, 1)
	counter.Increment(replica, 1)
	counter.Decrement(replica, 1)

	if counter.Sum() != 1 {
		t.Errorf("expected 1, got %d", counter.Sum())
	}
}

func TestPNCounter_CanGoNegative(t *testing.T) {
	replica := NewReplicaID()
	counter := NewPNCounter()
	counter.Decrement(replica, 5)

	if counter.Sum() != -5 {
		t.Errorf("expected -5, got %d", counter.Sum())
	}
}

func TestPNCounter_Merge(t *testing.T) {
	nodeA := NewReplicaID()
	nodeB := NewReplicaID()

	a := NewPNCounter()
	b := NewPNCounter()

	a.Increment(nodeA, 1) // a = 1
	b.Decrement(nodeB, 1) // b = -1

	a.Merge(b)
	b.Merge(a)

	if a.Sum() != 0 || b.Sum() != 0 {
		t.Errorf("expected convergence at 0, got a=%d, b=%d", a.Sum(), b.Sum())
	}
}

func TestPNCounter_Idempotent(t *testing.T) {
	replica := NewReplicaID()
	a := NewPNCounter()
	a.Increment(replica, 3)
	a.Decrement(replica, 1)

	before := a.Sum()
	a.Merge(a.Clone())
	if a.Sum() != before {
		t.Errorf("expected idempotent merge, got %d want %d", a.Sum(), before)
	}
}
