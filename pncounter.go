package gocrdt

import "encoding/json"

// PNCounter is a Positive-Negative Counter CRDT.
//
// Unlike a GrowOnlyCounter, which is increment-only, a PNCounter allows
// both increments and decrements. It achieves this by internally managing
// two independent G-Counters: the "P" counter tracks the sum of all
// increments, the "N" counter tracks the sum of all decrements. This
// structure keeps the underlying state monotonic (always growing), which
// is what makes merging well-defined.
type PNCounter struct {
	positive *GrowOnlyCounter // increments
	negative *GrowOnlyCounter // decrements
}

// NewPNCounter creates a zeroed PN-Counter.
func NewPNCounter() *PNCounter {
	return &PNCounter{
		positive: NewGrowOnlyCounter(),
		negative: NewGrowOnlyCounter(),
	}
}

// Increment adds amount to replica's positive slot.
func (c *PNCounter) Increment(replica ReplicaId, amount uint64) {
	c.positive.Increment(replica, amount)
}

// Decrement adds amount to replica's negative slot (i.e. it increases the
// negative G-Counter, which lowers the PNCounter's overall Value).
func (c *PNCounter) Decrement(replica ReplicaId, amount uint64) {
	c.negative.Increment(replica, amount)
}

// Sum returns positive total minus negative total: the current value,
// which may be negative.
func (c *PNCounter) Sum() int64 {
	return int64(c.positive.Sum()) - int64(c.negative.Sum())
}

// Merge combines another PNCounter into this one by independently merging
// the underlying positive and negative G-Counters. Since both underlying
// counters satisfy the properties of a join-semilattice, the PNCounter
// merge is commutative, associative, and idempotent too.
func (c *PNCounter) Merge(other *PNCounter) {
	c.positive.Merge(other.positive)
	c.negative.Merge(other.negative)
}

// Clone returns a deep, independent copy.
func (c *PNCounter) Clone() *PNCounter {
	return &PNCounter{
		positive: c.positive.Clone(),
		negative: c.negative.Clone(),
	}
}

// Equal reports whether c and other have identical positive and negative
// G-Counter state.
func (c *PNCounter) Equal(other *PNCounter) bool {
	return c.positive.Equal(other.positive) && c.negative.Equal(other.negative)
}

// Value returns the current sum, boxed as any, satisfying the CRDT
// interface.
func (c *PNCounter) Value() any {
	return c.Sum()
}

// MergeAny satisfies the CRDT interface for heterogeneous/dynamic usage.
func (c *PNCounter) MergeAny(other CRDT) error {
	o, ok := other.(*PNCounter)
	if !ok {
		return &MergeTypeMismatchError{Want: "*PNCounter", Got: other}
	}
	c.Merge(o)
	return nil
}

func (c *PNCounter) stateCRDT() {}

type pnCounterSnapshot struct {
	Positive *GrowOnlyCounter `json:"positive"`
	Negative *GrowOnlyCounter `json:"negative"`
}

// MarshalJSON renders both underlying G-Counters.
func (c *PNCounter) MarshalJSON() ([]byte, error) {
	return json.Marshal(pnCounterSnapshot{Positive: c.positive, Negative: c.negative})
}

// UnmarshalJSON restores a PNCounter from a MarshalJSON snapshot.
func (c *PNCounter) UnmarshalJSON(data []byte) error {
	snap := pnCounterSnapshot{Positive: NewGrowOnlyCounter(), Negative: NewGrowOnlyCounter()}
	if err := json.Unmarshal(data, &snap); err != nil {
		return &DeserializationError{Type: "PNCounter", Cause: err}
	}
	c.positive = snap.Positive
	c.negative = snap.Negative
	return nil
}

var (
	_ CRDT                 = (*PNCounter)(nil)
	_ StateCRDT            = (*PNCounter)(nil)
	_ Lattice[*PNCounter]  = (*PNCounter)(nil)
)
