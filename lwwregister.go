package gocrdt

import (
	"encoding/json"
	"sync"
)

// LWWRegister is a Last-Writer-Wins Register CRDT: a single cell holding
// the value written with the highest HybridTimestamp. Distinct replicas
// never tie on timestamp (ReplicaId is always part of the comparison), so
// merge is fully deterministic.
type LWWRegister[T comparable] struct {
	mu        sync.RWMutex
	value     T
	hasValue  bool
	timestamp HybridTimestamp
	clock     *Clock
}

// NewLWWRegister creates an empty register for replica, using source as
// its HybridTimestamp's physical clock.
func NewLWWRegister[T comparable](replica ReplicaId, source TimeSource) *LWWRegister[T] {
	return &LWWRegister[T]{clock: NewClock(replica, source)}
}

// Set stores value, stamped with a freshly-issued HybridTimestamp from
// this register's clock. Because Clock.Tick always produces a strictly
// increasing timestamp, a later Set on the same replica always wins over
// an earlier one.
func (r *LWWRegister[T]) Set(value T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = value
	r.hasValue = true
	r.timestamp = r.clock.Tick()
}

// Get returns the current value and whether the register has ever been
// set.
func (r *LWWRegister[T]) Get() (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value, r.hasValue
}

// Timestamp returns the HybridTimestamp of the current value.
func (r *LWWRegister[T]) Timestamp() HybridTimestamp {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.timestamp
}

// Merge adopts other's value and timestamp if other.Timestamp() is
// strictly greater than r's current timestamp. The register's own clock
// observes the incoming timestamp either way, so a subsequent local Set
// still produces a timestamp that exceeds anything seen so far.
func (r *LWWRegister[T]) Merge(other *LWWRegister[T]) {
	otherValue, otherHas := other.Get()
	otherTS := other.Timestamp()

	r.mu.Lock()
	defer r.mu.Unlock()

	if otherHas && otherTS.Compare(r.timestamp) > 0 {
		r.value = otherValue
		r.hasValue = true
		r.timestamp = otherTS
	}
	if !otherTS.IsZero() {
		r.clock.Observe(otherTS)
	}
}

// Clone returns a deep, independent copy. The clone gets its own Clock
// seeded at the same cursor, so its subsequent Ticks remain consistent
// with what this register has already observed.
func (r *LWWRegister[T]) Clone() *LWWRegister[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := &LWWRegister[T]{
		value:     r.value,
		hasValue:  r.hasValue,
		timestamp: r.timestamp,
		clock:     NewClock(r.clock.replica, r.clock.source),
	}
	clone.clock.Observe(r.clock.last)
	return clone
}

// Equal reports whether r and other hold the same value and timestamp.
// The underlying Clock's cursor is bookkeeping, not observable state, and
// is excluded from comparison.
func (r *LWWRegister[T]) Equal(other *LWWRegister[T]) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	other.mu.RLock()
	defer other.mu.RUnlock()

	if r.hasValue != other.hasValue {
		return false
	}
	if r.timestamp != other.timestamp {
		return false
	}
	if !r.hasValue {
		return true
	}
	return r.value == other.value
}

// Value returns the current value, boxed as any, satisfying the CRDT
// interface. Returns nil if the register has never been set.
func (r *LWWRegister[T]) Value() any {
	v, ok := r.Get()
	if !ok {
		return nil
	}
	return v
}

// MergeAny satisfies the CRDT interface for heterogeneous/dynamic usage.
func (r *LWWRegister[T]) MergeAny(other CRDT) error {
	o, ok := other.(*LWWRegister[T])
	if !ok {
		return &MergeTypeMismatchError{Want: "*LWWRegister", Got: other}
	}
	r.Merge(o)
	return nil
}

func (r *LWWRegister[T]) stateCRDT() {}

type lwwRegisterSnapshot[T comparable] struct {
	Value     T               `json:"value,omitempty"`
	HasValue  bool            `json:"has_value"`
	Timestamp HybridTimestamp `json:"timestamp"`
}

// MarshalJSON renders the value, presence flag, and timestamp. The
// register's clock cursor is bookkeeping and is not serialized; a
// deserialized register's clock starts fresh, observing the restored
// timestamp so future Ticks remain causally consistent.
func (r *LWWRegister[T]) MarshalJSON() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return json.Marshal(lwwRegisterSnapshot[T]{Value: r.value, HasValue: r.hasValue, Timestamp: r.timestamp})
}

// UnmarshalJSON restores a register from a MarshalJSON snapshot.
func (r *LWWRegister[T]) UnmarshalJSON(data []byte) error {
	var snap lwwRegisterSnapshot[T]
	if err := json.Unmarshal(data, &snap); err != nil {
		return &DeserializationError{Type: "LWWRegister", Cause: err}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = snap.Value
	r.hasValue = snap.HasValue
	r.timestamp = snap.Timestamp
	r.clock = NewClock(snap.Timestamp.Replica, SystemTimeSource{})
	r.clock.Observe(snap.Timestamp)
	return nil
}

var (
	_ StateCRDT                    = (*LWWRegister[string])(nil)
	_ Lattice[*LWWRegister[string]] = (*LWWRegister[string])(nil)
)
