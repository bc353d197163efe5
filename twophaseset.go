package gocrdt

import "encoding/json"

// TwoPhaseSet is a state-based Two-Phase Set CRDT (2P-Set): a pair of
// G-Sets, "added" and "removed". Membership is added ∧ ¬removed. Once an
// element is removed, it can never be re-added — that permanence is what
// makes merge well-defined without needing per-element causal tags. Use
// ORSet instead when re-adding after a remove must be supported.
type TwoPhaseSet[T comparable] struct {
	added   *GrowOnlySet[T]
	removed *GrowOnlySet[T]
}

// NewTwoPhaseSet creates an empty 2P-Set.
func NewTwoPhaseSet[T comparable]() *TwoPhaseSet[T] {
	return &TwoPhaseSet[T]{
		added:   NewGrowOnlySet[T](),
		removed: NewGrowOnlySet[T](),
	}
}

// Add inserts e, succeeding only if e has never been removed on this
// replica. This local guard is advisory: after merging in a peer that
// removed e, e becomes absent again regardless of this replica's local
// add.
func (s *TwoPhaseSet[T]) Add(e T) bool {
	if s.removed.Contains(e) {
		return false
	}
	return s.added.Add(e)
}

// Remove deletes e, succeeding only if e is currently added. Once removed,
// e is tombstoned forever (see the TwoPhaseSet type doc).
func (s *TwoPhaseSet[T]) Remove(e T) bool {
	if !s.added.Contains(e) {
		return false
	}
	return s.removed.Add(e)
}

// Contains reports whether e is currently a member: added and not removed.
func (s *TwoPhaseSet[T]) Contains(e T) bool {
	return s.added.Contains(e) && !s.removed.Contains(e)
}

// Merge combines other into s via component-wise G-Set merge.
func (s *TwoPhaseSet[T]) Merge(other *TwoPhaseSet[T]) {
	s.added.Merge(other.added)
	s.removed.Merge(other.removed)
}

// Clone returns a deep, independent copy.
func (s *TwoPhaseSet[T]) Clone() *TwoPhaseSet[T] {
	return &TwoPhaseSet[T]{added: s.added.Clone(), removed: s.removed.Clone()}
}

// Equal reports whether s and other have identical added and removed
// G-Sets.
func (s *TwoPhaseSet[T]) Equal(other *TwoPhaseSet[T]) bool {
	return s.added.Equal(other.added) && s.removed.Equal(other.removed)
}

// Elements returns the currently-visible members (added minus removed), in
// no particular order.
func (s *TwoPhaseSet[T]) Elements() []T {
	out := make([]T, 0, s.added.Len())
	for _, e := range s.added.Elements() {
		if !s.removed.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

// Value returns the currently-visible members, boxed as any, satisfying
// the CRDT interface.
func (s *TwoPhaseSet[T]) Value() any {
	return s.Elements()
}

// MergeAny satisfies the CRDT interface for heterogeneous/dynamic usage.
func (s *TwoPhaseSet[T]) MergeAny(other CRDT) error {
	o, ok := other.(*TwoPhaseSet[T])
	if !ok {
		return &MergeTypeMismatchError{Want: "*TwoPhaseSet", Got: other}
	}
	s.Merge(o)
	return nil
}

func (s *TwoPhaseSet[T]) stateCRDT() {}

type twoPhaseSetSnapshot[T comparable] struct {
	Added   *GrowOnlySet[T] `json:"added"`
	Removed *GrowOnlySet[T] `json:"removed"`
}

// MarshalJSON renders both underlying G-Sets, so round-tripping preserves
// tombstone state exactly.
func (s *TwoPhaseSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(twoPhaseSetSnapshot[T]{Added: s.added, Removed: s.removed})
}

// UnmarshalJSON restores a 2P-Set from a MarshalJSON snapshot.
func (s *TwoPhaseSet[T]) UnmarshalJSON(data []byte) error {
	snap := twoPhaseSetSnapshot[T]{Added: NewGrowOnlySet[T](), Removed: NewGrowOnlySet[T]()}
	if err := json.Unmarshal(data, &snap); err != nil {
		return &DeserializationError{Type: "TwoPhaseSet", Cause: err}
	}
	s.added = snap.Added
	s.removed = snap.Removed
	return nil
}

var (
	_ StateCRDT                        = (*TwoPhaseSet[string])(nil)
	_ Lattice[*TwoPhaseSet[string]]    = (*TwoPhaseSet[string])(nil)
)
