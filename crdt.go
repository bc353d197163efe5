// Package gocrdt provides a suite of Conflict-free Replicated Data Types (CRDTs).
//
// CRDTs are distributed data structures that guarantee convergence: if multiple
// replicas receive the same set of updates, they will eventually reach the
// same state regardless of the order in which updates were processed, how many
// times an update was delivered, or how updates interleave across replicas.
//
// This package implements State-based CRDTs (CvRDTs): GrowOnlyCounter,
// PNCounter, GrowOnlySet, TwoPhaseSet, LWWRegister, ORSet, and RGA. Every
// concrete type is a pure, in-memory value: no network I/O, no persistence,
// no background goroutines. Causal ordering is tracked with HybridTimestamp,
// and replicas are identified with ReplicaId. A sibling package,
// "compression", provides pluggable codecs for whoever stores or ships the
// serialized state — it is not itself a CRDT concern.
package gocrdt

// CRDT is the base capability shared by all convergent data types in this
// package.
//
// Implementing types must ensure that their internal state can be merged
// commutatively, associatively, and idempotently to satisfy the mathematical
// properties of a join-semilattice.
type CRDT interface {
	// Value returns the current consolidated state of the CRDT.
	//
	// For counters, this typically returns a numeric type. For sequences
	// like RGA, this returns the linearized view of the data. Because this
	// returns 'any', callers may need a type assertion to use the result.
	Value() any

	// MergeAny combines the state of a remote CRDT into the local instance.
	//
	// To guarantee convergence across all distributed replicas, the
	// implementation of MergeAny MUST be:
	//
	// 1. Commutative: the order of merging doesn't matter.
	//    A.MergeAny(B) results in the same state as B.MergeAny(A).
	//
	// 2. Associative: the grouping of merges doesn't matter.
	//    (A.MergeAny(B)).MergeAny(C) == A.MergeAny(B.MergeAny(C)).
	//
	// 3. Idempotent: merging the same state multiple times has no effect
	//    beyond the first merge. A.MergeAny(A) == A.
	//
	// MergeAny performs a type assertion on other and returns an error if
	// the concrete types are incompatible (e.g. merging a GrowOnlyCounter
	// into an RGA). Callers who already hold two values of the same
	// concrete type should prefer that type's own typed Merge method,
	// which is cheaper and cannot fail.
	MergeAny(other CRDT) error
}

// StateCRDT is a marker narrowing of CRDT to state-based (convergent)
// semantics, as opposed to operation-based CRDTs that require reliable
// causal broadcast of individual operations. Every concrete type in this
// package is a StateCRDT; the marker exists so that callers can express
// "any state-based CRDT" as a constraint distinct from a hypothetical future
// op-based variant.
type StateCRDT interface {
	CRDT

	// stateCRDT is unexported: only types in this package can implement
	// StateCRDT, which keeps the marker meaningful.
	stateCRDT()
}
