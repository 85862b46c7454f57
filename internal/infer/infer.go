// Package infer implements call-site type-argument inference (§4.5):
// candidate collection over a (source, target) pair with polarity and
// priority tracking, per-parameter resolution, and Best Common Type for
// contextless positions like array literals. It is deliberately a
// standalone structural walk rather than a thin wrapper over
// internal/subtype's own infer-candidate collector (used only internally
// by internal/eval to bind a conditional's `infer` targets): this package
// additionally tracks priority and contravariance, needed for general
// call-site overload resolution (§4.7) but not for a conditional branch
// decision.
package infer

import "github.com/mohsen1/tsz-sub014/internal/types"

// Priority ranks a candidate set; a higher value wins over a lower one for
// the same parameter (§4.5.2). Declared lowest first, so each later
// constant outranks the ones above it.
type Priority uint8

const (
	PriorityDefault Priority = iota
	PrioritySpeculative
	PriorityContravariantConditional
	PriorityPartialHomomorphic
	PriorityHomomorphicMapped
	PriorityNakedInUnion
	PriorityMappedTypeConstraint
	PriorityReturnType
	PriorityLiteralKeyof
)

// Polarity records which side of the inference a candidate was observed
// at: covariant positions contribute to a union, contravariant positions
// to an intersection (§4.5.1, §4.5.3).
type Polarity uint8

const (
	Covariant Polarity = iota
	Contravariant
)

// Candidate is one observed binding for an inferred type parameter.
type Candidate struct {
	Type     types.TypeID
	Polarity Polarity
	Priority Priority
}

// Assignability is the narrow collaborator this package needs from
// internal/subtype: constraint enforcement (§4.5.3 step 4) and Best
// Common Type's "every other candidate <: T" search (§4.5.4).
type Assignability interface {
	IsAssignable(sub, sup types.TypeID) bool
}

// Inferrer is a per-call-site collector; construct one per call/array
// literal/etc. being inferred, not once per session (unlike Evaluator and
// subtype.Engine it carries no session-wide cache).
type Inferrer struct {
	in     *types.Interner
	assign Assignability
}

// New constructs an Inferrer bound to an interner and the assignability
// collaborator used for constraint checks and Best Common Type.
func New(in *types.Interner, assign Assignability) *Inferrer {
	return &Inferrer{in: in, assign: assign}
}
