// Package eval implements the evaluator (§4.3): reduction of Conditional,
// Mapped, IndexedAccess, KeyOf, TemplateLiteral and StringMapping types
// toward object/union/intrinsic form. It is mutually recursive with
// internal/subtype and internal/infer through the shared interner; to
// avoid an import cycle, it depends on those packages only through the
// narrow interfaces below, wired by the caller (internal/checkexpr).
package eval

import (
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// Assignability is the subset of internal/subtype's engine the evaluator
// needs: the restrictive/permissive instantiation tests that decide a
// conditional type's branch (§4.3.1 rule 3), and candidate collection for
// `infer` type parameters encountered while checking `T <: U`.
type Assignability interface {
	// IsAssignableRestrictive checks T <: U with type-parameter constraints
	// erased (the lower bound of what T could be).
	IsAssignableRestrictive(sub, sup types.TypeID) bool
	// IsAssignablePermissive checks T <: U with type parameters widened to
	// `any` (the upper bound of what T could be).
	IsAssignablePermissive(sub, sup types.TypeID) bool
	// CollectInferCandidates walks sub against sup in lockstep, recording
	// candidates for any `infer` type parameter introduced by this
	// conditional's extends clause, and returns the resolved bindings.
	CollectInferCandidates(sub, sup types.TypeID, inferParams []types.TypeID) map[types.TypeID]types.TypeID
}

// Config mirrors the resource limits of §4.8/§5, all configurable with the
// spec's defaults.
type Config struct {
	MaxInstantiationDepth    int
	MaxConditionalTail       int
	MaxUnionSize             int
	MaxTemplateExpansion     int
	NoUncheckedIndexedAccess bool
}

// DefaultConfig returns the spec's stated defaults.
func DefaultConfig() Config {
	return Config{
		MaxInstantiationDepth:    100,
		MaxConditionalTail:       1000,
		MaxUnionSize:             100_000,
		MaxTemplateExpansion:     1_000_000,
		NoUncheckedIndexedAccess: false,
	}
}

// Evaluator reduces non-object type forms on demand. It owns the
// per-session instantiation depth counter shared across every evaluation
// entry point (§4.3.6).
type Evaluator struct {
	in       *types.Interner
	strs     *source.Interner
	assign   Assignability
	cfg      Config
	reporter diag.Reporter

	depth    int
	wrappers map[types.TypeID]types.TypeID
}

// New constructs an Evaluator bound to an interner, a reporter for TS2589,
// and the assignability collaborator used to decide conditional branches.
// assign may be nil at construction time and supplied later via
// SetAssignability — needed because internal/checkexpr constructs the
// evaluator and the subtype engine in a cycle, each needing the other as
// its collaborator (see that package's wiring).
func New(in *types.Interner, strs *source.Interner, assign Assignability, reporter diag.Reporter, cfg Config) *Evaluator {
	return &Evaluator{in: in, strs: strs, assign: assign, reporter: reporter, cfg: cfg}
}

// SetAssignability supplies the assignability collaborator once it exists,
// for callers that must construct the Evaluator before the subtype engine
// it depends on (and vice versa).
func (e *Evaluator) SetAssignability(assign Assignability) {
	e.assign = assign
}

// enter increments the shared depth counter, reporting TS2589 and
// returning false at the limit. Every public Eval* entry point must call
// enter/leave around its body (§4.3.6).
func (e *Evaluator) enter(at source.Span) bool {
	e.depth++
	if e.depth > e.cfg.MaxInstantiationDepth {
		if e.reporter != nil {
			diag.ReportError(e.reporter, diag.TS2589, at, diag.TS2589.Title()).Emit()
		}
		return false
	}
	return true
}

func (e *Evaluator) leave() {
	e.depth--
}

// errorType is what evaluators return once the depth guard trips; callers
// treat it as ERROR per §4.3.6 and do not chain further diagnostics off it.
func (e *Evaluator) errorType() types.TypeID {
	return e.in.Builtins().Invalid
}
