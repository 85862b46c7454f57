// Package subtype implements the assignability/subtype engine (§4.4): a
// short-circuit "Lawyer" layer followed by a structural "Judge" layer, with
// coinductive cycle handling and a calibrated bank of TypeScript's
// documented unsoundness carve-outs. It is mutually recursive with
// internal/eval through the interner; to avoid an import cycle it calls
// back into the evaluator only through the narrow Reducer interface below,
// wired by the caller (internal/checkexpr).
package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// Relation names one of the four public queries; short-circuits and
// structural rules both branch on it (e.g. A6 only fires for Assignable).
type Relation uint8

const (
	RelAssignable Relation = iota
	RelSubtype
	RelComparable
	RelIdentical
)

// Reducer is the subset of internal/eval's surface the engine needs: any
// operand that is still Conditional/Mapped/IndexedAccess/KeyOf/
// TemplateLiteral/StringMapping must be reduced toward object/union/
// intrinsic form before structural comparison can proceed.
type Reducer interface {
	Reduce(id types.TypeID, at source.Span) types.TypeID
}

// Config mirrors the SolverConfig rule banks relevant to assignability
// (§4.4.3, §6.3); a driver populates this 1:1 from TSC-style options.
type Config struct {
	StrictNullChecks         bool
	StrictFunctionTypes      bool
	ExactOptionalPropertyTypes bool
	NoUncheckedIndexedAccess bool
	MaxRelationDepth         int
}

// DefaultConfig mirrors TSC's non-strict defaults except for the resource
// limit, which the spec fixes regardless of strictness.
func DefaultConfig() Config {
	return Config{
		StrictNullChecks:           false,
		StrictFunctionTypes:        false,
		ExactOptionalPropertyTypes: false,
		NoUncheckedIndexedAccess:   false,
		MaxRelationDepth:           200,
	}
}

type relationKey struct {
	rel Relation
	sub types.TypeID
	sup types.TypeID
}

// Engine is a session-scoped, single-threaded relation solver. It owns the
// in-progress set (coinduction for cyclic types, §4.4.4) and the visited
// cache (memoized completed results); neither survives a session recycle.
type Engine struct {
	in       *types.Interner
	reduce   Reducer
	reporter diag.Reporter
	cfg      Config

	depth      int
	inProgress map[relationKey]struct{}
	visited    map[relationKey]bool

	// wrappers backs rule P (§4.4.3): primitive -> its apparent object
	// shape, registered once per session by the caller.
	wrappers map[types.TypeID]types.TypeID
}

// New constructs an Engine bound to an interner and the evaluator
// collaborator used to reduce non-structural type forms mid-comparison.
// reduce may be nil at construction time and supplied later via
// SetReducer — internal/checkexpr constructs this engine and
// internal/eval's Evaluator in a cycle, each needing the other.
func New(in *types.Interner, reduce Reducer, reporter diag.Reporter, cfg Config) *Engine {
	return &Engine{
		in:         in,
		reduce:     reduce,
		reporter:   reporter,
		cfg:        cfg,
		inProgress: make(map[relationKey]struct{}),
		visited:    make(map[relationKey]bool),
	}
}

// SetReducer supplies the reduction collaborator once it exists.
func (e *Engine) SetReducer(reduce Reducer) {
	e.reduce = reduce
}

// RegisterWrapper records the Object type backing a primitive's apparent
// shape, mirroring internal/eval's RegisterWrapper (both packages need it
// independently since neither imports the other).
func (e *Engine) RegisterWrapper(primitive, wrapperObject types.TypeID) {
	if e.wrappers == nil {
		e.wrappers = make(map[types.TypeID]types.TypeID)
	}
	e.wrappers[primitive] = wrapperObject
}

func (e *Engine) apparentObject(id types.TypeID) (types.ObjectInfo, bool) {
	if w, ok := e.wrappers[id]; ok {
		return e.in.Object(w)
	}
	return types.ObjectInfo{}, false
}

// relate is the single recursive entry point every public query and every
// structural rule funnels through. It applies the in-progress/visited
// caches and the depth bound before dispatching to short-circuits and
// structural rules (§4.4.4).
func (e *Engine) relate(rel Relation, sub, sup types.TypeID, at source.Span) bool {
	key := relationKey{rel, sub, sup}
	if result, ok := e.visited[key]; ok {
		return result
	}
	if _, ok := e.inProgress[key]; ok {
		// coinduction: a cyclic type re-entering its own relation is sound
		// by assumption (§4.4.4, §9 "cyclic types").
		return true
	}

	e.depth++
	if e.depth > e.cfg.MaxRelationDepth {
		e.depth--
		if e.reporter != nil {
			diag.ReportError(e.reporter, diag.TS2589, at, diag.TS2589.Title()).Emit()
		}
		return true // ERROR is transparent to subtyping (§7)
	}
	defer func() { e.depth-- }()

	e.inProgress[key] = struct{}{}
	result := e.dispatch(rel, sub, sup, at)
	delete(e.inProgress, key)

	e.visited[key] = result
	return result
}

// dispatch runs the short-circuits (§4.4.1) before falling through to
// structural comparison (§4.4.2).
func (e *Engine) dispatch(rel Relation, sub, sup types.TypeID, at source.Span) bool {
	if shortCircuit, done := e.shortCircuit(rel, sub, sup, at); done {
		return shortCircuit
	}
	sub = e.reduceIfNeeded(sub, at)
	sup = e.reduceIfNeeded(sup, at)
	return e.structural(rel, sub, sup, at)
}

// reduceIfNeeded asks the evaluator to push a Conditional/Mapped/
// IndexedAccess/KeyOf/TemplateLiteral/StringMapping operand toward its
// reduced form; structural rules never see an unreduced compound.
func (e *Engine) reduceIfNeeded(id types.TypeID, at source.Span) types.TypeID {
	if e.reduce == nil {
		return id
	}
	tt, ok := e.in.Lookup(id)
	if !ok {
		return id
	}
	switch tt.Kind {
	case types.KindConditional, types.KindMapped, types.KindIndexedAccess,
		types.KindKeyOf, types.KindTemplateLiteral, types.KindStringMapping:
		return e.reduce.Reduce(id, at)
	default:
		return id
	}
}
