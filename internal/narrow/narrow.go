// Package narrow implements control-flow narrowing (§4.6): transforming an
// identifier's declared type at a program point given the guards true on
// every path reaching it. The engine itself is a set of pure type-level
// filters (Typeof, Instanceof, Literal, In, Truthy, Predicate) that each
// take a type and a guard and return the narrowed type for the true and
// false branches; State layers CFG-order bookkeeping and the closure-reset
// rule (rule 42) on top, grounded on the teacher's per-binding lazy-map
// idiom (internal/sema/move_tracking.go's movedBindings).
package narrow

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// Reducer is the narrow collaborator this package needs from internal/eval:
// resolving an IndexedAccess type before inspecting its shape, needed for
// the `T[K]` special case under `typeof x !== "function"` (§4.6).
type Reducer interface {
	Reduce(id types.TypeID, at source.Span) types.TypeID
}

// TypeofTag is one of the string results `typeof` can produce.
type TypeofTag string

const (
	TagString    TypeofTag = "string"
	TagNumber    TypeofTag = "number"
	TagBoolean   TypeofTag = "boolean"
	TagBigInt    TypeofTag = "bigint"
	TagSymbol    TypeofTag = "symbol"
	TagObject    TypeofTag = "object"
	TagFunction  TypeofTag = "function"
	TagUndefined TypeofTag = "undefined"
)

// Engine narrows types given guards; it is stateless across calls (unlike
// State, which tracks narrowings along a CFG) and safe to share.
type Engine struct {
	in     *types.Interner
	strs   *source.Interner
	reduce Reducer
}

// New constructs an Engine bound to an interner, the string table backing
// literal text, and the reducer used to resolve unresolved indexed-access
// types before classifying them.
func New(in *types.Interner, strs *source.Interner, reduce Reducer) *Engine {
	return &Engine{in: in, strs: strs, reduce: reduce}
}

// filterUnion keeps the union members (or the type itself, if not a union)
// for which keep returns true, collapsing to `never` if nothing survives.
func (e *Engine) filterUnion(t types.TypeID, keep func(types.TypeID) bool) types.TypeID {
	return e.mapUnion(t, func(m types.TypeID) (types.TypeID, bool) {
		return m, keep(m)
	})
}

// mapUnion applies transform to every union member (or to t itself, if not
// a union), dropping members transform rejects and substituting the
// returned type for members it narrows to something more specific.
// Collapses to `never` if nothing survives.
func (e *Engine) mapUnion(t types.TypeID, transform func(types.TypeID) (types.TypeID, bool)) types.TypeID {
	if u, ok := e.in.Union(t); ok {
		var kept []types.TypeID
		for _, m := range u.Members {
			if narrowed, ok := transform(m); ok {
				kept = append(kept, narrowed)
			}
		}
		if len(kept) == 0 {
			return e.in.Builtins().Never
		}
		return e.in.InternUnion(kept)
	}
	if narrowed, ok := transform(t); ok {
		return narrowed
	}
	return e.in.Builtins().Never
}
