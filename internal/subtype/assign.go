package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// IsAssignable is the `is_assignable(sub, sup)` public query (§4.4).
func (e *Engine) IsAssignable(sub, sup types.TypeID, at source.Span) bool {
	return e.relate(RelAssignable, sub, sup, at)
}

// IsSubtype is the `is_subtype(sub, sup)` public query: a stricter
// relation than assignability (no excess-property or weak-type escape
// hatches beyond what §4.4.2's structural rules themselves already share).
func (e *Engine) IsSubtype(sub, sup types.TypeID, at source.Span) bool {
	return e.relate(RelSubtype, sub, sup, at)
}

// IsComparable is the `is_comparable(a, b)` public query, used for e.g.
// `switch`/`===` operand checks (§4.8 TS2365/2362/2363): true if either
// direction is assignable.
func (e *Engine) IsComparable(a, b types.TypeID, at source.Span) bool {
	return e.relate(RelAssignable, a, b, at) || e.relate(RelAssignable, b, a, at)
}

// IsIdentical is the `is_identical(a, b)` public query: structurally equal
// modulo freshness (both directions under the Identical relation).
func (e *Engine) IsIdentical(a, b types.TypeID, at source.Span) bool {
	return e.relate(RelIdentical, a, b, at)
}

// IsAssignableRestrictive implements the eval.Assignability collaborator
// method: checks T <: U with free type parameters erased to their
// constraint (the lower-bound test used to decide a conditional's branch
// when the check type is not fully resolved, §4.3.1 rule 3).
func (e *Engine) IsAssignableRestrictive(sub, sup types.TypeID) bool {
	return e.relate(RelAssignable, e.eraseToConstraint(sub), sup, source.Span{})
}

// IsAssignablePermissive widens free type parameters to `unknown`'s
// opposite number, `any`, before testing — the upper-bound test.
func (e *Engine) IsAssignablePermissive(sub, sup types.TypeID) bool {
	return e.relate(RelAssignable, e.widenToAny(sub), sup, source.Span{})
}

// eraseToConstraint substitutes a bare type parameter with its declared
// constraint (or `unknown` when absent); used by the restrictive
// instantiation test.
func (e *Engine) eraseToConstraint(id types.TypeID) types.TypeID {
	if _, ok := e.in.TypeParam(id); ok {
		return e.in.EffectiveConstraint(id)
	}
	return id
}

// widenToAny substitutes a bare type parameter with `any`; used by the
// permissive instantiation test.
func (e *Engine) widenToAny(id types.TypeID) types.TypeID {
	if _, ok := e.in.TypeParam(id); ok {
		return e.in.Builtins().Any
	}
	return id
}
