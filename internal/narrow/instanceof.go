package narrow

import "github.com/mohsen1/tsz-sub014/internal/types"

// Assignable is the narrow collaborator shared by Instanceof and Predicate:
// both need to test whether a candidate member belongs to a target shape,
// which is exactly subtype.Engine's permissive assignability query.
type Assignable interface {
	IsAssignable(sub, sup types.TypeID) bool
}

// Instanceof narrows t against an `x instanceof C` guard, where
// instanceType is C's instance type (or a union of instance types, for
// `x instanceof (A | B)` arising from a variable holding a constructor
// union). The true branch keeps members assignable to instanceType; the
// false branch drops them (§4.6).
func Instanceof(e *Engine, assign Assignable, t, instanceType types.TypeID, negate bool) types.TypeID {
	return e.mapUnion(t, func(m types.TypeID) (types.TypeID, bool) {
		narrower := assign.IsAssignable(m, instanceType)
		wider := !narrower && assign.IsAssignable(instanceType, m)
		if negate {
			return m, !narrower
		}
		if wider {
			return instanceType, true // replace the wider member with the more specific instance type
		}
		return m, narrower
	})
}

// Predicate narrows t against a user-defined type guard (`x is T`) or
// assertion function result, using the same keep/drop mechanism as
// Instanceof: the predicate's asserted type plays the role of the
// constructor's instance type (§4.6).
func Predicate(e *Engine, assign Assignable, t, assertedType types.TypeID, negate bool) types.TypeID {
	return Instanceof(e, assign, t, assertedType, negate)
}
