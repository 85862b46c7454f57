package types

// IsObjectLike reports whether a type has a structural member surface that
// property lookup can walk directly (object, array, tuple, function,
// enum) as opposed to needing apparent-type boxing first (rule P, §4.4.3).
func (in *Interner) IsObjectLike(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindObject, KindArray, KindTuple, KindFunction, KindEnum:
		return true
	default:
		return false
	}
}

// IsPrimitive reports whether id is one of the built-in primitive kinds
// (not counting literal types, which widen to a primitive but are their
// own kind).
func (in *Interner) IsPrimitive(id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	switch tt.Kind {
	case KindString, KindNumber, KindBoolean, KindBigInt, KindSymbol:
		return true
	default:
		return false
	}
}

// IsUnitLike reports whether id can never have a useful runtime value
// observed through it: never, or (by convention of this solver) an empty
// union.
func (in *Interner) IsUnitLike(id TypeID) bool {
	return id == in.builtins.Never
}

// UnionMembers returns a type's union members, or the single-element slice
// []TypeID{id} if it is not a union — a convenience for call sites that
// want to treat every type uniformly as "a set of one or more members"
// (used pervasively by the Evaluator's distributive rules, §4.3.1).
func (in *Interner) UnionMembers(id TypeID) []TypeID {
	if u, ok := in.Union(id); ok {
		return u.Members
	}
	return []TypeID{id}
}
