package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// shortCircuit applies A1-A7 in order (§4.4.1); done is false when none
// fired and structural recursion should take over.
func (e *Engine) shortCircuit(rel Relation, sub, sup types.TypeID, at source.Span) (result bool, done bool) {
	b := e.in.Builtins()

	if sub == sup { // A1
		return true, true
	}
	if sub == b.Any || sup == b.Any { // A2
		return true, true
	}
	if sub == b.Invalid || sup == b.Invalid { // A3 (ERROR)
		return true, true
	}
	if sub == b.Never { // A4
		return true, true
	}
	if sup == b.Unknown { // A5
		return true, true
	}
	if rel == RelAssignable && !e.cfg.StrictNullChecks && sup != b.Never { // A6
		if sub == b.Null || sub == b.Undefined {
			return true, true
		}
	}
	if e.satisfiesEmptyObjectOrFunctionShape(sup) && e.hasApparentShape(sub) { // A7
		return true, true
	}

	return false, false
}

// satisfiesEmptyObjectOrFunctionShape reports whether sup is one of the
// three intrinsics A7 treats as "anything with an apparent shape matches":
// the global `Object` type, `{}`, or the global `Function` type.
func (e *Engine) satisfiesEmptyObjectOrFunctionShape(sup types.TypeID) bool {
	if o, ok := e.in.Object(sup); ok {
		return len(o.Properties) == 0 && len(o.IndexSignatures) == 0 &&
			len(o.CallSignatures) == 0 && len(o.ConstructSignatures) == 0
	}
	if _, ok := e.in.Fn(sup); ok {
		return true // the bare `Function` signature stand-in
	}
	return false
}

// hasApparentShape reports whether sub has *some* object-like apparent
// form: an object literal, a primitive with a registered wrapper (rule P),
// or a function (functions are themselves objects in TS's type system).
func (e *Engine) hasApparentShape(sub types.TypeID) bool {
	if sub == e.in.Builtins().Null || sub == e.in.Builtins().Undefined || sub == e.in.Builtins().Void {
		return false
	}
	if _, ok := e.in.Object(sub); ok {
		return true
	}
	if _, ok := e.in.Fn(sub); ok {
		return true
	}
	if _, ok := e.apparentObject(sub); ok {
		return true
	}
	return e.in.IsPrimitive(sub)
}
