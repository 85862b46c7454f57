package subtype

import "github.com/mohsen1/tsz-sub014/internal/types"

// enumSubtype implements §4.4.2 Enums: cross-enum comparison is always
// rejected, even numeric-to-numeric (rule N's nominal brand applies to
// every enum, not just ones with private members).
func (e *Engine) enumSubtype(sub, sup types.EnumInfo) bool {
	return sameEnumDeclaration(sub, sup)
}

func sameEnumDeclaration(a, b types.EnumInfo) bool {
	if a.Name != b.Name || len(a.Members) != len(b.Members) || a.IsConst != b.IsConst {
		return false
	}
	for i := range a.Members {
		if a.Members[i].Name != b.Members[i].Name {
			return false
		}
	}
	return true
}

// enumToPrimitive implements rule E's numeric-enum-to-number openness: a
// numeric (non-const, Open) enum widens to `number`; string enums are
// opaque and never widen to `string`.
func (e *Engine) enumToPrimitive(sub types.EnumInfo, sup types.TypeID) bool {
	return sub.Open && sup == e.in.Builtins().Number
}

// primitiveToEnum implements the reverse half of rule E: a bare `number`
// literal/primitive is accepted into an open numeric enum; string literals
// are never accepted into a string enum (opaque).
func (e *Engine) primitiveToEnum(sub types.TypeID, sup types.EnumInfo) bool {
	if !sup.Open {
		return false
	}
	if sub == e.in.Builtins().Number {
		return true
	}
	if lit, ok := e.in.Literal(sub); ok {
		return lit.Base == types.KindNumber
	}
	return false
}
