package narrow

import "github.com/mohsen1/tsz-sub014/internal/types"

// Literal narrows t against `x === literal` / `x !== literal`, the
// discriminant-narrowing guard essential for tagged unions (§4.6). A union
// member identical to literalType is an exact match; a member that is a
// strictly wider primitive (e.g. plain `string` against `"a"`) is kept
// as-is on the false branch (nothing was ruled out) and narrowed to
// literalType on the true branch.
func (e *Engine) Literal(t, literalType types.TypeID, negate bool) types.TypeID {
	return e.mapUnion(t, func(m types.TypeID) (types.TypeID, bool) {
		if m == literalType {
			return m, !negate // true branch keeps the exact match; false branch rules it out
		}
		if e.widensTo(literalType, m) {
			if negate {
				return m, true // could still be any other value of the wider type
			}
			return literalType, true
		}
		return m, negate
	})
}

// widensTo reports whether narrow is a literal type whose Widen result is
// wide (e.g. narrow is a string literal and wide is `string`).
func (e *Engine) widensTo(narrow, wide types.TypeID) bool {
	return e.in.Widen(narrow) == wide && narrow != wide
}

// DiscriminantProperty narrows a union of object types against
// `x.tag === literal`, keeping members whose tag property's type is
// (or widens to) literalType (§4.6).
func (e *Engine) DiscriminantProperty(t types.TypeID, propName types.StringID, literalType types.TypeID, negate bool) types.TypeID {
	return e.filterUnion(t, func(m types.TypeID) bool {
		obj, ok := e.in.Object(m)
		if !ok {
			return true // not an object member, nothing to discriminate on
		}
		prop, ok := e.findProperty(obj, propName)
		if !ok {
			return true
		}
		matches := prop == literalType || e.widensTo(literalType, prop)
		if negate {
			return !matches
		}
		return matches
	})
}

func (e *Engine) findProperty(o types.ObjectInfo, name types.StringID) (types.TypeID, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p.Type, true
		}
	}
	return types.NoTypeID, false
}

// In narrows a union against `"prop" in x`: keeping members that declare
// the property (or carry a matching index signature) on the true branch,
// and members that do not on the false branch (§4.6).
func (e *Engine) In(t types.TypeID, propName types.StringID, negate bool) types.TypeID {
	return e.filterUnion(t, func(m types.TypeID) bool {
		obj, ok := e.in.Object(m)
		if !ok {
			return true
		}
		_, has := e.findProperty(obj, propName)
		if !has {
			has = len(obj.IndexSignatures) > 0
		}
		if negate {
			return !has
		}
		return has
	})
}
