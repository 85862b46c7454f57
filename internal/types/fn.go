package types

// ParamInfo describes one parameter of a function type.
type ParamInfo struct {
	Name     StringID
	Type     TypeID
	Optional bool
	Rest     bool // `...args: T[]`
}

// FnInfo backs KindFunction: a call signature with its own type-parameter
// scope (for generic functions/methods), an optional `this` parameter type,
// and a return type.
type FnInfo struct {
	TypeParams []TypeID // KindTypeParameter TypeIDs, this signature's own generics
	ThisParam  TypeID   // NoTypeID when absent
	Params     []ParamInfo
	Return     TypeID
}

// Fn returns the FnInfo backing a KindFunction type.
func (in *Interner) Fn(id TypeID) (FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFunction {
		return FnInfo{}, false
	}
	return in.fns[tt.Payload], true
}

// InternFn interns a function signature type. Signature shape (types,
// optionality, rest, this-param, return) is all that matters to identity;
// parameter names are descriptive only and are still included in the
// digest so renaming a parameter in a hand-built fixture does not
// accidentally collide two distinct signatures during testing — TS itself
// is structural on names too for destructuring/labeling, so this matches
// observable behavior rather than diverging for convenience.
func (in *Interner) InternFn(info FnInfo) TypeID {
	ids := make([]TypeID, 0, len(info.TypeParams)+len(info.Params)*4+2)
	ids = append(ids, info.TypeParams...)
	ids = append(ids, NoTypeID)
	ids = append(ids, info.ThisParam)
	for _, p := range info.Params {
		ids = append(ids, TypeID(p.Name), p.Type, TypeID(boolBit(p.Optional)), TypeID(boolBit(p.Rest)))
	}
	ids = append(ids, NoTypeID, info.Return)
	key := idsDigest('f', ids)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.fns))
		in.fns = append(in.fns, info)
		return Type{Kind: KindFunction, Payload: slot}
	})
}
