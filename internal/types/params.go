package types

// TypeParamInfo backs KindTypeParameter. Two type parameters are the same
// TypeID only if they are the literal same declaration — identity here is
// intentionally nominal-by-slot (every declared `<T>` gets its own fresh
// slot via InternFreshTypeParameter) since structural name-based collapsing
// would conflate unrelated generics that both happen to be named `T`.
type TypeParamInfo struct {
	Name       StringID
	Constraint TypeID // NoTypeID when unconstrained (apparent constraint is `unknown`)
	Default    TypeID // NoTypeID when absent
	// InferSite marks a type parameter introduced by `infer N` inside a
	// conditional's extends clause rather than by a declared generic.
	InferSite bool
}

// TypeParam returns the TypeParamInfo backing a KindTypeParameter type.
func (in *Interner) TypeParam(id TypeID) (TypeParamInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTypeParameter {
		return TypeParamInfo{}, false
	}
	return in.typeParams[tt.Payload], true
}

// InternFreshTypeParameter always allocates a new TypeID for info, even if
// an identical-looking declaration already exists — every `<T>` in source
// is a distinct binder.
func (in *Interner) InternFreshTypeParameter(info TypeParamInfo) TypeID {
	slot := safeconv(len(in.typeParams))
	in.typeParams = append(in.typeParams, info)
	return in.append(Type{Kind: KindTypeParameter, Payload: slot})
}

// EffectiveConstraint returns the type parameter's constraint, or
// `unknown` when none was declared (§4.4.2's apparent-constraint rule).
func (in *Interner) EffectiveConstraint(id TypeID) TypeID {
	p, ok := in.TypeParam(id)
	if !ok || p.Constraint == NoTypeID {
		return in.builtins.Unknown
	}
	return p.Constraint
}
