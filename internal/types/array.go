package types

// InternArray interns `T[]`. Array identity needs no side-table payload —
// the element type and the readonly flag fit directly in Type.A/Flags — so
// this goes through the plain simpleIndex path like a primitive.
func (in *Interner) InternArray(elem TypeID, readonly bool) TypeID {
	flags := FlagNone
	if readonly {
		flags = FlagReadonly
	}
	return in.Intern(Type{Kind: KindArray, Flags: flags, A: elem})
}

// ArrayElem returns the element type of an array type and whether id was
// actually a KindArray.
func (in *Interner) ArrayElem(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindArray {
		return NoTypeID, false
	}
	return tt.A, true
}

// IsReadonlyArray reports whether id is `readonly T[]`.
func (in *Interner) IsReadonlyArray(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Kind == KindArray && tt.Flags.Has(FlagReadonly)
}
