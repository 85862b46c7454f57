package types

// RefInfo backs KindRef: a lazily-resolved named reference, used for
// recursive type aliases and generic instantiations awaiting memoization
// (§9 "cyclic types" and "explicit recursion re-entry"). Target starts as
// NoTypeID and is filled in once by the Lowerer/Evaluator the first time
// the reference's body is resolved; every other component that encounters
// the same (Name, TypeArgs) pair observes the same TypeID and, if Target is
// still NoTypeID, knows it has hit a cycle and must fall back to a
// recursion-guard policy rather than resolving again.
type RefInfo struct {
	Name     StringID
	TypeArgs []TypeID
	Target   TypeID
}

// Ref returns the RefInfo backing a KindRef type.
func (in *Interner) Ref(id TypeID) (RefInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRef {
		return RefInfo{}, false
	}
	return in.refs[tt.Payload], true
}

// InternRef returns the stable TypeID for (name, typeArgs), creating an
// unresolved Ref (Target == NoTypeID) on first use.
func (in *Interner) InternRef(name StringID, typeArgs []TypeID) TypeID {
	ids := append([]TypeID{TypeID(name), NoTypeID}, typeArgs...)
	key := idsDigest('r', ids)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.refs))
		in.refs = append(in.refs, RefInfo{Name: name, TypeArgs: append([]TypeID(nil), typeArgs...)})
		return Type{Kind: KindRef, Payload: slot}
	})
}

// ResolveRef records the resolved target for a previously-unresolved Ref.
// It is an error to call this twice with a different target for the same
// id; callers are expected to memoize by id and only resolve once (the
// Lowerer enforces this, see §9 design notes).
func (in *Interner) ResolveRef(id, target TypeID) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindRef {
		return
	}
	ref := in.refs[tt.Payload]
	ref.Target = target
	in.refs[tt.Payload] = ref
}
