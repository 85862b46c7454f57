package types

// PropertyInfo describes a single member of an object type.
type PropertyInfo struct {
	Name     StringID
	Type     TypeID
	Optional bool
	Readonly bool
}

// IndexSignatureInfo describes `[key: K]: V`.
type IndexSignatureInfo struct {
	KeyType   TypeID // string, number, symbol, or a template-literal pattern
	ValueType TypeID
	Readonly  bool
}

// ObjectInfo backs KindObject: a structural bag of properties, index
// signatures, and call/construct signatures (each a KindFunction TypeID).
// Properties are kept sorted by Name so two objects built with the same
// members in different declaration order still digest identically.
type ObjectInfo struct {
	Properties          []PropertyInfo
	IndexSignatures      []IndexSignatureInfo
	CallSignatures       []TypeID
	ConstructSignatures  []TypeID

	freshHint bool
}

// Object returns the ObjectInfo backing a KindObject type.
func (in *Interner) Object(id TypeID) (ObjectInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindObject {
		return ObjectInfo{}, false
	}
	return in.objects[tt.Payload], true
}

// InternObject interns a structural object type. Properties are sorted by
// Name before digesting so member order never affects identity
// (invariant 1: `{a: 1, b: 2}` and `{b: 2, a: 1}` intern to one TypeID).
func (in *Interner) InternObject(info ObjectInfo) TypeID {
	sortProperties(info.Properties)
	sortIndexSignatures(info.IndexSignatures)
	key := objectDigest(info)
	fresh := info.freshHint
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.objects))
		in.objects = append(in.objects, info)
		flags := FlagNone
		if fresh {
			flags = FlagFresh
		}
		return Type{Kind: KindObject, Flags: flags, Payload: slot}
	})
}

// freshHint is not part of the public struct literal surface (it would leak
// into every call site); callers that need a fresh object type go through
// InternFreshObject.
type objectInfoWithFresh = ObjectInfo

func (o ObjectInfo) withFresh(fresh bool) objectInfoWithFresh {
	o.freshHint = fresh
	return o
}

// InternFreshObject interns an object literal type marked fresh, the form
// produced directly by an object-literal expression before it is assigned
// anywhere (excess-property checking, rule F in §4.4.3, only fires against
// fresh object types).
func (in *Interner) InternFreshObject(info ObjectInfo) TypeID {
	return in.InternObject(info.withFresh(true))
}

func sortProperties(props []PropertyInfo) {
	// insertion sort: property lists are small (handful of members) and
	// this keeps the package free of a sort.Slice closure-allocation per call.
	for i := 1; i < len(props); i++ {
		for j := i; j > 0 && props[j-1].Name > props[j].Name; j-- {
			props[j-1], props[j] = props[j], props[j-1]
		}
	}
}

func sortIndexSignatures(sigs []IndexSignatureInfo) {
	for i := 1; i < len(sigs); i++ {
		for j := i; j > 0 && sigs[j-1].KeyType > sigs[j].KeyType; j-- {
			sigs[j-1], sigs[j] = sigs[j], sigs[j-1]
		}
	}
}

func objectDigest(info ObjectInfo) string {
	ids := make([]TypeID, 0, len(info.Properties)*2+len(info.IndexSignatures)*2+len(info.CallSignatures)+len(info.ConstructSignatures)+1)
	for _, p := range info.Properties {
		ids = append(ids, TypeID(p.Name), p.Type, TypeID(boolBit(p.Optional)), TypeID(boolBit(p.Readonly)))
	}
	ids = append(ids, NoTypeID) // separator
	for _, s := range info.IndexSignatures {
		ids = append(ids, s.KeyType, s.ValueType, TypeID(boolBit(s.Readonly)))
	}
	ids = append(ids, NoTypeID)
	ids = append(ids, info.CallSignatures...)
	ids = append(ids, NoTypeID)
	ids = append(ids, info.ConstructSignatures...)
	ids = append(ids, TypeID(boolBit(info.freshHint)))
	return idsDigest('o', ids)
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// FindProperty looks up a named member on a (non-union) object type.
func (in *Interner) FindProperty(id TypeID, name StringID) (PropertyInfo, bool) {
	obj, ok := in.Object(id)
	if !ok {
		return PropertyInfo{}, false
	}
	// binary search is overkill at these sizes; linear scan over a
	// name-sorted slice keeps the code simple and is still O(log n) in
	// practice for the handful-of-members case.
	for _, p := range obj.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return PropertyInfo{}, false
}
