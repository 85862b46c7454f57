package types

// Modifier represents a mapped-type `+?`/`-?`/`+readonly`/`-readonly`
// delta: Unchanged leaves the source member's modifier untouched, Add/
// Remove force it on or off.
type Modifier uint8

const (
	ModifierUnchanged Modifier = iota
	ModifierAdd
	ModifierRemove
)

// MappedInfo backs KindMapped: `{ [K in Constraint as NameType]Opt: Template }`.
// TypeParam is the KindTypeParameter bound to K inside Template/NameType.
// Homomorphic records whether Constraint is exactly `keyof S` for some
// naked type parameter S (§4.3.2), which changes how optional/readonly
// modifiers on S's own members combine with Optional/Readonly here.
type MappedInfo struct {
	TypeParam    TypeID
	Constraint   TypeID
	NameType     TypeID // NoTypeID when there is no `as` clause
	TemplateType TypeID
	Optional     Modifier
	Readonly     Modifier
	Homomorphic  bool
	HomSource    TypeID // the naked type parameter S when Homomorphic
}

// Mapped returns the MappedInfo backing a KindMapped type.
func (in *Interner) Mapped(id TypeID) (MappedInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindMapped {
		return MappedInfo{}, false
	}
	return in.mappeds[tt.Payload], true
}

// InternMapped interns an unevaluated mapped type.
func (in *Interner) InternMapped(info MappedInfo) TypeID {
	key := idsDigest('m', []TypeID{
		info.TypeParam, info.Constraint, info.NameType, info.TemplateType,
		TypeID(info.Optional), TypeID(info.Readonly), TypeID(boolBit(info.Homomorphic)), info.HomSource,
	})
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.mappeds))
		in.mappeds = append(in.mappeds, info)
		return Type{Kind: KindMapped, Payload: slot}
	})
}
