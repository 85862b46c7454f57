package types

// EnumMemberInfo describes one member of an enum declaration.
type EnumMemberInfo struct {
	Name  StringID
	Value TypeID // the member's own literal type (string or number)
}

// EnumInfo backs KindEnum. Enums are nominal (rule N, §4.4.3): two enum
// declarations with identical members are still distinct types, so unlike
// objects/unions/tuples, enums always allocate a fresh slot rather than
// structurally deduping — InternEnum never collapses two calls to the same
// TypeID even given identical info.
type EnumInfo struct {
	Name    StringID
	Members []EnumMemberInfo
	IsConst bool
	// Open records whether numeric enum values outside declared members are
	// still assignable to the enum type (rule E, §4.4.3): true for numeric
	// enums, false for string enums and const enums under strict checks.
	Open bool
}

// Enum returns the EnumInfo backing a KindEnum type.
func (in *Interner) Enum(id TypeID) (EnumInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindEnum {
		return EnumInfo{}, false
	}
	return in.enums[tt.Payload], true
}

// InternFreshEnum always allocates a new nominal enum TypeID for a
// declaration.
func (in *Interner) InternFreshEnum(info EnumInfo) TypeID {
	slot := safeconv(len(in.enums))
	in.enums = append(in.enums, info)
	return in.append(Type{Kind: KindEnum, Payload: slot})
}

// EnumMemberRef backs KindEnumMember: the type of `Color.Red` as distinct
// from the type of `Color` itself.
type EnumMemberRef struct {
	Enum  TypeID
	Index int
}

// EnumMember returns the EnumMemberRef backing a KindEnumMember type.
func (in *Interner) EnumMember(id TypeID) (EnumMemberRef, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindEnumMember {
		return EnumMemberRef{}, false
	}
	return in.enumMembers[tt.Payload], true
}

// InternEnumMember interns the singleton type of one named enum member.
// Unlike the enum declaration itself, the member type is structural in
// (Enum, Index) — re-interning the same member returns the same TypeID.
func (in *Interner) InternEnumMember(enum TypeID, index int) TypeID {
	key := digest(uint32(KindEnumMember), uint32(enum), int32ToU32(index))
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.enumMembers))
		in.enumMembers = append(in.enumMembers, EnumMemberRef{Enum: enum, Index: index})
		return Type{Kind: KindEnumMember, Payload: slot}
	})
}
