package types

// TemplateLiteralInfo backs KindTemplateLiteral: a template string pattern
// `` `${A}-${B}` `` is Quasis=["", "-", ""], Types=[A, B] — len(Quasis) ==
// len(Types)+1 always.
type TemplateLiteralInfo struct {
	Quasis []StringID
	Types  []TypeID
}

// TemplateLiteral returns the TemplateLiteralInfo backing a
// KindTemplateLiteral type.
func (in *Interner) TemplateLiteral(id TypeID) (TemplateLiteralInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTemplateLiteral {
		return TemplateLiteralInfo{}, false
	}
	return in.templates[tt.Payload], true
}

// InternTemplateLiteral interns an unevaluated template-literal type.
func (in *Interner) InternTemplateLiteral(info TemplateLiteralInfo) TypeID {
	ids := make([]TypeID, 0, len(info.Quasis)+len(info.Types)+1)
	for _, q := range info.Quasis {
		ids = append(ids, TypeID(q))
	}
	ids = append(ids, NoTypeID)
	ids = append(ids, info.Types...)
	key := idsDigest('l', ids)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.templates))
		in.templates = append(in.templates, info)
		return Type{Kind: KindTemplateLiteral, Payload: slot}
	})
}

// StringMappingKind names the built-in intrinsic string-mapping transforms
// (§4.3.5): `Uppercase<S>`, `Lowercase<S>`, `Capitalize<S>`, `Uncapitalize<S>`.
type StringMappingKind uint8

const (
	StringMappingUppercase StringMappingKind = iota
	StringMappingLowercase
	StringMappingCapitalize
	StringMappingUncapitalize
)

// StringMappingInfo backs KindStringMapping.
type StringMappingInfo struct {
	Mapping StringMappingKind
	Target  TypeID
}

// StringMapping returns the StringMappingInfo backing a KindStringMapping type.
func (in *Interner) StringMapping(id TypeID) (StringMappingInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindStringMapping {
		return StringMappingInfo{}, false
	}
	return in.stringMappings[tt.Payload], true
}

// InternStringMapping interns an unevaluated string-mapping type.
func (in *Interner) InternStringMapping(mapping StringMappingKind, target TypeID) TypeID {
	key := digest(uint32(KindStringMapping), uint32(mapping), uint32(target))
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.stringMappings))
		in.stringMappings = append(in.stringMappings, StringMappingInfo{Mapping: mapping, Target: target})
		return Type{Kind: KindStringMapping, Payload: slot, A: target}
	})
}
