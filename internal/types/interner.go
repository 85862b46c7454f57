package types

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitives and intrinsics every session
// needs on hand (§3.2).
type Builtins struct {
	Invalid   TypeID
	Any       TypeID
	Unknown   TypeID
	Never     TypeID
	Void      TypeID
	Undefined TypeID
	Null      TypeID
	String    TypeID
	Number    TypeID
	Boolean   TypeID
	BigInt    TypeID
	Symbol    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Simple, payload-free kinds dedup through simpleIndex, keyed on the Type
// struct itself. Compound kinds (object, union, tuple, ...) dedup through
// structIndex, keyed on a content digest computed before a side-table slot
// is ever allocated — unlike a nominal type system (where two struct
// declarations are distinct even if identical), TypeScript's structural
// kinds must collapse to one TypeID whenever their shape matches
// (invariant 1).
type Interner struct {
	types       []Type
	simpleIndex map[Type]TypeID
	structIndex map[string]TypeID
	builtins    Builtins

	literals       []LiteralInfo
	uniqueSymbols  []UniqueSymbolInfo
	objects        []ObjectInfo
	unions         []UnionInfo
	intersections  []IntersectionInfo
	tuples         []TupleInfo
	fns            []FnInfo
	typeParams     []TypeParamInfo
	conditionals   []ConditionalInfo
	mappeds        []MappedInfo
	templates      []TemplateLiteralInfo
	stringMappings []StringMappingInfo
	enums          []EnumInfo
	enumMembers    []EnumMemberInfo
	refs           []RefInfo
}

// NewInterner constructs an interner seeded with the built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		simpleIndex: make(map[Type]TypeID, 64),
		structIndex: make(map[string]TypeID, 256),
	}
	// reserve slot 0 in every side table as an invalid sentinel, mirroring
	// the zero-TypeID-means-invalid convention.
	in.literals = append(in.literals, LiteralInfo{})
	in.uniqueSymbols = append(in.uniqueSymbols, UniqueSymbolInfo{})
	in.objects = append(in.objects, ObjectInfo{})
	in.unions = append(in.unions, UnionInfo{})
	in.intersections = append(in.intersections, IntersectionInfo{})
	in.tuples = append(in.tuples, TupleInfo{})
	in.fns = append(in.fns, FnInfo{})
	in.typeParams = append(in.typeParams, TypeParamInfo{})
	in.conditionals = append(in.conditionals, ConditionalInfo{})
	in.mappeds = append(in.mappeds, MappedInfo{})
	in.templates = append(in.templates, TemplateLiteralInfo{})
	in.stringMappings = append(in.stringMappings, StringMappingInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.enumMembers = append(in.enumMembers, EnumMemberInfo{})
	in.refs = append(in.refs, RefInfo{})

	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	in.builtins.Never = in.Intern(Type{Kind: KindNever})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Undefined = in.Intern(Type{Kind: KindUndefined})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	in.builtins.Number = in.Intern(Type{Kind: KindNumber})
	in.builtins.Boolean = in.Intern(Type{Kind: KindBoolean})
	in.builtins.BigInt = in.Intern(Type{Kind: KindBigInt})
	in.builtins.Symbol = in.Intern(Type{Kind: KindSymbol})
	return in
}

// Builtins returns TypeIDs for primitives and intrinsics.
func (in *Interner) Builtins() Builtins { return in.builtins }

// Intern ensures a payload-free descriptor has a stable TypeID. Compound
// kinds must go through their own InternX builder instead, since those
// carry a side-table payload this method knows nothing about.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return in.builtins.Invalid
	}
	if id, ok := in.simpleIndex[t]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw appends the descriptor to storage unconditionally and records it
// under its Type-struct key. Compound-kind callers use internStruct instead
// so the content digest — not the freshly allocated payload slot — is the
// dedup key.
func (in *Interner) internRaw(t Type) TypeID {
	id := in.append(t)
	in.simpleIndex[t] = id
	return id
}

// internStruct interns a compound-kind Type under a precomputed content
// digest, returning the existing TypeID (and discarding the just-built
// payload) when an equivalent type is already present.
func (in *Interner) internStruct(digest string, build func() Type) TypeID {
	if id, ok := in.structIndex[digest]; ok {
		return id
	}
	id := in.append(build())
	in.structIndex[digest] = id
	return id
}

func (in *Interner) append(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("types: interner overflow: %w", err))
	}
	id := TypeID(n)
	in.types = append(in.types, t)
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid; reserved for call sites that have
// already validated id came from this interner (e.g. immediately after
// Intern).
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

func safeconv(n int) uint32 {
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		panic(fmt.Errorf("types: slot index overflow: %w", err))
	}
	return v
}

// digest renders a compact, deterministic key from TypeID/flag components.
// It is not a cryptographic hash: collisions are impossible by
// construction because every compound kind prefixes its own tag byte and
// field count is fixed per call site.
func digest(parts ...uint32) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(p), 36))
	}
	return b.String()
}

func idsDigest(tag byte, ids []TypeID) string {
	var b strings.Builder
	b.WriteByte(tag)
	for _, id := range ids {
		b.WriteByte(':')
		b.WriteString(strconv.FormatUint(uint64(id), 36))
	}
	return b.String()
}
