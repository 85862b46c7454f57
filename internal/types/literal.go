package types

import "strconv"

func strconvFloat(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// LiteralInfo backs KindLiteral. Base names the primitive family the literal
// widens to (String, Number, Boolean, BigInt); exactly one of Str/Num/Bool/
// BigIntText is meaningful depending on Base.
type LiteralInfo struct {
	Base       Kind
	Str        StringID
	Num        float64
	Bool       bool
	BigIntText StringID
}

// StringID is a re-export of the source interner's string handle, kept as a
// distinct name in this package so call sites read naturally (property
// names, literal text, template quasis all flow through it).
type StringID = uint32

// InternStringLiteral interns a string literal type, e.g. the type of "foo".
// Freshness is part of the dedup key: a fresh and a widened-stale literal
// with identical text are, per invariant 2, distinct TypeIDs until Widen
// or MarkStale normalizes them.
func (in *Interner) InternStringLiteral(s StringID, fresh bool) TypeID {
	flags := FlagNone
	if fresh {
		flags = FlagFresh
	}
	key := digest(uint32(KindLiteral), uint32(KindString), s, uint32(flags))
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.literals))
		in.literals = append(in.literals, LiteralInfo{Base: KindString, Str: s})
		return Type{Kind: KindLiteral, Flags: flags, Payload: slot}
	})
}

// InternNumberLiteral interns a numeric literal type, e.g. the type of 42.
func (in *Interner) InternNumberLiteral(n float64, fresh bool) TypeID {
	flags := FlagNone
	if fresh {
		flags = FlagFresh
	}
	key := digest(uint32(KindLiteral), uint32(KindNumber), uint32(flags)) + ":" + strconvFloat(n)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.literals))
		in.literals = append(in.literals, LiteralInfo{Base: KindNumber, Num: n})
		return Type{Kind: KindLiteral, Flags: flags, Payload: slot}
	})
}

// InternBooleanLiteral interns `true` or `false` as a literal type.
func (in *Interner) InternBooleanLiteral(b bool) TypeID {
	bit := uint32(0)
	if b {
		bit = 1
	}
	key := digest(uint32(KindLiteral), uint32(KindBoolean), bit)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.literals))
		in.literals = append(in.literals, LiteralInfo{Base: KindBoolean, Bool: b})
		return Type{Kind: KindLiteral, Payload: slot}
	})
}

// InternBigIntLiteral interns a bigint literal, e.g. 10n.
func (in *Interner) InternBigIntLiteral(text StringID, fresh bool) TypeID {
	flags := FlagNone
	if fresh {
		flags = FlagFresh
	}
	key := digest(uint32(KindLiteral), uint32(KindBigInt), text, uint32(flags))
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.literals))
		in.literals = append(in.literals, LiteralInfo{Base: KindBigInt, BigIntText: text})
		return Type{Kind: KindLiteral, Flags: flags, Payload: slot}
	})
}

// Literal returns the LiteralInfo backing a KindLiteral type.
func (in *Interner) Literal(id TypeID) (LiteralInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindLiteral {
		return LiteralInfo{}, false
	}
	return in.literals[tt.Payload], true
}

// Widen returns the primitive supertype of a literal type, implementing the
// widening half of invariant 2. Non-literal types are returned unchanged.
func (in *Interner) Widen(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindLiteral {
		return id
	}
	lit := in.literals[tt.Payload]
	switch lit.Base {
	case KindString:
		return in.builtins.String
	case KindNumber:
		return in.builtins.Number
	case KindBoolean:
		return in.builtins.Boolean
	case KindBigInt:
		return in.builtins.BigInt
	default:
		return id
	}
}

// Fresh reports whether id is a fresh literal/object type (invariant 2).
func (in *Interner) Fresh(id TypeID) bool {
	tt, ok := in.Lookup(id)
	return ok && tt.Flags.Has(FlagFresh)
}

// MarkStale returns id with FlagFresh cleared, without re-allocating a
// payload slot; used once a fresh literal escapes its originating
// expression position (TypeScript's "freshness" is positional, not
// structural).
func (in *Interner) MarkStale(id TypeID) TypeID {
	tt, ok := in.Lookup(id)
	if !ok || !tt.Flags.Has(FlagFresh) {
		return id
	}
	stale := tt
	stale.Flags &^= FlagFresh
	return in.Intern(stale)
}
