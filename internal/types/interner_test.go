package types

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/source"
)

func newTestStrings() *source.Interner { return source.NewInterner() }

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Any == NoTypeID || b.Unknown == NoTypeID || b.Never == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	unknown, ok := in.Lookup(b.Unknown)
	if !ok || unknown.Kind != KindUnknown {
		t.Fatalf("expected unknown kind, got %v", unknown.Kind)
	}
}

func TestInternDeduplicatesPrimitives(t *testing.T) {
	in := NewInterner()
	a := in.Intern(Type{Kind: KindString})
	b := in.Intern(Type{Kind: KindString})
	if a != b {
		t.Fatalf("string primitive should intern to one TypeID, got %d and %d", a, b)
	}
}

func TestInternArrayDeduplicates(t *testing.T) {
	in := NewInterner()
	elem := in.Builtins().String
	arr1 := in.InternArray(elem, false)
	arr2 := in.InternArray(elem, false)
	if arr1 != arr2 {
		t.Fatalf("array types should be deduplicated")
	}
	ro := in.InternArray(elem, true)
	if ro == arr1 {
		t.Fatalf("readonly and mutable arrays must differ")
	}
}

func TestInternObjectIsOrderIndependent(t *testing.T) {
	in := NewInterner()
	strs := newTestStrings()
	a := strs.Intern("a")
	b := strs.Intern("b")
	num := in.Builtins().Number

	o1 := in.InternObject(ObjectInfo{Properties: []PropertyInfo{
		{Name: uint32(a), Type: num},
		{Name: uint32(b), Type: num},
	}})
	o2 := in.InternObject(ObjectInfo{Properties: []PropertyInfo{
		{Name: uint32(b), Type: num},
		{Name: uint32(a), Type: num},
	}})
	if o1 != o2 {
		t.Fatalf("structurally identical objects with different member order must intern to one TypeID")
	}
}

func TestInternUnionFlattensAndDedups(t *testing.T) {
	in := NewInterner()
	s := in.Builtins().String
	n := in.Builtins().Number
	inner := in.InternUnion([]TypeID{s, n})
	flat := in.InternUnion([]TypeID{inner, n, s})
	direct := in.InternUnion([]TypeID{n, s})
	if flat != direct {
		t.Fatalf("nested union should flatten and dedup to the same TypeID as the direct union")
	}
}

func TestInternUnionSingletonCollapses(t *testing.T) {
	in := NewInterner()
	s := in.Builtins().String
	never := in.Builtins().Never
	got := in.InternUnion([]TypeID{s, never})
	if got != s {
		t.Fatalf("T | never must collapse to T, got kind %v", in.MustLookup(got).Kind)
	}
}

func TestInternUnionAnyAbsorbsMembers(t *testing.T) {
	in := NewInterner()
	s := in.Builtins().String
	got := in.InternUnion([]TypeID{s, in.Builtins().Any})
	if got != in.Builtins().Any {
		t.Fatalf("T | any must collapse to any, got %v", got)
	}
}

func TestInternUnionErrorTakesPrecedenceOverAny(t *testing.T) {
	in := NewInterner()
	s := in.Builtins().String
	got := in.InternUnion([]TypeID{s, in.Builtins().Any, in.Builtins().Invalid})
	if got != in.Builtins().Invalid {
		t.Fatalf("T | any | error must collapse to error, got %v", got)
	}
}

func TestFreshnessIsPartOfLiteralIdentity(t *testing.T) {
	in := NewInterner()
	strs := newTestStrings()
	foo := strs.Intern("foo")
	fresh := in.InternStringLiteral(uint32(foo), true)
	stale := in.InternStringLiteral(uint32(foo), false)
	if fresh == stale {
		t.Fatalf("fresh and widened-stale literals must be distinct TypeIDs")
	}
	if in.MarkStale(fresh) != stale {
		t.Fatalf("MarkStale(fresh) should normalize to the stale literal's TypeID")
	}
}

func TestEnumsAreNominal(t *testing.T) {
	in := NewInterner()
	strs := newTestStrings()
	name := strs.Intern("Color")
	e1 := in.InternFreshEnum(EnumInfo{Name: uint32(name)})
	e2 := in.InternFreshEnum(EnumInfo{Name: uint32(name)})
	if e1 == e2 {
		t.Fatalf("two enum declarations must never share a TypeID even with identical names")
	}
}

func TestTypeParametersAreNominal(t *testing.T) {
	in := NewInterner()
	strs := newTestStrings()
	name := strs.Intern("T")
	p1 := in.InternFreshTypeParameter(TypeParamInfo{Name: uint32(name)})
	p2 := in.InternFreshTypeParameter(TypeParamInfo{Name: uint32(name)})
	if p1 == p2 {
		t.Fatalf("distinct <T> binders must never share a TypeID")
	}
}
