package narrow

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

type identityReducer struct{}

func (identityReducer) Reduce(id types.TypeID, at source.Span) types.TypeID { return id }

type stubAssign struct{ in *types.Interner }

func (s stubAssign) IsAssignable(sub, sup types.TypeID) bool {
	return sub == sup
}

func newTestEngine(t *testing.T) (*Engine, *types.Interner) {
	t.Helper()
	in := types.NewInterner()
	strs := source.NewInterner()
	return New(in, strs, identityReducer{}), in
}

func TestTypeofFiltersUnion(t *testing.T) {
	e, in := newTestEngine(t)
	b := in.Builtins()
	union := in.InternUnion([]types.TypeID{b.String, b.Number})

	got := e.Typeof(union, TagString, false, source.Span{})
	if got != b.String {
		t.Errorf("expected typeof === \"string\" to narrow to string, got %v", got)
	}

	got = e.Typeof(union, TagString, true, source.Span{})
	if got != b.Number {
		t.Errorf("expected typeof !== \"string\" to narrow to number, got %v", got)
	}
}

func TestTypeofAllMembersExcludedCollapsesToNever(t *testing.T) {
	e, in := newTestEngine(t)
	b := in.Builtins()
	got := e.Typeof(b.String, TagString, true, source.Span{})
	if got != b.Never {
		t.Errorf("expected the false branch of typeof === \"string\" against string alone to be never, got %v", got)
	}
}

func TestInstanceofNarrowsUnion(t *testing.T) {
	e, in := newTestEngine(t)
	b := in.Builtins()
	assign := stubAssign{in}

	a := in.InternObject(types.ObjectInfo{Properties: []types.PropertyInfo{{Name: 1, Type: b.String}}})
	union := in.InternUnion([]types.TypeID{a, b.Number})

	got := Instanceof(e, assign, union, a, false)
	if got != a {
		t.Errorf("expected instanceof true branch to narrow to the matching member, got %v", got)
	}

	got = Instanceof(e, assign, union, a, true)
	if got != b.Number {
		t.Errorf("expected instanceof false branch to drop the matching member, got %v", got)
	}
}

func TestLiteralDiscriminant(t *testing.T) {
	e, in := newTestEngine(t)
	b := in.Builtins()
	one := in.InternNumberLiteral(1, false)
	two := in.InternNumberLiteral(2, false)
	union := in.InternUnion([]types.TypeID{one, two})
	_ = b

	got := e.Literal(union, one, false)
	if got != one {
		t.Errorf("expected x === 1 to narrow to the literal 1, got %v", got)
	}
	got = e.Literal(union, one, true)
	if got != two {
		t.Errorf("expected x !== 1 to narrow to the literal 2, got %v", got)
	}
}

// TestTypeofIndexedAccessFunctionIntersection covers scenario 2 of the
// concrete test corpus: `if (typeof fn !== "function") return 0;` then
// `fn` inside the surviving continuation (where the guard's negation
// holds, i.e. `typeof fn === "function"`) keeps its symbolic `T[K]` form
// intersected with `Function`, rather than collapsing to `never`. The
// exclude-function direction (negate=true, as the then-branch of the
// `!==` guard itself gets) must NOT take this path.
func TestTypeofIndexedAccessFunctionIntersection(t *testing.T) {
	e, in := newTestEngine(t)
	strs := source.NewInterner()
	obj := in.InternFreshTypeParameter(types.TypeParamInfo{Name: uint32(strs.Intern("T"))})
	key := in.InternFreshTypeParameter(types.TypeParamInfo{Name: uint32(strs.Intern("K"))})
	idx := in.InternIndexedAccess(obj, key)

	got := e.Typeof(idx, TagFunction, false, source.Span{})
	if _, ok := in.Intersection(got); !ok {
		t.Errorf("typeof fn === \"function\" against an unresolved indexed access should intersect with Function, got %v", got)
	}

	got = e.Typeof(idx, TagFunction, true, source.Span{})
	if _, ok := in.Intersection(got); ok {
		t.Errorf("typeof fn !== \"function\" should not take the Function-intersection path, got %v", got)
	}
}

func TestTruthyDropsNullish(t *testing.T) {
	e, in := newTestEngine(t)
	b := in.Builtins()
	union := in.InternUnion([]types.TypeID{b.String, b.Undefined, b.Null})

	got := e.Truthy(union, false)
	if got != b.String {
		t.Errorf("expected truthy narrowing to drop null/undefined, got %v", got)
	}
}

func TestClosureResetsMutableCapture(t *testing.T) {
	s := NewState()
	sym := symbols.SymbolID(1)
	s.Set(sym, 42)
	s.MarkMutableCapture(sym)

	inner := s.EnterClosure()
	if _, ok := inner.Get(sym); ok {
		t.Errorf("expected rule 42 to reset a mutably-captured binding's narrowing inside a closure")
	}
	if _, ok := s.Get(sym); !ok {
		t.Errorf("expected the enclosing scope's narrowing to remain after entering a closure")
	}
}

func TestClosurePreservesConstCapture(t *testing.T) {
	s := NewState()
	sym := symbols.SymbolID(1)
	s.Set(sym, 42)

	inner := s.EnterClosure()
	if got, ok := inner.Get(sym); !ok || got != 42 {
		t.Errorf("expected rule 42 to preserve a const binding's narrowing inside a closure")
	}
}
