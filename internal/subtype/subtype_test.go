package subtype

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

func newEngine(t *testing.T) (*Engine, *types.Interner) {
	t.Helper()
	in := types.NewInterner()
	return New(in, nil, nil, DefaultConfig()), in
}

func TestReflexivity(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	for _, id := range []types.TypeID{b.String, b.Number, b.Boolean, b.Any, b.Unknown} {
		if !e.IsAssignable(id, id, source.Span{}) {
			t.Errorf("expected %v assignable to itself", id)
		}
	}
}

func TestNeverIsBottom(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	for _, id := range []types.TypeID{b.String, b.Number, b.Boolean, b.Unknown} {
		if !e.IsAssignable(b.Never, id, source.Span{}) {
			t.Errorf("expected never assignable to %v", id)
		}
	}
}

func TestUnknownIsTop(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	for _, id := range []types.TypeID{b.String, b.Number, b.Boolean, b.Never} {
		if !e.IsAssignable(id, b.Unknown, source.Span{}) {
			t.Errorf("expected %v assignable to unknown", id)
		}
	}
}

func TestAnyIsUniversal(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	for _, id := range []types.TypeID{b.String, b.Number, b.Boolean} {
		if !e.IsAssignable(b.Any, id, source.Span{}) {
			t.Errorf("expected any assignable to %v", id)
		}
		if !e.IsAssignable(id, b.Any, source.Span{}) {
			t.Errorf("expected %v assignable to any", id)
		}
	}
}

func TestUnionMemberAssignable(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	union := in.InternUnion([]types.TypeID{b.String, b.Number})
	if !e.IsAssignable(b.String, union, source.Span{}) {
		t.Errorf("expected string assignable to string|number")
	}
	if e.IsAssignable(b.Boolean, union, source.Span{}) {
		t.Errorf("expected boolean not assignable to string|number")
	}
	if !e.IsAssignable(union, in.Builtins().Unknown, source.Span{}) {
		t.Errorf("expected string|number assignable to unknown")
	}
}

func TestObjectStructuralAssignability(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()

	wide := in.InternObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{
			{Name: 1, Type: b.String},
		},
	})
	narrow := in.InternObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{
			{Name: 1, Type: b.String},
			{Name: 2, Type: b.Number},
		},
	})
	if !e.IsAssignable(narrow, wide, source.Span{}) {
		t.Errorf("expected object with extra property assignable to a subset shape")
	}
	if e.IsAssignable(wide, narrow, source.Span{}) {
		t.Errorf("expected object missing a required property to be rejected")
	}
}

func TestWeakTypeRejection(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	weak := in.InternObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{
			{Name: 1, Type: b.Number, Optional: true},
		},
	})
	unrelated := in.InternFreshObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{
			{Name: 2, Type: b.String},
		},
	})
	if e.IsAssignable(unrelated, weak, source.Span{}) {
		t.Errorf("expected rule W to reject an object sharing no keys with an all-optional target")
	}
}

func TestExcessPropertyRejectsFreshObjectLiteral(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	target := in.InternObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{{Name: 1, Type: b.Number}},
	})
	fresh := in.InternFreshObject(types.ObjectInfo{
		Properties: []types.PropertyInfo{
			{Name: 1, Type: b.Number},
			{Name: 3, Type: b.String},
		},
	})
	if e.IsAssignable(fresh, target, source.Span{}) {
		t.Errorf("expected rule F to reject a fresh object literal with an excess key")
	}
}

func TestCrossEnumRejection(t *testing.T) {
	e, in := newEngine(t)
	x := in.InternFreshEnum(types.EnumInfo{Name: 10, Members: []types.EnumMemberInfo{{Name: 11}}, Open: true})
	y := in.InternFreshEnum(types.EnumInfo{Name: 12, Members: []types.EnumMemberInfo{{Name: 11}}, Open: true})
	if e.IsAssignable(y, x, source.Span{}) {
		t.Errorf("expected cross-enum assignment to be rejected even with identical members")
	}
}

func TestNumericEnumOpensToNumber(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	x := in.InternFreshEnum(types.EnumInfo{Name: 10, Members: []types.EnumMemberInfo{{Name: 11}}, Open: true})
	if !e.IsAssignable(x, b.Number, source.Span{}) {
		t.Errorf("expected an open numeric enum to widen to number")
	}
}

func TestCyclicRefCoinducts(t *testing.T) {
	e, in := newEngine(t)
	ref := in.InternRef(5, nil)
	in.ResolveRef(ref, ref) // degenerate self-cycle
	if !e.IsAssignable(ref, ref, source.Span{}) {
		t.Errorf("expected a self-referential Ref to be coinductively assignable to itself")
	}
}

func TestFunctionContravariantParameters(t *testing.T) {
	e, in := newEngine(t)
	b := in.Builtins()
	union := in.InternUnion([]types.TypeID{b.String, b.Number})

	narrowParam := in.InternFn(types.FnInfo{
		Params: []types.ParamInfo{{Type: b.String}},
		Return: b.Void,
	})
	widerParam := in.InternFn(types.FnInfo{
		Params: []types.ParamInfo{{Type: union}},
		Return: b.Void,
	})
	// a handler accepting string|number can stand in anywhere a
	// string-only handler is expected (contravariant parameter position).
	if !e.IsAssignable(widerParam, narrowParam, source.Span{}) {
		t.Errorf("expected wider-parameter function assignable under contravariance")
	}
}
