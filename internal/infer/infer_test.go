package infer

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/types"
)

// stubAssign is a minimal Assignability used so these tests don't need to
// pull in internal/subtype: it only needs to answer "is a exactly b, or is
// either side any/unknown/never" for the handful of cases exercised here.
type stubAssign struct{ in *types.Interner }

func (s stubAssign) IsAssignable(sub, sup types.TypeID) bool {
	if sub == sup {
		return true
	}
	b := s.in.Builtins()
	if sub == b.Never || sup == b.Any || sup == b.Unknown {
		return true
	}
	if sub == b.Number && sup == b.Number {
		return true
	}
	return false
}

func newInferrer(t *testing.T) (*Inferrer, *types.Interner) {
	t.Helper()
	in := types.NewInterner()
	return New(in, stubAssign{in}), in
}

func TestCollectArrayElement(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	param := in.InternFreshTypeParameter(types.TypeParamInfo{Name: 1})

	source := in.InternArray(b.String, false)
	target := in.InternArray(param, false)

	got := inf.Collect(source, target, []types.TypeID{param}, PriorityDefault)
	cands := got[param]
	if len(cands) != 1 || cands[0].Type != b.String {
		t.Fatalf("expected one string candidate, got %+v", cands)
	}
}

func TestCollectFunctionParameterFlipsPolarity(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	param := in.InternFreshTypeParameter(types.TypeParamInfo{Name: 1})

	source := in.InternFn(types.FnInfo{Params: []types.ParamInfo{{Type: b.String}}, Return: b.Void})
	target := in.InternFn(types.FnInfo{Params: []types.ParamInfo{{Type: param}}, Return: b.Void})

	got := inf.Collect(source, target, []types.TypeID{param}, PriorityDefault)
	cands := got[param]
	if len(cands) != 1 || cands[0].Polarity != Contravariant {
		t.Fatalf("expected one contravariant candidate from a parameter position, got %+v", cands)
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	param := in.InternFreshTypeParameter(types.TypeParamInfo{Name: 1})

	out := inf.Resolve(
		[]types.TypeID{param},
		map[types.TypeID][]Candidate{},
		func(types.TypeID) types.TypeID { return types.NoTypeID },
		func(types.TypeID) types.TypeID { return b.String },
	)
	if out[param] != b.String {
		t.Errorf("expected default fallback to string, got %v", out[param])
	}
}

func TestResolveContravariantOnlyIntersects(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	param := in.InternFreshTypeParameter(types.TypeParamInfo{Name: 1})

	cands := map[types.TypeID][]Candidate{
		param: {
			{Type: b.String, Polarity: Contravariant, Priority: PriorityDefault},
			{Type: b.Number, Polarity: Contravariant, Priority: PriorityDefault},
		},
	}
	out := inf.Resolve([]types.TypeID{param}, cands,
		func(types.TypeID) types.TypeID { return types.NoTypeID },
		func(types.TypeID) types.TypeID { return types.NoTypeID },
	)
	if _, ok := in.Intersection(out[param]); !ok {
		t.Errorf("expected contravariant-only candidates to combine into an intersection, got kind for %v", out[param])
	}
}

func TestBestCommonTypeSingleDominant(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	got := inf.BestCommonType([]types.TypeID{b.Number, b.Number})
	if got != b.Number {
		t.Errorf("expected number to dominate identical candidates, got %v", got)
	}
}

func TestBestCommonTypeFallsBackToUnion(t *testing.T) {
	inf, in := newInferrer(t)
	b := in.Builtins()
	got := inf.BestCommonType([]types.TypeID{b.Number, b.String})
	if _, ok := in.Union(got); !ok {
		t.Errorf("expected no-dominant-candidate case to fall back to a union, got kind for %v", got)
	}
}
