package infer

import "github.com/mohsen1/tsz-sub014/internal/types"

// targetSet marks which TypeIDs are the inference variables being solved
// for, mirroring contract_match_inference.go's paramNames membership test.
type targetSet map[types.TypeID]struct{}

// Collect walks source against target in lockstep (§4.5.1), recording one
// Candidate per observed binding of every id in targets. Polarity starts
// covariant and flips only at a function parameter position. Candidates
// carry the caller's priority, except where the walk itself assigns one:
// bindings found in a function's return position are tagged
// PriorityReturnType and those found as a naked member of a target union
// PriorityNakedInUnion.
func (inf *Inferrer) Collect(source, target types.TypeID, targets []types.TypeID, priority Priority) map[types.TypeID][]Candidate {
	set := make(targetSet, len(targets))
	for _, t := range targets {
		set[t] = struct{}{}
	}
	out := make(map[types.TypeID][]Candidate)
	inf.collect(source, target, set, Covariant, priority, out, 0)
	return out
}

const maxCollectDepth = 200

func (inf *Inferrer) collect(source, target types.TypeID, set targetSet, pol Polarity, pri Priority, out map[types.TypeID][]Candidate, depth int) {
	if depth > maxCollectDepth {
		return
	}
	if _, isTarget := set[target]; isTarget {
		out[target] = append(out[target], Candidate{Type: source, Polarity: pol, Priority: pri})
		return
	}

	tt, ok := inf.in.Lookup(target)
	if !ok {
		return
	}

	switch tt.Kind {
	case types.KindArray:
		targetElem, ok := inf.in.ArrayElem(target)
		if !ok {
			return
		}
		if sourceElem, ok := inf.in.ArrayElem(source); ok {
			inf.collect(sourceElem, targetElem, set, pol, pri, out, depth+1)
			return
		}
		if st, ok := inf.in.Tuple(source); ok {
			for _, e := range st.Elems {
				inf.collect(e, targetElem, set, pol, pri, out, depth+1)
			}
		}

	case types.KindTuple:
		tTup, ok := inf.in.Tuple(target)
		if !ok {
			return
		}
		sTup, ok := inf.in.Tuple(source)
		if !ok {
			return
		}
		n := len(tTup.Elems)
		if len(sTup.Elems) < n {
			n = len(sTup.Elems)
		}
		for i := 0; i < n; i++ {
			inf.collect(sTup.Elems[i], tTup.Elems[i], set, pol, pri, out, depth+1)
		}

	case types.KindFunction:
		tFn, ok := inf.in.Fn(target)
		if !ok {
			return
		}
		sFn, ok := inf.in.Fn(source)
		if !ok {
			return
		}
		// parameter position flips polarity; return position does not.
		flipped := Contravariant
		if pol == Contravariant {
			flipped = Covariant
		}
		n := len(tFn.Params)
		if len(sFn.Params) < n {
			n = len(sFn.Params)
		}
		for i := 0; i < n; i++ {
			inf.collect(sFn.Params[i].Type, tFn.Params[i].Type, set, flipped, pri, out, depth+1)
		}
		inf.collect(sFn.Return, tFn.Return, set, pol, PriorityReturnType, out, depth+1)

	case types.KindObject:
		tObj, ok := inf.in.Object(target)
		if !ok {
			return
		}
		sObj, ok := inf.in.Object(source)
		if !ok {
			return
		}
		for _, tp := range tObj.Properties {
			for _, sp := range sObj.Properties {
				if sp.Name == tp.Name {
					inf.collect(sp.Type, tp.Type, set, pol, pri, out, depth+1)
					break
				}
			}
		}

	case types.KindUnion:
		tu, _ := inf.in.Union(target)
		for _, tm := range tu.Members {
			if su, ok := inf.in.Union(source); ok {
				for _, sm := range su.Members {
					inf.collect(sm, tm, set, pol, PriorityNakedInUnion, out, depth+1)
				}
				continue
			}
			inf.collect(source, tm, set, pol, PriorityNakedInUnion, out, depth+1)
		}

	case types.KindRef:
		tRef, ok := inf.in.Ref(target)
		if !ok {
			return
		}
		sRef, ok := inf.in.Ref(source)
		if !ok || sRef.Name != tRef.Name || len(sRef.TypeArgs) != len(tRef.TypeArgs) {
			return
		}
		for i := range tRef.TypeArgs {
			inf.collect(sRef.TypeArgs[i], tRef.TypeArgs[i], set, pol, pri, out, depth+1)
		}
	}
}
