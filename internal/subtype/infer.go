package subtype

import "github.com/mohsen1/tsz-sub014/internal/types"

// CollectInferCandidates implements the eval.Assignability collaborator
// method backing conditional-type `infer` binding (§4.3.1 rule 3, §4.5.1):
// walk sub against sup in lockstep, and whenever one of inferParams
// appears in sup at the current position, record the corresponding sub
// subtree as its candidate. Candidates for the same parameter are merged
// with InternUnion, matching the covariant (default-polarity) collection
// rule; this package's own call sites (conditional branch selection) never
// need contravariant tracking, which is §4.5's concern for general call-site
// inference and lives in internal/infer.
func (e *Engine) CollectInferCandidates(sub, sup types.TypeID, inferParams []types.TypeID) map[types.TypeID]types.TypeID {
	if len(inferParams) == 0 {
		return nil
	}
	targets := make(map[types.TypeID]struct{}, len(inferParams))
	for _, p := range inferParams {
		targets[p] = struct{}{}
	}
	candidates := make(map[types.TypeID][]types.TypeID)
	e.collect(sub, sup, targets, candidates, 0)

	result := make(map[types.TypeID]types.TypeID, len(candidates))
	for param, cs := range candidates {
		result[param] = e.in.InternUnion(cs)
	}
	return result
}

func (e *Engine) collect(sub, sup types.TypeID, targets map[types.TypeID]struct{}, out map[types.TypeID][]types.TypeID, depth int) {
	if depth > 200 { // mirrors MAX_RELATION_DEPTH; infer collection never outlives a relation
		return
	}
	if _, isTarget := targets[sup]; isTarget {
		out[sup] = append(out[sup], sub)
		return
	}

	if supArr, ok := e.in.ArrayElem(sup); ok {
		if subArr, ok := e.in.ArrayElem(sub); ok {
			e.collect(subArr, supArr, targets, out, depth+1)
		}
		return
	}
	if supTuple, ok := e.in.Tuple(sup); ok {
		if subTuple, ok := e.in.Tuple(sub); ok {
			for i := range supTuple.Elems {
				if i < len(subTuple.Elems) {
					e.collect(subTuple.Elems[i], supTuple.Elems[i], targets, out, depth+1)
				}
			}
		}
		return
	}
	if supFn, ok := e.in.Fn(sup); ok {
		if subFn, ok := e.in.Fn(sub); ok {
			for i := range supFn.Params {
				if i < len(subFn.Params) {
					// polarity flips at function parameter positions (§4.5.1);
					// candidate collection here remains structural-position
					// agnostic since this call path only needs covariant
					// binding for conditional distribution.
					e.collect(subFn.Params[i].Type, supFn.Params[i].Type, targets, out, depth+1)
				}
			}
			e.collect(subFn.Return, supFn.Return, targets, out, depth+1)
		}
		return
	}
	if supObj, ok := e.in.Object(sup); ok {
		if subObj, ok := e.in.Object(sub); ok {
			for _, p := range supObj.Properties {
				if subProp, ok := findProperty(subObj, p.Name); ok {
					e.collect(subProp.Type, p.Type, targets, out, depth+1)
				}
			}
		}
		return
	}
	if supU, ok := e.in.Union(sup); ok {
		subMembers := e.in.UnionMembers(sub)
		for _, sm := range supU.Members {
			if _, isTarget := targets[sm]; isTarget {
				for _, s := range subMembers {
					out[sm] = append(out[sm], s)
				}
				continue
			}
			for _, s := range subMembers {
				e.collect(s, sm, targets, out, depth+1)
			}
		}
		return
	}
	if supRef, ok := e.in.Ref(sup); ok {
		if subRef, ok := e.in.Ref(sub); ok && subRef.Name == supRef.Name {
			for i := range supRef.TypeArgs {
				if i < len(subRef.TypeArgs) {
					e.collect(subRef.TypeArgs[i], supRef.TypeArgs[i], targets, out, depth+1)
				}
			}
		}
		return
	}
}
