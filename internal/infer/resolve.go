package infer

import "github.com/mohsen1/tsz-sub014/internal/types"

// ConstraintOf and DefaultOf let the caller supply per-parameter fallback
// types without this package needing to know how type parameters are
// declared (an Inferrer never sees a Checker, only TypeIDs).
type ConstraintOf func(param types.TypeID) types.TypeID
type DefaultOf func(param types.TypeID) types.TypeID

// Resolve turns each parameter's collected candidates into one bound type,
// per §4.5.3:
//
//  1. candidates observed only in contravariant position combine by
//     intersection (the binding must satisfy every contravariant use site
//     at once, so it has to be at least as narrow as all of them);
//  2. any covariant candidate present at all means the covariant set wins,
//     combined by union, with literal types widened to their base unless a
//     HomomorphicMapped-priority candidate is present (a homomorphic mapped
//     type preserves the literal-ness of what it maps over, §4.3.3);
//  3. no candidates at all falls back to the parameter's default, then its
//     constraint, then unknown;
//  4. the resolved binding is checked against the parameter's constraint
//     (when one exists) and replaced with the constraint if it would
//     violate it — constraint violation in source TypeScript is a
//     diagnostic, but a caller that only wants the best-effort binding
//     (e.g. for completion/hover) gets a silently-corrected type here;
//     internal/checkexpr is responsible for emitting the diagnostic
//     separately when it drives a real call-expression check.
func (inf *Inferrer) Resolve(params []types.TypeID, byParam map[types.TypeID][]Candidate, constraintOf ConstraintOf, defaultOf DefaultOf) map[types.TypeID]types.TypeID {
	out := make(map[types.TypeID]types.TypeID, len(params))
	b := inf.in.Builtins()

	for _, p := range params {
		cands := byParam[p]
		bound := inf.resolveOne(cands, constraintOf(p), defaultOf(p), b.Unknown)
		out[p] = bound
	}
	return out
}

func (inf *Inferrer) resolveOne(cands []Candidate, constraint, def, unknown types.TypeID) types.TypeID {
	if len(cands) == 0 {
		if def != types.NoTypeID {
			return def
		}
		if constraint != types.NoTypeID {
			return constraint
		}
		return unknown
	}

	top := cands[0].Priority
	for _, c := range cands[1:] {
		if c.Priority > top {
			top = c.Priority
		}
	}

	var covariant, contravariant []Candidate
	highestHomomorphic := false
	for _, c := range cands {
		if c.Priority == PriorityHomomorphicMapped {
			highestHomomorphic = true
		}
		if c.Priority != top {
			continue // a higher-priority candidate set overrides this one
		}
		if c.Polarity == Contravariant {
			contravariant = append(contravariant, c)
		} else {
			covariant = append(covariant, c)
		}
	}

	var bound types.TypeID
	if len(covariant) == 0 && len(contravariant) > 0 {
		members := make([]types.TypeID, len(contravariant))
		for i, c := range contravariant {
			members[i] = c.Type
		}
		bound = inf.in.InternIntersection(members)
	} else {
		members := make([]types.TypeID, len(covariant))
		for i, c := range covariant {
			t := c.Type
			if !highestHomomorphic {
				t = inf.in.Widen(t)
			}
			members[i] = t
		}
		bound = inf.in.InternUnion(members)
	}

	if constraint != types.NoTypeID && !inf.assign.IsAssignable(bound, constraint) {
		return constraint
	}
	return bound
}
