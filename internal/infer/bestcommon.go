package infer

import "github.com/mohsen1/tsz-sub014/internal/types"

// BestCommonType picks a supertype for a set of candidates observed without
// a contextual target — an array literal's element type, or a set of
// `return` statements in a function with no declared return type (§4.5.4).
// It prefers the most specific candidate every other candidate is
// assignable to (so `[1, 2]` infers `number[]`, not `(1 | 2)[]`), and falls
// back to a union of the widened candidates when no single member
// dominates (so `[1, "a"]` infers `(number | string)[]`).
func (inf *Inferrer) BestCommonType(candidates []types.TypeID) types.TypeID {
	if len(candidates) == 0 {
		return inf.in.Builtins().Any
	}
	if len(candidates) == 1 {
		return inf.in.Widen(candidates[0])
	}

	for _, candidate := range candidates {
		dominates := true
		for _, other := range candidates {
			if !inf.assign.IsAssignable(other, candidate) {
				dominates = false
				break
			}
		}
		if dominates {
			return candidate
		}
	}

	widened := make([]types.TypeID, len(candidates))
	for i, c := range candidates {
		widened[i] = inf.in.Widen(c)
	}
	return inf.in.InternUnion(widened)
}
