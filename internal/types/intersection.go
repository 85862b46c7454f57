package types

import "sort"

// IntersectionInfo backs KindIntersection. Members are flattened and
// deduplicated the same way union members are; unlike unions, duplicate
// object members are not merged into one structural object here — that
// reduction belongs to the Evaluator/Normalizer (§4.1), not the interner,
// since "merge compatible object intersections" is a normalization policy
// rather than an identity rule.
type IntersectionInfo struct {
	Members []TypeID
}

// Intersection returns the IntersectionInfo backing a KindIntersection type.
func (in *Interner) Intersection(id TypeID) (IntersectionInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindIntersection {
		return IntersectionInfo{}, false
	}
	return in.intersections[tt.Payload], true
}

// InternIntersection builds an intersection type from candidate members,
// flattening nested intersections and dropping duplicates. An intersection
// containing `never` collapses to `never`; one with fewer than two distinct
// members collapses to that member (or `unknown` for an empty list, the
// identity element of intersection).
func (in *Interner) InternIntersection(members []TypeID) TypeID {
	flat := make([]TypeID, 0, len(members))
	seen := make(map[TypeID]struct{}, len(members))
	sawNever := false
	var flatten func(ids []TypeID)
	flatten = func(ids []TypeID) {
		for _, id := range ids {
			if id == in.builtins.Never {
				sawNever = true
				return
			}
			if id == in.builtins.Unknown {
				continue // T & unknown == T
			}
			if x, ok := in.Intersection(id); ok {
				flatten(x.Members)
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			flat = append(flat, id)
		}
	}
	flatten(members)
	if sawNever {
		return in.builtins.Never
	}

	switch len(flat) {
	case 0:
		return in.builtins.Unknown
	case 1:
		return flat[0]
	}

	sort.Slice(flat, func(i, j int) bool { return flat[i] < flat[j] })
	key := idsDigest('x', flat)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.intersections))
		in.intersections = append(in.intersections, IntersectionInfo{Members: flat})
		return Type{Kind: KindIntersection, Payload: slot}
	})
}
