package types

import "sort"

// UnionInfo backs KindUnion. Members are flattened (no member is itself a
// union) and deduplicated, then sorted by TypeID so member order never
// affects identity.
type UnionInfo struct {
	Members []TypeID
}

// Union returns the UnionInfo backing a KindUnion type.
func (in *Interner) Union(id TypeID) (UnionInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUnion {
		return UnionInfo{}, false
	}
	return in.unions[tt.Payload], true
}

// InternUnion builds a union type from candidate members, flattening nested
// unions, dropping duplicates, and collapsing to Never/the sole member when
// fewer than two distinct members remain (§3.3, §4.1 normalization rules).
// Per §4.1, a member of `any` collapses the whole union to `any`, and a
// member of `error` (the depth-guard/malformed-input sentinel) collapses it
// to `error`; `error` takes precedence when both are present, since §4.1
// states the `any` rule first and the `error` rule second. Callers never
// need to pre-filter `any`/`error` out of members themselves.
func (in *Interner) InternUnion(members []TypeID) TypeID {
	flat := make([]TypeID, 0, len(members))
	seen := make(map[TypeID]struct{}, len(members))
	sawAny := false
	sawError := false
	var flatten func(ids []TypeID)
	flatten = func(ids []TypeID) {
		for _, id := range ids {
			if id == in.builtins.Never {
				continue // never is absorbed: T | never == T
			}
			if id == in.builtins.Any {
				sawAny = true
			}
			if id == in.builtins.Invalid {
				sawError = true
			}
			if u, ok := in.Union(id); ok {
				flatten(u.Members)
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

	if sawError {
		return in.builtins.Invalid
	}
	if sawAny {
		return in.builtins.Any
	}

	switch len(flat) {
	case 0:
		return in.builtins.Never
	case 1:
		return flat[0]
	}

	sort.Slice(flat, func(i, j int) bool { return flat[i] < flat[j] })
	key := idsDigest('u', flat)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.unions))
		in.unions = append(in.unions, UnionInfo{Members: flat})
		return Type{Kind: KindUnion, Payload: slot}
	})
}
