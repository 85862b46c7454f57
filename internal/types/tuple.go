package types

// TupleInfo backs KindTuple: a fixed-arity, optionally variadic, optionally
// labeled positional list.
type TupleInfo struct {
	Elems    []TypeID
	Optional []bool // parallel to Elems
	Labels   []StringID // parallel to Elems; 0 (NoTypeID-equivalent) when unlabeled
	RestAt   int        // index of the rest element, or -1 when no rest element
}

// Tuple returns the TupleInfo backing a KindTuple type.
func (in *Interner) Tuple(id TypeID) (TupleInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindTuple {
		return TupleInfo{}, false
	}
	return in.tuples[tt.Payload], true
}

// InternTuple interns a tuple type. Unlike objects/unions, element order is
// significant and is therefore part of identity as-is (no sorting).
func (in *Interner) InternTuple(info TupleInfo) TypeID {
	if info.RestAt == 0 && len(info.Elems) == 0 {
		info.RestAt = -1
	}
	ids := make([]TypeID, 0, len(info.Elems)*3+1)
	for i, e := range info.Elems {
		opt := false
		if i < len(info.Optional) {
			opt = info.Optional[i]
		}
		var label StringID
		if i < len(info.Labels) {
			label = info.Labels[i]
		}
		ids = append(ids, e, TypeID(boolBit(opt)), TypeID(label))
	}
	ids = append(ids, TypeID(int32ToU32(info.RestAt)))
	key := idsDigest('t', ids)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.tuples))
		in.tuples = append(in.tuples, info)
		return Type{Kind: KindTuple, Payload: slot}
	})
}

func int32ToU32(v int) uint32 {
	return uint32(int32(v))
}
