package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// tupleSubtype compares a tuple sub against sup: element-wise against
// another tuple, or against the union of its own elements when sup is an
// array (§4.4.2 Tuples).
func (e *Engine) tupleSubtype(rel Relation, subTuple types.TupleInfo, sub, sup types.TypeID, at source.Span) bool {
	if supTuple, ok := e.in.Tuple(sup); ok {
		return e.tupleToTuple(rel, subTuple, supTuple, at)
	}
	if elem, ok := e.in.ArrayElem(sup); ok {
		return e.tupleToArray(rel, subTuple, elem, at)
	}
	if _, ok := e.in.Object(sup); ok {
		return false
	}
	return false
}

func (e *Engine) tupleToTuple(rel Relation, sub, sup types.TupleInfo, at source.Span) bool {
	required := func(t types.TupleInfo) int {
		n := 0
		for i, opt := range t.Optional {
			if i < len(t.Elems) && !opt {
				n++
			}
		}
		return n
	}
	if len(sub.Elems) < required(sup) {
		return false
	}
	if sub.RestAt < 0 && len(sub.Elems) > len(sup.Elems) && sup.RestAt < 0 {
		return false
	}
	for i := range sup.Elems {
		if i >= len(sub.Elems) {
			if sup.RestAt >= 0 && i >= sup.RestAt {
				break
			}
			return false
		}
		if !e.relate(rel, sub.Elems[i], sup.Elems[i], at) {
			return false
		}
	}
	return true
}

func (e *Engine) tupleToArray(rel Relation, sub types.TupleInfo, elem types.TypeID, at source.Span) bool {
	if len(sub.Elems) == 0 {
		return true
	}
	members := make([]types.TypeID, 0, len(sub.Elems))
	members = append(members, sub.Elems...)
	union := e.in.InternUnion(members)
	return e.relate(rel, union, elem, at)
}

// arrayToTuple: an array is assignable to a tuple only in the
// empty-to-empty-or-all-optional case (§4.4.2 Tuples); a general array has
// unknown length so it can satisfy a tuple only when the tuple demands no
// required fixed positions at all.
func (e *Engine) arrayToTuple(rel Relation, elem types.TypeID, sup types.TypeID, at source.Span) bool {
	supTuple, ok := e.in.Tuple(sup)
	if !ok {
		return false
	}
	for i := range supTuple.Elems {
		required := i >= len(supTuple.Optional) || !supTuple.Optional[i]
		isRest := supTuple.RestAt >= 0 && i >= supTuple.RestAt
		if required && !isRest {
			return false
		}
	}
	for _, member := range supTuple.Elems {
		if !e.relate(rel, elem, member, at) {
			return false
		}
	}
	return true
}
