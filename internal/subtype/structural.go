package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// structural dispatches on sub/sup's kinds to the rule matching §4.4.2,
// after short-circuits have already been tried and failed.
func (e *Engine) structural(rel Relation, sub, sup types.TypeID, at source.Span) bool {
	if subRef, ok := e.in.Ref(sub); ok {
		if supRef, ok := e.in.Ref(sup); ok {
			if result, handled := e.refSubtype(rel, subRef, supRef, at); handled {
				return result
			}
		}
		if subRef.Target != types.NoTypeID {
			return e.relate(rel, subRef.Target, sup, at)
		}
		return true // unresolved cyclic reference: treated as coinductively sound
	}
	if supRef, ok := e.in.Ref(sup); ok {
		if supRef.Target != types.NoTypeID {
			return e.relate(rel, sub, supRef.Target, at)
		}
		return true
	}

	if subU, ok := e.in.Union(sub); ok {
		return e.unionSubtype(rel, subU, sup, at)
	}
	if supU, ok := e.in.Union(sup); ok {
		return e.subtypeUnion(rel, sub, supU, at)
	}
	if subI, ok := e.in.Intersection(sub); ok {
		return e.intersectionSubtype(rel, subI, sup, at)
	}
	if supI, ok := e.in.Intersection(sup); ok {
		return e.subtypeIntersection(rel, sub, supI, at)
	}

	if subTp, ok := e.in.TypeParam(sub); ok {
		return e.typeParamSubtype(rel, subTp, sup, at)
	}

	if subEnum, ok := e.in.Enum(sub); ok {
		if supEnum, ok := e.in.Enum(sup); ok {
			return e.enumSubtype(subEnum, supEnum)
		}
	}

	if subTuple, ok := e.in.Tuple(sub); ok {
		return e.tupleSubtype(rel, subTuple, sub, sup, at)
	}
	if _, ok := e.in.Tuple(sup); ok {
		// an array is never assignable to a tuple except the
		// empty-to-empty-or-all-optional case (§4.4.2 Tuples).
		if elem, ok := e.in.ArrayElem(sub); ok {
			return e.arrayToTuple(rel, elem, sup, at)
		}
		return false
	}

	if subFn, ok := e.in.Fn(sub); ok {
		if supFn, ok := e.in.Fn(sup); ok {
			return e.functionSubtype(rel, subFn, supFn, at)
		}
	}

	if subElem, ok := e.in.ArrayElem(sub); ok {
		if supElem, ok := e.in.ArrayElem(sup); ok {
			return e.arraySubtype(rel, sub, subElem, sup, supElem, at)
		}
	}

	if subObj, ok := e.in.Object(sub); ok {
		if supObj, ok := e.in.Object(sup); ok {
			return e.objectSubtype(rel, subObj, supObj, sub, at)
		}
	}

	// rule P: a primitive compared against an object falls back to its
	// registered apparent (boxed) shape.
	if supObj, ok := e.in.Object(sup); ok {
		if boxedSub, ok := e.apparentObject(sub); ok {
			return e.objectSubtype(rel, boxedSub, supObj, sub, at)
		}
	}

	// rule E: numeric enum <-> number both ways; string enum opaque.
	if subEnum, ok := e.in.Enum(sub); ok {
		return e.enumToPrimitive(subEnum, sup)
	}
	if supEnum, ok := e.in.Enum(sup); ok {
		return e.primitiveToEnum(sub, supEnum)
	}

	if lit, ok := e.in.Literal(sub); ok {
		return e.relate(rel, e.in.Widen(wrapLiteralBase(e.in, lit)), sup, at)
	}

	return false
}

// wrapLiteralBase returns the widened primitive TypeID for a literal's base
// kind, used when a literal compares against something structural-only
// comparisons didn't already resolve it against (e.g. a literal against a
// union member that is itself a primitive, already handled earlier, or a
// literal against an enum's backing primitive).
func wrapLiteralBase(in *types.Interner, lit types.LiteralInfo) types.TypeID {
	switch lit.Base {
	case types.KindString:
		return in.Builtins().String
	case types.KindNumber:
		return in.Builtins().Number
	case types.KindBoolean:
		return in.Builtins().Boolean
	case types.KindBigInt:
		return in.Builtins().BigInt
	default:
		return in.Builtins().Invalid
	}
}

// unionSubtype: A|B <: T iff every member <: T.
func (e *Engine) unionSubtype(rel Relation, sub types.UnionInfo, sup types.TypeID, at source.Span) bool {
	for _, m := range sub.Members {
		if !e.relate(rel, m, sup, at) {
			return false
		}
	}
	return true
}

// subtypeUnion: S <: A|B iff S <: A or S <: B.
func (e *Engine) subtypeUnion(rel Relation, sub types.TypeID, sup types.UnionInfo, at source.Span) bool {
	for _, m := range sup.Members {
		if e.relate(rel, sub, m, at) {
			return true
		}
	}
	return false
}

// intersectionSubtype: A&B <: T iff either side <: T.
func (e *Engine) intersectionSubtype(rel Relation, sub types.IntersectionInfo, sup types.TypeID, at source.Span) bool {
	for _, m := range sub.Members {
		if e.relate(rel, m, sup, at) {
			return true
		}
	}
	return false
}

// subtypeIntersection: S <: A&B iff S <: A and S <: B.
func (e *Engine) subtypeIntersection(rel Relation, sub types.TypeID, sup types.IntersectionInfo, at source.Span) bool {
	for _, m := range sup.Members {
		if !e.relate(rel, sub, m, at) {
			return false
		}
	}
	return true
}

// typeParamSubtype: T <: S iff T == S (already excluded by A1) or
// constraint(T) <: S. The base constraint is never used for the upper
// side (§4.4.2 TypeParam), i.e. this rule only fires when T is the sub
// operand.
func (e *Engine) typeParamSubtype(rel Relation, subInfo types.TypeParamInfo, sup types.TypeID, at source.Span) bool {
	if subInfo.Constraint == types.NoTypeID {
		return sup == e.in.Builtins().Unknown
	}
	return e.relate(rel, subInfo.Constraint, sup, at)
}

func (e *Engine) arraySubtype(rel Relation, sub, subElem, sup, supElem types.TypeID, at source.Span) bool {
	// rule C: array covariance. Elements relate covariantly; a mutable
	// array relates to a readonly one, but a readonly array does not relate
	// to a mutable one, and identity also requires matching readonly-ness.
	if rel == RelIdentical {
		return e.relate(rel, subElem, supElem, at) && e.in.IsReadonlyArray(sub) == e.in.IsReadonlyArray(sup)
	}
	if e.in.IsReadonlyArray(sup) {
		return e.relate(rel, subElem, supElem, at)
	}
	if e.in.IsReadonlyArray(sub) && !e.in.IsReadonlyArray(sup) {
		return false
	}
	return e.relate(rel, subElem, supElem, at)
}
