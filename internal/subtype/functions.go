package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// functionSubtype compares call signatures (§4.4.2 Functions): parameters
// contravariant unless rule B (method bivariance, gated by
// !strictFunctionTypes) or rule V (`() => void` accepts any return)
// applies; a rest parameter of `any[]` in sup accepts any signature (rule
// T); `this` parameters compare covariantly (rule U).
func (e *Engine) functionSubtype(rel Relation, sub, sup types.FnInfo, at source.Span) bool {
	if e.isUniversalRestSignature(sup) { // rule T
		return true
	}

	if !e.paramsCompatible(rel, sub.Params, sup.Params, at) {
		return false
	}

	if sub.ThisParam != types.NoTypeID && sup.ThisParam != types.NoTypeID {
		if !e.relate(rel, sub.ThisParam, sup.ThisParam, at) { // rule U: covariant
			return false
		}
	}

	if e.isVoidReturn(sup.Return) { // rule V
		return true
	}
	return e.relate(rel, sub.Return, sup.Return, at)
}

// paramsCompatible checks each overlapping parameter position; fewer
// parameters in sub than sup is fine (sub can ignore trailing arguments),
// the reverse is not.
func (e *Engine) paramsCompatible(rel Relation, subParams, supParams []types.ParamInfo, at source.Span) bool {
	requiredSub := 0
	for _, p := range subParams {
		if !p.Optional && !p.Rest {
			requiredSub++
		}
	}
	if requiredSub > len(supParams) && !hasRest(supParams) {
		return false
	}
	for i := 0; i < len(subParams) && i < len(supParams); i++ {
		// parameters are bivariant under rule B (method context, or any
		// function context when !strictFunctionTypes); this engine applies
		// the looser bivariant check whenever strictFunctionTypes is off,
		// matching observed TSC behavior for plain function types too.
		contravariant := e.relate(rel, supParams[i].Type, subParams[i].Type, at)
		if contravariant {
			continue
		}
		if !e.cfg.StrictFunctionTypes {
			if e.relate(rel, subParams[i].Type, supParams[i].Type, at) {
				continue
			}
		}
		return false
	}
	return true
}

func hasRest(params []types.ParamInfo) bool {
	for _, p := range params {
		if p.Rest {
			return true
		}
	}
	return false
}

// isVoidReturn reports sup's return type is exactly `void` (rule V).
func (e *Engine) isVoidReturn(ret types.TypeID) bool {
	return ret == e.in.Builtins().Void
}

// isUniversalRestSignature reports whether sig is `(...args: any[]) => X`,
// TypeScript's universal super-signature shape (rule T).
func (e *Engine) isUniversalRestSignature(sig types.FnInfo) bool {
	if len(sig.Params) != 1 || !sig.Params[0].Rest {
		return false
	}
	elem, ok := e.in.ArrayElem(sig.Params[0].Type)
	return ok && elem == e.in.Builtins().Any
}
