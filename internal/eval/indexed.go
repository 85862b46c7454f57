package eval

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// EvalIndexedAccess reduces `T[K]` (§4.3.3). Both T and K distribute over
// unions; property lookup falls back to index signatures, then to a
// primitive's apparent type, then to `never`.
func (e *Evaluator) EvalIndexedAccess(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()

	obj, idx, ok := e.in.IndexedAccessOperands(id)
	if !ok {
		return id
	}
	return e.indexInto(obj, idx, at)
}

func (e *Evaluator) indexInto(obj, idx types.TypeID, at source.Span) types.TypeID {
	if u, ok := e.in.Union(obj); ok {
		members := make([]types.TypeID, 0, len(u.Members))
		for _, m := range u.Members {
			members = append(members, e.indexInto(m, idx, at))
		}
		return e.in.InternUnion(members)
	}
	if u, ok := e.in.Union(idx); ok {
		members := make([]types.TypeID, 0, len(u.Members))
		for _, m := range u.Members {
			members = append(members, e.indexInto(obj, m, at))
		}
		return e.in.InternUnion(members)
	}

	if tp, ok := e.in.Tuple(obj); ok {
		if lit, ok := e.in.Literal(idx); ok && lit.Base == types.KindNumber {
			n := int(lit.Num)
			if n >= 0 && n < len(tp.Elems) {
				return tp.Elems[n]
			}
		}
		if elem, ok := e.in.ArrayElem(obj); ok {
			return elem
		}
	}

	if elem, ok := e.in.ArrayElem(obj); ok {
		return elem
	}

	o, ok := e.in.Object(obj)
	if !ok {
		if boxed, bok := e.apparentObject(obj); bok {
			o = boxed
		} else {
			return e.in.Builtins().Never
		}
	}

	if lit, ok := e.in.Literal(idx); ok && lit.Base == types.KindString {
		for _, p := range o.Properties {
			if p.Name == lit.Str {
				return p.Type
			}
		}
	}

	for _, sig := range o.IndexSignatures {
		if e.keyMatchesSignature(idx, sig) {
			if e.cfg.NoUncheckedIndexedAccess {
				return e.in.InternUnion([]types.TypeID{sig.ValueType, e.in.Builtins().Undefined})
			}
			return sig.ValueType
		}
	}

	return e.in.Builtins().Never
}

func (e *Evaluator) keyMatchesSignature(idx types.TypeID, sig types.IndexSignatureInfo) bool {
	idxKind := e.in.MustLookup(idx).Kind
	sigKind := e.in.MustLookup(sig.KeyType).Kind
	if idxKind == sigKind {
		return true
	}
	if lit, ok := e.in.Literal(idx); ok {
		return lit.Base == sigKind
	}
	return false
}
