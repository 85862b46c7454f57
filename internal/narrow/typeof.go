package narrow

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// Typeof narrows t against a `typeof x === tag` guard (negate=true for
// `!==`), filtering union members by which typeof result they would
// produce (§4.6). The one structural exception is an unresolved
// `IndexedAccess` operand under `=== "function"`: rather than collapsing
// the true branch to `never` when no classifiable member resolves to a
// function, it intersects the original type with `Function`, preserving
// the symbolic (still-generic) type instead of erasing it.
func (e *Engine) Typeof(t types.TypeID, tag TypeofTag, negate bool, at source.Span) types.TypeID {
	reduced := e.reduce.Reduce(t, at)

	if tt, ok := e.in.Lookup(reduced); ok && tt.Kind == types.KindIndexedAccess && !negate && tag == TagFunction {
		b := e.in.Builtins()
		anyArgs := e.in.InternArray(b.Any, false)
		universalFn := e.in.InternFn(types.FnInfo{
			Params: []types.ParamInfo{{Type: anyArgs, Rest: true}},
			Return: b.Any,
		})
		return e.in.InternIntersection([]types.TypeID{t, universalFn})
	}

	return e.filterUnion(reduced, func(m types.TypeID) bool {
		mt, matched := e.classify(m)
		if !matched {
			return true // unclassifiable members (generics, refs) are kept conservatively
		}
		if negate {
			return mt != tag
		}
		return mt == tag
	})
}

// classify maps a single (non-union) type to the TypeofTag it would
// produce at runtime, or false if it cannot be classified (a type
// parameter, unresolved ref, or compound member that isn't itself a
// runtime kind).
func (e *Engine) classify(id types.TypeID) (TypeofTag, bool) {
	b := e.in.Builtins()
	switch id {
	case b.String:
		return TagString, true
	case b.Number:
		return TagNumber, true
	case b.Boolean:
		return TagBoolean, true
	case b.BigInt:
		return TagBigInt, true
	case b.Symbol:
		return TagSymbol, true
	case b.Undefined, b.Void:
		return TagUndefined, true
	case b.Null:
		return TagObject, true // typeof null === "object", a long-standing JS quirk
	}

	if lit, ok := e.in.Literal(id); ok {
		switch lit.Base {
		case types.KindString:
			return TagString, true
		case types.KindNumber:
			return TagNumber, true
		case types.KindBoolean:
			return TagBoolean, true
		case types.KindBigInt:
			return TagBigInt, true
		}
	}

	if tt, ok := e.in.Lookup(id); ok {
		switch tt.Kind {
		case types.KindFunction:
			return TagFunction, true
		case types.KindObject, types.KindArray, types.KindTuple:
			return TagObject, true
		}
	}

	return "", false
}
