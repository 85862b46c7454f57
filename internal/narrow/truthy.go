package narrow

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// Truthy narrows t against a truthy (`if (x)`) or falsy (`if (!x)`, negate)
// guard. The truthy branch drops every constituent that can only ever be
// falsy (`null`, `undefined`, `void`, the literals `false`/`0`/`""`); the
// falsy branch keeps only constituents that could produce a falsy value,
// widening `boolean` to `false`, `number` to the literal `0`, and `string`
// to the literal `""` since those are the only runtime values of those
// types that satisfy the guard (§4.6).
func (e *Engine) Truthy(t types.TypeID, negate bool) types.TypeID {
	b := e.in.Builtins()
	falseLit := e.in.InternBooleanLiteral(false)

	return e.mapUnion(t, func(m types.TypeID) (types.TypeID, bool) {
		switch m {
		case b.Null, b.Undefined, b.Void:
			return m, negate // only survive on the falsy branch
		case b.Boolean:
			if negate {
				return falseLit, true
			}
			return m, true // truthy branch keeps `boolean` (it may still be `true`); plain narrowing to `true` needs the literal type split into `true`/`false` members, which this engine does not represent separately
		case b.Number:
			if negate {
				return e.in.InternNumberLiteral(0, false), true
			}
			return m, true
		case b.String:
			if negate {
				return e.in.InternStringLiteral(types.StringID(e.strs.Intern("")), false), true
			}
			return m, true
		}
		if lit, ok := e.in.Literal(m); ok {
			falsy := e.isFalsyLiteral(lit)
			if negate {
				return m, falsy
			}
			return m, !falsy
		}
		// everything else (object, array, function, enum, ...) is always truthy.
		return m, !negate
	})
}

func (e *Engine) isFalsyLiteral(lit types.LiteralInfo) bool {
	switch lit.Base {
	case types.KindString:
		return e.strs.MustLookup(source.StringID(lit.Str)) == ""
	case types.KindNumber:
		return lit.Num == 0
	case types.KindBoolean:
		return !lit.Bool
	default:
		return false
	}
}
