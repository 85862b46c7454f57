package checkexpr

import (
	"strconv"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// typeOfLiteral produces a fresh literal type for a literal node, per
// §4.7: "Literals (produce fresh literal types)". Freshness lets the
// excess-property check (rule F, §4.4.3) see object/array literals
// containing these as still-fresh until they widen away (invariant 2).
func (c *Checker) typeOfLiteral(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	switch n.Kind {
	case ast.KindStringLiteral:
		return c.in.InternStringLiteral(types.StringID(c.strs.Intern(n.Text)), true)
	case ast.KindNumericLiteral:
		f, err := strconv.ParseFloat(n.Text, 64)
		if err != nil {
			return b.Number
		}
		return c.in.InternNumberLiteral(f, true)
	case ast.KindBooleanLiteral:
		return c.in.InternBooleanLiteral(n.Text == "true")
	case ast.KindNullLiteral:
		return b.Null
	case ast.KindBigIntLiteral:
		return c.in.InternBigIntLiteral(types.StringID(c.strs.Intern(n.Text)), true)
	default:
		return b.Any
	}
}
