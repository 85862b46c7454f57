package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// typeOfPropertyAccess types `expr.name` (n.Children = [expr], n.Text =
// "name"), reporting TS2339 when the property is not found and TS2532
// when the object is possibly null/undefined (§4.7 property access).
func (c *Checker) typeOfPropertyAccess(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) != 1 {
		return b.Any
	}
	objType := c.TypeOf(n.Children[0])
	if c.includesNullish(objType) {
		c.report(diag.TS2532, n.Span, diag.TS2532.Title())
	}
	nameID := types.StringID(c.strs.Intern(n.Text))
	idx := c.in.InternIndexedAccess(objType, c.in.InternStringLiteral(nameID, false))
	sp := c.tracePhase("evaluate")
	result := c.eval.Reduce(idx, n.Span)
	sp.End("")
	if result == b.Never {
		c.report(diag.TS2339, n.Span, diag.TS2339.Title())
		return b.Any
	}
	return result
}

// typeOfElementAccess types `expr[index]` (n.Children = [expr, index]).
func (c *Checker) typeOfElementAccess(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) != 2 {
		return b.Any
	}
	objType := c.TypeOf(n.Children[0])
	if c.includesNullish(objType) {
		c.report(diag.TS2532, n.Span, diag.TS2532.Title())
	}
	idxType := c.TypeOf(n.Children[1])
	idx := c.in.InternIndexedAccess(objType, idxType)
	sp := c.tracePhase("evaluate")
	defer sp.End("")
	return c.eval.Reduce(idx, n.Span)
}

func (c *Checker) includesNullish(t types.TypeID) bool {
	b := c.in.Builtins()
	if t == b.Null || t == b.Undefined || t == b.Void {
		return true
	}
	if u, ok := c.in.Union(t); ok {
		for _, m := range u.Members {
			if m == b.Null || m == b.Undefined || m == b.Void {
				return true
			}
		}
	}
	return false
}
