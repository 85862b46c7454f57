package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// TypeOf returns the type of expression node id, memoizing per node so a
// diamond of references (e.g. the same identifier read twice in one
// expression) only walks once. This is the §4.7 dispatcher: a switch over
// every bound expression kind the host contract exposes.
func (c *Checker) TypeOf(id ast.NodeID) types.TypeID {
	if id == ast.NoNodeID {
		return c.in.Builtins().Any
	}
	if t, ok := c.cache[id]; ok {
		return t
	}
	n := c.file.Node(id)
	sp := c.tracePhase("dispatch")
	t := c.typeOfNode(n)
	sp.End(n.Kind.String())
	c.cache[id] = t
	return t
}

func (c *Checker) typeOfNode(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	switch n.Kind {
	case ast.KindIdentifier:
		return c.typeOfIdentifier(n)

	case ast.KindStringLiteral, ast.KindNumericLiteral, ast.KindBooleanLiteral,
		ast.KindNullLiteral, ast.KindBigIntLiteral:
		return c.typeOfLiteral(n)

	case ast.KindObjectLiteral:
		return c.typeOfObjectLiteral(n)
	case ast.KindArrayLiteral:
		return c.typeOfArrayLiteral(n)

	case ast.KindBinaryExpression:
		return c.typeOfBinary(n)
	case ast.KindUnaryExpression:
		return c.typeOfUnary(n)

	case ast.KindConditionalExpression:
		return c.typeOfConditional(n)

	case ast.KindCallExpression, ast.KindNewExpression:
		return c.typeOfCall(n)

	case ast.KindPropertyAccess:
		return c.typeOfPropertyAccess(n)
	case ast.KindElementAccess:
		return c.typeOfElementAccess(n)

	case ast.KindAsExpression, ast.KindSatisfiesExpression:
		// Both carry [expr, typeNode]; `as` and `satisfies` both yield the
		// asserted/checked type's resolved form, not the expression's own
		// inferred type (§4.7). This dispatcher only returns the type; no
		// check that expr is assignable to a satisfies type is performed.
		if len(n.Children) == 2 {
			return c.TypeOf(n.Children[1])
		}
		return b.Any

	case ast.KindNonNullExpression:
		if len(n.Children) == 1 {
			return c.removeNullish(c.TypeOf(n.Children[0]), false)
		}
		return b.Any

	case ast.KindTemplateExpression:
		return b.String

	case ast.KindArrowFunction, ast.KindFunctionExpression:
		return c.typeOfFunctionExpression(n)

	default:
		return b.Any
	}
}

// typeOfIdentifier resolves an identifier read: a still-active narrowing
// wins over the binding's declared type, per §4.6's ordering rule (guards
// read back at each identifier use downstream of the guard).
func (c *Checker) typeOfIdentifier(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	sym := c.resolveIdentifier(n)
	if sym == symbols.NoSymbolID {
		c.report(diag.TS2304, n.Span, diag.TS2304.Title())
		return b.Any
	}
	if narrowed, ok := c.narrowState.Get(sym); ok {
		return narrowed
	}
	if t, ok := c.bindingType[sym]; ok {
		return t
	}
	return b.Any
}

// resolveIdentifier walks up the ancestor chain from n looking for the
// nearest enclosing scope the symbol table resolves n.Text against,
// falling back to the module-level scope (0) the host binder populates
// for top-level declarations. The thin symbols.Table contract does not
// walk the scope chain itself (see its Resolve doc comment), so this
// package does it explicitly.
func (c *Checker) resolveIdentifier(n ast.Node) symbols.SymbolID {
	cur := n.Parent
	for cur != ast.NoNodeID {
		scope := c.scopeFor(cur)
		if sym := c.symtab.Resolve(scope, n.Text); sym != symbols.NoSymbolID {
			return sym
		}
		cur = c.file.Node(cur).Parent
	}
	if sym := c.symtab.Resolve(0, n.Text); sym != symbols.NoSymbolID {
		return sym
	}
	return symbols.NoSymbolID
}
