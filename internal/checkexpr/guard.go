package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/narrow"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// guardEffect is one binding's narrowed type along a branch.
type guardEffect struct {
	sym      symbols.SymbolID
	narrowed types.TypeID
}

// applyGuard recognizes the single-condition guard shapes §4.6 lists
// (typeof, instanceof, literal/discriminant equality, `in`, truthy) and
// returns the narrowing each implies for `negate`'s branch. Combinators
// (`&&`, `||`) are not decomposed into per-operand guards here: on its
// true branch an `&&` condition narrows through its left operand only
// (`typeof x === "string" && x.length` narrows `x`), its false branch and
// `||` conditions do not narrow.
func (c *Checker) applyGuard(n ast.Node, negate bool) []guardEffect {
	sp := c.tracePhase("narrow")
	defer sp.End("")
	switch n.Kind {
	case ast.KindIdentifier:
		sym := c.resolveIdentifier(n)
		if sym == symbols.NoSymbolID {
			return nil
		}
		t := c.TypeOf(n.ID)
		return []guardEffect{{sym, c.narrow.Truthy(t, negate)}}

	case ast.KindUnaryExpression:
		if n.Text == "!" && len(n.Children) == 1 {
			return c.applyGuard(c.file.Node(n.Children[0]), !negate)
		}
		return nil

	case ast.KindBinaryExpression:
		return c.applyBinaryGuard(n, negate)

	default:
		return nil
	}
}

func (c *Checker) applyBinaryGuard(n ast.Node, negate bool) []guardEffect {
	if len(n.Children) != 2 {
		return nil
	}
	left := c.file.Node(n.Children[0])
	right := c.file.Node(n.Children[1])
	eq := n.Text == "===" || n.Text == "=="
	neq := n.Text == "!==" || n.Text == "!="

	// An operator guard's effective negation is the branch's own negation
	// XORed with whether the operator itself is a negative comparison:
	// the then-branch of `typeof x === "string"` wants Typeof(negate=false)
	// (select), but the then-branch of `typeof x !== "string"` wants
	// Typeof(negate=true) (exclude) even though it is still the "positive"
	// (non-negated) branch of the if-statement.
	effective := negate != neq

	switch {
	case (eq || neq) && left.Kind == ast.KindUnaryExpression && left.Text == "typeof":
		return c.applyTypeofGuard(left, right, effective)

	case (eq || neq) && right.Kind == ast.KindUnaryExpression && right.Text == "typeof":
		return c.applyTypeofGuard(right, left, effective)

	case n.Text == "instanceof":
		return c.applyInstanceofGuard(left, right, negate)

	case n.Text == "in":
		return c.applyInGuard(left, right, negate)

	case eq || neq:
		return c.applyEqualityGuard(left, right, effective)

	case n.Text == "&&" && !negate:
		// both operands held, so the left operand's own guard applies
		return c.applyGuard(left, false)

	default:
		return nil
	}
}

func (c *Checker) applyTypeofGuard(typeofNode, literalNode ast.Node, negate bool) []guardEffect {
	if len(typeofNode.Children) != 1 || literalNode.Kind != ast.KindStringLiteral {
		return nil
	}
	operand := c.file.Node(typeofNode.Children[0])
	if operand.Kind != ast.KindIdentifier {
		return nil
	}
	sym := c.resolveIdentifier(operand)
	if sym == symbols.NoSymbolID {
		return nil
	}
	tag := narrow.TypeofTag(literalNode.Text)
	t := c.TypeOf(operand.ID)
	return []guardEffect{{sym, c.narrow.Typeof(t, tag, negate, c.span(operand.ID))}}
}

func (c *Checker) applyInstanceofGuard(left, right ast.Node, negate bool) []guardEffect {
	if left.Kind != ast.KindIdentifier {
		return nil
	}
	sym := c.resolveIdentifier(left)
	if sym == symbols.NoSymbolID {
		return nil
	}
	t := c.TypeOf(left.ID)
	instanceType := c.TypeOf(right.ID)
	return []guardEffect{{sym, narrow.Instanceof(c.narrow, assignAdapter{c.subtype}, t, instanceType, negate)}}
}

func (c *Checker) applyInGuard(left, right ast.Node, negate bool) []guardEffect {
	if left.Kind != ast.KindStringLiteral || right.Kind != ast.KindIdentifier {
		return nil
	}
	sym := c.resolveIdentifier(right)
	if sym == symbols.NoSymbolID {
		return nil
	}
	t := c.TypeOf(right.ID)
	propName := types.StringID(c.strs.Intern(left.Text))
	return []guardEffect{{sym, c.narrow.In(t, propName, negate)}}
}

// applyEqualityGuard handles `x === "lit"` and `x.prop === "lit"`
// (discriminant) forms; `negate` is true on the branch where equality
// does not hold.
func (c *Checker) applyEqualityGuard(left, right ast.Node, negate bool) []guardEffect {
	if !isLiteralNode(right) && isLiteralNode(left) {
		left, right = right, left
	}
	if !isLiteralNode(right) {
		return nil
	}
	literalType := c.TypeOf(right.ID)

	if left.Kind == ast.KindIdentifier {
		sym := c.resolveIdentifier(left)
		if sym == symbols.NoSymbolID {
			return nil
		}
		t := c.TypeOf(left.ID)
		return []guardEffect{{sym, c.narrow.Literal(t, literalType, negate)}}
	}

	if left.Kind == ast.KindPropertyAccess && len(left.Children) == 1 {
		obj := c.file.Node(left.Children[0])
		if obj.Kind != ast.KindIdentifier {
			return nil
		}
		sym := c.resolveIdentifier(obj)
		if sym == symbols.NoSymbolID {
			return nil
		}
		t := c.TypeOf(obj.ID)
		propName := types.StringID(c.strs.Intern(left.Text))
		return []guardEffect{{sym, c.narrow.DiscriminantProperty(t, propName, literalType, negate)}}
	}

	return nil
}

func isLiteralNode(n ast.Node) bool {
	switch n.Kind {
	case ast.KindStringLiteral, ast.KindNumericLiteral, ast.KindBooleanLiteral, ast.KindNullLiteral:
		return true
	default:
		return false
	}
}
