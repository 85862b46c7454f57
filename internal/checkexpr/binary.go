package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// typeOfBinary computes the type of a binary expression per §4.7's TS
// rules for `+`, comparisons, logical, and bitwise operators. Operator
// text and operand node IDs are read from n.Text/n.Children by the
// convention this package documents for the thin ast.Node contract: a
// BinaryExpression's Text is the operator token, Children is [left, right].
func (c *Checker) typeOfBinary(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) != 2 {
		return b.Any
	}
	left := c.TypeOf(n.Children[0])
	right := c.TypeOf(n.Children[1])

	switch n.Text {
	case "+":
		// string + anything (or anything + string) concatenates to string;
		// otherwise both operands must be numeric/enum/any (TS2362/TS2363).
		// Literal operands count as their widened primitive.
		lw, rw := c.in.Widen(left), c.in.Widen(right)
		if lw == b.String || rw == b.String {
			return b.String
		}
		if c.isArithmeticOperand(lw) && c.isArithmeticOperand(rw) {
			return b.Number
		}
		if left == b.Any || right == b.Any {
			return b.Any
		}
		if !c.isArithmeticOperand(lw) {
			c.report(diag.TS2362, c.span(n.Children[0]), diag.TS2362.Title())
		}
		if !c.isArithmeticOperand(rw) {
			c.report(diag.TS2363, c.span(n.Children[1]), diag.TS2363.Title())
		}
		return b.Any

	case "-", "*", "/", "%", "**":
		return b.Number

	case "&", "|", "^", "<<", ">>", ">>>":
		return b.Number

	case "<", ">", "<=", ">=":
		return b.Boolean

	case "===", "!==", "==", "!=":
		return b.Boolean

	case "&&":
		return c.narrowLogicalAnd(left, right)
	case "||":
		return c.in.InternUnion([]types.TypeID{c.removeNullish(left, false), right})
	case "??":
		return c.in.InternUnion([]types.TypeID{c.removeNullish(left, false), right})

	case "instanceof":
		return b.Boolean
	case "in":
		return b.Boolean

	default:
		return b.Any
	}
}

// isArithmeticOperand reports whether t may appear on either side of a
// non-string `+`/other arithmetic operator without a TS2362/TS2363 error:
// number, bigint, an enum member, or any.
func (c *Checker) isArithmeticOperand(t types.TypeID) bool {
	b := c.in.Builtins()
	if t == b.Number || t == b.BigInt || t == b.Any {
		return true
	}
	if _, ok := c.in.Enum(t); ok {
		return true
	}
	if _, ok := c.in.EnumMember(t); ok {
		return true
	}
	return false
}

// removeNullish drops null/undefined from a type for `||`/`??`'s left
// operand, optionally keeping them when negate is true (unused today but
// kept symmetric with narrow.Engine's guard shape for when a future
// caller needs the false-branch form).
func (c *Checker) removeNullish(t types.TypeID, negate bool) types.TypeID {
	b := c.in.Builtins()
	u, ok := c.in.Union(t)
	if !ok {
		if t == b.Null || t == b.Undefined || t == b.Void {
			if negate {
				return t
			}
			return b.Never
		}
		return t
	}
	var kept []types.TypeID
	for _, m := range u.Members {
		nullish := m == b.Null || m == b.Undefined || m == b.Void
		if nullish == negate {
			kept = append(kept, m)
		}
	}
	if len(kept) == 0 {
		return b.Never
	}
	return c.in.InternUnion(kept)
}

// narrowLogicalAnd types `a && b`: the result is whatever falsy member of
// `a` can survive, unioned with `b`'s type (since control only reaches `b`
// when `a` is truthy).
func (c *Checker) narrowLogicalAnd(left, right types.TypeID) types.TypeID {
	sp := c.tracePhase("narrow")
	falsy := c.narrow.Truthy(left, true)
	sp.End("")
	if falsy == c.in.Builtins().Never {
		return right
	}
	return c.in.InternUnion([]types.TypeID{falsy, right})
}
