package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// typeOfObjectLiteral builds a fresh object type from an object literal's
// property-assignment children (§4.7). Each child is a KindPropertyAssignment
// node whose Text is the property name and whose single child is the value
// expression.
func (c *Checker) typeOfObjectLiteral(n ast.Node) types.TypeID {
	props := make([]types.PropertyInfo, 0, len(n.Children))
	for _, childID := range n.Children {
		child := c.file.Node(childID)
		if child.Kind != ast.KindPropertyAssignment || len(child.Children) != 1 {
			continue
		}
		valType := c.TypeOf(child.Children[0])
		props = append(props, types.PropertyInfo{
			Name: types.StringID(c.strs.Intern(child.Text)),
			Type: valType,
		})
	}
	return c.in.InternFreshObject(types.ObjectInfo{Properties: props})
}

// typeOfArrayLiteral builds T[] from an array literal's element children,
// T being the Best Common Type (§4.5.4) of every element's own type. A
// tuple type only arises from an explicit tuple type annotation elsewhere,
// never inferred from a bare array literal.
func (c *Checker) typeOfArrayLiteral(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) == 0 {
		return c.in.InternArray(b.Any, false)
	}
	elemTypes := make([]types.TypeID, 0, len(n.Children))
	for _, childID := range n.Children {
		elemTypes = append(elemTypes, c.TypeOf(childID))
	}
	sp := c.tracePhase("infer")
	elem := c.infer.BestCommonType(elemTypes)
	sp.End("")
	return c.in.InternArray(elem, false)
}

// typeOfUnary types a unary expression (n.Text = operator, Children = [operand]).
func (c *Checker) typeOfUnary(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) != 1 {
		return b.Any
	}
	switch n.Text {
	case "!":
		return b.Boolean
	case "typeof":
		return b.String
	case "void":
		return b.Undefined
	case "-", "+", "~":
		return b.Number
	case "delete":
		return b.Boolean
	default:
		return b.Any
	}
}

// typeOfConditional types `cond ? a : b` as the union of both branches'
// types (§4.7): both sides are computed unconditionally, with no separate
// branch-assignability check performed here (that belongs to the caller's
// surrounding context, e.g. a contextual return type).
func (c *Checker) typeOfConditional(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) != 3 {
		return b.Any
	}
	thenType := c.TypeOf(n.Children[1])
	elseType := c.TypeOf(n.Children[2])
	return c.in.InternUnion([]types.TypeID{thenType, elseType})
}

// typeOfFunctionExpression builds a call-signature type from a function or
// arrow expression's parameter/body shape. Children are the parameter
// declarations followed by a final body node; parameters without an
// explicit annotation child fall back to `any` (no contextual typing from
// an enclosing call site is threaded through this dispatcher).
func (c *Checker) typeOfFunctionExpression(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) == 0 {
		return c.in.InternFn(types.FnInfo{Return: b.Any})
	}
	paramNodes := n.Children[:len(n.Children)-1]
	bodyID := n.Children[len(n.Children)-1]

	params := make([]types.ParamInfo, 0, len(paramNodes))
	for _, pid := range paramNodes {
		pn := c.file.Node(pid)
		paramType := b.Any
		if len(pn.Children) == 1 {
			paramType = c.TypeOf(pn.Children[0])
		}
		params = append(params, types.ParamInfo{
			Name: types.StringID(c.strs.Intern(pn.Text)),
			Type: paramType,
		})
	}

	ret := c.TypeOf(bodyID)
	return c.in.InternFn(types.FnInfo{Params: params, Return: ret})
}
