package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/narrow"
)

// CheckStatement walks a statement and its descendants (mirroring the
// teacher's walkStmt), typing every expression it contains and applying
// narrowing guards across if-statement branches per §4.6's ordering rule:
// narrowings are computed in AST order and read back at each identifier
// use downstream of the guard.
func (c *Checker) CheckStatement(id ast.NodeID) {
	if id == ast.NoNodeID {
		return
	}
	n := c.file.Node(id)
	switch n.Kind {
	case ast.KindBlock:
		for _, child := range n.Children {
			c.CheckStatement(child)
		}

	case ast.KindExpressionStatement, ast.KindReturnStatement:
		if len(n.Children) == 1 {
			c.TypeOf(n.Children[0])
		}

	case ast.KindVariableDeclaration:
		c.checkVariableDeclaration(n)

	case ast.KindIfStatement:
		c.checkIfStatement(n)

	case ast.KindFunctionDeclaration, ast.KindArrowFunction, ast.KindFunctionExpression:
		c.checkFunctionBody(n)

	default:
		for _, child := range n.Children {
			c.CheckStatement(child)
		}
	}
}

// checkVariableDeclaration types a `let`/`const` initializer (Children =
// [identifier, initializer], Text unused) and records the binding's type
// so later reads resolve it. A missing initializer with no declared type
// falls back to `any` (§4.7 says nothing beyond this for the core).
func (c *Checker) checkVariableDeclaration(n ast.Node) {
	if len(n.Children) < 1 {
		return
	}
	ident := c.file.Node(n.Children[0])
	sym := c.resolveIdentifier(ident)
	if len(n.Children) == 2 {
		t := c.TypeOf(n.Children[1])
		c.setBindingType(sym, t)
		return
	}
	c.setBindingType(sym, c.in.Builtins().Any)
}

// checkIfStatement applies the condition's guard on the true branch, its
// negation on the false branch, and joins back afterward. When the
// then-branch is statically terminal (always returns), every path that
// falls through past the if-statement must have skipped it, so the
// continuation keeps whichever narrowing held on the surviving path
// (the else-branch's, or the negated guard's if there is no else) instead
// of discarding both branches' narrowing back to the pre-statement state.
// A true CFG merge of two non-terminal branches' narrowings would require
// comparing them for equality, which stays out of scope for this
// dispatcher, so that case still joins back to "no narrowing".
func (c *Checker) checkIfStatement(n ast.Node) {
	if len(n.Children) < 2 {
		return
	}
	condID, thenID := n.Children[0], n.Children[1]
	var elseID ast.NodeID
	if len(n.Children) == 3 {
		elseID = n.Children[2]
	}

	c.TypeOf(condID)
	outer := c.narrowState

	cond := c.file.Node(condID)
	c.narrowState = outer.Snapshot()
	c.applyGuardEffects(cond, false)
	c.CheckStatement(thenID)
	thenTerminal := c.isTerminalStatement(thenID)

	var elseState *narrow.State
	if elseID != ast.NoNodeID {
		c.narrowState = outer.Snapshot()
		c.applyGuardEffects(cond, true)
		c.CheckStatement(elseID)
		elseState = c.narrowState
	}

	switch {
	case thenTerminal && elseID != ast.NoNodeID:
		c.narrowState = elseState
	case thenTerminal:
		c.narrowState = outer.Snapshot()
		c.applyGuardEffects(cond, true)
	default:
		c.narrowState = outer
	}
}

// isTerminalStatement reports whether every path through id ends in a
// return, so code after it is unreachable without an explicit join. Blocks
// defer to their last statement; an if-statement is terminal only when it
// has an else and both branches are terminal. There is no throw-statement
// node in the host's AST contract (§6.1), so return is the only terminal
// form recognized.
func (c *Checker) isTerminalStatement(id ast.NodeID) bool {
	if id == ast.NoNodeID {
		return false
	}
	n := c.file.Node(id)
	switch n.Kind {
	case ast.KindReturnStatement:
		return true
	case ast.KindBlock:
		if len(n.Children) == 0 {
			return false
		}
		return c.isTerminalStatement(n.Children[len(n.Children)-1])
	case ast.KindIfStatement:
		if len(n.Children) != 3 {
			return false
		}
		return c.isTerminalStatement(n.Children[1]) && c.isTerminalStatement(n.Children[2])
	default:
		return false
	}
}

func (c *Checker) applyGuardEffects(cond ast.Node, negate bool) {
	for _, eff := range c.applyGuard(cond, negate) {
		c.narrowState.Set(eff.sym, eff.narrowed)
	}
}

// checkFunctionBody enters a closure view of the narrowing state (rule 42:
// mutably-captured bindings lose their narrowing inside the nested body)
// before walking the body, then restores the enclosing state.
func (c *Checker) checkFunctionBody(n ast.Node) {
	if len(n.Children) == 0 {
		return
	}
	bodyID := n.Children[len(n.Children)-1]
	outer := c.narrowState
	c.narrowState = outer.EnterClosure()
	c.CheckStatement(bodyID)
	c.narrowState = outer
}
