package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/infer"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// typeOfCall resolves a call or new expression (§4.7 "Call resolution (key
// algorithm)"). Children are [callee, arg0, arg1, ...]; arguments are typed
// once up front and reused across every overload attempt.
func (c *Checker) typeOfCall(n ast.Node) types.TypeID {
	b := c.in.Builtins()
	if len(n.Children) == 0 {
		return b.Any
	}
	calleeType := c.TypeOf(n.Children[0])
	argNodes := n.Children[1:]
	argTypes := make([]types.TypeID, len(argNodes))
	for i, a := range argNodes {
		argTypes[i] = c.TypeOf(a)
	}

	overloads := c.overloadSet(calleeType)
	if len(overloads) == 0 {
		return b.Any
	}

	// Step 2: first pass under strict assignability, source order.
	if ret, ok := c.tryOverloads(overloads, argTypes, false); ok {
		return ret
	}
	// Re-scan with variance relaxed (a parameter admits an argument
	// assignable in either direction) before giving up.
	if ret, ok := c.tryOverloads(overloads, argTypes, true); ok {
		return ret
	}

	last := overloads[len(overloads)-1]
	c.report(diag.TS2769, n.Span, diag.TS2769.Title())
	return last.Return
}

// overloadSet extracts the ordered overload signatures a callee type
// admits: a bare KindFunction is a single-element set; a union of function
// types yields its members in the union's own (TypeID) order, and an
// object's CallSignatures in the order the object records them.
func (c *Checker) overloadSet(calleeType types.TypeID) []types.FnInfo {
	if fn, ok := c.in.Fn(calleeType); ok {
		return []types.FnInfo{fn}
	}
	if u, ok := c.in.Union(calleeType); ok {
		var out []types.FnInfo
		for _, m := range u.Members {
			if fn, ok := c.in.Fn(m); ok {
				out = append(out, fn)
			}
		}
		return out
	}
	if o, ok := c.in.Object(calleeType); ok {
		var out []types.FnInfo
		for _, sigID := range o.CallSignatures {
			if fn, ok := c.in.Fn(sigID); ok {
				out = append(out, fn)
			}
		}
		return out
	}
	return nil
}

// tryOverloads attempts each candidate in order, returning the first
// return type whose parameters all admit the supplied arguments.
func (c *Checker) tryOverloads(overloads []types.FnInfo, argTypes []types.TypeID, relaxed bool) (types.TypeID, bool) {
	for _, fn := range overloads {
		if ret, ok := c.overloadAdmits(fn, argTypes, relaxed); ok {
			return ret, true
		}
	}
	return types.NoTypeID, false
}

// overloadAdmits checks arity, infers this overload's own type parameters
// (§4.5) from the positional arguments, substitutes the result into each
// parameter type, and checks every argument against its (possibly
// instantiated) parameter type.
func (c *Checker) overloadAdmits(fn types.FnInfo, argTypes []types.TypeID, relaxed bool) (types.TypeID, bool) {
	params := fn.Params
	minRequired := 0
	for _, p := range params {
		if !p.Optional && !p.Rest {
			minRequired++
		}
	}
	if len(argTypes) < minRequired {
		return types.NoTypeID, false
	}
	if len(argTypes) > len(params) && (len(params) == 0 || !params[len(params)-1].Rest) {
		return types.NoTypeID, false
	}

	bindings := c.inferTypeArguments(fn, argTypes)
	ret := c.substituteBindings(fn.Return, bindings)

	for i, argType := range argTypes {
		paramType, ok := c.paramTypeAt(params, i)
		if !ok {
			continue // absorbed by a rest parameter with no declared element type
		}
		paramType = c.substituteBindings(paramType, bindings)
		if !c.admitsArgument(argType, paramType, relaxed) {
			return types.NoTypeID, false
		}
	}
	return ret, true
}

// paramTypeAt returns the declared type an argument at position i is
// checked against, unwrapping a trailing rest parameter's element type.
func (c *Checker) paramTypeAt(params []types.ParamInfo, i int) (types.TypeID, bool) {
	if i < len(params) && !params[i].Rest {
		return params[i].Type, true
	}
	if n := len(params); n > 0 && params[n-1].Rest {
		if elem, ok := c.in.ArrayElem(params[n-1].Type); ok {
			return elem, true
		}
	}
	return types.NoTypeID, false
}

// inferTypeArguments runs §4.5 inference for a generic overload's own type
// parameters against the supplied argument types, positionally, merging
// every argument's candidates before resolving once (§4.5.3).
func (c *Checker) inferTypeArguments(fn types.FnInfo, argTypes []types.TypeID) map[types.TypeID]types.TypeID {
	if len(fn.TypeParams) == 0 {
		return nil
	}
	sp := c.tracePhase("infer")
	defer sp.End("")
	merged := make(map[types.TypeID][]infer.Candidate)
	for i, argType := range argTypes {
		paramType, ok := c.paramTypeAt(fn.Params, i)
		if !ok {
			continue
		}
		cands := c.infer.Collect(argType, paramType, fn.TypeParams, infer.PriorityDefault)
		for tp, cs := range cands {
			merged[tp] = append(merged[tp], cs...)
		}
	}
	return c.infer.Resolve(fn.TypeParams, merged, c.constraintOf, c.defaultOf)
}

func (c *Checker) constraintOf(tp types.TypeID) types.TypeID {
	return c.in.EffectiveConstraint(tp)
}

func (c *Checker) defaultOf(tp types.TypeID) types.TypeID {
	info, ok := c.in.TypeParam(tp)
	if !ok {
		return types.NoTypeID
	}
	return info.Default
}

func (c *Checker) substituteBindings(t types.TypeID, bindings map[types.TypeID]types.TypeID) types.TypeID {
	if bound, ok := bindings[t]; ok {
		return bound
	}
	return t
}

func (c *Checker) admitsArgument(argType, paramType types.TypeID, relaxed bool) bool {
	sp := c.tracePhase("subtype")
	defer sp.End("")
	zero := c.span(ast.NoNodeID)
	if c.subtype.IsAssignable(argType, paramType, zero) {
		return true
	}
	if relaxed && c.subtype.IsAssignable(paramType, argType, zero) {
		return true
	}
	return false
}
