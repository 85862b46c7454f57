package eval

import (
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// EvalConditional reduces `Check extends Extends ? True : False` toward its
// chosen branch, or returns the unevaluated Conditional node when neither
// operand can yet be resolved (§4.3.1).
func (e *Evaluator) EvalConditional(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()
	return e.evalConditionalTail(id, at, 0)
}

// evalConditionalTail implements the spec's tail-call optimization (§4.3.1
// rule 5): when the chosen branch is itself a conditional of matching
// distributivity, evaluation continues on it with the tail counter
// incremented. Each step is a recursive call, so the Go call stack grows
// with the chain's length; a chain longer than MaxConditionalTail reports
// TS2589 and yields the error type.
func (e *Evaluator) evalConditionalTail(id types.TypeID, at source.Span, tail int) types.TypeID {
	if tail > e.cfg.MaxConditionalTail {
		if e.reporter != nil {
			diag.ReportError(e.reporter, diag.TS2589, at, diag.TS2589.Title()).Emit()
		}
		return e.errorType()
	}

	c, ok := e.in.Conditional(id)
	if !ok {
		return id
	}

	if e.hasFreeTypeParam(c.Check) || e.hasFreeTypeParam(c.Extends) {
		return id // defer: re-instantiate once the type parameters are bound
	}

	if c.Distributive {
		if u, ok := e.in.Union(c.Check); ok {
			members := make([]types.TypeID, 0, len(u.Members))
			for _, m := range u.Members {
				branchMapping := map[types.TypeID]types.TypeID{c.Check: m}
				branch := e.in.Substitute(id, branchMapping)
				members = append(members, e.EvalConditional(branch, at))
			}
			return e.in.InternUnion(members)
		}
	}

	branch, isTrue := e.chooseBranch(c, at)
	if branch == types.NoTypeID {
		return id
	}
	bindings := map[types.TypeID]types.TypeID{}
	if isTrue && len(c.InferTargets) > 0 && e.assign != nil {
		bindings = e.assign.CollectInferCandidates(c.Check, c.Extends, c.InferTargets)
	}
	resolved := branch
	if len(bindings) > 0 {
		resolved = e.in.Substitute(branch, bindings)
	}

	if next, ok := e.in.Conditional(resolved); ok && next.Distributive == c.Distributive {
		return e.evalConditionalTail(resolved, at, tail+1)
	}
	return resolved
}

// chooseBranch implements rule 3: restrictive instantiation picks True,
// permissive non-assignability picks False, otherwise the relation is
// still undecidable and the unevaluated node is returned.
func (e *Evaluator) chooseBranch(c types.ConditionalInfo, at source.Span) (branch types.TypeID, isTrue bool) {
	if e.assign == nil {
		return c.False, false
	}
	if e.assign.IsAssignableRestrictive(c.Check, c.Extends) {
		return c.True, true
	}
	if !e.assign.IsAssignablePermissive(c.Check, c.Extends) {
		return c.False, false
	}
	// still undecidable under both instantiations: no branch is chosen and
	// the caller leaves the conditional unevaluated.
	return types.NoTypeID, false
}

// hasFreeTypeParam reports whether id still contains an unbound
// KindTypeParameter operand, which defers conditional/mapped evaluation
// until a later instantiation supplies concrete arguments.
func (e *Evaluator) hasFreeTypeParam(id types.TypeID) bool {
	tt, ok := e.in.Lookup(id)
	if !ok {
		return false
	}
	if tt.Kind == types.KindTypeParameter {
		return true
	}
	switch tt.Kind {
	case types.KindUnion:
		u, _ := e.in.Union(id)
		for _, m := range u.Members {
			if e.hasFreeTypeParam(m) {
				return true
			}
		}
	case types.KindIntersection:
		x, _ := e.in.Intersection(id)
		for _, m := range x.Members {
			if e.hasFreeTypeParam(m) {
				return true
			}
		}
	case types.KindArray:
		return e.hasFreeTypeParam(tt.A)
	}
	return false
}
