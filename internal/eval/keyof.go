package eval

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// EvalKeyOf reduces `keyof Operand` to the union of its own property names
// (as literal types) plus index-signature key types. Unions distribute by
// intersecting each member's keyof (§4.3.5).
func (e *Evaluator) EvalKeyOf(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()

	operand, ok := e.in.KeyOfOperand(id)
	if !ok {
		return id
	}
	return e.in.InternUnion(e.keyDomain(operand, at))
}

// keyDomain computes the set of key types contributed by operand: own
// property names as string-literal types, plus the primitive key types
// (string/number/symbol) contributed by index signatures. For a union
// operand, it returns the intersection of each member's key domain.
func (e *Evaluator) keyDomain(operand types.TypeID, at source.Span) []types.TypeID {
	if u, ok := e.in.Union(operand); ok {
		var result []types.TypeID
		for i, m := range u.Members {
			keys := e.keyDomain(m, at)
			if i == 0 {
				result = keys
				continue
			}
			result = intersectTypeIDs(result, keys)
		}
		return result
	}

	o, ok := e.in.Object(operand)
	if !ok {
		if boxed, bok := e.apparentObject(operand); bok {
			o = boxed
		} else {
			return nil
		}
	}

	keys := make([]types.TypeID, 0, len(o.Properties)+len(o.IndexSignatures))
	for _, p := range o.Properties {
		keys = append(keys, e.in.InternStringLiteral(p.Name, false))
	}
	for _, s := range o.IndexSignatures {
		keys = append(keys, e.keySignatureType(s))
	}
	return keys
}

// keySignatureType returns the primitive key type an index signature
// contributes to keyof (string/number/symbol, matching its KeyType's base).
func (e *Evaluator) keySignatureType(s types.IndexSignatureInfo) types.TypeID {
	tt, ok := e.in.Lookup(s.KeyType)
	if !ok {
		return e.in.Builtins().String
	}
	switch tt.Kind {
	case types.KindNumber:
		return e.in.Builtins().Number
	case types.KindSymbol:
		return e.in.Builtins().Symbol
	default:
		return e.in.Builtins().String
	}
}

func intersectTypeIDs(a, b []types.TypeID) []types.TypeID {
	set := make(map[types.TypeID]struct{}, len(b))
	for _, id := range b {
		set[id] = struct{}{}
	}
	out := make([]types.TypeID, 0, len(a))
	for _, id := range a {
		if _, ok := set[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// apparentObject implements rule P (§4.4.3): boxes string/number/boolean to
// their wrapper interface's apparent shape so property/key lookups against
// a primitive still resolve. Wrapper shapes are registered once per session
// by the caller via RegisterWrapper; an unregistered primitive has no
// apparent members.
func (e *Evaluator) apparentObject(id types.TypeID) (types.ObjectInfo, bool) {
	if w, ok := e.wrappers[id]; ok {
		return e.in.Object(w)
	}
	return types.ObjectInfo{}, false
}

// RegisterWrapper records the Object type backing the apparent shape of a
// primitive builtin (e.g. `String.prototype`'s member shape for `string`),
// used by mapped-type homomorphic mapping over primitives and by keyof.
func (e *Evaluator) RegisterWrapper(primitive, wrapperObject types.TypeID) {
	if e.wrappers == nil {
		e.wrappers = make(map[types.TypeID]types.TypeID)
	}
	e.wrappers[primitive] = wrapperObject
}
