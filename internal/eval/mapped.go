package eval

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// EvalMapped reduces `{ [K in Constraint as NameType]Opt: Template }` to a
// concrete Object type (§4.3.2).
func (e *Evaluator) EvalMapped(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()

	m, ok := e.in.Mapped(id)
	if !ok {
		return id
	}

	if m.Homomorphic {
		return e.evalHomomorphicMapped(m, at)
	}
	return e.evalMappedOverKeys(m, e.keyDomain(m.Constraint, at), at)
}

// evalHomomorphicMapped implements rule 1: when Constraint is `keyof S`,
// copy S's own properties and index signatures, applying the modifier
// deltas and optional key remapping.
func (e *Evaluator) evalHomomorphicMapped(m types.MappedInfo, at source.Span) types.TypeID {
	src := m.HomSource
	if o, ok := e.in.Object(src); ok {
		return e.mapObjectHomomorphic(m, o, at)
	}
	// rule 3: mapping over a primitive's apparent type boxes it first.
	if boxed, ok := e.apparentObject(src); ok {
		return e.mapObjectHomomorphic(m, boxed, at)
	}
	return e.evalMappedOverKeys(m, e.keyDomain(m.Constraint, at), at)
}

func (e *Evaluator) mapObjectHomomorphic(m types.MappedInfo, src types.ObjectInfo, at source.Span) types.TypeID {
	out := types.ObjectInfo{}
	for _, p := range src.Properties {
		valueType := e.instantiateTemplate(m, p.Type, at)

		var keyName types.StringID
		if m.NameType != types.NoTypeID {
			remapped, dropped := e.remapKey(m, p.Name, at)
			if dropped {
				continue
			}
			keyName = remapped
		} else {
			keyName = p.Name
		}

		out.Properties = append(out.Properties, types.PropertyInfo{
			Name:     keyName,
			Type:     valueType,
			Optional: applyModifier(m.Optional, p.Optional),
			Readonly: applyModifier(m.Readonly, p.Readonly),
		})
	}
	for _, s := range src.IndexSignatures {
		out.IndexSignatures = append(out.IndexSignatures, types.IndexSignatureInfo{
			KeyType:   s.KeyType,
			ValueType: e.instantiateTemplate(m, s.ValueType, at),
			Readonly:  applyModifier(m.Readonly, s.Readonly),
		})
	}
	return e.in.InternObject(out)
}

// evalMappedOverKeys implements rule 2: iterate the lower-bound union of
// the constraint's key types when it is not a homomorphic `keyof S`.
func (e *Evaluator) evalMappedOverKeys(m types.MappedInfo, keys []types.TypeID, at source.Span) types.TypeID {
	out := types.ObjectInfo{}
	for _, k := range keys {
		lit, ok := e.in.Literal(k)
		if !ok || lit.Base != types.KindString {
			// non-literal key domain member: contributes an index signature
			// instead of a named property.
			out.IndexSignatures = append(out.IndexSignatures, types.IndexSignatureInfo{
				KeyType:   k,
				ValueType: e.instantiateKeyedTemplate(m, k, at),
			})
			continue
		}
		name := lit.Str
		if m.NameType != types.NoTypeID {
			remapped, dropped := e.remapKey(m, name, at)
			if dropped {
				continue
			}
			name = remapped
		}
		out.Properties = append(out.Properties, types.PropertyInfo{
			Name:     name,
			Type:     e.instantiateKeyedTemplate(m, k, at),
			Optional: m.Optional == types.ModifierAdd,
			Readonly: m.Readonly == types.ModifierAdd,
		})
	}
	return e.in.InternObject(out)
}

// instantiateTemplate substitutes the mapped type parameter K with value
// (a concrete property's own type when homomorphic) inside TemplateType.
func (e *Evaluator) instantiateTemplate(m types.MappedInfo, value types.TypeID, at source.Span) types.TypeID {
	body := e.in.Substitute(m.TemplateType, map[types.TypeID]types.TypeID{m.TypeParam: value})
	return e.evalIfReducible(body, at)
}

// instantiateKeyedTemplate substitutes K with the literal key type itself
// (the non-homomorphic case, where Template typically reads `S[K]`).
func (e *Evaluator) instantiateKeyedTemplate(m types.MappedInfo, key types.TypeID, at source.Span) types.TypeID {
	body := e.in.Substitute(m.TemplateType, map[types.TypeID]types.TypeID{m.TypeParam: key})
	return e.evalIfReducible(body, at)
}

// remapKey evaluates the `as NameType` clause for one key; a key mapped to
// `never` is dropped, implementing `Omit`/`Pick`-style filtering.
func (e *Evaluator) remapKey(m types.MappedInfo, key types.StringID, at source.Span) (remapped types.StringID, dropped bool) {
	keyLit := e.in.InternStringLiteral(key, false)
	mapped := e.in.Substitute(m.NameType, map[types.TypeID]types.TypeID{m.TypeParam: keyLit})
	mapped = e.evalIfReducible(mapped, at)
	if mapped == e.in.Builtins().Never {
		return 0, true
	}
	if lit, ok := e.in.Literal(mapped); ok && lit.Base == types.KindString {
		return lit.Str, false
	}
	return key, false
}

func applyModifier(mod types.Modifier, current bool) bool {
	switch mod {
	case types.ModifierAdd:
		return true
	case types.ModifierRemove:
		return false
	default:
		return current
	}
}

// evalIfReducible reduces body one more step when it is itself an
// unevaluated compound form, so a mapped/conditional template body does
// not leak unevaluated nodes into the resulting object's property types.
func (e *Evaluator) evalIfReducible(id types.TypeID, at source.Span) types.TypeID {
	return e.Reduce(id, at)
}

// Reduce dispatches id to whichever Eval* entry point matches its kind,
// or returns id unchanged if it is already in reduced (object/union/
// intrinsic) form. This is the Evaluator's implementation of
// internal/subtype's Reducer interface: the subtype engine calls back into
// it whenever structural comparison encounters an operand that is still
// Conditional/Mapped/IndexedAccess/KeyOf/TemplateLiteral/StringMapping.
func (e *Evaluator) Reduce(id types.TypeID, at source.Span) types.TypeID {
	tt, ok := e.in.Lookup(id)
	if !ok {
		return id
	}
	switch tt.Kind {
	case types.KindConditional:
		return e.EvalConditional(id, at)
	case types.KindMapped:
		return e.EvalMapped(id, at)
	case types.KindIndexedAccess:
		return e.EvalIndexedAccess(id, at)
	case types.KindKeyOf:
		return e.EvalKeyOf(id, at)
	case types.KindTemplateLiteral:
		return e.EvalTemplateLiteral(id, at)
	case types.KindStringMapping:
		return e.EvalStringMapping(id, at)
	default:
		return id
	}
}
