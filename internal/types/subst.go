package types

// Substitute rebuilds id with every TypeID matching a key in mapping
// replaced by its value, recursing through every compound kind. It is the
// shared instantiation primitive the Evaluator uses for conditional-type
// union distribution (§4.3.1 rule 2) and the Inferrer uses to apply
// resolved type-parameter bindings (§4.5.3) to a generic's body.
//
// Substitute is idempotent on types with nothing to replace: compound
// types whose operands are all unchanged return id itself rather than
// re-interning an identical structural twin.
func (in *Interner) Substitute(id TypeID, mapping map[TypeID]TypeID) TypeID {
	if len(mapping) == 0 {
		return id
	}
	if repl, ok := mapping[id]; ok {
		return repl
	}
	tt, ok := in.Lookup(id)
	if !ok {
		return id
	}

	switch tt.Kind {
	case KindArray:
		elem := in.Substitute(tt.A, mapping)
		if elem == tt.A {
			return id
		}
		return in.Intern(Type{Kind: KindArray, Flags: tt.Flags, A: elem})

	case KindIndexedAccess:
		obj := in.Substitute(tt.A, mapping)
		idx := in.Substitute(tt.B, mapping)
		if obj == tt.A && idx == tt.B {
			return id
		}
		return in.InternIndexedAccess(obj, idx)

	case KindKeyOf:
		operand := in.Substitute(tt.A, mapping)
		if operand == tt.A {
			return id
		}
		return in.InternKeyOf(operand)

	case KindStringMapping:
		sm, _ := in.StringMapping(id)
		target := in.Substitute(sm.Target, mapping)
		if target == sm.Target {
			return id
		}
		return in.InternStringMapping(sm.Mapping, target)

	case KindUnion:
		u, _ := in.Union(id)
		return in.InternUnion(in.substituteAll(u.Members, mapping))

	case KindIntersection:
		x, _ := in.Intersection(id)
		return in.InternIntersection(in.substituteAll(x.Members, mapping))

	case KindTuple:
		tp, _ := in.Tuple(id)
		elems := in.substituteAll(tp.Elems, mapping)
		return in.InternTuple(TupleInfo{
			Elems: elems, Optional: tp.Optional, Labels: tp.Labels, RestAt: tp.RestAt,
		})

	case KindFunction:
		fn, _ := in.Fn(id)
		params := make([]ParamInfo, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = ParamInfo{Name: p.Name, Optional: p.Optional, Rest: p.Rest, Type: in.Substitute(p.Type, mapping)}
		}
		return in.InternFn(FnInfo{
			TypeParams: fn.TypeParams,
			ThisParam:  in.Substitute(fn.ThisParam, mapping),
			Params:     params,
			Return:     in.Substitute(fn.Return, mapping),
		})

	case KindObject:
		obj, _ := in.Object(id)
		props := make([]PropertyInfo, len(obj.Properties))
		for i, p := range obj.Properties {
			props[i] = PropertyInfo{Name: p.Name, Optional: p.Optional, Readonly: p.Readonly, Type: in.Substitute(p.Type, mapping)}
		}
		idxs := make([]IndexSignatureInfo, len(obj.IndexSignatures))
		for i, s := range obj.IndexSignatures {
			idxs[i] = IndexSignatureInfo{
				KeyType:   in.Substitute(s.KeyType, mapping),
				ValueType: in.Substitute(s.ValueType, mapping),
				Readonly:  s.Readonly,
			}
		}
		return in.InternObject(ObjectInfo{
			Properties:          props,
			IndexSignatures:     idxs,
			CallSignatures:      in.substituteAll(obj.CallSignatures, mapping),
			ConstructSignatures: in.substituteAll(obj.ConstructSignatures, mapping),
		})

	case KindConditional:
		c, _ := in.Conditional(id)
		return in.InternConditional(ConditionalInfo{
			Check:        in.Substitute(c.Check, mapping),
			Extends:      in.Substitute(c.Extends, mapping),
			True:         in.Substitute(c.True, mapping),
			False:        in.Substitute(c.False, mapping),
			InferTargets: c.InferTargets,
			Distributive: c.Distributive,
		})

	case KindMapped:
		m, _ := in.Mapped(id)
		return in.InternMapped(MappedInfo{
			TypeParam:    m.TypeParam,
			Constraint:   in.Substitute(m.Constraint, mapping),
			NameType:     in.Substitute(m.NameType, mapping),
			TemplateType: in.Substitute(m.TemplateType, mapping),
			Optional:     m.Optional,
			Readonly:     m.Readonly,
			Homomorphic:  m.Homomorphic,
			HomSource:    in.Substitute(m.HomSource, mapping),
		})

	case KindTemplateLiteral:
		t, _ := in.TemplateLiteral(id)
		return in.InternTemplateLiteral(TemplateLiteralInfo{Quasis: t.Quasis, Types: in.substituteAll(t.Types, mapping)})

	case KindRef:
		r, _ := in.Ref(id)
		return in.InternRef(r.Name, in.substituteAll(r.TypeArgs, mapping))

	default:
		return id
	}
}

func (in *Interner) substituteAll(ids []TypeID, mapping map[TypeID]TypeID) []TypeID {
	out := make([]TypeID, len(ids))
	for i, id := range ids {
		out[i] = in.Substitute(id, mapping)
	}
	return out
}
