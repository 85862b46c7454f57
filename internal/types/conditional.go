package types

// ConditionalInfo backs KindConditional: `Check extends Extends ? True :
// False`. InferTargets lists the `infer N` type parameters introduced
// inside Extends, in left-to-right appearance order, for the Inferrer to
// bind candidates against (§4.5). Distributive records whether Check is a
// bare (naked) type parameter, which makes evaluation distribute over
// union members of Check (§4.3.1 rule 2) rather than testing the union as
// a whole.
type ConditionalInfo struct {
	Check        TypeID
	Extends      TypeID
	True         TypeID
	False        TypeID
	InferTargets []TypeID
	Distributive bool
}

// Conditional returns the ConditionalInfo backing a KindConditional type.
func (in *Interner) Conditional(id TypeID) (ConditionalInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindConditional {
		return ConditionalInfo{}, false
	}
	return in.conditionals[tt.Payload], true
}

// InternConditional interns an unevaluated conditional type. Evaluation
// (branch selection, infer-site binding) is the Evaluator's job (§4.3.1);
// the interner only gives the unevaluated form a stable identity so it can
// be cached and compared before evaluation runs.
func (in *Interner) InternConditional(info ConditionalInfo) TypeID {
	ids := make([]TypeID, 0, 6+len(info.InferTargets))
	ids = append(ids, info.Check, info.Extends, info.True, info.False, TypeID(boolBit(info.Distributive)), NoTypeID)
	ids = append(ids, info.InferTargets...)
	key := idsDigest('c', ids)
	return in.internStruct(key, func() Type {
		slot := safeconv(len(in.conditionals))
		in.conditionals = append(in.conditionals, info)
		return Type{Kind: KindConditional, Payload: slot}
	})
}
