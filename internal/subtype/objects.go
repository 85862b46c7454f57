package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// objectSubtype implements the structural object case (§4.4.2): for every
// property required in sup, sub has a matching property whose read type is
// covariant and whose write type is contravariant (split-accessor form
// collapses to one covariant check when a property has no separate setter,
// which is this engine's only representation of object properties).
func (e *Engine) objectSubtype(rel Relation, sub, sup types.ObjectInfo, subID types.TypeID, at source.Span) bool {
	if rel == RelIdentical {
		return e.objectIdentical(sub, sup, at)
	}

	if len(sup.Properties) > 0 && !e.sharesAnyKey(sub, sup) && e.allOptional(sup) {
		return false // rule W: weak-type rejection
	}

	if e.in.Fresh(subID) && e.hasExcessProperty(sub, sup) { // rule F
		return false
	}

	for _, p := range sup.Properties {
		subProp, ok := findProperty(sub, p.Name)
		if !ok {
			if p.Optional {
				continue
			}
			return false
		}
		if !p.Readonly && subProp.Readonly {
			return false // a mutable target cannot be backed by a readonly source
		}
		if !subProp.Optional && !p.Optional {
			if !e.relate(rel, subProp.Type, p.Type, at) {
				return false
			}
			continue
		}
		if subProp.Optional && !p.Optional && e.cfg.ExactOptionalPropertyTypes { // rule O
			return false
		}
		if !e.relate(rel, subProp.Type, p.Type, at) {
			return false
		}
	}

	for _, sig := range sup.IndexSignatures {
		if !e.objectSatisfiesIndexSignature(sub, sig, rel, at) {
			return false
		}
	}

	for i, supSig := range sup.CallSignatures {
		if i >= len(sub.CallSignatures) {
			return false
		}
		if !e.relate(rel, sub.CallSignatures[i], supSig, at) {
			return false
		}
	}
	for i, supSig := range sup.ConstructSignatures {
		if i >= len(sub.ConstructSignatures) {
			return false
		}
		if !e.relate(rel, sub.ConstructSignatures[i], supSig, at) {
			return false
		}
	}

	return true
}

func (e *Engine) objectIdentical(sub, sup types.ObjectInfo, at source.Span) bool {
	if len(sub.Properties) != len(sup.Properties) {
		return false
	}
	for _, p := range sup.Properties {
		subProp, ok := findProperty(sub, p.Name)
		if !ok || subProp.Optional != p.Optional || subProp.Readonly != p.Readonly {
			return false
		}
		if !e.relate(RelIdentical, subProp.Type, p.Type, at) {
			return false
		}
	}
	return true
}

func findProperty(o types.ObjectInfo, name types.StringID) (types.PropertyInfo, bool) {
	for _, p := range o.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return types.PropertyInfo{}, false
}

func (e *Engine) sharesAnyKey(sub, sup types.ObjectInfo) bool {
	for _, p := range sup.Properties {
		if _, ok := findProperty(sub, p.Name); ok {
			return true
		}
	}
	return false
}

func (e *Engine) allOptional(o types.ObjectInfo) bool {
	if len(o.Properties) == 0 {
		return false
	}
	for _, p := range o.Properties {
		if !p.Optional {
			return false
		}
	}
	return true
}

// hasExcessProperty reports whether sub (a fresh object literal) carries a
// key absent from sup, and sup has no catch-all index signature that would
// legitimize it (rule F, §4.4.3).
func (e *Engine) hasExcessProperty(sub, sup types.ObjectInfo) bool {
	if len(sup.IndexSignatures) > 0 {
		return false
	}
	for _, p := range sub.Properties {
		if _, ok := findProperty(sup, p.Name); !ok {
			return true
		}
	}
	return false
}

func (e *Engine) objectSatisfiesIndexSignature(sub types.ObjectInfo, sig types.IndexSignatureInfo, rel Relation, at source.Span) bool {
	for _, subSig := range sub.IndexSignatures {
		if e.relate(RelAssignable, subSig.KeyType, sig.KeyType, at) {
			if e.relate(rel, subSig.ValueType, sig.ValueType, at) {
				return true
			}
		}
	}
	// every own property must also satisfy a required index signature.
	allMatch := true
	for _, p := range sub.Properties {
		if !e.relate(rel, p.Type, sig.ValueType, at) {
			allMatch = false
			break
		}
	}
	return allMatch && len(sub.Properties) > 0
}
