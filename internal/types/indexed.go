package types

// InternIndexedAccess interns the unevaluated `Obj[Index]` form. Like
// arrays, both operands fit directly in Type.A/Type.B, so no side-table
// payload is needed.
func (in *Interner) InternIndexedAccess(obj, index TypeID) TypeID {
	return in.Intern(Type{Kind: KindIndexedAccess, A: obj, B: index})
}

// IndexedAccessOperands returns (object, index) for a KindIndexedAccess type.
func (in *Interner) IndexedAccessOperands(id TypeID) (obj, index TypeID, ok bool) {
	tt, got := in.Lookup(id)
	if !got || tt.Kind != KindIndexedAccess {
		return NoTypeID, NoTypeID, false
	}
	return tt.A, tt.B, true
}

// InternKeyOf interns the unevaluated `keyof Operand` form.
func (in *Interner) InternKeyOf(operand TypeID) TypeID {
	return in.Intern(Type{Kind: KindKeyOf, A: operand})
}

// KeyOfOperand returns the operand of a KindKeyOf type.
func (in *Interner) KeyOfOperand(id TypeID) (TypeID, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindKeyOf {
		return NoTypeID, false
	}
	return tt.A, true
}

// UniqueSymbolInfo backs KindUniqueSymbol: `unique symbol` types are
// nominal per declaration site, identified by a monotonically increasing
// Ordinal rather than by name (two `declare const a: unique symbol` and
// `declare const b: unique symbol` are never assignable to each other even
// if named identically in diagnostics).
type UniqueSymbolInfo struct {
	Name    StringID
	Ordinal uint32
}

// InternUniqueSymbol always allocates a fresh nominal TypeID.
func (in *Interner) InternUniqueSymbol(name StringID) TypeID {
	ordinal := safeconv(len(in.uniqueSymbols))
	slot := ordinal
	in.uniqueSymbols = append(in.uniqueSymbols, UniqueSymbolInfo{Name: name, Ordinal: ordinal})
	return in.append(Type{Kind: KindUniqueSymbol, Payload: slot})
}

// UniqueSymbol returns the UniqueSymbolInfo backing a KindUniqueSymbol type.
func (in *Interner) UniqueSymbol(id TypeID) (UniqueSymbolInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUniqueSymbol {
		return UniqueSymbolInfo{}, false
	}
	return in.uniqueSymbols[tt.Payload], true
}
