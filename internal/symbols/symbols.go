// Package symbols defines the fixed-shape symbol-table contract the checker
// consumes from the host binder (§6.1): name resolution, per-symbol
// declaration lists, and the merged-declaration view interface/namespace
// augmentation needs.
package symbols

import "github.com/mohsen1/tsz-sub014/internal/ast"

// SymbolID identifies a symbol, stable across incremental edits.
type SymbolID uint32

// NoSymbolID marks an unresolved name.
const NoSymbolID SymbolID = 0

// Flags records what a symbol can be used as; a name may carry more than
// one (e.g. a class is both Type and Value).
type Flags uint16

const (
	FlagNone Flags = 0
	FlagType Flags = 1 << iota
	FlagValue
	FlagInterface
	FlagClass
	FlagEnum
	FlagAlias
	FlagTypeOnlyImport
	FlagNamespace
)

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

// ScopeID identifies a lexical scope the binder has already resolved
// against (function body, block, module top level, ...).
type ScopeID uint32

// Symbol is one resolved name: its flags and every declaration site
// contributing to it (multiple for interface/namespace merging).
type Symbol struct {
	ID           SymbolID
	Name         string
	Flags        Flags
	Declarations []ast.NodeID
}

// Table is the bound program's symbol table, as handed to the checker by
// the host binder. It is read-only from the checker's perspective: the
// checker never declares or merges symbols itself.
type Table struct {
	symbols []Symbol
	byName  map[tableKey]SymbolID
}

type tableKey struct {
	scope ScopeID
	name  string
}

// NewTable constructs an empty table; symbol 0 is reserved as the
// unresolved sentinel.
func NewTable() *Table {
	t := &Table{byName: make(map[tableKey]SymbolID)}
	t.symbols = append(t.symbols, Symbol{})
	return t
}

// Declare registers decl as a declaration site for name in scope, merging
// into an existing symbol if one already exists (interface/namespace
// augmentation) or creating a new one.
func (t *Table) Declare(scope ScopeID, name string, flags Flags, decl ast.NodeID) SymbolID {
	key := tableKey{scope: scope, name: name}
	if id, ok := t.byName[key]; ok {
		sym := &t.symbols[id]
		sym.Flags |= flags
		sym.Declarations = append(sym.Declarations, decl)
		return id
	}
	id := SymbolID(len(t.symbols))
	t.symbols = append(t.symbols, Symbol{
		ID:           id,
		Name:         name,
		Flags:        flags,
		Declarations: []ast.NodeID{decl},
	})
	t.byName[key] = id
	return id
}

// Resolve looks up name in scope, returning NoSymbolID when unresolved.
// The host binder is responsible for scope-chain walking; by the time the
// checker receives the Table, Resolve answers directly from the target
// scope (the host has already flattened lexical lookup into per-scope
// entries, or the caller walks ParentScope itself via a wider collaborator
// interface not modeled here).
func (t *Table) Resolve(scope ScopeID, name string) SymbolID {
	if id, ok := t.byName[tableKey{scope: scope, name: name}]; ok {
		return id
	}
	return NoSymbolID
}

// Declarations returns every declaration node contributing to id.
func (t *Table) Declarations(id SymbolID) []ast.NodeID {
	if int(id) >= len(t.symbols) {
		return nil
	}
	return t.symbols[id].Declarations
}

// Lookup returns the Symbol record for id.
func (t *Table) Lookup(id SymbolID) (Symbol, bool) {
	if id == NoSymbolID || int(id) >= len(t.symbols) {
		return Symbol{}, false
	}
	return t.symbols[id], true
}

// CFGNode is one node of a per-function/file control-flow graph (§4.6):
// its associated syntax node and successor edges.
type CFGNode struct {
	Node     ast.NodeID
	Succ     []int
	IsBranch bool
}

// CFG is a control-flow graph over a function or file body, used by
// internal/narrow to compute type narrowing per program point.
type CFG struct {
	Nodes []CFGNode
	Entry int
}
