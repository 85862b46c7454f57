package narrow

import (
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// State tracks the narrowed type of every binding along one walk of a CFG
// (§4.6's "ordering" rule: narrowings are computed in AST/CFG order and
// read back at each identifier use). It is a thin per-binding map in the
// same lazy-init, mutate-in-place style as the teacher's movedBindings
// (internal/sema/move_tracking.go): narrowing is, structurally, the same
// kind of "per-binding fact that control flow can set and later clear" as
// move-tracking, just with a TypeID payload instead of a move-span.
type State struct {
	narrowed map[symbols.SymbolID]types.TypeID
	mutable  map[symbols.SymbolID]bool
}

// NewState constructs an empty per-binding narrowing state.
func NewState() *State {
	return &State{}
}

// Set records a narrowed type for symID at the current program point,
// overwriting whatever narrowing (if any) was previously active.
func (s *State) Set(symID symbols.SymbolID, narrowed types.TypeID) {
	if symID == symbols.NoSymbolID {
		return
	}
	if s.narrowed == nil {
		s.narrowed = make(map[symbols.SymbolID]types.TypeID)
	}
	s.narrowed[symID] = narrowed
}

// Get returns the active narrowing for symID, if any.
func (s *State) Get(symID symbols.SymbolID) (types.TypeID, bool) {
	if s.narrowed == nil {
		return types.NoTypeID, false
	}
	t, ok := s.narrowed[symID]
	return t, ok
}

// Clear removes any active narrowing for symID, e.g. after a reassignment
// invalidates it.
func (s *State) Clear(symID symbols.SymbolID) {
	delete(s.narrowed, symID)
}

// MarkMutableCapture records that symID is captured by a closure as a
// mutable (non-const) binding, so EnterClosure knows to discard its
// narrowing inside nested function bodies (rule 42).
func (s *State) MarkMutableCapture(symID symbols.SymbolID) {
	if s.mutable == nil {
		s.mutable = make(map[symbols.SymbolID]bool)
	}
	s.mutable[symID] = true
}

// Snapshot returns a copy of the current narrowing map, suitable for
// entering a nested scope (e.g. one arm of an if/else) without mutating the
// caller's state.
func (s *State) Snapshot() *State {
	cp := &State{mutable: s.mutable} // capture-mutability is lexical, shared by reference
	if len(s.narrowed) > 0 {
		cp.narrowed = make(map[symbols.SymbolID]types.TypeID, len(s.narrowed))
		for k, v := range s.narrowed {
			cp.narrowed[k] = v
		}
	}
	return cp
}

// EnterClosure returns the narrowing state visible inside a closure body:
// per rule 42, narrowings on bindings the closure captures mutably are
// reset to their declared type (dropped from the map), since the closure
// may run after further mutation invalidates them; narrowings on bindings
// never mutated after capture (effectively `const`) are preserved.
func (s *State) EnterClosure() *State {
	inner := &State{mutable: s.mutable}
	if len(s.narrowed) == 0 {
		return inner
	}
	inner.narrowed = make(map[symbols.SymbolID]types.TypeID, len(s.narrowed))
	for symID, t := range s.narrowed {
		if s.mutable != nil && s.mutable[symID] {
			continue // dropped: rule 42
		}
		inner.narrowed[symID] = t
	}
	return inner
}
