// Package checkexpr implements the type-of-expression dispatcher (§4.7): a
// switch over bound AST node kinds that computes the type of every
// expression, consulting the narrowing engine for identifier reads and the
// subtype/infer engines for assignability and call resolution. It is also
// where internal/eval, internal/subtype, internal/infer and internal/narrow
// are concretely wired together, since none of those packages imports any
// other (see each package's own doc comment for the interface it exposes
// instead).
//
// This mirrors the teacher's typeChecker (internal/sema/type_checker_core.go):
// one struct bundling every collaborator plus the per-binding state maps,
// and a recursive walkStmt/typeExpr pair. The teacher's ast/symbols types
// are rich, parser-specific structs; this package's host contract
// (internal/ast, internal/symbols) is a deliberately thin stand-in, so
// Checker keeps a few bookkeeping maps of its own (scopeOf, in particular)
// that the teacher gets for free from its parser-backed symbol table.
package checkexpr

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/config"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/eval"
	"github.com/mohsen1/tsz-sub014/internal/infer"
	"github.com/mohsen1/tsz-sub014/internal/narrow"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/subtype"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/trace"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// assignAdapter narrows subtype.Engine's 3-argument IsAssignable down to
// the 2-argument shape internal/narrow and internal/infer each declare for
// themselves (they have no source.Span to thread through a pure type-level
// filter or a resolution fallback), fixing the span at the zero value.
type assignAdapter struct{ engine *subtype.Engine }

func (a assignAdapter) IsAssignable(sub, sup types.TypeID) bool {
	return a.engine.IsAssignable(sub, sup, source.Span{})
}

// Checker is the program-level entry point: one instance per
// check_program call (§6.2), owning every collaborator and the per-binding
// state the dispatcher consults as it walks a file.
type Checker struct {
	in       *types.Interner
	strs     *source.Interner
	reporter diag.Reporter

	eval    *eval.Evaluator
	subtype *subtype.Engine
	infer   *infer.Inferrer
	narrow  *narrow.Engine

	symtab *symbols.Table
	file   *ast.File

	narrowState *narrow.State
	bindingType map[symbols.SymbolID]types.TypeID

	// scopeOf assigns a symbols.ScopeID to a block node the first time it is
	// entered; the thin ast/symbols stand-in does not hand the checker a
	// precomputed node->scope map the way the teacher's binder does, so the
	// checker mints its own scope IDs on the fly, monotonically.
	scopeOf   map[ast.NodeID]symbols.ScopeID
	nextScope symbols.ScopeID

	cache map[ast.NodeID]types.TypeID

	// tracer and tracerParent back the per-phase spans emitted by
	// tracePhase; both stay zero-valued (trace.Begin no-ops on a nil
	// Tracer) until a driver caller opts in via SetTracer.
	tracer       trace.Tracer
	tracerParent uint64
}

// New constructs a Checker with the spec's default SolverConfig (§6.3),
// wiring the evaluator and subtype engine together (each needs the other
// as a collaborator; see SetAssignability/SetReducer on those packages)
// and building the inferrer and narrowing engine on top of the
// now-complete subtype engine.
func New(strs *source.Interner, reporter diag.Reporter, symtab *symbols.Table, file *ast.File) *Checker {
	return NewWithConfig(strs, reporter, symtab, file, config.DefaultSolverConfig())
}

// NewWithConfig is New with a driver-supplied SolverConfig (§6.2
// check_program's `config` argument), translated into the subtype and
// eval engines' own Config structs via SolverConfig.SubtypeConfig/
// EvalConfig instead of the checker hand-building each separately.
func NewWithConfig(strs *source.Interner, reporter diag.Reporter, symtab *symbols.Table, file *ast.File, sc config.SolverConfig) *Checker {
	in := types.NewInterner()

	subtypeEngine := subtype.New(in, nil, reporter, sc.SubtypeConfig())
	evaluator := eval.New(in, strs, subtypeEngine, reporter, sc.EvalConfig())
	subtypeEngine.SetReducer(evaluator)

	adapter := assignAdapter{subtypeEngine}
	inferrer := infer.New(in, adapter)
	narrowEngine := narrow.New(in, strs, evaluator)

	return &Checker{
		in:          in,
		strs:        strs,
		reporter:    reporter,
		eval:        evaluator,
		subtype:     subtypeEngine,
		infer:       inferrer,
		narrow:      narrowEngine,
		symtab:      symtab,
		file:        file,
		narrowState: narrow.NewState(),
		bindingType: make(map[symbols.SymbolID]types.TypeID),
		scopeOf:     make(map[ast.NodeID]symbols.ScopeID),
		cache:       make(map[ast.NodeID]types.TypeID),
	}
}

// Interner exposes the checker's type interner, needed by callers (the
// driver, diagnostic formatters) that render or compare resulting types.
func (c *Checker) Interner() *types.Interner { return c.in }

// Strings exposes the checker's string interner, needed alongside Interner
// by types.Label to render a TypeID back into source text (§6.2 format_type).
func (c *Checker) Strings() *source.Interner { return c.strs }

func (c *Checker) span(id ast.NodeID) source.Span {
	return c.file.Node(id).Span
}

// SetTracer attaches a tracer and parent span (typically a ScopeModule span
// opened by the driver for this file) so tracePhase calls made while
// checking this file nest under it. Called by internal/driver once per
// Checker; a Checker never calls this on itself.
func (c *Checker) SetTracer(t trace.Tracer, parent uint64) *Checker {
	c.tracer = t
	c.tracerParent = parent
	return c
}

// tracePhase opens a ScopePass span for one of the checker's named phases
// (evaluate, subtype, infer, narrow, dispatch, diagnose), nested under
// whatever module span SetTracer supplied. Safe to call unconditionally:
// trace.Begin no-ops when c.tracer is nil or disabled.
func (c *Checker) tracePhase(name string) *trace.Span {
	return trace.Begin(c.tracer, trace.ScopePass, name, c.tracerParent)
}

func (c *Checker) report(code diag.Code, at source.Span, msg string) {
	if c.reporter == nil {
		return
	}
	sp := c.tracePhase("diagnose")
	diag.ReportError(c.reporter, code, at, msg).Emit()
	sp.End(code.String())
}

// scopeFor mints (or returns the already-minted) scope ID for a block-like
// node, per the scopeOf bookkeeping note on Checker.
func (c *Checker) scopeFor(id ast.NodeID) symbols.ScopeID {
	if s, ok := c.scopeOf[id]; ok {
		return s
	}
	c.nextScope++
	c.scopeOf[id] = c.nextScope
	return c.nextScope
}

func (c *Checker) setBindingType(sym symbols.SymbolID, t types.TypeID) {
	if sym == symbols.NoSymbolID {
		return
	}
	c.bindingType[sym] = t
}
