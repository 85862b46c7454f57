package driver

import (
	"context"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/checkexpr"
	"github.com/mohsen1/tsz-sub014/internal/config"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/trace"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// NewChecker builds a Checker for bf the same way CheckProgram does internally,
// then walks the file's root statement once so GetTypeAt/FormatType have a
// populated type table to query. Tooling callers (the get-type/format-type CLI commands, an
// editor hover hook) that want a single file's checker without paying for a
// whole Program's fan-out use this instead of CheckProgram. ctx carries a
// tracer the same way CheckProgramWithEvents' does (see Checker.tracePhase);
// pass context.Background() if the caller has no tracer to attach.
func NewChecker(ctx context.Context, bf BoundFile, sc config.SolverConfig) (*checkexpr.Checker, *diag.Bag) {
	tracer := trace.FromContext(ctx)
	moduleSpan := trace.Begin(tracer, trace.ScopeModule, "file:"+bf.Path, 0)
	defer moduleSpan.End("")

	bag := diag.NewBag(defaultMaxDiagnostics)
	strs := source.NewInterner()
	c := checkexpr.NewWithConfig(strs, diag.BagReporter{Bag: bag}, bf.Symbols, bf.File, sc)
	c.SetTracer(tracer, moduleSpan.ID())
	c.CheckStatement(bf.File.Root())
	return c, bag
}

// GetTypeAt is §6.2's get_type_at: on-demand lookup of a single node's
// type, for tooling (hover, a REPL) that doesn't want to re-run a whole
// check_program pass.
func GetTypeAt(c *checkexpr.Checker, id ast.NodeID) types.TypeID {
	return c.TypeOf(id)
}

// FormatType is §6.2's format_type: a stable, human-readable rendering of
// a TypeID with no internal IDs leaked (§6.1's determinism guarantee).
func FormatType(c *checkexpr.Checker, id types.TypeID) string {
	return types.Label(c.Interner(), c.Strings(), id)
}
