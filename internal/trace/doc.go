// Package trace provides a tracing subsystem for the tsz checker.
//
// The trace package enables tracking of check_program's per-file and
// per-statement work, worker-pool scheduling, and cache hits to help
// diagnose performance issues and hangs.
//
// # Usage
//
// Enable tracing via command-line flags:
//
//	tsz check --trace=- --trace-level=phase program.json
//
// # Architecture
//
// The package provides several tracer implementations:
//
//   - Nop: Zero-overhead no-op tracer when disabled
//   - StreamTracer: Immediate write to output (file/stderr)
//   - RingTracer: Circular buffer for crash dumps
//   - MultiTracer: Combines multiple tracers
//
// # Levels
//
// Tracing verbosity is controlled by levels:
//
//   - LevelOff: No tracing
//   - LevelError: Only crash dumps
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Module-level events
//   - LevelDebug: Everything including AST nodes
//
// # Scopes
//
// Events are categorized by scope:
//
//   - ScopeDriver: Top-level CLI operations
//   - ScopeModule: Per-file check_program processing
//   - ScopePass: Checker passes (bind lookup, infer, subtype, narrow)
//   - ScopeNode: AST node level (future)
//
// # Context Propagation
//
// Tracers are propagated through check_program via context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "infer", parentID)
//	defer span.End("")
package trace
