package driver

import "github.com/mohsen1/tsz-sub014/internal/diag"

// FileResult is one file's diagnostics from a CheckProgram pass.
type FileResult struct {
	Path        string
	Diagnostics []*diag.Diagnostic
}

// HasErrors reports whether this file carries a SevError diagnostic.
func (f FileResult) HasErrors() bool {
	for _, d := range f.Diagnostics {
		if d.Severity >= diag.SevError {
			return true
		}
	}
	return false
}

// Result aggregates every file's diagnostics from one check_program call
// (§6.2), in the Program's original order regardless of which goroutine
// finished first.
type Result struct {
	Files     []FileResult
	ElapsedMS int64
}

// HasErrors reports whether any file in the result carries a SevError
// diagnostic.
func (r *Result) HasErrors() bool {
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			if d.Severity >= diag.SevError {
				return true
			}
		}
	}
	return false
}

// Codes flattens every file's diagnostic codes into TS-compatible IDs
// ("TS2322"), in file order then in-file order — the shape §6.4's
// `{id, codes:[TSCode], elapsed_ms}` check response serializes.
func (r *Result) Codes() []string {
	var out []string
	for _, f := range r.Files {
		for _, d := range f.Diagnostics {
			out = append(out, d.Code.ID())
		}
	}
	return out
}
