package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("function main() {\n\tlet x = \"unterminated\n}")
	fileID := fs.AddVirtual("test.ts", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevError,
		diag.TS2304,
		source.Span{File: fileID, Start: 28, End: 41},
		"Cannot find name.",
	)
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\noutput: %s", err, buf.String())
	}

	if output.Count != 1 {
		t.Errorf("expected count=1, got %d", output.Count)
	}
	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	got := output.Diagnostics[0]
	if got.Severity != "ERROR" {
		t.Errorf("expected severity=ERROR, got %s", got.Severity)
	}
	if got.Code != "TS2304" {
		t.Errorf("expected code=TS2304, got %s", got.Code)
	}
	if got.Message != "Cannot find name." {
		t.Errorf("expected message='Cannot find name.', got %s", got.Message)
	}
	if got.Location.File != "test.ts" {
		t.Errorf("expected file=test.ts, got %s", got.Location.File)
	}
	if got.Location.StartByte != 28 {
		t.Errorf("expected start_byte=28, got %d", got.Location.StartByte)
	}
	if got.Location.EndByte != 41 {
		t.Errorf("expected end_byte=41, got %d", got.Location.EndByte)
	}
	if got.Location.StartLine != 2 {
		t.Errorf("expected start_line=2, got %d", got.Location.StartLine)
	}
	if got.Location.StartCol != 11 {
		t.Errorf("expected start_col=11, got %d", got.Location.StartCol)
	}
}

func TestJSONWithNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte(`let x = 42`)
	fileID := fs.AddVirtual("test.ts", content)

	bag := diag.NewBag(10)
	d := diag.New(
		diag.SevWarning,
		diag.TS7006,
		source.Span{File: fileID, Start: 4, End: 5},
		"Unused variable",
	)

	d = d.WithNote(
		source.Span{File: fileID, Start: 4, End: 5},
		"Consider removing this variable or prefixing with underscore",
	)

	d = d.WithFix(
		"Remove unused variable",
		diag.FixEdit{
			Span:    source.Span{File: fileID, Start: 0, End: 10},
			NewText: "",
		},
	)

	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		Max:              0,
		IncludeNotes:     true,
		IncludeFixes:     true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	got := output.Diagnostics[0]

	if len(got.Notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(got.Notes))
	}
	if got.Notes[0].Message != "Consider removing this variable or prefixing with underscore" {
		t.Errorf("unexpected note message: %s", got.Notes[0].Message)
	}

	if len(got.Fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(got.Fixes))
	}

	fix := got.Fixes[0]
	if fix.Title != "Remove unused variable" {
		t.Errorf("unexpected fix title: %s", fix.Title)
	}
	if len(fix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(fix.Edits))
	}

	edit := fix.Edits[0]
	if edit.NewText != "" {
		t.Errorf("expected empty new_text, got %s", edit.NewText)
	}
	if edit.OldText != "" {
		t.Errorf("expected old_text to be empty, got %s", edit.OldText)
	}
	if fix.Kind != "QUICK_FIX" {
		t.Errorf("expected kind QUICK_FIX, got %s", fix.Kind)
	}
	if fix.Applicability != "ALWAYS_SAFE" {
		t.Errorf("expected applicability ALWAYS_SAFE, got %s", fix.Applicability)
	}
	if fix.IsPreferred {
		t.Errorf("expected is_preferred to be false")
	}
	if fix.BuildError != "" {
		t.Errorf("unexpected build error: %s", fix.BuildError)
	}
}

func TestJSONWithoutPositions(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let x = 42")
	fileID := fs.AddVirtual("test.ts", content)

	bag := diag.NewBag(10)
	d := diag.New(diag.SevInfo, diag.TS7006, source.Span{File: fileID, Start: 4, End: 5}, "Info message")
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: false,
		PathMode:         PathModeBasename,
		Max:              0,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	got := output.Diagnostics[0]
	if got.Location.StartLine != 0 {
		t.Errorf("expected start_line to be omitted (0), got %d", got.Location.StartLine)
	}
	if got.Location.StartByte != 4 {
		t.Errorf("expected start_byte=4, got %d", got.Location.StartByte)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("test content")
	fileID := fs.AddVirtual("test.ts", content)

	bag := diag.NewBag(10)
	for i := range 5 {
		d := diag.New(
			diag.SevError,
			diag.TS2304,
			source.Span{File: fileID, Start: uint32(i), End: uint32(i + 1)},
			"Error message",
		)
		bag.Add(d)
	}

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: false,
		PathMode:         PathModeBasename,
		Max:              3,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if output.Count != 3 {
		t.Errorf("expected count=3 (limited), got %d", output.Count)
	}
	if len(output.Diagnostics) != 3 {
		t.Errorf("expected 3 diagnostics (limited), got %d", len(output.Diagnostics))
	}
}

func TestJSONPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")

	content := []byte("test")
	fileID := fs.AddVirtual("/home/user/project/src/main.ts", content)

	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.TS2304, source.Span{File: fileID, Start: 0, End: 1}, "Error")
	bag.Add(d)

	tests := []struct {
		name     string
		pathMode PathMode
		expected string
	}{
		{"Absolute", PathModeAbsolute, "/home/user/project/src/main.ts"},
		{"Relative", PathModeRelative, "src/main.ts"},
		{"Basename", PathModeBasename, "main.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := JSONOpts{
				IncludePositions: false,
				PathMode:         tt.pathMode,
				Max:              0,
			}

			if err := JSON(&buf, bag, fs, opts); err != nil {
				t.Fatalf("JSON() error: %v", err)
			}

			var output DiagnosticsOutput
			if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
				t.Fatalf("invalid JSON output: %v", err)
			}

			if output.Diagnostics[0].Location.File != tt.expected {
				t.Errorf("expected file=%s, got %s", tt.expected, output.Diagnostics[0].Location.File)
			}
		})
	}
}

func TestJSONFixPreview(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("let a = 42 // missing semicolon")
	fileID := fs.AddVirtual("example.ts", content)

	bag := diag.NewBag(2)
	insertSpan := source.Span{File: fileID, Start: 10, End: 10}
	d := diag.New(diag.SevWarning, diag.TS7006, insertSpan, "missing semicolon")
	d = d.WithFix("insert semicolon", diag.FixEdit{Span: insertSpan, NewText: ";"})
	bag.Add(d)

	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeFixes:     true,
		IncludePreviews:  true,
	}

	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}

	if len(output.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(output.Diagnostics))
	}

	gotDiag := output.Diagnostics[0]
	if len(gotDiag.Fixes) != 1 {
		t.Fatalf("expected 1 fix, got %d", len(gotDiag.Fixes))
	}

	gotFix := gotDiag.Fixes[0]
	if len(gotFix.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(gotFix.Edits))
	}

	gotEdit := gotFix.Edits[0]
	if len(gotEdit.BeforeLines) != 1 {
		t.Fatalf("expected 1 before line, got %d", len(gotEdit.BeforeLines))
	}
	if gotEdit.BeforeLines[0] != "let a = 42 // missing semicolon" {
		t.Errorf("unexpected before line: %q", gotEdit.BeforeLines[0])
	}

	if len(gotEdit.AfterLines) != 1 {
		t.Fatalf("expected 1 after line, got %d", len(gotEdit.AfterLines))
	}
	if gotEdit.AfterLines[0] != "let a = 42; // missing semicolon" {
		t.Errorf("unexpected after line: %q", gotEdit.AfterLines[0])
	}
}
