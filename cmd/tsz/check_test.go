package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/driver"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

func TestLogicalPath(t *testing.T) {
	cases := []struct{ in, want string }{
		{"a.json", "a.ts"},
		{"src/b.json", "src/b.ts"},
		{"already.ts", "already.ts"},
	}
	for _, tc := range cases {
		if got := logicalPath(tc.in); got != tc.want {
			t.Errorf("logicalPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCollectProgramFiles_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.json")
	if err := os.WriteFile(path, []byte(`{"nodes":[],"symbols":[]}`), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	files, err := collectProgramFiles(path)
	if err != nil {
		t.Fatalf("collectProgramFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if _, ok := files["main.ts"]; !ok {
		t.Errorf("expected key %q in %v", "main.ts", files)
	}
}

func TestCollectProgramFiles_Directory(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	payload := []byte(`{"nodes":[],"symbols":[]}`)
	if err := os.WriteFile(filepath.Join(dir, "a.json"), payload, 0o600); err != nil {
		t.Fatalf("write a.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(sub, "b.json"), payload, 0o600); err != nil {
		t.Fatalf("write b.json: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignore me"), 0o600); err != nil {
		t.Fatalf("write README.md: %v", err)
	}

	files, err := collectProgramFiles(dir)
	if err != nil {
		t.Fatalf("collectProgramFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
	if _, ok := files["a.ts"]; !ok {
		t.Errorf("expected key %q, got %v", "a.ts", files)
	}
	if _, ok := files[filepath.Join("pkg", "b.ts")]; !ok {
		t.Errorf("expected key for nested file, got %v", files)
	}
}

func TestSharedSolverConfig_StrictTurnsOnFamily(t *testing.T) {
	sc := sharedSolverConfig(true)
	if !sc.Strict {
		t.Error("expected Strict=true")
	}
	if !sc.StrictNullChecks {
		t.Error("expected strict to imply StrictNullChecks")
	}
}

func TestSharedSolverConfig_NonStrictLeavesFamilyOff(t *testing.T) {
	sc := sharedSolverConfig(false)
	if sc.Strict || sc.StrictNullChecks {
		t.Errorf("expected no strict-family flags set, got %+v", sc)
	}
}

func TestBagOf(t *testing.T) {
	d := diag.New(diag.SevError, diag.Code(0), source.Span{}, "boom")
	f := driver.FileResult{Path: "a.ts", Diagnostics: []*diag.Diagnostic{&d}}
	bag := bagOf(f)
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic in bag, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Error("expected bag to report errors")
	}
}
