package driver

import (
	"encoding/json"
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

func samplePayload(t *testing.T) []byte {
	t.Helper()
	payload := boundFileJSON{
		Text: "let x = 1;",
		Nodes: []ast.Node{
			{ID: 1, Kind: ast.KindBlock, Span: source.Span{Start: 0, End: 10}, Children: []ast.NodeID{2}},
			{ID: 2, Kind: ast.KindVariableDeclaration, Span: source.Span{Start: 0, End: 10}, Parent: 1, Text: "x"},
		},
		Symbols: []symbolDeclJSON{
			{Scope: 0, Name: "x", Flags: 0, Decl: 2},
		},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal sample payload: %v", err)
	}
	return b
}

func TestDecodeBoundFile(t *testing.T) {
	fs := source.NewFileSet()
	payload := samplePayload(t)

	bf, err := DecodeBoundFile(fs, "a.ts", payload)
	if err != nil {
		t.Fatalf("DecodeBoundFile: %v", err)
	}
	if bf.Path != "a.ts" {
		t.Errorf("Path = %q, want %q", bf.Path, "a.ts")
	}
	if bf.File.Root() != 1 {
		t.Errorf("Root() = %d, want 1", bf.File.Root())
	}
	if got := bf.File.Node(bf.File.Root()).Kind; got != ast.KindBlock {
		t.Errorf("root kind = %v, want KindBlock", got)
	}
	if bf.Symbols == nil {
		t.Fatal("expected a non-nil symbol table")
	}

	file := fs.Get(bf.File.FID)
	if file == nil {
		t.Fatal("expected source text to be registered in the FileSet")
	}

	var zero [32]byte
	if bf.ContentHash == zero {
		t.Error("expected a non-zero content hash")
	}
}

func TestDecodeBoundFile_InvalidJSON(t *testing.T) {
	fs := source.NewFileSet()
	if _, err := DecodeBoundFile(fs, "bad.ts", []byte("not json")); err == nil {
		t.Fatal("expected an error decoding malformed JSON")
	}
}

func TestDecodeBoundFile_NilFileSet(t *testing.T) {
	payload := samplePayload(t)
	bf, err := DecodeBoundFile(nil, "a.ts", payload)
	if err != nil {
		t.Fatalf("DecodeBoundFile with nil FileSet: %v", err)
	}
	if bf.File.FID != 0 {
		t.Errorf("FID = %v, want the zero value with no FileSet", bf.File.FID)
	}
}

func TestLoadProgramJSON(t *testing.T) {
	files := map[string]string{
		"a.ts": string(samplePayload(t)),
		"b.ts": string(samplePayload(t)),
	}
	prog, fs, err := LoadProgramJSON(files)
	if err != nil {
		t.Fatalf("LoadProgramJSON: %v", err)
	}
	if len(prog) != 2 {
		t.Fatalf("expected 2 files, got %d", len(prog))
	}
	if fs == nil {
		t.Fatal("expected a non-nil FileSet")
	}
	seen := map[string]bool{}
	for _, bf := range prog {
		seen[bf.Path] = true
	}
	if !seen["a.ts"] || !seen["b.ts"] {
		t.Errorf("expected both files present, got %v", prog)
	}
}

func TestLoadProgramJSON_PropagatesDecodeError(t *testing.T) {
	files := map[string]string{"bad.ts": "not json"}
	if _, _, err := LoadProgramJSON(files); err == nil {
		t.Fatal("expected an error for a malformed file")
	}
}

func TestResolveBoundJSON(t *testing.T) {
	files := map[string]string{"a.ts": string(samplePayload(t))}
	prog, err := ResolveBoundJSON(files)
	if err != nil {
		t.Fatalf("ResolveBoundJSON: %v", err)
	}
	if len(prog) != 1 || prog[0].Path != "a.ts" {
		t.Errorf("unexpected program: %+v", prog)
	}
}
