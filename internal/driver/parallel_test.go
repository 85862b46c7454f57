package driver

import (
	"context"
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/config"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
)

func oneFileProgram(t *testing.T, path string) BoundFile {
	t.Helper()
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindBlock, Children: []ast.NodeID{2}},
		{ID: 2, Kind: ast.KindExpressionStatement, Children: []ast.NodeID{3}, Parent: 1},
		{ID: 3, Kind: ast.KindNumericLiteral, Text: "1", Parent: 2},
	}
	return BoundFile{
		Path:    path,
		File:    ast.NewFile(path, 0, nodes),
		Symbols: symbols.NewTable(),
	}
}

func TestCheckProgramRunsEveryFile(t *testing.T) {
	prog := Program{
		oneFileProgram(t, "a.ts"),
		oneFileProgram(t, "b.ts"),
		oneFileProgram(t, "c.ts"),
	}

	result, err := CheckProgram(context.Background(), prog, config.DefaultSolverConfig(), 2)
	if err != nil {
		t.Fatalf("CheckProgram: %v", err)
	}
	if len(result.Files) != 3 {
		t.Fatalf("expected 3 file results, got %d", len(result.Files))
	}
	for i, want := range []string{"a.ts", "b.ts", "c.ts"} {
		if result.Files[i].Path != want {
			t.Errorf("result[%d].Path = %q, want %q (order must match Program order)", i, result.Files[i].Path, want)
		}
	}
}

func TestCheckProgramEmptyProgram(t *testing.T) {
	result, err := CheckProgram(context.Background(), nil, config.DefaultSolverConfig(), 2)
	if err != nil {
		t.Fatalf("CheckProgram: %v", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("expected no file results for an empty program, got %d", len(result.Files))
	}
}
