package driver

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
)

// boundFileJSON is the wire shape a host binder (external to this module,
// per §1's lex/parse/bind non-goals) hands the driver in place of raw
// source text: an already-bound AST plus the symbol declarations the
// binder resolved. ast.Node and symbols' fields are plain exported structs,
// so they round-trip through encoding/json without bespoke marshaling.
// Text is optional source the binder had on hand; this package never lexes
// or parses it, it only feeds a FileSet so diagfmt can render snippet
// context and line/column positions around a diagnostic's span.
type boundFileJSON struct {
	Text    string           `json:"text,omitempty"`
	Nodes   []ast.Node       `json:"nodes"`
	Symbols []symbolDeclJSON `json:"symbols"`
}

type symbolDeclJSON struct {
	Scope symbols.ScopeID `json:"scope"`
	Name  string          `json:"name"`
	Flags symbols.Flags   `json:"flags"`
	Decl  ast.NodeID      `json:"decl"`
}

// DecodeBoundFile parses one file's bound-program JSON payload into a
// BoundFile, registering its optional source text (if any) into fs so
// diagfmt can resolve line/column positions and snippet context for
// diagnostics raised against it. path is used for the resulting ast.File's
// Path and for the FileResult the checker reports against; ContentHash
// hashes the raw payload bytes, since this package has no source text of
// its own to hash independently of what the payload carries.
func DecodeBoundFile(fs *source.FileSet, path string, payload []byte) (BoundFile, error) {
	var bf boundFileJSON
	if err := json.Unmarshal(payload, &bf); err != nil {
		return BoundFile{}, fmt.Errorf("driver: decode bound file %q: %w", path, err)
	}

	var fid source.FileID
	if fs != nil {
		fid = fs.AddVirtual(path, []byte(bf.Text))
	}
	file := ast.NewFile(path, fid, bf.Nodes)

	table := symbols.NewTable()
	for _, decl := range bf.Symbols {
		table.Declare(decl.Scope, decl.Name, decl.Flags, decl.Decl)
	}

	return BoundFile{
		Path:        path,
		File:        file,
		Symbols:     table,
		ContentHash: sha256.Sum256(payload),
	}, nil
}

// ResolveBoundJSON implements Server.Resolve for a host that has already
// bound its files upstream and serialized the result per boundFileJSON:
// each map value is a file's bound-program JSON payload, not raw source
// text. This is the §6.4 `check` request's intended use of its `files`
// field in this module's boundary, since the driver package itself never
// lexes or parses. The server only ever reports TSCode strings back over
// the wire, so no FileSet is kept around past decoding.
func ResolveBoundJSON(files map[string]string) (Program, error) {
	prog, _, err := LoadProgramJSON(files)
	return prog, err
}

// LoadProgramJSON decodes every file in files (each a bound-program JSON
// payload per DecodeBoundFile) into a Program, plus the FileSet their
// source text (if supplied) was registered into. Tooling that needs to
// pretty-print diagnostics (the check CLI command, a future LSP host)
// wants the FileSet; Server.Resolve's signature has no room for a second
// return value, which is why ResolveBoundJSON discards it.
func LoadProgramJSON(files map[string]string) (Program, *source.FileSet, error) {
	fs := source.NewFileSet()
	prog := make(Program, 0, len(files))
	for path, payload := range files {
		bf, err := DecodeBoundFile(fs, path, []byte(payload))
		if err != nil {
			return nil, nil, err
		}
		prog = append(prog, bf)
	}
	return prog, fs, nil
}
