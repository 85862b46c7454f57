// Package driver implements the §6.2/§6.4 surface a host embeds the
// checker behind: check_program's parallel per-file fan-out, get_type_at/
// format_type for tooling, an on-disk diagnostics cache keyed by content
// hash, and the newline-delimited-JSON server loop. Grounded on the
// teacher's internal/driver (parallel.go's errgroup fan-out, dcache.go's
// msgpack disk cache), adapted to the §6.1 bound-program input this
// checker takes instead of the teacher's own lex/parse/bind pipeline.
package driver

import (
	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
)

// BoundFile is one file of the "bound program" §6.2's check_program takes
// as input: an already-parsed, already-bound AST plus the symbol table the
// external binder built for it (§1 lists lexing/parsing/binding as
// out-of-scope collaborators; this is the shape their output takes).
type BoundFile struct {
	Path    string
	File    *ast.File
	Symbols *symbols.Table
	// ContentHash is the SHA-256 digest of the file's raw JSON payload as
	// handed to the loader, used only as the disk cache key (§6.4 recycle
	// semantics) — this package never reads source text itself.
	ContentHash [32]byte
}

// Program is every file check_program runs over in one pass.
type Program []BoundFile
