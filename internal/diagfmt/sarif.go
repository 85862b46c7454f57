package diagfmt

import (
	"io"

	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
)

// Sarif is the SARIF output entry point. It writes nothing to w: no SARIF
// encoder is implemented, so its arguments are ignored.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) {
	_ = w
	_ = bag
	_ = fs
	_ = meta
}
