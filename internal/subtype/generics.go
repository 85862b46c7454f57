package subtype

import (
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// refSubtype implements §4.4.2 Generics: two Refs to the same declaration
// compare their type arguments under the declaration's cached variance
// (this engine does not yet carry a variance table, so it conservatively
// compares every argument invariantly via the Identical relation, which is
// always sound though occasionally stricter than TSC's inferred variance).
// Refs to different origins are not handled here; the caller falls back to
// structural expansion through the resolved Target.
func (e *Engine) refSubtype(rel Relation, sub, sup types.RefInfo, at source.Span) (result bool, handled bool) {
	if sub.Name != sup.Name || len(sub.TypeArgs) != len(sup.TypeArgs) {
		return false, false
	}
	for i := range sub.TypeArgs {
		if !e.relate(RelIdentical, sub.TypeArgs[i], sup.TypeArgs[i], at) {
			return false, true
		}
	}
	return true, true
}
