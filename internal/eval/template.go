package eval

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

// EvalTemplateLiteral expands a template-literal type's union placeholders
// by Cartesian product into a union of concrete string-literal types,
// collapsing to `string` if the product would exceed MaxTemplateExpansion
// (§4.3.4).
func (e *Evaluator) EvalTemplateLiteral(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()

	t, ok := e.in.TemplateLiteral(id)
	if !ok {
		return id
	}

	alternatives := make([][]string, len(t.Types))
	cardinality := 1
	for i, ty := range t.Types {
		alts, ok := e.literalAlternatives(ty)
		if !ok {
			return e.in.Builtins().String
		}
		alternatives[i] = alts
		cardinality *= len(alts)
		if cardinality > e.cfg.MaxTemplateExpansion {
			return e.in.Builtins().String
		}
	}

	quasis := make([]string, len(t.Quasis))
	for i, q := range t.Quasis {
		quasis[i] = e.strs.MustLookup(source.StringID(q))
	}

	var results []string
	var build func(i int, acc string)
	build = func(i int, acc string) {
		if i == len(alternatives) {
			results = append(results, acc)
			return
		}
		for _, alt := range alternatives[i] {
			build(i+1, acc+alt+quasis[i+1])
		}
	}
	build(0, quasis[0])

	members := make([]types.TypeID, 0, len(results))
	for _, s := range results {
		sid := e.strs.Intern(s)
		members = append(members, e.in.InternStringLiteral(types.StringID(sid), false))
	}
	return e.in.InternUnion(members)
}

// literalAlternatives enumerates the concrete string forms a placeholder's
// type can take: string/number/boolean literal types render directly,
// unions recurse member-wise; anything else (a bare `string`, another
// template literal left symbolic) means the expansion cannot be fully
// enumerated and the caller must collapse to `string`.
func (e *Evaluator) literalAlternatives(id types.TypeID) ([]string, bool) {
	if u, ok := e.in.Union(id); ok {
		var out []string
		for _, m := range u.Members {
			alts, ok := e.literalAlternatives(m)
			if !ok {
				return nil, false
			}
			out = append(out, alts...)
		}
		return out, true
	}
	lit, ok := e.in.Literal(id)
	if !ok {
		return nil, false
	}
	switch lit.Base {
	case types.KindString:
		return []string{e.strs.MustLookup(source.StringID(lit.Str))}, true
	case types.KindNumber:
		return []string{floatString(lit.Num)}, true
	case types.KindBoolean:
		if lit.Bool {
			return []string{"true"}, true
		}
		return []string{"false"}, true
	default:
		return nil, false
	}
}

func floatString(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// EvalStringMapping applies an intrinsic Upper/Lower/Capitalize/
// Uncapitalize transform to a string-literal operand; template-literal
// operands are left symbolic since the transform would have to distribute
// over every still-unresolved placeholder (§4.3.5).
func (e *Evaluator) EvalStringMapping(id types.TypeID, at source.Span) types.TypeID {
	if !e.enter(at) {
		defer e.leave()
		return e.errorType()
	}
	defer e.leave()

	sm, ok := e.in.StringMapping(id)
	if !ok {
		return id
	}

	if u, ok := e.in.Union(sm.Target); ok {
		members := make([]types.TypeID, 0, len(u.Members))
		for _, m := range u.Members {
			members = append(members, e.EvalStringMapping(e.in.InternStringMapping(sm.Mapping, m), at))
		}
		return e.in.InternUnion(members)
	}

	lit, ok := e.in.Literal(sm.Target)
	if !ok || lit.Base != types.KindString {
		return id // symbolic (e.g. template-literal) operand stays unevaluated
	}

	text := e.strs.MustLookup(source.StringID(lit.Str))
	mapped := applyStringMapping(sm.Mapping, text)
	return e.in.InternStringLiteral(types.StringID(e.strs.Intern(mapped)), false)
}

// applyStringMapping performs the case transform itself; Upper/Lowercase go
// through golang.org/x/text/cases for Unicode-correct folding, while
// Capitalize/Uncapitalize only ever touch the first rune and so stay on
// strings.ToUpper/ToLower applied to that single rune.
func applyStringMapping(kind types.StringMappingKind, s string) string {
	switch kind {
	case types.StringMappingUppercase:
		return cases.Upper(language.Und).String(s)
	case types.StringMappingLowercase:
		return cases.Lower(language.Und).String(s)
	case types.StringMappingCapitalize:
		if s == "" {
			return s
		}
		_, size := utf8.DecodeRuneInString(s)
		return strings.ToUpper(s[:size]) + s[size:]
	case types.StringMappingUncapitalize:
		if s == "" {
			return s
		}
		_, size := utf8.DecodeRuneInString(s)
		return strings.ToLower(s[:size]) + s[size:]
	default:
		return s
	}
}
