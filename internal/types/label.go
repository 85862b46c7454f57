package types

import (
	"strconv"
	"strings"

	"github.com/mohsen1/tsz-sub014/internal/source"
)

const labelDepthLimit = 8

// Label renders a human-readable rendering of a type, the form
// `format_type` (§6.2) and diagnostic messages both build on. Depth is
// capped so a pathological or not-yet-fully-lowered cyclic type can't spin
// the printer forever.
func Label(in *Interner, strs *source.Interner, id TypeID) string {
	return labelDepth(in, strs, id, 0)
}

func labelDepth(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	if id == NoTypeID {
		return "?"
	}
	if depth > labelDepthLimit {
		return "..."
	}
	if in == nil {
		return "?"
	}
	tt, ok := in.Lookup(id)
	if !ok {
		return "?"
	}
	next := func(t TypeID) string { return labelDepth(in, strs, t, depth+1) }
	switch tt.Kind {
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindNever:
		return "never"
	case KindVoid:
		return "void"
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindBigInt:
		return "bigint"
	case KindSymbol:
		return "symbol"
	case KindUniqueSymbol:
		info, _ := in.UniqueSymbol(id)
		return "unique symbol /* " + name(strs, source.StringID(info.Name)) + " */"
	case KindLiteral:
		return labelLiteral(in, strs, id)
	case KindArray:
		elem := next(tt.A)
		if needsParens(elem) {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	case KindTuple:
		return labelTuple(in, strs, id, depth)
	case KindObject:
		return labelObject(in, strs, id, depth)
	case KindUnion:
		return labelJoin(in, strs, id, depth, " | ", func(i TypeID) bool { return needsUnionParens(in, i) })
	case KindIntersection:
		return labelJoin(in, strs, id, depth, " & ", func(i TypeID) bool { return needsUnionParens(in, i) })
	case KindFunction:
		return labelFn(in, strs, id, depth)
	case KindTypeParameter:
		p, ok := in.TypeParam(id)
		if !ok {
			return "T"
		}
		return name(strs, source.StringID(p.Name))
	case KindConditional:
		c, _ := in.Conditional(id)
		return next(c.Check) + " extends " + next(c.Extends) + " ? " + next(c.True) + " : " + next(c.False)
	case KindMapped:
		return labelMapped(in, strs, id, depth)
	case KindIndexedAccess:
		obj, index, _ := in.IndexedAccessOperands(id)
		return next(obj) + "[" + next(index) + "]"
	case KindKeyOf:
		operand, _ := in.KeyOfOperand(id)
		return "keyof " + next(operand)
	case KindTemplateLiteral:
		return labelTemplateLiteral(in, strs, id, depth)
	case KindStringMapping:
		return labelStringMapping(in, strs, id, depth)
	case KindEnum:
		e, _ := in.Enum(id)
		return name(strs, source.StringID(e.Name))
	case KindEnumMember:
		ref, ok := in.EnumMember(id)
		if !ok {
			return "?"
		}
		e, _ := in.Enum(ref.Enum)
		member := "?"
		if ref.Index >= 0 && ref.Index < len(e.Members) {
			member = name(strs, source.StringID(e.Members[ref.Index].Name))
		}
		return name(strs, source.StringID(e.Name)) + "." + member
	case KindRef:
		r, _ := in.Ref(id)
		if len(r.TypeArgs) == 0 {
			return name(strs, source.StringID(r.Name))
		}
		parts := make([]string, len(r.TypeArgs))
		for i, a := range r.TypeArgs {
			parts[i] = next(a)
		}
		return name(strs, source.StringID(r.Name)) + "<" + strings.Join(parts, ", ") + ">"
	default:
		return "?"
	}
}

func labelLiteral(in *Interner, strs *source.Interner, id TypeID) string {
	lit, ok := in.Literal(id)
	if !ok {
		return "?"
	}
	switch lit.Base {
	case KindString:
		return strconv.Quote(name(strs, source.StringID(lit.Str)))
	case KindNumber:
		return strconv.FormatFloat(lit.Num, 'g', -1, 64)
	case KindBoolean:
		if lit.Bool {
			return "true"
		}
		return "false"
	case KindBigInt:
		return name(strs, source.StringID(lit.BigIntText)) + "n"
	default:
		return "?"
	}
}

func labelTuple(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	t, ok := in.Tuple(id)
	if !ok {
		return "[?]"
	}
	parts := make([]string, 0, len(t.Elems))
	for i, e := range t.Elems {
		s := labelDepth(in, strs, e, depth+1)
		if i == t.RestAt {
			s = "..." + s
		} else if i < len(t.Optional) && t.Optional[i] {
			s += "?"
		}
		parts = append(parts, s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func labelObject(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	o, ok := in.Object(id)
	if !ok {
		return "{}"
	}
	if len(o.Properties) == 0 && len(o.IndexSignatures) == 0 && len(o.CallSignatures) == 0 && len(o.ConstructSignatures) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(o.Properties)+len(o.IndexSignatures))
	for _, p := range o.Properties {
		s := name(strs, source.StringID(p.Name))
		if p.Optional {
			s += "?"
		}
		prefix := ""
		if p.Readonly {
			prefix = "readonly "
		}
		parts = append(parts, prefix+s+": "+labelDepth(in, strs, p.Type, depth+1))
	}
	for _, sig := range o.IndexSignatures {
		prefix := ""
		if sig.Readonly {
			prefix = "readonly "
		}
		parts = append(parts, prefix+"[key: "+labelDepth(in, strs, sig.KeyType, depth+1)+"]: "+labelDepth(in, strs, sig.ValueType, depth+1))
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func labelJoin(in *Interner, strs *source.Interner, id TypeID, depth int, sep string, parenthesize func(TypeID) bool) string {
	var members []TypeID
	if u, ok := in.Union(id); ok {
		members = u.Members
	} else if x, ok := in.Intersection(id); ok {
		members = x.Members
	}
	parts := make([]string, len(members))
	for i, m := range members {
		s := labelDepth(in, strs, m, depth+1)
		if parenthesize(m) {
			s = "(" + s + ")"
		}
		parts[i] = s
	}
	return strings.Join(parts, sep)
}

func needsUnionParens(in *Interner, id TypeID) bool {
	tt, ok := in.Lookup(id)
	if !ok {
		return false
	}
	return tt.Kind == KindFunction || tt.Kind == KindConditional
}

func needsParens(s string) bool {
	return strings.Contains(s, "|") || strings.Contains(s, "&") || strings.Contains(s, "extends") || strings.Contains(s, "=>")
}

func labelFn(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	f, ok := in.Fn(id)
	if !ok {
		return "() => ?"
	}
	params := make([]string, 0, len(f.Params)+1)
	if f.ThisParam != NoTypeID {
		params = append(params, "this: "+labelDepth(in, strs, f.ThisParam, depth+1))
	}
	for _, p := range f.Params {
		s := name(strs, source.StringID(p.Name))
		if p.Rest {
			s = "..." + s
		} else if p.Optional {
			s += "?"
		}
		params = append(params, s+": "+labelDepth(in, strs, p.Type, depth+1))
	}
	tparams := ""
	if len(f.TypeParams) > 0 {
		parts := make([]string, len(f.TypeParams))
		for i, tp := range f.TypeParams {
			parts[i] = labelDepth(in, strs, tp, depth+1)
		}
		tparams = "<" + strings.Join(parts, ", ") + ">"
	}
	return tparams + "(" + strings.Join(params, ", ") + ") => " + labelDepth(in, strs, f.Return, depth+1)
}

func labelMapped(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	m, ok := in.Mapped(id)
	if !ok {
		return "{ [K in ?]: ? }"
	}
	p, _ := in.TypeParam(m.TypeParam)
	k := name(strs, source.StringID(p.Name))
	head := "[" + k + " in " + labelDepth(in, strs, m.Constraint, depth+1)
	if m.NameType != NoTypeID {
		head += " as " + labelDepth(in, strs, m.NameType, depth+1)
	}
	head += "]"
	head += modifierLabel(m.Optional, "?")
	ro := modifierPrefix(m.Readonly, "readonly ")
	return "{ " + ro + head + ": " + labelDepth(in, strs, m.TemplateType, depth+1) + " }"
}

func modifierLabel(mod Modifier, suffix string) string {
	switch mod {
	case ModifierAdd:
		return "+" + suffix
	case ModifierRemove:
		return "-" + suffix
	default:
		return ""
	}
}

func modifierPrefix(mod Modifier, prefix string) string {
	switch mod {
	case ModifierAdd:
		return "+" + prefix
	case ModifierRemove:
		return "-" + prefix
	default:
		return ""
	}
}

func labelTemplateLiteral(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	t, ok := in.TemplateLiteral(id)
	if !ok {
		return "`?`"
	}
	var b strings.Builder
	b.WriteByte('`')
	for i, q := range t.Quasis {
		b.WriteString(name(strs, source.StringID(q)))
		if i < len(t.Types) {
			b.WriteString("${")
			b.WriteString(labelDepth(in, strs, t.Types[i], depth+1))
			b.WriteString("}")
		}
	}
	b.WriteByte('`')
	return b.String()
}

func labelStringMapping(in *Interner, strs *source.Interner, id TypeID, depth int) string {
	s, ok := in.StringMapping(id)
	if !ok {
		return "?"
	}
	var head string
	switch s.Mapping {
	case StringMappingUppercase:
		head = "Uppercase"
	case StringMappingLowercase:
		head = "Lowercase"
	case StringMappingCapitalize:
		head = "Capitalize"
	case StringMappingUncapitalize:
		head = "Uncapitalize"
	}
	return head + "<" + labelDepth(in, strs, s.Target, depth+1) + ">"
}

func name(strs *source.Interner, id source.StringID) string {
	if strs == nil {
		return "?"
	}
	s, ok := strs.Lookup(id)
	if !ok || s == "" {
		return "?"
	}
	return s
}
