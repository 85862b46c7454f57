package checkexpr

import (
	"testing"

	"github.com/mohsen1/tsz-sub014/internal/ast"
	"github.com/mohsen1/tsz-sub014/internal/diag"
	"github.com/mohsen1/tsz-sub014/internal/source"
	"github.com/mohsen1/tsz-sub014/internal/symbols"
	"github.com/mohsen1/tsz-sub014/internal/types"
)

func newTestChecker(t *testing.T, nodes []ast.Node) *Checker {
	t.Helper()
	strs := source.NewInterner()
	symtab := symbols.NewTable()
	file := ast.NewFile("test.ts", 0, nodes)
	return New(strs, diag.BagReporter{Bag: diag.NewBag(16)}, symtab, file)
}

func TestTypeOfNumericLiteralStaysFresh(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindNumericLiteral, Text: "42"},
	}
	c := newTestChecker(t, nodes)
	b := c.Interner().Builtins()

	got := c.TypeOf(1)
	if got == b.Number {
		t.Fatalf("expected a fresh numeric literal type, got widened 'number'")
	}
	lit, ok := c.Interner().Literal(got)
	if !ok || lit.Num != 42 {
		t.Errorf("expected a literal type for 42, got %v", got)
	}
}

func TestTypeOfBinaryArithmetic(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindNumericLiteral, Text: "1", Parent: 3},
		{ID: 2, Kind: ast.KindNumericLiteral, Text: "2", Parent: 3},
		{ID: 3, Kind: ast.KindBinaryExpression, Text: "+", Children: []ast.NodeID{1, 2}},
	}
	c := newTestChecker(t, nodes)
	b := c.Interner().Builtins()

	got := c.TypeOf(3)
	if got != b.Number {
		t.Errorf("expected 1 + 2 to type as number, got %v", got)
	}
}

func TestTypeOfBinaryStringConcat(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindStringLiteral, Text: "a", Parent: 3},
		{ID: 2, Kind: ast.KindNumericLiteral, Text: "1", Parent: 3},
		{ID: 3, Kind: ast.KindBinaryExpression, Text: "+", Children: []ast.NodeID{1, 2}},
	}
	c := newTestChecker(t, nodes)
	b := c.Interner().Builtins()

	got := c.TypeOf(3)
	if got != b.String {
		t.Errorf("expected \"a\" + 1 to type as string, got %v", got)
	}
}

func TestTypeOfConditionalUnionsBranches(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindBooleanLiteral, Text: "true", Parent: 4},
		{ID: 2, Kind: ast.KindStringLiteral, Text: "a", Parent: 4},
		{ID: 3, Kind: ast.KindNumericLiteral, Text: "1", Parent: 4},
		{ID: 4, Kind: ast.KindConditionalExpression, Children: []ast.NodeID{1, 2, 3}},
	}
	c := newTestChecker(t, nodes)

	got := c.TypeOf(4)
	u, ok := c.Interner().Union(got)
	if !ok || len(u.Members) != 2 {
		t.Fatalf("expected a 2-member union from the conditional's branches, got %v", got)
	}
}

// TestIfStatementNarrowsTypeofGuard builds:
//
//	let x: string | number;
//	if (typeof x === "string") { x; } else { x; }
//
// and checks that the identifier's type narrows to `string` on the true
// branch and to `number` on the false branch (§4.6).
func TestIfStatementNarrowsTypeofGuard(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindIdentifier, Text: "x"},
		{ID: 2, Kind: ast.KindIdentifier, Text: "x", Parent: 3},
		{ID: 3, Kind: ast.KindUnaryExpression, Text: "typeof", Children: []ast.NodeID{2}, Parent: 5},
		{ID: 4, Kind: ast.KindStringLiteral, Text: "string", Parent: 5},
		{ID: 5, Kind: ast.KindBinaryExpression, Text: "===", Children: []ast.NodeID{3, 4}, Parent: 12},
		{ID: 6, Kind: ast.KindIdentifier, Text: "x", Parent: 7},
		{ID: 7, Kind: ast.KindExpressionStatement, Children: []ast.NodeID{6}, Parent: 8},
		{ID: 8, Kind: ast.KindBlock, Children: []ast.NodeID{7}, Parent: 12},
		{ID: 9, Kind: ast.KindIdentifier, Text: "x", Parent: 10},
		{ID: 10, Kind: ast.KindExpressionStatement, Children: []ast.NodeID{9}, Parent: 11},
		{ID: 11, Kind: ast.KindBlock, Children: []ast.NodeID{10}, Parent: 12},
		{ID: 12, Kind: ast.KindIfStatement, Children: []ast.NodeID{5, 8, 11}},
	}
	c := newTestChecker(t, nodes)
	b := c.Interner().Builtins()
	strOrNum := c.Interner().InternUnion([]types.TypeID{b.String, b.Number})

	sym := c.symtab.Declare(0, "x", symbols.FlagValue, 1)
	c.setBindingType(sym, strOrNum)

	c.CheckStatement(12)

	if got := c.cache[6]; got != b.String {
		t.Errorf("expected 'x' narrowed to string on the then-branch, got %v", got)
	}
	if got := c.cache[9]; got != b.Number {
		t.Errorf("expected 'x' narrowed to number on the else-branch, got %v", got)
	}
}

// TestCallResolutionPicksFirstAdmittingOverload builds a two-overload
// callee `f` — one accepting string, one accepting number — and a call
// `f(1)`, checking that the number-accepting overload's return type wins.
func TestCallResolutionPicksFirstAdmittingOverload(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindIdentifier, Text: "f", Parent: 3},
		{ID: 2, Kind: ast.KindNumericLiteral, Text: "1", Parent: 3},
		{ID: 3, Kind: ast.KindCallExpression, Children: []ast.NodeID{1, 2}},
	}
	c := newTestChecker(t, nodes)
	b := c.Interner().Builtins()
	in := c.Interner()

	overloadA := in.InternFn(types.FnInfo{
		Params: []types.ParamInfo{{Type: b.String}},
		Return: b.String,
	})
	overloadB := in.InternFn(types.FnInfo{
		Params: []types.ParamInfo{{Type: b.Number}},
		Return: b.Boolean,
	})
	overloadSet := in.InternUnion([]types.TypeID{overloadA, overloadB})

	sym := c.symtab.Declare(0, "f", symbols.FlagValue, 1)
	c.setBindingType(sym, overloadSet)

	got := c.TypeOf(3)
	if got != b.Boolean {
		t.Errorf("expected the number-accepting overload to win and return boolean, got %v", got)
	}
}

func TestCallResolutionReportsNoMatchingOverload(t *testing.T) {
	nodes := []ast.Node{
		{ID: 1, Kind: ast.KindIdentifier, Text: "f", Parent: 3},
		{ID: 2, Kind: ast.KindStringLiteral, Text: "x", Parent: 3},
		{ID: 3, Kind: ast.KindCallExpression, Children: []ast.NodeID{1, 2}},
	}
	bag := diag.NewBag(16)
	strs := source.NewInterner()
	symtab := symbols.NewTable()
	file := ast.NewFile("test.ts", 0, nodes)
	c := New(strs, diag.BagReporter{Bag: bag}, symtab, file)
	b := c.Interner().Builtins()
	in := c.Interner()

	numOnly := in.InternFn(types.FnInfo{
		Params: []types.ParamInfo{{Type: b.Number}},
		Return: b.Number,
	})
	sym := c.symtab.Declare(0, "f", symbols.FlagValue, 1)
	c.setBindingType(sym, numOnly)

	c.TypeOf(3)
	if bag.Len() == 0 {
		t.Errorf("expected a TS2769 diagnostic when no overload admits the call")
	}
}
