// Package ast defines the fixed-shape node contract the checker consumes
// from the host binder (§6.1). It is deliberately thin: the host owns
// parsing and node construction, and hands the checker a stable,
// already-bound tree to walk.
package ast

import "github.com/mohsen1/tsz-sub014/internal/source"

// NodeID identifies a node within a File, stable across incremental edits
// the host may apply between check_program calls.
type NodeID uint32

// NoNodeID marks the absence of a node.
const NoNodeID NodeID = 0

// Kind enumerates the syntax forms the checker dispatches on. The host may
// carry richer syntax internally; only the shapes the checker inspects are
// named here.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindIdentifier
	KindNumericLiteral
	KindStringLiteral
	KindBooleanLiteral
	KindNullLiteral
	KindBigIntLiteral

	KindObjectLiteral
	KindArrayLiteral
	KindPropertyAssignment

	KindCallExpression
	KindNewExpression
	KindPropertyAccess
	KindElementAccess
	KindBinaryExpression
	KindUnaryExpression
	KindConditionalExpression
	KindArrowFunction
	KindFunctionExpression
	KindAsExpression
	KindSatisfiesExpression
	KindNonNullExpression
	KindTemplateExpression

	KindVariableDeclaration
	KindFunctionDeclaration
	KindClassDeclaration
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindEnumDeclaration
	KindParameter

	KindIfStatement
	KindReturnStatement
	KindBlock
	KindExpressionStatement

	KindTypeReference
	KindUnionType
	KindIntersectionType
	KindArrayType
	KindTupleType
	KindFunctionType
	KindMappedType
	KindConditionalType
	KindIndexedAccessType
	KindTypeOperator // keyof, readonly, unique
	KindLiteralType
	KindTemplateLiteralType
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindIdentifier:
		return "identifier"
	case KindCallExpression:
		return "call"
	case KindPropertyAccess:
		return "property-access"
	case KindBinaryExpression:
		return "binary"
	default:
		return "node"
	}
}

// Node is the fixed-shape view the checker needs: its own kind, its source
// span for diagnostics, and the IDs of any children relevant to typing.
// The host's real AST carries far more (trivia, comments, parent pointers);
// File.Node(id) projects down to this shape.
type Node struct {
	ID       NodeID
	Kind     Kind
	Span     source.Span
	Parent   NodeID
	Children []NodeID

	// Text carries identifier names, string-literal text, and numeric
	// literal text (parsed lazily by the caller as needed).
	Text string
}

// File is one source file's bound syntax tree, as handed to the checker by
// the host binder.
type File struct {
	Path  string
	FID   source.FileID
	nodes []Node
}

// NewFile constructs a File from a flat node table; node 0 is reserved as
// the invalid sentinel, matching the interner's zero-slot convention.
func NewFile(path string, fid source.FileID, nodes []Node) *File {
	f := &File{Path: path, FID: fid}
	f.nodes = append(f.nodes, Node{Kind: KindInvalid})
	f.nodes = append(f.nodes, nodes...)
	return f
}

// Node returns the node for id, or the invalid sentinel if out of range.
func (f *File) Node(id NodeID) Node {
	if int(id) >= len(f.nodes) {
		return Node{Kind: KindInvalid}
	}
	return f.nodes[id]
}

// Root returns the file's top-level node (index 1, just past the sentinel).
func (f *File) Root() NodeID {
	if len(f.nodes) < 2 {
		return NoNodeID
	}
	return 1
}

// Walk visits id and its descendants in pre-order.
func (f *File) Walk(id NodeID, visit func(NodeID, Node) bool) {
	if id == NoNodeID {
		return
	}
	n := f.Node(id)
	if !visit(id, n) {
		return
	}
	for _, c := range n.Children {
		f.Walk(c, visit)
	}
}
