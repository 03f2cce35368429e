// Package ast defines the abstract syntax tree representation of Haskell
// source code consumed by the printing engine. The tree is produced by an
// external parser and is treated as read-only input: the printer never
// mutates nodes, and uses source positions only for layout heuristics such
// as "were these two sub-expressions written on the same line".
package ast

import "github.com/gibiansky/hindent/internal/token"

// Kind identifies the syntactic category of a node. Custom renderers are
// registered per kind; a renderer receives every node of its kind and may
// defer to the structural default for shapes it does not special-case.
type Kind int

const (
	KindModule Kind = iota
	KindImport
	KindDecl
	KindConDecl
	KindField
	KindContext
	KindDeriving
	KindType
	KindExpr
	KindPat
	KindRhs
	KindGuardedAlt
	KindAlt
)

// String returns a human friendly name for the kind.
func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindImport:
		return "import"
	case KindDecl:
		return "declaration"
	case KindConDecl:
		return "constructor declaration"
	case KindField:
		return "field declaration"
	case KindContext:
		return "context"
	case KindDeriving:
		return "deriving clause"
	case KindType:
		return "type"
	case KindExpr:
		return "expression"
	case KindPat:
		return "pattern"
	case KindRhs:
		return "right-hand side"
	case KindGuardedAlt:
		return "guarded alternative"
	case KindAlt:
		return "case alternative"
	default:
		return "unknown"
	}
}

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// Kind returns the syntactic category used for renderer dispatch.
	Kind() Kind
}

// Decl represents a top-level or local declaration node.
type Decl interface {
	Node
	declNode()
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Type represents a type expression node.
type Type interface {
	Node
	typeNode()
}

// Pat represents a pattern node.
type Pat interface {
	Node
	patNode()
}
