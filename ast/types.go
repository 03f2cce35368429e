package ast

import "github.com/gibiansky/hindent/internal/token"

// TyCon is a type constructor reference, e.g. "Int" or "Maybe".
type TyCon struct {
	NamePos token.Position
	Name    string
}

func (t *TyCon) typeNode() {}

func (t *TyCon) Kind() Kind          { return KindType }
func (t *TyCon) Pos() token.Position { return t.NamePos }
func (t *TyCon) End() token.Position { return t.NamePos.Advance(len(t.Name)) }

// TyVar is a type variable, e.g. "a".
type TyVar struct {
	NamePos token.Position
	Name    string
}

func (t *TyVar) typeNode() {}

func (t *TyVar) Kind() Kind          { return KindType }
func (t *TyVar) Pos() token.Position { return t.NamePos }
func (t *TyVar) End() token.Position { return t.NamePos.Advance(len(t.Name)) }

// TyApp is a type application, e.g. "Maybe a" or "Either e a".
type TyApp struct {
	Fn   Type
	Args []Type
}

func (t *TyApp) typeNode() {}

func (t *TyApp) Kind() Kind          { return KindType }
func (t *TyApp) Pos() token.Position { return t.Fn.Pos() }
func (t *TyApp) End() token.Position { return t.Args[len(t.Args)-1].End() }

// TyFun is a function type "X -> Y". Arrow chains associate to the right,
// so "a -> b -> c" is TyFun{a, TyFun{b, c}}.
type TyFun struct {
	X Type
	Y Type
}

func (t *TyFun) typeNode() {}

func (t *TyFun) Kind() Kind          { return KindType }
func (t *TyFun) Pos() token.Position { return t.X.Pos() }
func (t *TyFun) End() token.Position { return t.Y.End() }

// TyList is a list type, e.g. "[Int]".
type TyList struct {
	Lbrack token.Position
	Elem   Type
	Rbrack token.Position
}

func (t *TyList) typeNode() {}

func (t *TyList) Kind() Kind          { return KindType }
func (t *TyList) Pos() token.Position { return t.Lbrack }
func (t *TyList) End() token.Position { return t.Rbrack.Advance(1) }

// TyTuple is a tuple type, e.g. "(Int, Bool)".
type TyTuple struct {
	Lparen token.Position
	Elems  []Type
	Rparen token.Position
}

func (t *TyTuple) typeNode() {}

func (t *TyTuple) Kind() Kind          { return KindType }
func (t *TyTuple) Pos() token.Position { return t.Lparen }
func (t *TyTuple) End() token.Position { return t.Rparen.Advance(1) }

// TyParen is an explicitly parenthesized type.
type TyParen struct {
	Lparen token.Position
	X      Type
	Rparen token.Position
}

func (t *TyParen) typeNode() {}

func (t *TyParen) Kind() Kind          { return KindType }
func (t *TyParen) Pos() token.Position { return t.Lparen }
func (t *TyParen) End() token.Position { return t.Rparen.Advance(1) }

// TyQual is a qualified type: a constraint context followed by "=>" and
// the quantified type, e.g. "Monad m => m a".
type TyQual struct {
	Ctx *Context
	Ty  Type
}

func (t *TyQual) typeNode() {}

func (t *TyQual) Kind() Kind          { return KindType }
func (t *TyQual) Pos() token.Position { return t.Ctx.Pos() }
func (t *TyQual) End() token.Position { return t.Ty.End() }
