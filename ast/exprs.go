package ast

import "github.com/gibiansky/hindent/internal/token"

// Var is an expression that refers to a variable or constructor by name.
type Var struct {
	NamePos token.Position
	Name    string
}

func (x *Var) exprNode() {}

func (x *Var) Kind() Kind          { return KindExpr }
func (x *Var) Pos() token.Position { return x.NamePos }
func (x *Var) End() token.Position { return x.NamePos.Advance(len(x.Name)) }

// Lit is a literal carried as its exact source text, e.g. "42" or "\"hi\"".
// Literals are atomic: the printer never splits them across lines.
type Lit struct {
	LitPos token.Position
	Text   string
}

func (x *Lit) exprNode() {}

func (x *Lit) Kind() Kind          { return KindExpr }
func (x *Lit) Pos() token.Position { return x.LitPos }
func (x *Lit) End() token.Position { return x.LitPos.Advance(len(x.Text)) }

// App is a function application with one or more arguments.
type App struct {
	Fn   Expr
	Args []Expr
}

func (x *App) exprNode() {}

func (x *App) Kind() Kind          { return KindExpr }
func (x *App) Pos() token.Position { return x.Fn.Pos() }
func (x *App) End() token.Position { return x.Args[len(x.Args)-1].End() }

// OpApp is an infix operator application, e.g. "x + y" or "f $ g x".
// Operator chains associate to the left, so "f <$> a <*> b" is
// OpApp{OpApp{f, "<$>", a}, "<*>", b}.
type OpApp struct {
	X     Expr
	OpPos token.Position
	Op    string
	Y     Expr
}

func (x *OpApp) exprNode() {}

func (x *OpApp) Kind() Kind          { return KindExpr }
func (x *OpApp) Pos() token.Position { return x.X.Pos() }
func (x *OpApp) End() token.Position { return x.Y.End() }

// Lambda is a lambda abstraction, e.g. "\x y -> x + y".
type Lambda struct {
	Backslash token.Position
	Pats      []Pat
	Body      Expr
}

func (x *Lambda) exprNode() {}

func (x *Lambda) Kind() Kind          { return KindExpr }
func (x *Lambda) Pos() token.Position { return x.Backslash }
func (x *Lambda) End() token.Position { return x.Body.End() }

// Case is a case expression with one or more alternatives.
type Case struct {
	CasePos token.Position
	Scrut   Expr
	Alts    []*Alt
}

func (x *Case) exprNode() {}

func (x *Case) Kind() Kind          { return KindExpr }
func (x *Case) Pos() token.Position { return x.CasePos }
func (x *Case) End() token.Position { return x.Alts[len(x.Alts)-1].End() }

// Alt is a single case alternative: a pattern, a right-hand side and an
// optional where-clause.
type Alt struct {
	P     Pat
	Body  *Rhs
	Where []Decl
}

func (x *Alt) Kind() Kind          { return KindAlt }
func (x *Alt) Pos() token.Position { return x.P.Pos() }

func (x *Alt) End() token.Position {
	if len(x.Where) > 0 {
		return x.Where[len(x.Where)-1].End()
	}
	return x.Body.End()
}

// Let is a let expression, e.g. "let x = 1 in x + x".
type Let struct {
	LetPos token.Position
	Binds  []Decl
	Body   Expr
}

func (x *Let) exprNode() {}

func (x *Let) Kind() Kind          { return KindExpr }
func (x *Let) Pos() token.Position { return x.LetPos }
func (x *Let) End() token.Position { return x.Body.End() }

// If is a conditional expression.
type If struct {
	IfPos token.Position
	Cond  Expr
	Then  Expr
	Else  Expr
}

func (x *If) exprNode() {}

func (x *If) Kind() Kind          { return KindExpr }
func (x *If) Pos() token.Position { return x.IfPos }
func (x *If) End() token.Position { return x.Else.End() }

// ListExpr is a list literal, e.g. "[1, 2, 3]".
type ListExpr struct {
	Lbrack token.Position
	Items  []Expr
	Rbrack token.Position
}

func (x *ListExpr) exprNode() {}

func (x *ListExpr) Kind() Kind          { return KindExpr }
func (x *ListExpr) Pos() token.Position { return x.Lbrack }
func (x *ListExpr) End() token.Position { return x.Rbrack.Advance(1) }

// TupleExpr is a tuple literal, e.g. "(a, b)".
type TupleExpr struct {
	Lparen token.Position
	Items  []Expr
	Rparen token.Position
}

func (x *TupleExpr) exprNode() {}

func (x *TupleExpr) Kind() Kind          { return KindExpr }
func (x *TupleExpr) Pos() token.Position { return x.Lparen }
func (x *TupleExpr) End() token.Position { return x.Rparen.Advance(1) }

// RecordCon is record construction or update, e.g. "Point { x = 1, y = 2 }".
type RecordCon struct {
	NamePos token.Position
	Name    string
	Fields  []*FieldUpdate
	Rbrace  token.Position
}

func (x *RecordCon) exprNode() {}

func (x *RecordCon) Kind() Kind          { return KindExpr }
func (x *RecordCon) Pos() token.Position { return x.NamePos }
func (x *RecordCon) End() token.Position { return x.Rbrace.Advance(1) }

// FieldUpdate is one "field = value" entry of a record expression. Comment
// holds the text of a trailing end-of-line comment, without the "--" marker.
type FieldUpdate struct {
	NamePos token.Position
	Name    string
	Value   Expr
	Comment string
}

func (x *FieldUpdate) Kind() Kind          { return KindField }
func (x *FieldUpdate) Pos() token.Position { return x.NamePos }
func (x *FieldUpdate) End() token.Position { return x.Value.End() }

// Paren is an explicitly parenthesized expression.
type Paren struct {
	Lparen token.Position
	X      Expr
	Rparen token.Position
}

func (x *Paren) exprNode() {}

func (x *Paren) Kind() Kind          { return KindExpr }
func (x *Paren) Pos() token.Position { return x.Lparen }
func (x *Paren) End() token.Position { return x.Rparen.Advance(1) }
