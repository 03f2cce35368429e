package ast

import "github.com/gibiansky/hindent/internal/token"

// Module is the root node: a module header, import block and declarations.
type Module struct {
	ModPos  token.Position // position of the "module" keyword
	Name    string         // module name; empty for a headerless module
	Imports []*ImportDecl
	Decls   []Decl
}

func (m *Module) Kind() Kind { return KindModule }

func (m *Module) Pos() token.Position {
	if m.ModPos.IsValid() {
		return m.ModPos
	}
	if len(m.Imports) > 0 {
		return m.Imports[0].Pos()
	}
	if len(m.Decls) > 0 {
		return m.Decls[0].Pos()
	}
	return token.NoPos
}

func (m *Module) End() token.Position {
	if len(m.Decls) > 0 {
		return m.Decls[len(m.Decls)-1].End()
	}
	if len(m.Imports) > 0 {
		return m.Imports[len(m.Imports)-1].End()
	}
	return m.ModPos
}

// ImportDecl is a single import line.
type ImportDecl struct {
	ImportPos token.Position // position of the "import" keyword
	EndPos    token.Position // position just past the import line
	Module    string         // imported module name
	Qualified bool
	Alias     string   // "as" alias; empty if none
	Names     []string // explicit import list; nil if none
	Hiding    bool     // Names is a hiding list
}

func (d *ImportDecl) declNode() {}

func (d *ImportDecl) Kind() Kind          { return KindImport }
func (d *ImportDecl) Pos() token.Position { return d.ImportPos }

func (d *ImportDecl) End() token.Position {
	if d.EndPos.IsValid() {
		return d.EndPos
	}
	return d.ImportPos
}

// TypeSig is a type signature declaration, e.g. "f, g :: Int -> Bool".
type TypeSig struct {
	NamePos token.Position
	Names   []string
	Ctx     *Context // constraint context; nil if none
	Ty      Type
}

func (d *TypeSig) declNode() {}

func (d *TypeSig) Kind() Kind          { return KindDecl }
func (d *TypeSig) Pos() token.Position { return d.NamePos }
func (d *TypeSig) End() token.Position { return d.Ty.End() }

// FunBind is a function binding: one or more equations for the same name.
type FunBind struct {
	Matches []*Match
}

func (d *FunBind) declNode() {}

func (d *FunBind) Kind() Kind          { return KindDecl }
func (d *FunBind) Pos() token.Position { return d.Matches[0].Pos() }
func (d *FunBind) End() token.Position { return d.Matches[len(d.Matches)-1].End() }

// Match is a single equation of a function binding.
type Match struct {
	NamePos token.Position
	Name    string
	Pats    []Pat
	Rhs     *Rhs
	Where   []Decl // where-bindings; nil if none
}

func (m *Match) Kind() Kind          { return KindDecl }
func (m *Match) Pos() token.Position { return m.NamePos }

func (m *Match) End() token.Position {
	if len(m.Where) > 0 {
		return m.Where[len(m.Where)-1].End()
	}
	return m.Rhs.End()
}

// PatBind is a pattern binding, e.g. "(a, b) = pair".
type PatBind struct {
	P     Pat
	Rhs   *Rhs
	Where []Decl
}

func (d *PatBind) declNode() {}

func (d *PatBind) Kind() Kind          { return KindDecl }
func (d *PatBind) Pos() token.Position { return d.P.Pos() }

func (d *PatBind) End() token.Position {
	if len(d.Where) > 0 {
		return d.Where[len(d.Where)-1].End()
	}
	return d.Rhs.End()
}

// DataDecl is a data or newtype declaration.
type DataDecl struct {
	DataPos token.Position // position of the "data" or "newtype" keyword
	Newtype bool
	Name    string
	TyVars  []string
	Cons    []*ConDecl
	Derivs  *Deriving // nil if none
}

func (d *DataDecl) declNode() {}

func (d *DataDecl) Kind() Kind          { return KindDecl }
func (d *DataDecl) Pos() token.Position { return d.DataPos }

func (d *DataDecl) End() token.Position {
	if d.Derivs != nil {
		return d.Derivs.End()
	}
	if len(d.Cons) > 0 {
		return d.Cons[len(d.Cons)-1].End()
	}
	return d.DataPos
}

// ConDecl is a single data constructor declaration, either applicative
// style ("Con T1 T2") or record style ("Con { f :: T }").
type ConDecl struct {
	NamePos token.Position
	Name    string
	Args    []Type       // applicative-style argument types
	Fields  []*FieldDecl // record fields; nil for applicative style
}

func (d *ConDecl) Kind() Kind          { return KindConDecl }
func (d *ConDecl) Pos() token.Position { return d.NamePos }

func (d *ConDecl) End() token.Position {
	if len(d.Fields) > 0 {
		return d.Fields[len(d.Fields)-1].End()
	}
	if len(d.Args) > 0 {
		return d.Args[len(d.Args)-1].End()
	}
	return d.NamePos.Advance(len(d.Name))
}

// FieldDecl is one record field group, e.g. "x, y :: Double". Comment holds
// the text of a trailing end-of-line comment, without the "--" marker.
type FieldDecl struct {
	NamePos token.Position
	Names   []string
	Ty      Type
	Comment string
}

func (d *FieldDecl) Kind() Kind          { return KindField }
func (d *FieldDecl) Pos() token.Position { return d.NamePos }
func (d *FieldDecl) End() token.Position { return d.Ty.End() }

// Context is a constraint context, e.g. "(Eq a, Show a)".
type Context struct {
	OpenPos     token.Position
	Constraints []Type
}

func (c *Context) Kind() Kind { return KindContext }

func (c *Context) Pos() token.Position {
	if c.OpenPos.IsValid() || len(c.Constraints) == 0 {
		return c.OpenPos
	}
	return c.Constraints[0].Pos()
}

func (c *Context) End() token.Position {
	if len(c.Constraints) > 0 {
		return c.Constraints[len(c.Constraints)-1].End()
	}
	return c.OpenPos
}

// Deriving is a deriving clause on a data declaration.
type Deriving struct {
	DerivingPos token.Position
	Names       []string
}

func (d *Deriving) Kind() Kind          { return KindDeriving }
func (d *Deriving) Pos() token.Position { return d.DerivingPos }

func (d *Deriving) End() token.Position {
	end := d.DerivingPos
	for _, name := range d.Names {
		end = end.Advance(len(name))
	}
	return end
}

// Rhs is the right-hand side of a binding or case alternative: either a
// plain body or a list of guarded alternatives. Exactly one of Body and
// Guards is set.
type Rhs struct {
	Body   Expr
	Guards []*GuardedAlt
}

func (r *Rhs) Kind() Kind { return KindRhs }

func (r *Rhs) Pos() token.Position {
	if r.Body != nil {
		return r.Body.Pos()
	}
	return r.Guards[0].Pos()
}

func (r *Rhs) End() token.Position {
	if r.Body != nil {
		return r.Body.End()
	}
	return r.Guards[len(r.Guards)-1].End()
}

// GuardedAlt is one guard of a guarded right-hand side, e.g. "| x > 0 = x".
type GuardedAlt struct {
	BarPos token.Position
	Guard  Expr
	Body   Expr
}

func (g *GuardedAlt) Kind() Kind          { return KindGuardedAlt }
func (g *GuardedAlt) Pos() token.Position { return g.BarPos }
func (g *GuardedAlt) End() token.Position { return g.Body.End() }
