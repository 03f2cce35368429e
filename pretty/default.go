package pretty

import (
	"strings"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
)

// Default is the structural fallback renderer. It emits only the
// punctuation the grammar requires around recursively rendered children
// and holds no layout opinions: width fitting and alignment belong to
// style extenders. It is total over the node-kind set; an unknown shape
// aborts the render.
func (c *Context) Default(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Module:
		return c.defaultModule(n)

	case *ast.ImportDecl:
		c.Write("import ")
		if n.Qualified {
			c.Write("qualified ")
		}
		c.Write(n.Module)
		if n.Alias != "" {
			c.Write(" as " + n.Alias)
		}
		if n.Names != nil {
			if n.Hiding {
				c.Write(" hiding")
			}
			c.Write(" (" + strings.Join(n.Names, ", ") + ")")
		}
		return nil

	case *ast.TypeSig:
		c.Write(strings.Join(n.Names, ", "))
		c.Write(" :: ")
		if n.Ctx != nil {
			if err := c.Render(n.Ctx); err != nil {
				return err
			}
			c.Write(" => ")
		}
		return c.Render(n.Ty)

	case *ast.FunBind:
		for i, m := range n.Matches {
			if i > 0 {
				c.Newline()
			}
			if err := c.Render(m); err != nil {
				return err
			}
		}
		return nil

	case *ast.Match:
		startCol := c.Column()
		c.Write(n.Name)
		for _, p := range n.Pats {
			c.Space()
			if err := c.Render(p); err != nil {
				return err
			}
		}
		if err := c.RenderRhs(n.Rhs, "=", startCol); err != nil {
			return err
		}
		return c.RenderWhere(startCol, n.Where, false)

	case *ast.PatBind:
		startCol := c.Column()
		if err := c.Render(n.P); err != nil {
			return err
		}
		if err := c.RenderRhs(n.Rhs, "=", startCol); err != nil {
			return err
		}
		return c.RenderWhere(startCol, n.Where, false)

	case *ast.DataDecl:
		if n.Newtype {
			c.Write("newtype ")
		} else {
			c.Write("data ")
		}
		c.Write(n.Name)
		for _, v := range n.TyVars {
			c.Write(" " + v)
		}
		for i, con := range n.Cons {
			if i == 0 {
				c.Write(" = ")
			} else {
				c.Write(" | ")
			}
			if err := c.Render(con); err != nil {
				return err
			}
		}
		if n.Derivs != nil {
			c.Space()
			return c.Render(n.Derivs)
		}
		return nil

	case *ast.ConDecl:
		c.Write(n.Name)
		for _, arg := range n.Args {
			c.Space()
			if err := c.Render(arg); err != nil {
				return err
			}
		}
		if n.Fields != nil {
			c.Write(" { ")
			for i, f := range n.Fields {
				if i > 0 {
					c.Write(", ")
				}
				if err := c.Render(f); err != nil {
					return err
				}
			}
			c.Write(" }")
		}
		return nil

	case *ast.FieldDecl:
		c.Write(strings.Join(n.Names, ", "))
		c.Write(" :: ")
		if err := c.Render(n.Ty); err != nil {
			return err
		}
		if n.Comment != "" {
			c.Space()
			c.EolComment(n.Comment)
		}
		return nil

	case *ast.Context:
		return c.ConstraintList(mapNodes(n.Constraints))

	case *ast.Deriving:
		c.Write("deriving ")
		if len(n.Names) == 1 {
			c.Write(n.Names[0])
		} else {
			c.Write("(" + strings.Join(n.Names, ", ") + ")")
		}
		return nil

	case *ast.Rhs:
		return c.RenderRhs(n, "=", c.Column())

	case *ast.GuardedAlt:
		return c.RenderGuarded(n, "=")

	// Types
	case *ast.TyCon:
		c.Write(n.Name)
		return nil
	case *ast.TyVar:
		c.Write(n.Name)
		return nil
	case *ast.TyApp:
		if err := c.Render(n.Fn); err != nil {
			return err
		}
		for _, arg := range n.Args {
			c.Space()
			if err := c.Render(arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.TyFun:
		if err := c.Render(n.X); err != nil {
			return err
		}
		c.Write(" -> ")
		return c.Render(n.Y)
	case *ast.TyList:
		c.Write("[")
		if err := c.Render(n.Elem); err != nil {
			return err
		}
		c.Write("]")
		return nil
	case *ast.TyTuple:
		c.Write("(")
		for i, e := range n.Elems {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Render(e); err != nil {
				return err
			}
		}
		c.Write(")")
		return nil
	case *ast.TyParen:
		c.Write("(")
		if err := c.Render(n.X); err != nil {
			return err
		}
		c.Write(")")
		return nil
	case *ast.TyQual:
		if err := c.Render(n.Ctx); err != nil {
			return err
		}
		c.Write(" => ")
		return c.Render(n.Ty)

	// Expressions
	case *ast.Var:
		c.Write(n.Name)
		return nil
	case *ast.Lit:
		c.Write(n.Text)
		return nil
	case *ast.App:
		if err := c.Render(n.Fn); err != nil {
			return err
		}
		for _, arg := range n.Args {
			c.Space()
			if err := c.Render(arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.OpApp:
		if err := c.Render(n.X); err != nil {
			return err
		}
		c.Write(" " + n.Op + " ")
		return c.Render(n.Y)
	case *ast.Lambda:
		c.Write("\\")
		for i, p := range n.Pats {
			if i > 0 {
				c.Space()
			}
			if err := c.Render(p); err != nil {
				return err
			}
		}
		c.Write(" -> ")
		return c.Render(n.Body)
	case *ast.Case:
		startCol := c.Column()
		c.Write("case ")
		if err := c.Render(n.Scrut); err != nil {
			return err
		}
		c.Write(" of")
		return c.AtColumn(startCol+c.Config().IndentSpaces, func() error {
			for _, alt := range n.Alts {
				c.Newline()
				if err := c.Render(alt); err != nil {
					return err
				}
			}
			return nil
		})
	case *ast.Alt:
		startCol := c.Column()
		if err := c.Render(n.P); err != nil {
			return err
		}
		if err := c.RenderRhs(n.Body, "->", startCol); err != nil {
			return err
		}
		return c.RenderWhere(startCol, n.Where, false)
	case *ast.Let:
		c.Write("let ")
		if len(n.Binds) == 1 {
			if err := c.Render(n.Binds[0]); err != nil {
				return err
			}
		} else {
			c.Write("{ ")
			for i, b := range n.Binds {
				if i > 0 {
					c.Write("; ")
				}
				if err := c.Render(b); err != nil {
					return err
				}
			}
			c.Write(" }")
		}
		c.Write(" in ")
		return c.Render(n.Body)
	case *ast.If:
		c.Write("if ")
		if err := c.Render(n.Cond); err != nil {
			return err
		}
		c.Write(" then ")
		if err := c.Render(n.Then); err != nil {
			return err
		}
		c.Write(" else ")
		return c.Render(n.Else)
	case *ast.ListExpr:
		if len(n.Items) == 0 {
			c.Write("[]")
			return nil
		}
		c.Write("[")
		for i, item := range n.Items {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Render(item); err != nil {
				return err
			}
		}
		c.Write("]")
		return nil
	case *ast.TupleExpr:
		c.Write("(")
		for i, item := range n.Items {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Render(item); err != nil {
				return err
			}
		}
		c.Write(")")
		return nil
	case *ast.RecordCon:
		c.Write(n.Name)
		if len(n.Fields) == 0 {
			c.Write(" {}")
			return nil
		}
		c.Write(" {")
		for i, f := range n.Fields {
			if i > 0 {
				c.Write(",")
			}
			c.Space()
			if err := c.Render(f); err != nil {
				return err
			}
		}
		c.Write("}")
		return nil
	case *ast.FieldUpdate:
		c.Write(n.Name + " = ")
		if err := c.Render(n.Value); err != nil {
			return err
		}
		if n.Comment != "" {
			c.Space()
			c.EolComment(n.Comment)
		}
		return nil
	case *ast.Paren:
		c.Write("(")
		if err := c.Render(n.X); err != nil {
			return err
		}
		c.Write(")")
		return nil

	// Patterns
	case *ast.PVar:
		c.Write(n.Name)
		return nil
	case *ast.PLit:
		c.Write(n.Text)
		return nil
	case *ast.PWild:
		c.Write("_")
		return nil
	case *ast.PCon:
		c.Write(n.Name)
		for _, p := range n.Pats {
			c.Space()
			if err := c.Render(p); err != nil {
				return err
			}
		}
		return nil
	case *ast.PTuple:
		c.Write("(")
		for i, p := range n.Pats {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Render(p); err != nil {
				return err
			}
		}
		c.Write(")")
		return nil
	case *ast.PList:
		c.Write("[")
		for i, p := range n.Pats {
			if i > 0 {
				c.Write(", ")
			}
			if err := c.Render(p); err != nil {
				return err
			}
		}
		c.Write("]")
		return nil
	case *ast.PParen:
		c.Write("(")
		if err := c.Render(n.X); err != nil {
			return err
		}
		c.Write(")")
		return nil

	default:
		return errz.New(errz.ErrUnhandledNode,
			"no renderer for %s node of type %T", n.Kind(), n).WithLocation(location(n))
	}
}

func (c *Context) defaultModule(m *ast.Module) error {
	wrote := false
	if m.Name != "" {
		c.Write("module " + m.Name + " where")
		wrote = true
	}
	if len(m.Imports) > 0 {
		if wrote {
			c.Newline()
			c.Newline()
		}
		for i, imp := range m.Imports {
			if i > 0 {
				c.Newline()
			}
			if err := c.Render(imp); err != nil {
				return err
			}
		}
		wrote = true
	}
	if len(m.Decls) > 0 {
		if wrote {
			c.Newline()
			c.Newline()
		}
		for i, d := range m.Decls {
			if i > 0 {
				c.Newline()
			}
			if err := c.Render(d); err != nil {
				return err
			}
		}
	}
	return nil
}

// RenderRhs renders a right-hand side using sep as the binding separator
// ("=" for declarations, "->" for case alternatives). A plain body follows
// on the same line; guarded alternatives each start a new line indented
// one level past startCol.
func (c *Context) RenderRhs(r *ast.Rhs, sep string, startCol int) error {
	if r.Body != nil {
		c.Write(" " + sep + " ")
		return c.Render(r.Body)
	}
	return c.AtColumn(startCol+c.Config().IndentSpaces, func() error {
		for _, g := range r.Guards {
			c.Newline()
			if err := c.RenderGuarded(g, sep); err != nil {
				return err
			}
		}
		return nil
	})
}

// RenderGuarded renders one guarded alternative, e.g. "| x > 0 = x".
func (c *Context) RenderGuarded(g *ast.GuardedAlt, sep string) error {
	c.Write("| ")
	if err := c.Render(g.Guard); err != nil {
		return err
	}
	c.Write(" " + sep + " ")
	return c.Render(g.Body)
}

// RenderWhere renders a where-clause beneath a binding that started at
// startCol. With replayBlanks set, blank-line runs between consecutive
// bindings in the source are replayed in the output; a negative line delta
// (pathological spans) counts as zero blank lines.
func (c *Context) RenderWhere(startCol int, where []ast.Decl, replayBlanks bool) error {
	if len(where) == 0 {
		return nil
	}
	indent := c.Config().IndentSpaces
	return c.AtColumn(startCol+indent, func() error {
		c.Newline()
		c.Write("where")
		return c.AtColumn(startCol+2*indent, func() error {
			for i, d := range where {
				if replayBlanks && i > 0 {
					c.BlankLines(BlankLinesBetween(where[i-1], d))
				} else {
					c.Newline()
				}
				if err := c.Render(d); err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// BlankLinesBetween computes how many blank lines separated two adjacent
// bindings in the source, clamped at zero.
func BlankLinesBetween(prev, cur ast.Node) int {
	delta := cur.Pos().Line - prev.End().Line - 1
	if delta < 0 {
		return 0
	}
	return delta
}

// ConstraintList prints a constraint or deriving list: a single
// entry bare, multiple entries parenthesized and comma separated, source
// order preserved.
func (c *Context) ConstraintList(items []ast.Node) error {
	if len(items) == 1 {
		return c.Render(items[0])
	}
	c.Write("(")
	for i, item := range items {
		if i > 0 {
			c.Write(", ")
		}
		if err := c.Render(item); err != nil {
			return err
		}
	}
	c.Write(")")
	return nil
}

func mapNodes[T ast.Node](items []T) []ast.Node {
	nodes := make([]ast.Node, len(items))
	for i, item := range items {
		nodes[i] = item
	}
	return nodes
}
