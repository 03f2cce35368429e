package styles

import (
	"strings"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/pretty"
	"github.com/gibiansky/hindent/printer"
)

// gibianskyState is the style's render state: whether any import in the
// current module is qualified, which drives import column alignment.
type gibianskyState struct {
	anyQualified bool
}

func (s *gibianskyState) Clone() printer.StyleState {
	dup := *s
	return &dup
}

// Gibiansky is the reference style: compact single-line renderings where
// they fit the column budget, with construct-specific multi-line layouts
// and column alignment otherwise.
func Gibiansky() *pretty.Style {
	return &pretty.Style{
		Name:        "gibiansky",
		Description: "Andrew Gibiansky's style",
		Author:      "Andrew Gibiansky",
		Config:      printer.DefaultConfig(),
		State:       &gibianskyState{},
		Extenders: []pretty.Extender{
			{Kind: ast.KindModule, Render: gibianskyModule},
			{Kind: ast.KindImport, Render: gibianskyImport},
			{Kind: ast.KindDecl, Render: gibianskyDecl},
			{Kind: ast.KindConDecl, Render: gibianskyConDecl},
			{Kind: ast.KindType, Render: gibianskyType},
			{Kind: ast.KindExpr, Render: gibianskyExpr},
		},
	}
}

func gibianskyModule(c *pretty.Context, node ast.Node) error {
	m, ok := node.(*ast.Module)
	if !ok {
		return c.Default(node)
	}
	st := c.State().(*gibianskyState)
	st.anyQualified = false
	for _, imp := range m.Imports {
		if imp.Qualified {
			st.anyQualified = true
			break
		}
	}

	wrote := false
	if m.Name != "" {
		c.Write("module " + m.Name + " where")
		wrote = true
	}
	if len(m.Imports) > 0 {
		if wrote {
			c.BlankLines(1)
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
	for i, d := range m.Decls {
		if !wrote {
			wrote = true
		} else if i == 0 {
			c.BlankLines(1)
		} else {
			// Blank-line runs between top-level declarations are replayed
			// from the source, so a signature stays attached to its
			// binding while standalone declarations keep their spacing.
			c.BlankLines(pretty.BlankLinesBetween(m.Decls[i-1], d))
		}
		if err := c.Render(d); err != nil {
			return err
		}
	}
	return nil
}

// gibianskyImport right-aligns the "qualified" keyword: when any import in
// the module is qualified, unqualified imports are padded with spaces of
// the same width so all module names start in one column.
func gibianskyImport(c *pretty.Context, node ast.Node) error {
	imp, ok := node.(*ast.ImportDecl)
	if !ok {
		return c.Default(node)
	}
	c.Write("import ")
	if imp.Qualified {
		c.Write("qualified ")
	} else if c.State().(*gibianskyState).anyQualified {
		c.Write(strings.Repeat(" ", len("qualified ")))
	}
	c.Write(imp.Module)
	if imp.Alias != "" {
		c.Write(" as " + imp.Alias)
	}
	if imp.Names != nil {
		if imp.Hiding {
			c.Write(" hiding")
		}
		c.Write(" (" + strings.Join(imp.Names, ", ") + ")")
	}
	return nil
}

func gibianskyDecl(c *pretty.Context, node ast.Node) error {
	switch n := node.(type) {
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
		return c.RenderWhere(startCol, n.Where, true)
	case *ast.PatBind:
		startCol := c.Column()
		if err := c.Render(n.P); err != nil {
			return err
		}
		if err := c.RenderRhs(n.Rhs, "=", startCol); err != nil {
			return err
		}
		return c.RenderWhere(startCol, n.Where, true)
	default:
		return c.Default(node)
	}
}

// gibianskyConDecl lays out record constructors: a single field stays
// inline, multiple fields go one per line aligned under the opening brace.
// A field's end-of-line comment keeps the rest of its line, so the closing
// brace moves down instead of disconnecting the comment.
func gibianskyConDecl(c *pretty.Context, node ast.Node) error {
	con, ok := node.(*ast.ConDecl)
	if !ok || con.Fields == nil {
		return c.Default(node)
	}
	c.Write(con.Name + " ")
	braceCol := c.Column()
	c.Write("{ ")
	if len(con.Fields) == 1 {
		f := con.Fields[0]
		if err := c.Render(f); err != nil {
			return err
		}
		if f.Comment == "" {
			c.Write(" }")
			return nil
		}
		return c.AtColumn(braceCol, func() error {
			c.Write("}")
			return nil
		})
	}
	return c.AtColumn(braceCol, func() error {
		for i, f := range con.Fields {
			if i > 0 {
				c.Newline()
				c.Write(", ")
			}
			if err := c.Render(f); err != nil {
				return err
			}
		}
		c.Newline()
		c.Write("}")
		return nil
	})
}

func gibianskyType(c *pretty.Context, node ast.Node) error {
	switch n := node.(type) {
	case *ast.TyFun:
		return gibianskyFunType(c, n)
	case *ast.TyQual:
		return gibianskyQualType(c, n)
	default:
		return c.Default(node)
	}
}

// gibianskyFunType renders an arrow chain on one line when every operand
// was written on the same source line as the first; otherwise each arrow
// starts a new line with "->" aligned three columns left of the operands.
func gibianskyFunType(c *pretty.Context, n *ast.TyFun) error {
	operands := flattenArrows(n)
	if typesOnOneSourceLine(operands) {
		for i, t := range operands {
			if i > 0 {
				c.Write(" -> ")
			}
			if err := c.Render(t); err != nil {
				return err
			}
		}
		return nil
	}
	startCol := c.Column()
	if err := c.AtColumn(startCol, func() error {
		return c.Render(operands[0])
	}); err != nil {
		return err
	}
	for _, t := range operands[1:] {
		if err := arrowBreak(c, startCol, "-> ", t); err != nil {
			return err
		}
	}
	return nil
}

// gibianskyQualType applies the same policy to "context => type": one line
// when the context and the quantified type share a source line, otherwise
// "=>" breaks and aligns like an arrow.
func gibianskyQualType(c *pretty.Context, n *ast.TyQual) error {
	if n.Ctx.Pos().Line == n.Ty.Pos().Line {
		if err := c.Render(n.Ctx); err != nil {
			return err
		}
		c.Write(" => ")
		return c.Render(n.Ty)
	}
	startCol := c.Column()
	if err := c.AtColumn(startCol, func() error {
		return c.Render(n.Ctx)
	}); err != nil {
		return err
	}
	return arrowBreak(c, startCol, "=> ", n.Ty)
}

// arrowBreak emits a newline aligned three columns left of startCol,
// writes the arrow, and renders the operand indented back at startCol.
func arrowBreak(c *pretty.Context, startCol int, arrow string, t ast.Type) error {
	if err := c.AtColumn(startCol-3, func() error {
		c.Newline()
		return nil
	}); err != nil {
		return err
	}
	c.Write(arrow)
	return c.AtColumn(startCol, func() error {
		return c.Render(t)
	})
}

// flattenArrows unrolls a right-associated arrow chain into its operands.
func flattenArrows(n *ast.TyFun) []ast.Type {
	operands := []ast.Type{n.X}
	rest := n.Y
	for {
		fn, ok := rest.(*ast.TyFun)
		if !ok {
			return append(operands, rest)
		}
		operands = append(operands, fn.X)
		rest = fn.Y
	}
}

func typesOnOneSourceLine(operands []ast.Type) bool {
	first := operands[0].Pos().Line
	for _, t := range operands[1:] {
		if t.Pos().Line != first {
			return false
		}
	}
	return true
}

func gibianskyExpr(c *pretty.Context, node ast.Node) error {
	switch n := node.(type) {
	case *ast.ListExpr:
		return gibianskyList(c, n)
	case *ast.OpApp:
		return gibianskyOpApp(c, n)
	case *ast.Lambda:
		return gibianskyLambda(c, n)
	case *ast.Case:
		return gibianskyCase(c, n)
	case *ast.Let:
		return gibianskyLet(c, n)
	case *ast.RecordCon:
		return gibianskyRecord(c, n)
	default:
		return c.Default(node)
	}
}

// gibianskyList tries the whole list on one line and falls back to one
// element per line, framed by "[ " and ", " and a closing bracket on its
// own line, all aligned to the opening column.
func gibianskyList(c *pretty.Context, n *ast.ListExpr) error {
	if len(n.Items) == 0 {
		c.Write("[]")
		return nil
	}
	startCol := c.Column()
	return c.AttemptSingleLine(
		func() error {
			return c.Default(n)
		},
		func() error {
			return c.AtColumn(startCol, func() error {
				c.Write("[ ")
				for i, item := range n.Items {
					if i > 0 {
						c.Newline()
						c.Write(", ")
					}
					if err := c.Render(item); err != nil {
						return err
					}
				}
				c.Newline()
				c.Write("]")
				return nil
			})
		})
}

func gibianskyOpApp(c *pretty.Context, n *ast.OpApp) error {
	startCol := c.Column()

	// An operand chain of <$> and <*> flattens into one spine.
	if operands, ok := applicativeChain(n); ok {
		return gibianskyApplicative(c, startCol, operands)
	}

	// "$" with a case expression on the right always breaks, regardless
	// of width: the case body reads better indented than trailing.
	if n.Op == "$" {
		if _, isCase := n.Y.(*ast.Case); isCase {
			if err := c.Render(n.X); err != nil {
				return err
			}
			c.Write(" $")
			return c.AtColumn(startCol+c.Config().IndentSpaces, func() error {
				c.Newline()
				return c.Render(n.Y)
			})
		}
	}
	return c.Default(n)
}

// gibianskyApplicative renders "f <$> a <*> b" chains flat when they fit,
// otherwise the first application keeps its line and every further
// operand gets its own line prefixed "<*> ".
func gibianskyApplicative(c *pretty.Context, startCol int, operands []ast.Expr) error {
	render := func(breakBefore bool) error {
		for i, x := range operands {
			if i == 1 {
				c.Write(" <$> ")
			} else if i > 1 {
				if breakBefore {
					c.Newline()
					c.Write("<*> ")
				} else {
					c.Write(" <*> ")
				}
			}
			if err := c.Render(x); err != nil {
				return err
			}
		}
		return nil
	}
	return c.AttemptSingleLine(
		func() error {
			return render(false)
		},
		func() error {
			return c.AtColumn(startCol, func() error {
				return render(true)
			})
		})
}

// applicativeChain flattens a left-associated "f <$> a <*> b <*> c" spine
// into its operands. Reports false for anything that is not such a spine.
func applicativeChain(n *ast.OpApp) ([]ast.Expr, bool) {
	var rest []ast.Expr
	cur := n
	for cur.Op == "<*>" {
		rest = append(rest, cur.Y)
		x, ok := cur.X.(*ast.OpApp)
		if !ok {
			return nil, false
		}
		cur = x
	}
	if cur.Op != "<$>" {
		return nil, false
	}
	operands := []ast.Expr{cur.X, cur.Y}
	for i := len(rest) - 1; i >= 0; i-- {
		operands = append(operands, rest[i])
	}
	return operands, true
}

// gibianskyLambda keeps the body on the lambda's line when it fits and
// otherwise breaks after the arrow with one extra indent level.
func gibianskyLambda(c *pretty.Context, n *ast.Lambda) error {
	startCol := c.Column()
	c.Write("\\")
	for i, p := range n.Pats {
		if i > 0 {
			c.Space()
		}
		if err := c.Render(p); err != nil {
			return err
		}
	}
	c.Write(" ->")
	return c.AttemptSingleLine(
		func() error {
			c.Space()
			return c.Render(n.Body)
		},
		func() error {
			return c.AtColumn(startCol+c.Config().IndentSpaces, func() error {
				c.Newline()
				return c.Render(n.Body)
			})
		})
}

// gibianskyCase aligns the arrows of a case expression in one column when
// every alternative renders on a single line; the pattern widths are
// measured speculatively and shorter patterns are padded to the widest.
func gibianskyCase(c *pretty.Context, n *ast.Case) error {
	startCol := c.Column()
	c.Write("case ")
	if err := c.Render(n.Scrut); err != nil {
		return err
	}
	c.Write(" of")
	return c.AtColumn(startCol+c.Config().IndentSpaces, func() error {
		aligned := true
		widths := make([]int, len(n.Alts))
		maxWidth := 0
		for i, alt := range n.Alts {
			single, err := altOnOneLine(c, alt)
			if err != nil {
				return err
			}
			if !single {
				aligned = false
				break
			}
			w, err := c.MeasureWidth(alt.P)
			if err != nil {
				return err
			}
			widths[i] = w
			if w > maxWidth {
				maxWidth = w
			}
		}
		for i, alt := range n.Alts {
			c.Newline()
			if !aligned {
				if err := c.Render(alt); err != nil {
					return err
				}
				continue
			}
			if err := c.Render(alt.P); err != nil {
				return err
			}
			c.Pad(maxWidth - widths[i])
			if err := c.RenderRhs(alt.Body, "->", c.Column()); err != nil {
				return err
			}
		}
		return nil
	})
}

// altOnOneLine speculatively renders an alternative on a fresh line and
// reports whether it stayed on that line.
func altOnOneLine(c *pretty.Context, alt *ast.Alt) (bool, error) {
	single := false
	_, err := c.Sandbox(func(sc *pretty.Context) error {
		sc.Newline()
		before := sc.Line()
		if err := sc.Render(alt); err != nil {
			return err
		}
		single = sc.Line() == before
		return nil
	})
	return single, err
}

// gibianskyLet aligns bindings under the first binding and puts "in" on
// its own line in the "let" column.
func gibianskyLet(c *pretty.Context, n *ast.Let) error {
	startCol := c.Column()
	c.Write("let ")
	if err := c.AtColumn(startCol+len("let "), func() error {
		for i, b := range n.Binds {
			if i > 0 {
				c.Newline()
			}
			if err := c.Render(b); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}
	if err := c.AtColumn(startCol, func() error {
		c.Newline()
		return nil
	}); err != nil {
		return err
	}
	c.Write("in ")
	return c.Render(n.Body)
}

// gibianskyRecord prints single-field record expressions inline and
// multi-field ones one field per line aligned under the opening brace,
// with the same end-of-line comment handling as record declarations.
func gibianskyRecord(c *pretty.Context, n *ast.RecordCon) error {
	if len(n.Fields) == 0 {
		c.Write(n.Name + " {}")
		return nil
	}
	c.Write(n.Name + " ")
	braceCol := c.Column()
	c.Write("{ ")
	if len(n.Fields) == 1 {
		f := n.Fields[0]
		if err := c.Render(f); err != nil {
			return err
		}
		if f.Comment == "" {
			c.Write(" }")
			return nil
		}
		return c.AtColumn(braceCol, func() error {
			c.Write("}")
			return nil
		})
	}
	return c.AtColumn(braceCol, func() error {
		for i, f := range n.Fields {
			if i > 0 {
				c.Newline()
				c.Write(", ")
			}
			if err := c.Render(f); err != nil {
				return err
			}
		}
		c.Newline()
		c.Write("}")
		return nil
	})
}
