package pretty_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
	"github.com/gibiansky/hindent/internal/token"
	"github.com/gibiansky/hindent/pretty"
	"github.com/gibiansky/hindent/printer"
)

func newStyle(extenders ...pretty.Extender) *pretty.Style {
	return &pretty.Style{
		Name:      "test",
		Config:    printer.DefaultConfig(),
		Extenders: extenders,
	}
}

func TestRenderDispatchesToExtender(t *testing.T) {
	style := newStyle(pretty.Extender{
		Kind: ast.KindExpr,
		Render: func(c *pretty.Context, n ast.Node) error {
			c.Write("<custom>")
			return nil
		},
	})
	c := pretty.NewContext(style, style.Config)
	require.NoError(t, c.Render(&ast.Var{Name: "x"}))
	require.Equal(t, "<custom>", c.Output())
}

func TestRenderFallsBackToDefault(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	require.NoError(t, c.Render(&ast.Var{Name: "x"}))
	require.Equal(t, "x", c.Output())
}

func TestFirstMatchingExtenderWins(t *testing.T) {
	style := newStyle(
		pretty.Extender{
			Kind: ast.KindExpr,
			Render: func(c *pretty.Context, n ast.Node) error {
				c.Write("first")
				return nil
			},
		},
		pretty.Extender{
			Kind: ast.KindExpr,
			Render: func(c *pretty.Context, n ast.Node) error {
				c.Write("second")
				return nil
			},
		},
	)
	c := pretty.NewContext(style, style.Config)
	require.NoError(t, c.Render(&ast.Var{Name: "x"}))
	require.Equal(t, "first", c.Output())
}

func TestExtenderCanDeferToDefault(t *testing.T) {
	style := newStyle(pretty.Extender{
		Kind: ast.KindExpr,
		Render: func(c *pretty.Context, n ast.Node) error {
			if lit, ok := n.(*ast.Lit); ok {
				c.Write("'" + lit.Text + "'")
				return nil
			}
			return c.Default(n)
		},
	})
	c := pretty.NewContext(style, style.Config)
	list := &ast.ListExpr{Items: []ast.Expr{&ast.Lit{Text: "1"}, &ast.Var{Name: "x"}}}
	require.NoError(t, c.Render(list))
	require.Equal(t, "['1', x]", c.Output())
}

func TestRenderNilNode(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	err := c.Render(nil)
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrUnhandledNode, rerr.Kind)
}

// strayNode is an expression shape no renderer has a case for.
type strayNode struct{}

func (strayNode) Kind() ast.Kind { return ast.KindExpr }
func (strayNode) Pos() token.Position { return token.Position{Line: 4, Column: 2, File: "A.hs"} }
func (strayNode) End() token.Position { return token.Position{Line: 4, Column: 3, File: "A.hs"} }

func TestUnhandledShapeIsFatal(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	err := c.Render(strayNode{})
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrUnhandledNode, rerr.Kind)
	require.True(t, rerr.IsFatal())
	require.Equal(t, "A.hs:5:3", rerr.Location.String())
}

func TestExtenderErrorAbortsRender(t *testing.T) {
	boom := errors.New("boom")
	style := newStyle(pretty.Extender{
		Kind: ast.KindExpr,
		Render: func(c *pretty.Context, n ast.Node) error {
			return boom
		},
	})
	c := pretty.NewContext(style, style.Config)
	require.ErrorIs(t, c.Render(&ast.Var{Name: "x"}), boom)
}

func TestRendersOnOneLine(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	single, err := c.RendersOnOneLine(&ast.Var{Name: "x"})
	require.NoError(t, err)
	require.True(t, single)
	require.Equal(t, "", c.Output())
}

func TestMeasureWidth(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	c.Write("prefix ")
	w, err := c.MeasureWidth(&ast.PCon{Name: "Just", Pats: []ast.Pat{&ast.PVar{Name: "y"}}})
	require.NoError(t, err)
	require.Equal(t, 6, w)
	require.Equal(t, "prefix ", c.Output())
	require.Equal(t, 7, c.Column())
}

func TestValidateAcceptsWellFormedStyle(t *testing.T) {
	require.NoError(t, newStyle().Validate())
}

func TestValidateReportsEveryProblem(t *testing.T) {
	style := &pretty.Style{
		Config: printer.Config{MaxColumns: 0, IndentSpaces: -1},
		Extenders: []pretty.Extender{
			{Kind: ast.KindExpr, Render: nil},
			{Kind: ast.KindExpr, Render: func(c *pretty.Context, n ast.Node) error { return nil }},
		},
	}
	err := style.Validate()
	require.Error(t, err)
	msg := err.Error()
	require.Contains(t, msg, "no name")
	require.Contains(t, msg, "max columns")
	require.Contains(t, msg, "indent spaces")
	require.Contains(t, msg, "nil renderer")
	require.Contains(t, msg, "duplicate renderer")
}

func TestDefaultGuardedRhs(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	match := &ast.Match{
		Name: "f",
		Rhs: &ast.Rhs{Guards: []*ast.GuardedAlt{
			{Guard: &ast.Var{Name: "p"}, Body: &ast.Lit{Text: "1"}},
			{Guard: &ast.Var{Name: "otherwise"}, Body: &ast.Lit{Text: "0"}},
		}},
	}
	require.NoError(t, c.Render(match))
	require.Equal(t, "f\n  | p = 1\n  | otherwise = 0", c.Output())
}

func TestDefaultModuleSeparatesSections(t *testing.T) {
	c := pretty.NewContext(newStyle(), printer.DefaultConfig())
	mod := &ast.Module{
		Name:    "Main",
		Imports: []*ast.ImportDecl{{Module: "Data.List"}},
		Decls: []ast.Decl{
			&ast.FunBind{Matches: []*ast.Match{{Name: "x", Rhs: &ast.Rhs{Body: &ast.Lit{Text: "1"}}}}},
		},
	}
	require.NoError(t, c.Render(mod))
	require.Equal(t, "module Main where\n\nimport Data.List\n\nx = 1", c.Output())
}
