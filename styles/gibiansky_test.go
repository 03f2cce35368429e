package styles_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gibiansky/hindent"
	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/internal/token"
)

func v(name string) *ast.Var { return &ast.Var{Name: name} }

func lit(text string) *ast.Lit { return &ast.Lit{Text: text} }

func litAt(text string, line int) *ast.Lit {
	return &ast.Lit{LitPos: token.Position{Line: line}, Text: text}
}

func pv(name string) *ast.PVar { return &ast.PVar{Name: name} }

func bind(name string, body ast.Expr) *ast.Match {
	return &ast.Match{Name: name, Rhs: &ast.Rhs{Body: body}}
}

func bindAt(name string, line int, body ast.Expr) *ast.FunBind {
	return &ast.FunBind{Matches: []*ast.Match{{
		NamePos: token.Position{Line: line},
		Name:    name,
		Rhs:     &ast.Rhs{Body: body},
	}}}
}

func TestListFitsOnOneLine(t *testing.T) {
	decl := bind("xs", &ast.ListExpr{Items: []ast.Expr{lit("1"), lit("2"), lit("3")}})
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "xs = [1, 2, 3]\n", out)
}

func TestListBreaksOverBudget(t *testing.T) {
	decl := bind("xs", &ast.ListExpr{Items: []ast.Expr{lit("1"), lit("2"), lit("3")}})
	out, err := hindent.Format(decl, hindent.WithMaxColumns(5))
	require.NoError(t, err)
	require.Equal(t, "xs = [ 1\n     , 2\n     , 3\n     ]\n", out)
}

func TestEmptyList(t *testing.T) {
	out, err := hindent.Format(bind("xs", &ast.ListExpr{}), hindent.WithMaxColumns(5))
	require.NoError(t, err)
	require.Equal(t, "xs = []\n", out)
}

func TestImportAlignment(t *testing.T) {
	mod := &ast.Module{
		Imports: []*ast.ImportDecl{
			{Module: "Data.Map", Qualified: true, Alias: "M"},
			{Module: "Control.Monad"},
		},
	}
	out, err := hindent.Format(mod)
	require.NoError(t, err)
	require.Equal(t, "import qualified Data.Map as M\nimport           Control.Monad\n", out)
}

func TestImportNoAlignmentWithoutQualified(t *testing.T) {
	mod := &ast.Module{
		Imports: []*ast.ImportDecl{
			{Module: "Control.Monad"},
			{Module: "Data.List", Names: []string{"sort", "nub"}},
		},
	}
	out, err := hindent.Format(mod)
	require.NoError(t, err)
	require.Equal(t, "import Control.Monad\nimport Data.List (sort, nub)\n", out)
}

func TestCaseArrowAlignment(t *testing.T) {
	body := &ast.Case{
		Scrut: v("x"),
		Alts: []*ast.Alt{
			{P: &ast.PCon{Name: "Nothing"}, Body: &ast.Rhs{Body: lit("0")}},
			{P: &ast.PCon{Name: "Just", Pats: []ast.Pat{pv("y")}}, Body: &ast.Rhs{Body: v("y")}},
		},
	}
	decl := &ast.Match{Name: "f", Pats: []ast.Pat{pv("x")}, Rhs: &ast.Rhs{Body: body}}
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "f x = case x of\n        Nothing -> 0\n        Just y  -> y\n", out)
}

func TestCaseSkipsAlignmentWhenAltBreaks(t *testing.T) {
	longList := &ast.ListExpr{Items: []ast.Expr{
		lit("100000"), lit("200000"), lit("300000"), lit("400000"),
	}}
	body := &ast.Case{
		Scrut: v("x"),
		Alts: []*ast.Alt{
			{P: &ast.PCon{Name: "A"}, Body: &ast.Rhs{Body: lit("1")}},
			{P: &ast.PCon{Name: "Longer"}, Body: &ast.Rhs{Body: longList}},
		},
	}
	decl := &ast.Match{Name: "f", Pats: []ast.Pat{pv("x")}, Rhs: &ast.Rhs{Body: body}}
	out, err := hindent.Format(decl, hindent.WithMaxColumns(30))
	require.NoError(t, err)
	// The long list forces its alternative onto multiple lines, so no
	// alternative is padded for arrow alignment.
	require.Contains(t, out, "A -> 1")
	require.NotContains(t, out, "A      -> 1")
}

func TestApplicativeChainFlat(t *testing.T) {
	chain := &ast.OpApp{
		X:  &ast.OpApp{X: v("f"), Op: "<$>", Y: v("a")},
		Op: "<*>", Y: v("b"),
	}
	out, err := hindent.Format(bind("g", chain))
	require.NoError(t, err)
	require.Equal(t, "g = f <$> a <*> b\n", out)
}

func TestApplicativeChainWraps(t *testing.T) {
	chain := &ast.OpApp{
		X:  &ast.OpApp{X: v("f"), Op: "<$>", Y: v("a")},
		Op: "<*>", Y: v("b"),
	}
	out, err := hindent.Format(bind("g", chain), hindent.WithMaxColumns(12))
	require.NoError(t, err)
	require.Equal(t, "g = f <$> a\n    <*> b\n", out)
}

func TestDollarBeforeCaseAlwaysBreaks(t *testing.T) {
	body := &ast.OpApp{
		X:  v("print"),
		Op: "$",
		Y: &ast.Case{
			Scrut: v("x"),
			Alts: []*ast.Alt{
				{P: &ast.PCon{Name: "LT"}, Body: &ast.Rhs{Body: lit(`"lt"`)}},
				{P: &ast.PCon{Name: "GT"}, Body: &ast.Rhs{Body: lit(`"gt"`)}},
			},
		},
	}
	out, err := hindent.Format(bind("h", body))
	require.NoError(t, err)
	require.Equal(t, "h = print $\n      case x of\n        LT -> \"lt\"\n        GT -> \"gt\"\n", out)
}

func TestArrowChainOnOneSourceLine(t *testing.T) {
	sig := &ast.TypeSig{
		Names: []string{"f"},
		Ty: &ast.TyFun{
			X: &ast.TyCon{Name: "Int"},
			Y: &ast.TyCon{Name: "Bool"},
		},
	}
	out, err := hindent.Format(sig)
	require.NoError(t, err)
	require.Equal(t, "f :: Int -> Bool\n", out)
}

func TestArrowChainBreaksAcrossSourceLines(t *testing.T) {
	sig := &ast.TypeSig{
		Names: []string{"f"},
		Ty: &ast.TyFun{
			X: &ast.TyCon{Name: "Int"},
			Y: &ast.TyCon{NamePos: token.Position{Line: 1}, Name: "Bool"},
		},
	}
	out, err := hindent.Format(sig)
	require.NoError(t, err)
	require.Equal(t, "f :: Int\n  -> Bool\n", out)
}

func TestQualifiedTypeBreaks(t *testing.T) {
	sig := &ast.TypeSig{
		Names: []string{"f"},
		Ty: &ast.TyQual{
			Ctx: &ast.Context{Constraints: []ast.Type{
				&ast.TyApp{Fn: &ast.TyCon{Name: "Eq"}, Args: []ast.Type{&ast.TyVar{Name: "a"}}},
			}},
			Ty: &ast.TyVar{NamePos: token.Position{Line: 1}, Name: "a"},
		},
	}
	out, err := hindent.Format(sig)
	require.NoError(t, err)
	require.Equal(t, "f :: Eq a\n  => a\n", out)
}

func TestLambdaFitsOnOneLine(t *testing.T) {
	decl := bind("m", &ast.Lambda{Pats: []ast.Pat{pv("x")}, Body: v("somethingLong")})
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "m = \\x -> somethingLong\n", out)
}

func TestLambdaBreaksAfterArrow(t *testing.T) {
	decl := bind("m", &ast.Lambda{Pats: []ast.Pat{pv("x")}, Body: v("somethingLong")})
	out, err := hindent.Format(decl, hindent.WithMaxColumns(10))
	require.NoError(t, err)
	require.Equal(t, "m = \\x ->\n      somethingLong\n", out)
}

func TestLetInAlignment(t *testing.T) {
	body := &ast.Let{
		Binds: []ast.Decl{
			bindAt("x", 0, lit("1")),
			bindAt("y", 1, lit("2")),
		},
		Body: &ast.OpApp{X: v("x"), Op: "+", Y: v("y")},
	}
	out, err := hindent.Format(bind("k", body))
	require.NoError(t, err)
	require.Equal(t, "k = let x = 1\n        y = 2\n    in x + y\n", out)
}

func TestWhereReplaysBlankLines(t *testing.T) {
	decl := &ast.Match{
		Name: "f",
		Pats: []ast.Pat{pv("x")},
		Rhs:  &ast.Rhs{Body: v("go")},
		Where: []ast.Decl{
			bindAt("go", 2, litAt("1", 2)),
			bindAt("stop", 5, litAt("2", 5)),
		},
	}
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "f x = go\n  where\n    go = 1\n\n\n    stop = 2\n", out)
}

func TestWhereClampsOverlappingSpans(t *testing.T) {
	// Both bindings claim the same source line; the replayed gap clamps to
	// zero blank lines rather than going negative.
	decl := &ast.Match{
		Name: "f",
		Rhs:  &ast.Rhs{Body: v("go")},
		Where: []ast.Decl{
			bindAt("go", 3, litAt("1", 3)),
			bindAt("stop", 3, litAt("2", 3)),
		},
	}
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "f = go\n  where\n    go = 1\n    stop = 2\n", out)
}

func TestRecordExpressionMultiField(t *testing.T) {
	rec := &ast.RecordCon{
		Name: "Person",
		Fields: []*ast.FieldUpdate{
			{Name: "name", Value: lit(`"a"`)},
			{Name: "age", Value: lit("1")},
		},
	}
	out, err := hindent.Format(bind("p", rec))
	require.NoError(t, err)
	require.Equal(t, "p = Person { name = \"a\"\n           , age = 1\n           }\n", out)
}

func TestRecordExpressionSingleField(t *testing.T) {
	rec := &ast.RecordCon{
		Name:   "Wrap",
		Fields: []*ast.FieldUpdate{{Name: "val", Value: lit("1")}},
	}
	out, err := hindent.Format(bind("p", rec))
	require.NoError(t, err)
	require.Equal(t, "p = Wrap { val = 1 }\n", out)
}

func TestRecordFieldCommentMovesBrace(t *testing.T) {
	rec := &ast.RecordCon{
		Name:   "Wrap",
		Fields: []*ast.FieldUpdate{{Name: "val", Value: lit("1"), Comment: "in seconds"}},
	}
	out, err := hindent.Format(bind("p", rec))
	require.NoError(t, err)
	require.Equal(t, "p = Wrap { val = 1 -- in seconds\n         }\n", out)
}

func TestDataRecordDeclaration(t *testing.T) {
	decl := &ast.DataDecl{
		Name: "Person",
		Cons: []*ast.ConDecl{{
			Name: "Person",
			Fields: []*ast.FieldDecl{
				{Names: []string{"name"}, Ty: &ast.TyCon{Name: "String"}},
				{Names: []string{"age"}, Ty: &ast.TyCon{Name: "Int"}},
			},
		}},
		Derivs: &ast.Deriving{Names: []string{"Eq", "Show"}},
	}
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t,
		"data Person = Person { name :: String\n"+
			"                     , age :: Int\n"+
			"                     } deriving (Eq, Show)\n",
		out)
}

func TestModuleLayout(t *testing.T) {
	mod := &ast.Module{
		Name:    "Main",
		Imports: []*ast.ImportDecl{{Module: "Control.Monad"}},
		Decls: []ast.Decl{
			&ast.TypeSig{
				NamePos: token.Position{Line: 2},
				Names:   []string{"f"},
				Ty:      &ast.TyCon{NamePos: token.Position{Line: 2}, Name: "Int"},
			},
			bindAt("f", 3, litAt("1", 3)),
			bindAt("g", 6, litAt("2", 6)),
		},
	}
	out, err := hindent.Format(mod)
	require.NoError(t, err)
	require.Equal(t,
		"module Main where\n"+
			"\n"+
			"import Control.Monad\n"+
			"\n"+
			"f :: Int\n"+
			"f = 1\n"+
			"\n"+
			"\n"+
			"g = 2\n",
		out)
}

func TestRenderStability(t *testing.T) {
	mod := &ast.Module{
		Name:    "Main",
		Imports: []*ast.ImportDecl{{Module: "Data.Map", Qualified: true, Alias: "M"}},
		Decls: []ast.Decl{
			bindAt("xs", 2, &ast.ListExpr{Items: []ast.Expr{lit("1"), lit("2")}}),
		},
	}
	first, err := hindent.Format(mod)
	require.NoError(t, err)
	second, err := hindent.Format(mod)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestGuardedRhs(t *testing.T) {
	decl := &ast.Match{
		Name: "sign",
		Pats: []ast.Pat{pv("x")},
		Rhs: &ast.Rhs{Guards: []*ast.GuardedAlt{
			{Guard: &ast.OpApp{X: v("x"), Op: ">", Y: lit("0")}, Body: lit("1")},
			{Guard: v("otherwise"), Body: lit("0")},
		}},
	}
	out, err := hindent.Format(decl)
	require.NoError(t, err)
	require.Equal(t, "sign x\n  | x > 0 = 1\n  | otherwise = 0\n", out)
}
