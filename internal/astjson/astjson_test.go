package astjson

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
)

func TestDecodeModule(t *testing.T) {
	doc := `{
		"kind": "module",
		"name": "Main",
		"pos": {"line": 0, "column": 0, "file": "Main.hs"},
		"imports": [
			{"kind": "import", "module": "Data.Map", "qualified": true, "alias": "M",
			 "pos": {"line": 2, "column": 0}},
			{"kind": "import", "module": "Data.List", "names": ["sort", "nub"],
			 "pos": {"line": 3, "column": 0}}
		],
		"decls": [
			{"kind": "funbind", "matches": [
				{"kind": "match", "name": "x", "pos": {"line": 5, "column": 0},
				 "rhs": {"kind": "rhs", "body": {"kind": "lit", "text": "1",
				         "pos": {"line": 5, "column": 4}}}}
			]}
		]
	}`
	node, err := Decode([]byte(doc))
	require.NoError(t, err)

	mod, ok := node.(*ast.Module)
	require.True(t, ok)
	require.Equal(t, "Main", mod.Name)
	require.Equal(t, "Main.hs", mod.ModPos.File)
	require.Len(t, mod.Imports, 2)
	require.True(t, mod.Imports[0].Qualified)
	require.Equal(t, "M", mod.Imports[0].Alias)
	require.Equal(t, []string{"sort", "nub"}, mod.Imports[1].Names)
	require.Len(t, mod.Decls, 1)

	bind, ok := mod.Decls[0].(*ast.FunBind)
	require.True(t, ok)
	require.Equal(t, "x", bind.Matches[0].Name)
	require.Equal(t, 5, bind.Matches[0].NamePos.Line)
}

func TestDecodeExpressionTree(t *testing.T) {
	doc := `{
		"kind": "opapp", "op": "<$>",
		"x": {"kind": "var", "name": "f"},
		"y": {"kind": "app",
			"fn": {"kind": "var", "name": "g"},
			"args": [{"kind": "lit", "text": "1"}]}
	}`
	node, err := Decode([]byte(doc))
	require.NoError(t, err)

	op, ok := node.(*ast.OpApp)
	require.True(t, ok)
	require.Equal(t, "<$>", op.Op)
	app, ok := op.Y.(*ast.App)
	require.True(t, ok)
	require.Equal(t, "g", app.Fn.(*ast.Var).Name)
	require.Len(t, app.Args, 1)
}

func TestDecodeCaseWithPatterns(t *testing.T) {
	doc := `{
		"kind": "case",
		"scrut": {"kind": "var", "name": "x"},
		"alts": [
			{"kind": "alt",
			 "pat": {"kind": "pcon", "name": "Just", "pats": [{"kind": "pvar", "name": "y"}]},
			 "rhs": {"kind": "rhs", "body": {"kind": "var", "name": "y"}}},
			{"kind": "alt",
			 "pat": {"kind": "pwild"},
			 "rhs": {"kind": "rhs", "body": {"kind": "lit", "text": "0"}}}
		]
	}`
	node, err := Decode([]byte(doc))
	require.NoError(t, err)

	expr, ok := node.(*ast.Case)
	require.True(t, ok)
	require.Len(t, expr.Alts, 2)
	con, ok := expr.Alts[0].P.(*ast.PCon)
	require.True(t, ok)
	require.Equal(t, "Just", con.Name)
	_, ok = expr.Alts[1].P.(*ast.PWild)
	require.True(t, ok)
}

func TestDecodeDataDeclaration(t *testing.T) {
	doc := `{
		"kind": "data", "name": "Person",
		"cons": [
			{"kind": "condecl", "name": "Person", "fields": [
				{"kind": "field", "names": ["name"],
				 "type": {"kind": "tycon", "name": "String"},
				 "comment": "display name"}
			]}
		],
		"deriving": {"kind": "deriving", "names": ["Eq", "Show"]}
	}`
	node, err := Decode([]byte(doc))
	require.NoError(t, err)

	decl, ok := node.(*ast.DataDecl)
	require.True(t, ok)
	require.Len(t, decl.Cons, 1)
	require.Len(t, decl.Cons[0].Fields, 1)
	require.Equal(t, "display name", decl.Cons[0].Fields[0].Comment)
	require.Equal(t, []string{"Eq", "Show"}, decl.Derivs.Names)
}

func TestDecodeGuardedRhs(t *testing.T) {
	doc := `{
		"kind": "match", "name": "sign",
		"pats": [{"kind": "pvar", "name": "x"}],
		"rhs": {"kind": "rhs", "guards": [
			{"kind": "guard",
			 "guard": {"kind": "var", "name": "otherwise"},
			 "body": {"kind": "lit", "text": "0"}}
		]}
	}`
	node, err := Decode([]byte(doc))
	require.NoError(t, err)

	match, ok := node.(*ast.Match)
	require.True(t, ok)
	require.Nil(t, match.Rhs.Body)
	require.Len(t, match.Rhs.Guards, 1)
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{"kind": "module",`))
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrDecode, rerr.Kind)
}

func TestDecodeUnknownKind(t *testing.T) {
	_, err := Decode([]byte(`{"kind": "comprehension"}`))
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrDecode, rerr.Kind)
	require.Contains(t, rerr.Message, "comprehension")
}

func TestDecodeMissingKind(t *testing.T) {
	_, err := Decode([]byte(`{"name": "Main"}`))
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrDecode, rerr.Kind)
}

func TestDecodeRejectsNonDeclInDecls(t *testing.T) {
	doc := `{"kind": "module", "decls": [{"kind": "var", "name": "x"}]}`
	_, err := Decode([]byte(doc))
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrDecode, rerr.Kind)
}

func TestDecodeRejectsEmptyRhs(t *testing.T) {
	doc := `{"kind": "match", "name": "f", "rhs": {"kind": "rhs"}}`
	_, err := Decode([]byte(doc))
	var rerr *errz.RenderError
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, errz.ErrDecode, rerr.Kind)
}
