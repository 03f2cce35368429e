// Package astjson decodes the JSON interchange form of the syntax tree.
// External front-ends parse Haskell source and hand the tree to the
// formatter as a JSON document; every node is an object with a "kind"
// discriminator, a "pos"/"end" source span, and kind-specific fields.
package astjson

import (
	"github.com/tidwall/gjson"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
	"github.com/gibiansky/hindent/internal/token"
)

// Decode parses a JSON document into a syntax tree.
func Decode(data []byte) (ast.Node, error) {
	if !gjson.ValidBytes(data) {
		return nil, errz.New(errz.ErrDecode, "invalid JSON document")
	}
	return decodeNode(gjson.ParseBytes(data))
}

func decodeNode(r gjson.Result) (ast.Node, error) {
	kind := r.Get("kind").String()
	switch kind {
	case "module":
		return decodeModule(r)
	case "import":
		return decodeImport(r)
	case "typesig":
		return decodeTypeSig(r)
	case "funbind":
		return decodeFunBind(r)
	case "match":
		return decodeMatch(r)
	case "patbind":
		return decodePatBind(r)
	case "data":
		return decodeData(r)
	case "condecl":
		return decodeConDecl(r)
	case "field":
		return decodeField(r)
	case "context":
		return decodeContext(r)
	case "deriving":
		return &ast.Deriving{DerivingPos: pos(r), Names: stringList(r, "names")}, nil
	case "rhs":
		return decodeRhs(r)
	case "guard":
		return decodeGuard(r)
	case "tycon":
		return &ast.TyCon{NamePos: pos(r), Name: r.Get("name").String()}, nil
	case "tyvar":
		return &ast.TyVar{NamePos: pos(r), Name: r.Get("name").String()}, nil
	case "tyapp":
		return decodeTyApp(r)
	case "tyfun":
		return decodeTyFun(r)
	case "tylist":
		return decodeTyList(r)
	case "tytuple":
		return decodeTyTuple(r)
	case "typaren":
		return decodeTyParen(r)
	case "tyqual":
		return decodeTyQual(r)
	case "var":
		return &ast.Var{NamePos: pos(r), Name: r.Get("name").String()}, nil
	case "lit":
		return &ast.Lit{LitPos: pos(r), Text: r.Get("text").String()}, nil
	case "app":
		return decodeApp(r)
	case "opapp":
		return decodeOpApp(r)
	case "lambda":
		return decodeLambda(r)
	case "case":
		return decodeCase(r)
	case "alt":
		return decodeAlt(r)
	case "let":
		return decodeLet(r)
	case "if":
		return decodeIf(r)
	case "list":
		return decodeList(r)
	case "tuple":
		return decodeTuple(r)
	case "record":
		return decodeRecord(r)
	case "fieldupdate":
		return decodeFieldUpdate(r)
	case "paren":
		return decodeParen(r)
	case "pvar":
		return &ast.PVar{NamePos: pos(r), Name: r.Get("name").String()}, nil
	case "plit":
		return &ast.PLit{LitPos: pos(r), Text: r.Get("text").String()}, nil
	case "pwild":
		return &ast.PWild{UnderscorePos: pos(r)}, nil
	case "pcon":
		return decodePCon(r)
	case "ptuple":
		return decodePTuple(r)
	case "plist":
		return decodePList(r)
	case "pparen":
		return decodePParen(r)
	case "":
		return nil, errz.New(errz.ErrDecode, "node object is missing its kind")
	default:
		return nil, errz.New(errz.ErrDecode, "unknown node kind %q", kind)
	}
}

func pos(r gjson.Result) token.Position {
	return posAt(r.Get("pos"))
}

func endPos(r gjson.Result) token.Position {
	return posAt(r.Get("end"))
}

func posAt(r gjson.Result) token.Position {
	return token.Position{
		Line:   int(r.Get("line").Int()),
		Column: int(r.Get("column").Int()),
		File:   r.Get("file").String(),
	}
}

func stringList(r gjson.Result, key string) []string {
	field := r.Get(key)
	if !field.Exists() {
		return nil
	}
	var names []string
	field.ForEach(func(_, v gjson.Result) bool {
		names = append(names, v.String())
		return true
	})
	return names
}

func decodeModule(r gjson.Result) (*ast.Module, error) {
	m := &ast.Module{
		ModPos: pos(r),
		Name:   r.Get("name").String(),
	}
	for _, imp := range r.Get("imports").Array() {
		decl, err := decodeImport(imp)
		if err != nil {
			return nil, err
		}
		m.Imports = append(m.Imports, decl)
	}
	decls, err := decodeDecls(r, "decls")
	if err != nil {
		return nil, err
	}
	m.Decls = decls
	return m, nil
}

func decodeImport(r gjson.Result) (*ast.ImportDecl, error) {
	if kind := r.Get("kind").String(); kind != "import" {
		return nil, errz.New(errz.ErrDecode, "expected an import node, got %q", kind)
	}
	return &ast.ImportDecl{
		ImportPos: pos(r),
		EndPos:    endPos(r),
		Module:    r.Get("module").String(),
		Qualified: r.Get("qualified").Bool(),
		Alias:     r.Get("alias").String(),
		Names:     stringList(r, "names"),
		Hiding:    r.Get("hiding").Bool(),
	}, nil
}

func decodeDecls(r gjson.Result, key string) ([]ast.Decl, error) {
	var decls []ast.Decl
	for _, d := range r.Get(key).Array() {
		node, err := decodeNode(d)
		if err != nil {
			return nil, err
		}
		decl, ok := node.(ast.Decl)
		if !ok {
			return nil, errz.New(errz.ErrDecode, "%s node is not a declaration", d.Get("kind").String())
		}
		decls = append(decls, decl)
	}
	return decls, nil
}

func decodeTypeSig(r gjson.Result) (*ast.TypeSig, error) {
	sig := &ast.TypeSig{
		NamePos: pos(r),
		Names:   stringList(r, "names"),
	}
	if ctx := r.Get("context"); ctx.Exists() {
		decoded, err := decodeContext(ctx)
		if err != nil {
			return nil, err
		}
		sig.Ctx = decoded
	}
	ty, err := decodeType(r.Get("type"))
	if err != nil {
		return nil, err
	}
	sig.Ty = ty
	return sig, nil
}

func decodeFunBind(r gjson.Result) (*ast.FunBind, error) {
	bind := &ast.FunBind{}
	for _, m := range r.Get("matches").Array() {
		match, err := decodeMatch(m)
		if err != nil {
			return nil, err
		}
		bind.Matches = append(bind.Matches, match)
	}
	if len(bind.Matches) == 0 {
		return nil, errz.New(errz.ErrDecode, "funbind node has no matches")
	}
	return bind, nil
}

func decodeMatch(r gjson.Result) (*ast.Match, error) {
	match := &ast.Match{
		NamePos: pos(r),
		Name:    r.Get("name").String(),
	}
	for _, p := range r.Get("pats").Array() {
		pat, err := decodePat(p)
		if err != nil {
			return nil, err
		}
		match.Pats = append(match.Pats, pat)
	}
	rhs, err := decodeRhs(r.Get("rhs"))
	if err != nil {
		return nil, err
	}
	match.Rhs = rhs
	where, err := decodeDecls(r, "where")
	if err != nil {
		return nil, err
	}
	match.Where = where
	return match, nil
}

func decodePatBind(r gjson.Result) (*ast.PatBind, error) {
	p, err := decodePat(r.Get("pat"))
	if err != nil {
		return nil, err
	}
	rhs, err := decodeRhs(r.Get("rhs"))
	if err != nil {
		return nil, err
	}
	where, err := decodeDecls(r, "where")
	if err != nil {
		return nil, err
	}
	return &ast.PatBind{P: p, Rhs: rhs, Where: where}, nil
}

func decodeData(r gjson.Result) (*ast.DataDecl, error) {
	decl := &ast.DataDecl{
		DataPos: pos(r),
		Newtype: r.Get("newtype").Bool(),
		Name:    r.Get("name").String(),
		TyVars:  stringList(r, "tyvars"),
	}
	for _, con := range r.Get("cons").Array() {
		decoded, err := decodeConDecl(con)
		if err != nil {
			return nil, err
		}
		decl.Cons = append(decl.Cons, decoded)
	}
	if derivs := r.Get("deriving"); derivs.Exists() {
		decl.Derivs = &ast.Deriving{
			DerivingPos: pos(derivs),
			Names:       stringList(derivs, "names"),
		}
	}
	return decl, nil
}

func decodeConDecl(r gjson.Result) (*ast.ConDecl, error) {
	con := &ast.ConDecl{
		NamePos: pos(r),
		Name:    r.Get("name").String(),
	}
	for _, arg := range r.Get("args").Array() {
		ty, err := decodeType(arg)
		if err != nil {
			return nil, err
		}
		con.Args = append(con.Args, ty)
	}
	if fields := r.Get("fields"); fields.Exists() {
		con.Fields = []*ast.FieldDecl{}
		for _, f := range fields.Array() {
			field, err := decodeField(f)
			if err != nil {
				return nil, err
			}
			con.Fields = append(con.Fields, field)
		}
	}
	return con, nil
}

func decodeField(r gjson.Result) (*ast.FieldDecl, error) {
	ty, err := decodeType(r.Get("type"))
	if err != nil {
		return nil, err
	}
	return &ast.FieldDecl{
		NamePos: pos(r),
		Names:   stringList(r, "names"),
		Ty:      ty,
		Comment: r.Get("comment").String(),
	}, nil
}

func decodeContext(r gjson.Result) (*ast.Context, error) {
	ctx := &ast.Context{OpenPos: pos(r)}
	for _, constraint := range r.Get("constraints").Array() {
		ty, err := decodeType(constraint)
		if err != nil {
			return nil, err
		}
		ctx.Constraints = append(ctx.Constraints, ty)
	}
	return ctx, nil
}

func decodeRhs(r gjson.Result) (*ast.Rhs, error) {
	if body := r.Get("body"); body.Exists() {
		expr, err := decodeExpr(body)
		if err != nil {
			return nil, err
		}
		return &ast.Rhs{Body: expr}, nil
	}
	rhs := &ast.Rhs{}
	for _, g := range r.Get("guards").Array() {
		guard, err := decodeGuard(g)
		if err != nil {
			return nil, err
		}
		rhs.Guards = append(rhs.Guards, guard)
	}
	if len(rhs.Guards) == 0 {
		return nil, errz.New(errz.ErrDecode, "rhs node has neither body nor guards")
	}
	return rhs, nil
}

func decodeGuard(r gjson.Result) (*ast.GuardedAlt, error) {
	guard, err := decodeExpr(r.Get("guard"))
	if err != nil {
		return nil, err
	}
	body, err := decodeExpr(r.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ast.GuardedAlt{BarPos: pos(r), Guard: guard, Body: body}, nil
}

func decodeType(r gjson.Result) (ast.Type, error) {
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	ty, ok := node.(ast.Type)
	if !ok {
		return nil, errz.New(errz.ErrDecode, "%s node is not a type", r.Get("kind").String())
	}
	return ty, nil
}

func decodeExpr(r gjson.Result) (ast.Expr, error) {
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	expr, ok := node.(ast.Expr)
	if !ok {
		return nil, errz.New(errz.ErrDecode, "%s node is not an expression", r.Get("kind").String())
	}
	return expr, nil
}

func decodePat(r gjson.Result) (ast.Pat, error) {
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	pat, ok := node.(ast.Pat)
	if !ok {
		return nil, errz.New(errz.ErrDecode, "%s node is not a pattern", r.Get("kind").String())
	}
	return pat, nil
}

func decodeTypes(r gjson.Result, key string) ([]ast.Type, error) {
	var types []ast.Type
	for _, t := range r.Get(key).Array() {
		ty, err := decodeType(t)
		if err != nil {
			return nil, err
		}
		types = append(types, ty)
	}
	return types, nil
}

func decodeExprs(r gjson.Result, key string) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for _, e := range r.Get(key).Array() {
		expr, err := decodeExpr(e)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodePats(r gjson.Result, key string) ([]ast.Pat, error) {
	var pats []ast.Pat
	for _, p := range r.Get(key).Array() {
		pat, err := decodePat(p)
		if err != nil {
			return nil, err
		}
		pats = append(pats, pat)
	}
	return pats, nil
}

func decodeTyApp(r gjson.Result) (*ast.TyApp, error) {
	fn, err := decodeType(r.Get("fn"))
	if err != nil {
		return nil, err
	}
	args, err := decodeTypes(r, "args")
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errz.New(errz.ErrDecode, "tyapp node has no arguments")
	}
	return &ast.TyApp{Fn: fn, Args: args}, nil
}

func decodeTyFun(r gjson.Result) (*ast.TyFun, error) {
	x, err := decodeType(r.Get("x"))
	if err != nil {
		return nil, err
	}
	y, err := decodeType(r.Get("y"))
	if err != nil {
		return nil, err
	}
	return &ast.TyFun{X: x, Y: y}, nil
}

func decodeTyList(r gjson.Result) (*ast.TyList, error) {
	elem, err := decodeType(r.Get("elem"))
	if err != nil {
		return nil, err
	}
	return &ast.TyList{Lbrack: pos(r), Elem: elem, Rbrack: endPos(r)}, nil
}

func decodeTyTuple(r gjson.Result) (*ast.TyTuple, error) {
	elems, err := decodeTypes(r, "elems")
	if err != nil {
		return nil, err
	}
	return &ast.TyTuple{Lparen: pos(r), Elems: elems, Rparen: endPos(r)}, nil
}

func decodeTyParen(r gjson.Result) (*ast.TyParen, error) {
	x, err := decodeType(r.Get("x"))
	if err != nil {
		return nil, err
	}
	return &ast.TyParen{Lparen: pos(r), X: x, Rparen: endPos(r)}, nil
}

func decodeTyQual(r gjson.Result) (*ast.TyQual, error) {
	ctx, err := decodeContext(r.Get("context"))
	if err != nil {
		return nil, err
	}
	ty, err := decodeType(r.Get("type"))
	if err != nil {
		return nil, err
	}
	return &ast.TyQual{Ctx: ctx, Ty: ty}, nil
}

func decodeApp(r gjson.Result) (*ast.App, error) {
	fn, err := decodeExpr(r.Get("fn"))
	if err != nil {
		return nil, err
	}
	args, err := decodeExprs(r, "args")
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, errz.New(errz.ErrDecode, "app node has no arguments")
	}
	return &ast.App{Fn: fn, Args: args}, nil
}

func decodeOpApp(r gjson.Result) (*ast.OpApp, error) {
	x, err := decodeExpr(r.Get("x"))
	if err != nil {
		return nil, err
	}
	y, err := decodeExpr(r.Get("y"))
	if err != nil {
		return nil, err
	}
	return &ast.OpApp{X: x, OpPos: pos(r), Op: r.Get("op").String(), Y: y}, nil
}

func decodeLambda(r gjson.Result) (*ast.Lambda, error) {
	pats, err := decodePats(r, "pats")
	if err != nil {
		return nil, err
	}
	body, err := decodeExpr(r.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ast.Lambda{Backslash: pos(r), Pats: pats, Body: body}, nil
}

func decodeCase(r gjson.Result) (*ast.Case, error) {
	scrut, err := decodeExpr(r.Get("scrut"))
	if err != nil {
		return nil, err
	}
	expr := &ast.Case{CasePos: pos(r), Scrut: scrut}
	for _, a := range r.Get("alts").Array() {
		alt, err := decodeAlt(a)
		if err != nil {
			return nil, err
		}
		expr.Alts = append(expr.Alts, alt)
	}
	if len(expr.Alts) == 0 {
		return nil, errz.New(errz.ErrDecode, "case node has no alternatives")
	}
	return expr, nil
}

func decodeAlt(r gjson.Result) (*ast.Alt, error) {
	p, err := decodePat(r.Get("pat"))
	if err != nil {
		return nil, err
	}
	rhs, err := decodeRhs(r.Get("rhs"))
	if err != nil {
		return nil, err
	}
	where, err := decodeDecls(r, "where")
	if err != nil {
		return nil, err
	}
	return &ast.Alt{P: p, Body: rhs, Where: where}, nil
}

func decodeLet(r gjson.Result) (*ast.Let, error) {
	binds, err := decodeDecls(r, "binds")
	if err != nil {
		return nil, err
	}
	if len(binds) == 0 {
		return nil, errz.New(errz.ErrDecode, "let node has no bindings")
	}
	body, err := decodeExpr(r.Get("body"))
	if err != nil {
		return nil, err
	}
	return &ast.Let{LetPos: pos(r), Binds: binds, Body: body}, nil
}

func decodeIf(r gjson.Result) (*ast.If, error) {
	cond, err := decodeExpr(r.Get("cond"))
	if err != nil {
		return nil, err
	}
	then, err := decodeExpr(r.Get("then"))
	if err != nil {
		return nil, err
	}
	els, err := decodeExpr(r.Get("else"))
	if err != nil {
		return nil, err
	}
	return &ast.If{IfPos: pos(r), Cond: cond, Then: then, Else: els}, nil
}

func decodeList(r gjson.Result) (*ast.ListExpr, error) {
	items, err := decodeExprs(r, "items")
	if err != nil {
		return nil, err
	}
	return &ast.ListExpr{Lbrack: pos(r), Items: items, Rbrack: endPos(r)}, nil
}

func decodeTuple(r gjson.Result) (*ast.TupleExpr, error) {
	items, err := decodeExprs(r, "items")
	if err != nil {
		return nil, err
	}
	return &ast.TupleExpr{Lparen: pos(r), Items: items, Rparen: endPos(r)}, nil
}

func decodeRecord(r gjson.Result) (*ast.RecordCon, error) {
	record := &ast.RecordCon{
		NamePos: pos(r),
		Name:    r.Get("name").String(),
		Rbrace:  endPos(r),
	}
	for _, f := range r.Get("fields").Array() {
		field, err := decodeFieldUpdate(f)
		if err != nil {
			return nil, err
		}
		record.Fields = append(record.Fields, field)
	}
	return record, nil
}

func decodeFieldUpdate(r gjson.Result) (*ast.FieldUpdate, error) {
	value, err := decodeExpr(r.Get("value"))
	if err != nil {
		return nil, err
	}
	return &ast.FieldUpdate{
		NamePos: pos(r),
		Name:    r.Get("name").String(),
		Value:   value,
		Comment: r.Get("comment").String(),
	}, nil
}

func decodeParen(r gjson.Result) (*ast.Paren, error) {
	x, err := decodeExpr(r.Get("x"))
	if err != nil {
		return nil, err
	}
	return &ast.Paren{Lparen: pos(r), X: x, Rparen: endPos(r)}, nil
}

func decodePCon(r gjson.Result) (*ast.PCon, error) {
	pats, err := decodePats(r, "pats")
	if err != nil {
		return nil, err
	}
	return &ast.PCon{NamePos: pos(r), Name: r.Get("name").String(), Pats: pats}, nil
}

func decodePTuple(r gjson.Result) (*ast.PTuple, error) {
	pats, err := decodePats(r, "pats")
	if err != nil {
		return nil, err
	}
	return &ast.PTuple{Lparen: pos(r), Pats: pats, Rparen: endPos(r)}, nil
}

func decodePList(r gjson.Result) (*ast.PList, error) {
	pats, err := decodePats(r, "pats")
	if err != nil {
		return nil, err
	}
	return &ast.PList{Lbrack: pos(r), Pats: pats, Rbrack: endPos(r)}, nil
}

func decodePParen(r gjson.Result) (*ast.PParen, error) {
	x, err := decodePat(r.Get("x"))
	if err != nil {
		return nil, err
	}
	return &ast.PParen{Lparen: pos(r), X: x, Rparen: endPos(r)}, nil
}
