package ast

// Visitor defines the interface for AST traversal. If Visit returns nil,
// children of the node are not visited. Otherwise, the returned Visitor
// is used to visit children.
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses an AST in depth-first order. It starts by calling
// v.Visit(node); if the returned visitor w is not nil, Walk is invoked
// recursively with visitor w for each of the non-nil children of node.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Module:
		for _, imp := range n.Imports {
			Walk(v, imp)
		}
		for _, decl := range n.Decls {
			Walk(v, decl)
		}

	// Declarations
	case *ImportDecl:
		// no children
	case *TypeSig:
		if n.Ctx != nil {
			Walk(v, n.Ctx)
		}
		Walk(v, n.Ty)
	case *FunBind:
		for _, m := range n.Matches {
			Walk(v, m)
		}
	case *Match:
		for _, p := range n.Pats {
			Walk(v, p)
		}
		if n.Rhs != nil {
			Walk(v, n.Rhs)
		}
		for _, d := range n.Where {
			Walk(v, d)
		}
	case *PatBind:
		Walk(v, n.P)
		if n.Rhs != nil {
			Walk(v, n.Rhs)
		}
		for _, d := range n.Where {
			Walk(v, d)
		}
	case *DataDecl:
		for _, con := range n.Cons {
			Walk(v, con)
		}
		if n.Derivs != nil {
			Walk(v, n.Derivs)
		}
	case *ConDecl:
		for _, arg := range n.Args {
			Walk(v, arg)
		}
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *FieldDecl:
		Walk(v, n.Ty)
	case *Context:
		for _, c := range n.Constraints {
			Walk(v, c)
		}
	case *Deriving:
		// no children
	case *Rhs:
		if n.Body != nil {
			Walk(v, n.Body)
		}
		for _, g := range n.Guards {
			Walk(v, g)
		}
	case *GuardedAlt:
		Walk(v, n.Guard)
		Walk(v, n.Body)

	// Types
	case *TyCon, *TyVar:
		// no children
	case *TyApp:
		Walk(v, n.Fn)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *TyFun:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *TyList:
		Walk(v, n.Elem)
	case *TyTuple:
		for _, e := range n.Elems {
			Walk(v, e)
		}
	case *TyParen:
		Walk(v, n.X)
	case *TyQual:
		Walk(v, n.Ctx)
		Walk(v, n.Ty)

	// Expressions
	case *Var, *Lit:
		// no children
	case *App:
		Walk(v, n.Fn)
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *OpApp:
		Walk(v, n.X)
		Walk(v, n.Y)
	case *Lambda:
		for _, p := range n.Pats {
			Walk(v, p)
		}
		Walk(v, n.Body)
	case *Case:
		Walk(v, n.Scrut)
		for _, alt := range n.Alts {
			Walk(v, alt)
		}
	case *Alt:
		Walk(v, n.P)
		if n.Body != nil {
			Walk(v, n.Body)
		}
		for _, d := range n.Where {
			Walk(v, d)
		}
	case *Let:
		for _, d := range n.Binds {
			Walk(v, d)
		}
		Walk(v, n.Body)
	case *If:
		Walk(v, n.Cond)
		Walk(v, n.Then)
		Walk(v, n.Else)
	case *ListExpr:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *TupleExpr:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *RecordCon:
		for _, f := range n.Fields {
			Walk(v, f)
		}
	case *FieldUpdate:
		Walk(v, n.Value)
	case *Paren:
		Walk(v, n.X)

	// Patterns
	case *PVar, *PLit, *PWild:
		// no children
	case *PCon:
		for _, p := range n.Pats {
			Walk(v, p)
		}
	case *PTuple:
		for _, p := range n.Pats {
			Walk(v, p)
		}
	case *PList:
		for _, p := range n.Pats {
			Walk(v, p)
		}
	case *PParen:
		Walk(v, n.X)
	}
}

// Inspect traverses an AST in depth-first order, calling f for each node.
// If f returns false, children of the node are not visited.
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}
