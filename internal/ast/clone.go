package ast

import (
	"marque/internal/source"
)

// Clone returns a deep copy of the expression. Leaf variants are plain
// values and are returned as-is; composite variants copy their slices so
// the result shares no storage with the original.
func Clone(e Expr) Expr {
	switch e := e.(type) {
	case Call:
		return Call{
			Name: e.Name,
			Args: source.At(cloneArgs(e.Args.V), e.Args.Span),
		}
	case Unary:
		return Unary{Op: e.Op, Expr: cloneSpanned(e.Expr)}
	case Binary:
		return Binary{
			LHS: cloneSpanned(e.LHS),
			Op:  e.Op,
			RHS: cloneSpanned(e.RHS),
		}
	case Array:
		out := make(Array, len(e))
		for i, item := range e {
			out[i] = cloneSpanned(item)
		}
		return out
	case Dict:
		out := make(Dict, len(e))
		for i, named := range e {
			out[i] = Named{Name: named.Name, Expr: cloneSpanned(named.Expr)}
		}
		return out
	case Content:
		return Content(CloneTree(Tree(e)))
	default:
		return e
	}
}

// CloneTree returns a deep copy of a markup tree.
func CloneTree(t Tree) Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, node := range t {
		out[i] = source.At(cloneNode(node.V), node.Span)
	}
	return out
}

func cloneNode(n Node) Node {
	if en, ok := n.(ExprNode); ok {
		return ExprNode{Expr: Clone(en.Expr)}
	}
	return n
}

func cloneArgs(args Args) Args {
	if args == nil {
		return nil
	}
	out := make(Args, len(args))
	for i, arg := range args {
		out[i] = Arg{Name: arg.Name, Expr: cloneSpanned(arg.Expr)}
	}
	return out
}

func cloneSpanned(s source.Spanned[Expr]) source.Spanned[Expr] {
	return source.At(Clone(s.V), s.Span)
}
