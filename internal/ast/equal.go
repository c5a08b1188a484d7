package ast

// Equal reports structural equality of two expressions. Spans are ignored:
// two trees parsed from different places compare equal when they describe
// the same expression.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case None:
		_, ok := b.(None)
		return ok
	case Ident:
		bv, ok := b.(Ident)
		return ok && a == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && a == bv
	case Int:
		bv, ok := b.(Int)
		return ok && a == bv
	case Float:
		bv, ok := b.(Float)
		return ok && a == bv
	case Length:
		bv, ok := b.(Length)
		return ok && a == bv
	case Percent:
		bv, ok := b.(Percent)
		return ok && a == bv
	case Color:
		bv, ok := b.(Color)
		return ok && a == bv
	case Str:
		bv, ok := b.(Str)
		return ok && a == bv
	case Call:
		bv, ok := b.(Call)
		return ok && a.Name.V == bv.Name.V && argsEqual(a.Args.V, bv.Args.V)
	case Unary:
		bv, ok := b.(Unary)
		return ok && a.Op.V == bv.Op.V && Equal(a.Expr.V, bv.Expr.V)
	case Binary:
		bv, ok := b.(Binary)
		return ok && a.Op.V == bv.Op.V &&
			Equal(a.LHS.V, bv.LHS.V) && Equal(a.RHS.V, bv.RHS.V)
	case Array:
		bv, ok := b.(Array)
		if !ok || len(a) != len(bv) {
			return false
		}
		for i := range a {
			if !Equal(a[i].V, bv[i].V) {
				return false
			}
		}
		return true
	case Dict:
		bv, ok := b.(Dict)
		if !ok || len(a) != len(bv) {
			return false
		}
		for i := range a {
			if !namedEqual(a[i], bv[i]) {
				return false
			}
		}
		return true
	case Content:
		bv, ok := b.(Content)
		return ok && TreeEqual(Tree(a), Tree(bv))
	}
	return false
}

func argsEqual(a, b Args) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name.V != b[i].Name.V || !Equal(a[i].Expr.V, b[i].Expr.V) {
			return false
		}
	}
	return true
}

func namedEqual(a, b Named) bool {
	return a.Name.V == b.Name.V && Equal(a.Expr.V, b.Expr.V)
}

// TreeEqual reports structural equality of two markup trees, ignoring spans.
func TreeEqual(a, b Tree) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !nodeEqual(a[i].V, b[i].V) {
			return false
		}
	}
	return true
}

func nodeEqual(a, b Node) bool {
	switch a := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && a == bv
	case Space:
		_, ok := b.(Space)
		return ok
	case Linebreak:
		_, ok := b.(Linebreak)
		return ok
	case Parbreak:
		_, ok := b.(Parbreak)
		return ok
	case Strong:
		_, ok := b.(Strong)
		return ok
	case Emph:
		_, ok := b.(Emph)
		return ok
	case ExprNode:
		bv, ok := b.(ExprNode)
		return ok && Equal(a.Expr, bv.Expr)
	}
	return false
}
