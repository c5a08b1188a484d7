package format

import (
	"strconv"

	"marque/internal/ast"
	"marque/internal/rgb"
)

// Expr renders a single expression to canonical surface syntax.
func Expr(e ast.Expr) string {
	var p Printer
	p.printExpr(e)
	return p.String()
}

// Tree renders a markup tree to canonical surface syntax.
func Tree(t ast.Tree) string {
	var p Printer
	p.printTree(t)
	return p.String()
}

func (p *Printer) printExpr(e ast.Expr) {
	switch e := e.(type) {
	case ast.None:
		p.WriteString("none")
	case ast.Ident:
		p.WriteString(string(e))
	case ast.Bool:
		p.Writef("%t", bool(e))
	case ast.Int:
		p.Writef("%d", int64(e))
	case ast.Float:
		p.WriteString(formatFloat(float64(e)))
	case ast.Length:
		p.WriteString(formatFloat(e.Val))
		p.WriteString(e.Unit.String())
	case ast.Percent:
		p.WriteString(formatFloat(float64(e)))
		p.WriteString("%")
	case ast.Color:
		p.WriteString(rgb.Color(e).String())
	case ast.Str:
		p.WriteString(strconv.Quote(string(e)))
	case ast.Call:
		p.printCall(e)
	case ast.Unary:
		p.WriteString(e.Op.V.String())
		p.printExpr(e.Expr.V)
	case ast.Binary:
		p.printExpr(e.LHS.V)
		p.WriteString(" ")
		p.WriteString(e.Op.V.String())
		p.WriteString(" ")
		p.printExpr(e.RHS.V)
	case ast.Array:
		p.printArray(e)
	case ast.Dict:
		p.printDict(e)
	case ast.Content:
		p.printContentExpr(ast.Tree(e))
	}
}

func (p *Printer) printArray(arr ast.Array) {
	p.WriteString("(")
	Join(p, arr, ", ", func(p *Printer, item spannedExpr) {
		p.printExpr(item.V)
	})
	// A trailing comma keeps a one-element array apart from a
	// parenthesized expression.
	if len(arr) == 1 {
		p.WriteString(",")
	}
	p.WriteString(")")
}

func (p *Printer) printDict(dict ast.Dict) {
	p.WriteString("(")
	if len(dict) == 0 {
		// `(:)` keeps the empty dictionary apart from the empty array.
		p.WriteString(":")
	} else {
		Join(p, dict, ", ", func(p *Printer, named ast.Named) {
			p.printNamed(named)
		})
	}
	p.WriteString(")")
}

func (p *Printer) printNamed(named ast.Named) {
	p.WriteString(string(named.Name.V))
	p.WriteString(": ")
	p.printExpr(named.Expr.V)
}

// formatFloat renders the shortest decimal that round-trips the value, so
// `2.50` comes out as `2.5` and `1e2` as `100`.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
