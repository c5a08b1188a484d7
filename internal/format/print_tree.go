package format

import (
	"marque/internal/ast"
)

func (p *Printer) printTree(tree ast.Tree) {
	for _, node := range tree {
		p.printNode(node.V)
	}
}

func (p *Printer) printNode(node ast.Node) {
	switch node := node.(type) {
	case ast.Text:
		p.WriteString(string(node))
	case ast.Space:
		p.WriteString(" ")
	case ast.Linebreak:
		p.WriteString("\\")
	case ast.Parbreak:
		p.WriteString("\n\n")
	case ast.Strong:
		p.WriteString("*")
	case ast.Emph:
		p.WriteString("_")
	case ast.ExprNode:
		p.printNodeExpr(node.Expr)
	}
}

// printNodeExpr renders an expression in markup position. Calls take the
// bracket form; everything else keeps its braces.
func (p *Printer) printNodeExpr(e ast.Expr) {
	if call, ok := e.(ast.Call); ok {
		p.printBracketCall(call, false)
		return
	}
	p.WriteString("{")
	p.printExpr(e)
	p.WriteString("}")
}
