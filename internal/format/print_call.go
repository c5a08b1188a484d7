package format

import (
	"marque/internal/ast"
)

// printCall renders the generic parenthesized form: `name(arg1, arg2)`.
func (p *Printer) printCall(call ast.Call) {
	p.WriteString(string(call.Name.V))
	p.WriteString("(")
	p.printArgs(call.Args.V)
	p.WriteString(")")
}

func (p *Printer) printArgs(args ast.Args) {
	Join(p, args, ", ", func(p *Printer, arg ast.Arg) {
		p.printArg(arg)
	})
}

func (p *Printer) printArg(arg ast.Arg) {
	if arg.IsNamed() {
		p.WriteString(string(arg.Name.V))
		p.WriteString(": ")
	}
	p.printExpr(arg.Expr.V)
}

// printContentExpr renders a content block in expression position, dropping
// the braces when the block holds nothing but a single function call.
//
// Example: `(call: {[f]})` becomes `(call: [f])`.
func (p *Printer) printContentExpr(tree ast.Tree) {
	if call, ok := singleCall(tree); ok {
		p.printBracketCall(call, false)
		return
	}
	p.WriteString("{")
	p.printTree(tree)
	p.WriteString("}")
}

// printBracketCall renders a bracketed call. A trailing positional content
// argument becomes the body, and a body that is itself a single call
// collapses into a chain.
//
// Example: `[v [f]]`, `[v {[f]}]` and `[v][[f]]` all come out as `[v | f]`.
func (p *Printer) printBracketCall(call ast.Call, chained bool) {
	if chained {
		p.WriteString(" | ")
	} else {
		p.WriteString("[")
	}
	p.WriteString(string(call.Name.V))

	args := call.Args.V
	if head, body, ok := splitTrailingContent(args); ok {
		if len(head) > 0 {
			p.WriteString(" ")
			p.printArgs(head)
		}
		if inner, ok := singleCall(body); ok {
			p.printBracketCall(inner, true)
			return
		}
		p.WriteString("][")
		p.printTree(body)
	} else if len(args) > 0 {
		p.WriteString(" ")
		p.printArgs(args)
	}

	// Either end of header or end of body.
	p.WriteString("]")
}

// singleCall reports whether the tree consists of exactly one expression
// node holding a function call.
func singleCall(tree ast.Tree) (ast.Call, bool) {
	if len(tree) != 1 {
		return ast.Call{}, false
	}
	en, ok := tree[0].V.(ast.ExprNode)
	if !ok {
		return ast.Call{}, false
	}
	call, ok := en.Expr.(ast.Call)
	return call, ok
}

// splitTrailingContent splits off a trailing positional content argument.
// Named or non-content trailing arguments never qualify.
func splitTrailingContent(args ast.Args) (ast.Args, ast.Tree, bool) {
	if len(args) == 0 {
		return nil, nil, false
	}
	last := args[len(args)-1]
	if last.IsNamed() {
		return nil, nil, false
	}
	content, ok := last.Expr.V.(ast.Content)
	if !ok {
		return nil, nil, false
	}
	return args[:len(args)-1], ast.Tree(content), true
}
