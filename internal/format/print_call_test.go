package format

import (
	"testing"

	"marque/internal/ast"
)

func TestPrintCallGeneric(t *testing.T) {
	tests := []struct {
		name     string
		call     ast.Call
		expected string
	}{
		{name: "no args", call: call("f"), expected: "f()"},
		{
			name:     "positional args",
			call:     call("f", pos(ast.Int(1)), pos(ast.Int(2))),
			expected: "f(1, 2)",
		},
		{
			name:     "named arg",
			call:     call("f", pos(ast.Int(12)), named("draw", ast.Bool(false))),
			expected: "f(12, draw: false)",
		},
		{
			name:     "trailing non-content arg stays generic",
			call:     call("f", pos(ast.Str("x"))),
			expected: `f("x")`,
		},
		{
			name:     "trailing named content stays generic",
			call:     call("f", named("body", content(ast.Text("Hi")))),
			expected: "f(body: {Hi})",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expr(tt.call); got != tt.expected {
				t.Errorf("Expr() = %q, want %q", got, tt.expected)
			}
		})
	}
}

// chainAST is the tree every one of `[v [f]]`, `[v {[f]}]`, `[v][[f]]` and
// `[v | f]` parses to: a markup call to v whose sole argument is a content
// block holding a single call to f.
func chainAST() ast.Tree {
	inner := call("f")
	outer := call("v", pos(content(embed(inner))))
	return ast.Tree{sp(embed(outer))}
}

func TestPrintChaining(t *testing.T) {
	if got := Tree(chainAST()); got != "[v | f]" {
		t.Fatalf("Tree() = %q, want %q", got, "[v | f]")
	}

	// Deeper nesting folds into one chain.
	three := ast.Tree{sp(embed(
		call("a", pos(content(embed(
			call("b", pos(content(embed(call("c"))))),
		)))),
	))}
	if got := Tree(three); got != "[a | b | c]" {
		t.Errorf("Tree() = %q, want %q", got, "[a | b | c]")
	}

	// Chained tail keeps its own arguments.
	tail := ast.Tree{sp(embed(
		call("v", pos(content(embed(call("f", pos(ast.Int(1)), pos(ast.Int(2))))))),
	))}
	if got := Tree(tail); got != "[v | f 1, 2]" {
		t.Errorf("Tree() = %q, want %q", got, "[v | f 1, 2]")
	}
}

func TestPrintBracketBody(t *testing.T) {
	tests := []struct {
		name     string
		tree     ast.Tree
		expected string
	}{
		{
			name:     "plain body",
			tree:     ast.Tree{sp(embed(call("v", pos(content(ast.Text("Hi"))))))},
			expected: "[v][Hi]",
		},
		{
			name: "leading args before body",
			tree: ast.Tree{sp(embed(call("v",
				pos(ast.Int(1)),
				named("color", ast.Ident("dashed")),
				pos(content(ast.Text("Hi"))),
			)))},
			expected: "[v 1, color: dashed][Hi]",
		},
		{
			name: "multi-node body stays a body",
			tree: ast.Tree{sp(embed(call("v", pos(content(
				embed(call("f")),
				ast.Space{},
				ast.Text("x"),
			)))))},
			expected: "[v][[f] x]",
		},
		{
			name:     "empty body",
			tree:     ast.Tree{sp(embed(call("v", pos(content()))))},
			expected: "[v][]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tree(tt.tree); got != tt.expected {
				t.Errorf("Tree() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestPrintContentBraceElision(t *testing.T) {
	// `(func: {[f]})` loses the redundant braces.
	dict := ast.Dict{{
		Name: sp(ast.Ident("func")),
		Expr: sp[ast.Expr](content(embed(call("f")))),
	}}
	if got := Expr(dict); got != "(func: [f])" {
		t.Errorf("Expr() = %q, want %q", got, "(func: [f])")
	}

	// A content argument that is not in trailing position keeps working
	// through the generic form: `[v [f], 1]`.
	tree := ast.Tree{sp(embed(call("v",
		pos(content(embed(call("f")))),
		pos(ast.Int(1)),
	)))}
	if got := Tree(tree); got != "[v [f], 1]" {
		t.Errorf("Tree() = %q, want %q", got, "[v [f], 1]")
	}

	// Multiple nodes keep their braces.
	mixed := content(ast.Text("a"), ast.Space{}, embed(call("f")))
	if got := Expr(mixed); got != "{a [f]}" {
		t.Errorf("Expr() = %q, want %q", got, "{a [f]}")
	}
}

// TestPrintCanonicalFixedPoint checks that printing the tree a canonical
// rendering parses back to reproduces the same text: the sugared input tree
// and its canonical counterpart are one and the same tree here, so printing
// must be stable across the cycle.
func TestPrintCanonicalFixedPoint(t *testing.T) {
	trees := []struct {
		name     string
		tree     ast.Tree
		expected string
	}{
		{name: "chain", tree: chainAST(), expected: "[v | f]"},
		{
			name:     "body",
			tree:     ast.Tree{sp(embed(call("v", pos(content(ast.Text("Hi"))))))},
			expected: "[v][Hi]",
		},
		{
			name:     "generic",
			tree:     ast.Tree{sp(embed(ast.Int(1)))},
			expected: "{1}",
		},
	}

	for _, tt := range trees {
		t.Run(tt.name, func(t *testing.T) {
			first := Tree(tt.tree)
			if first != tt.expected {
				t.Fatalf("Tree() = %q, want %q", first, tt.expected)
			}
			if again := Tree(tt.tree); again != first {
				t.Errorf("second rendering %q differs from first %q", again, first)
			}
		})
	}
}
