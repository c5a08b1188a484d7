// Package treeio moves parsed syntax trees between tools. The parser is a
// separate program; trees travel as msgpack documents with a versioned
// schema so stale artifacts are rejected instead of misread.
package treeio

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"marque/internal/ast"
	"marque/internal/geom"
	"marque/internal/rgb"
	"marque/internal/source"
)

// Schema version - increment when the wire format changes.
const schemaVersion uint16 = 1

// Markup node kinds on the wire.
const (
	nodeText uint8 = iota
	nodeSpace
	nodeLinebreak
	nodeParbreak
	nodeStrong
	nodeEmph
	nodeExpr
)

// Expression kinds on the wire.
const (
	exprNone uint8 = iota
	exprIdent
	exprBool
	exprInt
	exprFloat
	exprLength
	exprPercent
	exprColor
	exprStr
	exprCall
	exprUnary
	exprBinary
	exprArray
	exprDict
	exprContent
)

type wireDoc struct {
	Schema uint16     `msgpack:"schema"`
	Nodes  []wireNode `msgpack:"nodes"`
}

type wireSpan struct {
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

type wireNode struct {
	Kind uint8     `msgpack:"k"`
	Span wireSpan  `msgpack:"sp"`
	Text string    `msgpack:"t,omitempty"`
	Expr *wireExpr `msgpack:"x,omitempty"`
}

type wireExpr struct {
	Kind uint8    `msgpack:"k"`
	Span wireSpan `msgpack:"sp"`

	Bool  bool     `msgpack:"b,omitempty"`
	Int   int64    `msgpack:"i,omitempty"`
	Float float64  `msgpack:"f,omitempty"`
	Text  string   `msgpack:"t,omitempty"`
	Unit  string   `msgpack:"u,omitempty"` // length unit suffix, e.g. "pt"
	Color [4]uint8 `msgpack:"c,omitempty"`

	Op     uint8    `msgpack:"o,omitempty"`
	OpSpan wireSpan `msgpack:"os,omitempty"`

	Name     string   `msgpack:"n,omitempty"`
	NameSpan wireSpan `msgpack:"ns,omitempty"`
	ArgsSpan wireSpan `msgpack:"as,omitempty"`

	Args  []wireArg  `msgpack:"a,omitempty"`
	Items []wireExpr `msgpack:"el,omitempty"` // array elements, operation operands
	Pairs []wireArg  `msgpack:"p,omitempty"`  // dictionary entries
	Nodes []wireNode `msgpack:"nd,omitempty"` // content block body
}

// wireArg carries one call argument or dictionary pair. An empty name marks
// a positional argument.
type wireArg struct {
	Name     string   `msgpack:"n,omitempty"`
	NameSpan wireSpan `msgpack:"ns,omitempty"`
	Value    wireExpr `msgpack:"v"`
}

// Encode writes the tree to w.
func Encode(w io.Writer, tree ast.Tree) error {
	doc := wireDoc{
		Schema: schemaVersion,
		Nodes:  encodeTree(tree),
	}
	if err := msgpack.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("treeio: encode: %w", err)
	}
	return nil
}

// Decode reads a tree from r, validating the schema version and every node
// and expression kind.
func Decode(r io.Reader) (ast.Tree, error) {
	var doc wireDoc
	if err := msgpack.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("treeio: decode: %w", err)
	}
	if doc.Schema != schemaVersion {
		return nil, fmt.Errorf("treeio: schema %d not supported (want %d)", doc.Schema, schemaVersion)
	}
	return decodeTree(doc.Nodes)
}

func encodeTree(tree ast.Tree) []wireNode {
	nodes := make([]wireNode, 0, len(tree))
	for _, node := range tree {
		nodes = append(nodes, encodeNode(node))
	}
	return nodes
}

func encodeNode(node source.Spanned[ast.Node]) wireNode {
	out := wireNode{Span: encodeSpan(node.Span)}
	switch n := node.V.(type) {
	case ast.Text:
		out.Kind = nodeText
		out.Text = string(n)
	case ast.Space:
		out.Kind = nodeSpace
	case ast.Linebreak:
		out.Kind = nodeLinebreak
	case ast.Parbreak:
		out.Kind = nodeParbreak
	case ast.Strong:
		out.Kind = nodeStrong
	case ast.Emph:
		out.Kind = nodeEmph
	case ast.ExprNode:
		out.Kind = nodeExpr
		expr := encodeExpr(source.At(n.Expr, node.Span))
		out.Expr = &expr
	}
	return out
}

func encodeExpr(expr source.Spanned[ast.Expr]) wireExpr {
	out := wireExpr{Span: encodeSpan(expr.Span)}
	switch e := expr.V.(type) {
	case ast.None:
		out.Kind = exprNone
	case ast.Ident:
		out.Kind = exprIdent
		out.Text = string(e)
	case ast.Bool:
		out.Kind = exprBool
		out.Bool = bool(e)
	case ast.Int:
		out.Kind = exprInt
		out.Int = int64(e)
	case ast.Float:
		out.Kind = exprFloat
		out.Float = float64(e)
	case ast.Length:
		out.Kind = exprLength
		out.Float = e.Val
		out.Unit = e.Unit.String()
	case ast.Percent:
		out.Kind = exprPercent
		out.Float = float64(e)
	case ast.Color:
		out.Kind = exprColor
		out.Color = [4]uint8{e.R, e.G, e.B, e.A}
	case ast.Str:
		out.Kind = exprStr
		out.Text = string(e)
	case ast.Call:
		out.Kind = exprCall
		out.Name = string(e.Name.V)
		out.NameSpan = encodeSpan(e.Name.Span)
		out.ArgsSpan = encodeSpan(e.Args.Span)
		out.Args = encodeArgs(e.Args.V)
	case ast.Unary:
		out.Kind = exprUnary
		out.Op = uint8(e.Op.V)
		out.OpSpan = encodeSpan(e.Op.Span)
		out.Items = []wireExpr{encodeExpr(e.Expr)}
	case ast.Binary:
		out.Kind = exprBinary
		out.Op = uint8(e.Op.V)
		out.OpSpan = encodeSpan(e.Op.Span)
		out.Items = []wireExpr{encodeExpr(e.LHS), encodeExpr(e.RHS)}
	case ast.Array:
		out.Kind = exprArray
		out.Items = make([]wireExpr, 0, len(e))
		for _, item := range e {
			out.Items = append(out.Items, encodeExpr(item))
		}
	case ast.Dict:
		out.Kind = exprDict
		out.Pairs = make([]wireArg, 0, len(e))
		for _, named := range e {
			out.Pairs = append(out.Pairs, wireArg{
				Name:     string(named.Name.V),
				NameSpan: encodeSpan(named.Name.Span),
				Value:    encodeExpr(named.Expr),
			})
		}
	case ast.Content:
		out.Kind = exprContent
		out.Nodes = encodeTree(ast.Tree(e))
	}
	return out
}

func encodeArgs(args ast.Args) []wireArg {
	out := make([]wireArg, 0, len(args))
	for _, arg := range args {
		out = append(out, wireArg{
			Name:     string(arg.Name.V),
			NameSpan: encodeSpan(arg.Name.Span),
			Value:    encodeExpr(arg.Expr),
		})
	}
	return out
}

func encodeSpan(span source.Span) wireSpan {
	return wireSpan{Start: span.Start, End: span.End}
}

func decodeTree(nodes []wireNode) (ast.Tree, error) {
	tree := make(ast.Tree, 0, len(nodes))
	for _, node := range nodes {
		decoded, err := decodeNode(node)
		if err != nil {
			return nil, err
		}
		tree = append(tree, decoded)
	}
	return tree, nil
}

func decodeNode(node wireNode) (source.Spanned[ast.Node], error) {
	span := decodeSpan(node.Span)
	switch node.Kind {
	case nodeText:
		return source.At[ast.Node](ast.Text(node.Text), span), nil
	case nodeSpace:
		return source.At[ast.Node](ast.Space{}, span), nil
	case nodeLinebreak:
		return source.At[ast.Node](ast.Linebreak{}, span), nil
	case nodeParbreak:
		return source.At[ast.Node](ast.Parbreak{}, span), nil
	case nodeStrong:
		return source.At[ast.Node](ast.Strong{}, span), nil
	case nodeEmph:
		return source.At[ast.Node](ast.Emph{}, span), nil
	case nodeExpr:
		if node.Expr == nil {
			return source.Spanned[ast.Node]{}, fmt.Errorf("treeio: expression node without payload")
		}
		expr, err := decodeExpr(*node.Expr)
		if err != nil {
			return source.Spanned[ast.Node]{}, err
		}
		return source.Map(expr, func(e ast.Expr) ast.Node {
			return ast.ExprNode{Expr: e}
		}), nil
	}
	return source.Spanned[ast.Node]{}, fmt.Errorf("treeio: unknown node kind %d", node.Kind)
}

func decodeExpr(expr wireExpr) (source.Spanned[ast.Expr], error) {
	span := decodeSpan(expr.Span)
	wrap := func(e ast.Expr) source.Spanned[ast.Expr] {
		return source.At(e, span)
	}
	fail := func(err error) (source.Spanned[ast.Expr], error) {
		return source.Spanned[ast.Expr]{}, err
	}

	switch expr.Kind {
	case exprNone:
		return wrap(ast.None{}), nil
	case exprIdent:
		if !ast.IsIdent(expr.Text) {
			return fail(fmt.Errorf("treeio: invalid identifier %q", expr.Text))
		}
		return wrap(ast.Ident(expr.Text)), nil
	case exprBool:
		return wrap(ast.Bool(expr.Bool)), nil
	case exprInt:
		return wrap(ast.Int(expr.Int)), nil
	case exprFloat:
		return wrap(ast.Float(expr.Float)), nil
	case exprLength:
		unit, ok := geom.ParseUnit(expr.Unit)
		if !ok {
			return fail(fmt.Errorf("treeio: unknown length unit %q", expr.Unit))
		}
		return wrap(ast.Length{Val: expr.Float, Unit: unit}), nil
	case exprPercent:
		return wrap(ast.Percent(expr.Float)), nil
	case exprColor:
		return wrap(ast.Color(rgb.Color{
			R: expr.Color[0],
			G: expr.Color[1],
			B: expr.Color[2],
			A: expr.Color[3],
		})), nil
	case exprStr:
		return wrap(ast.Str(expr.Text)), nil
	case exprCall:
		if !ast.IsIdent(expr.Name) {
			return fail(fmt.Errorf("treeio: invalid call name %q", expr.Name))
		}
		args, err := decodeArgs(expr.Args)
		if err != nil {
			return fail(err)
		}
		return wrap(ast.Call{
			Name: source.At(ast.Ident(expr.Name), decodeSpan(expr.NameSpan)),
			Args: source.At(args, decodeSpan(expr.ArgsSpan)),
		}), nil
	case exprUnary:
		if expr.Op != uint8(ast.UnNeg) {
			return fail(fmt.Errorf("treeio: unknown unary operator %d", expr.Op))
		}
		if len(expr.Items) != 1 {
			return fail(fmt.Errorf("treeio: unary operation wants 1 operand, got %d", len(expr.Items)))
		}
		operand, err := decodeExpr(expr.Items[0])
		if err != nil {
			return fail(err)
		}
		return wrap(ast.Unary{
			Op:   source.At(ast.UnNeg, decodeSpan(expr.OpSpan)),
			Expr: operand,
		}), nil
	case exprBinary:
		if expr.Op > uint8(ast.BinDiv) {
			return fail(fmt.Errorf("treeio: unknown binary operator %d", expr.Op))
		}
		if len(expr.Items) != 2 {
			return fail(fmt.Errorf("treeio: binary operation wants 2 operands, got %d", len(expr.Items)))
		}
		lhs, err := decodeExpr(expr.Items[0])
		if err != nil {
			return fail(err)
		}
		rhs, err := decodeExpr(expr.Items[1])
		if err != nil {
			return fail(err)
		}
		return wrap(ast.Binary{
			LHS: lhs,
			Op:  source.At(ast.BinOp(expr.Op), decodeSpan(expr.OpSpan)),
			RHS: rhs,
		}), nil
	case exprArray:
		items := make(ast.Array, 0, len(expr.Items))
		for _, item := range expr.Items {
			decoded, err := decodeExpr(item)
			if err != nil {
				return fail(err)
			}
			items = append(items, decoded)
		}
		return wrap(items), nil
	case exprDict:
		pairs := make(ast.Dict, 0, len(expr.Pairs))
		for _, pair := range expr.Pairs {
			if !ast.IsIdent(pair.Name) {
				return fail(fmt.Errorf("treeio: invalid dictionary key %q", pair.Name))
			}
			value, err := decodeExpr(pair.Value)
			if err != nil {
				return fail(err)
			}
			pairs = append(pairs, ast.Named{
				Name: source.At(ast.Ident(pair.Name), decodeSpan(pair.NameSpan)),
				Expr: value,
			})
		}
		return wrap(pairs), nil
	case exprContent:
		tree, err := decodeTree(expr.Nodes)
		if err != nil {
			return fail(err)
		}
		return wrap(ast.Content(tree)), nil
	}
	return fail(fmt.Errorf("treeio: unknown expression kind %d", expr.Kind))
}

func decodeArgs(args []wireArg) (ast.Args, error) {
	out := make(ast.Args, 0, len(args))
	for _, arg := range args {
		value, err := decodeExpr(arg.Value)
		if err != nil {
			return nil, err
		}
		decoded := ast.Arg{Expr: value}
		if arg.Name != "" {
			if !ast.IsIdent(arg.Name) {
				return nil, fmt.Errorf("treeio: invalid argument name %q", arg.Name)
			}
			decoded.Name = source.At(ast.Ident(arg.Name), decodeSpan(arg.NameSpan))
		}
		out = append(out, decoded)
	}
	return out, nil
}

func decodeSpan(span wireSpan) source.Span {
	return source.Span{Start: span.Start, End: span.End}
}
