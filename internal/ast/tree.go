package ast

import (
	"marque/internal/source"
)

// Tree is a sequence of markup nodes: the body of a document or of a
// content block.
type Tree []source.Spanned[Node]

// Node is any markup node. Closed like Expr.
type Node interface {
	node()
}

// Text is a run of plain text.
type Text string

// Space is inter-word whitespace.
type Space struct{}

// Linebreak is a forced line break: `\`.
type Linebreak struct{}

// Parbreak is a paragraph break.
type Parbreak struct{}

// Strong toggles strong text: `*`.
type Strong struct{}

// Emph toggles emphasized text: `_`.
type Emph struct{}

// ExprNode embeds an expression in markup.
type ExprNode struct {
	Expr Expr
}

func (Text) node()      {}
func (Space) node()     {}
func (Linebreak) node() {}
func (Parbreak) node()  {}
func (Strong) node()    {}
func (Emph) node()      {}
func (ExprNode) node()  {}
