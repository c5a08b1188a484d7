package ast

import (
	"marque/internal/geom"
	"marque/internal/rgb"
	"marque/internal/source"
)

// Expr is any expression. The set of implementations is closed; consumers
// switch over every variant and must be extended when one is added.
type Expr interface {
	expr()
}

// None is the none literal: `none`.
type None struct{}

// Ident is an identifier: `left`.
type Ident string

// Bool is a boolean literal: `true`, `false`.
type Bool bool

// Int is an integer literal: `120`.
type Int int64

// Float is a floating-point literal: `1.2`, `10e-4`.
type Float float64

// Length is a length literal: `12pt`, `3cm`.
type Length struct {
	Val  float64
	Unit geom.Unit
}

// Percent is a percent literal: `50%`.
//
// Stored as 50.0, not 0.5; the scaling is an evaluator concern.
type Percent float64

// Color is a color literal: `#ffccee`.
type Color rgb.Color

// Str is a string literal: `"hello!"`.
type Str string

// Call is an invocation of a function: `[foo ...]`, `foo(...)`.
type Call struct {
	// Name of the function, never empty.
	Name source.Spanned[Ident]
	// Args in call order. For a bracketed invocation with a body the body
	// is not included in the args span for the sake of clearer errors.
	Args source.Spanned[Args]
}

// Args are the arguments to a function: `12, draw: false`.
type Args []Arg

// Arg is a single argument: positional `12` or named `draw: false`.
// A zero Name marks a positional argument.
type Arg struct {
	Name source.Spanned[Ident]
	Expr source.Spanned[Expr]
}

// Pos builds a positional argument.
func Pos(expr source.Spanned[Expr]) Arg {
	return Arg{Expr: expr}
}

// IsNamed reports whether the argument carries a name.
func (a Arg) IsNamed() bool {
	return a.Name.V != ""
}

// Named is a pair of a name and an expression: `pattern: dashed`.
type Named struct {
	Name source.Spanned[Ident]
	Expr source.Spanned[Expr]
}

// Unary is a unary operation: `-x`.
type Unary struct {
	Op   source.Spanned[UnOp]
	Expr source.Spanned[Expr]
}

// UnOp is a unary operator.
type UnOp uint8

const (
	// UnNeg is the negation operator: `-`.
	UnNeg UnOp = iota
)

func (op UnOp) String() string {
	switch op {
	case UnNeg:
		return "-"
	}
	return "-"
}

// Binary is a binary operation: `a + b`, `a / b`.
type Binary struct {
	LHS source.Spanned[Expr]
	Op  source.Spanned[BinOp]
	RHS source.Spanned[Expr]
}

// BinOp is a binary operator.
type BinOp uint8

const (
	// BinAdd is the addition operator: `+`.
	BinAdd BinOp = iota
	// BinSub is the subtraction operator: `-`.
	BinSub
	// BinMul is the multiplication operator: `*`.
	BinMul
	// BinDiv is the division operator: `/`.
	BinDiv
)

func (op BinOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	}
	return "+"
}

// Array is an array expression: `(1, "hi", 12cm)`.
type Array []source.Spanned[Expr]

// Dict is a dictionary expression: `(color: #f79143, pattern: dashed)`.
// Key uniqueness is not enforced at this layer.
type Dict []Named

// Content is a content block in expression position: `{*Hello* there!}`.
type Content Tree

func (None) expr()    {}
func (Ident) expr()   {}
func (Bool) expr()    {}
func (Int) expr()     {}
func (Float) expr()   {}
func (Length) expr()  {}
func (Percent) expr() {}
func (Color) expr()   {}
func (Str) expr()     {}
func (Call) expr()    {}
func (Unary) expr()   {}
func (Binary) expr()  {}
func (Array) expr()   {}
func (Dict) expr()    {}
func (Content) expr() {}
