package format

import (
	"marque/internal/ast"
	"marque/internal/source"
)

type spannedExpr = source.Spanned[ast.Expr]
