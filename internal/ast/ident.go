package ast

import (
	"unicode"
)

// IsIdent reports whether the string is a valid identifier: a letter or
// underscore followed by letters, digits, underscores or hyphens.
//
// The parser guarantees this for every Ident it produces; tools that
// synthesize trees should check before constructing names.
func IsIdent(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return s != ""
}
