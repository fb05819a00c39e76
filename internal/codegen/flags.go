// Package codegen lowers a resolved syntax tree into regex pattern text plus
// a flag set. The input tree must be fully resolved: a surviving CustomCall is
// a generation error, not a silent passthrough.
package codegen

import (
	"strings"

	"regxl/internal/ast"
)

// Flags is the compiled pattern's flag set.
type Flags uint8

const (
	// FlagIndices requests match index reporting ('d').
	FlagIndices Flags = 1 << iota
	// FlagGlobal requests all-match semantics ('g').
	FlagGlobal
	// FlagIgnoreCase requests case-insensitive matching ('i').
	FlagIgnoreCase
	// FlagUnicode requests codepoint-level matching ('u').
	FlagUnicode
)

// FlagsFor maps source modifiers to the flag set. Patterns default to
// global unicode matching; binary mode drops the unicode flag and switches
// every class lowering to its byte-level form.
func FlagsFor(mods ast.Modifiers) Flags {
	f := FlagGlobal | FlagUnicode
	if mods.Binary {
		f &^= FlagUnicode
	}
	if mods.IgnoreCase {
		f |= FlagIgnoreCase
	}
	if mods.Indices {
		f |= FlagIndices
	}
	return f
}

// Has reports whether every flag in x is set.
func (f Flags) Has(x Flags) bool {
	return f&x == x
}

// String renders the flags in canonical "dgiu" order.
func (f Flags) String() string {
	var sb strings.Builder
	if f.Has(FlagIndices) {
		sb.WriteByte('d')
	}
	if f.Has(FlagGlobal) {
		sb.WriteByte('g')
	}
	if f.Has(FlagIgnoreCase) {
		sb.WriteByte('i')
	}
	if f.Has(FlagUnicode) {
		sb.WriteByte('u')
	}
	return sb.String()
}
