package lexer

import (
	"regxl/internal/diag"
	"regxl/internal/token"
)

// scanNumber scans a bare non-negative integer. Quantifier shorthand like
// '4x' lexes as Number followed by Ident "x"; the parser reassembles it.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// guard against pathological bounds that would overflow downstream
	if len(text) > 9 {
		lx.errLex(diag.LexBadNumber, sp, "number literal too large")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Number, Span: sp, Text: text}
}
