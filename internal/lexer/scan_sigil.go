package lexer

import (
	"regxl/internal/diag"
	"regxl/internal/token"
)

// scanSigil scans '#name' (named capture), '@name' (named backreference),
// and '@n' (numbered backreference). The sigil character is not part of the
// token Text.
func (lx *Lexer) scanSigil() token.Token {
	start := lx.cursor.Mark()
	sigil := lx.cursor.Bump()

	if sigil == '@' && !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
		digits := lx.cursor.Mark()
		for !lx.cursor.EOF() && isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		nsp := lx.cursor.SpanFrom(digits)
		return token.Token{
			Kind: token.AtNumber,
			Span: lx.cursor.SpanFrom(start),
			Text: string(lx.file.Content[nsp.Start:nsp.End]),
		}
	}

	if lx.cursor.EOF() || !isIdentStartByte(lx.cursor.Peek()) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadSigil, sp, "'"+string(sigil)+"' must be followed by a name")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(sigil)}
	}

	name := lx.cursor.Mark()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	nsp := lx.cursor.SpanFrom(name)

	kind := token.HashName
	if sigil == '@' {
		kind = token.AtName
	}
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: string(lx.file.Content[nsp.Start:nsp.End]),
	}
}
