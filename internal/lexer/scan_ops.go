package lexer

import (
	"regxl/internal/diag"
	"regxl/internal/token"
)

// scanPunct scans punctuation and operators, greedily matching '??'.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()

	mk := func(kind token.Kind) token.Token {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	switch b := lx.cursor.Bump(); b {
	case '(':
		return mk(token.LParen)
	case ')':
		return mk(token.RParen)
	case ',':
		return mk(token.Comma)
	case '?':
		if lx.cursor.Eat('?') {
			return mk(token.QuestionQuestion)
		}
		return mk(token.Question)
	case '+':
		return mk(token.Plus)
	case '*':
		return mk(token.Star)
	case '-':
		return mk(token.Minus)
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character '"+string(b)+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: string(b)}
	}
}
