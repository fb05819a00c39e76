package lexer

import (
	"strconv"
	"strings"

	"regxl/internal/diag"
	"regxl/internal/token"
)

// scanQuoted scans a single-quoted literal and decodes its escapes.
// Newlines are plain content inside quotes; only EOF terminates early.
// Supported escapes: \' \\ \n \t \r \0 \xNN \u{HEX}.
func (lx *Lexer) scanQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote

	var sb strings.Builder
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\'' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.Quoted, Span: sp, Text: sb.String()}
		}
		if b == '\\' {
			lx.cursor.Bump()
			r, ok := lx.scanEscape(start)
			if !ok {
				return lx.recoverQuoted(start)
			}
			sb.WriteRune(r)
			continue
		}
		sb.WriteByte(lx.cursor.Bump())
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedQuoted, sp, "unterminated quoted literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: sb.String()}
}

// scanEscape decodes one escape sequence after the backslash was consumed.
func (lx *Lexer) scanEscape(start Mark) (rune, bool) {
	if lx.cursor.EOF() {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedQuoted, sp, "unterminated quoted literal")
		return 0, false
	}

	switch b := lx.cursor.Bump(); b {
	case '\'':
		return '\'', true
	case '\\':
		return '\\', true
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '0':
		return 0, true
	case 'x':
		b0, b1, ok := lx.cursor.Peek2()
		if !ok || !isHex(b0) || !isHex(b1) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadEscape, sp, "\\x escape needs two hex digits")
			return 0, false
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		v, _ := strconv.ParseUint(string([]byte{b0, b1}), 16, 8)
		return rune(v), true
	case 'u':
		if !lx.cursor.Eat('{') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadEscape, sp, "\\u escape needs braced hex digits")
			return 0, false
		}
		var digits strings.Builder
		for !lx.cursor.EOF() && isHex(lx.cursor.Peek()) {
			digits.WriteByte(lx.cursor.Bump())
		}
		if digits.Len() == 0 || !lx.cursor.Eat('}') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadEscape, sp, "\\u escape needs braced hex digits")
			return 0, false
		}
		v, err := strconv.ParseUint(digits.String(), 16, 32)
		if err != nil || v > 0x10FFFF {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadEscape, sp, "\\u escape out of range")
			return 0, false
		}
		return rune(v), true
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexBadEscape, sp, "unknown escape '\\"+string(b)+"'")
		return 0, false
	}
}

// recoverQuoted skips to the closing quote (or EOF) after a bad escape so a
// single malformed literal yields a single Invalid token.
func (lx *Lexer) recoverQuoted(start Mark) token.Token {
	for !lx.cursor.EOF() {
		if lx.cursor.Bump() == '\'' {
			break
		}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}
