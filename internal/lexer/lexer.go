// Package lexer turns RegXL source text into a flat token stream. Whitespace,
// including newlines, is insignificant outside quoted literals and is
// discarded between tokens; nesting is the parser's concern.
package lexer

import (
	"regxl/internal/source"
	"regxl/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   []token.Token // lookahead queue; the parser needs two tokens
	count  uint64        // tokens produced, observable for cache tests
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if len(lx.look) > 0 {
		tok := lx.look[0]
		lx.look = lx.look[1:]
		return tok
	}
	return lx.scan()
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if len(lx.look) == 0 {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[0]
}

// Peek2 returns the token after the next one without consuming anything.
func (lx *Lexer) Peek2() token.Token {
	for len(lx.look) < 2 {
		lx.look = append(lx.look, lx.scan())
	}
	return lx.look[1]
}

// scan produces one significant token from the cursor.
func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	lx.count++

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()

	case isDec(ch):
		return lx.scanNumber()

	case ch == '\'':
		return lx.scanQuoted()

	case ch == '#' || ch == '@':
		return lx.scanSigil()

	default:
		return lx.scanPunct()
	}
}

// TokenCount returns the number of significant tokens produced so far.
func (lx *Lexer) TokenCount() uint64 {
	return lx.count
}

// EmptySpan returns a zero-length span at the current position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// skipTrivia discards spaces, tabs, and newlines between tokens.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		default:
			return
		}
	}
}
