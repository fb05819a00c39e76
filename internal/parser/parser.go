// Package parser builds the syntax tree from the token stream by recursive
// descent: expr → seq ('or' seq)*, seq → quantified+, quantified →
// prefix-quantifier* atom postfix-quantifier*. The first structural error
// aborts the parse; there is no recovery.
package parser

import (
	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/source"
	"regxl/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Result carries the parse product. Root is nil when OK is false.
type Result struct {
	Root ast.Node
	Mods ast.Modifiers
	OK   bool
}

// Parser holds state for one expression.
type Parser struct {
	lx   *lexer.Lexer
	opts Options
}

// Parse consumes the whole token stream: one expression, an optional trailing
// 'with' clause, then EOF.
func Parse(lx *lexer.Lexer, opts Options) Result {
	p := Parser{lx: lx, opts: opts}

	root, ok := p.parseExpr()
	if !ok {
		return Result{}
	}

	var mods ast.Modifiers
	if p.at(token.KwWith) {
		mods, ok = p.parseModifiers()
		if !ok {
			return Result{}
		}
	}

	if !p.at(token.EOF) {
		p.err(diag.SynTrailingInput, p.lx.Peek().Span, "unexpected input after expression")
		return Result{}
	}
	return Result{Root: root, Mods: mods, OK: true}
}

// ParseFragment parses a spliced extension snippet: one expression up to EOF,
// with no modifier clause (modifiers belong to the top-level source only).
func ParseFragment(lx *lexer.Lexer, opts Options) (ast.Node, bool) {
	p := Parser{lx: lx, opts: opts}

	root, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.EOF) {
		p.err(diag.SynTrailingInput, p.lx.Peek().Span, "unexpected input after expansion fragment")
		return nil, false
	}
	return root, true
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.err(code, p.lx.Peek().Span, msg+", got '"+p.lx.Peek().Text+"'")
	return token.Token{}, false
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	if p.opts.Reporter != nil {
		p.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// parseExpr parses the alternation level; 'or' chains associate to the left.
func (p *Parser) parseExpr() (ast.Node, bool) {
	left, ok := p.parseSeq()
	if !ok {
		return nil, false
	}
	for p.at(token.KwOr) {
		orTok := p.advance()
		right, ok := p.parseSeq()
		if !ok {
			p.err(diag.SynExpectExpression, orTok.Span, "missing operand after 'or'")
			return nil, false
		}
		left = &ast.Alt{
			Sp:    left.Span().Cover(right.Span()),
			Left:  left,
			Right: right,
		}
	}
	return left, true
}

// parseSeq parses one or more quantified atoms.
func (p *Parser) parseSeq() (ast.Node, bool) {
	parts := make([]ast.Node, 0, 4)
	for p.atAtomStart() {
		part, ok := p.parseQuantified()
		if !ok {
			return nil, false
		}
		parts = append(parts, part)
	}

	switch len(parts) {
	case 0:
		p.err(diag.SynExpectExpression, p.lx.Peek().Span, "expected expression")
		return nil, false
	case 1:
		return parts[0], true
	default:
		sp := parts[0].Span()
		for _, part := range parts[1:] {
			sp = sp.Cover(part.Span())
		}
		return &ast.Seq{Sp: sp, Parts: parts}, true
	}
}

// atAtomStart reports whether the current token can begin a quantified atom.
func (p *Parser) atAtomStart() bool {
	switch p.lx.Peek().Kind {
	case token.Quoted, token.Ident, token.KwNot, token.KwOneOf, token.KwGroup,
		token.HashName, token.AtName, token.AtNumber, token.LParen,
		token.KwOptional, token.KwMaybe, token.KwMany, token.KwAsMany,
		token.Number:
		return true
	default:
		return false
	}
}
