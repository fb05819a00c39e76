package parser

import (
	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/token"
)

// parseOneOf parses 'oneOf(...)': space-separated members forming the
// membership set of a single character class. Members are single-character
// literals, ranges, and class-shaped builtin names.
func (p *Parser) parseOneOf() (ast.Node, bool) {
	kw := p.advance()
	if _, ok := p.expect(token.LParen, diag.SynExpectGroupBody, "expected '(' after oneOf"); !ok {
		return nil, false
	}

	members := make([]ast.Node, 0, 4)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		member, ok := p.parseClassMember()
		if !ok {
			return nil, false
		}
		members = append(members, member)
	}

	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close oneOf")
	if !ok {
		return nil, false
	}
	if len(members) == 0 {
		p.err(diag.SynEmptyClass, kw.Span.Cover(close.Span), "oneOf requires at least one member")
		return nil, false
	}

	return &ast.ClassSet{Sp: kw.Span.Cover(close.Span), Members: members}, true
}

func (p *Parser) parseClassMember() (ast.Node, bool) {
	switch p.lx.Peek().Kind {
	case token.Quoted:
		lo := p.advance()
		if p.at(token.KwTo) {
			p.advance()
			hi, ok := p.expect(token.Quoted, diag.SynExpectQuoted, "expected quoted literal after 'to'")
			if !ok {
				return nil, false
			}
			return p.makeRange(lo, hi)
		}
		if len([]rune(lo.Text)) != 1 {
			p.err(diag.SynMultiCharInClass, lo.Span, "class member must be a single character")
			return nil, false
		}
		return &ast.Text{Sp: lo.Span, Value: lo.Text}, true

	case token.Ident:
		tok := p.advance()
		b, ok := lookupBuiltin(tok.Text)
		if !ok || b.kind != builtinClass || !b.member {
			p.err(diag.SynBadClassMember, tok.Span, "'"+tok.Text+"' cannot appear inside oneOf")
			return nil, false
		}
		return &ast.Class{Sp: tok.Span, Name: b.class}, true

	default:
		p.err(diag.SynBadClassMember, p.lx.Peek().Span,
			"expected literal, range, or class name, got '"+p.lx.Peek().Text+"'")
		return nil, false
	}
}
