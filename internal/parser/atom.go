package parser

import (
	"strconv"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/token"
)

func (p *Parser) parseAtom() (ast.Node, bool) {
	switch p.lx.Peek().Kind {
	case token.Quoted:
		return p.parseQuotedOrRange()

	case token.KwNot:
		return p.parseNegated()

	case token.Ident:
		return p.parseIdentAtom()

	case token.KwOneOf:
		return p.parseOneOf()

	case token.KwGroup:
		kw := p.advance()
		body, close, ok := p.parseParenBody()
		if !ok {
			return nil, false
		}
		return &ast.Group{Sp: kw.Span.Cover(close.Span), Body: body, Kind: ast.GroupCapturing}, true

	case token.HashName:
		name := p.advance()
		body, close, ok := p.parseParenBody()
		if !ok {
			return nil, false
		}
		return &ast.Group{Sp: name.Span.Cover(close.Span), Body: body, Kind: ast.GroupNamed, Name: name.Text}, true

	case token.LParen:
		open := p.advance()
		body, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
		if !ok {
			return nil, false
		}
		return &ast.Group{Sp: open.Span.Cover(close.Span), Body: body, Kind: ast.GroupNonCapturing}, true

	case token.AtName:
		tok := p.advance()
		return &ast.Backref{Sp: tok.Span, Name: tok.Text}, true

	case token.AtNumber:
		tok := p.advance()
		idx, err := strconv.Atoi(tok.Text)
		if err != nil || idx < 1 {
			p.err(diag.SynUnexpectedToken, tok.Span, "invalid backreference index '@"+tok.Text+"'")
			return nil, false
		}
		return &ast.Backref{Sp: tok.Span, Index: idx}, true

	default:
		p.err(diag.SynExpectExpression, p.lx.Peek().Span,
			"expected expression, got '"+p.lx.Peek().Text+"'")
		return nil, false
	}
}

// parseParenBody parses '(' expr ')' for group(...) and #name(...).
func (p *Parser) parseParenBody() (ast.Node, token.Token, bool) {
	if _, ok := p.expect(token.LParen, diag.SynExpectGroupBody, "expected '('"); !ok {
		return nil, token.Token{}, false
	}
	body, ok := p.parseExpr()
	if !ok {
		return nil, token.Token{}, false
	}
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'")
	if !ok {
		return nil, token.Token{}, false
	}
	return body, close, true
}

// parseQuotedOrRange parses a quoted literal and, when followed by 'to',
// a character range.
func (p *Parser) parseQuotedOrRange() (ast.Node, bool) {
	lo := p.advance()
	if !p.at(token.KwTo) {
		return &ast.Text{Sp: lo.Span, Value: lo.Text}, true
	}
	p.advance()
	hi, ok := p.expect(token.Quoted, diag.SynExpectQuoted, "expected quoted literal after 'to'")
	if !ok {
		return nil, false
	}
	return p.makeRange(lo, hi)
}

func (p *Parser) makeRange(lo, hi token.Token) (ast.Node, bool) {
	loRunes := []rune(lo.Text)
	hiRunes := []rune(hi.Text)
	if len(loRunes) != 1 || len(hiRunes) != 1 {
		sp := lo.Span.Cover(hi.Span)
		p.err(diag.SynMultiCharInRange, sp, "range bounds must be single characters")
		return nil, false
	}
	if loRunes[0] > hiRunes[0] {
		sp := lo.Span.Cover(hi.Span)
		p.err(diag.SynBadRange, sp,
			"range bounds out of order: '"+lo.Text+"' > '"+hi.Text+"'")
		return nil, false
	}
	return &ast.Range{Sp: lo.Span.Cover(hi.Span), Lo: loRunes[0], Hi: hiRunes[0]}, true
}

// parseNegated parses 'not' and applies it to the following atom. The
// builtin table decides which constructs support negation.
func (p *Parser) parseNegated() (ast.Node, bool) {
	not := p.advance()
	atom, ok := p.parseAtom()
	if !ok {
		return nil, false
	}

	switch n := atom.(type) {
	case *ast.Class:
		b, _ := lookupBuiltin(n.Name.String())
		if !b.negatable {
			p.err(diag.SynCannotNegate, not.Span.Cover(n.Sp), "'"+n.Name.String()+"' does not support negation")
			return nil, false
		}
		n.Negated = !n.Negated
		n.Sp = not.Span.Cover(n.Sp)
		return n, true

	case *ast.ClassSet:
		n.Negated = !n.Negated
		n.Sp = not.Span.Cover(n.Sp)
		return n, true

	case *ast.Range:
		// 'not' negates the enclosing class, not the bounds
		n.Negated = !n.Negated
		n.Sp = not.Span.Cover(n.Sp)
		return n, true

	case *ast.Assertion:
		n.Negated = !n.Negated
		n.Sp = not.Span.Cover(n.Sp)
		return n, true

	case *ast.Text:
		if len([]rune(n.Value)) != 1 {
			p.err(diag.SynCannotNegate, not.Span.Cover(n.Sp), "only single-character literals can be negated")
			return nil, false
		}
		return &ast.ClassSet{
			Sp:      not.Span.Cover(n.Sp),
			Members: []ast.Node{n},
			Negated: true,
		}, true

	default:
		p.err(diag.SynCannotNegate, not.Span.Cover(atom.Span()), "construct does not support negation")
		return nil, false
	}
}

// parseIdentAtom classifies an identifier: builtin class, builtin assertion,
// or a custom token call.
func (p *Parser) parseIdentAtom() (ast.Node, bool) {
	tok := p.advance()

	b, ok := lookupBuiltin(tok.Text)
	if !ok {
		return p.parseCustomCall(tok)
	}

	if b.kind == builtinClass {
		return &ast.Class{Sp: tok.Span, Name: b.class}, true
	}

	if !b.takesBody {
		return &ast.Assertion{Sp: tok.Span, Op: b.assert}, true
	}

	body, close, okBody := p.parseParenBody()
	if !okBody {
		return nil, false
	}
	return &ast.Assertion{Sp: tok.Span.Cover(close.Span), Op: b.assert, Body: body}, true
}

// parseCustomCall parses a custom token invocation: a bare name, optionally
// followed by a parenthesized, comma-separated operand list. The trailing
// operand doubles as the call content.
func (p *Parser) parseCustomCall(name token.Token) (ast.Node, bool) {
	call := &ast.CustomCall{Sp: name.Span, Name: name.Text}
	if !p.at(token.LParen) {
		return call, true
	}

	p.advance()
	for !p.at(token.RParen) {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		call.Args = append(call.Args, arg)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after custom token arguments")
	if !ok {
		return nil, false
	}
	call.Sp = name.Span.Cover(close.Span)
	if len(call.Args) > 0 {
		call.Content = call.Args[len(call.Args)-1]
	}
	return call, true
}
