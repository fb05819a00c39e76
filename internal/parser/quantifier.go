package parser

import (
	"strconv"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/token"
)

// parseQuantified parses prefix quantifiers, an atom, and postfix quantifiers.
//
// Prefix forms: 'optional', 'optional many', 'optional asMany', 'many',
// 'asMany', 'maybe', and the multiplier 'n*(...)'.
// Postfix forms: '?', '??', '*', '+', 'n x', 'n+', 'n-m'. 'fewest' is only
// valid immediately before a bound form and flips greediness only.
func (p *Parser) parseQuantified() (ast.Node, bool) {
	switch p.lx.Peek().Kind {
	case token.KwOptional:
		kw := p.advance()
		min, max := 0, 1
		if p.at(token.KwMany) || p.at(token.KwAsMany) {
			p.advance()
			max = ast.Unbounded
		}
		body, ok := p.parseQuantified()
		if !ok {
			return nil, false
		}
		if !p.quantifiable(body) {
			return nil, false
		}
		return &ast.Quant{Sp: kw.Span.Cover(body.Span()), Body: body, Min: min, Max: max, Greedy: true}, true

	case token.KwMany, token.KwAsMany:
		kw := p.advance()
		body, ok := p.parseQuantified()
		if !ok {
			return nil, false
		}
		if !p.quantifiable(body) {
			return nil, false
		}
		return &ast.Quant{Sp: kw.Span.Cover(body.Span()), Body: body, Min: 1, Max: ast.Unbounded, Greedy: true}, true

	case token.KwMaybe:
		kw := p.advance()
		body, ok := p.parseQuantified()
		if !ok {
			return nil, false
		}
		if !p.quantifiable(body) {
			return nil, false
		}
		return &ast.Quant{Sp: kw.Span.Cover(body.Span()), Body: body, Min: 0, Max: 1, Greedy: false}, true

	case token.Number:
		// prefix multiplier: n*(...); a bare bound here has nothing to quantify
		if !p.atPrefixMultiplier() {
			p.err(diag.SynDanglingQuantifier, p.lx.Peek().Span, "quantifier without a preceding atom")
			return nil, false
		}
		num := p.advance()
		n, ok := p.parseCount(num)
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Star, diag.SynExpectCountMarker, "expected '*' after multiplier count"); !ok {
			return nil, false
		}
		body, okBody := p.parseQuantified()
		if !okBody {
			return nil, false
		}
		if !p.quantifiable(body) {
			return nil, false
		}
		return &ast.Quant{Sp: num.Span.Cover(body.Span()), Body: body, Min: n, Max: n, Greedy: true}, true
	}

	atom, ok := p.parseAtom()
	if !ok {
		return nil, false
	}
	return p.parsePostfix(atom)
}

// parsePostfix applies any number of postfix quantifiers to atom.
func (p *Parser) parsePostfix(atom ast.Node) (ast.Node, bool) {
	for {
		greedy := true
		if p.at(token.KwFewest) {
			few := p.advance()
			// only the bound forms take 'fewest'; '?' and '*'/'+' have
			// their own non-greedy spellings ('??', 'fewest 0+', 'fewest 1+')
			if !p.at(token.Number) || p.atPrefixMultiplier() {
				p.err(diag.SynFewestWithoutBound, few.Span, "'fewest' must precede a bound like '3+' or '2-5'")
				return nil, false
			}
			greedy = false
		}

		switch p.lx.Peek().Kind {
		case token.Question:
			tok := p.advance()
			if !p.quantifiable(atom) {
				return nil, false
			}
			atom = &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: 0, Max: 1, Greedy: greedy}

		case token.QuestionQuestion:
			// '??' is the non-greedy 'maybe' form
			tok := p.advance()
			if !p.quantifiable(atom) {
				return nil, false
			}
			atom = &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: 0, Max: 1, Greedy: false}

		case token.Star:
			tok := p.advance()
			if !p.quantifiable(atom) {
				return nil, false
			}
			atom = &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: 0, Max: ast.Unbounded, Greedy: greedy}

		case token.Plus:
			tok := p.advance()
			if !p.quantifiable(atom) {
				return nil, false
			}
			atom = &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: 1, Max: ast.Unbounded, Greedy: greedy}

		case token.Number:
			// 'n*' starts a prefix multiplier for the next sequence part,
			// not a bound on this atom
			if p.atPrefixMultiplier() {
				return atom, true
			}
			var ok bool
			atom, ok = p.parseBound(atom, greedy)
			if !ok {
				return nil, false
			}

		default:
			return atom, true
		}
	}
}

// atPrefixMultiplier reports whether the next two tokens are 'n*', the start
// of a prefix multiplier form.
func (p *Parser) atPrefixMultiplier() bool {
	return p.at(token.Number) && p.lx.Peek2().Kind == token.Star
}

// parseBound parses the bound forms 'n x', 'n+', 'n-m' after the number token
// was sighted but not consumed.
func (p *Parser) parseBound(atom ast.Node, greedy bool) (ast.Node, bool) {
	num := p.advance()
	n, ok := p.parseCount(num)
	if !ok {
		return nil, false
	}
	if !p.quantifiable(atom) {
		return nil, false
	}

	switch {
	case p.at(token.Ident) && p.lx.Peek().Text == "x":
		tok := p.advance()
		return &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: n, Max: n, Greedy: greedy}, true

	case p.at(token.Plus):
		tok := p.advance()
		return &ast.Quant{Sp: atom.Span().Cover(tok.Span), Body: atom, Min: n, Max: ast.Unbounded, Greedy: greedy}, true

	case p.at(token.Minus):
		p.advance()
		mTok, ok := p.expect(token.Number, diag.SynBadBound, "expected upper bound after '-'")
		if !ok {
			return nil, false
		}
		m, ok := p.parseCount(mTok)
		if !ok {
			return nil, false
		}
		if n > m {
			p.err(diag.SynBadBound, num.Span.Cover(mTok.Span),
				"quantifier bounds out of order: "+num.Text+" > "+mTok.Text)
			return nil, false
		}
		return &ast.Quant{Sp: atom.Span().Cover(mTok.Span), Body: atom, Min: n, Max: m, Greedy: greedy}, true

	default:
		p.err(diag.SynExpectCountMarker, p.lx.Peek().Span,
			"expected 'x', '+' or '-m' after quantifier count")
		return nil, false
	}
}

func (p *Parser) parseCount(tok token.Token) (int, bool) {
	n, err := strconv.Atoi(tok.Text)
	if err != nil || n < 0 {
		p.err(diag.SynBadBound, tok.Span, "invalid quantifier count '"+tok.Text+"'")
		return 0, false
	}
	return n, true
}

// quantifiable rejects quantifiers over zero-width assertions.
func (p *Parser) quantifiable(n ast.Node) bool {
	if _, isAssert := n.(*ast.Assertion); isAssert {
		p.err(diag.SynQuantifierOnAssertion, n.Span(), "assertions cannot be quantified")
		return false
	}
	return true
}
