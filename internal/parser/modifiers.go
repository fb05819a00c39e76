package parser

import (
	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/token"
)

// unsupportedModifiers are documented but deliberately rejected: silently
// ignoring them would change match semantics behind the caller's back.
var unsupportedModifiers = map[string]bool{
	"sticky":     true,
	"global":     true,
	"possessive": true,
}

// parseModifiers parses the trailing clause: 'with name' or 'with (name ...)'.
func (p *Parser) parseModifiers() (ast.Modifiers, bool) {
	p.advance() // 'with'

	var mods ast.Modifiers
	if p.at(token.Ident) {
		return mods, p.applyModifier(p.advance(), &mods)
	}

	if _, ok := p.expect(token.LParen, diag.SynExpectModifierList, "expected modifier name or '('"); !ok {
		return mods, false
	}
	for !p.at(token.RParen) {
		tok, ok := p.expect(token.Ident, diag.SynExpectModifierList, "expected modifier name")
		if !ok {
			return mods, false
		}
		if !p.applyModifier(tok, &mods) {
			return mods, false
		}
	}
	p.advance() // ')'
	return mods, true
}

func (p *Parser) applyModifier(tok token.Token, mods *ast.Modifiers) bool {
	switch tok.Text {
	case "ignoreCase":
		mods.IgnoreCase = true
	case "binary":
		mods.Binary = true
	case "indices":
		mods.Indices = true
	default:
		if unsupportedModifiers[tok.Text] {
			p.err(diag.SynUnsupportedModifier, tok.Span, "unsupported modifier '"+tok.Text+"'")
		} else {
			p.err(diag.SynUnknownModifier, tok.Span, "unknown modifier '"+tok.Text+"'")
		}
		return false
	}
	return true
}
