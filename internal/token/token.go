package token

import (
	"regxl/internal/source"
)

// Token represents a single source token with its location.
// For Quoted, HashName, AtName and AtNumber the Text field holds the decoded
// payload (literal value or sigil name), not the raw source slice.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsKeyword reports whether the token is a structural keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwNot, KwTo, KwOr, KwWith, KwGroup, KwOneOf, KwOptional, KwMaybe, KwMany, KwAsMany, KwFewest:
		return true
	default:
		return false
	}
}

// IsSigil reports whether the token is a capture or backreference sigil.
func (t Token) IsSigil() bool {
	switch t.Kind {
	case HashName, AtName, AtNumber:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation or an operator.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case LParen, RParen, Comma, Question, QuestionQuestion, Plus, Star, Minus:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
