package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token: builtin class/assertion names and
	// custom token names are both lexed as Ident and told apart by the parser.
	Ident
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwTo represents the 'to' keyword.
	KwTo // to
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwGroup represents the 'group' keyword.
	KwGroup // group
	// KwOneOf represents the 'oneOf' keyword.
	KwOneOf // oneOf
	// KwOptional represents the 'optional' keyword.
	KwOptional // optional
	// KwMaybe represents the 'maybe' keyword.
	KwMaybe // maybe
	// KwMany represents the 'many' keyword.
	KwMany // many
	// KwAsMany represents the 'asMany' keyword.
	KwAsMany // asMany
	// KwFewest represents the 'fewest' keyword.
	KwFewest // fewest

	// Quoted represents a single-quoted literal; Text holds the decoded value.
	Quoted
	// Number represents a bare non-negative integer literal.
	Number
	// HashName represents a named-capture sigil '#name'; Text holds the name.
	HashName
	// AtName represents a named backreference sigil '@name'; Text holds the name.
	AtName
	// AtNumber represents a numeric backreference sigil '@n'; Text holds the digits.
	AtNumber

	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// Comma represents the comma token.
	Comma // ,
	// Question represents the question operator token.
	Question // ?
	// QuestionQuestion represents the double question operator token.
	QuestionQuestion // ??
	// Plus represents the plus operator token.
	Plus // +
	// Star represents the star operator token.
	Star // *
	// Minus represents the minus operator token.
	Minus // -
)

// String returns a stable name for the kind, used in diagnostics and dumps.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "ident"
	case KwNot:
		return "not"
	case KwTo:
		return "to"
	case KwOr:
		return "or"
	case KwWith:
		return "with"
	case KwGroup:
		return "group"
	case KwOneOf:
		return "oneOf"
	case KwOptional:
		return "optional"
	case KwMaybe:
		return "maybe"
	case KwMany:
		return "many"
	case KwAsMany:
		return "asMany"
	case KwFewest:
		return "fewest"
	case Quoted:
		return "quoted"
	case Number:
		return "number"
	case HashName:
		return "hash-name"
	case AtName:
		return "at-name"
	case AtNumber:
		return "at-number"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Comma:
		return ","
	case Question:
		return "?"
	case QuestionQuestion:
		return "??"
	case Plus:
		return "+"
	case Star:
		return "*"
	case Minus:
		return "-"
	}
	return "unknown"
}
