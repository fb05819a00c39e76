package token

var keywords = map[string]Kind{
	"not":      KwNot,
	"to":       KwTo,
	"or":       KwOr,
	"with":     KwWith,
	"group":    KwGroup,
	"oneOf":    KwOneOf,
	"optional": KwOptional,
	"maybe":    KwMaybe,
	"many":     KwMany,
	"asMany":   KwAsMany,
	"fewest":   KwFewest,
}

// LookupKeyword returns the keyword kind for ident if it is a structural
// keyword. Builtin class and assertion names are not keywords: they stay
// Ident and are classified by the parser's builtin table.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
