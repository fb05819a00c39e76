package ast

// ClassName identifies a builtin character class.
type ClassName uint8

const (
	// ClassAny matches any character except the line terminator.
	ClassAny ClassName = iota
	// ClassAnything matches any character including the line terminator.
	ClassAnything
	// ClassDigit matches a single decimal digit.
	ClassDigit
	// ClassNumeric matches an integer or decimal number.
	ClassNumeric
	// ClassInteger matches a run of decimal digits.
	ClassInteger
	// ClassDecimal matches digits, a dot, and digits.
	ClassDecimal
	// ClassAlphaNumeric matches a letter or digit.
	ClassAlphaNumeric
	// ClassASCII matches any 7-bit character.
	ClassASCII
	// ClassLetter matches an alphabetic character.
	ClassLetter
	// ClassUpperLetter matches an uppercase letter.
	ClassUpperLetter
	// ClassLowerLetter matches a lowercase letter.
	ClassLowerLetter
	// ClassEmoji matches a pictographic character.
	ClassEmoji
	// ClassWhitespace matches a whitespace character.
	ClassWhitespace
	// ClassSpace matches a single space character.
	ClassSpace
	// ClassTab matches a tab character.
	ClassTab
	// ClassTabSpace matches a tab or a space.
	ClassTabSpace
	// ClassNewline matches a line feed.
	ClassNewline
	// ClassNull matches the NUL character.
	ClassNull
)

func (c ClassName) String() string {
	switch c {
	case ClassAny:
		return "any"
	case ClassAnything:
		return "anything"
	case ClassDigit:
		return "digit"
	case ClassNumeric:
		return "numeric"
	case ClassInteger:
		return "integer"
	case ClassDecimal:
		return "decimal"
	case ClassAlphaNumeric:
		return "alphaNumeric"
	case ClassASCII:
		return "ascii"
	case ClassLetter:
		return "letter"
	case ClassUpperLetter:
		return "upperLetter"
	case ClassLowerLetter:
		return "lowerLetter"
	case ClassEmoji:
		return "emoji"
	case ClassWhitespace:
		return "whitespace"
	case ClassSpace:
		return "space"
	case ClassTab:
		return "tab"
	case ClassTabSpace:
		return "tabSpace"
	case ClassNewline:
		return "newline"
	case ClassNull:
		return "null"
	}
	return "unknown"
}
