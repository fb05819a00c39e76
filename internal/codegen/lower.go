package codegen

import (
	"regxl/internal/ast"
)

// classLowering holds the pattern text for one builtin class in both modes.
// member is the bracketless form usable inside a character class; empty for
// classes that cannot appear there.
type classLowering struct {
	uni       string
	uniNeg    string
	bin       string
	binNeg    string
	member    string
	binMember string
}

var classTable = map[ast.ClassName]classLowering{
	ast.ClassAny: {
		uni: ".", bin: ".",
	},
	ast.ClassAnything: {
		uni: `[\s\S]`, bin: `[\s\S]`,
	},
	ast.ClassDigit: {
		uni: `\d`, uniNeg: `\D`, bin: `\d`, binNeg: `\D`,
		member: `\d`, binMember: `\d`,
	},
	ast.ClassNumeric: {
		uni: `\d+(?:\.\d+)?`, bin: `\d+(?:\.\d+)?`,
	},
	ast.ClassInteger: {
		uni: `\d+`, bin: `\d+`,
	},
	ast.ClassDecimal: {
		uni: `\d+\.\d+`, bin: `\d+\.\d+`,
	},
	ast.ClassAlphaNumeric: {
		uni: `[\p{L}\p{N}]`, uniNeg: `[^\p{L}\p{N}]`,
		bin: `[A-Za-z0-9]`, binNeg: `[^A-Za-z0-9]`,
		member: `\p{L}\p{N}`, binMember: `A-Za-z0-9`,
	},
	ast.ClassASCII: {
		uni: `[\x00-\x7f]`, uniNeg: `[^\x00-\x7f]`,
		bin: `[\x00-\x7f]`, binNeg: `[^\x00-\x7f]`,
		member: `\x00-\x7f`, binMember: `\x00-\x7f`,
	},
	ast.ClassLetter: {
		uni: `\p{L}`, uniNeg: `\P{L}`,
		bin: `[A-Za-z]`, binNeg: `[^A-Za-z]`,
		member: `\p{L}`, binMember: `A-Za-z`,
	},
	ast.ClassUpperLetter: {
		uni: `\p{Lu}`, uniNeg: `\P{Lu}`,
		bin: `[A-Z]`, binNeg: `[^A-Z]`,
		member: `\p{Lu}`, binMember: `A-Z`,
	},
	ast.ClassLowerLetter: {
		uni: `\p{Ll}`, uniNeg: `\P{Ll}`,
		bin: `[a-z]`, binNeg: `[^a-z]`,
		member: `\p{Ll}`, binMember: `a-z`,
	},
	ast.ClassEmoji: {
		// no byte-level form: rejected in binary mode
		uni: `\p{Extended_Pictographic}`, uniNeg: `\P{Extended_Pictographic}`,
		member: `\p{Extended_Pictographic}`,
	},
	ast.ClassWhitespace: {
		uni: `\p{White_Space}`, uniNeg: `\P{White_Space}`,
		bin: `[ \t\r\n\v\f]`, binNeg: `[^ \t\r\n\v\f]`,
		member: `\p{White_Space}`, binMember: ` \t\r\n\v\f`,
	},
	ast.ClassSpace: {
		uni: ` `, uniNeg: `[^ ]`, bin: ` `, binNeg: `[^ ]`,
		member: ` `, binMember: ` `,
	},
	ast.ClassTab: {
		uni: `\t`, uniNeg: `[^\t]`, bin: `\t`, binNeg: `[^\t]`,
		member: `\t`, binMember: `\t`,
	},
	ast.ClassTabSpace: {
		uni: `[ \t]`, uniNeg: `[^ \t]`, bin: `[ \t]`, binNeg: `[^ \t]`,
		member: ` \t`, binMember: ` \t`,
	},
	ast.ClassNewline: {
		uni: `\n`, uniNeg: `[^\n]`, bin: `\n`, binNeg: `[^\n]`,
		member: `\n`, binMember: `\n`,
	},
	ast.ClassNull: {
		uni: `\x00`, uniNeg: `[^\x00]`, bin: `\x00`, binNeg: `[^\x00]`,
		member: `\x00`, binMember: `\x00`,
	},
}

// lowerClass returns the standalone pattern text for a class node.
// ok is false when the class has no byte-level form and binary mode is on.
func lowerClass(name ast.ClassName, negated, binary bool) (string, bool) {
	l := classTable[name]
	switch {
	case binary && negated:
		return l.binNeg, l.binNeg != ""
	case binary:
		return l.bin, l.bin != ""
	case negated:
		return l.uniNeg, l.uniNeg != ""
	default:
		return l.uni, l.uni != ""
	}
}

// lowerMember returns the in-class form of a builtin class.
func lowerMember(name ast.ClassName, binary bool) (string, bool) {
	l := classTable[name]
	if binary {
		return l.binMember, l.binMember != ""
	}
	return l.member, l.member != ""
}

// lowerAssertion returns the pattern text for a bodyless assertion.
// Negated anchors lower to the lookaround that holds exactly where the
// positive form does not.
func lowerAssertion(op ast.AssertOp, negated bool) string {
	switch op {
	case ast.AssertStart:
		if negated {
			return `(?<=[\s\S])`
		}
		return `^`
	case ast.AssertEnd:
		if negated {
			return `(?=[\s\S])`
		}
		return `$`
	case ast.AssertStartLine:
		if negated {
			return `(?<=[^\n])`
		}
		return `(?:^|(?<=\n))`
	case ast.AssertEndLine:
		if negated {
			return `(?=[^\n])`
		}
		return `(?:$|(?=\n))`
	case ast.AssertWordBoundary:
		if negated {
			return `\B`
		}
		return `\b`
	}
	return ""
}
