package parser

import (
	"regxl/internal/ast"
)

type builtinKind uint8

const (
	builtinClass builtinKind = iota
	builtinAssert
)

// builtin describes one entry of the builtin name table. Identifiers missing
// from the table are custom token calls.
type builtin struct {
	kind      builtinKind
	class     ast.ClassName
	assert    ast.AssertOp
	negatable bool
	takesBody bool // followedBy / precededBy
	member    bool // allowed inside oneOf(...)
}

var builtins = map[string]builtin{
	// character classes
	"any":          {kind: builtinClass, class: ast.ClassAny},
	"anything":     {kind: builtinClass, class: ast.ClassAnything},
	"digit":        {kind: builtinClass, class: ast.ClassDigit, negatable: true, member: true},
	"numeric":      {kind: builtinClass, class: ast.ClassNumeric},
	"integer":      {kind: builtinClass, class: ast.ClassInteger},
	"decimal":      {kind: builtinClass, class: ast.ClassDecimal},
	"alphaNumeric": {kind: builtinClass, class: ast.ClassAlphaNumeric, negatable: true, member: true},
	"ascii":        {kind: builtinClass, class: ast.ClassASCII, negatable: true, member: true},
	"letter":       {kind: builtinClass, class: ast.ClassLetter, negatable: true, member: true},
	"upperLetter":  {kind: builtinClass, class: ast.ClassUpperLetter, negatable: true, member: true},
	"lowerLetter":  {kind: builtinClass, class: ast.ClassLowerLetter, negatable: true, member: true},
	"emoji":        {kind: builtinClass, class: ast.ClassEmoji, negatable: true, member: true},
	"whitespace":   {kind: builtinClass, class: ast.ClassWhitespace, negatable: true, member: true},
	"space":        {kind: builtinClass, class: ast.ClassSpace, negatable: true, member: true},
	"tab":          {kind: builtinClass, class: ast.ClassTab, negatable: true, member: true},
	"tabSpace":     {kind: builtinClass, class: ast.ClassTabSpace, negatable: true, member: true},
	"newline":      {kind: builtinClass, class: ast.ClassNewline, negatable: true, member: true},
	"null":         {kind: builtinClass, class: ast.ClassNull, negatable: true, member: true},

	// assertions
	"start":                 {kind: builtinAssert, assert: ast.AssertStart, negatable: true},
	"end":                   {kind: builtinAssert, assert: ast.AssertEnd, negatable: true},
	"startLine":             {kind: builtinAssert, assert: ast.AssertStartLine, negatable: true},
	"endLine":               {kind: builtinAssert, assert: ast.AssertEndLine, negatable: true},
	"alphaNumericBoundary":  {kind: builtinAssert, assert: ast.AssertWordBoundary, negatable: true},
	"followedBy":            {kind: builtinAssert, assert: ast.AssertFollowedBy, negatable: true, takesBody: true},
	"precededBy":            {kind: builtinAssert, assert: ast.AssertPrecededBy, negatable: true, takesBody: true},
}

// lookupBuiltin returns the builtin entry for an identifier.
func lookupBuiltin(name string) (builtin, bool) {
	b, ok := builtins[name]
	return b, ok
}
