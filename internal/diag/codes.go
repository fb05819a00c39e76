package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedQuoted Code = 1002
	LexBadEscape          Code = 1003
	LexBadNumber          Code = 1004
	LexBadSigil           Code = 1005

	// Syntactic
	SynInfo                  Code = 2000
	SynUnexpectedToken       Code = 2001
	SynUnclosedParen         Code = 2002
	SynExpectExpression      Code = 2003
	SynExpectQuoted          Code = 2004
	SynBadRange              Code = 2005
	SynBadBound              Code = 2006
	SynDanglingQuantifier    Code = 2007
	SynCannotNegate          Code = 2008
	SynExpectGroupBody       Code = 2009
	SynUnknownModifier       Code = 2010
	SynUnsupportedModifier   Code = 2011
	SynEmptyClass            Code = 2012
	SynBadClassMember        Code = 2013
	SynTrailingInput         Code = 2014
	SynExpectCountMarker     Code = 2015
	SynExpectModifierList    Code = 2016
	SynMultiCharInRange      Code = 2017
	SynMultiCharInClass      Code = 2018
	SynFewestWithoutBound    Code = 2019
	SynQuantifierOnAssertion Code = 2020

	// Extension resolution
	ResInfo           Code = 3000
	ResUnknownToken   Code = 3001
	ResExpansionCycle Code = 3002
	ResBadStatement   Code = 3003
	ResExpanderFailed Code = 3004

	// Generation
	GenInfo                Code = 4000
	GenDanglingBackref     Code = 4001
	GenDuplicateGroupName  Code = 4002
	GenUnsupportedInBinary Code = 4003
	GenUnresolvedCall      Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical info",
	LexUnknownChar:        "unknown character",
	LexUnterminatedQuoted: "unterminated quoted literal",
	LexBadEscape:          "invalid escape sequence",
	LexBadNumber:          "malformed number",
	LexBadSigil:           "malformed capture or backreference sigil",

	SynInfo:                  "syntax info",
	SynUnexpectedToken:       "unexpected token",
	SynUnclosedParen:         "unclosed parenthesis",
	SynExpectExpression:      "expected expression",
	SynExpectQuoted:          "expected quoted literal",
	SynBadRange:              "range bounds out of order",
	SynBadBound:              "quantifier bounds out of order",
	SynDanglingQuantifier:    "quantifier without a preceding atom",
	SynCannotNegate:          "construct does not support negation",
	SynExpectGroupBody:       "expected parenthesized body",
	SynUnknownModifier:       "unknown modifier",
	SynUnsupportedModifier:   "unsupported modifier",
	SynEmptyClass:            "empty character class",
	SynBadClassMember:        "invalid character class member",
	SynTrailingInput:         "unexpected trailing input",
	SynExpectCountMarker:     "expected count marker after number",
	SynExpectModifierList:    "expected modifier name or parenthesized list",
	SynMultiCharInRange:      "range bound must be a single character",
	SynMultiCharInClass:      "class member must be a single character",
	SynFewestWithoutBound:    "'fewest' must precede a bound quantifier",
	SynQuantifierOnAssertion: "assertions cannot be quantified",

	ResInfo:           "resolution info",
	ResUnknownToken:   "unknown custom token",
	ResExpansionCycle: "custom token expansion cycle",
	ResBadStatement:   "invalid expansion statement",
	ResExpanderFailed: "custom token expansion failed",

	GenInfo:                "generation info",
	GenDanglingBackref:     "backreference to undeclared group",
	GenDuplicateGroupName:  "duplicate capture group name",
	GenUnsupportedInBinary: "construct unsupported in binary mode",
	GenUnresolvedCall:      "unresolved custom token reached generation",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("RES%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("GEN%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
