// Package ast defines the syntax tree produced by the parser and consumed by
// the resolver and the generator. The variant set is closed except for
// CustomCall, which the resolver eliminates: a fully resolved tree contains
// none, so the generator only ever handles the closed set.
package ast

import (
	"regxl/internal/source"
)

// Node is one syntax tree node.
type Node interface {
	Span() source.Span
	node()
}

// Text is a run of one or more concrete characters.
type Text struct {
	Sp    source.Span
	Value string
}

// Class is a named builtin character class (letter, digit, whitespace, ...).
type Class struct {
	Sp      source.Span
	Name    ClassName
	Negated bool
}

// Range is an inclusive codepoint interval 'a' to 'z'.
// Lo <= Hi is validated by the parser. Negated covers the 'not' prefix form,
// which negates the enclosing class rather than the bounds.
type Range struct {
	Sp      source.Span
	Lo, Hi  rune
	Negated bool
}

// ClassSet is the membership set of a oneOf(...) construct. Members are
// Text (single char), Range, or Class nodes.
type ClassSet struct {
	Sp      source.Span
	Members []Node
	Negated bool
}

// GroupKind distinguishes the three grouping forms.
type GroupKind uint8

const (
	// GroupNonCapturing represents a plain (...) grouping.
	GroupNonCapturing GroupKind = iota
	// GroupCapturing represents a numbered group(...) capture.
	GroupCapturing
	// GroupNamed represents a #name(...) capture.
	GroupNamed
)

// Group wraps a sub-expression in one of the grouping forms.
type Group struct {
	Sp   source.Span
	Body Node
	Kind GroupKind
	Name string // set only for GroupNamed
}

// Backref references an earlier capture by name (@name) or number (@n).
// Index is zero for named references.
type Backref struct {
	Sp    source.Span
	Name  string
	Index int
}

// AssertOp identifies a zero-width assertion.
type AssertOp uint8

const (
	// AssertStart anchors at the start of input.
	AssertStart AssertOp = iota
	// AssertEnd anchors at the end of input.
	AssertEnd
	// AssertStartLine anchors at the start of a line.
	AssertStartLine
	// AssertEndLine anchors at the end of a line.
	AssertEndLine
	// AssertWordBoundary matches between alphanumeric and non-alphanumeric positions.
	AssertWordBoundary
	// AssertFollowedBy is a lookahead over Body.
	AssertFollowedBy
	// AssertPrecededBy is a lookbehind over Body.
	AssertPrecededBy
)

// Assertion is a zero-width assertion; Body is nil except for
// followedBy/precededBy.
type Assertion struct {
	Sp      source.Span
	Op      AssertOp
	Negated bool
	Body    Node
}

// Alt is a binary alternation; chains of 'or' associate to the left.
type Alt struct {
	Sp          source.Span
	Left, Right Node
}

// Seq is an ordered sequence of parts matched one after another.
type Seq struct {
	Sp    source.Span
	Parts []Node
}

// Unbounded marks a quantifier with no upper bound.
const Unbounded = -1

// Quant repeats Body between Min and Max times. Max is Unbounded for open
// bounds. Min <= Max holds for bounded quantifiers (parser-validated).
type Quant struct {
	Sp       source.Span
	Body     Node
	Min, Max int
	Greedy   bool
}

// CustomCall is a user-extension invocation. It is transient: the resolver
// replaces every CustomCall with the expansion produced by its registry entry.
type CustomCall struct {
	Sp      source.Span
	Name    string
	Args    []Node
	Content Node
}

func (n *Text) Span() source.Span       { return n.Sp }
func (n *Class) Span() source.Span      { return n.Sp }
func (n *Range) Span() source.Span      { return n.Sp }
func (n *ClassSet) Span() source.Span   { return n.Sp }
func (n *Group) Span() source.Span      { return n.Sp }
func (n *Backref) Span() source.Span    { return n.Sp }
func (n *Assertion) Span() source.Span  { return n.Sp }
func (n *Alt) Span() source.Span        { return n.Sp }
func (n *Seq) Span() source.Span        { return n.Sp }
func (n *Quant) Span() source.Span      { return n.Sp }
func (n *CustomCall) Span() source.Span { return n.Sp }

func (*Text) node()       {}
func (*Class) node()      {}
func (*Range) node()      {}
func (*ClassSet) node()   {}
func (*Group) node()      {}
func (*Backref) node()    {}
func (*Assertion) node()  {}
func (*Alt) node()        {}
func (*Seq) node()        {}
func (*Quant) node()      {}
func (*CustomCall) node() {}
