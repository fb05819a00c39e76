package codegen

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/source"
)

// Options configures a generation pass.
type Options struct {
	Reporter diag.Reporter
}

// Pattern is the generator's output: regex pattern text and the flag set.
type Pattern struct {
	Source string
	Flags  Flags
}

// String renders the pattern in /source/flags display form.
func (p Pattern) String() string {
	return "/" + p.Source + "/" + p.Flags.String()
}

// Generator walks a resolved tree left to right, assigning capture group
// numbers at each opening paren and validating backreferences against the
// groups declared so far.
type Generator struct {
	opts   Options
	mods   ast.Modifiers
	sb     strings.Builder
	groups int
	names  map[string]int
}

// Generate lowers root into pattern text. ok is false when any construct
// could not be lowered; the partial pattern is not returned.
func Generate(root ast.Node, mods ast.Modifiers, opts Options) (Pattern, bool) {
	g := Generator{opts: opts, mods: mods, names: make(map[string]int)}
	if !g.gen(root) {
		return Pattern{}, false
	}
	return Pattern{Source: g.sb.String(), Flags: FlagsFor(mods)}, true
}

func (g *Generator) gen(n ast.Node) bool {
	switch node := n.(type) {
	case *ast.Text:
		g.sb.WriteString(escapeText(node.Value))
		return true

	case *ast.Class:
		text, ok := lowerClass(node.Name, node.Negated, g.mods.Binary)
		if !ok {
			g.report(diag.GenUnsupportedInBinary, node.Sp,
				"'"+node.Name.String()+"' has no byte-level form")
			return false
		}
		g.sb.WriteString(text)
		return true

	case *ast.Range:
		if node.Negated {
			g.sb.WriteString("[^")
		} else {
			g.sb.WriteByte('[')
		}
		g.sb.WriteString(escapeClassRune(node.Lo))
		g.sb.WriteByte('-')
		g.sb.WriteString(escapeClassRune(node.Hi))
		g.sb.WriteByte(']')
		return true

	case *ast.ClassSet:
		return g.genClassSet(node)

	case *ast.Group:
		return g.genGroup(node)

	case *ast.Backref:
		return g.genBackref(node)

	case *ast.Assertion:
		return g.genAssertion(node)

	case *ast.Alt:
		if !g.gen(node.Left) {
			return false
		}
		g.sb.WriteByte('|')
		return g.gen(node.Right)

	case *ast.Seq:
		for _, part := range node.Parts {
			// a spliced alternation binds tighter than the sequence
			// only when fenced off
			if _, isAlt := part.(*ast.Alt); isAlt {
				g.sb.WriteString("(?:")
				if !g.gen(part) {
					return false
				}
				g.sb.WriteByte(')')
				continue
			}
			if !g.gen(part) {
				return false
			}
		}
		return true

	case *ast.Quant:
		return g.genQuant(node)

	case *ast.CustomCall:
		g.report(diag.GenUnresolvedCall, node.Sp,
			"custom token '"+node.Name+"' was not resolved")
		return false
	}

	g.report(diag.GenUnresolvedCall, n.Span(), "unexpected node in generation")
	return false
}

func (g *Generator) genClassSet(set *ast.ClassSet) bool {
	if set.Negated {
		g.sb.WriteString("[^")
	} else {
		g.sb.WriteByte('[')
	}
	for _, m := range set.Members {
		switch member := m.(type) {
		case *ast.Text:
			r, _ := utf8.DecodeRuneInString(member.Value)
			g.sb.WriteString(escapeClassRune(r))
		case *ast.Range:
			g.sb.WriteString(escapeClassRune(member.Lo))
			g.sb.WriteByte('-')
			g.sb.WriteString(escapeClassRune(member.Hi))
		case *ast.Class:
			text, ok := lowerMember(member.Name, g.mods.Binary)
			if !ok {
				g.report(diag.GenUnsupportedInBinary, member.Sp,
					"'"+member.Name.String()+"' has no byte-level form")
				return false
			}
			g.sb.WriteString(text)
		}
	}
	g.sb.WriteByte(']')
	return true
}

func (g *Generator) genGroup(group *ast.Group) bool {
	switch group.Kind {
	case ast.GroupNonCapturing:
		g.sb.WriteString("(?:")
	case ast.GroupCapturing:
		g.groups++
		g.sb.WriteByte('(')
	case ast.GroupNamed:
		if _, dup := g.names[group.Name]; dup {
			g.report(diag.GenDuplicateGroupName, group.Sp,
				"capture group '"+group.Name+"' is already declared")
			return false
		}
		g.groups++
		g.names[group.Name] = g.groups
		g.sb.WriteString("(?<")
		g.sb.WriteString(group.Name)
		g.sb.WriteByte('>')
	}
	if !g.gen(group.Body) {
		return false
	}
	g.sb.WriteByte(')')
	return true
}

func (g *Generator) genBackref(ref *ast.Backref) bool {
	if ref.Name != "" {
		if _, ok := g.names[ref.Name]; !ok {
			g.report(diag.GenDanglingBackref, ref.Sp,
				"no capture group named '"+ref.Name+"' declared before this point")
			return false
		}
		g.sb.WriteString(`\k<`)
		g.sb.WriteString(ref.Name)
		g.sb.WriteByte('>')
		return true
	}
	if ref.Index < 1 || ref.Index > g.groups {
		g.report(diag.GenDanglingBackref, ref.Sp,
			"no capture group "+strconv.Itoa(ref.Index)+" declared before this point")
		return false
	}
	g.sb.WriteByte('\\')
	g.sb.WriteString(strconv.Itoa(ref.Index))
	return true
}

func (g *Generator) genAssertion(a *ast.Assertion) bool {
	switch a.Op {
	case ast.AssertFollowedBy:
		if a.Negated {
			g.sb.WriteString("(?!")
		} else {
			g.sb.WriteString("(?=")
		}
	case ast.AssertPrecededBy:
		if a.Negated {
			g.sb.WriteString("(?<!")
		} else {
			g.sb.WriteString("(?<=")
		}
	default:
		g.sb.WriteString(lowerAssertion(a.Op, a.Negated))
		return true
	}
	if !g.gen(a.Body) {
		return false
	}
	g.sb.WriteByte(')')
	return true
}

func (g *Generator) genQuant(q *ast.Quant) bool {
	if needsWrap(q.Body) {
		g.sb.WriteString("(?:")
		if !g.gen(q.Body) {
			return false
		}
		g.sb.WriteByte(')')
	} else if !g.gen(q.Body) {
		return false
	}

	switch {
	case q.Min == 0 && q.Max == 1:
		g.sb.WriteByte('?')
	case q.Min == 0 && q.Max == ast.Unbounded:
		g.sb.WriteByte('*')
	case q.Min == 1 && q.Max == ast.Unbounded:
		g.sb.WriteByte('+')
	case q.Max == ast.Unbounded:
		g.sb.WriteByte('{')
		g.sb.WriteString(strconv.Itoa(q.Min))
		g.sb.WriteString(",}")
	case q.Min == q.Max:
		g.sb.WriteByte('{')
		g.sb.WriteString(strconv.Itoa(q.Min))
		g.sb.WriteByte('}')
	default:
		g.sb.WriteByte('{')
		g.sb.WriteString(strconv.Itoa(q.Min))
		g.sb.WriteByte(',')
		g.sb.WriteString(strconv.Itoa(q.Max))
		g.sb.WriteByte('}')
	}
	if !q.Greedy {
		g.sb.WriteByte('?')
	}
	return true
}

// needsWrap reports whether a quantifier body lowers to more than one regex
// atom and therefore needs a non-capturing wrapper.
func needsWrap(n ast.Node) bool {
	switch node := n.(type) {
	case *ast.Text:
		return utf8.RuneCountInString(node.Value) > 1
	case *ast.Class:
		switch node.Name {
		case ast.ClassNumeric, ast.ClassInteger, ast.ClassDecimal:
			return true
		}
		return false
	case *ast.Seq, *ast.Alt, *ast.Quant:
		return true
	}
	return false
}

func (g *Generator) report(code diag.Code, sp source.Span, msg string) {
	if g.opts.Reporter != nil {
		g.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
