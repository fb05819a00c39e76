package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a node back to canonical source text. The output re-parses to
// an equivalent tree, which makes it safe to splice into expansion snippets.
func Print(n Node) string {
	var sb strings.Builder
	printNode(&sb, n)
	return sb.String()
}

func printNode(sb *strings.Builder, n Node) {
	switch node := n.(type) {
	case *Text:
		printQuoted(sb, node.Value)

	case *Class:
		if node.Negated {
			sb.WriteString("not ")
		}
		sb.WriteString(node.Name.String())

	case *Range:
		if node.Negated {
			sb.WriteString("not ")
		}
		printQuoted(sb, string(node.Lo))
		sb.WriteString(" to ")
		printQuoted(sb, string(node.Hi))

	case *ClassSet:
		if node.Negated {
			sb.WriteString("not ")
		}
		sb.WriteString("oneOf(")
		for i, m := range node.Members {
			if i > 0 {
				sb.WriteByte(' ')
			}
			printNode(sb, m)
		}
		sb.WriteByte(')')

	case *Group:
		switch node.Kind {
		case GroupNonCapturing:
			sb.WriteByte('(')
		case GroupCapturing:
			sb.WriteString("group(")
		case GroupNamed:
			sb.WriteByte('#')
			sb.WriteString(node.Name)
			sb.WriteByte('(')
		}
		printNode(sb, node.Body)
		sb.WriteByte(')')

	case *Backref:
		sb.WriteByte('@')
		if node.Name != "" {
			sb.WriteString(node.Name)
		} else {
			sb.WriteString(strconv.Itoa(node.Index))
		}

	case *Assertion:
		printAssertion(sb, node)

	case *Alt:
		printNode(sb, node.Left)
		sb.WriteString(" or ")
		printNode(sb, node.Right)

	case *Seq:
		for i, part := range node.Parts {
			if i > 0 {
				sb.WriteByte(' ')
			}
			if _, isAlt := part.(*Alt); isAlt {
				sb.WriteByte('(')
				printNode(sb, part)
				sb.WriteByte(')')
			} else {
				printNode(sb, part)
			}
		}

	case *Quant:
		printQuant(sb, node)

	case *CustomCall:
		sb.WriteString(node.Name)
		if len(node.Args) > 0 {
			sb.WriteByte('(')
			for i, arg := range node.Args {
				if i > 0 {
					sb.WriteString(", ")
				}
				printNode(sb, arg)
			}
			sb.WriteByte(')')
		}
	}
}

func (op AssertOp) String() string {
	if name, ok := assertionNames[op]; ok {
		return name
	}
	return "unknown"
}

var assertionNames = map[AssertOp]string{
	AssertStart:        "start",
	AssertEnd:          "end",
	AssertStartLine:    "startLine",
	AssertEndLine:      "endLine",
	AssertWordBoundary: "alphaNumericBoundary",
	AssertFollowedBy:   "followedBy",
	AssertPrecededBy:   "precededBy",
}

func printAssertion(sb *strings.Builder, a *Assertion) {
	if a.Negated {
		sb.WriteString("not ")
	}
	sb.WriteString(assertionNames[a.Op])
	if a.Body != nil {
		sb.WriteByte('(')
		printNode(sb, a.Body)
		sb.WriteByte(')')
	}
}

func printQuant(sb *strings.Builder, q *Quant) {
	switch body := q.Body.(type) {
	case *Alt, *Seq, *Quant:
		sb.WriteByte('(')
		printNode(sb, body)
		sb.WriteByte(')')
	default:
		printNode(sb, q.Body)
	}

	switch {
	case q.Min == 0 && q.Max == 1:
		if q.Greedy {
			sb.WriteByte('?')
		} else {
			sb.WriteString("??")
		}
	case q.Min == 0 && q.Max == Unbounded:
		if q.Greedy {
			sb.WriteByte('*')
		} else {
			sb.WriteString(" fewest 0+")
		}
	case q.Min == 1 && q.Max == Unbounded:
		if q.Greedy {
			sb.WriteByte('+')
		} else {
			sb.WriteString(" fewest 1+")
		}
	case q.Min == q.Max:
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(q.Min))
		sb.WriteByte('x')
	case q.Max == Unbounded:
		sb.WriteByte(' ')
		if !q.Greedy {
			sb.WriteString("fewest ")
		}
		sb.WriteString(strconv.Itoa(q.Min))
		sb.WriteByte('+')
	default:
		sb.WriteByte(' ')
		if !q.Greedy {
			sb.WriteString("fewest ")
		}
		sb.WriteString(strconv.Itoa(q.Min))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(q.Max))
	}
}

func printQuoted(sb *strings.Builder, s string) {
	sb.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			if r < 0x20 {
				fmt.Fprintf(sb, `\x%02x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('\'')
}
