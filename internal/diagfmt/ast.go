package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"regxl/internal/ast"
)

// DumpAST writes an indented structural dump of the tree.
func DumpAST(w io.Writer, root ast.Node) {
	dumpNode(w, root, 0)
}

func dumpNode(w io.Writer, n ast.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch node := n.(type) {
	case *ast.Text:
		fmt.Fprintf(w, "%sText %q\n", indent, node.Value)
	case *ast.Class:
		fmt.Fprintf(w, "%sClass %s%s\n", indent, negPrefix(node.Negated), node.Name)
	case *ast.Range:
		fmt.Fprintf(w, "%sRange %s%q-%q\n", indent, negPrefix(node.Negated), node.Lo, node.Hi)
	case *ast.ClassSet:
		fmt.Fprintf(w, "%sClassSet %s(%d members)\n", indent, negPrefix(node.Negated), len(node.Members))
		for _, m := range node.Members {
			dumpNode(w, m, depth+1)
		}
	case *ast.Group:
		switch node.Kind {
		case ast.GroupNonCapturing:
			fmt.Fprintf(w, "%sGroup\n", indent)
		case ast.GroupCapturing:
			fmt.Fprintf(w, "%sGroup capturing\n", indent)
		case ast.GroupNamed:
			fmt.Fprintf(w, "%sGroup #%s\n", indent, node.Name)
		}
		dumpNode(w, node.Body, depth+1)
	case *ast.Backref:
		if node.Name != "" {
			fmt.Fprintf(w, "%sBackref @%s\n", indent, node.Name)
		} else {
			fmt.Fprintf(w, "%sBackref @%d\n", indent, node.Index)
		}
	case *ast.Assertion:
		fmt.Fprintf(w, "%sAssertion %s%v\n", indent, negPrefix(node.Negated), node.Op)
		if node.Body != nil {
			dumpNode(w, node.Body, depth+1)
		}
	case *ast.Alt:
		fmt.Fprintf(w, "%sAlt\n", indent)
		dumpNode(w, node.Left, depth+1)
		dumpNode(w, node.Right, depth+1)
	case *ast.Seq:
		fmt.Fprintf(w, "%sSeq (%d parts)\n", indent, len(node.Parts))
		for _, part := range node.Parts {
			dumpNode(w, part, depth+1)
		}
	case *ast.Quant:
		max := "inf"
		if node.Max != ast.Unbounded {
			max = fmt.Sprint(node.Max)
		}
		greed := "greedy"
		if !node.Greedy {
			greed = "lazy"
		}
		fmt.Fprintf(w, "%sQuant {%d,%s} %s\n", indent, node.Min, max, greed)
		dumpNode(w, node.Body, depth+1)
	case *ast.CustomCall:
		fmt.Fprintf(w, "%sCall %s (%d args)\n", indent, node.Name, len(node.Args))
		for _, arg := range node.Args {
			dumpNode(w, arg, depth+1)
		}
	}
}

func negPrefix(negated bool) string {
	if negated {
		return "not "
	}
	return ""
}
