package resolver

import (
	"strings"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/source"
)

// Options configures a resolve pass.
type Options struct {
	Registry *Registry
	Reporter diag.Reporter
	// Files receives virtual buffers for raw expansion snippets so their
	// parse diagnostics carry real spans.
	Files *source.FileSet
}

// Resolver walks the tree depth-first and replaces every CustomCall with its
// expansion. Expansion is unbounded recursion by construction, so an explicit
// chain of in-progress token names guards against cycles.
type Resolver struct {
	opts  Options
	chain []string
}

// Resolve expands every custom token call in root. The returned tree contains
// only builtin variants. ok is false when any expansion failed.
func Resolve(root ast.Node, opts Options) (ast.Node, bool) {
	r := Resolver{opts: opts}
	return r.resolve(root)
}

func (r *Resolver) resolve(n ast.Node) (ast.Node, bool) {
	switch node := n.(type) {
	case *ast.Text, *ast.Class, *ast.Range, *ast.ClassSet, *ast.Backref:
		// leaves: class set members cannot contain calls
		return n, true

	case *ast.Group:
		body, ok := r.resolve(node.Body)
		if !ok {
			return nil, false
		}
		if body == node.Body {
			return node, true
		}
		return &ast.Group{Sp: node.Sp, Body: body, Kind: node.Kind, Name: node.Name}, true

	case *ast.Assertion:
		if node.Body == nil {
			return node, true
		}
		body, ok := r.resolve(node.Body)
		if !ok {
			return nil, false
		}
		if body == node.Body {
			return node, true
		}
		return &ast.Assertion{Sp: node.Sp, Op: node.Op, Negated: node.Negated, Body: body}, true

	case *ast.Alt:
		left, ok := r.resolve(node.Left)
		if !ok {
			return nil, false
		}
		right, ok := r.resolve(node.Right)
		if !ok {
			return nil, false
		}
		if left == node.Left && right == node.Right {
			return node, true
		}
		return &ast.Alt{Sp: node.Sp, Left: left, Right: right}, true

	case *ast.Seq:
		parts := make([]ast.Node, len(node.Parts))
		changed := false
		for i, part := range node.Parts {
			resolved, ok := r.resolve(part)
			if !ok {
				return nil, false
			}
			parts[i] = resolved
			if resolved != part {
				changed = true
			}
		}
		if !changed {
			return node, true
		}
		return &ast.Seq{Sp: node.Sp, Parts: parts}, true

	case *ast.Quant:
		body, ok := r.resolve(node.Body)
		if !ok {
			return nil, false
		}
		if body == node.Body {
			return node, true
		}
		return &ast.Quant{Sp: node.Sp, Body: body, Min: node.Min, Max: node.Max, Greedy: node.Greedy}, true

	case *ast.CustomCall:
		return r.expand(node)

	default:
		r.report(diag.ResBadStatement, n.Span(), "unexpected node in resolve pass", nil)
		return nil, false
	}
}

// expand resolves one custom call: arguments first, then the expander, then
// the produced statement.
func (r *Resolver) expand(call *ast.CustomCall) (ast.Node, bool) {
	for _, inProgress := range r.chain {
		if inProgress == call.Name {
			notes := make([]diag.Note, 0, len(r.chain)+1)
			for _, name := range r.chain {
				notes = append(notes, diag.Note{Span: call.Sp, Msg: name})
			}
			notes = append(notes, diag.Note{Span: call.Sp, Msg: call.Name})
			r.report(diag.ResExpansionCycle, call.Sp,
				"custom token expansion cycle: "+strings.Join(append(append([]string{}, r.chain...), call.Name), " -> "),
				notes)
			return nil, false
		}
	}

	fn, ok := r.opts.Registry.Lookup(call.Name)
	if !ok {
		r.report(diag.ResUnknownToken, call.Sp, "unknown custom token '"+call.Name+"'", nil)
		return nil, false
	}

	args := make([]ast.Node, len(call.Args))
	for i, arg := range call.Args {
		resolved, okArg := r.resolve(arg)
		if !okArg {
			return nil, false
		}
		args[i] = resolved
	}
	var content ast.Node
	if len(args) > 0 && call.Content != nil {
		content = args[len(args)-1]
	}

	stmt, err := fn(args, content)
	if err != nil {
		r.report(diag.ResExpanderFailed, call.Sp, "expansion of '"+call.Name+"' failed: "+err.Error(), nil)
		return nil, false
	}

	r.chain = append(r.chain, call.Name)
	defer func() { r.chain = r.chain[:len(r.chain)-1] }()

	parts := make([]ast.Node, 0, len(stmt))
	for _, frag := range stmt {
		node, okFrag := r.resolveFragment(call, frag)
		if !okFrag {
			return nil, false
		}
		if node != nil {
			parts = append(parts, node)
		}
	}

	switch len(parts) {
	case 0:
		r.report(diag.ResBadStatement, call.Sp, "expansion of '"+call.Name+"' produced nothing", nil)
		return nil, false
	case 1:
		return parts[0], true
	default:
		return &ast.Seq{Sp: call.Sp, Parts: parts}, true
	}
}

// resolveFragment turns one statement fragment into a resolved node.
// Raw snippets are re-lexed and re-parsed, then resolved under the current
// expansion chain so indirect recursion is still caught.
func (r *Resolver) resolveFragment(call *ast.CustomCall, frag Fragment) (ast.Node, bool) {
	if frag.Node != nil {
		return r.resolve(frag.Node)
	}

	if strings.TrimSpace(frag.Raw) == "" {
		return nil, true
	}

	id := r.opts.Files.AddVirtual(call.Name+".expansion", []byte(frag.Raw))
	lx := lexer.New(r.opts.Files.Get(id), lexer.Options{Reporter: r.opts.Reporter})
	node, ok := parser.ParseFragment(lx, parser.Options{Reporter: r.opts.Reporter})
	if !ok {
		r.report(diag.ResBadStatement, call.Sp, "expansion of '"+call.Name+"' is not valid syntax", nil)
		return nil, false
	}
	return r.resolve(node)
}

func (r *Resolver) report(code diag.Code, sp source.Span, msg string, notes []diag.Note) {
	if r.opts.Reporter != nil {
		r.opts.Reporter.Report(code, diag.SevError, sp, msg, notes)
	}
}
