// Package resolver expands custom token calls into builtin syntax tree
// fragments. A fully resolved tree contains no CustomCall nodes.
package resolver

import (
	"regxl/internal/ast"
)

// Fragment is one element of an expansion statement: either a raw RegXL
// snippet that gets re-lexed and re-parsed, or a ready syntax tree node
// spliced in as-is.
type Fragment struct {
	Raw  string
	Node ast.Node
}

// Raw wraps a source snippet into a fragment.
func Raw(snippet string) Fragment {
	return Fragment{Raw: snippet}
}

// Tree wraps a ready node into a fragment.
func Tree(n ast.Node) Fragment {
	return Fragment{Node: n}
}

// Statement is the ordered expansion a custom token produces. Its fragments
// are parsed, resolved, and spliced in place of the call.
type Statement []Fragment

// Expander produces the statement for one call. Args are the call's resolved
// operands in order; content is the trailing operand (nil when the call has
// no parenthesized argument). Expanders must be pure: the resolver may invoke
// them more than once for equal arguments.
type Expander func(args []ast.Node, content ast.Node) (Statement, error)

// Registry maps custom token names to their expanders. A registry is plain
// per-compilation configuration: concurrent compilations with different
// registries never share state. Cache keys compare registries by identity,
// so callers should reuse one *Registry per configuration.
type Registry struct {
	expanders map[string]Expander
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{expanders: make(map[string]Expander)}
}

// Register binds name to fn, replacing any previous binding.
func (r *Registry) Register(name string, fn Expander) {
	r.expanders[name] = fn
}

// Lookup returns the expander bound to name.
func (r *Registry) Lookup(name string) (Expander, bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.expanders[name]
	return fn, ok
}

// Len returns the number of registered extensions.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.expanders)
}
