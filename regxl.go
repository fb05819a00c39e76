// Package regxl compiles RegXL source, a readable regular expression DSL,
// into regex pattern text plus a flag set. The language is extensible: custom
// tokens registered on a Registry expand into RegXL fragments at compile time.
package regxl

import (
	"fmt"
	"strconv"
	"strings"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/driver"
	"regxl/internal/resolver"
)

// Pattern is a compiled expression: pattern text plus canonical flags.
type Pattern struct {
	Source string
	Flags  string
}

// String renders the pattern in /source/flags display form.
func (p Pattern) String() string {
	return "/" + p.Source + "/" + p.Flags
}

// ErrorKind classifies a compilation failure by the phase that produced it.
type ErrorKind uint8

const (
	// LexError is a tokenization failure.
	LexError ErrorKind = iota + 1
	// ParseError is a syntax failure.
	ParseError
	// ResolutionError is a custom token expansion failure.
	ResolutionError
	// CycleError is a cyclic custom token expansion.
	CycleError
	// GenerationError is a lowering failure.
	GenerationError
)

func (k ErrorKind) String() string {
	switch k {
	case LexError:
		return "lex error"
	case ParseError:
		return "parse error"
	case ResolutionError:
		return "resolution error"
	case CycleError:
		return "cycle error"
	case GenerationError:
		return "generation error"
	}
	return "error"
}

// Position is a 1-based line/column location in the source.
type Position struct {
	Line int
	Col  int
}

// Error is a compilation failure. All kinds are fatal: a failed compile never
// yields a pattern.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Pos     Position
	// Notes carries secondary information, such as the expansion chain of a
	// cycle in call order.
	Notes []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s at %d:%d", e.Code, e.Message, e.Pos.Line, e.Pos.Col)
}

// Registry holds custom token expanders. Compilation caches key on registry
// identity, so reuse one Registry per configuration rather than rebuilding
// an equal one per compile.
type Registry struct {
	inner *resolver.Registry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{inner: resolver.NewRegistry()}
}

// RegisterFunc binds name to a function from operand texts to a RegXL
// snippet. args are the call's operands rendered back to source; content is
// the trailing operand, or "" when the call has none.
func (r *Registry) RegisterFunc(name string, fn func(args []string, content string) (string, error)) {
	r.inner.Register(name, func(args []ast.Node, content ast.Node) (resolver.Statement, error) {
		texts := make([]string, len(args))
		for i, arg := range args {
			texts[i] = ast.Print(arg)
		}
		var contentText string
		if content != nil {
			contentText = ast.Print(content)
		}
		snippet, err := fn(texts, contentText)
		if err != nil {
			return nil, err
		}
		return resolver.Statement{resolver.Raw(snippet)}, nil
	})
}

// RegisterSnippet binds name to a RegXL template. %content% is replaced by
// the trailing operand's source text and %1% through %9% by positional
// operands.
func (r *Registry) RegisterSnippet(name, template string) {
	r.RegisterFunc(name, func(args []string, content string) (string, error) {
		out := strings.ReplaceAll(template, "%content%", content)
		for i, arg := range args {
			out = strings.ReplaceAll(out, "%"+strconv.Itoa(i+1)+"%", arg)
		}
		return out, nil
	})
}

// Len returns the number of registered tokens.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.inner.Len()
}

func (r *Registry) resolverRegistry() *resolver.Registry {
	if r == nil {
		return nil
	}
	return r.inner
}

// Compile compiles src with no extensions.
func Compile(src string) (Pattern, error) {
	return CompileWith(src, nil)
}

// CompileWith compiles src against a registry of custom tokens.
func CompileWith(src string, reg *Registry) (Pattern, error) {
	res := driver.CompileSource("inline", src, driver.CompileOptions{
		Registry: reg.resolverRegistry(),
	})
	return patternFrom(res)
}

// MustCompile is Compile that panics on error, for package-level pattern
// variables.
func MustCompile(src string) Pattern {
	p, err := Compile(src)
	if err != nil {
		panic("regxl: " + err.Error())
	}
	return p
}

// Cache memoizes successful compilations for one registry. Failed compiles
// are never stored and re-report fresh diagnostics on every attempt. Safe for
// concurrent use.
type Cache struct {
	inner *driver.Cache
}

// NewCache creates a cache bound to reg; nil means no extensions.
func NewCache(reg *Registry) *Cache {
	return &Cache{inner: driver.NewCache(driver.CompileOptions{
		Registry: reg.resolverRegistry(),
	})}
}

// Compile returns the cached pattern for src or compiles and stores it.
func (c *Cache) Compile(src string) (Pattern, error) {
	return patternFrom(c.inner.Compile("inline", src))
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.inner.Len()
}

// Stats returns the cache's hit and miss counters.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.inner.Stats()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.inner.Purge()
}

func patternFrom(res *driver.CompileResult) (Pattern, error) {
	if res.OK {
		return Pattern{Source: res.Pattern.Source, Flags: res.Pattern.Flags.String()}, nil
	}

	d, ok := res.Bag.FirstError()
	if !ok {
		return Pattern{}, &Error{Kind: GenerationError, Code: "E0000", Message: "compilation failed"}
	}

	e := &Error{
		Kind:    kindFor(d.Code),
		Code:    d.Code.ID(),
		Message: d.Message,
	}
	if res.FileSet != nil {
		lc := res.FileSet.Position(d.Primary.File, d.Primary.Start)
		e.Pos = Position{Line: int(lc.Line), Col: int(lc.Col)}
	}
	for _, note := range d.Notes {
		e.Notes = append(e.Notes, note.Msg)
	}
	return Pattern{}, e
}

func kindFor(code diag.Code) ErrorKind {
	if code == diag.ResExpansionCycle {
		return CycleError
	}
	switch {
	case code >= 1000 && code < 2000:
		return LexError
	case code >= 2000 && code < 3000:
		return ParseError
	case code >= 3000 && code < 4000:
		return ResolutionError
	default:
		return GenerationError
	}
}
