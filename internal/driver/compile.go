// Package driver wires the compilation phases together: lex, parse, resolve,
// generate. It owns the pattern caches and the parallel directory build.
package driver

import (
	"regxl/internal/codegen"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/resolver"
	"regxl/internal/source"
)

// DefaultMaxDiagnostics bounds diagnostic collection when the caller does not
// set a limit.
const DefaultMaxDiagnostics = 64

// CompileOptions configures one compilation.
type CompileOptions struct {
	// Registry provides custom token expanders; nil means no extensions.
	Registry *resolver.Registry
	// MaxDiagnostics caps the bag; zero means DefaultMaxDiagnostics.
	MaxDiagnostics int
}

// CompileResult carries the compiled pattern together with everything needed
// to render diagnostics.
type CompileResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Pattern codegen.Pattern
	Bag     *diag.Bag
	OK      bool

	// TokensLexed counts the tokens scanned for this result. Zero on a
	// cache hit, which is how tests observe that hits skip the pipeline.
	TokensLexed uint64
}

// CompileSource runs the full pipeline over an in-memory buffer. The returned
// result always has a usable Bag; Pattern is meaningful only when OK is true.
func CompileSource(name, src string, opts CompileOptions) *CompileResult {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	id := fs.AddVirtual(name, []byte(src))
	return compile(fs, id, opts.Registry, maxDiags)
}

// CompileFile loads path and runs the full pipeline over it.
func CompileFile(path string, opts CompileOptions) (*CompileResult, error) {
	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}

	fs := source.NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return compile(fs, id, opts.Registry, maxDiags), nil
}

func compile(fs *source.FileSet, id source.FileID, reg *resolver.Registry, maxDiags int) *CompileResult {
	bag := diag.NewBag(maxDiags)
	rep := diag.BagReporter{Bag: bag}
	res := &CompileResult{FileSet: fs, FileID: id, Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	parsed := parser.Parse(lx, parser.Options{Reporter: rep})
	res.TokensLexed = lx.TokenCount()
	if !parsed.OK {
		return res
	}

	resolved, ok := resolver.Resolve(parsed.Root, resolver.Options{
		Registry: reg,
		Reporter: rep,
		Files:    fs,
	})
	if !ok {
		return res
	}

	pattern, ok := codegen.Generate(resolved, parsed.Mods, codegen.Options{Reporter: rep})
	if !ok {
		return res
	}

	res.Pattern = pattern
	res.OK = true
	return res
}
