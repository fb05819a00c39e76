package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"regxl/internal/codegen"
	"regxl/internal/diag"
	"regxl/internal/resolver"
	"regxl/internal/source"
)

// BuildOptions configures a parallel directory build.
type BuildOptions struct {
	Registry       *resolver.Registry
	MaxDiagnostics int
	// Jobs caps worker goroutines; zero means GOMAXPROCS.
	Jobs int
	// Disk, when set, is consulted before compiling and updated after.
	Disk *DiskCache
	// ManifestHash folds the extension manifest into disk cache keys.
	ManifestHash Digest
}

// BuildResult is the outcome for one file in a directory build.
type BuildResult struct {
	Path    string
	FileSet *source.FileSet
	Pattern codegen.Pattern
	Bag     *diag.Bag
	OK      bool
	Cached  bool
}

// listPatternFiles returns the sorted list of *.rgx files under dir.
func listPatternFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".rgx") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// deterministic order
	sort.Strings(files)
	return files, nil
}

// BuildDir compiles every *.rgx file under dir in parallel. Each worker owns
// its FileSet, so no compilation state is shared across goroutines; results
// land at per-file indexes and need no locking.
func BuildDir(ctx context.Context, dir string, opts BuildOptions) ([]BuildResult, error) {
	files, err := listPatternFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	maxDiags := opts.MaxDiagnostics
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiagnostics
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]BuildResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = buildOne(path, maxDiags, opts)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func buildOne(path string, maxDiags int, opts BuildOptions) BuildResult {
	content, err := os.ReadFile(path)
	if err != nil {
		bag := diag.NewBag(maxDiags)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.UnknownCode,
			Message:  "failed to load file: " + err.Error(),
		})
		return BuildResult{Path: path, FileSet: source.NewFileSet(), Bag: bag}
	}

	key := SourceDigest(content, opts.ManifestHash)
	if pattern, hit, err := opts.Disk.Get(key); err == nil && hit {
		return BuildResult{Path: path, Pattern: pattern, OK: true, Cached: true}
	}

	res := CompileSource(path, string(content), CompileOptions{
		Registry:       opts.Registry,
		MaxDiagnostics: maxDiags,
	})
	out := BuildResult{Path: path, FileSet: res.FileSet, Pattern: res.Pattern, Bag: res.Bag, OK: res.OK}
	if res.OK {
		// cache write failures do not fail the build
		_ = opts.Disk.Put(key, string(content), res.Pattern)
	}
	return out
}
