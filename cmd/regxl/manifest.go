package main

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"regxl/internal/ast"
	"regxl/internal/driver"
	"regxl/internal/resolver"
)

type manifestConfig struct {
	Package    packageConfig     `toml:"package"`
	Extensions map[string]string `toml:"extensions"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

// findManifest walks upward from startDir looking for regxl.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "regxl.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}, true, nil
}

// registry builds the extension registry declared by the manifest. Each
// entry's value is a RegXL template; %content% and %1%..%9% are replaced by
// the call's operand texts.
func (m *manifest) registry() *resolver.Registry {
	if m == nil || len(m.Config.Extensions) == 0 {
		return nil
	}
	reg := resolver.NewRegistry()
	for name, template := range m.Config.Extensions {
		reg.Register(name, snippetExpander(template))
	}
	return reg
}

func snippetExpander(template string) resolver.Expander {
	return func(args []ast.Node, content ast.Node) (resolver.Statement, error) {
		out := template
		if content != nil {
			out = strings.ReplaceAll(out, "%content%", ast.Print(content))
		} else {
			out = strings.ReplaceAll(out, "%content%", "")
		}
		for i, arg := range args {
			out = strings.ReplaceAll(out, "%"+strconv.Itoa(i+1)+"%", ast.Print(arg))
		}
		return resolver.Statement{resolver.Raw(out)}, nil
	}
}

// hash digests the extension table so manifest edits invalidate disk cache
// entries. Entries are folded in sorted order for determinism.
func (m *manifest) hash() driver.Digest {
	var d driver.Digest
	if m == nil || len(m.Config.Extensions) == 0 {
		return d
	}
	names := make([]string, 0, len(m.Config.Extensions))
	for name := range m.Config.Extensions {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte{0})
		h.Write([]byte(m.Config.Extensions[name]))
		h.Write([]byte{0})
	}
	copy(d[:], h.Sum(nil))
	return d
}
