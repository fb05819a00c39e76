package main

import (
	"os"
	"path/filepath"
	"testing"

	"regxl/internal/driver"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "regxl.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "patterns"

[extensions]
htmlElement = "'<' #tagName(letter alphaNumeric*) '>' %content% '</' @tagName '>'"
`)

	man, ok, err := loadManifest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("manifest not found")
	}
	if man.Config.Package.Name != "patterns" {
		t.Errorf("unexpected package name %q", man.Config.Package.Name)
	}
	reg := man.registry()
	if reg.Len() != 1 {
		t.Fatalf("expected 1 extension, got %d", reg.Len())
	}
	if _, found := reg.Lookup("htmlElement"); !found {
		t.Error("htmlElement not registered")
	}
}

func TestFindManifestWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"p\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findManifest(nested)
	if err != nil || !ok {
		t.Fatalf("expected to find manifest, ok=%v err=%v", ok, err)
	}
	if path != filepath.Join(root, "regxl.toml") {
		t.Errorf("unexpected path %s", path)
	}
}

func TestManifestMissing(t *testing.T) {
	man, ok, err := loadManifest(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if ok || man != nil {
		t.Fatal("expected no manifest")
	}
	// nil manifest still yields usable defaults
	if man.registry() != nil {
		t.Error("nil manifest should have no registry")
	}
	if man.hash() != (driver.Digest{}) {
		t.Error("nil manifest should hash to zero")
	}
}

func TestManifestHashDependsOnExtensions(t *testing.T) {
	a := &manifest{Config: manifestConfig{Extensions: map[string]string{"x": "letter"}}}
	b := &manifest{Config: manifestConfig{Extensions: map[string]string{"x": "digit"}}}
	c := &manifest{Config: manifestConfig{Extensions: map[string]string{"x": "letter"}}}

	if a.hash() == b.hash() {
		t.Error("different templates must hash differently")
	}
	if a.hash() != c.hash() {
		t.Error("equal extension tables must hash equally")
	}
}
