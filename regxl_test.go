package regxl_test

import (
	"errors"
	"regexp"
	"testing"

	"regxl"
)

func mustCompile(t *testing.T, src string) regxl.Pattern {
	t.Helper()
	p, err := regxl.Compile(src)
	if err != nil {
		t.Fatalf("input %q: %v", src, err)
	}
	return p
}

func TestCompile(t *testing.T) {
	p := mustCompile(t, "start letter+ end with ignoreCase")
	if p.Source != `^\p{L}+$` || p.Flags != "giu" {
		t.Fatalf("unexpected pattern %v", p)
	}
	if p.String() != `/^\p{L}+$/giu` {
		t.Fatalf("unexpected display form %q", p.String())
	}
}

// Patterns that stay inside RE2 syntax must be loadable by regexp and match
// what the source reads like they should.
func TestCompiledPatternsMatch(t *testing.T) {
	cases := []struct {
		src     string
		match   []string
		reject  []string
	}{
		{
			src:    "digit 3x '-' digit 4x",
			match:  []string{"555-0199"},
			reject: []string{"55-0199", "555_0199"},
		},
		{
			src:    "start letter+ end",
			match:  []string{"hello", "héllo"},
			reject: []string{"hi there", "x1"},
		},
		{
			src:    "oneOf('a' to 'f' digit)+",
			match:  []string{"deadbeef", "1a2b"},
			reject: []string{"xyz"},
		},
		{
			src:    "'v' integer ('.' integer)?",
			match:  []string{"v1", "v1.12"},
			reject: []string{"v"},
		},
	}
	for _, c := range cases {
		p := mustCompile(t, c.src)
		re, err := regexp.Compile("^(?:" + p.Source + ")$")
		if err != nil {
			t.Errorf("input %q: pattern %q does not compile: %v", c.src, p.Source, err)
			continue
		}
		for _, s := range c.match {
			if !re.MatchString(s) {
				t.Errorf("input %q: pattern %q should match %q", c.src, p.Source, s)
			}
		}
		for _, s := range c.reject {
			if re.MatchString(s) {
				t.Errorf("input %q: pattern %q should not match %q", c.src, p.Source, s)
			}
		}
	}
}

func TestCompileWithExtension(t *testing.T) {
	reg := regxl.NewRegistry()
	reg.RegisterFunc("htmlElement", func(args []string, content string) (string, error) {
		return "'<' #tagName(letter alphaNumeric*) '>' " + content + " '</' @tagName '>'", nil
	})

	p, err := regxl.CompileWith("htmlElement(anything fewest 0+)", reg)
	if err != nil {
		t.Fatal(err)
	}
	want := `<(?<tagName>\p{L}[\p{L}\p{N}]*)>[\s\S]*?</\k<tagName>>`
	if p.Source != want {
		t.Fatalf("pattern mismatch:\n got %q\nwant %q", p.Source, want)
	}
}

func TestRegisterSnippet(t *testing.T) {
	reg := regxl.NewRegistry()
	reg.RegisterSnippet("wrapped", "%1% %content% %1%")

	p, err := regxl.CompileWith("wrapped('\"', letter+)", reg)
	if err != nil {
		t.Fatal(err)
	}
	if p.Source != `"\p{L}+"` {
		t.Fatalf("unexpected pattern %q", p.Source)
	}
}

func TestErrorKinds(t *testing.T) {
	cycleReg := regxl.NewRegistry()
	cycleReg.RegisterSnippet("a", "b")
	cycleReg.RegisterSnippet("b", "a")

	cases := []struct {
		src  string
		reg  *regxl.Registry
		kind regxl.ErrorKind
	}{
		{"'unterminated", nil, regxl.LexError},
		{"letter or", nil, regxl.ParseError},
		{"mystery", nil, regxl.ResolutionError},
		{"a", cycleReg, regxl.CycleError},
		{"group(letter) @2", nil, regxl.GenerationError},
	}
	for _, c := range cases {
		_, err := regxl.CompileWith(c.src, c.reg)
		if err == nil {
			t.Errorf("input %q: expected error", c.src)
			continue
		}
		var cerr *regxl.Error
		if !errors.As(err, &cerr) {
			t.Errorf("input %q: expected *regxl.Error, got %T", c.src, err)
			continue
		}
		if cerr.Kind != c.kind {
			t.Errorf("input %q: expected %v, got %v (%s)", c.src, c.kind, cerr.Kind, cerr.Message)
		}
	}
}

func TestCycleErrorCarriesChain(t *testing.T) {
	reg := regxl.NewRegistry()
	reg.RegisterSnippet("a", "b")
	reg.RegisterSnippet("b", "a")

	_, err := regxl.CompileWith("a", reg)
	var cerr *regxl.Error
	if !errors.As(err, &cerr) || cerr.Kind != regxl.CycleError {
		t.Fatalf("expected cycle error, got %v", err)
	}
	if len(cerr.Notes) != 3 {
		t.Fatalf("expected chain a b a, got %v", cerr.Notes)
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := regxl.Compile("letter\nor")
	var cerr *regxl.Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *regxl.Error, got %v", err)
	}
	if cerr.Pos.Line != 2 {
		t.Fatalf("expected error on line 2, got %+v", cerr.Pos)
	}
}

func TestUnsupportedModifierRejected(t *testing.T) {
	for _, mod := range []string{"sticky", "global", "possessive"} {
		_, err := regxl.Compile("letter with " + mod)
		var cerr *regxl.Error
		if !errors.As(err, &cerr) || cerr.Kind != regxl.ParseError {
			t.Errorf("modifier %q: expected a parse error, got %v", mod, err)
		}
	}
}

func TestCacheReuse(t *testing.T) {
	c := regxl.NewCache(nil)

	first, err := c.Compile("letter+")
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compile("letter+")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("expected cached pattern, got %v vs %v", first, second)
	}
	hits, misses := c.Stats()
	if hits != 1 || misses != 1 {
		t.Fatalf("expected 1 hit / 1 miss, got %d / %d", hits, misses)
	}

	if _, err := c.Compile("letter or"); err == nil {
		t.Fatal("expected error")
	}
	if c.Len() != 1 {
		t.Fatalf("failed compile must not be cached, got %d entries", c.Len())
	}
}

func TestMustCompilePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	regxl.MustCompile("letter or")
}
