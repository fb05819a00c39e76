package codegen_test

import (
	"testing"

	"regxl/internal/ast"
	"regxl/internal/codegen"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/source"
)

func generate(t *testing.T, input string) (codegen.Pattern, bool, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rgx", []byte(input))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	res := parser.Parse(lx, parser.Options{Reporter: rep})
	if !res.OK {
		t.Fatalf("input %q: parse failed: %+v", input, bag.Items())
	}
	pat, ok := codegen.Generate(res.Root, res.Mods, codegen.Options{Reporter: rep})
	return pat, ok, bag
}

func mustGenerate(t *testing.T, input string) codegen.Pattern {
	t.Helper()
	pat, ok, bag := generate(t, input)
	if !ok {
		t.Fatalf("input %q: generate failed: %+v", input, bag.Items())
	}
	return pat
}

func expectGenError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	_, ok, bag := generate(t, input)
	if ok {
		t.Fatalf("input %q: expected generation failure", input)
	}
	d, found := bag.FirstError()
	if !found {
		t.Fatalf("input %q: failed without diagnostics", input)
	}
	if d.Code != code {
		t.Fatalf("input %q: expected %v, got %v (%s)", input, code, d.Code, d.Message)
	}
}

func TestGenerateLowering(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"'abc'", `abc`},
		{"'a.c+'", `a\.c\+`},
		{"'tab\\there'", `tab\there`},
		{"letter", `\p{L}`},
		{"not letter", `\P{L}`},
		{"upperLetter lowerLetter", `\p{Lu}\p{Ll}`},
		{"digit", `\d`},
		{"not digit", `\D`},
		{"alphaNumeric", `[\p{L}\p{N}]`},
		{"ascii", `[\x00-\x7f]`},
		{"emoji", `\p{Extended_Pictographic}`},
		{"whitespace", `\p{White_Space}`},
		{"tabSpace", `[ \t]`},
		{"newline", `\n`},
		{"null", `\x00`},
		{"any", `.`},
		{"anything", `[\s\S]`},
		{"numeric", `\d+(?:\.\d+)?`},
		{"integer", `\d+`},
		{"decimal", `\d+\.\d+`},
		{"'a' to 'z'", `[a-z]`},
		{"not 'a' to 'z'", `[^a-z]`},
		{"not 'x'", `[^x]`},
		{"oneOf('a' 'b' '0' to '9' letter)", `[ab0-9\p{L}]`},
		{"not oneOf('-' ']')", `[^\-\]]`},
		{"start letter+ end", `^\p{L}+$`},
		{"startLine", `(?:^|(?<=\n))`},
		{"not startLine", `(?<=[^\n])`},
		{"endLine", `(?:$|(?=\n))`},
		{"alphaNumericBoundary", `\b`},
		{"not alphaNumericBoundary", `\B`},
		{"not start", `(?<=[\s\S])`},
		{"not end", `(?=[\s\S])`},
		{"followedBy(digit)", `(?=\d)`},
		{"not followedBy(digit)", `(?!\d)`},
		{"precededBy('-')", `(?<=-)`},
		{"not precededBy(letter)", `(?<!\p{L})`},
		{"letter or digit or '_'", `\p{L}|\d|_`},
		{"group(letter) (digit) #tag(letter)", `(\p{L})(?:\d)(?<tag>\p{L})`},
		{"#tag(letter) @tag", `(?<tag>\p{L})\k<tag>`},
		{"group(letter) @1", `(\p{L})\1`},
	}
	for _, c := range cases {
		pat := mustGenerate(t, c.input)
		if pat.Source != c.want {
			t.Errorf("input %q:\n got %q\nwant %q", c.input, pat.Source, c.want)
		}
	}
}

func TestGenerateQuantifiers(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"letter?", `\p{L}?`},
		{"letter??", `\p{L}??`},
		{"letter*", `\p{L}*`},
		{"letter+", `\p{L}+`},
		{"letter 4x", `\p{L}{4}`},
		{"letter 3+", `\p{L}{3,}`},
		{"letter 2-5", `\p{L}{2,5}`},
		{"letter fewest 2-5", `\p{L}{2,5}?`},
		{"maybe letter", `\p{L}??`},
		{"optional many letter", `\p{L}*`},
		{"3*(digit)", `(?:\d){3}`},
		{"'ab'+", `(?:ab)+`},
		{"numeric+", `(?:\d+(?:\.\d+)?)+`},
		{"integer 2x", `(?:\d+){2}`},
		{"oneOf('a' 'b')*", `[ab]*`},
		{"group('-' digit)+", `(-\d)+`},
	}
	for _, c := range cases {
		pat := mustGenerate(t, c.input)
		if pat.Source != c.want {
			t.Errorf("input %q:\n got %q\nwant %q", c.input, pat.Source, c.want)
		}
	}
}

func TestGenerateBinaryMode(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"letter with binary", `[A-Za-z]`},
		{"not letter with binary", `[^A-Za-z]`},
		{"alphaNumeric with binary", `[A-Za-z0-9]`},
		{"whitespace with binary", `[ \t\r\n\v\f]`},
		{"oneOf(letter digit) with binary", `[A-Za-z\d]`},
	}
	for _, c := range cases {
		pat := mustGenerate(t, c.input)
		if pat.Source != c.want {
			t.Errorf("input %q:\n got %q\nwant %q", c.input, pat.Source, c.want)
		}
		if pat.Flags.Has(codegen.FlagUnicode) {
			t.Errorf("input %q: binary pattern kept the unicode flag", c.input)
		}
	}
}

func TestGenerateFlags(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"letter", "gu"},
		{"letter with ignoreCase", "giu"},
		{"letter with binary", "g"},
		{"letter with indices", "dgu"},
		{"letter with (indices ignoreCase binary)", "dgi"},
	}
	for _, c := range cases {
		pat := mustGenerate(t, c.input)
		if got := pat.Flags.String(); got != c.want {
			t.Errorf("input %q: flags %q, want %q", c.input, got, c.want)
		}
	}
}

func TestGenerateErrors(t *testing.T) {
	expectGenError(t, "emoji with binary", diag.GenUnsupportedInBinary)
	expectGenError(t, "oneOf(emoji) with binary", diag.GenUnsupportedInBinary)
	expectGenError(t, "@1 group(letter)", diag.GenDanglingBackref)
	expectGenError(t, "@tag #tag(letter)", diag.GenDanglingBackref)
	expectGenError(t, "group(letter) @2", diag.GenDanglingBackref)
	expectGenError(t, "#a(letter) #a(digit)", diag.GenDuplicateGroupName)
}

func TestGenerateUnresolvedCall(t *testing.T) {
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}
	call := &ast.CustomCall{Name: "mystery"}

	_, ok := codegen.Generate(call, ast.Modifiers{}, codegen.Options{Reporter: rep})
	if ok {
		t.Fatal("expected generation failure")
	}
	d, found := bag.FirstError()
	if !found || d.Code != diag.GenUnresolvedCall {
		t.Fatalf("expected GenUnresolvedCall, got %+v", d)
	}
}

func TestPatternString(t *testing.T) {
	pat := mustGenerate(t, "letter+ with ignoreCase")
	if got := pat.String(); got != `/\p{L}+/giu` {
		t.Fatalf("unexpected display form %q", got)
	}
}

func TestNumberedGroupsCountNamedOnes(t *testing.T) {
	pat := mustGenerate(t, "#a(letter) group(digit) @2")
	if pat.Source != `(?<a>\p{L})(\d)\2` {
		t.Fatalf("unexpected pattern %q", pat.Source)
	}
}
