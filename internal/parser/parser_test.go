package parser_test

import (
	"testing"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/source"
)

func parseSource(t *testing.T, input string) (parser.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rgx", []byte(input))
	bag := diag.NewBag(16)
	rep := diag.BagReporter{Bag: bag}

	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: rep})
	return parser.Parse(lx, parser.Options{Reporter: rep}), bag
}

func mustParse(t *testing.T, input string) parser.Result {
	t.Helper()
	res, bag := parseSource(t, input)
	if !res.OK {
		t.Fatalf("input %q: parse failed: %+v", input, bag.Items())
	}
	return res
}

func expectParseError(t *testing.T, input string, code diag.Code) {
	t.Helper()
	res, bag := parseSource(t, input)
	if res.OK {
		t.Fatalf("input %q: expected parse failure", input)
	}
	d, ok := bag.FirstError()
	if !ok {
		t.Fatalf("input %q: parse failed without diagnostics", input)
	}
	if d.Code != code {
		t.Fatalf("input %q: expected %v, got %v (%s)", input, code, d.Code, d.Message)
	}
}

func TestParseSequenceAndText(t *testing.T) {
	res := mustParse(t, "'abc' letter digit")
	seq, ok := res.Root.(*ast.Seq)
	if !ok {
		t.Fatalf("expected Seq, got %T", res.Root)
	}
	if len(seq.Parts) != 3 {
		t.Fatalf("expected 3 parts, got %d", len(seq.Parts))
	}
	if txt, ok := seq.Parts[0].(*ast.Text); !ok || txt.Value != "abc" {
		t.Fatalf("expected Text 'abc', got %#v", seq.Parts[0])
	}
	if cls, ok := seq.Parts[1].(*ast.Class); !ok || cls.Name != ast.ClassLetter {
		t.Fatalf("expected letter class, got %#v", seq.Parts[1])
	}
}

func TestParseAlternationLeftAssoc(t *testing.T) {
	res := mustParse(t, "letter or digit or whitespace")
	alt, ok := res.Root.(*ast.Alt)
	if !ok {
		t.Fatalf("expected Alt, got %T", res.Root)
	}
	if _, ok := alt.Left.(*ast.Alt); !ok {
		t.Fatalf("expected left-assoc chain, left is %T", alt.Left)
	}
}

func TestParseQuantifiers(t *testing.T) {
	cases := []struct {
		input       string
		min, max    int
		greedy      bool
	}{
		{"letter?", 0, 1, true},
		{"letter??", 0, 1, false},
		{"letter*", 0, ast.Unbounded, true},
		{"letter+", 1, ast.Unbounded, true},
		{"letter 4x", 4, 4, true},
		{"letter 3+", 3, ast.Unbounded, true},
		{"letter 2-5", 2, 5, true},
		{"letter fewest 3+", 3, ast.Unbounded, false},
		{"letter fewest 2-5", 2, 5, false},
		{"optional letter", 0, 1, true},
		{"maybe letter", 0, 1, false},
		{"many letter", 1, ast.Unbounded, true},
		{"asMany letter", 1, ast.Unbounded, true},
		{"optional many letter", 0, ast.Unbounded, true},
		{"optional asMany letter", 0, ast.Unbounded, true},
		{"3*(letter)", 3, 3, true},
	}
	for _, c := range cases {
		res := mustParse(t, c.input)
		q, ok := res.Root.(*ast.Quant)
		if !ok {
			t.Errorf("input %q: expected Quant, got %T", c.input, res.Root)
			continue
		}
		if q.Min != c.min || q.Max != c.max || q.Greedy != c.greedy {
			t.Errorf("input %q: expected {%d,%d,greedy=%v}, got {%d,%d,greedy=%v}",
				c.input, c.min, c.max, c.greedy, q.Min, q.Max, q.Greedy)
		}
	}
}

func TestQuantifierBoundOrder(t *testing.T) {
	expectParseError(t, "letter 5-2", diag.SynBadBound)
}

func TestDanglingQuantifier(t *testing.T) {
	expectParseError(t, "3+ letter", diag.SynDanglingQuantifier)
}

func TestFewestRequiresBound(t *testing.T) {
	expectParseError(t, "letter fewest digit", diag.SynFewestWithoutBound)
	expectParseError(t, "letter fewest ?", diag.SynFewestWithoutBound)
	expectParseError(t, "letter fewest ??", diag.SynFewestWithoutBound)
	expectParseError(t, "letter fewest *", diag.SynFewestWithoutBound)
	expectParseError(t, "letter fewest +", diag.SynFewestWithoutBound)
	expectParseError(t, "letter fewest 3*(digit)", diag.SynFewestWithoutBound)
}

func TestParseRange(t *testing.T) {
	res := mustParse(t, "'a' to 'z'")
	r, ok := res.Root.(*ast.Range)
	if !ok {
		t.Fatalf("expected Range, got %T", res.Root)
	}
	if r.Lo != 'a' || r.Hi != 'z' || r.Negated {
		t.Fatalf("unexpected range %#v", r)
	}
}

func TestParseRangeErrors(t *testing.T) {
	expectParseError(t, "'z' to 'a'", diag.SynBadRange)
	expectParseError(t, "'ab' to 'z'", diag.SynMultiCharInRange)
	expectParseError(t, "'a' to letter", diag.SynExpectQuoted)
}

func TestNotNegatesEnclosingClassOfRange(t *testing.T) {
	res := mustParse(t, "not 'a' to 'z'")
	r, ok := res.Root.(*ast.Range)
	if !ok {
		t.Fatalf("expected Range, got %T", res.Root)
	}
	if !r.Negated || r.Lo != 'a' || r.Hi != 'z' {
		t.Fatalf("expected negated class with original bounds, got %#v", r)
	}
}

func TestParseOneOf(t *testing.T) {
	res := mustParse(t, "oneOf('a' 'b' '0' to '9' letter)")
	set, ok := res.Root.(*ast.ClassSet)
	if !ok {
		t.Fatalf("expected ClassSet, got %T", res.Root)
	}
	if len(set.Members) != 4 {
		t.Fatalf("expected 4 members, got %d", len(set.Members))
	}
	if _, ok := set.Members[2].(*ast.Range); !ok {
		t.Fatalf("expected member 2 to be a Range, got %T", set.Members[2])
	}
}

func TestParseOneOfErrors(t *testing.T) {
	expectParseError(t, "oneOf()", diag.SynEmptyClass)
	expectParseError(t, "oneOf(anything)", diag.SynBadClassMember)
	expectParseError(t, "oneOf('ab')", diag.SynMultiCharInClass)
}

func TestNegation(t *testing.T) {
	res := mustParse(t, "not letter")
	cls, ok := res.Root.(*ast.Class)
	if !ok || !cls.Negated {
		t.Fatalf("expected negated class, got %#v", res.Root)
	}

	res = mustParse(t, "not oneOf('a' 'b')")
	set, ok := res.Root.(*ast.ClassSet)
	if !ok || !set.Negated {
		t.Fatalf("expected negated class set, got %#v", res.Root)
	}

	res = mustParse(t, "not 'x'")
	set, ok = res.Root.(*ast.ClassSet)
	if !ok || !set.Negated || len(set.Members) != 1 {
		t.Fatalf("expected single-member negated class, got %#v", res.Root)
	}
}

func TestNegationRejected(t *testing.T) {
	expectParseError(t, "not anything", diag.SynCannotNegate)
	expectParseError(t, "not any", diag.SynCannotNegate)
	expectParseError(t, "not numeric", diag.SynCannotNegate)
	expectParseError(t, "not 'abc'", diag.SynCannotNegate)
}

func TestParseGroups(t *testing.T) {
	res := mustParse(t, "group(letter) (digit) #tag(letter)")
	seq := res.Root.(*ast.Seq)

	g0 := seq.Parts[0].(*ast.Group)
	if g0.Kind != ast.GroupCapturing {
		t.Errorf("expected capturing group, got %v", g0.Kind)
	}
	g1 := seq.Parts[1].(*ast.Group)
	if g1.Kind != ast.GroupNonCapturing {
		t.Errorf("expected non-capturing group, got %v", g1.Kind)
	}
	g2 := seq.Parts[2].(*ast.Group)
	if g2.Kind != ast.GroupNamed || g2.Name != "tag" {
		t.Errorf("expected named group 'tag', got %v %q", g2.Kind, g2.Name)
	}
}

func TestParseBackrefs(t *testing.T) {
	res := mustParse(t, "#tag(letter) @tag @1")
	seq := res.Root.(*ast.Seq)

	byName := seq.Parts[1].(*ast.Backref)
	if byName.Name != "tag" || byName.Index != 0 {
		t.Errorf("unexpected named backref %#v", byName)
	}
	byIdx := seq.Parts[2].(*ast.Backref)
	if byIdx.Index != 1 || byIdx.Name != "" {
		t.Errorf("unexpected numeric backref %#v", byIdx)
	}
}

func TestParseAssertions(t *testing.T) {
	res := mustParse(t, "start 'a' end")
	seq := res.Root.(*ast.Seq)
	if a, ok := seq.Parts[0].(*ast.Assertion); !ok || a.Op != ast.AssertStart {
		t.Fatalf("expected start assertion, got %#v", seq.Parts[0])
	}

	res = mustParse(t, "not followedBy(digit)")
	a, ok := res.Root.(*ast.Assertion)
	if !ok || a.Op != ast.AssertFollowedBy || !a.Negated || a.Body == nil {
		t.Fatalf("expected negated lookahead with body, got %#v", res.Root)
	}
}

func TestAssertionsNotQuantifiable(t *testing.T) {
	expectParseError(t, "start?", diag.SynQuantifierOnAssertion)
	expectParseError(t, "optional end", diag.SynQuantifierOnAssertion)
}

func TestParseCustomCall(t *testing.T) {
	res := mustParse(t, "htmlElement('My Page Title')")
	call, ok := res.Root.(*ast.CustomCall)
	if !ok {
		t.Fatalf("expected CustomCall, got %T", res.Root)
	}
	if call.Name != "htmlElement" || len(call.Args) != 1 || call.Content == nil {
		t.Fatalf("unexpected call %#v", call)
	}
	if txt, ok := call.Content.(*ast.Text); !ok || txt.Value != "My Page Title" {
		t.Fatalf("unexpected content %#v", call.Content)
	}

	// bare name, no arguments
	res = mustParse(t, "separator")
	call = res.Root.(*ast.CustomCall)
	if call.Name != "separator" || call.Content != nil || len(call.Args) != 0 {
		t.Fatalf("unexpected bare call %#v", call)
	}
}

func TestParseModifiers(t *testing.T) {
	res := mustParse(t, "letter with ignoreCase")
	if !res.Mods.IgnoreCase || res.Mods.Binary || res.Mods.Indices {
		t.Fatalf("unexpected mods %+v", res.Mods)
	}

	res = mustParse(t, "letter with (binary indices)")
	if !res.Mods.Binary || !res.Mods.Indices || res.Mods.IgnoreCase {
		t.Fatalf("unexpected mods %+v", res.Mods)
	}
}

func TestModifierErrors(t *testing.T) {
	expectParseError(t, "letter with sticky", diag.SynUnsupportedModifier)
	expectParseError(t, "letter with (global)", diag.SynUnsupportedModifier)
	expectParseError(t, "letter with shiny", diag.SynUnknownModifier)
}

func TestStructuralErrors(t *testing.T) {
	expectParseError(t, "(letter", diag.SynUnclosedParen)
	expectParseError(t, "letter or", diag.SynExpectExpression)
	expectParseError(t, "letter letter)", diag.SynTrailingInput)
	expectParseError(t, "group letter", diag.SynExpectGroupBody)
}

func TestPrefixMultiplierInSequence(t *testing.T) {
	// number belongs to the next part, not the preceding atom
	res := mustParse(t, "letter 3*(digit)")
	seq, ok := res.Root.(*ast.Seq)
	if !ok {
		t.Fatalf("expected Seq, got %T", res.Root)
	}
	q, ok := seq.Parts[1].(*ast.Quant)
	if !ok || q.Min != 3 || q.Max != 3 {
		t.Fatalf("expected exact-3 quantifier, got %#v", seq.Parts[1])
	}
	if _, ok := q.Body.(*ast.Group); !ok {
		t.Fatalf("expected group body, got %T", q.Body)
	}
}
