package ast_test

import (
	"testing"

	"regxl/internal/ast"
	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/parser"
	"regxl/internal/source"
)

// Printed trees must re-parse to the same printed form.
func TestPrintRoundTrip(t *testing.T) {
	cases := []string{
		"'abc'",
		`'it\'s'`,
		"not letter",
		"'a' to 'z'",
		"not oneOf('a' '0' to '9' digit)",
		"group(letter+) (digit) #tag(letter)",
		"@tag or @1",
		"start letter 2-5 end",
		"not followedBy(digit 3x)",
		"letter fewest 2-5",
		"alphaNumericBoundary 'x'?? 'y'?",
		"htmlElement('a', letter+)",
	}
	for _, input := range cases {
		first := ast.Print(parseOne(t, input))
		second := ast.Print(parseOne(t, first))
		if first != second {
			t.Errorf("input %q: print not stable:\n first %q\nsecond %q", input, first, second)
		}
	}
}

func parseOne(t *testing.T, input string) ast.Node {
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
	return res.Root
}
