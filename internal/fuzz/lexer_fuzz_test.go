package fuzztests

import (
	"testing"

	"regxl/internal/diag"
	"regxl/internal/lexer"
	"regxl/internal/source"
	"regxl/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.rgx", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		for {
			tok := lx.Next()
			if tok.Span.End < tok.Span.Start {
				t.Fatalf("inverted span %v for %v", tok.Span, tok.Kind)
			}
			if tok.Kind == token.EOF {
				break
			}
		}
	})
}
