package fuzztests

import "testing"

// corpusSeeds covers every construct once so fuzzing starts from syntactically
// interesting inputs rather than noise.
var corpusSeeds = []string{
	"'abc'",
	`'it\'s a \n test \x41 \u{1F600}'`,
	"letter digit whitespace",
	"not letter",
	"'a' to 'z'",
	"not 'a' to 'z'",
	"oneOf('a' 'b' '0' to '9' letter)",
	"not oneOf('x')",
	"letter? letter?? letter* letter+",
	"letter 3x digit 2-5 letter fewest 3+",
	"optional many letter",
	"maybe digit",
	"3*(letter)",
	"group(letter) (digit) #tag(letter) @tag @1",
	"start letter+ end",
	"startLine endLine alphaNumericBoundary",
	"followedBy(digit) not precededBy(letter)",
	"htmlElement('div', letter+)",
	"letter with ignoreCase",
	"letter with (binary indices)",
	"letter with sticky",
	"'unterminated",
	"((((((",
	"or or or",
	"@ # ' \\",
	"\x00\xff\xfe",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range corpusSeeds {
		f.Add([]byte(seed))
	}
}
