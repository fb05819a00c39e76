package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		want  Kind
		ok    bool
	}{
		{"not", KwNot, true},
		{"to", KwTo, true},
		{"or", KwOr, true},
		{"with", KwWith, true},
		{"group", KwGroup, true},
		{"oneOf", KwOneOf, true},
		{"optional", KwOptional, true},
		{"maybe", KwMaybe, true},
		{"many", KwMany, true},
		{"asMany", KwAsMany, true},
		{"fewest", KwFewest, true},
		// builtin names stay identifiers
		{"letter", Invalid, false},
		{"digit", Invalid, false},
		{"followedBy", Invalid, false},
		// keywords are case-sensitive
		{"Not", Invalid, false},
		{"oneof", Invalid, false},
	}

	for _, c := range cases {
		got, ok := LookupKeyword(c.ident)
		if ok != c.ok {
			t.Errorf("LookupKeyword(%q): expected ok=%v, got %v", c.ident, c.ok, ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("LookupKeyword(%q): expected %v, got %v", c.ident, c.want, got)
		}
	}
}

func TestTokenClassifiers(t *testing.T) {
	if !(Token{Kind: KwOr}).IsKeyword() {
		t.Error("expected or to be a keyword")
	}
	if (Token{Kind: Ident, Text: "letter"}).IsKeyword() {
		t.Error("letter must not be a keyword")
	}
	if !(Token{Kind: HashName, Text: "tag"}).IsSigil() {
		t.Error("expected #tag to be a sigil")
	}
	if !(Token{Kind: QuestionQuestion}).IsPunct() {
		t.Error("expected ?? to be punctuation")
	}
	if !(Token{Kind: Ident}).IsIdent() {
		t.Error("expected ident")
	}
}
