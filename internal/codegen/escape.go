package codegen

import (
	"fmt"
	"strings"
)

// textMeta is the set of characters with special meaning outside a
// character class.
const textMeta = `\.+*?()[]{}|^$`

// escapeText renders a literal string safely outside character classes.
func escapeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		sb.WriteString(escapeRune(r, textMeta))
	}
	return sb.String()
}

// classMeta is the set of characters with special meaning inside a
// character class.
const classMeta = `\]^-[`

// escapeClassRune renders a single literal rune inside a character class.
func escapeClassRune(r rune) string {
	return escapeRune(r, classMeta)
}

func escapeRune(r rune, meta string) string {
	switch r {
	case '\n':
		return `\n`
	case '\t':
		return `\t`
	case '\r':
		return `\r`
	case 0:
		return `\x00`
	}
	if r < 0x20 {
		return fmt.Sprintf(`\x%02x`, r)
	}
	if r < 0x80 && strings.ContainsRune(meta, r) {
		return `\` + string(r)
	}
	return string(r)
}
