// Package fuzztests houses Go fuzz harnesses that exercise the RegXL
// compilation pipeline (source -> lexer -> parser -> resolver -> generator).
// Its goal is to smoke test robustness and guard against panics on arbitrary
// inputs.
package fuzztests
