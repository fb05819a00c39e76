package lexer

import (
	"regxl/internal/diag"
	"regxl/internal/source"
)

// Options configures a Lexer. Reporter may be nil; lexing continues either
// way and malformed input comes back as Invalid tokens.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
