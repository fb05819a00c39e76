package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"regxl/internal/diag"
	"regxl/internal/source"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	noteColor = color.New(color.FgBlue)
)

// Pretty renders diagnostics one per block:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//	    <source line>
//	    ^~~~ underline over the primary span
//
// followed by indented notes. Callers should bag.Sort() first for stable
// output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	prev := color.NoColor
	color.NoColor = !opts.Color
	defer func() { color.NoColor = prev }()

	for _, d := range bag.Items() {
		printHeader(w, fs, d)
		printContext(w, fs, d.Primary)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				fmt.Fprintf(w, "    %s %s\n", noteColor.Sprint("note:"), note.Msg)
			}
		}
	}
}

func printHeader(w io.Writer, fs *source.FileSet, d diag.Diagnostic) {
	sev := d.Severity.String()
	switch d.Severity {
	case diag.SevError:
		sev = errColor.Sprint(sev)
	case diag.SevWarning:
		sev = warnColor.Sprint(sev)
	default:
		sev = infoColor.Sprint(sev)
	}

	path := "<unknown>"
	lc := source.LineCol{Line: 1, Col: 1}
	if f := fs.Get(d.Primary.File); f != nil {
		path = f.Path
		lc = fs.Position(d.Primary.File, d.Primary.Start)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, lc.Line, lc.Col, sev, d.Code.ID(), d.Message)
}

// printContext shows the offending source line with an underline.
func printContext(w io.Writer, fs *source.FileSet, sp source.Span) {
	f := fs.Get(sp.File)
	if f == nil || int(sp.Start) > len(f.Content) {
		return
	}

	lineStart := int(sp.Start)
	for lineStart > 0 && f.Content[lineStart-1] != '\n' {
		lineStart--
	}
	lineEnd := int(sp.Start)
	for lineEnd < len(f.Content) && f.Content[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(f.Content[lineStart:lineEnd])
	fmt.Fprintf(w, "    %s\n", line)

	col := int(sp.Start) - lineStart
	width := int(sp.End) - int(sp.Start)
	if width < 1 {
		width = 1
	}
	if col+width > len(line)+1 {
		width = len(line) + 1 - col
		if width < 1 {
			width = 1
		}
	}
	marker := "^" + strings.Repeat("~", width-1)
	fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", col), errColor.Sprint(marker))
}
