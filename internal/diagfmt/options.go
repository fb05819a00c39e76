// Package diagfmt renders diagnostics, token streams, and syntax trees for
// the CLI in human-readable and JSON forms.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	// IncludePositions adds line/col to every location.
	IncludePositions bool
	// Max truncates the output, not the Bag.
	Max          int
	IncludeNotes bool
}
