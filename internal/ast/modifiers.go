package ast

// Modifiers is the parsed trailing 'with (...)' clause.
// The zero value is the default Unicode mode.
type Modifiers struct {
	IgnoreCase bool
	Binary     bool
	Indices    bool
}
