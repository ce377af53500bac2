package sexpr

import "fmt"

// Position tracks a location in source text for error reporting.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// String renders a position as "filename:line:column".
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
