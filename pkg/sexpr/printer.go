package sexpr

import (
	"strconv"
	"strings"
)

// Print renders s back to source text: lists print as
// "( e0 e1 … )", space-separated with a leading and trailing space
// inside the delimiters; a dotted tail prints as " . tail" before the
// closing paren; identifiers print verbatim; integers print in
// decimal.
func Print(s Sexp) string {
	var b strings.Builder
	writeSexp(&b, s)
	return b.String()
}

func writeSexp(b *strings.Builder, s Sexp) {
	switch s.Kind {
	case SexpIdent:
		b.WriteString(s.Ident)
	case SexpInt:
		b.WriteString(strconv.FormatInt(s.Int, 10))
	case SexpList:
		b.WriteString("(")
		for _, el := range s.Elements {
			b.WriteString(" ")
			writeSexp(b, el)
		}
		if s.Tail != nil {
			b.WriteString(" . ")
			writeSexp(b, *s.Tail)
		}
		if len(s.Elements) > 0 || s.Tail != nil {
			b.WriteString(" ")
		}
		b.WriteString(")")
	}
}
