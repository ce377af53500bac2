package sexpr

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
)

// ErrorKind classifies a load-phase failure. The
// rewriter itself never produces any of these — they only occur while
// reading and interpreting source text.
type ErrorKind string

const (
	// KindIO marks a failure to read the source file at all.
	KindIO ErrorKind = "io"
	// KindLex marks an unexpected character in the input.
	KindLex ErrorKind = "lex"
	// KindParseStructural marks a well-formed token stream in the
	// wrong shape: a missing list element, or a list where an
	// identifier or integer was required (or vice versa).
	KindParseStructural ErrorKind = "parse"
	// KindParseSemantic marks a syntactically valid form with an
	// unexpected keyword or an unknown operator symbol in head
	// position.
	KindParseSemantic ErrorKind = "semantic"
	// KindUnimplemented marks a form the codec deliberately does not
	// support: an integer literal in expression position.
	KindUnimplemented ErrorKind = "unimplemented"
)

// Error is a single positioned load-phase diagnostic.
type Error struct {
	Kind     ErrorKind
	Pos      Position
	Message  string
	Source   string // the full text of the file Pos refers to, for context rendering
}

func (e *Error) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("%s: %s: %s", e.Pos, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s\n%s", e.Pos, e.Kind, e.Message, e.Report())
}

// Report renders e with a line of source context and a caret under
// the offending column: red for the message, dim for the gutter.
func (e *Error) Report() string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if e.Pos.Line < 1 || e.Pos.Line > len(lines) {
		return ""
	}
	lineText := lines[e.Pos.Line-1]

	dim := color.New(color.Faint).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	gutter := fmt.Sprintf("%d", e.Pos.Line)
	pad := strings.Repeat(" ", len(gutter))

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", pad, dim("-->"), e.Pos.Filename, e.Pos.Line, e.Pos.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, dim("|"))
	fmt.Fprintf(&b, "%s %s %s\n", gutter, dim("|"), lineText)
	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	caret := strings.Repeat(" ", col-1) + red("^")
	fmt.Fprintf(&b, "%s %s %s\n", pad, dim("|"), caret)
	return b.String()
}

// newError constructs an Error without source context; callers that
// have the original text on hand should set Source afterward so
// Report can render a caret.
func newError(kind ErrorKind, pos Position, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// attachSource sets Source on every *Error reachable from err — either
// err itself, or every sub-error of a *multierror.Error — so Report
// can render a caret no matter how deep in the load pipeline the
// diagnostic was constructed. err is returned unchanged (same
// underlying type) so callers can wrap this around a return.
func attachSource(err error, src string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *multierror.Error:
		for _, sub := range e.Errors {
			if se, ok := sub.(*Error); ok {
				se.Source = src
			}
		}
		return e
	case *Error:
		e.Source = src
		return e
	default:
		return err
	}
}
