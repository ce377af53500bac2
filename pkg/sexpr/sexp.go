package sexpr

// SexpKind tags the variant of a parsed Sexp node.
type SexpKind uint8

const (
	SexpIdent SexpKind = iota
	SexpInt
	SexpList
)

// Sexp is a generic, untyped s-expression: an identifier, an integer,
// or a list with an optional dotted tail (for `(a . b)`). Sexp knows
// nothing about operators or the rewrite algebra — that translation
// lives in the codec.
type Sexp struct {
	Kind     SexpKind
	Pos      Position
	Ident    string
	Int      int64
	Elements []Sexp
	Tail     *Sexp // non-nil only for a dotted list
}

// Len returns the number of elements in a list Sexp.
func (s Sexp) Len() int {
	return len(s.Elements)
}

// At returns the i'th element of a list Sexp, and a parse structural
// failure if i is out of range.
func (s Sexp) At(i int) (Sexp, error) {
	if s.Kind != SexpList {
		return Sexp{}, newError(KindParseStructural, s.Pos, "expected a list, got %s", s.describeKind())
	}
	if i < 0 || i >= len(s.Elements) {
		return Sexp{}, newError(KindParseStructural, s.Pos, "expected at least %d element(s), got %d", i+1, len(s.Elements))
	}
	return s.Elements[i], nil
}

// AsIdent returns s's identifier text, or a parse structural failure
// if s is not an identifier.
func (s Sexp) AsIdent() (string, error) {
	if s.Kind != SexpIdent {
		return "", newError(KindParseStructural, s.Pos, "expected an identifier, got %s", s.describeKind())
	}
	return s.Ident, nil
}

// AsKeyword requires s to be the identifier kw exactly, for the
// keyword-headed top-level forms (defthm, forall, exists, and so on).
func (s Sexp) AsKeyword(kw string) error {
	ident, err := s.AsIdent()
	if err != nil {
		return err
	}
	if ident != kw {
		return newError(KindParseSemantic, s.Pos, "expected keyword %q, got %q", kw, ident)
	}
	return nil
}

func (s Sexp) describeKind() string {
	switch s.Kind {
	case SexpIdent:
		return "an identifier"
	case SexpInt:
		return "an integer"
	case SexpList:
		return "a list"
	}
	return "an unknown form"
}
