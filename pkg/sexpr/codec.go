package sexpr

import (
	"github.com/proofrw/proofrw/pkg/rewrite"
)

const (
	forallKeyword = "forall"
	existsKeyword = "exists"
	defthmKeyword = "defthm"
)

// Codec converts between the generic Sexp syntax tree and the
// rewrite package's expression algebra. It owns the Interner,
// Registry, and hash-consing Table a proving session shares across
// every file it loads — these three are populated with built-ins at
// startup, then extended (the interner only; the registry's operator
// set is fixed) while reading source text.
type Codec struct {
	Interner *rewrite.Interner
	Registry *rewrite.Registry
	Table    *rewrite.Table
}

// NewCodec creates a Codec with a fresh interner, table, and a
// registry pre-populated with the built-in operators.
func NewCodec() *Codec {
	interner := rewrite.NewInterner()
	return &Codec{
		Interner: interner,
		Registry: rewrite.NewBuiltinRegistry(interner),
		Table:    rewrite.NewTable(),
	}
}

// ExprFromSexp converts a parsed s-expression into an Expr. A bare
// identifier becomes a Ref; a list headed by "forall"/"exists" becomes
// the matching quantifier; a list headed by a registered operator
// symbol becomes a PropOp consuming exactly that operator's arity of
// further elements; an integer in expression position is an
// unimplemented form; anything else is a parse semantic
// failure (unknown operator symbol in head position).
func (c *Codec) ExprFromSexp(s Sexp) (rewrite.Expr, error) {
	switch s.Kind {
	case SexpIdent:
		return c.Table.Ref(c.Interner.Intern(s.Ident)), nil

	case SexpInt:
		return rewrite.Expr{}, newError(KindUnimplemented, s.Pos, "integer literals are not supported in expression position")

	case SexpList:
		if s.Len() == 0 {
			return rewrite.Expr{}, newError(KindParseStructural, s.Pos, "empty list is not a valid expression")
		}
		head, err := s.At(0)
		if err != nil {
			return rewrite.Expr{}, err
		}
		kw, err := head.AsIdent()
		if err != nil {
			return rewrite.Expr{}, err
		}
		switch kw {
		case forallKeyword:
			return c.quantifierFromSexp(s, true)
		case existsKeyword:
			return c.quantifierFromSexp(s, false)
		default:
			return c.propOpFromSexp(s, kw)
		}
	}
	return rewrite.Expr{}, newError(KindParseStructural, s.Pos, "invalid s-expression")
}

func (c *Codec) quantifierFromSexp(s Sexp, universal bool) (rewrite.Expr, error) {
	nameSexp, err := s.At(1)
	if err != nil {
		return rewrite.Expr{}, err
	}
	name, err := nameSexp.AsIdent()
	if err != nil {
		return rewrite.Expr{}, err
	}
	bodySexp, err := s.At(2)
	if err != nil {
		return rewrite.Expr{}, err
	}
	body, err := c.ExprFromSexp(bodySexp)
	if err != nil {
		return rewrite.Expr{}, err
	}
	n := c.Interner.Intern(name)
	if universal {
		return c.Table.Forall(n, body), nil
	}
	return c.Table.Exists(n, body), nil
}

func (c *Codec) propOpFromSexp(s Sexp, symbol string) (rewrite.Expr, error) {
	desc, ok := c.Registry.BySymbolString(symbol)
	if !ok {
		return rewrite.Expr{}, newError(KindParseSemantic, s.Pos, "unknown operator symbol %q", symbol)
	}
	if s.Len() != desc.Arity+1 {
		return rewrite.Expr{}, newError(KindParseStructural, s.Pos,
			"operator %q expects %d argument(s), got %d", symbol, desc.Arity, s.Len()-1)
	}
	args := make([]rewrite.Expr, desc.Arity)
	for i := 0; i < desc.Arity; i++ {
		argSexp, err := s.At(i + 1)
		if err != nil {
			return rewrite.Expr{}, err
		}
		arg, err := c.ExprFromSexp(argSexp)
		if err != nil {
			return rewrite.Expr{}, err
		}
		args[i] = arg
	}
	return c.Table.PropOp(desc.ID, args...), nil
}

// ExprToSexp is the inverse of ExprFromSexp. Both Forall and Exists
// print using the "exists" keyword — a long-standing quirk preserved
// here rather than silently fixed, since existing knowledge bases may
// already round trip through it.
func (c *Codec) ExprToSexp(e rewrite.Expr) Sexp {
	switch e.Kind() {
	case rewrite.KindRef:
		return Sexp{Kind: SexpIdent, Ident: c.Interner.MustResolve(e.RefName())}

	case rewrite.KindPropOp:
		desc, ok := c.Registry.ByID(e.Op())
		if !ok {
			panic("sexpr: unregistered operator id in Expr")
		}
		elements := make([]Sexp, 0, len(e.Args())+1)
		elements = append(elements, Sexp{Kind: SexpIdent, Ident: desc.Symbol})
		for _, a := range e.Args() {
			elements = append(elements, c.ExprToSexp(a))
		}
		return Sexp{Kind: SexpList, Elements: elements}

	case rewrite.KindForall, rewrite.KindExists:
		elements := []Sexp{
			{Kind: SexpIdent, Ident: existsKeyword},
			{Kind: SexpIdent, Ident: c.Interner.MustResolve(e.QuantName())},
			c.ExprToSexp(e.QuantBody()),
		}
		return Sexp{Kind: SexpList, Elements: elements}
	}
	panic("sexpr: unknown Expr kind")
}

// TheoremFromSexp converts a top-level `(defthm NAME BODY)` form into
// a rewrite.Theorem.
func (c *Codec) TheoremFromSexp(s Sexp) (rewrite.Theorem, error) {
	kwSexp, err := s.At(0)
	if err != nil {
		return rewrite.Theorem{}, err
	}
	if err := kwSexp.AsKeyword(defthmKeyword); err != nil {
		return rewrite.Theorem{}, err
	}
	nameSexp, err := s.At(1)
	if err != nil {
		return rewrite.Theorem{}, err
	}
	name, err := nameSexp.AsIdent()
	if err != nil {
		return rewrite.Theorem{}, err
	}
	bodySexp, err := s.At(2)
	if err != nil {
		return rewrite.Theorem{}, err
	}
	body, err := c.ExprFromSexp(bodySexp)
	if err != nil {
		return rewrite.Theorem{}, err
	}
	return rewrite.Theorem{Name: c.Interner.Intern(name), Body: body}, nil
}
