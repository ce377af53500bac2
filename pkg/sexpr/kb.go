package sexpr

import (
	"github.com/hashicorp/go-multierror"

	"github.com/proofrw/proofrw/pkg/rewrite"
)

const (
	impliesKeyword = "implies"
)

// LoadRules converts every top-level form of a knowledge base file
// into rules: `(equiv L R)` installs two rules (L→R
// and R→L); `(=> L R)` or `(implies L R)` installs one rule (L→R).
// Any other top-level form is a parse semantic failure.
//
// LoadRules does not stop at the first malformed form: it visits every
// top-level element, collects every failure with go-multierror, and
// returns the combined error (with whatever rules it did manage to
// build along the way) so a caller can report the whole file's
// problems in one pass rather than one fix-rerun cycle at a time. src
// is the file's full source text (as returned by ParseFile alongside
// forms); it is attached to every collected error so Error.Report can
// render a caret no matter which stage of conversion raised it.
func (c *Codec) LoadRules(src string, forms []Sexp) ([]rewrite.Rule, error) {
	var rules []rewrite.Rule
	var errs *multierror.Error

	for _, form := range forms {
		added, err := c.rulesFromForm(form)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		rules = append(rules, added...)
	}

	return rules, attachSource(errs.ErrorOrNil(), src)
}

func (c *Codec) rulesFromForm(form Sexp) ([]rewrite.Rule, error) {
	head, err := form.At(0)
	if err != nil {
		return nil, err
	}
	kw, err := head.AsIdent()
	if err != nil {
		return nil, err
	}

	switch kw {
	case "equiv":
		left, right, err := c.binaryOperands(form)
		if err != nil {
			return nil, err
		}
		return []rewrite.Rule{
			rewrite.NewRule(left, right),
			rewrite.NewRule(right, left),
		}, nil

	case "=>", impliesKeyword:
		left, right, err := c.binaryOperands(form)
		if err != nil {
			return nil, err
		}
		return []rewrite.Rule{rewrite.NewRule(left, right)}, nil

	default:
		return nil, newError(KindParseSemantic, form.Pos,
			"unexpected top-level knowledge-base form %q: expected equiv, => or implies", kw)
	}
}

// binaryOperands parses `(_ L R)` and converts L and R to Exprs,
// without regard to whether "_" names a registered operator — the
// caller already knows which top-level keyword it is handling.
func (c *Codec) binaryOperands(form Sexp) (rewrite.Expr, rewrite.Expr, error) {
	if form.Len() != 3 {
		return rewrite.Expr{}, rewrite.Expr{}, newError(KindParseStructural, form.Pos,
			"expected 2 operands, got %d", form.Len()-1)
	}
	leftSexp, err := form.At(1)
	if err != nil {
		return rewrite.Expr{}, rewrite.Expr{}, err
	}
	rightSexp, err := form.At(2)
	if err != nil {
		return rewrite.Expr{}, rewrite.Expr{}, err
	}
	left, err := c.ExprFromSexp(leftSexp)
	if err != nil {
		return rewrite.Expr{}, rewrite.Expr{}, err
	}
	right, err := c.ExprFromSexp(rightSexp)
	if err != nil {
		return rewrite.Expr{}, rewrite.Expr{}, err
	}
	return left, right, nil
}

// LoadTheorems converts every top-level `(defthm NAME BODY)` form of a
// theorem file into a Theorem, aggregating failures the same way
// LoadRules does, and attaching src to each one for the same reason.
func (c *Codec) LoadTheorems(src string, forms []Sexp) ([]rewrite.Theorem, error) {
	var theorems []rewrite.Theorem
	var errs *multierror.Error

	for _, form := range forms {
		thm, err := c.TheoremFromSexp(form)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		theorems = append(theorems, thm)
	}

	return theorems, attachSource(errs.ErrorOrNil(), src)
}
