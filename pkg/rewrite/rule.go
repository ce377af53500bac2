package rewrite

// Rule is a rewrite rule: an ordered pair of a pattern and its
// replacement. Rules are added to a Rewriter and never mutated
// thereafter. Every Ref name appearing in Replacement is expected to
// also appear in Pattern — otherwise Apply would leave free variables
// in the rewritten expression — but this invariant is
// documented rather than enforced at insertion time.
type Rule struct {
	Pattern     Expr
	Replacement Expr
}

// NewRule constructs a Rule from a pattern/replacement pair.
func NewRule(pattern, replacement Expr) Rule {
	return Rule{Pattern: pattern, Replacement: replacement}
}

// Theorem pairs a name with a body expression. The body is expected at
// top level to be either a single equiv goal or an and of such goals
// Rewriter itself does not enforce this shape — that is
// the job of the caller driving Prove over the theorem's conjuncts
// (see cmd/proofrw/command for the concrete loop).
type Theorem struct {
	Name Name
	Body Expr
}
