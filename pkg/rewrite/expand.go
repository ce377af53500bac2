package rewrite

// RuleSet holds an ordered, append-only collection of rewrite rules.
// Order matters: ExpandUnify and Expand both produce candidates in
// rule insertion order, which is what makes expansion deterministic
// given a fixed rule set.
type RuleSet struct {
	rules []Rule
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{}
}

// Add appends rule to the set. Installing an equiv as two rules (one
// per direction) is deliberate — RuleSet never deduplicates, so a
// rule added twice fires twice.
func (rs *RuleSet) Add(rule Rule) {
	rs.rules = append(rs.rules, rule)
}

// Len returns the number of installed rules.
func (rs *RuleSet) Len() int { return len(rs.rules) }

// Rules returns the installed rules in insertion order. The returned
// slice must not be mutated by the caller.
func (rs *RuleSet) Rules() []Rule { return rs.rules }

// ExpandUnify returns every expression obtainable by unifying e
// against each rule's pattern and, on success, applying the
// substitution to that rule's replacement. Candidates are produced in
// rule insertion order; duplicates are allowed (two rules producing
// the same rewrite yield it twice).
func ExpandUnify(t *Table, rs *RuleSet, e Expr) []Expr {
	var out []Expr
	for _, rule := range rs.rules {
		sub, ok := Unify(rule.Pattern, e)
		if !ok {
			continue
		}
		out = append(out, Apply(t, sub, rule.Replacement))
	}
	return out
}

// Expand returns every expression obtainable by applying any rule at
// any position (subterm) of e. For a PropOp with arguments
// a0..a(k-1), it yields ExpandUnify(e) first, then for each argument
// index i, one PropOp per element of Expand(ai) with that argument
// replaced. A Ref yields only its ExpandUnify results. Quantifier
// bodies are not descended into in this release.
func Expand(t *Table, rs *RuleSet, e Expr) []Expr {
	out := ExpandUnify(t, rs, e)

	if e.Kind() != KindPropOp {
		return out
	}

	args := e.Args()
	for i := range args {
		for _, rewritten := range Expand(t, rs, args[i]) {
			newArgs := make([]Expr, len(args))
			copy(newArgs, args)
			newArgs[i] = rewritten
			out = append(out, t.PropOp(e.Op(), newArgs...))
		}
	}
	return out
}
