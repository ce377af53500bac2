package rewrite

// Substitution is a mapping from variable Name to Expr, produced by
// Unify and consumed by Apply. It is built once by Unify and never
// mutated afterward by callers in this package.
type Substitution struct {
	bindings map[Name]Expr
}

// EmptySubstitution returns a substitution with no bindings.
func EmptySubstitution() Substitution {
	return Substitution{bindings: map[Name]Expr{}}
}

// Lookup returns the expression name is bound to, if any.
func (s Substitution) Lookup(name Name) (Expr, bool) {
	e, ok := s.bindings[name]
	return e, ok
}

// Len returns the number of bindings in s.
func (s Substitution) Len() int { return len(s.bindings) }

func newSubstitution() Substitution {
	return Substitution{bindings: make(map[Name]Expr, 8)}
}

func (s Substitution) bind(name Name, e Expr) {
	s.bindings[name] = e
}

// Unify performs one-sided, match-style unification of pattern against
// subject: pattern is a rule's left-hand side, and only its Ref nodes
// are treated as unification variables. Refs occurring in subject are
// opaque terms, never bound. Unify returns the substitution mapping
// pattern's Ref names to the subterms of subject they stand for, and
// true, on success; otherwise it returns the zero Substitution and
// false.
//
// Quantifier variants are not unified structurally — the rewriter never
// installs a rule whose pattern contains Forall/Exists, and a
// quantifier in the pattern, or a quantifier subject matched against a
// PropOp pattern, fails rather than panics, so that a malformed or
// hand-built rule fails safely instead of corrupting the search. A bare
// Ref pattern still binds to a quantifier subject as an opaque term.
//
// The occurs check is unnecessary: rule patterns are constructed
// independently of the subjects they are unified against, so a
// pattern variable can never already appear inside the subject term it
// is about to be bound to in a way that would create a cycle.
func Unify(pattern, subject Expr) (Substitution, bool) {
	sub := newSubstitution()
	if unify(pattern, subject, sub) {
		return sub, true
	}
	return Substitution{}, false
}

func unify(pattern, subject Expr, sub Substitution) bool {
	if pattern.Kind() == KindRef {
		name := pattern.RefName()
		if bound, ok := sub.Lookup(name); ok {
			return bound.Equal(subject)
		}
		sub.bind(name, subject)
		return true
	}

	if pattern.Kind() != KindPropOp || subject.Kind() != KindPropOp {
		return false
	}
	if pattern.Op() != subject.Op() {
		return false
	}
	pArgs, sArgs := pattern.Args(), subject.Args()
	if len(pArgs) != len(sArgs) {
		return false
	}
	for i := range pArgs {
		if !unify(pArgs[i], sArgs[i], sub) {
			return false
		}
	}
	return true
}

// Apply substitutes every Ref whose name is bound in sub, descending
// into PropOp arguments and quantifier bodies; Refs absent from sub,
// and every other variant, are returned unchanged. apply(empty, e)
// always returns e unchanged (the substitution-identity property).
func Apply(t *Table, sub Substitution, e Expr) Expr {
	switch e.Kind() {
	case KindRef:
		if bound, ok := sub.Lookup(e.RefName()); ok {
			return bound
		}
		return e
	case KindPropOp:
		args := e.Args()
		newArgs := make([]Expr, len(args))
		changed := false
		for i, a := range args {
			newArgs[i] = Apply(t, sub, a)
			if !newArgs[i].Equal(a) {
				changed = true
			}
		}
		if !changed {
			return e
		}
		return t.PropOp(e.Op(), newArgs...)
	case KindForall:
		body := Apply(t, sub, e.QuantBody())
		if body.Equal(e.QuantBody()) {
			return e
		}
		return t.Forall(e.QuantName(), body)
	case KindExists:
		body := Apply(t, sub, e.QuantBody())
		if body.Equal(e.QuantBody()) {
			return e
		}
		return t.Exists(e.QuantName(), body)
	}
	return e
}
