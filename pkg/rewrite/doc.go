// Package rewrite implements a propositional-logic theorem rewriter.
//
// Given a knowledge base of equivalence and implication axioms and a
// conjecture expressed as an equivalence, the rewriter searches for a
// chain of rewrites transforming one side of the conjecture into the
// other, using a best-first search over the rewrite relation induced
// by the installed rules.
//
// The package is organized around three cooperating pieces:
//   - an expression algebra (Expr, Name, the operator Registry) with
//     value semantics, backed by hash consing so that structurally
//     equal subterms share one allocation;
//   - a one-sided, match-style Unifier and Substitution over that
//     algebra, used to drive pattern rewriting;
//   - a best-first Rewriter that expands an expression by applying
//     every rule at every position and returns a proof path.
//
// The package does not parse or print the surface s-expression syntax
// — see package sexpr for that — and it performs no semantic
// (truth-table) validation of the rules it is given: a rewrite is
// legal purely because some rule's pattern unified with some subterm.
package rewrite
