// Package sexpr implements the minimal Lisp surface syntax described
// a lexer, a generic s-expression parser, a printer,
// and a codec that converts between s-expressions and the rewrite
// package's expression algebra using an operator Registry and an
// Interner.
//
// The core rewrite engine never imports this package — this
// §1, the textual syntax is deliberately kept external to it. This
// package is an external parser/printer layered only at
// the interface level.
package sexpr
