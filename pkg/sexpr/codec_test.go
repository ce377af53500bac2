package sexpr

import (
	"testing"

	"github.com/proofrw/proofrw/pkg/rewrite"
)

func mustParse(t *testing.T, src string) Sexp {
	t.Helper()
	s, err := NewParser(NewLexer("test.scm", src)).ParseOne()
	if err != nil {
		t.Fatalf("ParseOne(%q) error: %v", src, err)
	}
	return s
}

func TestExprFromSexp(t *testing.T) {
	t.Run("a bare identifier is a Ref", func(t *testing.T) {
		c := NewCodec()
		e, err := c.ExprFromSexp(mustParse(t, "p"))
		if err != nil {
			t.Fatalf("ExprFromSexp error: %v", err)
		}
		if e.Kind() != rewrite.KindRef {
			t.Errorf("got kind %v, want KindRef", e.Kind())
		}
	})

	t.Run("a registered operator symbol applies with the right arity", func(t *testing.T) {
		c := NewCodec()
		e, err := c.ExprFromSexp(mustParse(t, "(not p)"))
		if err != nil {
			t.Fatalf("ExprFromSexp error: %v", err)
		}
		if e.Kind() != rewrite.KindPropOp || e.Op() != rewrite.NotID || len(e.Args()) != 1 {
			t.Errorf("got %+v, want a unary not", e)
		}
	})

	t.Run("wrong arity is a parse structural failure", func(t *testing.T) {
		c := NewCodec()
		_, err := c.ExprFromSexp(mustParse(t, "(not p q)"))
		if err == nil {
			t.Fatal("expected an arity error")
		}
		if se, ok := err.(*Error); !ok || se.Kind != KindParseStructural {
			t.Errorf("err = %v, want KindParseStructural", err)
		}
	})

	t.Run("an unknown operator symbol is a parse semantic failure", func(t *testing.T) {
		c := NewCodec()
		_, err := c.ExprFromSexp(mustParse(t, "(xor p q)"))
		if err == nil {
			t.Fatal("expected an unknown-operator error")
		}
		if se, ok := err.(*Error); !ok || se.Kind != KindParseSemantic {
			t.Errorf("err = %v, want KindParseSemantic", err)
		}
	})

	t.Run("an integer in expression position is unimplemented", func(t *testing.T) {
		c := NewCodec()
		_, err := c.ExprFromSexp(mustParse(t, "3"))
		if err == nil {
			t.Fatal("expected an unimplemented error")
		}
		if se, ok := err.(*Error); !ok || se.Kind != KindUnimplemented {
			t.Errorf("err = %v, want KindUnimplemented", err)
		}
	})

	t.Run("forall and exists build the matching quantifier", func(t *testing.T) {
		c := NewCodec()
		fa, err := c.ExprFromSexp(mustParse(t, "(forall x p)"))
		if err != nil {
			t.Fatalf("forall error: %v", err)
		}
		if fa.Kind() != rewrite.KindForall {
			t.Errorf("got kind %v, want KindForall", fa.Kind())
		}
		ex, err := c.ExprFromSexp(mustParse(t, "(exists x p)"))
		if err != nil {
			t.Fatalf("exists error: %v", err)
		}
		if ex.Kind() != rewrite.KindExists {
			t.Errorf("got kind %v, want KindExists", ex.Kind())
		}
	})
}

func TestExprToSexpRoundTrip(t *testing.T) {
	t.Run("PropOp and Ref round trip through Print", func(t *testing.T) {
		c := NewCodec()
		e, err := c.ExprFromSexp(mustParse(t, "(and p (not q))"))
		if err != nil {
			t.Fatalf("ExprFromSexp error: %v", err)
		}
		got := Print(c.ExprToSexp(e))
		want := "( and p ( not q ) )"
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("both quantifiers print with the exists keyword", func(t *testing.T) {
		c := NewCodec()
		fa, _ := c.ExprFromSexp(mustParse(t, "(forall x p)"))
		ex, _ := c.ExprFromSexp(mustParse(t, "(exists x p)"))
		if got := Print(c.ExprToSexp(fa)); got != "( exists x p )" {
			t.Errorf("forall printed as %q, want the exists spelling", got)
		}
		if got := Print(c.ExprToSexp(ex)); got != "( exists x p )" {
			t.Errorf("exists printed as %q, want the exists spelling", got)
		}
	})
}

func TestTheoremFromSexp(t *testing.T) {
	c := NewCodec()

	t.Run("a well-formed defthm parses", func(t *testing.T) {
		thm, err := c.TheoremFromSexp(mustParse(t, "(defthm my-thm (equiv p p))"))
		if err != nil {
			t.Fatalf("TheoremFromSexp error: %v", err)
		}
		if c.Interner.MustResolve(thm.Name) != "my-thm" {
			t.Errorf("theorem name = %q, want \"my-thm\"", c.Interner.MustResolve(thm.Name))
		}
	})

	t.Run("a missing defthm keyword fails", func(t *testing.T) {
		_, err := c.TheoremFromSexp(mustParse(t, "(lemma my-thm (equiv p p))"))
		if err == nil {
			t.Error("expected a keyword mismatch error")
		}
	})
}
