package sexpr

import (
	"testing"

	"github.com/hashicorp/go-multierror"
)

func parseAll(t *testing.T, src string) []Sexp {
	t.Helper()
	forms, err := NewParser(NewLexer("test.scm", src)).ParseAll()
	if err != nil {
		t.Fatalf("ParseAll(%q) error: %v", src, err)
	}
	return forms
}

func TestLoadRules(t *testing.T) {
	t.Run("equiv installs two directional rules", func(t *testing.T) {
		c := NewCodec()
		src := "(equiv (not (not p)) p)"
		rules, err := c.LoadRules(src, parseAll(t, src))
		if err != nil {
			t.Fatalf("LoadRules error: %v", err)
		}
		if len(rules) != 2 {
			t.Fatalf("got %d rules, want 2", len(rules))
		}
		if !rules[0].Pattern.Equal(rules[1].Replacement) || !rules[0].Replacement.Equal(rules[1].Pattern) {
			t.Error("the two installed rules are not mirror images of each other")
		}
	})

	t.Run("=> and implies each install one rule", func(t *testing.T) {
		c := NewCodec()
		src := "(=> p q) (implies p q)"
		rules, err := c.LoadRules(src, parseAll(t, src))
		if err != nil {
			t.Fatalf("LoadRules error: %v", err)
		}
		if len(rules) != 2 {
			t.Fatalf("got %d rules, want 2", len(rules))
		}
	})

	t.Run("an unrecognized top-level form is reported without aborting the rest of the file, with source context attached", func(t *testing.T) {
		c := NewCodec()
		src := "(bogus p q) (=> p q)"
		rules, err := c.LoadRules(src, parseAll(t, src))
		if err == nil {
			t.Fatal("expected an aggregated error for the bogus form")
		}
		if len(rules) != 1 {
			t.Errorf("got %d rules despite the first form failing, want the second form's 1 rule", len(rules))
		}
		merr, ok := err.(*multierror.Error)
		if !ok || len(merr.Errors) != 1 {
			t.Fatalf("err = %v, want a *multierror.Error with 1 sub-error", err)
		}
		se, ok := merr.Errors[0].(*Error)
		if !ok {
			t.Fatalf("sub-error = %v, want *Error", merr.Errors[0])
		}
		if se.Source == "" {
			t.Error("Source was not attached to the aggregated error")
		}
		if se.Report() == "" {
			t.Error("Report() returned empty text despite Source being set")
		}
	})
}

func TestLoadTheorems(t *testing.T) {
	t.Run("every well-formed defthm loads", func(t *testing.T) {
		c := NewCodec()
		src := "(defthm t1 (equiv p p)) (defthm t2 (equiv q q))"
		thms, err := c.LoadTheorems(src, parseAll(t, src))
		if err != nil {
			t.Fatalf("LoadTheorems error: %v", err)
		}
		if len(thms) != 2 {
			t.Fatalf("got %d theorems, want 2", len(thms))
		}
	})

	t.Run("a malformed theorem is aggregated, not fatal to the rest, with source context attached", func(t *testing.T) {
		c := NewCodec()
		src := "(not-a-defthm) (defthm t1 (equiv p p))"
		thms, err := c.LoadTheorems(src, parseAll(t, src))
		if err == nil {
			t.Fatal("expected an aggregated error")
		}
		if len(thms) != 1 {
			t.Errorf("got %d theorems, want 1", len(thms))
		}
		merr, ok := err.(*multierror.Error)
		if !ok || len(merr.Errors) != 1 {
			t.Fatalf("err = %v, want a *multierror.Error with 1 sub-error", err)
		}
		se, ok := merr.Errors[0].(*Error)
		if !ok {
			t.Fatalf("sub-error = %v, want *Error", merr.Errors[0])
		}
		if se.Source == "" {
			t.Error("Source was not attached to the aggregated error")
		}
		if se.Report() == "" {
			t.Error("Report() returned empty text despite Source being set")
		}
	})
}
