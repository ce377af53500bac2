package rewrite

import "testing"

func TestHashConsing(t *testing.T) {
	t.Run("structurally equal shapes share a handle", func(t *testing.T) {
		tab := NewTable()
		in := NewInterner()
		p := in.Intern("p")

		a := tab.PropOp(NotID, tab.Ref(p))
		b := tab.PropOp(NotID, tab.Ref(p))
		if a != b {
			t.Error("two structurally identical PropOp constructions produced different handles")
		}
	})

	t.Run("different shapes produce different handles", func(t *testing.T) {
		tab := NewTable()
		in := NewInterner()
		p, q := in.Intern("p"), in.Intern("q")

		if tab.Ref(p) == tab.Ref(q) {
			t.Error("Ref(p) and Ref(q) collided")
		}
	})

	t.Run("defensive copy of args does not alias the caller's slice", func(t *testing.T) {
		tab := NewTable()
		in := NewInterner()
		p := in.Intern("p")
		args := []Expr{tab.Ref(p)}
		e := tab.PropOp(NotID, args...)
		args[0] = tab.Ref(in.Intern("q"))
		if !e.Args()[0].Equal(tab.Ref(p)) {
			t.Error("mutating the caller's slice after construction changed the interned node")
		}
	})
}

func TestExprAccessors(t *testing.T) {
	tab := NewTable()
	in := NewInterner()
	p := in.Intern("p")
	ref := tab.Ref(p)

	t.Run("RefName panics on a non-Ref", func(t *testing.T) {
		notP := tab.PropOp(NotID, ref)
		defer func() {
			if recover() == nil {
				t.Error("RefName on a PropOp did not panic")
			}
		}()
		notP.RefName()
	})

	t.Run("Op panics on a non-PropOp", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("Op on a Ref did not panic")
			}
		}()
		ref.Op()
	})

	t.Run("QuantBody round trips through Forall", func(t *testing.T) {
		forall := tab.Forall(p, ref)
		if forall.QuantName() != p || !forall.QuantBody().Equal(ref) {
			t.Error("Forall did not preserve its bound name and body")
		}
	})
}

func TestExprEqualAndLess(t *testing.T) {
	tab := NewTable()
	in := NewInterner()
	p, q := in.Intern("p"), in.Intern("q")
	refP, refQ := tab.Ref(p), tab.Ref(q)

	t.Run("Equal is reflexive and distinguishes distinct refs", func(t *testing.T) {
		if !refP.Equal(refP) {
			t.Error("Equal is not reflexive")
		}
		if refP.Equal(refQ) {
			t.Error("distinct refs compared equal")
		}
	})

	t.Run("Less is antisymmetric on distinct refs and irreflexive", func(t *testing.T) {
		a, b := refP.Less(refQ), refQ.Less(refP)
		if a == b {
			t.Errorf("Less(p, q)=%v and Less(q, p)=%v should disagree for distinct exprs", a, b)
		}
		if refP.Less(refP) {
			t.Error("Less is not irreflexive")
		}
	})
}

func TestSize(t *testing.T) {
	tab := NewTable()
	in := NewInterner()
	p := in.Intern("p")
	ref := tab.Ref(p)
	notP := tab.PropOp(NotID, ref)
	andPP := tab.PropOp(AndID, ref, notP)

	if got := Size(ref); got != 1 {
		t.Errorf("Size(ref) = %d, want 1", got)
	}
	if got := Size(notP); got != 2 {
		t.Errorf("Size(not p) = %d, want 2", got)
	}
	if got := Size(andPP); got != 4 {
		t.Errorf("Size(and p (not p)) = %d, want 4", got)
	}
}
