package rewrite

import (
	"math"
	"testing"
)

func TestHeuristicSet(t *testing.T) {
	tab := NewTable()
	in := NewInterner()
	p := in.Intern("p")
	a := tab.Ref(p)
	b := tab.PropOp(NotID, a)

	t.Run("an empty set combines to zero", func(t *testing.T) {
		hs := NewHeuristicSet()
		if got := hs.Combine(a, b); got != 0 {
			t.Errorf("Combine on an empty set = %v, want 0", got)
		}
	})

	t.Run("a single registered heuristic passes through at weight 1", func(t *testing.T) {
		hs := NewHeuristicSet()
		hs.Register(1, func(c, g Expr) float64 { return 3 })
		if got := hs.Combine(a, b); got != 3 {
			t.Errorf("Combine = %v, want 3", got)
		}
	})

	t.Run("negative sign flips the contribution", func(t *testing.T) {
		hs := NewHeuristicSet()
		hs.RegisterSigned(1, -1, func(c, g Expr) float64 { return 3 })
		if got := hs.Combine(a, b); got != -3 {
			t.Errorf("Combine = %v, want -3", got)
		}
	})

	t.Run("weighted average of two heuristics", func(t *testing.T) {
		hs := NewHeuristicSet()
		hs.Register(1, func(c, g Expr) float64 { return 0 })
		hs.Register(3, func(c, g Expr) float64 { return 4 })
		want := (1*0.0 + 3*4.0) / 4.0
		if got := hs.Combine(a, b); got != want {
			t.Errorf("Combine = %v, want %v", got, want)
		}
	})
}

func TestSizeRatio(t *testing.T) {
	tab := NewTable()
	in := NewInterner()
	p := in.Intern("p")
	ref := tab.Ref(p)

	t.Run("equal sizes give 2*(sigmoid(1)-0.5)", func(t *testing.T) {
		const want = 0.4621171572600098
		if got := SizeRatio(ref, ref); math.Abs(got-want) > 1e-12 {
			t.Errorf("SizeRatio(p, p) = %v, want %v", got, want)
		}
	})

	t.Run("stays within the open interval (0, 1), ordered by size ratio", func(t *testing.T) {
		big := tab.PropOp(AndID, ref, tab.PropOp(NotID, ref))
		equal := SizeRatio(ref, ref)
		if got := SizeRatio(big, ref); got <= equal || got >= 1 {
			t.Errorf("SizeRatio(big, small) = %v, want in (%v, 1)", got, equal)
		}
		if got := SizeRatio(ref, big); got >= equal || got <= 0 {
			t.Errorf("SizeRatio(small, big) = %v, want in (0, %v)", got, equal)
		}
	})
}
