package rewrite

import "testing"

func TestInterner(t *testing.T) {
	t.Run("repeated Intern of the same string returns the same Name", func(t *testing.T) {
		in := NewInterner()
		a := in.Intern("p")
		b := in.Intern("p")
		if a != b {
			t.Errorf("Intern(\"p\") = %v, then %v; want equal", a, b)
		}
	})

	t.Run("distinct strings get distinct Names", func(t *testing.T) {
		in := NewInterner()
		a := in.Intern("p")
		b := in.Intern("q")
		if a == b {
			t.Error("Intern(\"p\") and Intern(\"q\") collided")
		}
	})

	t.Run("Resolve round trips through Intern", func(t *testing.T) {
		in := NewInterner()
		name := in.Intern("flux")
		s, ok := in.Resolve(name)
		if !ok || s != "flux" {
			t.Errorf("Resolve(%v) = %q, %v; want \"flux\", true", name, s, ok)
		}
	})

	t.Run("Resolve reports misses", func(t *testing.T) {
		in := NewInterner()
		if _, ok := in.Resolve(Name(999)); ok {
			t.Error("Resolve of an unused Name reported a hit")
		}
	})

	t.Run("MustResolve panics on an unknown Name", func(t *testing.T) {
		in := NewInterner()
		defer func() {
			if recover() == nil {
				t.Error("MustResolve did not panic on an unknown Name")
			}
		}()
		in.MustResolve(Name(999))
	})
}
