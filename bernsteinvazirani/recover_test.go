package bernsteinvazirani

import (
	"testing"

	"quantum-query/oracle"
)

func TestRecoverHiddenString(t *testing.T) {
	t.Run("n=4 s=1011 in exactly 4 evaluations", func(t *testing.T) {
		s, err := oracle.Parse("1011")
		if err != nil {
			t.Fatalf("Parse: %v", err)
		}
		cb := oracle.NewCountingBit(oracle.DotProduct(s), "bv")
		got := Recover(cb.Oracle(), 4)
		if !got.Equal(s) {
			t.Fatalf("Recover = %s, want %s", got, s)
		}
		if cb.Queries() != 4 {
			t.Fatalf("queries = %d, want 4", cb.Queries())
		}
	})

	t.Run("all hidden strings of width 5", func(t *testing.T) {
		for u := uint64(0); u < 32; u++ {
			s := oracle.FromUint(u, 5)
			got := Recover(oracle.DotProduct(s), 5)
			if !got.Equal(s) {
				t.Fatalf("Recover = %s, want %s", got, s)
			}
		}
	})

	t.Run("n=0 returns the empty string", func(t *testing.T) {
		got := Recover(oracle.DotProduct(oracle.Zero(0)), 0)
		if got.Len() != 0 {
			t.Fatalf("Recover length = %d, want 0", got.Len())
		}
	})
}

func TestRecoverPanicsOnNegativeWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for n = -1")
		}
	}()
	Recover(oracle.Constant(0, 0), -1)
}
