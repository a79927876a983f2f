// recover.go
// Classical reference for hidden-string recovery against a mod-2
// dot-product oracle: probing with the unit vector e_i reads bit i of
// the hidden string directly, so n queries suffice and are optimal.

package bernsteinvazirani

import (
	"fmt"

	"quantum-query/oracle"
)

// Recover returns the hidden string s of an oracle computing
// x ↦ ⟨s,x⟩ mod 2, using exactly n evaluations. n = 0 returns the
// empty string.
func Recover(f oracle.BitOracle, n int) oracle.BitString {
	if n < 0 {
		panic(fmt.Sprintf("bernsteinvazirani: negative n = %d", n))
	}
	s := oracle.Zero(n)
	for i := 0; i < n; i++ {
		s[i] = f(oracle.Unit(n, i)) & 1
	}
	return s
}
