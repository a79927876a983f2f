// classify.go
// Classical reference for the constant-vs-balanced decision problem.
// The oracle is promised to be either constant or balanced on n-bit
// inputs; the classifier walks inputs in counting order and stops at
// the first disagreement. The 2^(n-1)+1 bound is tight: an adversarial
// balanced function can agree on an entire half of the domain.

package deutschjozsa

import (
	"fmt"

	"quantum-query/oracle"
)

// Kind is the classification outcome.
type Kind int

const (
	Constant Kind = iota
	Balanced
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Balanced:
		return "balanced"
	default:
		return "unknown"
	}
}

// Classify decides whether f is constant or balanced using at most
// 2^(n-1)+1 evaluations. Behavior is unspecified (but non-crashing) if
// f is neither. Panics for n outside [0,62].
func Classify(f oracle.BitOracle, n int) Kind {
	if n < 0 || n > 62 {
		panic(fmt.Sprintf("deutschjozsa: n = %d out of range [0,62]", n))
	}
	first := f(oracle.Zero(n))
	if n == 0 {
		return Constant
	}
	limit := uint64(1)<<uint(n-1) + 1
	for x := uint64(1); x < limit; x++ {
		if f(oracle.FromUint(x, n)) != first {
			return Balanced
		}
	}
	return Constant
}
