// oracle.go
// Black-box boolean functions as queried by the recovery algorithms.
// An oracle is a pure function built once from its hidden parameter
// (a constant bit, a dot-product mask, a collision shift) and queried
// any number of times; callers only see input/output behavior.

package oracle

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// BitOracle maps a fixed-length input to a single bit.
type BitOracle func(BitString) uint8

// VectorOracle maps a fixed-length input to an output of the same length.
type VectorOracle func(BitString) BitString

// Constant returns the n-bit oracle that ignores its input and outputs bit.
func Constant(n int, bit uint8) BitOracle {
	if bit > 1 {
		panic("oracle: constant output must be 0 or 1")
	}
	return func(x BitString) uint8 {
		checkLen(x, n)
		return bit
	}
}

// DotProduct returns the oracle x ↦ ⟨s,x⟩ mod 2. For nonzero s the
// oracle is balanced: each output value has exactly 2^(n-1) preimages.
func DotProduct(s BitString) BitOracle {
	mask := s.Clone()
	return func(x BitString) uint8 {
		checkLen(x, mask.Len())
		return mask.Dot(x)
	}
}

// Mask returns the affine oracle x ↦ ⟨s,x⟩ ⊕ pad. The pad bit models
// the global phase freedom of the underlying protocol; recovery of s is
// unaffected by it only when probing differences, so callers that probe
// unit vectors directly must use pad = 0.
func Mask(s BitString, pad uint8) BitOracle {
	inner := DotProduct(s)
	return func(x BitString) uint8 {
		return inner(x) ^ (pad & 1)
	}
}

// Identity returns the one-to-one vector oracle x ↦ x.
func Identity(n int) VectorOracle {
	return func(x BitString) BitString {
		checkLen(x, n)
		return x.Clone()
	}
}

// CosetMin returns the canonical two-to-one oracle with hidden shift b:
// x ↦ min(x, x⊕b). Inputs collide exactly when they differ by b, so for
// zero b the oracle degenerates to the identity.
func CosetMin(b BitString) VectorOracle {
	shift := b.Clone()
	return func(x BitString) BitString {
		checkLen(x, shift.Len())
		y := x.Xor(shift)
		if y.Less(x) {
			return y
		}
		return x.Clone()
	}
}

// maxTableBits caps oracles and samplers that materialize all 2^n inputs.
const maxTableBits = 24

// Permuted composes CosetMin(b) with a keyed pseudorandom relabeling of
// outputs, so the coset structure is not visible syntactically. The
// relabeling is a Fisher–Yates permutation of all 2^n values driven by
// a keyed PRNG, hence deterministic per key. Panics for n above 24.
func Permuted(b BitString, key []byte) VectorOracle {
	n := b.Len()
	if n > maxTableBits {
		panic(fmt.Sprintf("oracle: Permuted requires n <= %d, got %d", maxTableBits, n))
	}
	prng, err := utils.NewKeyedPRNG(key)
	if err != nil {
		panic(fmt.Sprintf("oracle: keyed prng: %v", err))
	}
	size := uint64(1) << uint(n)
	perm := make([]uint64, size)
	for i := range perm {
		perm[i] = uint64(i)
	}
	for i := size - 1; i > 0; i-- {
		j := RandUint64n(prng, i+1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	inner := CosetMin(b)
	return func(x BitString) BitString {
		return FromUint(perm[inner(x).Uint()], n)
	}
}

// RandUint64n draws a uniform value in [0,n) by rejection sampling.
func RandUint64n(prng io.Reader, n uint64) uint64 {
	if n == 0 {
		panic("oracle: RandUint64n with n = 0")
	}
	buf := make([]byte, 8)
	bound := (^uint64(0) / n) * n
	for {
		if _, err := io.ReadFull(prng, buf); err != nil {
			panic(fmt.Sprintf("oracle: prng read failed: %v", err))
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v |= uint64(buf[i]) << uint(8*i)
		}
		if v < bound {
			return v % n
		}
	}
}

func checkLen(x BitString, n int) {
	if x.Len() != n {
		panic(fmt.Sprintf("oracle: input length %d, oracle expects %d", x.Len(), n))
	}
}
