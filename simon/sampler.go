// sampler.go
// Sources of kernel-orthogonal sample vectors. The default sampler is
// the classical stand-in for the quantum measurement: it derives the
// collision structure of the oracle by scanning paired queries, then
// draws uniform vectors from the orthogonal complement of the hidden
// shift by rejection.

package simon

import (
	"fmt"

	"quantum-query/oracle"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// A Sampler yields vectors z satisfying ⟨b,z⟩ = 0 for the oracle's
// hidden shift b. The recovery loop never inspects b; it only consumes
// samples and tracks rank.
type Sampler interface {
	Next() (oracle.BitString, error)
}

// maxScanBits bounds the collision scan of the default sampler.
const maxScanBits = 24

type orthogonalSampler struct {
	n     int
	shift oracle.BitString
	prng  utils.PRNG
}

func newOrthogonalSampler(f oracle.VectorOracle, n int, prng utils.PRNG) *orthogonalSampler {
	if n > maxScanBits {
		panic(fmt.Sprintf("simon: default sampler requires n <= %d, got %d; supply WithSampler", maxScanBits, n))
	}
	return &orthogonalSampler{n: n, shift: collisionShift(f, n), prng: prng}
}

// Next draws uniform bit strings until one lands in the orthogonal
// complement of the shift. Acceptance probability is 1/2 for a nonzero
// shift and 1 otherwise.
func (s *orthogonalSampler) Next() (oracle.BitString, error) {
	for {
		z := oracle.Random(s.n, s.prng)
		if z.Dot(s.shift) == 0 {
			return z, nil
		}
	}
}

// collisionShift scans inputs in counting order and hashes outputs
// until two inputs collide; their XOR is the hidden shift. A full scan
// without collision means the oracle is one-to-one (zero shift).
func collisionShift(f oracle.VectorOracle, n int) oracle.BitString {
	seen := make(map[string]oracle.BitString)
	size := uint64(1) << uint(n)
	for x := uint64(0); x < size; x++ {
		in := oracle.FromUint(x, n)
		key := f(in).String()
		if prev, ok := seen[key]; ok {
			return in.Xor(prev)
		}
		seen[key] = in
	}
	return oracle.Zero(n)
}
