// recover.go
// Classical reference for hidden-shift recovery against a promised
// two-to-one oracle: accumulate rank-increasing equations ⟨z,b⟩ = 0
// over GF(2), solve the homogeneous system for its one-dimensional
// nullspace, and validate the candidate against the oracle.

package simon

import (
	"errors"
	"fmt"

	"quantum-query/gf2"
	"quantum-query/oracle"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// ErrDegenerate reports that the sample bound was exhausted before
// n-1 independent equations were collected.
var ErrDegenerate = errors.New("simon: insufficient independent samples within bound")

// ErrInvalidOracle reports evidence inconsistent with the one-to-one /
// two-to-one promise.
var ErrInvalidOracle = errors.New("simon: oracle violates two-to-one promise")

type config struct {
	seed       []byte
	maxSamples int
	sampler    Sampler
	probes     int
}

// Option configures Recover.
type Option func(*config)

// WithSeed keys the sampling PRNG for reproducible runs. Without it a
// fresh random key is drawn.
func WithSeed(key []byte) Option {
	return func(c *config) { c.seed = append([]byte(nil), key...) }
}

// WithMaxSamples bounds the number of sample vectors consumed before
// the run is declared degenerate. Default is 64·n (at least 16).
func WithMaxSamples(m int) Option {
	return func(c *config) {
		if m <= 0 {
			panic("simon: WithMaxSamples requires a positive bound")
		}
		c.maxSamples = m
	}
}

// WithSampler substitutes the source of orthogonal sample vectors,
// e.g. empirical measurement outcomes from an external circuit runner.
func WithSampler(s Sampler) Option {
	return func(c *config) { c.sampler = s }
}

// WithProbes enables k extra random collision probes after the solve,
// turning contract-violation detection on. The f(0) = f(b) check on
// the candidate always runs; probing beyond it is opt-in.
func WithProbes(k int) Option {
	return func(c *config) {
		if k < 0 {
			panic("simon: WithProbes requires k >= 0")
		}
		c.probes = k
	}
}

// Recover returns the hidden shift b of a two-to-one oracle, or the
// zero string when the oracle is one-to-one. The run moves from
// collecting to exactly one terminal state: a returned string,
// ErrDegenerate, or ErrInvalidOracle. Errors carry no partial result.
func Recover(f oracle.VectorOracle, n int, opts ...Option) (oracle.BitString, error) {
	if n < 0 {
		panic(fmt.Sprintf("simon: negative n = %d", n))
	}
	cfg := config{maxSamples: 64 * n}
	if cfg.maxSamples < 16 {
		cfg.maxSamples = 16
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if n == 0 {
		return oracle.Zero(0), nil
	}

	var prng utils.PRNG
	var err error
	if cfg.seed != nil {
		prng, err = utils.NewKeyedPRNG(cfg.seed)
	} else {
		prng, err = utils.NewPRNG()
	}
	if err != nil {
		return nil, fmt.Errorf("simon: prng: %w", err)
	}

	sampler := cfg.sampler
	if sampler == nil {
		sampler = newOrthogonalSampler(f, n, prng)
	}

	// collect: every kept row raises the rank; dependent rows still
	// count against the sample bound.
	sys := gf2.NewSystem(n)
	for samples := 0; sys.Rank() < n-1; {
		if samples >= cfg.maxSamples {
			return nil, ErrDegenerate
		}
		z, err := sampler.Next()
		if err != nil {
			return nil, fmt.Errorf("simon: sampler: %w", err)
		}
		samples++
		sys.Insert(z)
	}

	// solve: rank n-1 leaves a one-dimensional nullspace. Full rank
	// would contradict the promise outright, since b itself satisfies
	// every collected equation.
	cand, err := sys.NullspaceVector()
	if err != nil {
		return nil, ErrInvalidOracle
	}

	// validate: a refuted candidate proves b is not nonzero, because a
	// nonzero b would be the unique kernel element. Under the promise
	// that leaves only the one-to-one case.
	b := oracle.Zero(n)
	if f(oracle.Zero(n)).Equal(f(cand)) {
		b = cand
	}
	if cfg.probes > 0 {
		if err := probePromise(f, n, b, prng, cfg.probes); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// probePromise samples random collision pairs and checks them against
// the recovered shift: a collision at a foreign shift, or a missing
// collision at the recovered one, breaks the two-to-one contract.
func probePromise(f oracle.VectorOracle, n int, b oracle.BitString, prng utils.PRNG, probes int) error {
	for i := 0; i < probes; i++ {
		x := oracle.Random(n, prng)
		r := oracle.Random(n, prng)
		if r.IsZero() {
			continue
		}
		collides := f(x).Equal(f(x.Xor(r)))
		switch {
		case collides && !r.Equal(b):
			return ErrInvalidOracle
		case !collides && r.Equal(b):
			return ErrInvalidOracle
		}
	}
	return nil
}
