package simon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantum-query/oracle"
)

func mustParse(t *testing.T, s string) oracle.BitString {
	t.Helper()
	b, err := oracle.Parse(s)
	require.NoError(t, err)
	return b
}

func TestRecoverTwoToOne(t *testing.T) {
	b := mustParse(t, "110")
	f := oracle.CosetMin(b)
	got, err := Recover(f, 3, WithSeed([]byte("fixed")))
	require.NoError(t, err)
	assert.Equal(t, "110", got.String())
	// the mandatory validation must hold on the recovered shift
	assert.True(t, f(oracle.Zero(3)).Equal(f(got)))
}

func TestRecoverAllShiftsWidth4(t *testing.T) {
	for u := uint64(1); u < 16; u++ {
		b := oracle.FromUint(u, 4)
		got, err := Recover(oracle.CosetMin(b), 4, WithSeed([]byte{byte(u)}))
		require.NoError(t, err, "shift %s", b)
		assert.True(t, got.Equal(b), "got %s, want %s", got, b)
	}
}

func TestRecoverOneToOneReturnsZero(t *testing.T) {
	got, err := Recover(oracle.Identity(3), 3, WithSeed([]byte("fixed")))
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s, want all zeros", got)
}

func TestRecoverPermutedOracle(t *testing.T) {
	b := mustParse(t, "1001")
	f := oracle.Permuted(b, []byte("relabel"))
	got, err := Recover(f, 4, WithSeed([]byte("fixed")))
	require.NoError(t, err)
	assert.True(t, got.Equal(b), "got %s, want %s", got, b)
}

func TestRecoverIdempotentUnderSeed(t *testing.T) {
	b := mustParse(t, "0111")
	f := oracle.Permuted(b, []byte("relabel"))
	first, err := Recover(f, 4, WithSeed([]byte("same-seed")), WithProbes(4))
	require.NoError(t, err)
	second, err := Recover(f, 4, WithSeed([]byte("same-seed")), WithProbes(4))
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestRecoverWidthEdgeCases(t *testing.T) {
	got, err := Recover(oracle.Identity(0), 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())

	got, err = Recover(oracle.CosetMin(mustParse(t, "1")), 1, WithSeed([]byte("s")))
	require.NoError(t, err)
	assert.Equal(t, "1", got.String())

	got, err = Recover(oracle.Identity(1), 1, WithSeed([]byte("s")))
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())
}

// zeroSampler never produces an independent row.
type zeroSampler struct{ n int }

func (s zeroSampler) Next() (oracle.BitString, error) {
	return oracle.Zero(s.n), nil
}

func TestRecoverDegenerate(t *testing.T) {
	_, err := Recover(oracle.CosetMin(mustParse(t, "110")), 3,
		WithSampler(zeroSampler{n: 3}),
		WithMaxSamples(8),
		WithSeed([]byte("fixed")),
	)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestRecoverInvalidOracleViaProbes(t *testing.T) {
	// every input maps to the same output: collisions at every shift,
	// far beyond the two-to-one contract
	degenerate := func(x oracle.BitString) oracle.BitString {
		return oracle.Zero(3)
	}
	_, err := Recover(degenerate, 3, WithSeed([]byte("fixed")), WithProbes(16))
	assert.ErrorIs(t, err, ErrInvalidOracle)
}

func TestRecoverSkipsDependentSamples(t *testing.T) {
	// a sampler that repeats itself must still converge within bound
	b := mustParse(t, "101")
	rows := []string{"010", "010", "010", "111", "111", "010"}
	i := 0
	repeat := samplerFunc(func() (oracle.BitString, error) {
		r := mustParseStatic(rows[i%len(rows)])
		i++
		return r, nil
	})
	got, err := Recover(oracle.CosetMin(b), 3, WithSampler(repeat), WithMaxSamples(len(rows)))
	require.NoError(t, err)
	assert.True(t, got.Equal(b), "got %s, want %s", got, b)
}

type samplerFunc func() (oracle.BitString, error)

func (f samplerFunc) Next() (oracle.BitString, error) { return f() }

func mustParseStatic(s string) oracle.BitString {
	b, err := oracle.Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestCollisionShift(t *testing.T) {
	b := mustParse(t, "011")
	shift := collisionShift(oracle.CosetMin(b), 3)
	assert.True(t, shift.Equal(b), "got %s, want %s", shift, b)

	zero := collisionShift(oracle.Identity(3), 3)
	assert.True(t, zero.IsZero())
}
