package oracle

import "quantum-query/measure"

// CountingBit wraps a BitOracle and counts queries. The tally also
// feeds measure.Global under "oracle/queries/<label>" when stats are
// enabled.
type CountingBit struct {
	f     BitOracle
	label string
	n     uint64
}

func NewCountingBit(f BitOracle, label string) *CountingBit {
	return &CountingBit{f: f, label: label}
}

// Query evaluates the wrapped oracle on x.
func (c *CountingBit) Query(x BitString) uint8 {
	c.n++
	measure.Global.Add("oracle/queries/"+c.label, 1)
	return c.f(x)
}

// Oracle returns the wrapper as a plain BitOracle.
func (c *CountingBit) Oracle() BitOracle { return c.Query }

// Queries returns the number of evaluations so far.
func (c *CountingBit) Queries() uint64 { return c.n }

// CountingVector is the VectorOracle counterpart of CountingBit.
type CountingVector struct {
	f     VectorOracle
	label string
	n     uint64
}

func NewCountingVector(f VectorOracle, label string) *CountingVector {
	return &CountingVector{f: f, label: label}
}

func (c *CountingVector) Query(x BitString) BitString {
	c.n++
	measure.Global.Add("oracle/queries/"+c.label, 1)
	return c.f(x)
}

func (c *CountingVector) Oracle() VectorOracle { return c.Query }

func (c *CountingVector) Queries() uint64 { return c.n }
