// bitstring.go
// Fixed-length bit vectors over GF(2). Bit i is the coefficient of 2^i;
// String renders the most significant bit first, matching the readout
// order of measurement bitstrings.

package oracle

import (
	"fmt"
	"io"
)

// BitString is an ordered sequence of bits of fixed length. Each entry
// holds 0 or 1; anything else is a programmer error.
type BitString []uint8

// Zero returns the all-zero string of length n.
func Zero(n int) BitString {
	if n < 0 {
		panic("oracle: negative bit-string length")
	}
	return make(BitString, n)
}

// Unit returns e_i of length n: all zeros except bit i.
func Unit(n, i int) BitString {
	b := Zero(n)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("oracle: unit index %d out of range [0,%d)", i, n))
	}
	b[i] = 1
	return b
}

// FromUint returns the n low bits of u as a BitString.
func FromUint(u uint64, n int) BitString {
	if n < 0 || n > 64 {
		panic(fmt.Sprintf("oracle: FromUint length %d out of range [0,64]", n))
	}
	b := make(BitString, n)
	for i := 0; i < n; i++ {
		b[i] = uint8((u >> uint(i)) & 1)
	}
	return b
}

// Parse reads a bit string from its textual form, most significant bit
// first ("1011" ⇒ bit 3 = 1, bit 2 = 0, bit 1 = 1, bit 0 = 1).
func Parse(s string) (BitString, error) {
	n := len(s)
	b := make(BitString, n)
	for i, c := range s {
		switch c {
		case '0':
			b[n-1-i] = 0
		case '1':
			b[n-1-i] = 1
		default:
			return nil, fmt.Errorf("oracle: invalid bit %q at position %d", c, i)
		}
	}
	return b, nil
}

// Random draws a uniform bit string of length n from prng.
func Random(n int, prng io.Reader) BitString {
	buf := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(prng, buf); err != nil {
		panic(fmt.Sprintf("oracle: prng read failed: %v", err))
	}
	b := make(BitString, n)
	for i := 0; i < n; i++ {
		b[i] = (buf[i/8] >> uint(i%8)) & 1
	}
	return b
}

// Len returns the number of bits.
func (b BitString) Len() int { return len(b) }

// Clone returns an independent copy.
func (b BitString) Clone() BitString {
	return append(BitString(nil), b...)
}

// Bit returns bit i.
func (b BitString) Bit(i int) uint8 { return b[i] }

// Xor returns b ⊕ other. Panics on length mismatch.
func (b BitString) Xor(other BitString) BitString {
	if len(b) != len(other) {
		panic("oracle: Xor length mismatch")
	}
	out := make(BitString, len(b))
	for i := range b {
		out[i] = b[i] ^ other[i]
	}
	return out
}

// XorInPlace folds other into b.
func (b BitString) XorInPlace(other BitString) {
	if len(b) != len(other) {
		panic("oracle: XorInPlace length mismatch")
	}
	for i := range b {
		b[i] ^= other[i]
	}
}

// Dot returns the mod-2 dot product ⟨b,other⟩.
func (b BitString) Dot(other BitString) uint8 {
	if len(b) != len(other) {
		panic("oracle: Dot length mismatch")
	}
	var acc uint8
	for i := range b {
		acc ^= b[i] & other[i]
	}
	return acc
}

// Equal reports whether b and other hold the same bits.
func (b BitString) Equal(other BitString) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every bit is 0.
func (b BitString) IsZero() bool {
	for _, bit := range b {
		if bit != 0 {
			return false
		}
	}
	return true
}

// Weight returns the Hamming weight.
func (b BitString) Weight() int {
	w := 0
	for _, bit := range b {
		if bit != 0 {
			w++
		}
	}
	return w
}

// Uint packs b into an unsigned integer. Panics for lengths above 64.
func (b BitString) Uint() uint64 {
	if len(b) > 64 {
		panic("oracle: Uint on bit string longer than 64")
	}
	var u uint64
	for i, bit := range b {
		u |= uint64(bit) << uint(i)
	}
	return u
}

// Less orders bit strings by their integer value, any length.
func (b BitString) Less(other BitString) bool {
	if len(b) != len(other) {
		panic("oracle: Less length mismatch")
	}
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != other[i] {
			return b[i] < other[i]
		}
	}
	return false
}

func (b BitString) String() string {
	out := make([]byte, len(b))
	for i, bit := range b {
		out[len(b)-1-i] = '0' + bit
	}
	return string(out)
}
