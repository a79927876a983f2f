// system.go
// Incremental homogeneous linear systems over GF(2). Rows are reduced
// on insertion and the stored basis is kept in reduced row-echelon
// form, so rank queries are O(1) and the nullspace solve is a single
// read-off of the free column.

package gf2

import (
	"errors"
	"fmt"

	"quantum-query/oracle"
)

// ErrFullRank is returned by NullspaceVector when every column is a
// pivot, i.e. the homogeneous system only has the trivial solution.
var ErrFullRank = errors.New("gf2: system has full rank, nullspace is trivial")

// System accumulates linearly independent rows of width n. The zero
// right-hand side is implicit: every equation reads ⟨row,x⟩ = 0.
type System struct {
	n      int
	rows   []oracle.BitString // reduced rows, one pivot each
	pivots []int              // pivots[i] is the pivot column of rows[i]
}

// NewSystem returns an empty system over n variables.
func NewSystem(n int) *System {
	if n < 0 {
		panic("gf2: negative system width")
	}
	return &System{n: n}
}

// N returns the number of variables.
func (s *System) N() int { return s.n }

// Rank returns the number of independent rows inserted so far.
func (s *System) Rank() int { return len(s.rows) }

// Insert reduces row against the stored basis and keeps it only if it
// is independent, i.e. raises the rank. It reports whether the row was
// kept. The stored basis stays in reduced row-echelon form: after
// insertion no stored row has a nonzero entry in another row's pivot
// column.
func (s *System) Insert(row oracle.BitString) bool {
	if row.Len() != s.n {
		panic(fmt.Sprintf("gf2: row width %d, system width %d", row.Len(), s.n))
	}
	r := row.Clone()
	for i, p := range s.pivots {
		if r[p] == 1 {
			r.XorInPlace(s.rows[i])
		}
	}
	pivot := -1
	for j := s.n - 1; j >= 0; j-- {
		if r[j] == 1 {
			pivot = j
			break
		}
	}
	if pivot == -1 {
		return false
	}
	// back-reduce: clear the new pivot column in all stored rows
	for i := range s.rows {
		if s.rows[i][pivot] == 1 {
			s.rows[i].XorInPlace(r)
		}
	}
	s.rows = append(s.rows, r)
	s.pivots = append(s.pivots, pivot)
	return true
}

// NullspaceVector solves the homogeneous system for a nonzero kernel
// element: the lowest-index free column is set to 1, every other free
// variable to 0, and the pivot variables are read off the reduced
// rows. With rank n-1 the kernel is one-dimensional and the result is
// its unique nonzero element.
func (s *System) NullspaceVector() (oracle.BitString, error) {
	isPivot := make([]bool, s.n)
	for _, p := range s.pivots {
		isPivot[p] = true
	}
	free := -1
	for j := 0; j < s.n; j++ {
		if !isPivot[j] {
			free = j
			break
		}
	}
	if free == -1 {
		return nil, ErrFullRank
	}
	x := oracle.Zero(s.n)
	x[free] = 1
	// rows are fully reduced: row i is e_{pivot} plus entries on free
	// columns only, so ⟨row,x⟩ = 0 forces x[pivot] = row[free].
	for i, p := range s.pivots {
		x[p] = s.rows[i][free]
	}
	return x, nil
}

// Rows returns copies of the reduced basis rows, for diagnostics.
func (s *System) Rows() []oracle.BitString {
	out := make([]oracle.BitString, len(s.rows))
	for i, r := range s.rows {
		out[i] = r.Clone()
	}
	return out
}
