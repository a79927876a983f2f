// counts.go
// Outcome tallies for repeated runs, keyed by measurement bitstring.
// This is the histogram data the demo binaries aggregate and plot.

package counts

import "sort"

// Counts maps an outcome key (a bitstring, or any label) to its tally.
type Counts map[string]int

// New returns an empty tally.
func New() Counts { return make(Counts) }

// Add increments the tally for key.
func (c Counts) Add(key string) { c[key]++ }

// AddN increments the tally for key by n.
func (c Counts) AddN(key string, n int) { c[key] += n }

// Merge folds other into c.
func (c Counts) Merge(other Counts) {
	for k, v := range other {
		c[k] += v
	}
}

// Total returns the sum of all tallies.
func (c Counts) Total() int {
	t := 0
	for _, v := range c {
		t += v
	}
	return t
}

// Keys returns the outcome keys in sorted order, for deterministic
// reports.
func (c Counts) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
