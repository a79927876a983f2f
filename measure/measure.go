package measure

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

var Enabled bool
var Global Counter

func init() {
	Enabled = os.Getenv("ORACLE_STATS") == "1"
	Global = Counter{M: make(map[string]int64)}
}

// Counter tallies oracle queries (and any other per-run totals) under
// string keys of the form "oracle/queries/<label>".
type Counter struct {
	mu sync.Mutex
	M  map[string]int64
}

func (c *Counter) Add(key string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	c.M[key] += n
	c.mu.Unlock()
}

// Get returns the current tally for key (0 when disabled or unseen).
func (c *Counter) Get(key string) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.M[key]
}

// Reset clears all tallies.
func (c *Counter) Reset() {
	c.mu.Lock()
	c.M = make(map[string]int64)
	c.mu.Unlock()
}

func (c *Counter) Dump() {
	if !Enabled {
		return
	}
	c.mu.Lock()
	keys := make([]string, 0, len(c.M))
	for k := range c.M {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("[measure] Query report:")
	for _, k := range keys {
		fmt.Printf("[measure] %s = %d\n", k, c.M[k])
	}
	c.mu.Unlock()
}

func Section(name string, f func()) {
	if !Enabled {
		f()
		return
	}
	fmt.Printf("[measure] Begin %s\n", name)
	f()
	fmt.Printf("[measure] End %s\n", name)
}
