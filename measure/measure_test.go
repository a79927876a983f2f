package measure

import "testing"

func TestCounterDisabledIsNoop(t *testing.T) {
	Enabled = false
	c := Counter{M: make(map[string]int64)}
	c.Add("oracle/queries/test", 3)
	if got := c.Get("oracle/queries/test"); got != 0 {
		t.Fatalf("disabled counter recorded %d, want 0", got)
	}
}

func TestCounterAddAndReset(t *testing.T) {
	Enabled = true
	defer func() { Enabled = false }()
	c := Counter{M: make(map[string]int64)}
	c.Add("oracle/queries/dj", 5)
	c.Add("oracle/queries/dj", 2)
	if got := c.Get("oracle/queries/dj"); got != 7 {
		t.Fatalf("Get = %d, want 7", got)
	}
	c.Reset()
	if got := c.Get("oracle/queries/dj"); got != 0 {
		t.Fatalf("after Reset, Get = %d, want 0", got)
	}
}
