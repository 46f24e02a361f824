package eviction

import "testing"

func TestLRUOrder(t *testing.T) {
	p := NewPolicy(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a") // b is now the least recently used

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := p.Evict(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if got := p.Evict(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := p.Evict(); got != "" {
		t.Fatalf("expected empty on exhausted policy, got %q", got)
	}
}

func TestLRUOverwriteCountsAsUse(t *testing.T) {
	p := NewPolicy(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("a") // overwrite, a becomes most recent

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestLRURemove(t *testing.T) {
	p := NewPolicy(LRU)

	p.OnPut("a")
	p.OnPut("b")
	p.Remove("a")

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b after removing a, got %q", got)
	}
	p.Remove("missing") // must be a no-op
}

func TestFIFOOrder(t *testing.T) {
	p := NewPolicy(FIFO)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a") // reads do not matter for FIFO
	p.OnPut("a") // neither do overwrites

	if got := p.Evict(); got != "a" {
		t.Fatalf("expected oldest insertion a, got %q", got)
	}
	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestLFUEvictsLeastFrequent(t *testing.T) {
	p := NewPolicy(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")
	p.OnGet("a")
	p.OnGet("b")

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected least frequent b, got %q", got)
	}
	if got := p.Evict(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestLFURemove(t *testing.T) {
	p := NewPolicy(LFU)

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("b")
	p.Remove("a")

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b after removing a, got %q", got)
	}
}

func TestUnknownPolicyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown policy type")
		}
	}()
	NewPolicy(PolicyType("BOGUS"))
}
