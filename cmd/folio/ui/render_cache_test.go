package ui

import "testing"

func TestComputeKey(t *testing.T) {
	if ComputeKey("about", 80, true) != ComputeKey("about", 80, true) {
		t.Errorf("same inputs must hash the same")
	}
	if ComputeKey("about", 80, true) == ComputeKey("about", 80, false) {
		t.Errorf("theme flag must change the key")
	}
	if ComputeKey("prefix", 1.0) == ComputeKey("prefix", 2.0) {
		t.Errorf("floats must change the key")
	}
	if ComputeKey("ab", "c") == ComputeKey("a", "bc") {
		t.Errorf("string boundaries must change the key")
	}
}

func TestRenderCache_GetOrCompute(t *testing.T) {
	rc := NewRenderCache(4)
	calls := 0
	render := func() string {
		calls++
		return "rendered"
	}

	key := ComputeKey("hero", 80)
	if got := rc.GetOrCompute(key, render); got != "rendered" {
		t.Fatalf("unexpected render %q", got)
	}
	rc.GetOrCompute(key, render)

	if calls != 1 {
		t.Errorf("expected one render, got %d", calls)
	}
	if hits, misses := rc.Stats(); hits != 1 || misses != 1 {
		t.Errorf("stats = %d hits, %d misses", hits, misses)
	}
}

func TestRenderCache_EvictsOldest(t *testing.T) {
	rc := NewRenderCache(2)
	rc.Set(1, "a")
	rc.Set(2, "b")
	rc.Set(2, "b2") // overwrite does not count as new
	rc.Set(3, "c")

	if _, ok := rc.Get(1); ok {
		t.Errorf("oldest entry should be evicted")
	}
	if v, _ := rc.Get(2); v != "b2" {
		t.Errorf("expected overwritten value, got %q", v)
	}
	if rc.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", rc.Len())
	}

	rc.Clear()
	if rc.Len() != 0 {
		t.Errorf("expected empty cache after Clear")
	}
}
