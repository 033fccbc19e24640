package catalog

import "testing"

func TestDebounce_OnlyLatestTokenFires(t *testing.T) {
	var d Debounce

	t1 := d.Put("a")
	t2 := d.Put("ab")

	// The wakeup for "a" arrives first but was superseded.
	if v, ok := d.Take(t1); ok {
		t.Fatalf("stale token must not fire, got %q", v)
	}
	v, ok := d.Take(t2)
	if !ok {
		t.Fatalf("latest token should fire")
	}
	if v != "ab" {
		t.Fatalf("expected %q, got %q", "ab", v)
	}
}

func TestDebounce_FiresOnce(t *testing.T) {
	var d Debounce
	tok := d.Put("x")
	if _, ok := d.Take(tok); !ok {
		t.Fatalf("first take should fire")
	}
	if _, ok := d.Take(tok); ok {
		t.Fatalf("second take of the same token must not fire")
	}
}

func TestDebounce_CancelDropsPending(t *testing.T) {
	var d Debounce
	tok := d.Put("x")
	d.Cancel()
	if v, ok := d.Take(tok); ok {
		t.Fatalf("cancelled gate must not emit, got %q", v)
	}
}

func TestDebounce_OutputOrderMatchesInputOrder(t *testing.T) {
	var d Debounce

	// Two settled windows: each burst emits only its final value, in order.
	var out []string
	d.Put("m")
	tok := d.Put("mi")
	if v, ok := d.Take(tok); ok {
		out = append(out, v)
	}
	d.Put("mil")
	tok = d.Put("milk")
	if v, ok := d.Take(tok); ok {
		out = append(out, v)
	}

	if len(out) != 2 || out[0] != "mi" || out[1] != "milk" {
		t.Fatalf("unexpected emissions: %q", out)
	}
}
