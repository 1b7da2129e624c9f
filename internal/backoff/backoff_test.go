package backoff

import "testing"

func TestDelayMatchesSpecExample(t *testing.T) {
	want := []int{2, 4, 8, 16}
	for i, w := range want {
		attempts := uint32(i + 1)
		got := Delay(2, attempts)
		if got.Seconds() != float64(w) {
			t.Fatalf("Delay(2, %d) = %v, want %ds", attempts, got, w)
		}
	}
}

func TestDelayMonotonic(t *testing.T) {
	var prev = Delay(2, 1)
	for n := uint32(2); n < 20; n++ {
		cur := Delay(2, n)
		if cur <= prev {
			t.Fatalf("Delay(2, %d) = %v not greater than Delay(2, %d) = %v", n, cur, n-1, prev)
		}
		prev = cur
	}
}

func TestDelaySaturatesAtCeiling(t *testing.T) {
	got := Delay(2, 1000)
	if got != Ceiling {
		t.Fatalf("Delay(2, 1000) = %v, want ceiling %v", got, Ceiling)
	}
}

func TestCounterNextExhausted(t *testing.T) {
	c := Counter{Base: 2, MaxRetries: 3}
	if _, ok := c.Next(3); !ok {
		t.Fatal("Next(3) should still be allowed when MaxRetries=3")
	}
	if _, ok := c.Next(4); ok {
		t.Fatal("Next(4) should be exhausted when MaxRetries=3")
	}
}
