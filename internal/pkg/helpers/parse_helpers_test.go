package helpers

import (
	"testing"
	"time"
)

func TestParseDuration(t *testing.T) {
	if got := ParseDuration("2h", time.Minute); got != 2*time.Hour {
		t.Errorf("ParseDuration(2h) = %v, want 2h", got)
	}
	if got := ParseDuration("bogus", time.Minute); got != time.Minute {
		t.Errorf("ParseDuration(bogus) = %v, want fallback 1m", got)
	}
}

func TestParseFloatOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"7.5", 7.5},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"8", 8},
	}
	for _, c := range cases {
		if got := ParseFloatOrZero(c.in); got != c.want {
			t.Errorf("ParseFloatOrZero(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseIntOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"3", 3},
		{"", 0},
		{"x", 0},
		{"-1", -1},
	}
	for _, c := range cases {
		if got := ParseIntOrZero(c.in); got != c.want {
			t.Errorf("ParseIntOrZero(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
