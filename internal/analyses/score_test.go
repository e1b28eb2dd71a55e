package analyses

import (
	"errors"
	"testing"
)

func TestNormalizeScoreAcceptsIntsInRange(t *testing.T) {
	for _, n := range []int{0, 1, 42, 87, 99, 100} {
		got, err := normalizeScore(n)
		if err != nil {
			t.Fatalf("normalizeScore(%d): %v", n, err)
		}
		if got != n {
			t.Fatalf("normalizeScore(%d) = %d", n, got)
		}
	}
}

func TestNormalizeScoreRejectsOutOfRange(t *testing.T) {
	for _, n := range []int{-1, -50, 101, 140, 1000} {
		_, err := normalizeScore(n)
		var scoreErr *ScoreError
		if !errors.As(err, &scoreErr) {
			t.Fatalf("normalizeScore(%d): expected ScoreError, got %v", n, err)
		}
	}
}

func TestNormalizeScorePercentageStrings(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"87%", 87},
		{"0%", 0},
		{"100%", 100},
		{" 42% ", 42},
		{"42 %", 42},
		{"55", 55},
	}
	for _, tc := range cases {
		got, err := normalizeScore(tc.in)
		if err != nil {
			t.Fatalf("normalizeScore(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("normalizeScore(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeScoreJSONNumbers(t *testing.T) {
	// json.Unmarshal into any yields float64 for numbers.
	got, err := normalizeScore(float64(72))
	if err != nil {
		t.Fatalf("normalizeScore(72.0): %v", err)
	}
	if got != 72 {
		t.Fatalf("normalizeScore(72.0) = %d", got)
	}

	if _, err := normalizeScore(float64(72.5)); err == nil {
		t.Fatal("expected fractional number to be rejected")
	}
}

func TestNormalizeScoreRejectsGarbage(t *testing.T) {
	cases := []struct {
		name string
		in   any
	}{
		{"letters with percent", "abc%"},
		{"empty string", ""},
		{"nil", nil},
		{"bool", true},
		{"array", []any{float64(1), float64(2)}},
		{"object", map[string]any{"score": float64(80)}},
		{"out of range string", "140%"},
		{"negative string", "-5%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := normalizeScore(tc.in)
			var scoreErr *ScoreError
			if !errors.As(err, &scoreErr) {
				t.Fatalf("normalizeScore(%v): expected ScoreError, got %v", tc.in, err)
			}
			if scoreErr.Reason == "" {
				t.Fatal("expected a reason on ScoreError")
			}
		})
	}
}

func TestScoreErrorRetainsRawValue(t *testing.T) {
	_, err := normalizeScore("bad")
	var scoreErr *ScoreError
	if !errors.As(err, &scoreErr) {
		t.Fatalf("expected ScoreError, got %v", err)
	}
	if scoreErr.Raw != "bad" {
		t.Fatalf("expected raw value retained, got %v", scoreErr.Raw)
	}
}
