package scoring

import "testing"

func TestRate(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{120, RatingExcellent},
		{90, RatingExcellent},
		{89.9, RatingGood},
		{75, RatingGood},
		{60, RatingFair},
		{59.9, RatingPoor},
		{40, RatingPoor},
		{39.9, RatingCritical},
		{0, RatingCritical},
		{-5, RatingCritical},
	}

	for _, tt := range tests {
		if got := Rate(tt.score); got != tt.want {
			t.Errorf("Rate(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{95, "A"},
		{90, "A"},
		{85, "B"},
		{72, "C"},
		{60, "D"},
		{59, "F"},
		{0, "F"},
	}

	for _, tt := range tests {
		if got := Grade(tt.score); got != tt.want {
			t.Errorf("Grade(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestNormalizeLinear(t *testing.T) {
	tests := []struct {
		name           string
		value          float64
		min, max       float64
		higherIsBetter bool
		want           float64
	}{
		{"midpoint higher", 50, 0, 100, true, 50},
		{"above max clamps", 150, 0, 100, true, 100},
		{"below min clamps", -10, 0, 100, true, 0},
		{"lower is better mirrors", 80, 0, 100, false, 20},
		{"lower is better at min", 0, 0, 100, false, 100},
		{"degenerate range neutral", 42, 10, 10, true, 50},
		{"degenerate range neutral inverted", 42, 10, 10, false, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeLinear(tt.value, tt.min, tt.max, tt.higherIsBetter)
			if got != tt.want {
				t.Errorf("NormalizeLinear(%v, %v, %v, %v) = %v, want %v",
					tt.value, tt.min, tt.max, tt.higherIsBetter, got, tt.want)
			}
		})
	}
}

func TestSafeRatio_ZeroDenominator(t *testing.T) {
	if got := SafeRatio(100, 0); got != 0 {
		t.Errorf("SafeRatio(100, 0) = %v, want 0", got)
	}
	if got := SafePercent(100, 0); got != 0 {
		t.Errorf("SafePercent(100, 0) = %v, want 0", got)
	}
	if got := SafePercent(25, 100); got != 25 {
		t.Errorf("SafePercent(25, 100) = %v, want 25", got)
	}
}
