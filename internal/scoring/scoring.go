// Package scoring provides the rating ladders and normalization helpers
// shared by the benchmark, campaign, channel and funnel engines. Keeping
// the ladders here guarantees the same score maps to the same rating
// everywhere.
package scoring

// Rating labels for the five-level ladder.
const (
	RatingExcellent = "Excellent"
	RatingGood      = "Good"
	RatingFair      = "Fair"
	RatingPoor      = "Poor"
	RatingCritical  = "Critical"
)

type threshold struct {
	min   float64
	label string
}

// Descending cut points. Rate and Grade walk these top-down and return
// the first label whose minimum the score clears.
var ratingLadder = []threshold{
	{90, RatingExcellent},
	{75, RatingGood},
	{60, RatingFair},
	{40, RatingPoor},
}

var gradeLadder = []threshold{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
}

// Rate maps a 0-120 score onto the five-level rating ladder.
func Rate(score float64) string {
	for _, t := range ratingLadder {
		if score >= t.min {
			return t.label
		}
	}
	return RatingCritical
}

// Grade maps an overall score onto a letter grade.
func Grade(score float64) string {
	for _, t := range gradeLadder {
		if score >= t.min {
			return t.label
		}
	}
	return "F"
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NormalizeLinear maps value onto 0-100 within [min, max], mirrored when
// lower values are better. A degenerate range scores a neutral 50: the
// component is not comparable, not failing.
func NormalizeLinear(value, min, max float64, higherIsBetter bool) float64 {
	rangeSize := max - min
	if rangeSize == 0 {
		return 50
	}
	if higherIsBetter {
		return Clamp((value-min)/rangeSize*100, 0, 100)
	}
	return Clamp((max-value)/rangeSize*100, 0, 100)
}

// SafeRatio divides with a zero guard. Ratios over empty denominators are
// defined as 0 throughout the system, never NaN or Inf.
func SafeRatio(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// SafePercent is SafeRatio expressed as a percentage.
func SafePercent(numerator, denominator float64) float64 {
	return SafeRatio(numerator, denominator) * 100
}
