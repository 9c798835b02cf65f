package clmm_math

import "github.com/shopspring/decimal"

// EqualWithinPercents reports whether actual falls inside the band
// [expected*(1-percents), expected*(1+percents)]. The bounds are min/max
// sorted after scaling so a negative expected keeps the band oriented; values
// exactly on a bound are accepted.
func EqualWithinPercents(expected, actual, percents decimal.Decimal, mc MathContext) bool {
	lower := mc.Mul(expected, ONE.Sub(percents))
	upper := mc.Mul(expected, ONE.Add(percents))
	if lower.GreaterThan(upper) {
		lower, upper = upper, lower
	}
	return actual.GreaterThanOrEqual(lower) && actual.LessThanOrEqual(upper)
}

// EqualAtScale truncates actual to expected's scale and compares the rendered
// strings. Intended for presentation-oriented comparisons where trailing
// digits beyond the expected scale are noise.
func EqualAtScale(expected, actual decimal.Decimal) bool {
	scale := -expected.Exponent()
	if scale < 0 {
		scale = 0
	}
	return actual.Truncate(scale).String() == expected.String()
}
