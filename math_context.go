package clmm_math

import "github.com/shopspring/decimal"

// RoundingMode selects how a MathContext discards excess digits.
type RoundingMode int

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfEven
	RoundTowardZero
)

// MathContext is an explicit (precision, rounding mode) pair. Precision counts
// significant digits, not decimal places. Contexts are plain values passed to
// every transcendental or division operation; there is no package-level
// default that operations fall back to.
type MathContext struct {
	Precision int32
	Rounding  RoundingMode
}

var (
	// PriceContext is the standard context for tick/price math.
	PriceContext = MathContext{Precision: 128, Rounding: RoundHalfEven}
	// AmountContext is the standard context for token amount math.
	AmountContext = MathContext{Precision: 192, Rounding: RoundHalfEven}
)

// guard widens the context for intermediate steps so that the final rounding
// absorbs accumulated error.
func (mc MathContext) guard() MathContext {
	return MathContext{Precision: mc.Precision + 10, Rounding: mc.Rounding}
}

// Round trims d to the context's number of significant digits.
func (mc MathContext) Round(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	digits := int32(d.NumDigits())
	if digits <= mc.Precision {
		return d
	}
	// value = coefficient * 10^exp, so rounding to P significant digits means
	// rounding at P - (digits + exp) decimal places
	places := mc.Precision - (digits + d.Exponent())
	switch mc.Rounding {
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundTowardZero:
		return d.RoundDown(places)
	default:
		return d.Round(places)
	}
}

// Mul multiplies exactly, then rounds into the context.
func (mc MathContext) Mul(a, b decimal.Decimal) decimal.Decimal {
	return mc.Round(a.Mul(b))
}

// Div divides a by b with enough fractional digits to retain the context's
// significant digits regardless of the quotient's magnitude.
func (mc MathContext) Div(a, b decimal.Decimal) decimal.Decimal {
	if a.IsZero() {
		return a
	}
	ordA := int32(a.NumDigits()) + a.Exponent()
	ordB := int32(b.NumDigits()) + b.Exponent()
	places := mc.Precision - (ordA - ordB) + 2
	if places < 0 {
		places = 0
	}
	return mc.Round(a.DivRound(b, places))
}
