package clmm_math

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// mulDivScale is the fractional resolution used before flooring/ceiling.
const mulDivScale = 64

// MulDiv computes floor(a * b / denominator), failing on a zero denominator
// or a result outside [0, 2^256-1].
func MulDiv(a, b, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return ZERO, fmt.Errorf("%w: mul div denominator", ZERO_DIVISION)
	}
	r := a.Mul(b).DivRound(denominator, mulDivScale).Floor()
	if r.GreaterThan(MaxUint256) || r.LessThan(MaxUint256.Neg()) {
		return ZERO, OVERFLOW
	}
	return r, nil
}

// MulDivRoundingUp computes ceil(a * b / denominator) under the same range
// contract as MulDiv.
func MulDivRoundingUp(a, b, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.IsZero() {
		return ZERO, fmt.Errorf("%w: mul div denominator", ZERO_DIVISION)
	}
	r := a.Mul(b).DivRound(denominator, mulDivScale).Ceil()
	if r.GreaterThan(MaxUint256) || r.LessThan(MaxUint256.Neg()) {
		return ZERO, OVERFLOW
	}
	return r, nil
}
