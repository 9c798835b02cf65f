package clmm_math

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	INVALID_LOG_ARGUMENT   = errors.New("LOG_ARGUMENT")
	INSUFFICIENT_PRECISION = errors.New("PRECISION")
	ZERO_DIVISION          = errors.New("ZERO_DIVISION")
)

// maxLnIterations bounds the atanh series; with the argument reduced into
// [1,2) every term shrinks by at least 1/9, so the cap is never reached for
// any context this package supports.
const maxLnIterations = 10000

// maxLnPrecision is the largest context precision Ln supports, limited by the
// stored digits of LN2.
const maxLnPrecision = 200

// Ln computes the natural logarithm of x.
//
// x is reduced into [1,2) by repeated halving/doubling while counting the
// doublings n, then ln(y) = 2*atanh((y-1)/(y+1)) is summed until the term
// magnitude drops below 10^-precision; the result is n*ln(2) + ln(y).
func Ln(x decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	if !x.IsPositive() {
		return ZERO, fmt.Errorf("%w: ln argument must be positive, got %s", INVALID_LOG_ARGUMENT, x)
	}
	if mc.Precision > maxLnPrecision {
		return ZERO, fmt.Errorf("%w: context precision %d exceeds supported %d", INSUFFICIENT_PRECISION, mc.Precision, maxLnPrecision)
	}
	inner := mc.guard()

	y := x
	n := int64(0)
	for y.GreaterThanOrEqual(TWO) {
		y = inner.Div(y, TWO)
		n++
	}
	for y.LessThan(ONE) {
		y = inner.Mul(y, TWO)
		n--
	}

	z := inner.Div(y.Sub(ONE), y.Add(ONE))
	z2 := inner.Mul(z, z)
	eps := decimal.New(1, -(mc.Precision + 2))

	sum := ZERO
	term := z
	k := int64(1)
	for {
		contrib := inner.Div(term, decimal.NewFromInt(k))
		sum = inner.Round(sum.Add(contrib))
		if contrib.Abs().LessThan(eps) {
			break
		}
		term = inner.Mul(term, z2)
		k += 2
		if k > maxLnIterations {
			logrus.Warnf("ln series did not converge for %s at precision %d", x, mc.Precision)
			return ZERO, fmt.Errorf("%w: ln series did not converge", INSUFFICIENT_PRECISION)
		}
	}

	result := inner.Mul(decimal.NewFromInt(n), LN2).Add(inner.Mul(sum, TWO))
	return mc.Round(result), nil
}

// Log2 computes the base-2 logarithm as ln(x)/ln(2) under one context.
func Log2(x decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	return Log(TWO, x, mc)
}

// Log computes log_base(x) as ln(x)/ln(base) under one context.
func Log(base, x decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	lnx, err := Ln(x, mc)
	if err != nil {
		return ZERO, err
	}
	lnb, err := Ln(base, mc)
	if err != nil {
		return ZERO, err
	}
	if lnb.IsZero() {
		return ZERO, fmt.Errorf("%w: log base must not be 1, got %s", INVALID_LOG_ARGUMENT, base)
	}
	return mc.Div(lnx, lnb), nil
}

// PowInt raises base to an integer power by binary exponentiation, negative
// exponents going through the reciprocal of the positive power.
func PowInt(base decimal.Decimal, exp int64, mc MathContext) (decimal.Decimal, error) {
	if base.IsZero() {
		if exp <= 0 {
			return ZERO, fmt.Errorf("%w: 0^%d", ZERO_DIVISION, exp)
		}
		return ZERO, nil
	}
	if exp == 0 {
		return ONE, nil
	}
	inner := mc.guard()
	neg := exp < 0
	if neg {
		exp = -exp
	}
	result := ONE
	acc := base
	for exp > 0 {
		if exp&1 == 1 {
			result = inner.Mul(result, acc)
		}
		exp >>= 1
		if exp > 0 {
			acc = inner.Mul(acc, acc)
		}
	}
	if neg {
		result = inner.Div(ONE, result)
	}
	return mc.Round(result), nil
}

// Sqrt computes the square root by Newton iteration, seeded from a binary
// float approximation.
func Sqrt(x decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	if x.IsNegative() {
		return ZERO, fmt.Errorf("%w: sqrt argument must be non-negative, got %s", INVALID_LOG_ARGUMENT, x)
	}
	if x.IsZero() {
		return ZERO, nil
	}
	inner := mc.guard()

	seedFloat, _, err := big.ParseFloat(x.String(), 10, 64, big.ToNearestEven)
	if err != nil {
		return ZERO, fmt.Errorf("%w: unparseable sqrt argument %s", INSUFFICIENT_PRECISION, x)
	}
	seedFloat.Sqrt(seedFloat)
	s, err := decimal.NewFromString(seedFloat.Text('e', 18))
	if err != nil {
		return ZERO, fmt.Errorf("%w: sqrt seed for %s", INSUFFICIENT_PRECISION, x)
	}

	eps := decimal.New(1, -(mc.Precision + 2))
	for i := 0; i < 64; i++ {
		next := inner.Div(s.Add(inner.Div(x, s)), TWO)
		diff := next.Sub(s).Abs()
		s = next
		if diff.LessThanOrEqual(s.Abs().Mul(eps)) {
			return mc.Round(s), nil
		}
	}
	logrus.Warnf("sqrt did not converge for %s at precision %d", x, mc.Precision)
	return ZERO, fmt.Errorf("%w: sqrt did not converge", INSUFFICIENT_PRECISION)
}
