package clmm_math

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var OVERFLOW = errors.New("OVERFLOW")
var UNDERFLOW = errors.New("UNDERFLOW")
var INVALID_RANGE = errors.New("RANGE")

// LiquidityAddDelta applies a signed liquidity delta to an unsigned uint128
// liquidity value.
func LiquidityAddDelta(x decimal.Decimal, y decimal.Decimal) (decimal.Decimal, error) {
	if x.GreaterThan(MaxUint128) {
		return decimal.Zero, OVERFLOW
	}
	if y.GreaterThan(MaxUint128) {
		return decimal.Zero, OVERFLOW
	}
	if y.IsNegative() {
		negy := y.Neg()
		if negy.GreaterThan(x) {
			return decimal.Zero, UNDERFLOW
		}
		return x.Sub(negy), nil
	} else {
		if x.Add(y).GreaterThan(MaxUint128) {
			return decimal.Zero, OVERFLOW
		}
		return x.Add(y), nil
	}
}

// EncodeSqrtRatio returns sqrt(numerator/denominator) as a Ratio, the decimal
// analog of the SDK's EncodeSqrtRatioX96.
func EncodeSqrtRatio(numerator, denominator decimal.Decimal, mc MathContext) (Ratio, error) {
	if !numerator.IsPositive() || !denominator.IsPositive() {
		return Ratio{}, fmt.Errorf("%w: sqrt ratio operands must be positive, got %s/%s", INVALID_RATIO, numerator, denominator)
	}
	s, err := Sqrt(mc.Div(numerator, denominator), mc)
	if err != nil {
		return Ratio{}, err
	}
	return NewRatio(s)
}

// L = amount0 * (sqrtA * sqrtB) / (sqrtB - sqrtA), sqrtA < sqrtB
func maxLiquidityForAmount0(sqrtA, sqrtB, amount0 decimal.Decimal, mc MathContext) decimal.Decimal {
	num := mc.Mul(mc.Mul(amount0, sqrtA), sqrtB)
	return mc.Div(num, sqrtB.Sub(sqrtA))
}

// L = amount1 / (sqrtB - sqrtA), sqrtA < sqrtB
func maxLiquidityForAmount1(sqrtA, sqrtB, amount1 decimal.Decimal, mc MathContext) decimal.Decimal {
	return mc.Div(amount1, sqrtB.Sub(sqrtA))
}

// GetMaxLiquidityForAmounts computes the maximum liquidity the given token
// amounts can fund over the [a, b] sqrt-ratio range at the current sqrt
// ratio. The bounds may arrive in either order; they are sorted before the
// three-zone branch, so reversed bounds cannot change the result. The result
// is floored to the integer liquidity unit.
func GetMaxLiquidityForAmounts(sqrtRatioCurrent, sqrtRatioA, sqrtRatioB Ratio, amount0, amount1 NonNegativeDecimal, mc MathContext) (decimal.Decimal, error) {
	lower := sqrtRatioA.Decimal()
	upper := sqrtRatioB.Decimal()
	if lower.GreaterThan(upper) {
		lower, upper = upper, lower
	}
	if lower.Equal(upper) {
		return ZERO, fmt.Errorf("%w: sqrt ratio bounds must differ, got %s", INVALID_RANGE, lower)
	}
	current := sqrtRatioCurrent.Decimal()

	var liquidity decimal.Decimal
	if current.LessThanOrEqual(lower) {
		liquidity = maxLiquidityForAmount0(lower, upper, amount0.Decimal(), mc)
	} else if current.LessThan(upper) {
		liquidity0 := maxLiquidityForAmount0(current, upper, amount0.Decimal(), mc)
		liquidity1 := maxLiquidityForAmount1(lower, current, amount1.Decimal(), mc)
		if liquidity0.LessThan(liquidity1) {
			liquidity = liquidity0
		} else {
			liquidity = liquidity1
		}
	} else {
		liquidity = maxLiquidityForAmount1(lower, upper, amount1.Decimal(), mc)
	}
	return liquidity.RoundDown(0), nil
}

// amount0 = L * (sqrtB - sqrtA) / (sqrtA * sqrtB), rounded up
func getAmount0ForLiquidity(sqrtA, sqrtB, liquidity decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	return MulDivRoundingUp(liquidity, sqrtB.Sub(sqrtA), mc.Mul(sqrtA, sqrtB))
}

// amount1 = L * (sqrtB - sqrtA), rounded up
func getAmount1ForLiquidity(sqrtA, sqrtB, liquidity decimal.Decimal, mc MathContext) (decimal.Decimal, error) {
	return MulDivRoundingUp(liquidity, sqrtB.Sub(sqrtA), ONE)
}

// GetAmountsForLiquidity inverts GetMaxLiquidityForAmounts: the token amounts
// a given liquidity requires over [a, b] at the current sqrt ratio. Amounts
// are rounded up to whole token units, against the depositor.
func GetAmountsForLiquidity(sqrtRatioCurrent, sqrtRatioA, sqrtRatioB Ratio, liquidity decimal.Decimal, mc MathContext) (decimal.Decimal, decimal.Decimal, error) {
	if liquidity.IsNegative() {
		return ZERO, ZERO, fmt.Errorf("%w: liquidity must be >= 0, got %s", UNDERFLOW, liquidity)
	}
	lower := sqrtRatioA.Decimal()
	upper := sqrtRatioB.Decimal()
	if lower.GreaterThan(upper) {
		lower, upper = upper, lower
	}
	if lower.Equal(upper) {
		return ZERO, ZERO, fmt.Errorf("%w: sqrt ratio bounds must differ, got %s", INVALID_RANGE, lower)
	}
	current := sqrtRatioCurrent.Decimal()

	amount0 := ZERO
	amount1 := ZERO
	var err error
	if current.LessThanOrEqual(lower) {
		amount0, err = getAmount0ForLiquidity(lower, upper, liquidity, mc)
	} else if current.LessThan(upper) {
		amount0, err = getAmount0ForLiquidity(current, upper, liquidity, mc)
		if err == nil {
			amount1, err = getAmount1ForLiquidity(lower, current, liquidity, mc)
		}
	} else {
		amount1, err = getAmount1ForLiquidity(lower, upper, liquidity, mc)
	}
	if err != nil {
		return ZERO, ZERO, err
	}
	return amount0, amount1, nil
}
