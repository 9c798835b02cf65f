package clmm_math

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type FeeAmount int

const (
	FeeAmountLowest FeeAmount = 100
	FeeAmountLow    FeeAmount = 500
	FeeAmountMedium FeeAmount = 3000
	FeeAmountHigh   FeeAmount = 10000
)

var (
	MaxUint128 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(128)).Sub(decimal.NewFromInt(1))
	MaxUint160 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(160)).Sub(decimal.NewFromInt(1))
	MaxUint256 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(256)).Sub(decimal.NewFromInt(1))
	MaxInt128  = decimal.NewFromInt(2).Pow(decimal.NewFromInt(127)).Sub(decimal.NewFromInt(1))
	MinInt128  = decimal.NewFromInt(2).Pow(decimal.NewFromInt(127)).Neg()

	Q32  = decimal.NewFromInt(2).Pow(decimal.NewFromInt(32))
	Q96  = decimal.NewFromInt(2).Pow(decimal.NewFromInt(96))
	Q128 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(128))
	Q192 = decimal.NewFromInt(2).Pow(decimal.NewFromInt(192))

	TICK_SPACINGS = map[FeeAmount]int{
		FeeAmountLowest: 1,
		FeeAmountLow:    10,
		FeeAmountMedium: 60,
		FeeAmountHigh:   200,
	}
	MIN_TICK int = -887272
	MAX_TICK int = -MIN_TICK

	// price base of the tick coordinate: price = TICK_BASE^tick
	TICK_BASE = decimal.RequireFromString("1.0001")

	// ln(2) to 210 digits, enough for a 192-digit context plus guard digits
	LN2 = decimal.RequireFromString("0.693147180559945309417232121458176568075500134360255254120680009493393621969694715605863326996418687542001481020570685733685520235758130557032670751635075961930727570828371435190307038623891673471123350115364497")

	// on-chain sqrt price bounds in Q64.96 form (TickMath.sol); these validate
	// raw chain input, the decimal bounds below are the derived in-core ones
	MIN_SQRT_RATIO_X96    = decimal.NewFromInt(4295128739)
	MAX_SQRT_RATIO_X96, _ = decimal.NewFromString("1461446703485210103287273052203988822378723970342")

	// derived in init from GetSqrtRatioAtTick, never hand-duplicated
	MinSqrtRatio decimal.Decimal
	MaxSqrtRatio decimal.Decimal

	ZERO = decimal.Zero
	ONE  = decimal.NewFromInt(1)
	TWO  = decimal.NewFromInt(2)
)

func init() {
	minR, err := GetSqrtRatioAtTick(MIN_TICK, PriceContext)
	if err != nil {
		logrus.Panicf("derive min sqrt ratio: %s", err)
	}
	maxR, err := GetSqrtRatioAtTick(MAX_TICK, PriceContext)
	if err != nil {
		logrus.Panicf("derive max sqrt ratio: %s", err)
	}
	MinSqrtRatio = minR
	MaxSqrtRatio = maxR
}
