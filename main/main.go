package main

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	clmm_math "github.com/CoinSummer/clmm-math"
)

func main() {
	mc := clmm_math.PriceContext

	sqrtRatio, err := clmm_math.GetSqrtRatioAtTick(50, mc)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("sqrt ratio at tick 50: %s", sqrtRatio)

	sqrtCurrent, err := clmm_math.EncodeSqrtRatio(decimal.NewFromInt(1), decimal.NewFromInt(1), mc)
	if err != nil {
		logrus.Fatal(err)
	}
	sqrtLowerD, err := clmm_math.GetSqrtRatioAtTick(-887220, mc)
	if err != nil {
		logrus.Fatal(err)
	}
	sqrtUpperD, err := clmm_math.GetSqrtRatioAtTick(887220, mc)
	if err != nil {
		logrus.Fatal(err)
	}

	amount0 := clmm_math.MustNonNegativeDecimal(decimal.NewFromInt(100))
	amount1 := clmm_math.MustNonNegativeDecimal(decimal.NewFromInt(200))
	liquidity, err := clmm_math.GetMaxLiquidityForAmounts(
		sqrtCurrent,
		clmm_math.MustRatio(sqrtLowerD),
		clmm_math.MustRatio(sqrtUpperD),
		amount0,
		amount1,
		mc,
	)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.Infof("max liquidity for 100/200 over full range: %s", liquidity)
}
