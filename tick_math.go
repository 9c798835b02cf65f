package clmm_math

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var INVALID_TICK = errors.New("TICK")

// Tick is a signed tick index validated into [MIN_TICK, MAX_TICK].
type Tick int

func NewTick(index int) (Tick, error) {
	if index < MIN_TICK || index > MAX_TICK {
		return 0, fmt.Errorf("%w: %d outside [%d, %d]", INVALID_TICK, index, MIN_TICK, MAX_TICK)
	}
	return Tick(index), nil
}

func MustTick(index int) Tick {
	t, err := NewTick(index)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tick) Int() int { return int(t) }

// GetSqrtRatioAtTick computes sqrt(TICK_BASE^tick) as a plain decimal sqrt
// ratio. Negative ticks go through the reciprocal power.
func GetSqrtRatioAtTick(tick int, mc MathContext) (decimal.Decimal, error) {
	if tick < MIN_TICK || tick > MAX_TICK {
		return ZERO, fmt.Errorf("%w: %d outside [%d, %d]", INVALID_TICK, tick, MIN_TICK, MAX_TICK)
	}
	p, err := PowInt(TICK_BASE, int64(tick), mc)
	if err != nil {
		return ZERO, err
	}
	return Sqrt(p, mc)
}

// GetSqrtRatioX96AtTick composes GetSqrtRatioAtTick with the Q64.96 encoder.
func GetSqrtRatioX96AtTick(tick int, mc MathContext) (Q64x96, error) {
	r, err := GetSqrtRatioAtTick(tick, mc)
	if err != nil {
		return Q64x96{}, err
	}
	return DecimalToQ64x96(r)
}

// GetTickAtRatio returns floor(log_TICK_BASE(ratio)) validated into a Tick.
// The argument is the full token1/token0 price ratio, NOT its square root;
// callers holding a sqrt ratio use GetTickAtSqrtRatio.
func GetTickAtRatio(ratio Ratio, mc MathContext) (Tick, error) {
	lg, err := Log(TICK_BASE, ratio.Decimal(), mc)
	if err != nil {
		return 0, err
	}
	return NewTick(int(lg.Floor().IntPart()))
}

// GetTickAtSqrtRatio squares the sqrt ratio and delegates to GetTickAtRatio;
// this is the only place the squaring happens.
func GetTickAtSqrtRatio(sqrtRatio Ratio, mc MathContext) (Tick, error) {
	squared := mc.Mul(sqrtRatio.Decimal(), sqrtRatio.Decimal())
	ratio, err := NewRatio(squared)
	if err != nil {
		return 0, err
	}
	return GetTickAtRatio(ratio, mc)
}

// ToTickSpacing maps a fee tier to its tick spacing. An unknown tier is a
// caller bug, not a recoverable condition.
func ToTickSpacing(fee FeeAmount) int {
	ts, ok := TICK_SPACINGS[fee]
	if !ok {
		logrus.Panicf("unknown fee tier: %d", fee)
	}
	return ts
}

// NearestUsableTick rounds tick to the nearest multiple of tickSpacing,
// stepping one spacing inward when the rounded multiple overshoots a bound so
// the result is always both usable and in range.
func NearestUsableTick(tick int, tickSpacing int) int {
	if tickSpacing <= 0 {
		logrus.Panicf("invalid tick spacing: %d", tickSpacing)
	}
	ts := decimal.NewFromInt(int64(tickSpacing))
	rounded := decimal.NewFromInt(int64(tick)).DivRound(ts, 8).Round(0).IntPart() * int64(tickSpacing)
	if rounded < int64(MIN_TICK) {
		rounded += int64(tickSpacing)
	} else if rounded > int64(MAX_TICK) {
		rounded -= int64(tickSpacing)
	}
	return int(rounded)
}

func TickSpacingToMaxLiquidityPerTick(tickSpacing int64) decimal.Decimal {
	ts := decimal.NewFromInt(tickSpacing)
	minTick := decimal.NewFromInt(int64(MIN_TICK)).DivRound(ts, 8).Floor().Mul(ts)
	maxTick := decimal.NewFromInt(int64(MAX_TICK)).DivRound(ts, 8).Floor().Mul(ts)
	numTicks := maxTick.Sub(minTick).DivRound(ts, 8).Floor().Add(ONE)
	return decimal.NewFromBigInt(new(big.Int).Quo(MaxUint128.BigInt(), numTicks.BigInt()), 0)
}
