package clmm_math

import (
	"testing"

	"github.com/daoleno/uniswapv3-sdk/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// on-chain parity band: the fixed-point reference and this decimal core agree
// to one ulp of the Q64.96 grid at the extreme ticks
var parityTolerance = decimal.New(1, -9)

func TestNewTick(t *testing.T) {
	_, err := NewTick(MIN_TICK - 1)
	assert.ErrorIs(t, err, INVALID_TICK)

	_, err = NewTick(MAX_TICK + 1)
	assert.ErrorIs(t, err, INVALID_TICK)

	tk, err := NewTick(MIN_TICK)
	assert.NoError(t, err)
	assert.Equal(t, MIN_TICK, tk.Int())
}

func TestGetSqrtRatioAtTick(t *testing.T) {
	_, err := GetSqrtRatioAtTick(MIN_TICK-1, PriceContext)
	assert.ErrorIs(t, err, INVALID_TICK, "tick too small")

	_, err = GetSqrtRatioAtTick(MAX_TICK+1, PriceContext)
	assert.ErrorIs(t, err, INVALID_TICK, "tick too large")

	r0, err := GetSqrtRatioAtTick(0, PriceContext)
	assert.NoError(t, err)
	assert.True(t, r0.Equal(ONE), "tick zero is exactly one")

	r50, err := GetSqrtRatioAtTick(50, PriceContext)
	assert.NoError(t, err)
	expected := decimal.RequireFromString("1.0025030023012655314771480808177933019205792008200745772689")
	assert.True(t, EqualWithinPercents(expected, r50, fixtureTolerance, PriceContext))
}

func TestGetSqrtRatioAtTickParity(t *testing.T) {
	ticks := []int{MIN_TICK, -100000, -50, -1, 0, 1, 50, 100000, MAX_TICK}
	for _, tick := range ticks {
		mine, err := GetSqrtRatioAtTick(tick, PriceContext)
		assert.NoError(t, err, tick)
		ref, err := utils.GetSqrtRatioAtTick(tick)
		assert.NoError(t, err, tick)
		refD := decimal.NewFromBigInt(ref, 0)
		assert.True(t, EqualWithinPercents(refD, mine.Mul(Q96), parityTolerance, PriceContext), "tick %d", tick)
	}
}

func TestGetSqrtRatioX96AtTick(t *testing.T) {
	q, err := GetSqrtRatioX96AtTick(0, PriceContext)
	assert.NoError(t, err)
	assert.True(t, q.Decimal().Equal(Q96), "tick zero encodes to exactly 2^96")
}

func TestGetTickAtRatio(t *testing.T) {
	cases := []struct {
		ratio string
		tick  int
	}{
		{"1", 0},
		{"0.5", -6932},
		{"2", 6931},
		{"3000", 80067},
		{"10000000000", 230270},
		{"0.0001234", -90006},
	}
	for _, c := range cases {
		tk, err := GetTickAtRatio(MustRatio(decimal.RequireFromString(c.ratio)), PriceContext)
		assert.NoError(t, err, c.ratio)
		assert.Equal(t, c.tick, tk.Int(), "ratio %s", c.ratio)
	}
}

func TestGetTickAtRatioBrackets(t *testing.T) {
	// the returned tick's price must bracket the ratio from below
	for _, raw := range []string{"0.5", "2", "3000", "10000000000"} {
		ratio := decimal.RequireFromString(raw)
		tk, err := GetTickAtRatio(MustRatio(ratio), PriceContext)
		assert.NoError(t, err, raw)
		below, err := PowInt(TICK_BASE, int64(tk.Int()), PriceContext)
		assert.NoError(t, err)
		above, err := PowInt(TICK_BASE, int64(tk.Int())+1, PriceContext)
		assert.NoError(t, err)
		assert.True(t, below.LessThanOrEqual(ratio), "ratio %s", raw)
		assert.True(t, above.GreaterThan(ratio), "ratio %s", raw)
	}
}

func TestGetTickAtSqrtRatio(t *testing.T) {
	sqrt2, err := Sqrt(TWO, PriceContext)
	assert.NoError(t, err)
	tk, err := GetTickAtSqrtRatio(MustRatio(sqrt2), PriceContext)
	assert.NoError(t, err)
	assert.Equal(t, 6931, tk.Int())

	tk, err = GetTickAtSqrtRatio(MustRatio(ONE), PriceContext)
	assert.NoError(t, err)
	assert.Equal(t, 0, tk.Int())
}

func TestToTickSpacing(t *testing.T) {
	assert.Equal(t, 1, ToTickSpacing(FeeAmountLowest))
	assert.Equal(t, 10, ToTickSpacing(FeeAmountLow))
	assert.Equal(t, 60, ToTickSpacing(FeeAmountMedium))
	assert.Equal(t, 200, ToTickSpacing(FeeAmountHigh))
	assert.Panics(t, func() { ToTickSpacing(FeeAmount(1234)) })
}

func TestNearestUsableTick(t *testing.T) {
	assert.Equal(t, 0, NearestUsableTick(0, 1))
	assert.Equal(t, 0, NearestUsableTick(10, 60))
	assert.Equal(t, 60, NearestUsableTick(40, 60))
	assert.Equal(t, -60, NearestUsableTick(-40, 60))
	assert.Equal(t, 60, NearestUsableTick(30, 60), "midpoint rounds away from zero")
	assert.Equal(t, -60, NearestUsableTick(-30, 60))

	// rounding would overshoot the bound; step one spacing inward
	assert.Equal(t, -887220, NearestUsableTick(MIN_TICK, 60))
	assert.Equal(t, 887220, NearestUsableTick(MAX_TICK, 60))

	assert.Panics(t, func() { NearestUsableTick(0, 0) })
}

func TestNearestUsableTickProperties(t *testing.T) {
	ticks := []int{MIN_TICK, -887100, -35027, -1, 0, 1, 29, 35027, 887100, MAX_TICK}
	for _, spacing := range []int{1, 10, 60, 200} {
		for _, tick := range ticks {
			usable := NearestUsableTick(tick, spacing)
			assert.Equal(t, 0, usable%spacing, "tick %d spacing %d", tick, spacing)
			assert.GreaterOrEqual(t, usable, MIN_TICK, "tick %d spacing %d", tick, spacing)
			assert.LessOrEqual(t, usable, MAX_TICK, "tick %d spacing %d", tick, spacing)
			diff := usable - tick
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, spacing, "tick %d spacing %d", tick, spacing)
		}
	}
}

func TestTickSpacingToMaxLiquidityPerTick(t *testing.T) {
	cases := []struct {
		spacing int64
		want    string
	}{
		{1, "191757530477355301479181766273477"},
		{10, "1917559095893846719543856547154045"},
		{60, "11505354575363080317263139282924270"},
		{200, "38345995821606768476828330790147420"},
	}
	for _, c := range cases {
		got := TickSpacingToMaxLiquidityPerTick(c.spacing)
		assert.Equal(t, c.want, got.String(), "spacing %d", c.spacing)
	}
}
