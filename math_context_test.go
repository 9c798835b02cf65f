package clmm_math

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMathContextRound(t *testing.T) {
	mc := MathContext{Precision: 5, Rounding: RoundHalfEven}

	assert.True(t, mc.Round(decimal.NewFromInt(123456)).Equal(decimal.NewFromInt(123460)), "precision counts significant digits, not places")
	assert.True(t, mc.Round(decimal.RequireFromString("2.718281828")).Equal(decimal.RequireFromString("2.7183")))
	assert.True(t, mc.Round(decimal.NewFromInt(42)).Equal(decimal.NewFromInt(42)), "short values pass through")
	assert.True(t, mc.Round(ZERO).IsZero())

	down := MathContext{Precision: 5, Rounding: RoundTowardZero}
	assert.True(t, down.Round(decimal.RequireFromString("2.718281828")).Equal(decimal.RequireFromString("2.7182")))
}

func TestMathContextDiv(t *testing.T) {
	mc := MathContext{Precision: 5, Rounding: RoundHalfEven}

	r := mc.Div(ONE, decimal.NewFromInt(3))
	assert.True(t, r.Equal(decimal.RequireFromString("0.33333")))

	// quotient magnitude does not eat into significant digits
	r = mc.Div(decimal.NewFromInt(1000000), decimal.NewFromInt(3))
	assert.True(t, r.Equal(decimal.RequireFromString("333330")))

	assert.True(t, mc.Div(ZERO, decimal.NewFromInt(3)).IsZero())
}

func TestMathContextMul(t *testing.T) {
	mc := MathContext{Precision: 5, Rounding: RoundHalfEven}
	r := mc.Mul(decimal.RequireFromString("1.2345"), decimal.RequireFromString("1.2345"))
	assert.True(t, r.Equal(decimal.RequireFromString("1.5240")), "1.52399... rounds into five digits")
}
