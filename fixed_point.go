package clmm_math

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

var (
	INVALID_RATIO       = errors.New("RATIO")
	INVALID_AMOUNT      = errors.New("AMOUNT")
	Q64X96_OUT_OF_RANGE = errors.New("Q64X96")
	NEGATIVE_DECIMAL    = errors.New("NEGATIVE")
)

// q64x96Bound is the inclusive upper bound 2^160.
var q64x96Bound = new(uint256.Int).Lsh(uint256.NewInt(1), 160)

// q64x96DecodeScale is the number of fractional decimal digits used when
// decoding; 2^-96 terminates within 96 decimal places so anything >= 96 is
// exact.
const q64x96DecodeScale = 128

// Ratio is a strictly positive decimal, a price or sqrt-price ratio.
type Ratio struct {
	v decimal.Decimal
}

func NewRatio(d decimal.Decimal) (Ratio, error) {
	if !d.IsPositive() {
		return Ratio{}, fmt.Errorf("%w: must be > 0, got %s", INVALID_RATIO, d)
	}
	return Ratio{v: d}, nil
}

// MustRatio is the trusted variant for already-validated values such as
// package constants; it must never see input from outside the trust boundary.
func MustRatio(d decimal.Decimal) Ratio {
	r, err := NewRatio(d)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Ratio) Decimal() decimal.Decimal { return r.v }

// Reciprocal returns 1/r under the given context.
func (r Ratio) Reciprocal(mc MathContext) Ratio {
	return Ratio{v: mc.Div(ONE, r.v)}
}

func (r Ratio) String() string { return r.v.String() }

// NonNegativeDecimal is a decimal constrained to >= 0.
type NonNegativeDecimal struct {
	v decimal.Decimal
}

func NewNonNegativeDecimal(d decimal.Decimal) (NonNegativeDecimal, error) {
	if d.IsNegative() {
		return NonNegativeDecimal{}, fmt.Errorf("%w: must be >= 0, got %s", NEGATIVE_DECIMAL, d)
	}
	return NonNegativeDecimal{v: d}, nil
}

func MustNonNegativeDecimal(d decimal.Decimal) NonNegativeDecimal {
	n, err := NewNonNegativeDecimal(d)
	if err != nil {
		panic(err)
	}
	return n
}

func (n NonNegativeDecimal) Decimal() decimal.Decimal { return n.v }

func (n NonNegativeDecimal) String() string { return n.v.String() }

// Amount is an unscaled integer token amount in [0, 2^256-1].
type Amount struct {
	v decimal.Decimal
}

func NewAmount(d decimal.Decimal) (Amount, error) {
	if d.IsNegative() || d.GreaterThan(MaxUint256) {
		return Amount{}, fmt.Errorf("%w: must be in [0, 2^256-1], got %s", INVALID_AMOUNT, d)
	}
	if !d.Equal(d.Truncate(0)) {
		return Amount{}, fmt.Errorf("%w: must be an integer, got %s", INVALID_AMOUNT, d)
	}
	return Amount{v: d}, nil
}

func MustAmount(d decimal.Decimal) Amount {
	a, err := NewAmount(d)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Decimal() decimal.Decimal { return a.v }

func (a Amount) String() string { return a.v.String() }

// Q64x96 is an unsigned fixed-point number with 64 integer and 96 fractional
// bits, stored in 256-bit form. Valid values are 0 <= v <= 2^160.
type Q64x96 struct {
	v uint256.Int
}

func NewQ64x96(raw *big.Int) (Q64x96, error) {
	if raw == nil || raw.Sign() < 0 {
		return Q64x96{}, fmt.Errorf("%w: must be non-negative, got %v", Q64X96_OUT_OF_RANGE, raw)
	}
	u, overflow := uint256.FromBig(raw)
	if overflow || u.Gt(q64x96Bound) {
		return Q64x96{}, fmt.Errorf("%w: %s exceeds 2^160", Q64X96_OUT_OF_RANGE, raw)
	}
	return Q64x96{v: *u}, nil
}

func MustQ64x96(raw *big.Int) Q64x96 {
	q, err := NewQ64x96(raw)
	if err != nil {
		panic(err)
	}
	return q
}

// Big returns the raw fixed-point integer.
func (q Q64x96) Big() *big.Int { return q.v.ToBig() }

// Decimal returns the raw fixed-point integer as a decimal, still scaled by
// 2^96; use Q64x96ToDecimal for the real-number value.
func (q Q64x96) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(q.Big(), 0)
}

func (q Q64x96) Equal(other Q64x96) bool { return q.v.Eq(&other.v) }

func (q Q64x96) String() string { return q.v.Dec() }

// DecimalToQ64x96 encodes round(value * 2^96), failing if the result lands
// outside [0, 2^160]; it never saturates.
func DecimalToQ64x96(value decimal.Decimal) (Q64x96, error) {
	scaled := value.Mul(Q96).Round(0)
	return NewQ64x96(scaled.BigInt())
}

// Q64x96ToDecimal decodes q / 2^96. The division is exact at the decode
// scale, which is what makes the encode/decode round trip an identity.
func Q64x96ToDecimal(q Q64x96) decimal.Decimal {
	return q.Decimal().DivRound(Q96, q64x96DecodeScale)
}

// DecimalToNumeratorDenominator splits d into an exact integer fraction: the
// numerator is the unscaled coefficient and the denominator is 10^scale.
func DecimalToNumeratorDenominator(d decimal.Decimal) (*big.Int, *big.Int) {
	exp := int64(d.Exponent())
	if exp >= 0 {
		num := new(big.Int).Mul(d.Coefficient(), pow10(exp))
		return num, big.NewInt(1)
	}
	return new(big.Int).Set(d.Coefficient()), pow10(-exp)
}

func pow10(n int64) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(n), nil)
}
