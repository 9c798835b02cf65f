package clmm_math

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var INVALID_SQRT_PRICE = errors.New("SQRT_PRICE")

// PoolConfig identifies a pool: the token pair, its decimal counts and the
// fee tier. The tick spacing is derived from the fee tier, never supplied.
type PoolConfig struct {
	Id             string
	TickSpacing    int
	Token0         common.Address
	Token1         common.Address
	Token0Decimals uint8
	Token1Decimals uint8
	Fee            FeeAmount
}

func NewPoolConfig(
	token0 common.Address,
	token1 common.Address,
	token0Decimals uint8,
	token1Decimals uint8,
	fee FeeAmount,
) (*PoolConfig, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	return &PoolConfig{
		Id:             id.String(),
		TickSpacing:    ToTickSpacing(fee),
		Token0:         token0,
		Token1:         token1,
		Token0Decimals: token0Decimals,
		Token1Decimals: token1Decimals,
		Fee:            fee,
	}, nil
}

// PoolState is a validated snapshot of a pool's price state. All fields are
// refined at construction; nothing here is re-checked on the hot path.
type PoolState struct {
	Config       *PoolConfig
	SqrtPriceX96 Q64x96
	SqrtRatio    Ratio
	TickCurrent  Tick
	Liquidity    decimal.Decimal
}

// NewPoolStateFromChain is the trust boundary for raw slot0 values read from
// a pool contract. Every field goes through refined construction; raw values
// outside their invariants are rejected, never clamped.
func NewPoolStateFromChain(config *PoolConfig, sqrtPriceX96 *big.Int, tick int64, liquidity *big.Int) (*PoolState, error) {
	q, err := NewQ64x96(sqrtPriceX96)
	if err != nil {
		return nil, err
	}
	qd := q.Decimal()
	if qd.LessThan(MIN_SQRT_RATIO_X96) || qd.GreaterThan(MAX_SQRT_RATIO_X96) {
		return nil, fmt.Errorf("%w: %s outside on-chain sqrt price bounds", INVALID_SQRT_PRICE, qd)
	}
	t, err := NewTick(int(tick))
	if err != nil {
		return nil, err
	}
	liq := decimal.NewFromBigInt(liquidity, 0)
	if liq.IsNegative() || liq.GreaterThan(MaxUint128) {
		return nil, fmt.Errorf("%w: liquidity %s outside uint128", OVERFLOW, liq)
	}
	sqrtRatio, err := NewRatio(Q64x96ToDecimal(q))
	if err != nil {
		return nil, err
	}
	return &PoolState{
		Config:       config,
		SqrtPriceX96: q,
		SqrtRatio:    sqrtRatio,
		TickCurrent:  t,
		Liquidity:    liq,
	}, nil
}

// Initialize sets the pool's first price and derives the current tick from
// it, the way a pool contract's initialize call does.
func (ps *PoolState) Initialize(sqrtPriceX96 *big.Int) error {
	q, err := NewQ64x96(sqrtPriceX96)
	if err != nil {
		return err
	}
	sqrtRatio, err := NewRatio(Q64x96ToDecimal(q))
	if err != nil {
		return err
	}
	tick, err := GetTickAtSqrtRatio(sqrtRatio, PriceContext)
	if err != nil {
		return err
	}
	ps.SqrtPriceX96 = q
	ps.SqrtRatio = sqrtRatio
	ps.TickCurrent = tick
	ps.Liquidity = ZERO
	return nil
}

// Price returns the token1/token0 price implied by the current sqrt ratio,
// adjusted for the pair's decimal counts.
func (ps *PoolState) Price(mc MathContext) decimal.Decimal {
	raw := mc.Mul(ps.SqrtRatio.Decimal(), ps.SqrtRatio.Decimal())
	shift := int32(ps.Config.Token0Decimals) - int32(ps.Config.Token1Decimals)
	return raw.Shift(shift)
}

// Clone returns an independent copy of the state sharing the immutable
// config.
func (ps *PoolState) Clone() *PoolState {
	return &PoolState{
		Config:       ps.Config,
		SqrtPriceX96: ps.SqrtPriceX96,
		SqrtRatio:    ps.SqrtRatio,
		TickCurrent:  ps.TickCurrent,
		Liquidity:    ps.Liquidity,
	}
}
