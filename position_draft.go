package clmm_math

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var INVALID_TICK_RANGE = errors.New("TICK_RANGE")

// PositionDraft is the ephemeral result of sizing a position: the token
// amounts a liquidity value implies over a tick range at the current price.
// Drafts are never persisted.
type PositionDraft struct {
	Id             string
	PoolId         string
	TickLower      Tick
	TickUpper      Tick
	TickCurrent    Tick
	Liquidity      decimal.Decimal
	DesiredAmount0 Amount
	DesiredAmount1 Amount
	CreatedAt      time.Time
}

func (d *PositionDraft) Clone() *PositionDraft {
	c := *d
	return &c
}

// CalculatePositionDraftFromLiquidity derives the desired token amounts for
// the given liquidity over [tickLower, tickUpper]. The below/inside/above
// branch is decided on sqrt ratios, not on tick integers, so no
// double-rounding can flip a zone; tickCurrent is carried on the draft for
// bookkeeping only.
func CalculatePositionDraftFromLiquidity(
	pool *PoolState,
	sqrtRatioCurrent Ratio,
	liquidity decimal.Decimal,
	tickLower int,
	tickUpper int,
	tickCurrent int,
	mc MathContext,
) (*PositionDraft, error) {
	if tickLower >= tickUpper {
		return nil, fmt.Errorf("%w: tickLower %d must be below tickUpper %d", INVALID_TICK_RANGE, tickLower, tickUpper)
	}
	lower, err := NewTick(tickLower)
	if err != nil {
		return nil, err
	}
	upper, err := NewTick(tickUpper)
	if err != nil {
		return nil, err
	}
	current, err := NewTick(tickCurrent)
	if err != nil {
		return nil, err
	}
	if liquidity.IsNegative() {
		return nil, fmt.Errorf("%w: liquidity must be >= 0, got %s", UNDERFLOW, liquidity)
	}

	sqrtLower, err := GetSqrtRatioAtTick(tickLower, mc)
	if err != nil {
		return nil, err
	}
	sqrtUpper, err := GetSqrtRatioAtTick(tickUpper, mc)
	if err != nil {
		return nil, err
	}
	lowerRatio, err := NewRatio(sqrtLower)
	if err != nil {
		return nil, err
	}
	upperRatio, err := NewRatio(sqrtUpper)
	if err != nil {
		return nil, err
	}

	amount0, amount1, err := GetAmountsForLiquidity(sqrtRatioCurrent, lowerRatio, upperRatio, liquidity, mc)
	if err != nil {
		return nil, err
	}
	desired0, err := NewAmount(amount0)
	if err != nil {
		return nil, err
	}
	desired1, err := NewAmount(amount1)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	poolId := ""
	if pool != nil && pool.Config != nil {
		poolId = pool.Config.Id
	}
	return &PositionDraft{
		Id:             id.String(),
		PoolId:         poolId,
		TickLower:      lower,
		TickUpper:      upper,
		TickCurrent:    current,
		Liquidity:      liquidity,
		DesiredAmount0: desired0,
		DesiredAmount1: desired1,
		CreatedAt:      time.Now(),
	}, nil
}

func GetDraftKey(owner string, tickLower int, tickUpper int) string {
	return fmt.Sprintf("%s_%d_%d", owner, tickLower, tickUpper)
}

// DraftBook is an in-memory registry of drafts keyed by owner and range. It
// holds no external resources and is not safe for concurrent mutation;
// callers own synchronization.
type DraftBook struct {
	Drafts map[string]*PositionDraft
}

func NewDraftBook() *DraftBook {
	return &DraftBook{
		Drafts: map[string]*PositionDraft{},
	}
}

func (db *DraftBook) Set(key string, draft *PositionDraft) {
	db.Drafts[key] = draft
}

func (db *DraftBook) Get(key string) (*PositionDraft, bool) {
	d, ok := db.Drafts[key]
	return d, ok
}

func (db *DraftBook) Clear(key string) {
	delete(db.Drafts, key)
}

func (db *DraftBook) Clone() *DraftBook {
	newB := NewDraftBook()
	for k, d := range db.Drafts {
		newB.Drafts[k] = d.Clone()
	}
	return newB
}
