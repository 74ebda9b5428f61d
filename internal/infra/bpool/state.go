// Package bpool reads the state of an on-chain weighted pool and converts it
// into the exact fractions the pricing functions take.
package bpool

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// TokenState is the on-chain state of one bound token.
type TokenState struct {
	Token        common.Address
	Balance      *big.Int
	DenormWeight *big.Int
}

// Weight returns the denormalized weight as an exact fraction.
func (s TokenState) Weight() fraction.Fraction {
	return fraction.FromInt(s.DenormWeight)
}

// PoolParams are the pool-wide values.
type PoolParams struct {
	// SwapFee is an 18-decimal fixed-point fraction.
	SwapFee     *big.Int
	TotalWeight *big.Int
	TotalSupply *big.Int
}

// Fee returns the swap fee as an exact fraction over 10^18.
func (p PoolParams) Fee() fraction.Fraction {
	return fraction.NewBig(p.SwapFee, fraction.One)
}

// TotalWeightFraction returns the total denormalized weight as an exact fraction.
func (p PoolParams) TotalWeightFraction() fraction.Fraction {
	return fraction.FromInt(p.TotalWeight)
}

// PoolState is a pool snapshot: its parameters and every bound token in
// contract order.
type PoolState struct {
	PoolParams
	Tokens []TokenState
}

// Token looks up a bound token.
func (s PoolState) Token(addr common.Address) (TokenState, bool) {
	for _, t := range s.Tokens {
		if t.Token == addr {
			return t, true
		}
	}
	return TokenState{}, false
}
