package weightedmath

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// TokenEntry pairs a token with an amount: a pool balance on input, a
// deposit or withdrawal on output.
type TokenEntry struct {
	Token  common.Address
	Amount *big.Int
}

// ProportionalDepositsGivenPoolOut returns, for every token of the pool, the
// deposit that keeps the balances' ratio when poolOut LP tokens are minted:
// deposit_i = poolOut/totalSupply * balance_i, rounded down. The output
// keeps the order and tokens of the input.
func ProportionalDepositsGivenPoolOut(totalSupply, poolOut *big.Int, tokens []TokenEntry) ([]TokenEntry, error) {
	if err := checkDivisor("total supply", totalSupply); err != nil {
		return nil, err
	}
	if err := checkAmount("pool out", poolOut); err != nil {
		return nil, err
	}
	return proportional(fraction.NewBig(poolOut, totalSupply), tokens)
}

// ProportionalWithdrawGivenPoolIn returns, for every token of the pool, the
// withdrawal for burning poolIn LP tokens after the exit fee:
// withdraw_i = (poolIn - poolIn*exitFee)/totalSupply * balance_i, rounded
// down. The exit fee itself rounds up.
func ProportionalWithdrawGivenPoolIn(
	totalSupply, poolIn *big.Int,
	exitFee fraction.Fraction,
	tokens []TokenEntry,
) ([]TokenEntry, error) {
	if err := checkDivisor("total supply", totalSupply); err != nil {
		return nil, err
	}
	if err := checkAmount("pool in", poolIn); err != nil {
		return nil, err
	}
	if err := checkFee("exit fee", exitFee); err != nil {
		return nil, err
	}
	if poolIn.Cmp(totalSupply) > 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity, "pool in %s, supply %s", poolIn, totalSupply)
	}

	effectiveIn := new(big.Int).Sub(poolIn, exitFee.MulIntCeil(poolIn))
	return proportional(fraction.NewBig(effectiveIn, totalSupply), tokens)
}

func proportional(share fraction.Fraction, tokens []TokenEntry) ([]TokenEntry, error) {
	out := make([]TokenEntry, 0, len(tokens))
	for i, t := range tokens {
		if err := checkAmount("balance", t.Amount); err != nil {
			return nil, errors.Wrapf(err, "token %d (%s)", i, t.Token.Hex())
		}
		amount, err := result("amount", share.MulIntFloor(t.Amount))
		if err != nil {
			return nil, errors.Wrapf(err, "token %d (%s)", i, t.Token.Hex())
		}
		out = append(out, TokenEntry{Token: t.Token, Amount: amount})
	}
	return out, nil
}
