// Package weightedmath implements the pricing and LP accounting of a
// constant weighted-product pool: for balances B_i and normalized weights
// w_i the invariant prod(B_i^w_i) is conserved by fee-free swaps.
//
// All functions are pure. Amounts are non-negative integers in atomic
// units, weights and fees are exact fractions. Results the pool pays out
// round down, results the pool collects round up.
package weightedmath

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// SpotPrice returns the exact price of token B in units of token A:
// (balanceA/weightA) / (balanceB/weightB) / (1 - swapFee).
func SpotPrice(
	balanceA *big.Int, weightA fraction.Fraction,
	balanceB *big.Int, weightB fraction.Fraction,
	swapFee fraction.Fraction,
) (fraction.Fraction, error) {
	if err := checkDivisor("balance a", balanceA); err != nil {
		return fraction.Fraction{}, err
	}
	if err := checkDivisor("balance b", balanceB); err != nil {
		return fraction.Fraction{}, err
	}
	if err := checkWeight("weight a", weightA); err != nil {
		return fraction.Fraction{}, err
	}
	if err := checkWeight("weight b", weightB); err != nil {
		return fraction.Fraction{}, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return fraction.Fraction{}, err
	}

	numer, err := fraction.Div(fraction.FromInt(balanceA), weightA)
	if err != nil {
		return fraction.Fraction{}, err
	}
	denom, err := fraction.Div(fraction.FromInt(balanceB), weightB)
	if err != nil {
		return fraction.Fraction{}, err
	}
	ratio, err := fraction.Div(numer, denom)
	if err != nil {
		return fraction.Fraction{}, err
	}
	return fraction.Div(ratio, swapFee.Complement())
}

// SpotPriceFixed is SpotPrice as an 18-decimal fixed-point integer,
// rounded down.
func SpotPriceFixed(
	balanceA *big.Int, weightA fraction.Fraction,
	balanceB *big.Int, weightB fraction.Fraction,
	swapFee fraction.Fraction,
) (*big.Int, error) {
	p, err := SpotPrice(balanceA, weightA, balanceB, weightB, swapFee)
	if err != nil {
		return nil, err
	}
	return fraction.ToFixedPoint(p, fraction.One)
}

// OutGivenIn returns the amount of the out token received for amountIn of
// the in token:
//
//	adjustedIn = amountIn * (1 - swapFee)
//	amountOut  = balanceOut * (1 - (balanceIn / (balanceIn + adjustedIn))^(weightIn/weightOut))
//
// The result rounds down.
func OutGivenIn(
	amountIn, balanceIn *big.Int, weightIn fraction.Fraction,
	balanceOut *big.Int, weightOut fraction.Fraction,
	swapFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("amount in", amountIn); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance in", balanceIn); err != nil {
		return nil, err
	}
	if err := checkAmount("balance out", balanceOut); err != nil {
		return nil, err
	}
	if balanceOut.Sign() == 0 {
		return nil, errors.Wrap(apperrors.ErrInsufficientLiquidity, "balance out is zero")
	}
	if err := checkWeight("weight in", weightIn); err != nil {
		return nil, err
	}
	if err := checkWeight("weight out", weightOut); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}

	adjustedIn := swapFee.Complement().MulIntFloor(amountIn)
	base := fraction.NewBig(balanceIn, new(big.Int).Add(balanceIn, adjustedIn))
	exp, err := fraction.Div(weightIn, weightOut)
	if err != nil {
		return nil, err
	}

	// Rounding the remaining balance up rounds the output down.
	newBalanceOut, err := fraction.PowMul(balanceOut, base, exp, fraction.Up)
	if err != nil {
		return nil, errors.Wrap(err, "out given in")
	}
	return result("amount out", new(big.Int).Sub(balanceOut, newBalanceOut))
}

// InGivenOut returns the amount of the in token required to receive
// amountOut of the out token. It inverts OutGivenIn and rounds up.
func InGivenOut(
	amountOut, balanceOut *big.Int, weightOut fraction.Fraction,
	balanceIn *big.Int, weightIn fraction.Fraction,
	swapFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("amount out", amountOut); err != nil {
		return nil, err
	}
	if err := checkAmount("balance out", balanceOut); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance in", balanceIn); err != nil {
		return nil, err
	}
	if err := checkWeight("weight out", weightOut); err != nil {
		return nil, err
	}
	if err := checkWeight("weight in", weightIn); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}
	if amountOut.Cmp(balanceOut) >= 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
			"amount out %s, balance out %s", amountOut, balanceOut)
	}

	base := fraction.NewBig(balanceOut, new(big.Int).Sub(balanceOut, amountOut))
	exp, err := fraction.Div(weightOut, weightIn)
	if err != nil {
		return nil, err
	}

	newBalanceIn, err := fraction.PowMul(balanceIn, base, exp, fraction.Up)
	if err != nil {
		return nil, errors.Wrap(err, "in given out")
	}
	inBeforeFee := new(big.Int).Sub(newBalanceIn, balanceIn)

	amountIn, err := swapFee.Complement().DivIntCeil(inBeforeFee)
	if err != nil {
		return nil, err
	}
	return result("amount in", amountIn)
}
