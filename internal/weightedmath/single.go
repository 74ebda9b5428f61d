package weightedmath

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// PoolMintedGivenSingleIn returns the LP tokens minted for depositing
// amountIn of a single token. The part of the deposit that implicitly swaps
// into the other tokens, (1 - weightIn/totalWeight), pays the swap fee:
//
//	adjustedIn = amountIn * (1 - (1 - weightIn/totalWeight) * swapFee)
//	minted     = supply * ((balanceIn + adjustedIn) / balanceIn)^(weightIn/totalWeight) - supply
//
// The result rounds down.
func PoolMintedGivenSingleIn(
	amountIn, balanceIn, supply *big.Int,
	weightIn, totalWeight, swapFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("amount in", amountIn); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance in", balanceIn); err != nil {
		return nil, err
	}
	if err := checkDivisor("supply", supply); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}
	normWeight, err := normalizedWeight(weightIn, totalWeight)
	if err != nil {
		return nil, err
	}
	feeFactor, err := singleAssetFeeFactor(normWeight, swapFee)
	if err != nil {
		return nil, err
	}

	adjustedIn := feeFactor.MulIntFloor(amountIn)
	ratio := fraction.NewBig(new(big.Int).Add(balanceIn, adjustedIn), balanceIn)

	newSupply, err := fraction.PowMul(supply, ratio, normWeight, fraction.Down)
	if err != nil {
		return nil, errors.Wrap(err, "pool minted given single in")
	}
	return result("pool minted", new(big.Int).Sub(newSupply, supply))
}

// SingleInGivenPoolOut returns the single-token deposit required to mint
// poolOut LP tokens. It inverts PoolMintedGivenSingleIn and rounds up.
func SingleInGivenPoolOut(
	poolOut, balanceIn, supply *big.Int,
	weightIn, totalWeight, swapFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("pool out", poolOut); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance in", balanceIn); err != nil {
		return nil, err
	}
	if err := checkDivisor("supply", supply); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}
	normWeight, err := normalizedWeight(weightIn, totalWeight)
	if err != nil {
		return nil, err
	}
	feeFactor, err := singleAssetFeeFactor(normWeight, swapFee)
	if err != nil {
		return nil, err
	}

	ratio := fraction.NewBig(new(big.Int).Add(supply, poolOut), supply)
	exp, err := fraction.Div(totalWeight, weightIn)
	if err != nil {
		return nil, err
	}

	newBalanceIn, err := fraction.PowMul(balanceIn, ratio, exp, fraction.Up)
	if err != nil {
		return nil, errors.Wrap(err, "single in given pool out")
	}
	inAfterFee := new(big.Int).Sub(newBalanceIn, balanceIn)

	amountIn, err := feeFactor.DivIntCeil(inAfterFee)
	if err != nil {
		return nil, err
	}
	return result("amount in", amountIn)
}

// SingleOutGivenPoolIn returns the single-token withdrawal for burning
// poolIn LP tokens. The exit fee is taken from poolIn first, then the
// inverse of the single-asset mint formula is applied:
//
//	poolInAfterFee = poolIn * (1 - exitFee)
//	beforeSwapFee  = balanceOut * (1 - ((supply - poolInAfterFee) / supply)^(totalWeight/weightOut))
//	amountOut      = beforeSwapFee * (1 - (1 - weightOut/totalWeight) * swapFee)
//
// The result rounds down.
func SingleOutGivenPoolIn(
	poolIn, balanceOut, supply *big.Int,
	weightOut, totalWeight, swapFee, exitFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("pool in", poolIn); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance out", balanceOut); err != nil {
		return nil, err
	}
	if err := checkDivisor("supply", supply); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}
	if err := checkFee("exit fee", exitFee); err != nil {
		return nil, err
	}
	if poolIn.Cmp(supply) > 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity, "pool in %s, supply %s", poolIn, supply)
	}
	normWeight, err := normalizedWeight(weightOut, totalWeight)
	if err != nil {
		return nil, err
	}
	feeFactor, err := singleAssetFeeFactor(normWeight, swapFee)
	if err != nil {
		return nil, err
	}

	poolInAfterFee := exitFee.Complement().MulIntFloor(poolIn)
	ratio := fraction.NewBig(new(big.Int).Sub(supply, poolInAfterFee), supply)
	exp, err := fraction.Div(totalWeight, weightOut)
	if err != nil {
		return nil, err
	}

	newBalanceOut, err := fraction.PowMul(balanceOut, ratio, exp, fraction.Up)
	if err != nil {
		return nil, errors.Wrap(err, "single out given pool in")
	}
	beforeSwapFee := new(big.Int).Sub(balanceOut, newBalanceOut)

	amountOut := feeFactor.MulIntFloor(beforeSwapFee)
	if amountOut.Cmp(balanceOut) >= 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
			"amount out %s, balance out %s", amountOut, balanceOut)
	}
	return result("amount out", amountOut)
}

// PoolInGivenSingleOut returns the LP tokens that must be burned to
// withdraw amountOut of a single token. It inverts SingleOutGivenPoolIn and
// rounds up.
func PoolInGivenSingleOut(
	amountOut, balanceOut, supply *big.Int,
	weightOut, totalWeight, swapFee, exitFee fraction.Fraction,
) (*big.Int, error) {
	if err := checkAmount("amount out", amountOut); err != nil {
		return nil, err
	}
	if err := checkDivisor("balance out", balanceOut); err != nil {
		return nil, err
	}
	if err := checkDivisor("supply", supply); err != nil {
		return nil, err
	}
	if err := checkFee("swap fee", swapFee); err != nil {
		return nil, err
	}
	if err := checkFee("exit fee", exitFee); err != nil {
		return nil, err
	}
	if amountOut.Cmp(balanceOut) >= 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
			"amount out %s, balance out %s", amountOut, balanceOut)
	}
	normWeight, err := normalizedWeight(weightOut, totalWeight)
	if err != nil {
		return nil, err
	}
	feeFactor, err := singleAssetFeeFactor(normWeight, swapFee)
	if err != nil {
		return nil, err
	}

	beforeSwapFee, err := feeFactor.DivIntCeil(amountOut)
	if err != nil {
		return nil, err
	}
	if beforeSwapFee.Cmp(balanceOut) >= 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity,
			"amount out %s before swap fee, balance out %s", beforeSwapFee, balanceOut)
	}

	ratio := fraction.NewBig(new(big.Int).Sub(balanceOut, beforeSwapFee), balanceOut)
	newSupply, err := fraction.PowMul(supply, ratio, normWeight, fraction.Down)
	if err != nil {
		return nil, errors.Wrap(err, "pool in given single out")
	}
	poolInAfterFee := new(big.Int).Sub(supply, newSupply)

	poolIn, err := exitFee.Complement().DivIntCeil(poolInAfterFee)
	if err != nil {
		return nil, err
	}
	if poolIn.Cmp(supply) > 0 {
		return nil, errors.Wrapf(apperrors.ErrInsufficientLiquidity, "pool in %s, supply %s", poolIn, supply)
	}
	return result("pool in", poolIn)
}
