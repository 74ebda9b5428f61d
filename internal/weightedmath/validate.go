package weightedmath

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
)

// checkAmount rejects nil, negative and out-of-range amounts.
func checkAmount(name string, x *big.Int) error {
	if err := fraction.CheckRange(x); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

// checkDivisor is checkAmount plus a zero check.
func checkDivisor(name string, x *big.Int) error {
	if err := checkAmount(name, x); err != nil {
		return err
	}
	if x.Sign() == 0 {
		return errors.Wrapf(apperrors.ErrDivisionByZero, "%s is zero", name)
	}
	return nil
}

func checkWeight(name string, w fraction.Fraction) error {
	if err := w.Validate(); err != nil {
		return errors.Wrap(err, name)
	}
	if w.IsZero() {
		return errors.Wrapf(apperrors.ErrDivisionByZero, "%s is zero", name)
	}
	return nil
}

func checkFee(name string, f fraction.Fraction) error {
	if err := f.ValidateFee(); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

// normalizedWeight returns weight/totalWeight, which must not exceed one.
func normalizedWeight(weight, totalWeight fraction.Fraction) (fraction.Fraction, error) {
	if err := checkWeight("weight", weight); err != nil {
		return fraction.Fraction{}, err
	}
	if err := checkWeight("total weight", totalWeight); err != nil {
		return fraction.Fraction{}, err
	}
	nw, err := fraction.Div(weight, totalWeight)
	if err != nil {
		return fraction.Fraction{}, err
	}
	if nw.Num.Cmp(nw.Den) > 0 {
		return fraction.Fraction{}, errors.Wrapf(apperrors.ErrInvalidArgument,
			"weight %s exceeds total weight %s", weight, totalWeight)
	}
	return nw, nil
}

// singleAssetFeeFactor returns 1 - (1 - normWeight) * swapFee, the share of a
// single-asset amount that is not charged as an implicit swap.
func singleAssetFeeFactor(normWeight, swapFee fraction.Fraction) (fraction.Fraction, error) {
	charged, err := fraction.Mul(normWeight.Complement(), swapFee)
	if err != nil {
		return fraction.Fraction{}, err
	}
	return charged.Complement(), nil
}

// result range-checks a computed amount.
func result(name string, x *big.Int) (*big.Int, error) {
	if err := fraction.CheckRange(x); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return x, nil
}
