package validate

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/service/dto"
)

var zeroAddress = common.Address{}

// SpotPriceRequestValidate validates a spot price request.
func SpotPriceRequestValidate(req dto.SpotPriceRequest) error {
	return pairValidate(req.Pool, req.TokenIn, req.TokenOut)
}

// SwapRequestValidate validates a swap request.
func SwapRequestValidate(req dto.SwapRequest) error {
	if err := pairValidate(req.Pool, req.TokenIn, req.TokenOut); err != nil {
		return err
	}
	return amountValidate(req.Amount)
}

// SingleAssetRequestValidate validates a single-asset join or exit request.
func SingleAssetRequestValidate(req dto.SingleAssetRequest) error {
	if req.Pool == zeroAddress || req.Token == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	return amountValidate(req.Amount)
}

// ProportionalRequestValidate validates a proportional join or exit request.
func ProportionalRequestValidate(req dto.ProportionalRequest) error {
	if req.Pool == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "pool address cannot be empty")
	}
	return amountValidate(req.Amount)
}

func pairValidate(pool, in, out common.Address) error {
	if pool == zeroAddress || in == zeroAddress || out == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}

	if in == out {
		return errors.Wrap(apperrors.ErrInvalidArgument, "out token cannot be the same as in token")
	}

	return nil
}

func amountValidate(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be zero or negative")
	}
	return nil
}
