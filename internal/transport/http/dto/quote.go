package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SpotPriceRequest represents a parsed HTTP request for the /spot-price endpoint.
type SpotPriceRequest struct {
	Pool     common.Address
	TokenIn  common.Address
	TokenOut common.Address
}

// SwapRequest represents a parsed HTTP request for the /swap endpoints.
type SwapRequest struct {
	Pool     common.Address
	TokenIn  common.Address
	TokenOut common.Address
	Amount   *big.Int
}

// SingleAssetRequest represents a parsed HTTP request for the single-asset
// /join and /exit endpoints.
type SingleAssetRequest struct {
	Pool   common.Address
	Token  common.Address
	Amount *big.Int
}

// ProportionalRequest represents a parsed HTTP request for the proportional
// /join and /exit endpoints.
type ProportionalRequest struct {
	Pool   common.Address
	Amount *big.Int
}
