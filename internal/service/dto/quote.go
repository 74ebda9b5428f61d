package dto

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// SpotPriceRequest asks for the price of TokenOut in units of TokenIn.
type SpotPriceRequest struct {
	Pool     common.Address
	TokenIn  common.Address
	TokenOut common.Address
}

// SwapRequest describes a swap between two bound tokens. Amount is the
// input for out-given-in quotes and the output for in-given-out quotes.
type SwapRequest struct {
	Pool     common.Address
	TokenIn  common.Address
	TokenOut common.Address
	Amount   *big.Int
}

// SingleAssetRequest describes a join or exit with one token. Amount is in
// token units or LP units depending on the operation.
type SingleAssetRequest struct {
	Pool   common.Address
	Token  common.Address
	Amount *big.Int
}

// ProportionalRequest describes a proportional join or exit of Amount LP
// tokens.
type ProportionalRequest struct {
	Pool   common.Address
	Amount *big.Int
}

// TokenAmount is a per-token result of a proportional join or exit.
type TokenAmount struct {
	Token  common.Address
	Amount *big.Int
}
