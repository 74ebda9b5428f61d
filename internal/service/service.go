package service

//go:generate mockgen -destination=mock/service.go -package=mock . Service
//go:generate mockgen -destination=mock/pool_client.go -package=mock github.com/fleshka4/weighted-pool/internal/infra/bpool Client

import (
	"context"
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/fraction"
	"github.com/fleshka4/weighted-pool/internal/infra/bpool"
	"github.com/fleshka4/weighted-pool/internal/service/dto"
)

// ErrPoolRead is returned when reading the pool contract state fails,
// typically due to an RPC or ABI decoding error.
var ErrPoolRead = errors.New("pool read failed")

// Service represents interface for business logic.
type Service interface {
	SpotPrice(ctx context.Context, req dto.SpotPriceRequest) (*big.Int, error)
	OutGivenIn(ctx context.Context, req dto.SwapRequest) (*big.Int, error)
	InGivenOut(ctx context.Context, req dto.SwapRequest) (*big.Int, error)
	PoolOutGivenSingleIn(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error)
	SingleInGivenPoolOut(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error)
	SingleOutGivenPoolIn(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error)
	PoolInGivenSingleOut(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error)
	ProportionalDeposits(ctx context.Context, req dto.ProportionalRequest) ([]dto.TokenAmount, error)
	ProportionalWithdraw(ctx context.Context, req dto.ProportionalRequest) ([]dto.TokenAmount, error)
}

// QuoteService quotes pool operations against the live state of a pool.
type QuoteService struct {
	poolClient bpool.Client
	exitFee    fraction.Fraction
}

// NewQuoteService creates QuoteService. exitFee is charged on LP tokens
// burned by exits.
func NewQuoteService(cli bpool.Client, exitFee fraction.Fraction) *QuoteService {
	return &QuoteService{poolClient: cli, exitFee: exitFee}
}
