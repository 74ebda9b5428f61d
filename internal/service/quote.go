package service

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/infra/bpool"
	"github.com/fleshka4/weighted-pool/internal/service/dto"
	"github.com/fleshka4/weighted-pool/internal/service/validate"
	"github.com/fleshka4/weighted-pool/internal/weightedmath"
)

// SpotPrice returns the price of TokenOut in units of TokenIn, fee
// included, as an 18-decimal fixed-point integer.
func (s *QuoteService) SpotPrice(ctx context.Context, req dto.SpotPriceRequest) (*big.Int, error) {
	if err := validate.SpotPriceRequestValidate(req); err != nil {
		return nil, err
	}

	state, in, out, err := s.loadPair(ctx, req.Pool, req.TokenIn, req.TokenOut)
	if err != nil {
		return nil, err
	}

	price, err := weightedmath.SpotPriceFixed(in.Balance, in.Weight(), out.Balance, out.Weight(), state.Fee())
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.SpotPriceFixed")
	}
	return price, nil
}

// OutGivenIn quotes the TokenOut amount received for Amount of TokenIn.
func (s *QuoteService) OutGivenIn(ctx context.Context, req dto.SwapRequest) (*big.Int, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	state, in, out, err := s.loadPair(ctx, req.Pool, req.TokenIn, req.TokenOut)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.OutGivenIn(req.Amount, in.Balance, in.Weight(), out.Balance, out.Weight(), state.Fee())
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.OutGivenIn")
	}
	return amount, nil
}

// InGivenOut quotes the TokenIn amount required to receive Amount of TokenOut.
func (s *QuoteService) InGivenOut(ctx context.Context, req dto.SwapRequest) (*big.Int, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}

	state, in, out, err := s.loadPair(ctx, req.Pool, req.TokenIn, req.TokenOut)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.InGivenOut(req.Amount, out.Balance, out.Weight(), in.Balance, in.Weight(), state.Fee())
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.InGivenOut")
	}
	return amount, nil
}

// PoolOutGivenSingleIn quotes the LP tokens minted for depositing Amount of Token.
func (s *QuoteService) PoolOutGivenSingleIn(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error) {
	if err := validate.SingleAssetRequestValidate(req); err != nil {
		return nil, err
	}

	state, token, err := s.loadToken(ctx, req.Pool, req.Token)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.PoolMintedGivenSingleIn(
		req.Amount, token.Balance, state.TotalSupply,
		token.Weight(), state.TotalWeightFraction(), state.Fee(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.PoolMintedGivenSingleIn")
	}
	return amount, nil
}

// SingleInGivenPoolOut quotes the Token deposit required to mint Amount LP tokens.
func (s *QuoteService) SingleInGivenPoolOut(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error) {
	if err := validate.SingleAssetRequestValidate(req); err != nil {
		return nil, err
	}

	state, token, err := s.loadToken(ctx, req.Pool, req.Token)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.SingleInGivenPoolOut(
		req.Amount, token.Balance, state.TotalSupply,
		token.Weight(), state.TotalWeightFraction(), state.Fee(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.SingleInGivenPoolOut")
	}
	return amount, nil
}

// SingleOutGivenPoolIn quotes the Token withdrawal for burning Amount LP tokens.
func (s *QuoteService) SingleOutGivenPoolIn(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error) {
	if err := validate.SingleAssetRequestValidate(req); err != nil {
		return nil, err
	}

	state, token, err := s.loadToken(ctx, req.Pool, req.Token)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.SingleOutGivenPoolIn(
		req.Amount, token.Balance, state.TotalSupply,
		token.Weight(), state.TotalWeightFraction(), state.Fee(), s.exitFee,
	)
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.SingleOutGivenPoolIn")
	}
	return amount, nil
}

// PoolInGivenSingleOut quotes the LP tokens burned to withdraw Amount of Token.
func (s *QuoteService) PoolInGivenSingleOut(ctx context.Context, req dto.SingleAssetRequest) (*big.Int, error) {
	if err := validate.SingleAssetRequestValidate(req); err != nil {
		return nil, err
	}

	state, token, err := s.loadToken(ctx, req.Pool, req.Token)
	if err != nil {
		return nil, err
	}

	amount, err := weightedmath.PoolInGivenSingleOut(
		req.Amount, token.Balance, state.TotalSupply,
		token.Weight(), state.TotalWeightFraction(), state.Fee(), s.exitFee,
	)
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.PoolInGivenSingleOut")
	}
	return amount, nil
}

// ProportionalDeposits quotes the deposit of every bound token required to
// mint Amount LP tokens.
func (s *QuoteService) ProportionalDeposits(ctx context.Context, req dto.ProportionalRequest) ([]dto.TokenAmount, error) {
	if err := validate.ProportionalRequestValidate(req); err != nil {
		return nil, err
	}

	state, err := s.loadPool(ctx, req.Pool)
	if err != nil {
		return nil, err
	}

	entries, err := weightedmath.ProportionalDepositsGivenPoolOut(state.TotalSupply, req.Amount, tokenEntries(state))
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.ProportionalDepositsGivenPoolOut")
	}
	return tokenAmounts(entries), nil
}

// ProportionalWithdraw quotes the withdrawal of every bound token for
// burning Amount LP tokens.
func (s *QuoteService) ProportionalWithdraw(ctx context.Context, req dto.ProportionalRequest) ([]dto.TokenAmount, error) {
	if err := validate.ProportionalRequestValidate(req); err != nil {
		return nil, err
	}

	state, err := s.loadPool(ctx, req.Pool)
	if err != nil {
		return nil, err
	}

	entries, err := weightedmath.ProportionalWithdrawGivenPoolIn(state.TotalSupply, req.Amount, s.exitFee, tokenEntries(state))
	if err != nil {
		return nil, errors.Wrap(err, "weightedmath.ProportionalWithdrawGivenPoolIn")
	}
	return tokenAmounts(entries), nil
}

func (s *QuoteService) loadPool(ctx context.Context, pool common.Address) (bpool.PoolState, error) {
	state, err := s.poolClient.GetPoolState(ctx, pool)
	if err != nil {
		return bpool.PoolState{}, errors.Wrapf(ErrPoolRead, "pool %s: %v", pool.Hex(), err)
	}
	return state, nil
}

func (s *QuoteService) loadToken(ctx context.Context, pool, token common.Address) (bpool.PoolState, bpool.TokenState, error) {
	state, err := s.loadPool(ctx, pool)
	if err != nil {
		return bpool.PoolState{}, bpool.TokenState{}, err
	}

	t, ok := state.Token(token)
	if !ok {
		return bpool.PoolState{}, bpool.TokenState{}, errors.Wrapf(apperrors.ErrInvalidArgument,
			"token %s is not bound to pool %s", token.Hex(), pool.Hex())
	}
	return state, t, nil
}

func (s *QuoteService) loadPair(ctx context.Context, pool, in, out common.Address) (bpool.PoolState, bpool.TokenState, bpool.TokenState, error) {
	state, tokenIn, err := s.loadToken(ctx, pool, in)
	if err != nil {
		return bpool.PoolState{}, bpool.TokenState{}, bpool.TokenState{}, err
	}

	tokenOut, ok := state.Token(out)
	if !ok {
		return bpool.PoolState{}, bpool.TokenState{}, bpool.TokenState{}, errors.Wrapf(apperrors.ErrInvalidArgument,
			"token %s is not bound to pool %s", out.Hex(), pool.Hex())
	}
	return state, tokenIn, tokenOut, nil
}

func tokenEntries(state bpool.PoolState) []weightedmath.TokenEntry {
	entries := make([]weightedmath.TokenEntry, 0, len(state.Tokens))
	for _, t := range state.Tokens {
		entries = append(entries, weightedmath.TokenEntry{Token: t.Token, Amount: t.Balance})
	}
	return entries
}

func tokenAmounts(entries []weightedmath.TokenEntry) []dto.TokenAmount {
	out := make([]dto.TokenAmount, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.TokenAmount{Token: e.Token, Amount: e.Amount})
	}
	return out
}
