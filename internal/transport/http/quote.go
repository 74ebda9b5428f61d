package http

import (
	"context"
	"math/big"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/service"
	"github.com/fleshka4/weighted-pool/internal/service/dto"
	"github.com/fleshka4/weighted-pool/internal/transport/http/validate"
)

func (s *Server) handleSpotPrice(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SpotPriceRequestValidate(r)
	if err != nil {
		badRequest(w, code, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	out, err := s.svc.SpotPrice(ctx, dto.SpotPriceRequest{
		Pool:     req.Pool,
		TokenIn:  req.TokenIn,
		TokenOut: req.TokenOut,
	})
	writeAmount(w, r, out, err)
}

func (s *Server) handleOutGivenIn(w http.ResponseWriter, r *http.Request) {
	s.handleSwap(w, r, s.svc.OutGivenIn)
}

func (s *Server) handleInGivenOut(w http.ResponseWriter, r *http.Request) {
	s.handleSwap(w, r, s.svc.InGivenOut)
}

func (s *Server) handleSwap(
	w http.ResponseWriter, r *http.Request,
	quote func(context.Context, dto.SwapRequest) (*big.Int, error),
) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		badRequest(w, code, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	out, err := quote(ctx, dto.SwapRequest{
		Pool:     req.Pool,
		TokenIn:  req.TokenIn,
		TokenOut: req.TokenOut,
		Amount:   req.Amount,
	})
	writeAmount(w, r, out, err)
}

func (s *Server) handlePoolOutGivenSingleIn(w http.ResponseWriter, r *http.Request) {
	s.handleSingleAsset(w, r, s.svc.PoolOutGivenSingleIn)
}

func (s *Server) handleSingleInGivenPoolOut(w http.ResponseWriter, r *http.Request) {
	s.handleSingleAsset(w, r, s.svc.SingleInGivenPoolOut)
}

func (s *Server) handleSingleOutGivenPoolIn(w http.ResponseWriter, r *http.Request) {
	s.handleSingleAsset(w, r, s.svc.SingleOutGivenPoolIn)
}

func (s *Server) handlePoolInGivenSingleOut(w http.ResponseWriter, r *http.Request) {
	s.handleSingleAsset(w, r, s.svc.PoolInGivenSingleOut)
}

func (s *Server) handleSingleAsset(
	w http.ResponseWriter, r *http.Request,
	quote func(context.Context, dto.SingleAssetRequest) (*big.Int, error),
) {
	req, code, err := validate.SingleAssetRequestValidate(r)
	if err != nil {
		badRequest(w, code, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	out, err := quote(ctx, dto.SingleAssetRequest{
		Pool:   req.Pool,
		Token:  req.Token,
		Amount: req.Amount,
	})
	writeAmount(w, r, out, err)
}

func (s *Server) handleProportionalDeposits(w http.ResponseWriter, r *http.Request) {
	s.handleProportional(w, r, s.svc.ProportionalDeposits)
}

func (s *Server) handleProportionalWithdraw(w http.ResponseWriter, r *http.Request) {
	s.handleProportional(w, r, s.svc.ProportionalWithdraw)
}

func (s *Server) handleProportional(
	w http.ResponseWriter, r *http.Request,
	quote func(context.Context, dto.ProportionalRequest) ([]dto.TokenAmount, error),
) {
	req, code, err := validate.ProportionalRequestValidate(r)
	if err != nil {
		badRequest(w, code, err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	amounts, err := quote(ctx, dto.ProportionalRequest{
		Pool:   req.Pool,
		Amount: req.Amount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	// One "token amount" line per bound token, in pool order.
	var b strings.Builder
	for _, a := range amounts {
		b.WriteString(a.Token.Hex())
		b.WriteByte(' ')
		b.WriteString(a.Amount.String())
		b.WriteByte('\n')
	}
	writeText(w, r, b.String())
}

func badRequest(w http.ResponseWriter, code int, err error) {
	if code == 0 {
		code = http.StatusBadRequest
	}
	http.Error(w, err.Error(), code)
}

func writeAmount(w http.ResponseWriter, r *http.Request, out *big.Int, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, r, out.String())
}

func writeText(w http.ResponseWriter, r *http.Request, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(body)); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("response write error")
	}
}

// statusFor maps service and pricing errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrInsufficientLiquidity),
		errors.Is(err, apperrors.ErrDivisionByZero),
		errors.Is(err, apperrors.ErrInvalidExponent):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrOverflow):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrPoolRead):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("quote failed")
		http.Error(w, "internal error", code)
		return
	}
	zerolog.Ctx(r.Context()).Warn().Err(err).Int("status", code).Msg("quote rejected")
	http.Error(w, err.Error(), code)
}
