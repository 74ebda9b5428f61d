package validate

import (
	"math/big"
	"net/http"
	"net/url"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/transport/http/dto"
)

const (
	paramPool     = "pool"
	paramTokenIn  = "token_in"
	paramTokenOut = "token_out"
	paramToken    = "token"
	paramAmount   = "amount"
)

// SpotPriceRequestValidate validates /spot-price request and returns dto.
func SpotPriceRequestValidate(r *http.Request) (*dto.SpotPriceRequest, int, error) {
	q, code, err := query(r, paramPool, paramTokenIn, paramTokenOut)
	if err != nil {
		return nil, code, err
	}

	addrs, err := addresses(q, paramPool, paramTokenIn, paramTokenOut)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.SpotPriceRequest{
		Pool:     addrs[0],
		TokenIn:  addrs[1],
		TokenOut: addrs[2],
	}, 0, nil
}

// SwapRequestValidate validates /swap/* request and returns dto.
func SwapRequestValidate(r *http.Request) (*dto.SwapRequest, int, error) {
	q, code, err := query(r, paramPool, paramTokenIn, paramTokenOut, paramAmount)
	if err != nil {
		return nil, code, err
	}

	addrs, err := addresses(q, paramPool, paramTokenIn, paramTokenOut)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	a, err := amount(q)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.SwapRequest{
		Pool:     addrs[0],
		TokenIn:  addrs[1],
		TokenOut: addrs[2],
		Amount:   a,
	}, 0, nil
}

// SingleAssetRequestValidate validates single-asset /join and /exit requests
// and returns dto.
func SingleAssetRequestValidate(r *http.Request) (*dto.SingleAssetRequest, int, error) {
	q, code, err := query(r, paramPool, paramToken, paramAmount)
	if err != nil {
		return nil, code, err
	}

	addrs, err := addresses(q, paramPool, paramToken)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	a, err := amount(q)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.SingleAssetRequest{
		Pool:   addrs[0],
		Token:  addrs[1],
		Amount: a,
	}, 0, nil
}

// ProportionalRequestValidate validates proportional /join and /exit
// requests and returns dto.
func ProportionalRequestValidate(r *http.Request) (*dto.ProportionalRequest, int, error) {
	q, code, err := query(r, paramPool, paramAmount)
	if err != nil {
		return nil, code, err
	}

	addrs, err := addresses(q, paramPool)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	a, err := amount(q)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &dto.ProportionalRequest{
		Pool:   addrs[0],
		Amount: a,
	}, 0, nil
}

// query checks the method and the presence of the required parameters.
func query(r *http.Request, required ...string) (url.Values, int, error) {
	if r.Method != http.MethodGet {
		return nil, http.StatusMethodNotAllowed, errors.Errorf("method %s not allowed", r.Method)
	}

	q := r.URL.Query()
	for _, name := range required {
		if q.Get(name) == "" {
			return nil, http.StatusBadRequest, errors.Errorf("missing param %s", name)
		}
	}
	return q, 0, nil
}

func addresses(q url.Values, names ...string) ([]common.Address, error) {
	out := make([]common.Address, 0, len(names))
	for _, name := range names {
		v := q.Get(name)
		if !common.IsHexAddress(v) {
			return nil, errors.Errorf("bad address format for %s", name)
		}
		out = append(out, common.HexToAddress(v))
	}
	return out, nil
}

func amount(q url.Values) (*big.Int, error) {
	a, ok := new(big.Int).SetString(q.Get(paramAmount), 10)
	if !ok || a.Sign() <= 0 {
		return nil, errors.New("bad amount")
	}
	return a, nil
}
