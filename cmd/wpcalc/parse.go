package main

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
	"github.com/fleshka4/weighted-pool/internal/weightedmath"
)

// parseAmount parses a base-10 integer.
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "bad integer %q", s)
	}
	return v, nil
}

// parseFraction parses "n/d" or a bare integer "n" meaning n/1.
func parseFraction(s string) (fraction.Fraction, error) {
	num, den, found := strings.Cut(strings.TrimSpace(s), "/")
	n, err := parseAmount(num)
	if err != nil {
		return fraction.Fraction{}, errors.Wrapf(err, "fraction %q", s)
	}
	if !found {
		return fraction.FromInt(n), nil
	}
	d, err := parseAmount(den)
	if err != nil {
		return fraction.Fraction{}, errors.Wrapf(err, "fraction %q", s)
	}
	f := fraction.NewBig(n, d)
	if err := f.Validate(); err != nil {
		return fraction.Fraction{}, errors.Wrapf(err, "fraction %q", s)
	}
	return f, nil
}

// tokenArg is a parsed "id:balance" argument. The id is kept verbatim for
// output and mapped to an address for the pricing functions.
type tokenArg struct {
	label string
	entry weightedmath.TokenEntry
}

// parseToken parses "id:balance" where id is a hex address or a decimal
// token number.
func parseToken(s string) (tokenArg, error) {
	id, balance, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found || id == "" {
		return tokenArg{}, errors.Wrapf(apperrors.ErrInvalidArgument, "token %q is not id:balance", s)
	}

	var addr common.Address
	switch {
	case common.IsHexAddress(id):
		addr = common.HexToAddress(id)
	default:
		n, err := parseAmount(id)
		if err != nil || n.Sign() < 0 {
			return tokenArg{}, errors.Wrapf(apperrors.ErrInvalidArgument, "token id %q", id)
		}
		if n.BitLen() > 8*common.AddressLength {
			return tokenArg{}, errors.Wrapf(apperrors.ErrInvalidArgument, "token id %q does not fit an address", id)
		}
		addr = common.BigToAddress(n)
	}

	amount, err := parseAmount(balance)
	if err != nil {
		return tokenArg{}, errors.Wrapf(err, "token %q", s)
	}

	return tokenArg{label: id, entry: weightedmath.TokenEntry{Token: addr, Amount: amount}}, nil
}

func parseTokens(values []string) ([]tokenArg, error) {
	tokens := make([]tokenArg, 0, len(values))
	seen := make(map[common.Address]struct{}, len(values))
	for _, v := range values {
		t, err := parseToken(v)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[t.entry.Token]; dup {
			return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "token %q given twice", t.label)
		}
		seen[t.entry.Token] = struct{}{}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

func amountFlag(c *cli.Context, name string) (*big.Int, error) {
	v, err := parseAmount(c.String(name))
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", name)
	}
	return v, nil
}

func fractionFlag(c *cli.Context, name string) (fraction.Fraction, error) {
	v, err := parseFraction(c.String(name))
	if err != nil {
		return fraction.Fraction{}, errors.Wrapf(err, "--%s", name)
	}
	return v, nil
}
