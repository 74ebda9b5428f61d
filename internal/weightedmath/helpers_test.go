package weightedmath

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleshka4/weighted-pool/internal/fraction"
)

var decimals = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

// e18 parses a decimal string and scales it by 10^18, rounding down.
func e18(s string) *big.Int {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("bad decimal " + s)
	}
	r.Mul(r, new(big.Rat).SetInt(decimals))
	return new(big.Int).Quo(r.Num(), r.Denom())
}

// tolerance returns x * 10^18 / 10^pow10.
func tolerance(x int64, pow10 int64) *big.Int {
	t := new(big.Int).Mul(big.NewInt(x), decimals)
	return t.Quo(t, new(big.Int).Exp(big.NewInt(10), big.NewInt(pow10), nil))
}

func requireClose(t *testing.T, want, got, tol *big.Int) {
	t.Helper()

	diff := new(big.Int).Sub(want, got)
	diff.Abs(diff)
	require.True(t, diff.Cmp(tol) <= 0, "want %s got %s (diff %s > %s)", want, got, diff, tol)
}

var (
	third    = fraction.New(1, 3)
	half     = fraction.New(1, 2)
	whole    = fraction.New(1, 1)
	onePct   = fraction.New(1, 100)
	noFee    = fraction.New(0, 1)
	nearlyW3 = fraction.New(3333333333, 10000000000)
)
