package fraction

import (
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
)

const (
	maxApproxIterations = 1 << 17
	maxIntegerExponent  = 1024

	// baseSensitivity bounds d(t^a)/dt for 0 < a < 1 over the supported
	// base range; it equals 1/minApproxBase.
	baseSensitivity = 1000
)

var (
	// workScale is the fixed-point scale of the series evaluation, 10^36.
	workScale = new(big.Int).Exp(big.NewInt(10), big.NewInt(36), nil)

	minApproxBase       = New(1, baseSensitivity)
	maxApproxBase       = New(baseSensitivity, 1)
	reciprocalThreshold = New(3, 2)

	seriesPool = sync.Pool{
		New: func() any {
			return &seriesTmp{
				c: new(big.Int),
				k: new(big.Int),
				t: new(big.Int),
			}
		},
	}
)

type seriesTmp struct {
	c *big.Int
	k *big.Int
	t *big.Int
}

// powMulApprox evaluates x * b^e when the exact path does not apply.
// b and e are reduced and b != 1.
func powMulApprox(x *big.Int, b, e Fraction, rounding Rounding) (*big.Int, error) {
	whole, frac := new(big.Int).QuoRem(e.Num, e.Den, new(big.Int))

	if frac.Sign() != 0 && (b.Cmp(minApproxBase) < 0 || b.Cmp(maxApproxBase) > 0) {
		return nil, errors.Wrapf(apperrors.ErrInvalidExponent,
			"base %s outside approximation range [%s, %s]", b, minApproxBase, maxApproxBase)
	}
	if whole.Cmp(big.NewInt(maxIntegerExponent)) > 0 {
		return nil, errors.Wrapf(apperrors.ErrOverflow, "integer exponent %s too large", whole)
	}

	// Integer part, exact.
	ipN := new(big.Int).Exp(b.Num, whole, nil)
	ipD := new(big.Int).Exp(b.Den, whole, nil)

	// Bounds lo <= workScale * b^frac <= hi.
	lo := new(big.Int).Set(workScale)
	hi := new(big.Int).Set(workScale)
	if frac.Sign() != 0 {
		reciprocal := b.Cmp(reciprocalThreshold) >= 0
		fb := b
		if reciprocal {
			fb = Fraction{Num: b.Den, Den: b.Num}
		}

		s, bound, err := binomialSeries(fb, frac, e.Den)
		if err != nil {
			return nil, err
		}
		sLo := new(big.Int).Sub(s, bound)
		sHi := new(big.Int).Add(s, bound)
		if sLo.Sign() <= 0 {
			return nil, errors.Wrapf(apperrors.ErrInvalidExponent, "series for %s^%s lost precision", b, e)
		}

		if reciprocal {
			w2 := new(big.Int).Mul(workScale, workScale)
			lo.Quo(w2, sHi)
			hi = ceilDiv(w2, sLo)
		} else {
			lo, hi = sLo, sHi
		}
	}

	den := new(big.Int).Mul(ipD, workScale)
	var v *big.Int
	if rounding == Up {
		n := new(big.Int).Mul(x, ipN)
		n.Mul(n, hi)
		v = ceilDiv(n, den)
	} else {
		v = new(big.Int).Mul(x, ipN)
		v.Mul(v, lo)
		v.Quo(v, den)
	}

	// x*b^e >= x for b > 1 and <= x for b < 1.
	switch cmp := b.Num.Cmp(b.Den); {
	case cmp > 0 && v.Cmp(x) < 0:
		v.Set(x)
	case cmp < 0 && v.Cmp(x) > 0:
		v.Set(x)
	}
	return v, nil
}

// binomialSeries approximates workScale * b^(an/ad) for 0 < an/ad < 1 with
// the series (1+x)^a = sum binom(a, k) x^k, x = b - 1. It returns the
// approximation and a bound on its absolute error in workScale units.
func binomialSeries(b Fraction, an, ad *big.Int) (*big.Int, *big.Int, error) {
	bw := new(big.Int).Mul(workScale, b.Num)
	bw.Quo(bw, b.Den)

	x := new(big.Int).Sub(bw, workScale)
	xneg := x.Sign() < 0
	x.Abs(x)

	term := new(big.Int).Set(workScale)
	sum := new(big.Int).Set(workScale)
	negative := false

	tmp := seriesPool.Get().(*seriesTmp)
	defer seriesPool.Put(tmp)

	n := 0
	for i := 1; ; i++ {
		if i > maxApproxIterations {
			return nil, nil, errors.Wrapf(apperrors.ErrInvalidExponent,
				"series for %s^(%s/%s) did not converge", b, an, ad)
		}

		// c = |a - (i-1)| scaled by ad.
		tmp.k.SetInt64(int64(i - 1))
		tmp.k.Mul(tmp.k, ad)
		tmp.c.Sub(an, tmp.k)
		cneg := tmp.c.Sign() < 0
		tmp.c.Abs(tmp.c)

		// term = term * c * x / (ad * workScale * i)
		term.Mul(term, tmp.c)
		term.Mul(term, x)
		tmp.t.SetInt64(int64(i))
		tmp.t.Mul(tmp.t, ad)
		tmp.t.Mul(tmp.t, workScale)
		term.Quo(term, tmp.t)

		n = i
		if term.Sign() == 0 {
			break
		}
		if xneg {
			negative = !negative
		}
		if cneg {
			negative = !negative
		}
		if negative {
			sum.Sub(sum, term)
		} else {
			sum.Add(sum, term)
		}
	}

	// Each floored term carries at most i units of accumulated error, the
	// dropped tail is geometric with ratio |x| <= 1 - minApproxBase, and the
	// floored base shifts the value by at most baseSensitivity units.
	nn := big.NewInt(int64(n))
	bound := new(big.Int).Add(nn, big1)
	bound.Mul(bound, nn)
	bound.Rsh(bound, 1)
	tail := new(big.Int).Add(nn, big1)
	tail.Mul(tail, big.NewInt(baseSensitivity))
	bound.Add(bound, tail)
	bound.Add(bound, big.NewInt(baseSensitivity+2))

	return sum, bound, nil
}
