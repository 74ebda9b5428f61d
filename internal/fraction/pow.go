package fraction

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
)

// Rounding selects the direction a power result is rounded in.
type Rounding int

const (
	// Down rounds toward zero.
	Down Rounding = iota
	// Up rounds away from zero.
	Up
)

func (r Rounding) String() string {
	if r == Up {
		return "up"
	}
	return "down"
}

// Limits of the exact path. Exponents p/q beyond them, or operands whose
// powers would exceed maxExactBits, are evaluated by approximation.
const (
	maxRootDegree = 64
	maxExactPower = 256
	maxExactBits  = 1 << 16
)

// Pow returns base^exp as a fixed-point fraction over One, rounded in the
// given direction.
func Pow(base, exp Fraction, rounding Rounding) (Fraction, error) {
	v, err := PowMul(One, base, exp, rounding)
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Num: v, Den: new(big.Int).Set(One)}, nil
}

// PowMul returns x * base^exp rounded in the given direction, without an
// intermediate fixed-point scale.
//
// Exponents whose reduced form p/q has a small denominator are computed
// exactly as the integer q-th root of x^q * base^p. Other exponents are
// split into an integer part, raised exactly, and a fractional part
// evaluated by a binomial series with a tracked error bound; the bound is
// applied in the rounding direction so the result never crosses the true
// value.
func PowMul(x *big.Int, base, exp Fraction, rounding Rounding) (*big.Int, error) {
	if x == nil || x.Sign() < 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "pow multiplier must be non-negative")
	}
	if err := checkPowOperand(base, "base"); err != nil {
		return nil, err
	}
	if err := checkPowOperand(exp, "exponent"); err != nil {
		return nil, err
	}

	if exp.IsZero() || x.Sign() == 0 {
		return new(big.Int).Set(x), nil
	}
	if base.IsZero() {
		return new(big.Int), nil
	}

	b := base.Reduce()
	e := exp.Reduce()
	if b.Num.Cmp(b.Den) == 0 {
		return new(big.Int).Set(x), nil
	}

	if v, ok := powMulExact(x, b, e, rounding); ok {
		return v, nil
	}
	return powMulApprox(x, b, e, rounding)
}

func checkPowOperand(f Fraction, name string) error {
	if f.Num == nil || f.Den == nil {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s is not initialised", name)
	}
	if f.Den.Sign() == 0 {
		return errors.Wrapf(apperrors.ErrDivisionByZero, "%s %s", name, f)
	}
	if f.Num.Sign() < 0 || f.Den.Sign() < 0 {
		return errors.Wrapf(apperrors.ErrInvalidExponent, "negative %s %s", name, f)
	}
	return nil
}

// powMulExact computes round(iroot_q(x^q * num^p / den^p)) for exp = p/q.
// ok is false when the exponent or the operand sizes are outside the exact
// path limits.
func powMulExact(x *big.Int, b, e Fraction, rounding Rounding) (*big.Int, bool) {
	if !e.Num.IsUint64() || !e.Den.IsUint64() {
		return nil, false
	}
	p, q := e.Num.Uint64(), e.Den.Uint64()
	if q > maxRootDegree || p > maxExactPower {
		return nil, false
	}
	baseBits := b.Num.BitLen()
	if b.Den.BitLen() > baseBits {
		baseBits = b.Den.BitLen()
	}
	if uint64(x.BitLen())*q+uint64(baseBits)*p > maxExactBits {
		return nil, false
	}

	pp := new(big.Int).SetUint64(p)
	qq := new(big.Int).SetUint64(q)

	num := new(big.Int).Exp(x, qq, nil)
	num.Mul(num, new(big.Int).Exp(b.Num, pp, nil))
	den := new(big.Int).Exp(b.Den, pp, nil)

	root := iroot(new(big.Int).Quo(num, den), q)
	if rounding == Up {
		check := new(big.Int).Exp(root, qq, nil)
		check.Mul(check, den)
		if check.Cmp(num) != 0 {
			root.Add(root, big1)
		}
	}
	return root, true
}

// iroot returns floor(n^(1/k)) using Newton's iteration from an upper bound.
func iroot(n *big.Int, k uint64) *big.Int {
	switch {
	case n.Sign() == 0:
		return new(big.Int)
	case k == 1:
		return new(big.Int).Set(n)
	case k == 2:
		return new(big.Int).Sqrt(n)
	}

	kk := new(big.Int).SetUint64(k)
	km1 := new(big.Int).SetUint64(k - 1)

	// 2^ceil(bits/k) is never below the root.
	x := new(big.Int).Lsh(big1, uint((uint64(n.BitLen())+k-1)/k))
	t := new(big.Int)
	for {
		// y = ((k-1)*x + n/x^(k-1)) / k
		t.Exp(x, km1, nil)
		t.Quo(n, t)
		y := new(big.Int).Mul(x, km1)
		y.Add(y, t)
		y.Quo(y, kk)
		if y.Cmp(x) >= 0 {
			return x
		}
		x = y
	}
}
