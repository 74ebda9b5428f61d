// Package fraction implements exact rational arithmetic over big integers and
// the fixed-point power function the weighted-pool math is built on.
//
// Fractions are never reduced implicitly: Mul and Div return the plain
// products of numerators and denominators. Call Reduce when lowest terms
// matter.
package fraction

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
)

// Decimals is the number of decimal digits of the fixed-point scale.
const Decimals = 18

var (
	// One is the fixed-point scale, 10^18.
	One = new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil)

	big1 = big.NewInt(1)
)

// Fraction is a non-negative rational number num/den.
type Fraction struct {
	Num *big.Int
	Den *big.Int
}

// New creates num/den from machine integers.
func New(num, den int64) Fraction {
	return Fraction{Num: big.NewInt(num), Den: big.NewInt(den)}
}

// NewBig creates num/den. The arguments are copied.
func NewBig(num, den *big.Int) Fraction {
	return Fraction{Num: copyInt(num), Den: copyInt(den)}
}

// FromInt creates x/1.
func FromInt(x *big.Int) Fraction {
	return Fraction{Num: copyInt(x), Den: big.NewInt(1)}
}

// Validate checks that the fraction is initialised, non-negative and has a
// non-zero denominator.
func (f Fraction) Validate() error {
	if f.Num == nil || f.Den == nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "fraction is not initialised")
	}
	if f.Den.Sign() == 0 {
		return errors.Wrapf(apperrors.ErrDivisionByZero, "fraction %s", f)
	}
	if f.Num.Sign() < 0 || f.Den.Sign() < 0 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "negative fraction %s", f)
	}
	return nil
}

// ValidateFee checks that the fraction is a valid fee: 0 <= num < den.
func (f Fraction) ValidateFee() error {
	if err := f.Validate(); err != nil {
		return err
	}
	if f.Num.Cmp(f.Den) >= 0 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "fee %s is not below one", f)
	}
	return nil
}

// Mul returns a.num*b.num / a.den*b.den.
func Mul(a, b Fraction) (Fraction, error) {
	if err := checkDen(a, b); err != nil {
		return Fraction{}, err
	}
	return Fraction{
		Num: new(big.Int).Mul(a.Num, b.Num),
		Den: new(big.Int).Mul(a.Den, b.Den),
	}, nil
}

// Div returns a.num*b.den / a.den*b.num.
func Div(a, b Fraction) (Fraction, error) {
	if err := checkDen(a, b); err != nil {
		return Fraction{}, err
	}
	if b.Num.Sign() == 0 {
		return Fraction{}, errors.Wrapf(apperrors.ErrDivisionByZero, "%s / %s", a, b)
	}
	return Fraction{
		Num: new(big.Int).Mul(a.Num, b.Den),
		Den: new(big.Int).Mul(a.Den, b.Num),
	}, nil
}

// Complement returns 1 - f. f must not exceed one.
func (f Fraction) Complement() Fraction {
	return Fraction{
		Num: new(big.Int).Sub(f.Den, f.Num),
		Den: new(big.Int).Set(f.Den),
	}
}

// Reduce returns f in lowest terms.
func (f Fraction) Reduce() Fraction {
	if f.Num.Sign() == 0 {
		return Fraction{Num: new(big.Int), Den: big.NewInt(1)}
	}
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.Num), new(big.Int).Abs(f.Den))
	return Fraction{
		Num: new(big.Int).Quo(f.Num, gcd),
		Den: new(big.Int).Quo(f.Den, gcd),
	}
}

// Cmp compares two validated fractions and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	l := new(big.Int).Mul(f.Num, g.Den)
	r := new(big.Int).Mul(g.Num, f.Den)
	return l.Cmp(r)
}

// IsZero reports whether the numerator is zero.
func (f Fraction) IsZero() bool {
	return f.Num.Sign() == 0
}

// Equal reports whether f and g have identical numerators and denominators.
// Equivalent but unreduced fractions are not Equal; use Cmp for that.
func (f Fraction) Equal(g Fraction) bool {
	return f.Num.Cmp(g.Num) == 0 && f.Den.Cmp(g.Den) == 0
}

func (f Fraction) String() string {
	return fmt.Sprintf("%s/%s", f.Num, f.Den)
}

// MulIntFloor returns floor(x * f).
func (f Fraction) MulIntFloor(x *big.Int) *big.Int {
	n := new(big.Int).Mul(x, f.Num)
	return n.Quo(n, f.Den)
}

// MulIntCeil returns ceil(x * f).
func (f Fraction) MulIntCeil(x *big.Int) *big.Int {
	return ceilDiv(new(big.Int).Mul(x, f.Num), f.Den)
}

// DivIntFloor returns floor(x / f).
func (f Fraction) DivIntFloor(x *big.Int) (*big.Int, error) {
	if f.Num.Sign() == 0 {
		return nil, errors.Wrapf(apperrors.ErrDivisionByZero, "%s / %s", x, f)
	}
	n := new(big.Int).Mul(x, f.Den)
	return n.Quo(n, f.Num), nil
}

// DivIntCeil returns ceil(x / f).
func (f Fraction) DivIntCeil(x *big.Int) (*big.Int, error) {
	if f.Num.Sign() == 0 {
		return nil, errors.Wrapf(apperrors.ErrDivisionByZero, "%s / %s", x, f)
	}
	return ceilDiv(new(big.Int).Mul(x, f.Den), f.Num), nil
}

// ToFixedPoint converts a to a fixed-point integer at the given scale,
// rounding down.
func ToFixedPoint(a Fraction, scale *big.Int) (*big.Int, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	if scale == nil || scale.Sign() <= 0 {
		return nil, errors.Wrap(apperrors.ErrInvalidArgument, "scale must be positive")
	}
	v := a.MulIntFloor(scale)
	if err := CheckRange(v); err != nil {
		return nil, err
	}
	return v, nil
}

// CheckRange reports ErrOverflow if x does not fit an unsigned 256-bit
// integer and ErrInvalidArgument if x is negative or nil.
func CheckRange(x *big.Int) error {
	if x == nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "nil amount")
	}
	if x.Sign() < 0 {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "negative amount %s", x)
	}
	if _, overflow := uint256.FromBig(x); overflow {
		return errors.Wrapf(apperrors.ErrOverflow, "%s exceeds 256 bits", x)
	}
	return nil
}

func checkDen(a, b Fraction) error {
	if a.Num == nil || a.Den == nil || b.Num == nil || b.Den == nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "fraction is not initialised")
	}
	if a.Den.Sign() == 0 || b.Den.Sign() == 0 {
		return errors.Wrapf(apperrors.ErrDivisionByZero, "%s, %s", a, b)
	}
	return nil
}

// ceilDiv returns ceil(n/d) for n >= 0, d > 0. n is overwritten.
func ceilDiv(n, d *big.Int) *big.Int {
	r := new(big.Int)
	n.QuoRem(n, d, r)
	if r.Sign() != 0 {
		n.Add(n, big1)
	}
	return n
}

func copyInt(x *big.Int) *big.Int {
	if x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(x)
}
