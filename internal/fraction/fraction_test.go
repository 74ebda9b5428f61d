package fraction

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
)

func bi(s string) *big.Int {
	z, _ := new(big.Int).SetString(s, 10)
	return z
}

func TestMul(t *testing.T) {
	t.Parallel()

	t.Run("no implicit reduction", func(t *testing.T) {
		got, err := Mul(New(1, 2), New(2, 4))
		require.NoError(t, err)
		require.True(t, got.Equal(New(2, 8)), "got %s", got)
		require.Zero(t, got.Cmp(New(1, 4)))
	})

	t.Run("zero denominator", func(t *testing.T) {
		_, err := Mul(New(1, 0), New(1, 2))
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)

		_, err = Mul(New(1, 2), New(1, 0))
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		a, b := New(3, 5), New(7, 11)
		_, err := Mul(a, b)
		require.NoError(t, err)
		require.True(t, a.Equal(New(3, 5)))
		require.True(t, b.Equal(New(7, 11)))
	})
}

func TestDiv(t *testing.T) {
	t.Parallel()

	got, err := Div(New(1, 2), New(1, 3))
	require.NoError(t, err)
	require.True(t, got.Equal(New(3, 2)))

	_, err = Div(New(1, 2), New(0, 3))
	require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestComplementAndReduce(t *testing.T) {
	t.Parallel()

	require.True(t, New(1, 100).Complement().Equal(New(99, 100)))
	require.True(t, New(0, 7).Complement().Equal(New(7, 7)))

	require.True(t, New(6, 8).Reduce().Equal(New(3, 4)))
	require.True(t, New(0, 8).Reduce().Equal(New(0, 1)))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, New(1, 3).Validate())
	require.ErrorIs(t, New(1, 0).Validate(), apperrors.ErrDivisionByZero)
	require.ErrorIs(t, New(-1, 3).Validate(), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, Fraction{}.Validate(), apperrors.ErrInvalidArgument)

	require.NoError(t, New(0, 1).ValidateFee())
	require.NoError(t, New(99, 100).ValidateFee())
	require.ErrorIs(t, New(1, 1).ValidateFee(), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, New(3, 2).ValidateFee(), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, New(0, 0).ValidateFee(), apperrors.ErrDivisionByZero)
}

func TestIntRounding(t *testing.T) {
	t.Parallel()

	f := New(2, 3)
	require.Equal(t, "6", f.MulIntFloor(big.NewInt(10)).String())
	require.Equal(t, "7", f.MulIntCeil(big.NewInt(10)).String())
	require.Equal(t, "6", f.MulIntCeil(big.NewInt(9)).String())

	q, err := f.DivIntFloor(big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, "15", q.String())

	q, err = New(3, 7).DivIntCeil(big.NewInt(10))
	require.NoError(t, err)
	require.Equal(t, "24", q.String()) // 23.33...

	_, err = New(0, 7).DivIntCeil(big.NewInt(10))
	require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestToFixedPoint(t *testing.T) {
	t.Parallel()

	v, err := ToFixedPoint(New(2, 3), One)
	require.NoError(t, err)
	require.Equal(t, "666666666666666666", v.String())

	v, err = ToFixedPoint(New(3000, 792), One)
	require.NoError(t, err)
	require.Equal(t, "3787878787878787878", v.String())

	huge := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = ToFixedPoint(FromInt(huge), big.NewInt(1))
	require.ErrorIs(t, err, apperrors.ErrOverflow)

	_, err = ToFixedPoint(New(1, 2), big.NewInt(0))
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCheckRange(t *testing.T) {
	t.Parallel()

	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
	require.NoError(t, CheckRange(max))
	require.NoError(t, CheckRange(big.NewInt(0)))
	require.ErrorIs(t, CheckRange(new(big.Int).Add(max, big.NewInt(1))), apperrors.ErrOverflow)
	require.ErrorIs(t, CheckRange(big.NewInt(-1)), apperrors.ErrInvalidArgument)
	require.ErrorIs(t, CheckRange(nil), apperrors.ErrInvalidArgument)
}
