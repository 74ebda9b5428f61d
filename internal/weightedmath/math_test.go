package weightedmath

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/fleshka4/weighted-pool/internal/apperrors"
	"github.com/fleshka4/weighted-pool/internal/fraction"
)

func TestSpotPrice(t *testing.T) {
	t.Parallel()

	t.Run("balances over weights", func(t *testing.T) {
		t.Parallel()

		p, err := SpotPrice(e18("10"), half, e18("4"), third, onePct)
		require.NoError(t, err)
		// (10/(1/2)) / (4/(1/3)) / (99/100)
		require.Zero(t, p.Cmp(fraction.New(2000, 1188)), "got %s", p)

		fixed, err := SpotPriceFixed(e18("10"), half, e18("4"), third, onePct)
		require.NoError(t, err)
		requireClose(t, e18("1.6835016833333336"), fixed, tolerance(5, 6))
		require.Equal(t, "1683501683501683501", fixed.String())
	})

	t.Run("swapped weights", func(t *testing.T) {
		t.Parallel()

		p, err := SpotPrice(e18("10"), third, e18("4"), half, onePct)
		require.NoError(t, err)
		require.Zero(t, p.Cmp(fraction.New(3000, 792)), "got %s", p)
	})

	t.Run("no fee", func(t *testing.T) {
		t.Parallel()

		p, err := SpotPrice(big.NewInt(500), half, big.NewInt(500), half, noFee)
		require.NoError(t, err)
		require.Zero(t, p.Cmp(fraction.New(1, 1)))
	})

	t.Run("zero weight", func(t *testing.T) {
		t.Parallel()

		_, err := SpotPrice(e18("10"), fraction.New(0, 1), e18("4"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
	})

	t.Run("zero balance", func(t *testing.T) {
		t.Parallel()

		_, err := SpotPrice(e18("10"), half, big.NewInt(0), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)

		_, err = SpotPrice(big.NewInt(0), half, e18("4"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
	})

	t.Run("fee of one", func(t *testing.T) {
		t.Parallel()

		_, err := SpotPrice(e18("10"), half, e18("4"), third, fraction.New(1, 1))
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})
}

func TestOutGivenIn(t *testing.T) {
	t.Parallel()

	t.Run("equal weights", func(t *testing.T) {
		t.Parallel()

		out, err := OutGivenIn(e18("100"), e18("2324"), third, e18("1234"), third, onePct)
		require.NoError(t, err)
		requireClose(t, e18("50.4193149"), out, tolerance(5, 7))
		requireClose(t, bi("50419314898885678910"), out, big.NewInt(1))
	})

	t.Run("approximated weights", func(t *testing.T) {
		t.Parallel()

		out, err := OutGivenIn(e18("100"), e18("2324"), nearlyW3, e18("1234"), nearlyW3, onePct)
		require.NoError(t, err)
		requireClose(t, e18("50.4193149"), out, tolerance(5, 5))
	})

	t.Run("zero amount", func(t *testing.T) {
		t.Parallel()

		out, err := OutGivenIn(big.NewInt(0), e18("2324"), third, e18("1234"), third, onePct)
		require.NoError(t, err)
		require.Zero(t, out.Sign())
	})

	t.Run("never drains the pool", func(t *testing.T) {
		t.Parallel()

		huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(60), nil)
		out, err := OutGivenIn(huge, big.NewInt(1000), third, big.NewInt(1000), fraction.New(2, 3), noFee)
		require.NoError(t, err)
		require.True(t, out.Cmp(big.NewInt(1000)) < 0, "out %s", out)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := OutGivenIn(e18("1"), big.NewInt(0), third, e18("1234"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)

		_, err = OutGivenIn(e18("1"), e18("1"), third, big.NewInt(0), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

		_, err = OutGivenIn(e18("1"), e18("1"), fraction.New(0, 3), e18("1"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)

		_, err = OutGivenIn(big.NewInt(-1), e18("1"), third, e18("1"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

		overflow := new(big.Int).Lsh(big.NewInt(1), 256)
		_, err = OutGivenIn(overflow, e18("1"), third, e18("1"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrOverflow)
	})
}

func TestInGivenOut(t *testing.T) {
	t.Parallel()

	t.Run("inverse of out given in", func(t *testing.T) {
		t.Parallel()

		in, err := InGivenOut(e18("50.4193149"), e18("1234"), third, e18("2324"), third, onePct)
		require.NoError(t, err)
		requireClose(t, e18("100"), in, tolerance(5, 5))
		requireClose(t, bi("100000000002304255858"), in, big.NewInt(1))
	})

	t.Run("insufficient liquidity", func(t *testing.T) {
		t.Parallel()

		_, err := InGivenOut(e18("1234"), e18("1234"), third, e18("2324"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

		_, err = InGivenOut(e18("2000"), e18("1234"), third, e18("2324"), third, onePct)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})

	t.Run("large share of the balance", func(t *testing.T) {
		t.Parallel()

		// Base 10 with exponent 1/2 takes the exact path.
		in, err := InGivenOut(big.NewInt(900), big.NewInt(1000), half, big.NewInt(1000), fraction.New(1, 1), noFee)
		require.NoError(t, err)
		require.Equal(t, "2163", in.String()) // 1000 * (sqrt(10) - 1) = 2162.27...
	})
}

func TestPoolMintedGivenSingleIn(t *testing.T) {
	t.Parallel()

	t.Run("scenario", func(t *testing.T) {
		t.Parallel()

		minted, err := PoolMintedGivenSingleIn(e18("21376"), e18("45789"), e18("10000"), third, whole, onePct)
		require.NoError(t, err)
		requireClose(t, e18("1354.11112"), minted, tolerance(5, 6))
		requireClose(t, bi("1354111124327906192930"), minted, big.NewInt(2))
	})

	t.Run("small deposit", func(t *testing.T) {
		t.Parallel()

		minted, err := PoolMintedGivenSingleIn(e18("100"), e18("45789"), e18("100000"), third, whole, onePct)
		require.NoError(t, err)
		requireClose(t, bi("72260142167388596490"), minted, big.NewInt(2))
	})

	t.Run("approximated weight", func(t *testing.T) {
		t.Parallel()

		minted, err := PoolMintedGivenSingleIn(e18("100"), e18("45789"), e18("100000"), nearlyW3, whole, onePct)
		require.NoError(t, err)
		requireClose(t, e18("72.26014216013375"), minted, tolerance(5, 4))
		requireClose(t, bi("72260142160135741273"), minted, big.NewInt(2))
	})

	t.Run("weight above total", func(t *testing.T) {
		t.Parallel()

		_, err := PoolMintedGivenSingleIn(e18("1"), e18("1"), e18("1"), fraction.New(2, 1), whole, onePct)
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("zero total weight", func(t *testing.T) {
		t.Parallel()

		_, err := PoolMintedGivenSingleIn(e18("1"), e18("1"), e18("1"), third, fraction.New(0, 1), onePct)
		require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
	})
}

func TestSingleInGivenPoolOut(t *testing.T) {
	t.Parallel()

	in, err := SingleInGivenPoolOut(e18("72.26014216013375"), e18("45789"), e18("100000"), third, whole, onePct)
	require.NoError(t, err)
	requireClose(t, e18("100"), in, tolerance(5, 4))
	requireClose(t, bi("99999999989952846240"), in, big.NewInt(2))

	in, err = SingleInGivenPoolOut(e18("72.26014216013375"), e18("45789"), e18("100000"), nearlyW3, whole, onePct)
	require.NoError(t, err)
	requireClose(t, e18("100"), in, tolerance(5, 4))

	_, err = SingleInGivenPoolOut(e18("1"), e18("1"), big.NewInt(0), third, whole, onePct)
	require.ErrorIs(t, err, apperrors.ErrDivisionByZero)
}

func TestSingleOutGivenPoolIn(t *testing.T) {
	t.Parallel()

	t.Run("scenario", func(t *testing.T) {
		t.Parallel()

		out, err := SingleOutGivenPoolIn(e18("1000"), e18("5324"), e18("1234567"), third, whole, onePct, onePct)
		require.NoError(t, err)
		requireClose(t, e18("12.712370"), out, tolerance(5, 6))
		requireClose(t, bi("12712370266385063359"), out, big.NewInt(2))
	})

	t.Run("approximated weight", func(t *testing.T) {
		t.Parallel()

		out, err := SingleOutGivenPoolIn(e18("1000"), e18("5324"), e18("1234567"), nearlyW3, whole, onePct, onePct)
		require.NoError(t, err)
		requireClose(t, bi("12712370267650505382"), out, big.NewInt(2))
	})

	t.Run("burning more than the supply", func(t *testing.T) {
		t.Parallel()

		_, err := SingleOutGivenPoolIn(e18("2"), e18("5324"), e18("1"), third, whole, onePct, onePct)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})

	t.Run("draining the balance", func(t *testing.T) {
		t.Parallel()

		_, err := SingleOutGivenPoolIn(e18("1"), e18("5324"), e18("1"), third, whole, noFee, noFee)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)
	})
}

func TestPoolInGivenSingleOut(t *testing.T) {
	t.Parallel()

	in, err := PoolInGivenSingleOut(e18("12.712380"), e18("5324"), e18("1234567"), third, whole, onePct, onePct)
	require.NoError(t, err)
	requireClose(t, e18("1000"), in, tolerance(5, 3))
	requireClose(t, bi("1000000766295229286294"), in, big.NewInt(2))

	_, err = PoolInGivenSingleOut(e18("5324"), e18("5324"), e18("1234567"), third, whole, onePct, onePct)
	require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

	// Below the balance, but not once the swap fee is added back.
	_, err = PoolInGivenSingleOut(e18("5323"), e18("5324"), e18("1234567"), third, whole, fraction.New(1, 10), noFee)
	require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

	_, err = PoolInGivenSingleOut(e18("1"), e18("5324"), e18("1234567"), third, whole, onePct, fraction.New(2, 2))
	require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestProportionalDepositsGivenPoolOut(t *testing.T) {
	t.Parallel()

	tokens := []TokenEntry{
		{Token: common.BigToAddress(big.NewInt(1)), Amount: e18("200")},
		{Token: common.BigToAddress(big.NewInt(2)), Amount: e18("1111")},
		{Token: common.BigToAddress(big.NewInt(3)), Amount: e18("7777")},
	}

	deposits, err := ProportionalDepositsGivenPoolOut(e18("578347"), e18("10000"), tokens)
	require.NoError(t, err)
	require.Len(t, deposits, 3)

	want := []string{"3458131536949270939", "19209920687753200068", "134469444814272400479"}
	for i, d := range deposits {
		require.Equal(t, tokens[i].Token, d.Token)
		require.Equal(t, want[i], d.Amount.String())

		// (10000/578347) * balance within 5e-5.
		exact := new(big.Int).Mul(e18("10000"), tokens[i].Amount)
		exact.Quo(exact, e18("578347"))
		requireClose(t, exact, d.Amount, tolerance(5, 5))
	}

	// Input balances are untouched.
	require.Equal(t, e18("200").String(), tokens[0].Amount.String())

	_, err = ProportionalDepositsGivenPoolOut(big.NewInt(0), e18("1"), tokens)
	require.ErrorIs(t, err, apperrors.ErrDivisionByZero)

	empty, err := ProportionalDepositsGivenPoolOut(e18("1"), e18("1"), nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestProportionalWithdrawGivenPoolIn(t *testing.T) {
	t.Parallel()

	tokens := []TokenEntry{
		{Token: common.BigToAddress(big.NewInt(1)), Amount: e18("200")},
		{Token: common.BigToAddress(big.NewInt(2)), Amount: e18("1111")},
		{Token: common.BigToAddress(big.NewInt(3)), Amount: e18("7777")},
	}

	withdrawals, err := ProportionalWithdrawGivenPoolIn(e18("578347"), e18("10000"), fraction.New(1, 1000), tokens)
	require.NoError(t, err)
	require.Len(t, withdrawals, 3)
	require.Equal(t, "3454673405412321668", withdrawals[0].Amount.String())

	for i, w := range withdrawals {
		require.Equal(t, tokens[i].Token, w.Token)

		exact := new(big.Int).Mul(e18("9990"), tokens[i].Amount)
		exact.Quo(exact, e18("578347"))
		requireClose(t, exact, w.Amount, tolerance(5, 5))
	}

	_, err = ProportionalWithdrawGivenPoolIn(e18("1"), e18("2"), noFee, tokens)
	require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidity)

	all, err := ProportionalWithdrawGivenPoolIn(e18("578347"), e18("578347"), noFee, tokens)
	require.NoError(t, err)
	for i, w := range all {
		require.Equal(t, tokens[i].Amount.String(), w.Amount.String())
	}
}
