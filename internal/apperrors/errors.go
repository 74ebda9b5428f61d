package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid:
	// negative amounts, fees outside [0, 1), malformed fractions.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientLiquidity is returned when a requested output or
	// withdrawal meets or exceeds the pool balance of that token.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrDivisionByZero is returned when a required denominator (weight,
	// total weight, balance, supply) is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrOverflow is returned when an intermediate or final value does not
	// fit the 256-bit fixed-point range.
	ErrOverflow = errors.New("overflow")

	// ErrInvalidExponent is returned when a power computation gets a negative
	// base or exponent, or a base it cannot approximate.
	ErrInvalidExponent = errors.New("invalid exponent")
)
