package supersub

import (
	"errors"
	"math"
	"math/big"

	"golang.org/x/exp/constraints"
)

// ErrDivisionByZero is returned when the divisor is zero.
var ErrDivisionByZero = errors.New("division by zero")

// DivMod returns the quotient and remainder of floored division.
// Unlike Go's native truncating operators, the remainder is zero or carries
// the sign of the divisor, which gives a clean cyclical modulo suitable for
// indexing and periodic arithmetic:
//
//	DivMod(-7, 3) = (-3, 2)
//	DivMod(7, -3) = (-3, -2)
//
// For all nonzero b the results satisfy q*b + r == a and |r| < |b|.
// DivMod returns [ErrDivisionByZero] if b is zero.
// Overflow follows Go's two's-complement semantics, so
// DivMod(math.MinInt64, -1) wraps like the native operators do.
func DivMod[T constraints.Integer](a, b T) (q, r T, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}
	q, r = a/b, a%b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
		q--
	}
	return q, r, nil
}

// Div returns the quotient of floored division.
// It is the quotient projection of [DivMod] and shares its error behavior.
func Div[T constraints.Integer](a, b T) (T, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Mod returns the remainder of floored division, which is zero or carries
// the sign of the divisor.
// It is the remainder projection of [DivMod] and shares its error behavior.
func Mod[T constraints.Integer](a, b T) (T, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// DivModBig is like [DivMod] for arbitrary-precision integers.
// The returned quotient and remainder are newly allocated; a and b are not
// modified.
// DivModBig returns [ErrDivisionByZero] if b is zero.
func DivModBig(a, b *big.Int) (q, r *big.Int, err error) {
	if b.Sign() == 0 {
		return nil, nil, ErrDivisionByZero
	}
	q, r = new(big.Int).QuoRem(a, b, new(big.Int))
	if r.Sign() != 0 && r.Sign() != b.Sign() {
		r.Add(r, b)
		q.Sub(q, oneInt)
	}
	return q, r, nil
}

var oneInt = big.NewInt(1)

// DivModFloat is like [DivMod] for float64 values.
// The identity q*b + r == a holds only up to the rounding of float64
// arithmetic, and NaN or infinite operands propagate into the results.
// DivModFloat returns [ErrDivisionByZero] if b is zero.
func DivModFloat(a, b float64) (q, r float64, err error) {
	if b == 0 {
		return 0, 0, ErrDivisionByZero
	}
	r = math.Mod(a, b)
	if r != 0 && math.Signbit(r) != math.Signbit(b) {
		r += b
	}
	return (a - r) / b, r, nil
}
