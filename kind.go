package supersub

import (
	"math/big"

	"github.com/govalues/decimal"
)

// Kind represents the numeric category of a value.
// The zero value is [NotANumber], which indicates a value outside the
// supported numeric domain.
//
// Classification is derived purely from a value's dynamic type, so a Kind is
// immutable once computed and safe to share between goroutines.
// The set of kinds is closed: every supported numeric representation maps to
// exactly one kind, and everything else maps to [NotANumber], so callers can
// select behavior per kind without an open-ended fallthrough.
type Kind uint8

const (
	// NotANumber indicates a value that is not a supported numeric type.
	// It is a valid terminal classification, not an error.
	NotANumber Kind = iota

	// SignedInt covers int, int8, int16, int32, and int64.
	// Note that rune is int32, so a rune value classifies as a signed
	// integer.
	SignedInt

	// UnsignedInt covers uint, uint8, uint16, uint32, uint64, and uintptr.
	UnsignedInt

	// Float covers float32 and float64, as well as [big.Float] and
	// [decimal.Decimal] values.
	Float

	// BigInt covers [big.Int] values and pointers.
	BigInt

	// Complex covers complex64 and complex128.
	Complex
)

// Classify returns the numeric kind of a value.
// It is a total function: any value outside the supported numeric domain
// classifies as [NotANumber], and no input causes an error.
func Classify(v any) Kind {
	switch v.(type) {
	case int, int8, int16, int32, int64:
		return SignedInt
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return UnsignedInt
	case float32, float64, decimal.Decimal, big.Float, *big.Float:
		return Float
	case big.Int, *big.Int:
		return BigInt
	case complex64, complex128:
		return Complex
	default:
		return NotANumber
	}
}

// IsInteger reports whether the kind is one of the integer kinds:
// [SignedInt], [UnsignedInt], or [BigInt].
func (k Kind) IsInteger() bool {
	return k == SignedInt || k == UnsignedInt || k == BigInt
}

// IsReal reports whether the kind is an integer kind or [Float].
func (k Kind) IsReal() bool {
	return k.IsInteger() || k == Float
}

// IsNumber reports whether the kind is any numeric kind, that is, anything
// other than [NotANumber].
func (k Kind) IsNumber() bool {
	return k.IsReal() || k == Complex
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of the Kind value.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (k Kind) String() string {
	switch k {
	case SignedInt:
		return "SignedInt"
	case UnsignedInt:
		return "UnsignedInt"
	case Float:
		return "Float"
	case BigInt:
		return "BigInt"
	case Complex:
		return "Complex"
	default:
		return "NotANumber"
	}
}
