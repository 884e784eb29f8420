package field

import "github.com/pkg/errors"

// MaxModulus is the largest modulus for which the product of two reduced
// elements still fits in an int64.
const MaxModulus int64 = 3037000499

// Common errors returned by field arithmetic
var (
	ErrNotInvertible  = errors.New("element is not invertible")
	ErrInvalidModulus = errors.New("invalid modulus")
)

// CheckModulus reports whether m can serve as a field modulus.
func CheckModulus(m int64) error {
	if m < 2 || m > MaxModulus {
		return errors.Wrapf(ErrInvalidModulus, "modulus %d outside [2, %d]", m, MaxModulus)
	}
	return nil
}

// Mod returns the Euclidean remainder of a by m, always in [0, m).
// Go's % truncates toward zero, so negative dividends need a correction.
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

// Add returns (a + b) mod m for a, b in [0, m).
func Add(a, b, m int64) int64 {
	return Mod(a+b, m)
}

// Sub returns (a - b) mod m for a, b in [0, m).
func Sub(a, b, m int64) int64 {
	return Mod(a-b, m)
}

// Mul returns (a * b) mod m for a, b in [0, m).
func Mul(a, b, m int64) int64 {
	return Mod(a*b, m)
}

// Neg returns -a mod m.
func Neg(a, m int64) int64 {
	return Mod(-a, m)
}

// Div returns a / b mod m, i.e. a times the inverse of b.
func Div(a, b, m int64) (int64, error) {
	inv, err := Inverse(b, m)
	if err != nil {
		return 0, err
	}
	return Mul(Mod(a, m), inv, m), nil
}
