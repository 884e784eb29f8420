package field

import "github.com/pkg/errors"

// Inverse computes x such that (a * x) mod m == 1 using the iterative
// extended Euclidean algorithm. The result lies in [0, m).
//
// It returns ErrNotInvertible when gcd(a, m) != 1, which includes a ≡ 0.
func Inverse(a, m int64) (int64, error) {
	if m < 2 {
		return 0, errors.Wrapf(ErrInvalidModulus, "modulus %d", m)
	}

	m0 := m
	a = Mod(a, m)
	if a == 0 {
		return 0, errors.Wrapf(ErrNotInvertible, "0 mod %d", m0)
	}

	x0, x1 := int64(0), int64(1)
	for a > 1 {
		// a > 1 with nothing left to divide by means gcd == a.
		if m == 0 {
			return 0, errors.Wrapf(ErrNotInvertible, "gcd with %d is %d", m0, a)
		}
		q := a / m
		a, m = m, a%m
		x0, x1 = x1-q*x0, x0
	}

	return Mod(x1, m0), nil
}
