// Package ecc is the public entry point for short Weierstrass curve
// arithmetic over small prime fields.
//
// Field elements are int64 values; moduli up to MaxModulus are supported.
// Curves and points are immutable values and may be shared between
// goroutines without synchronization.
package ecc

import (
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// MaxModulus is the largest supported field modulus.
const MaxModulus = field.MaxModulus

// Point is either the point at infinity or an affine pair (x, y).
type Point = curves.Point

// Curve is the curve y^2 = x^3 + ax + b over F_p.
type Curve = curves.Curve

// OpError describes a failed curve operation.
type OpError = curves.OpError

// NewCurve returns the curve y^2 = x^3 + ax + b mod p.
func NewCurve(a, b, p int64) (*Curve, error) {
	return curves.New(a, b, p)
}

// LookupCurve returns a registered curve by name.
func LookupCurve(name string) (*Curve, error) {
	return curves.Lookup(name)
}

// CurveNames lists the registered curves.
func CurveNames() []string {
	return curves.Names()
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y int64) Point {
	return curves.NewPoint(x, y)
}

// Infinity returns the point at infinity.
func Infinity() Point {
	return curves.Infinity()
}

// ModInverse returns x with (a * x) mod m == 1, or ErrNotInvertible.
func ModInverse(a, m int64) (int64, error) {
	return field.Inverse(a, m)
}
