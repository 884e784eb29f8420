package curves

import (
	"fmt"
	"math/big"

	"github.com/pkg/errors"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
	"github.com/smallyu/go-weierstrass/internal/crypto/polynomial"
)

// Curve is the short Weierstrass curve y^2 = x^3 + ax + b over F_p.
// It is immutable and safe for concurrent use.
type Curve struct {
	name    string
	a, b, p int64
	rhs     *polynomial.Polynomial
}

// New returns the curve y^2 = x^3 + ax + b mod p. The modulus must lie in
// [2, field.MaxModulus]; primality is left to the caller (see Validate).
func New(a, b, p int64) (*Curve, error) {
	if err := field.CheckModulus(p); err != nil {
		return nil, err
	}

	rhs, err := polynomial.New(p, b, a, 0, 1)
	if err != nil {
		return nil, err
	}

	return &Curve{
		a:   field.Mod(a, p),
		b:   field.Mod(b, p),
		p:   p,
		rhs: rhs,
	}, nil
}

// Params returns the curve coefficients and the field modulus.
func (c *Curve) Params() (a, b, p int64) {
	return c.a, c.b, c.p
}

// Name returns the registry name of the curve, or "" for ad-hoc curves.
func (c *Curve) Name() string {
	return c.name
}

func (c *Curve) String() string {
	return fmt.Sprintf("y^2 = x^3 + %dx + %d mod %d", c.a, c.b, c.p)
}

// Validate checks that p is a prime greater than 3 and that the curve is
// non-singular, i.e. 4a^3 + 27b^2 != 0 mod p.
func (c *Curve) Validate() error {
	// ProbablyPrime is exact below 2^64.
	if !big.NewInt(c.p).ProbablyPrime(0) {
		return errors.Wrapf(ErrNotPrime, "p = %d", c.p)
	}
	if c.p <= 3 {
		return errors.Wrapf(field.ErrInvalidModulus, "characteristic %d", c.p)
	}

	p := c.p
	a3 := field.Mul(field.Mul(c.a, c.a, p), c.a, p)
	b2 := field.Mul(c.b, c.b, p)
	disc := field.Add(field.Mul(4, a3, p), field.Mul(27%p, b2, p), p)
	if disc == 0 {
		return errors.Wrapf(ErrSingular, "%s", c)
	}
	return nil
}

// IsOnCurve reports whether pt satisfies the curve equation.
// The point at infinity is always on the curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.IsInfinity() {
		return true
	}

	pt = c.reduce(pt)
	return field.Mul(pt.y, pt.y, c.p) == c.rhs.Evaluate(pt.x)
}

// Neg returns the additive inverse (x, -y) of pt.
func (c *Curve) Neg(pt Point) Point {
	if pt.IsInfinity() {
		return pt
	}

	pt = c.reduce(pt)
	return NewPoint(pt.x, field.Neg(pt.y, c.p))
}

// Add returns p1 + p2. The operands are not checked for curve membership.
func (c *Curve) Add(p1, p2 Point) (Point, error) {
	if p1.IsInfinity() {
		return p2, nil
	}
	if p2.IsInfinity() {
		return p1, nil
	}

	q1, q2 := c.reduce(p1), c.reduce(p2)

	if q1.x == q2.x {
		// Vertical line through inverse points.
		if q1.y != q2.y {
			return Infinity(), nil
		}
		r, err := c.double(q1)
		if err != nil {
			return Point{}, newOpError("add", err, p1, p2)
		}
		return r, nil
	}

	lambda, err := c.secantSlope(q1, q2)
	if err != nil {
		return Point{}, newOpError("add", err, p1, p2)
	}
	return c.third(lambda, q1, q2.x), nil
}

// Double returns pt + pt.
func (c *Curve) Double(pt Point) (Point, error) {
	if pt.IsInfinity() {
		return pt, nil
	}

	r, err := c.double(c.reduce(pt))
	if err != nil {
		return Point{}, newOpError("double", err, pt)
	}
	return r, nil
}

// double expects a reduced affine point.
func (c *Curve) double(pt Point) (Point, error) {
	// A vertical tangent meets the curve again only at infinity.
	if pt.y == 0 {
		return Infinity(), nil
	}

	lambda, err := c.tangentSlope(pt)
	if err != nil {
		return Point{}, err
	}
	return c.third(lambda, pt, pt.x), nil
}

// tangentSlope returns (3x^2 + a) / 2y mod p.
func (c *Curve) tangentSlope(pt Point) (int64, error) {
	p := c.p
	num := field.Add(field.Mul(3%p, field.Mul(pt.x, pt.x, p), p), c.a, p)
	den := field.Mul(2%p, pt.y, p)
	return field.Div(num, den, p)
}

// secantSlope returns (y2 - y1) / (x2 - x1) mod p.
func (c *Curve) secantSlope(p1, p2 Point) (int64, error) {
	p := c.p
	num := field.Sub(p2.y, p1.y, p)
	den := field.Sub(p2.x, p1.x, p)
	return field.Div(num, den, p)
}

// third returns the reflection of the third intersection of the line with
// slope lambda through p1 (and a second point with abscissa x2).
func (c *Curve) third(lambda int64, p1 Point, x2 int64) Point {
	p := c.p
	x3 := field.Sub(field.Sub(field.Mul(lambda, lambda, p), p1.x, p), x2, p)
	y3 := field.Sub(field.Mul(lambda, field.Sub(p1.x, x3, p), p), p1.y, p)
	return NewPoint(x3, y3)
}

func (c *Curve) reduce(pt Point) Point {
	return NewPoint(field.Mod(pt.x, c.p), field.Mod(pt.y, c.p))
}
