package curves

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// DefaultEnumerationLimit bounds the field size accepted by Points when the
// caller passes a non-positive limit.
const DefaultEnumerationLimit int64 = 1 << 16

// MaxEnumerationLimit is the ceiling applied to any limit passed to Points.
// Enumeration allocates a table proportional to p.
const MaxEnumerationLimit int64 = 1 << 20

// Named curves. All are small textbook curves over prime fields.
var registry = map[string][3]int64{
	"demo313": {4, 4, 313},
	"p11":     {1, 6, 11},
	"p17":     {2, 2, 17},
	"p97":     {2, 3, 97},
}

// Lookup returns the registered curve with the given name.
func Lookup(name string) (*Curve, error) {
	params, ok := registry[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCurve, "%q", name)
	}

	c, err := New(params[0], params[1], params[2])
	if err != nil {
		return nil, err
	}
	c.name = name
	return c, nil
}

// Names returns the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Points enumerates every point of the curve: infinity first, then the affine
// points ordered by x and then y. It refuses fields larger than limit,
// which is itself capped at MaxEnumerationLimit.
func (c *Curve) Points(limit int64) ([]Point, error) {
	if limit <= 0 {
		limit = DefaultEnumerationLimit
	}
	if limit > MaxEnumerationLimit {
		limit = MaxEnumerationLimit
	}
	if c.p > limit {
		return nil, errors.Wrapf(ErrTooLarge, "p = %d exceeds %d", c.p, limit)
	}

	p := c.p
	roots := make([][]int64, p)
	for y := int64(0); y < p; y++ {
		sq := field.Mul(y, y, p)
		roots[sq] = append(roots[sq], y)
	}

	points := []Point{Infinity()}
	for x := int64(0); x < p; x++ {
		for _, y := range roots[c.rhs.Evaluate(x)] {
			points = append(points, NewPoint(x, y))
		}
	}
	return points, nil
}

// Order returns the number of points on the curve, infinity included.
func (c *Curve) Order(limit int64) (int64, error) {
	points, err := c.Points(limit)
	if err != nil {
		return 0, err
	}
	return int64(len(points)), nil
}
