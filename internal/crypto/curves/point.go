package curves

import "fmt"

// Point is a point on a short Weierstrass curve: either the point at
// infinity or an affine pair (x, y). The zero value is the point at infinity.
//
// A Point carries no reference to its curve; every operation takes the
// curve explicitly.
type Point struct {
	x, y   int64
	finite bool
}

// Infinity returns the identity element of the curve group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y int64) Point {
	return Point{x: x, y: y, finite: true}
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return !p.finite
}

// Coords returns the affine coordinates of p. ok is false for infinity.
func (p Point) Coords() (x, y int64, ok bool) {
	return p.x, p.y, p.finite
}

// X returns the x coordinate, or 0 for infinity.
func (p Point) X() int64 { return p.x }

// Y returns the y coordinate, or 0 for infinity.
func (p Point) Y() int64 { return p.y }

// Equal reports whether p and q are the same point.
func (p Point) Equal(q Point) bool {
	if !p.finite || !q.finite {
		return p.finite == q.finite
	}
	return p.x == q.x && p.y == q.y
}

func (p Point) String() string {
	if !p.finite {
		return "∞"
	}
	return fmt.Sprintf("(%d, %d)", p.x, p.y)
}
