package ecc

// Group is the set of operations available on the points of a curve.
// It lets callers depend on the arithmetic without naming the concrete curve.
type Group interface {
	// Add returns p + q.
	Add(p, q Point) (Point, error)

	// Double returns p + p.
	Double(p Point) (Point, error)

	// Neg returns -p.
	Neg(p Point) Point

	// IsOnCurve reports whether p belongs to the group.
	IsOnCurve(p Point) bool
}

var _ Group = (*Curve)(nil)
