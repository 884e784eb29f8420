package e2e

import (
	"fmt"
	"testing"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
	"golang.org/x/sync/errgroup"
)

// enumerate returns the curve and all of its points.
func enumerate(t *testing.T, name string) (*ecc.Curve, []ecc.Point) {
	t.Helper()
	curve, err := ecc.LookupCurve(name)
	if err != nil {
		t.Fatalf("Lookup %s failed: %v", name, err)
	}
	points, err := curve.Points(0)
	if err != nil {
		t.Fatalf("Enumerating %s failed: %v", name, err)
	}
	return curve, points
}

func mustAdd(t *testing.T, g ecc.Group, p, q ecc.Point) ecc.Point {
	t.Helper()
	r, err := g.Add(p, q)
	if err != nil {
		t.Fatalf("%s + %s failed: %v", p, q, err)
	}
	return r
}

func TestGroupLaws(t *testing.T) {
	for _, name := range ecc.CurveNames() {
		t.Run(name, func(t *testing.T) {
			curve, points := enumerate(t, name)
			_, _, p := curve.Params()

			for _, P := range points {
				// Identity
				if r := mustAdd(t, curve, P, ecc.Infinity()); !r.Equal(P) {
					t.Errorf("%s + ∞ = %s", P, r)
				}
				if r := mustAdd(t, curve, ecc.Infinity(), P); !r.Equal(P) {
					t.Errorf("∞ + %s = %s", P, r)
				}

				// Doubling consistency and closure
				d, err := curve.Double(P)
				if err != nil {
					t.Fatalf("Double %s failed: %v", P, err)
				}
				if r := mustAdd(t, curve, P, P); !r.Equal(d) {
					t.Errorf("%s + %s = %s, Double = %s", P, P, r, d)
				}
				if !curve.IsOnCurve(d) {
					t.Errorf("2 * %s = %s is not on the curve", P, d)
				}

				// Inverse
				if x, y, ok := P.Coords(); ok && y != 0 {
					if r := mustAdd(t, curve, P, ecc.NewPoint(x, p-y)); !r.IsInfinity() {
						t.Errorf("%s + (%d, %d) = %s, want ∞", P, x, p-y, r)
					}
				}

				for _, Q := range points {
					r := mustAdd(t, curve, P, Q)
					if !curve.IsOnCurve(r) {
						t.Errorf("%s + %s = %s is not on the curve", P, Q, r)
					}
					if s := mustAdd(t, curve, Q, P); !s.Equal(r) {
						t.Errorf("%s + %s = %s but %s + %s = %s", P, Q, r, Q, P, s)
					}
				}
			}
		})
	}
}

func TestAssociativity(t *testing.T) {
	// Cubic in the number of points; only the small textbook curves.
	for _, name := range []string{"p11", "p17", "p97"} {
		t.Run(name, func(t *testing.T) {
			curve, points := enumerate(t, name)
			for _, P := range points {
				for _, Q := range points {
					pq := mustAdd(t, curve, P, Q)
					for _, R := range points {
						left := mustAdd(t, curve, pq, R)
						right := mustAdd(t, curve, P, mustAdd(t, curve, Q, R))
						if !left.Equal(right) {
							t.Fatalf("(%s + %s) + %s = %s but %s + (%s + %s) = %s",
								P, Q, R, left, P, Q, R, right)
						}
					}
				}
			}
		})
	}
}

func TestGeneratorCycle(t *testing.T) {
	// G = (5, 1) generates the whole group of order 19 on p17.
	curve, points := enumerate(t, "p17")
	g := ecc.NewPoint(5, 1)

	seen := map[string]bool{}
	acc := g
	for i := 1; i <= len(points); i++ {
		seen[acc.String()] = true
		acc = mustAdd(t, curve, acc, g)
	}

	if !acc.Equal(g) {
		t.Errorf("20G = %s, expected G", acc)
	}
	if len(seen) != len(points) {
		t.Errorf("G generated %d points, expected %d", len(seen), len(points))
	}
}

func TestConcurrentUse(t *testing.T) {
	curve, points := enumerate(t, "demo313")

	// Sequential reference
	expected := make([]ecc.Point, len(points))
	for i, P := range points {
		expected[i] = mustAdd(t, curve, P, points[(i*7+3)%len(points)])
	}

	// The same curve value shared by many goroutines
	results := make([]ecc.Point, len(points))
	var g errgroup.Group
	g.SetLimit(8)
	for i := range points {
		i := i
		g.Go(func() error {
			r, err := curve.Add(points[i], points[(i*7+3)%len(points)])
			if err != nil {
				return err
			}
			if !curve.IsOnCurve(r) {
				return fmt.Errorf("result %s is not on the curve", r)
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("Concurrent addition failed: %v", err)
	}

	for i := range expected {
		if !results[i].Equal(expected[i]) {
			t.Errorf("point %d: concurrent %s, sequential %s", i, results[i], expected[i])
		}
	}
}
