package benchmark

import (
	"testing"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// setupCurve returns the demo curve and two points on it.
func setupCurve(b *testing.B) (*ecc.Curve, ecc.Point, ecc.Point) {
	b.Helper()
	curve, err := ecc.NewCurve(4, 4, 313)
	if err != nil {
		b.Fatalf("Curve setup failed: %v", err)
	}
	return curve, ecc.NewPoint(274, 288), ecc.NewPoint(159, 45)
}

func BenchmarkAdd(b *testing.B) {
	curve, p1, p2 := setupCurve(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Add(p1, p2); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDouble(b *testing.B) {
	curve, p1, _ := setupCurve(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Double(p1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIsOnCurve(b *testing.B) {
	curve, p1, _ := setupCurve(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		curve.IsOnCurve(p1)
	}
}

func BenchmarkModInverse(b *testing.B) {
	const p = 2147483647
	for i := 0; i < b.N; i++ {
		if _, err := ecc.ModInverse(int64(i%(p-1))+1, p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPoints(b *testing.B) {
	curve, _, _ := setupCurve(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := curve.Points(0); err != nil {
			b.Fatal(err)
		}
	}
}
