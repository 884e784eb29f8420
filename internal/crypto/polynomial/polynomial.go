package polynomial

import (
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Polynomial represents a polynomial f(x) = a_0 + a_1*x + ... + a_t*x^t
// over the prime field F_p.
type Polynomial struct {
	Coefficients []int64
	Modulus      int64
}

// New returns the polynomial with the given coefficients (constant term
// first), each reduced into [0, p).
func New(p int64, coeffs ...int64) (*Polynomial, error) {
	if err := field.CheckModulus(p); err != nil {
		return nil, err
	}
	if len(coeffs) == 0 {
		coeffs = []int64{0}
	}

	reduced := make([]int64, len(coeffs))
	for i, c := range coeffs {
		reduced[i] = field.Mod(c, p)
	}

	return &Polynomial{
		Coefficients: reduced,
		Modulus:      p,
	}, nil
}

// Degree returns the index of the highest stored coefficient.
func (p *Polynomial) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x) mod p
func (p *Polynomial) Evaluate(x int64) int64 {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i

	m := p.Modulus
	x = field.Mod(x, m)
	degree := p.Degree()
	result := p.Coefficients[degree]

	for i := degree - 1; i >= 0; i-- {
		result = field.Mul(result, x, m)
		result = field.Add(result, p.Coefficients[i], m)
	}

	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial) EvaluateMulti(xs []int64) []int64 {
	results := make([]int64, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}
