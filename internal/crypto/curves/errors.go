package curves

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Common errors returned by curve operations
var (
	ErrNotPrime     = errors.New("modulus is not prime")
	ErrSingular     = errors.New("curve is singular")
	ErrUnknownCurve = errors.New("unknown curve")
	ErrTooLarge     = errors.New("field too large to enumerate")
)

// OpError records a failed curve operation together with its operands.
type OpError struct {
	Op       string
	Operands []Point
	Err      error
}

func (e *OpError) Error() string {
	ops := make([]string, len(e.Operands))
	for i, p := range e.Operands {
		ops[i] = p.String()
	}
	return fmt.Sprintf("%s %s: %v", e.Op, strings.Join(ops, ", "), e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func newOpError(op string, err error, operands ...Point) *OpError {
	return &OpError{
		Op:       op,
		Operands: operands,
		Err:      err,
	}
}
