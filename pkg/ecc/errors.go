package ecc

import (
	"github.com/smallyu/go-weierstrass/internal/crypto/curves"
	"github.com/smallyu/go-weierstrass/internal/crypto/field"
)

// Common errors returned by the ecc package
var (
	ErrNotInvertible  = field.ErrNotInvertible
	ErrInvalidModulus = field.ErrInvalidModulus
	ErrNotPrime       = curves.ErrNotPrime
	ErrSingular       = curves.ErrSingular
	ErrUnknownCurve   = curves.ErrUnknownCurve
	ErrTooLarge       = curves.ErrTooLarge
)
