// Package status exports errors produced by the quantity package.
package status

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/errors"
)

var (
	// ErrParse indicates a magnitude or quantity string could not be parsed
	ErrParse = errors.New("parse error")

	// ErrUnitMismatch indicates an operation combined quantities with different units
	ErrUnitMismatch = errors.New("unit mismatch")

	// ErrDivideByZero indicates a division by a zero magnitude
	ErrDivideByZero = errors.New("division by zero")

	// ErrDimension indicates a dimensional quantity was used where a dimensionless one is required
	ErrDimension = errors.New("quantity is not dimensionless")

	// ErrDomain indicates a value outside of the domain of a function, e.g. the logarithm of zero
	ErrDomain = errors.New("value out of domain")
)
