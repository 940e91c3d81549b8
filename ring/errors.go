package ring

import (
	"errors"
)

var (
	// ErrZeroDivisor is returned when a division is attempted by a scalar or
	// a leading coefficient that is zero within Tolerance.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrInexactDivision is returned when a long division step cannot be
	// carried exactly with integer arithmetic.
	ErrInexactDivision = errors.New("inexact polynomial division")

	// ErrCapacityOverflow is returned when a result would have a non-zero
	// coefficient at an index greater or equal to Capacity.
	ErrCapacityOverflow = errors.New("polynomial capacity overflow")

	// ErrInvalidModulus is returned when a coefficient modulus is not a
	// finite strictly positive value.
	ErrInvalidModulus = errors.New("invalid coefficient modulus")

	// ErrInvalidDegree is returned when a cyclotomic degree is outside [1, Capacity].
	ErrInvalidDegree = errors.New("invalid cyclotomic degree")
)
