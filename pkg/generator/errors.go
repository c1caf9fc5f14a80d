package generator

import "errors"

var (
	// ErrInvalidRange is returned when MinValue > MaxValue.
	ErrInvalidRange = errors.New("generator: invalid value range")

	// ErrInvalidLength is returned when MinLength > MaxLength or MaxLength < 1.
	ErrInvalidLength = errors.New("generator: invalid length range")

	// ErrInvalidCount is returned when a negative number of equations is requested.
	ErrInvalidCount = errors.New("generator: invalid equation count")
)
