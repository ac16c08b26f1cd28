package calculation

import (
	"errors"
)

// Sentinel errors for precondition failures. Calculators fail fast with these
// rather than letting NaN/Infinity flow into results; callers match with
// errors.Is.
var (
	// ErrInvalidInput marks inputs that would make the math undefined
	// (zero shares, zero expected move, empty bracket table).
	ErrInvalidInput = errors.New("invalid input")

	// ErrParameterOutOfRange marks inputs outside their documented range
	// (years outside [1,30], growth rate outside [0,20], implausible vol).
	ErrParameterOutOfRange = errors.New("parameter out of range")

	// ErrOverDeducted reports deductions exceeding gross pay. Calculate
	// clamps and flags; CalculateStrict returns this instead.
	ErrOverDeducted = errors.New("deductions exceed gross pay")
)
