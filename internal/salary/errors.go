// Package salary normalizes salary expressions into annualized ranges.
package salary

import "fmt"

// RangeOrderError is returned when a lower bound exceeds its upper bound.
type RangeOrderError struct {
	Lower int
	Upper int
}

func (e *RangeOrderError) Error() string {
	return fmt.Sprintf("invalid salary range: lower bound %d is greater than upper bound %d", e.Lower, e.Upper)
}

// BoundError represents a salary bound that could not be converted to a yearly amount.
type BoundError struct {
	Value   string
	Unit    string
	Message string
	Cause   error
}

func (e *BoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("salary bound %q (unit %q): %s: %v", e.Value, e.Unit, e.Message, e.Cause)
	}
	return fmt.Sprintf("salary bound %q (unit %q): %s", e.Value, e.Unit, e.Message)
}

func (e *BoundError) Unwrap() error {
	return e.Cause
}
