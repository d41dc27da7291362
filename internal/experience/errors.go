// Package experience estimates years of experience for candidates and job requirements.
package experience

import "fmt"

// DateError represents a date string that could not be parsed
type DateError struct {
	Value string
	Cause error
}

func (e *DateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("date error: cannot parse %q: %v", e.Value, e.Cause)
	}
	return fmt.Sprintf("date error: cannot parse %q", e.Value)
}

func (e *DateError) Unwrap() error {
	return e.Cause
}
