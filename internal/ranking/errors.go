package ranking

import "fmt"

// InputError reports a caller-side contract violation at the ranking API boundary,
// such as a missing candidate or an out-of-range threshold.
// Sparse or messy domain data never produces an InputError.
type InputError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InputError) Error() string {
	msg := fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Cause
}
