package skills

import "fmt"

// DictionaryError represents an error loading or parsing a skill vocabulary
type DictionaryError struct {
	Message string
	Cause   error
}

func (e *DictionaryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("dictionary error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("dictionary error: %s", e.Message)
}

func (e *DictionaryError) Unwrap() error {
	return e.Cause
}
