package util

import "fmt"

// FormatError reports a check-in timestamp that does not match
// "M/D/YYYY H:MM:SS AM|PM" or holds an out-of-range field.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed check-in timestamp %q: %s", e.Input, e.Reason)
}

// InputError reports a missing or unusable input source.
type InputError struct {
	Source string
	Reason string
	Err    error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("input %q: %s", e.Source, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}
