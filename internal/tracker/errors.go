package tracker

import (
	"errors"
	"fmt"
)

// ErrInsufficientBalance is returned when a banked-hours operation asks
// for more than the available balance. No state is mutated.
var ErrInsufficientBalance = errors.New("not enough banked hours")

// ValidationError reports rejected user input. No state is mutated when
// one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a user-input rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
