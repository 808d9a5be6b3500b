package translate

import (
	"errors"
	"fmt"
)

// ErrUnsupportedPair is returned when the source/target languages are not
// the fixed bidirectional pair the pipeline supports.
var ErrUnsupportedPair = errors.New("unsupported language pair")

// Error represents a failure talking to the translation service.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("translation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("translation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
