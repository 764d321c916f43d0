package roller

import "errors"

// RollerError is the error type for misconfigured services
type RollerError string

// Error implements the error interface
func (e RollerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        RollerError = "config cannot be nil"
	ErrNilHistoryRepo   RollerError = "history repository cannot be nil"
	ErrNilDiceRoller    RollerError = "dice roller cannot be nil"
	ErrNilClock         RollerError = "clock cannot be nil"
	ErrNilUUIDGenerator RollerError = "UUID generator cannot be nil"
	ErrNilInput         RollerError = "input cannot be nil"
)

// ErrInvalidArgument matches every ValidationError through errors.Is
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports roll parameters outside the allowed range.
// Its message is safe to show to users.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

var (
	errDiceOutOfRange = &ValidationError{
		Field:   "dice",
		Message: "Number of dice must be between 1 and 10",
	}
	errSidesOutOfRange = &ValidationError{
		Field:   "sides",
		Message: "Number of sides must be between 2 and 100",
	}
)
