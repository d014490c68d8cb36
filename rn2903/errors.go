package rn2903

import (
	"errors"
	"fmt"
	"time"
)

// WrongDeviceError indicates the connected device did not answer the
// version probe with the expected banner. Perhaps the port belongs to
// some other serial device.
type WrongDeviceError struct {
	// Version is the banner the device actually reported
	Version string
}

func (e *WrongDeviceError) Error() string {
	return fmt.Sprintf("could not verify device: expected an RN2903-family firmware banner, got %q",
		e.Version)
}

// BadResponseError indicates the response did not match any expected
// shape for the command issued: protocol desynchronization or
// unexpected firmware behavior. The raw response is preserved, never
// coerced into a default value.
type BadResponseError struct {
	// Operation is the command that failed
	Operation string

	// Response is the raw classified-but-unexpected response line
	Response []byte
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("%s: unexpected response %q", e.Operation, e.Response)
}

// TimeoutError indicates the device did not produce a terminated
// response line within the allowed wait. It is a transport-level
// failure, never inferred from protocol content, and is reported to
// the caller rather than retried.
type TimeoutError struct {
	// Timeout is the wait that elapsed
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response within %s", e.Timeout)
}

// IsTimeout returns true if the error is (or wraps) a TimeoutError.
func IsTimeout(err error) bool {
	var te *TimeoutError
	return errors.As(err, &te)
}

// TransceiverBusyError is raised before any I/O when a radio operation
// is attempted in a state that cannot accept it: the network stack is
// still active, or another radio operation is in flight on this
// driver.
type TransceiverBusyError struct {
	// Operation is the rejected command
	Operation string

	// Reason describes the violated precondition
	Reason string
}

func (e *TransceiverBusyError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Operation, e.Reason)
}

// CannotPauseError indicates the network stack could not be paused:
// either the driver already holds it paused, or the device reported
// that pausing is impossible right now.
type CannotPauseError struct {
	Reason string
}

func (e *CannotPauseError) Error() string {
	return fmt.Sprintf("cannot pause network stack: %s", e.Reason)
}

// CannotResumeError indicates a resume was attempted while the driver
// does not hold the stack paused.
type CannotResumeError struct {
	Reason string
}

func (e *CannotResumeError) Error() string {
	return fmt.Sprintf("cannot resume network stack: %s", e.Reason)
}
