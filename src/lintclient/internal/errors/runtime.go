package errors

import (
	stderr "errors"
	"fmt"
)

// Remediation is a one-click action offered alongside a user-facing error.
type Remediation struct {
	// Title is the label of the action.
	Title string
	// Command identifies the host command to execute when the action is chosen.
	Command string
	// Arguments are passed to Command.
	Arguments []string
}

// RuntimeUnresolvableError reports that no compatible runtime could be found to launch the analysis server.
type RuntimeUnresolvableError struct {
	Message     string
	Remediation *Remediation
	Err         error
}

// Error is an implementation of the error interface.
func (e *RuntimeUnresolvableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *RuntimeUnresolvableError) Unwrap() error {
	return e.Err
}

// AsRuntimeUnresolvable returns the RuntimeUnresolvableError and true if one is part of the error chain.
func AsRuntimeUnresolvable(e error) (*RuntimeUnresolvableError, bool) {
	var ru *RuntimeUnresolvableError
	if !stderr.As(e, &ru) {
		return nil, false
	}
	return ru, true
}

// TransportError reports a failure to spawn the analysis server or to connect to it.
type TransportError struct {
	Stage string
	Err   error
}

// Error is an implementation of the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("analysis server transport failed during %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether a TransportError is part of the error chain.
func IsTransportError(e error) bool {
	var te *TransportError
	return stderr.As(e, &te)
}
