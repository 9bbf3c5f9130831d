package db

import (
	"errors"
	"fmt"
)

// KindBackendError is the only kind of Report the classifier produces.
const KindBackendError = "BackendError"

// ConnectionError wraps a failure to reach, authenticate with, or verify
// the certificate of the backend.
type ConnectionError struct {
	Backend string
	Cause   error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error: %v", e.Cause)
}

func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// ExecutionError wraps a failure the backend reported while running or
// fetching a statement.
type ExecutionError struct {
	Backend   string
	Statement string
	Cause     error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("query error: %v", e.Cause)
}

func (e *ExecutionError) Unwrap() error {
	return e.Cause
}

// Report is what a caller sees for a backend failure.
type Report struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Classify turns errors raised by the backend client layer into a Report.
// It returns false for anything else; those are not backend failures.
func Classify(err error) (Report, bool) {
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return newReport(connErr.Backend, connErr.Cause), true
	}

	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return newReport(execErr.Backend, execErr.Cause), true
	}

	return Report{}, false
}

func newReport(backend string, cause error) Report {
	return Report{
		Kind:    KindBackendError,
		Message: fmt.Sprintf("%s error: %v", backend, cause),
	}
}
