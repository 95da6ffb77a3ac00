package model

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation failed")
	ErrUnknownEndpoint = errors.New("unknown endpoint")
	ErrTransport       = errors.New("transport failure")
)

// NotFoundError reports a missing record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError is raised before any store mutation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + " " + e.Reason
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// UnknownEndpointError means a URL matched no route; it points at a caller bug.
type UnknownEndpointError struct {
	Method string
	URL    string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("unknown %s endpoint: %s", e.Method, e.URL)
}

func (e *UnknownEndpointError) Is(target error) bool { return target == ErrUnknownEndpoint }

// TransportError wraps an opaque failure from the remote path.
type TransportError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s %s: status %d: %v", e.Op, e.URL, e.Status, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// Ack is the payload returned by a successful delete.
type Ack struct {
	Message string `json:"message"`
}
