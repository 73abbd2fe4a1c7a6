// LangGate - Multi-Tenant Linguistic Analysis Gateway
// Copyright 2026 The LangGate Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/giellalt/langgate

// Package workererr defines the internal error taxonomy for worker and
// dispatcher failures. These are never returned to callers directly; the
// boundary converts them to internal/apierr.Error before encoding a
// response.
package workererr

import (
	"errors"
	"fmt"

	"github.com/giellalt/langgate/internal/apierr"
)

// Kind categorizes a worker-level failure so the supervisor and registry
// can decide whether to restart, reject, or abandon a load.
type Kind int

const (
	// NotFound: language not registered for the requested kind.
	NotFound Kind = iota
	// BadInput: request body missing the required field, or empty.
	BadInput
	// Protocol: backing tool produced output the parser could not
	// interpret. Fatal to the current worker instance.
	Protocol
	// Io: pipe read/write failure or child process exited. Fatal to the
	// current worker instance.
	Io
	// LoadFailure: model file could not be opened, or preferences could
	// not be read. The triggering event is abandoned.
	LoadFailure
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case BadInput:
		return "bad_input"
	case Protocol:
		return "protocol"
	case Io:
		return "io"
	case LoadFailure:
		return "load_failure"
	default:
		return "unknown"
	}
}

// Error is the internal error type carried between a worker, its
// supervisor, and the dispatcher. It is never serialized directly.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Fatal reports whether this error kind invalidates the current worker
// instance, making it eligible for supervisor restart.
func (e *Error) Fatal() bool {
	switch e.Kind {
	case Protocol, Io:
		return true
	default:
		return false
	}
}

// New builds an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// ToAPIError converts any error into the single externally visible
// apierr.Error shape. A *workererr.Error contributes its Message; any
// other error contributes its Error() string directly.
func ToAPIError(err error) *apierr.Error {
	var we *Error
	if errors.As(err, &we) {
		return &apierr.Error{Message: we.Message}
	}
	return &apierr.Error{Message: err.Error()}
}
