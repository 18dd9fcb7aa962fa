// Copyright 2026 The Jina Authors
// SPDX-License-Identifier: Apache-2.0

package request

import (
	"errors"
	"fmt"
)

// DecodeError reports that a request's raw bytes could not be turned
// into a record: either decompression or parsing failed. The error is
// fatal for the instance — no partial record exists, and every later
// access fails the same way. Callers can use errors.As to learn the
// failing stage:
//
//	var decodeErr *request.DecodeError
//	if errors.As(err, &decodeErr) { ... decodeErr.Stage ... }
type DecodeError struct {
	// Stage is "decompress" or "parse".
	Stage string
	// Err is the underlying codec error.
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("request: %s: %v", e.Stage, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownFieldError reports a field name that matches neither a
// top-level request field nor a field of the active body variant.
// There is no silent defaulting: a typo surfaces here instead of
// producing a zero value.
type UnknownFieldError struct {
	// Name is the requested field name.
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("request: unknown field %q", e.Name)
}

// TypeMismatchError reports a value whose Go type is not accepted
// where it was passed: an unrecognized queryset item kind, or a field
// assignment with the wrong value type.
type TypeMismatchError struct {
	// Kind is the Go type name of the offending value.
	Kind string
	// Want describes what would have been accepted.
	Want string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("request: unexpected %s, want %s", e.Kind, e.Want)
}

// ErrNotAssignable is wrapped by Set when the named field exists but
// is a collection, which can only be modified through the attachment
// operations, never replaced wholesale.
var ErrNotAssignable = errors.New("field is not assignable")
