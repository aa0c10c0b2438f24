/*
   Copyright 2026 The BLKit Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package blerrors

import (
	"fmt"
	"strconv"

	"blkit.dev/blerrors/kind"
)

// Error is the canonical typed error for Broadlink-style device protocols.
//
// It carries:
//   - Kind: the category of the failure (required);
//   - Errno: the raw device/SDK status code (0 means "no errno");
//   - Message: human-oriented description of what went wrong;
//   - Cause: wrapped underlying error for debugging / unwrapping.
//
// The protocol reserves errno 0 for success, so no classified failure ever
// carries 0; a zero Errno therefore means the error has no numeric code.
//
// All mutation helpers (WithX) return a shallow copy, so Error instances
// can be safely shared and modified in a functional style.
type Error struct {
	// Kind is the primary classification of the error, e.g. kind.DeviceOffline
	// or kind.Authentication. Must be a normalized kind from blerrors/kind.
	Kind kind.Kind

	// Errno is the signed status code reported by the device or by local
	// validation. Zero means the error carries no numeric code.
	Errno int

	// Message is a human-readable explanation. This is what should end up
	// in logs or in the "message" field of a transport error response.
	Message string

	// Cause holds the wrapped underlying error (if any). This is used for
	// errors.Is / errors.As and for debugging in lower layers.
	Cause error
}

// E is a convenience constructor for Error.
//
// Usage:
//
//	return blerrors.E(kind.DeviceOffline, "The device is offline",
//	    blerrors.WithErrnoOption(-3),
//	)
//
// It always returns a *new* Error and applies all provided options in order.
func E(k kind.Kind, msg string, opts ...Option) *Error {
	e := &Error{Kind: k, Message: msg}
	for _, opt := range opts {
		e = opt(e)
	}
	return e
}

// Error implements the built-in error interface.
//
// The format is:
//
//	[Errno <code>] <message>
//
// or, when no errno is attached:
//
//	<message>
//
// Including the errno lets users correlate failures with vendor documentation.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Errno != 0 {
		return fmt.Sprintf("[Errno %d] %s", e.Errno, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As chains.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is equivalent to e.
//
// Two Errors are equal iff they have the same Kind and carry the identical
// (Errno, Message) pair. The Cause is deliberately excluded: it is debugging
// context, not identity. This is the contract MultipleErrors relies on when
// counting distinct failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t == nil || e == nil {
		return false
	}
	return e.Kind == t.Kind && e.Errno == t.Errno && e.Message == t.Message
}

// ErrorKind returns the kind as a plain string, satisfying apis.KindedError.
func (e *Error) ErrorKind() string { return string(e.Kind) }

// ErrorErrno returns the numeric status code, satisfying apis.CodedError.
// Zero means the error carries no errno.
func (e *Error) ErrorErrno() int { return e.Errno }

// WithErrno returns a shallow copy of e with the given errno attached.
// The original error is not modified.
func (e *Error) WithErrno(errno int) *Error {
	cp := *e
	cp.Errno = errno
	return &cp
}

// WithMessage returns a shallow copy of e with a replaced human message.
// Useful when you want to keep the Kind/Errno but present the message in a
// different context.
func (e *Error) WithMessage(msg string) *Error {
	cp := *e
	cp.Message = msg
	return &cp
}

// WithCause returns a shallow copy of e with the given underlying cause attached.
// If err is nil, the original error is returned unchanged.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	cp := *e
	cp.Cause = err
	return &cp
}

// key returns the identity string used for deduplication and counting.
// It encodes exactly the fields covered by the equality contract.
func (e *Error) key() string {
	return string(e.Kind) + "|" + strconv.Itoa(e.Errno) + "|" + e.Message
}
