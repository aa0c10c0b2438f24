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

package apis

// KindedError represents an error that is classified into a well-defined,
// machine-readable error *kind*.
//
// A kind denotes a broad category of device failure, such as:
//   - "authentication"   — the auth handshake failed,
//   - "device_offline"   — the device cannot be reached,
//   - "data_validation"  — a received packet failed an integrity check,
//   - "unknown"          — the status code is not in the table.
//
// Kinds are intended to be stable and enumerable. They are the primary value
// that higher-level adapters (HTTP, gRPC) will use to decide which status
// code to return to the client.
//
// Implementations are expected to return a *canonicalized* kind string — i.e.,
// normalized to the format enforced by the blerrors/kind package (lowercase,
// underscores, length limits, etc.). Adapters should treat unknown or empty
// kinds as internal/server errors.
type KindedError interface {
	error

	// ErrorKind returns the machine-readable error kind.
	//
	// The returned value MUST be non-empty and MUST already be normalized
	// according to the rules of the blerrors subsystem. Callers should not
	// try to "fix" or "guess" the value here — if it's invalid, it should be
	// handled as an internal error at the boundary.
	ErrorKind() string
}

// CodedError represents an error that carries the raw numeric status code
// (errno) reported by the device or by local validation.
//
// While the kind answers "what category of error is this?", the errno answers
// "which exact vendor-documented condition happened?". The errno is what
// users correlate with vendor documentation.
//
// Having a separate interface for errnos allows code to gracefully degrade:
// if an error does not provide one, the caller can still act on the kind.
type CodedError interface {
	error

	// ErrorErrno returns the numeric status code attached to the error.
	//
	// A return value of 0 means "no errno": the protocol reserves 0 for
	// success, so no failure legitimately carries it. Callers should be
	// prepared to handle the zero case.
	ErrorErrno() int
}

// CausedError represents an error that exposes its underlying cause.
//
// While Go 1.13 introduced errors.Unwrap, having this interface in apis lets
// us work with wrapped errors even in places where we don't want to depend on
// errors.As / errors.Is directly, or where we want to keep the contract
// explicit.
//
// Implementations SHOULD return the direct, immediate cause of the error. If
// there is no underlying cause, they SHOULD return nil.
type CausedError interface {
	error

	// Cause returns the underlying error that triggered this error, if any.
	// May return nil.
	Cause() error
}
