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

package mapper

import (
	"blkit.dev/blerrors/kind"
)

// Option configures the Mapper at build time.
// All options are applied to an internal builder and then frozen into
// an immutable Mapper.
type Option func(*builder)

// WithHTTPDefault sets or replaces the library-level default HTTP status
// for the given error kind. This affects the fallback value used when
// no errno-specific rule is found.
func WithHTTPDefault(k kind.Kind, http int) Option {
	return func(b *builder) { b.httpDefaults[k] = http }
}

// WithGRPCDefault sets or replaces the library-level default gRPC status
// for the given error kind. This affects the fallback value used when
// no errno-specific rule is found.
func WithGRPCDefault(k kind.Kind, grpc int) Option {
	return func(b *builder) { b.grpcDefaults[k] = grpc }
}

// WithHTTPOverride registers an exact HTTP override for the given errno.
// Overrides take precedence over span rules and kind defaults.
// Errno 0 is reserved for success and is rejected when the mapper is built.
func WithHTTPOverride(errno int, http int) Option {
	return func(b *builder) { b.httpOverride[errno] = http }
}

// WithGRPCOverride registers an exact gRPC override for the given errno.
// Overrides take precedence over span rules and kind defaults.
// Errno 0 is reserved for success and is rejected when the mapper is built.
func WithGRPCOverride(errno int, grpc int) Option {
	return func(b *builder) { b.grpcOverride[errno] = grpc }
}

// WithHTTPSpan adds an HTTP rule covering the inclusive errno range [lo, hi].
// Spans sit between exact overrides and kind defaults; when several spans
// contain the errno, the narrowest one wins.
func WithHTTPSpan(lo, hi int, http int) Option {
	return func(b *builder) { b.httpSpans = append(b.httpSpans, spanRule{lo, hi, http}) }
}

// WithGRPCSpan adds a gRPC rule covering the inclusive errno range [lo, hi].
// Spans sit between exact overrides and kind defaults; when several spans
// contain the errno, the narrowest one wins.
func WithGRPCSpan(lo, hi int, grpc int) Option {
	return func(b *builder) { b.grpcSpans = append(b.grpcSpans, spanRule{lo, hi, grpc}) }
}
