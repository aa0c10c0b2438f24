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

// Package mapper provides deterministic, immutable mappings from classified
// device errors (blkit.dev/blerrors/kind plus the raw errno) to
// transport-level statuses for HTTP and gRPC.
//
// # Overview
//
// In blerrors a failure is expressed in two parts:
//
//  1. a Kind (e.g. kind.DeviceOffline, kind.DataValidation),
//  2. the raw errno reported by the device or the SDK (e.g. -3, -4008).
//
// Bridges and gateways that surface device errors over a network API need to
// turn this pair into concrete status codes. Package mapper does that in a
// way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per Kind;
//   - errno-aware — callers can add fine-grained rules for specific errnos
//     or whole errno ranges;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the errno;
//  2. narrowest errno-span rule containing the errno;
//  3. per-Kind default (library or user-adjusted);
//  4. global fallback (500 / codes.Internal).
//
// Span rules cover inclusive errno ranges, which fit the vendor's code
// layout: firmware errors live in -11..-1 and SDK validation errors in
// -4012..-4000. For example:
//
//	WithHTTPSpan(-4012, -4000, http.StatusBadGateway)
//	WithHTTPOverride(-4000, http.StatusGatewayTimeout)
//
// The narrower rule wins; exact overrides beat spans.
//
// # Library defaults
//
// The package ships with sensible defaults for every kind, mapping them to
// standard net/http constants and grpc/codes values (e.g. kind.DeviceOffline
// -> 503 / Unavailable, kind.Authentication -> 401 / Unauthenticated,
// kind.CommandNotSupported -> 501 / Unimplemented). These can be adjusted at
// build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride(-3, http.StatusServiceUnavailable),
//	    mapper.WithGRPCSpan(-4011, -4007, int(codes.DataLoss)),
//	)
//	if err != nil {
//	    // invalid span, etc.
//	}
//
//	st := m.Status(kind.DataValidation, -4008)
//	// st.HTTP == 502, st.GRPC == codes.DataLoss
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular (kind, errno) was resolved, including which tier matched
// and, for spans, which range was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper
