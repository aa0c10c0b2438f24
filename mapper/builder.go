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
	"net/http"

	"blkit.dev/blerrors/kind"
	"google.golang.org/grpc/codes"
)

type spanRule struct {
	// lo and hi are the inclusive errno bounds of the rule. They are
	// validated when the per-transport index is built in New().
	lo, hi int
	// val is the numeric transport status to apply when this span matches.
	// For HTTP this is the final value; for gRPC we store ints in the builder
	// and convert to codes.Code later.
	val int
}

type builder struct {
	// user-provided adjustments (applied on top of library defaults)

	// httpDefaults holds per-kind HTTP defaults that override library defaults.
	httpDefaults map[kind.Kind]int
	// grpcDefaults holds per-kind gRPC defaults as ints; converted to codes.Code in New().
	grpcDefaults map[kind.Kind]int

	// httpOverride holds exact per-errno HTTP overrides (higher than everything else).
	httpOverride map[int]int
	// grpcOverride holds exact per-errno gRPC overrides as ints; converted in New().
	grpcOverride map[int]int

	// httpSpans holds errno-span rules for HTTP, compiled into a codespan
	// index in New().
	httpSpans []spanRule
	// grpcSpans holds errno-span rules for gRPC.
	grpcSpans []spanRule

	// global fallbacks used when a kind has no default at all.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// newBuilder creates an empty builder with maps pre-sized
// to hold typical numbers of entries.
func newBuilder() *builder {
	return &builder{
		// we size the maps roughly to the number of built-in defaults
		httpDefaults: make(map[kind.Kind]int, len(defaultHTTP)),
		grpcDefaults: make(map[kind.Kind]int, len(defaultGRPC)),

		// overrides and spans are usually few
		httpOverride: make(map[int]int),
		grpcOverride: make(map[int]int),

		// hard fallbacks if the kind was never seen
		fallbackHTTP: http.StatusInternalServerError,
		fallbackGRPC: codes.Internal,
	}
}
