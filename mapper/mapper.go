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
	"fmt"
	"strings"

	"blkit.dev/blerrors/apis"
	"blkit.dev/blerrors/kind"
	"blkit.dev/blerrors/mapper/internal/codespan"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting apis.Mapper is fully thread-safe and designed for long-lived reuse.
// Each build creates a self-contained mapper instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC).
//  2. Apply user-provided options (defaults, overrides, span rules).
//  3. Validate overrides (errno 0 is reserved for success).
//  4. Build errno-span indexes (HTTP & gRPC) supporting narrowest-span-wins
//     matching.
//  5. Freeze all maps and indexes into immutable copies (fresh allocations).
//
// Errors returned from this function indicate invalid spans or configuration
// issues during validation or index construction.
func New(opts ...Option) (apis.Mapper, error) {
	// (0) Start with an empty builder.
	// We do not assume any pre-seeded state.
	b := newBuilder()

	// (1) Seed the builder with package-level defaults.
	// Copy into builder-owned maps to prevent external mutation.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for internal uniformity;
		// convert to codes.Code when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options (defaults, overrides, spans, etc.).
	for _, opt := range opts {
		opt(b)
	}

	// (3) Reject overrides for the success code.
	if _, ok := b.httpOverride[0]; ok {
		return nil, fmt.Errorf("mapper: HTTP override for errno 0: reserved for success")
	}
	if _, ok := b.grpcOverride[0]; ok {
		return nil, fmt.Errorf("mapper: gRPC override for errno 0: reserved for success")
	}

	// (4a) Build the HTTP span index.
	var httpSpans *codespan.Index[int]
	if len(b.httpSpans) > 0 {
		httpSpans = codespan.New[int]()
		for _, r := range b.httpSpans {
			if err := httpSpans.Insert(r.lo, r.hi, r.val); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert HTTP span [%d..%d]: %w", r.lo, r.hi, err)
			}
		}
	}

	// (4b) Build the gRPC span index.
	// Values are stored as int in the builder and converted to codes.Code here.
	var grpcSpans *codespan.Index[codes.Code]
	if len(b.grpcSpans) > 0 {
		grpcSpans = codespan.New[codes.Code]()
		for _, r := range b.grpcSpans {
			if err := grpcSpans.Insert(r.lo, r.hi, codes.Code(r.val)); err != nil {
				return nil, fmt.Errorf("mapper: cannot insert gRPC span [%d..%d]: %w", r.lo, r.hi, err)
			}
		}
	}

	// (5) Freeze everything into a read-only snapshot.
	// Each map is freshly allocated; indexes are immutable after build.
	m := &mapper{
		httpDefault:  freezeHTTPDefaults(b.httpDefaults),
		grpcDefault:  freezeGRPCDefaults(b.grpcDefaults),
		httpOverride: freezeHTTPOverrides(b.httpOverride),
		grpcOverride: freezeGRPCOverrides(b.grpcOverride),
		httpSpans:    httpSpans,
		grpcSpans:    grpcSpans,

		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}

	return m, nil
}

// mapper is an immutable mapper implementation that combines per-kind
// defaults, per-errno exact overrides, and errno-span indexes. Lookups are
// O(rules) over a handful of rules and safe for concurrent use once
// constructed.
type mapper struct {
	// httpDefault holds the base HTTP status for a given error kind.
	// Used when no errno-specific rule is present.
	httpDefault map[kind.Kind]int

	// grpcDefault holds the base gRPC status for a given error kind.
	grpcDefault map[kind.Kind]codes.Code

	// httpOverride holds explicit HTTP statuses for specific errnos.
	// These take precedence over spans and defaults.
	httpOverride map[int]int

	// grpcOverride holds explicit gRPC statuses for specific errnos.
	grpcOverride map[int]codes.Code

	// httpSpans resolves HTTP statuses for errno ranges (narrowest wins).
	httpSpans *codespan.Index[int]

	// grpcSpans resolves gRPC statuses for errno ranges.
	grpcSpans *codespan.Index[codes.Code]

	// fallbackHTTP is used when there is no mapping at all for a kind.
	// Typically http.StatusInternalServerError.
	fallbackHTTP int

	// fallbackGRPC is used when there is no mapping at all for a kind.
	// Typically codes.Internal.
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given kind and errno.
//
// Resolution order (highest to lowest):
//  1. exact per-errno override (explicitly registered);
//  2. narrowest errno-span rule containing the errno;
//  3. per-kind default (library or user overridden);
//  4. hardcoded ultimate fallback (500).
//
// An errno of 0 means "no errno" and skips the errno-based tiers.
func (m *mapper) HTTPStatus(k kind.Kind, errno int) int {
	// 1. Fast path: exact override for this errno.
	if errno != 0 {
		if v, ok := m.httpOverride[errno]; ok {
			return v
		}

		// 2. Errno-span rules, narrowest wins.
		if v, ok := m.httpSpans.Match(errno); ok {
			return v
		}
	}

	// 3. Per-kind default.
	if v, ok := m.httpDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback: HTTP must never be zero.
	return 500
}

// GRPCStatus resolves a gRPC status for the given kind and errno.
// Uses the same precedence as HTTPStatus, but returns gRPC codes.
//
// Resolution order:
//  1. exact per-errno override;
//  2. narrowest errno-span rule;
//  3. per-kind default;
//  4. hardcoded fallback (codes.Internal).
func (m *mapper) GRPCStatus(k kind.Kind, errno int) codes.Code {
	// 1. Exact override.
	if errno != 0 {
		if v, ok := m.grpcOverride[errno]; ok {
			return v
		}

		// 2. Span index for this errno.
		if v, ok := m.grpcSpans.Match(errno); ok {
			return v
		}
	}

	// 3. Default for this kind.
	if v, ok := m.grpcDefault[k]; ok {
		return v
	}

	// 4. Ultimate fallback.
	return codes.Internal
}

// Status resolves both HTTP and gRPC using the same inputs.
// This keeps HTTP/GRPC decisions consistent for a single logical error.
func (m *mapper) Status(k kind.Kind, errno int) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(k, errno),
		GRPC: m.GRPCStatus(k, errno),
	}
}

// Explain produces a textual trace of how the mapper resolved HTTP and gRPC
// statuses for a particular (kind, errno) pair.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, span, default, or fallback) and, for span matches,
// which range was used.
//
// Example output:
//
//	kind="data_validation" errno=-4008
//	http: source=span pattern="[-4011..-4007]" -> 422
//	grpc: source=default -> DATALOSS(15)
//
// Notes:
//   - source ∈ {override | span | default | fallback}
//   - pattern is the rule range as it was stored in the index
func (m *mapper) Explain(k kind.Kind, errno int) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "kind=%q errno=%d\n", k, errno)

	// ---- HTTP ----
	switch src, httpLine := m.explainHTTP(k, errno); src {
	case "override", "span", "default", "fallback":
		_, _ = fmt.Fprintln(&b, httpLine)
	default:
		_, _ = fmt.Fprintln(&b, "http: source=unknown")
	}

	// ---- gRPC ----
	switch src, grpcLine := m.explainGRPC(k, errno); src {
	case "override", "span", "default", "fallback":
		_, _ = fmt.Fprintln(&b, grpcLine)
	default:
		_, _ = fmt.Fprintln(&b, "grpc: source=unknown")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP returns the origin ("override", "span", "default", "fallback")
// and a formatted line describing how the HTTP status was chosen.
func (m *mapper) explainHTTP(k kind.Kind, errno int) (source, line string) {
	if errno != 0 {
		// 1) exact per-errno override
		if v, ok := m.httpOverride[errno]; ok {
			return "override", fmt.Sprintf("http: source=override -> %d", v)
		}

		// 2) span rules against the errno
		if v, ok, pat := m.httpSpans.MatchWithPattern(errno); ok {
			return "span", fmt.Sprintf("http: source=span pattern=%q -> %d", pat, v)
		}
	}

	// 3) per-kind default
	if v, ok := m.httpDefault[k]; ok {
		return "default", fmt.Sprintf("http: source=default -> %d", v)
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC returns the origin ("override", "span", "default", "fallback")
// and a formatted line describing how the gRPC status was chosen.
func (m *mapper) explainGRPC(k kind.Kind, errno int) (source, line string) {
	if errno != 0 {
		// 1) exact per-errno override
		if v, ok := m.grpcOverride[errno]; ok {
			return "override", fmt.Sprintf("grpc: source=override -> %s(%d)", strings.ToUpper(v.String()), int(v))
		}

		// 2) span rules against the errno
		if v, ok, pat := m.grpcSpans.MatchWithPattern(errno); ok {
			return "span", fmt.Sprintf("grpc: source=span pattern=%q -> %s(%d)", pat, strings.ToUpper(v.String()), int(v))
		}
	}

	// 3) per-kind default
	if v, ok := m.grpcDefault[k]; ok {
		return "default", fmt.Sprintf("grpc: source=default -> %s(%d)", strings.ToUpper(v.String()), int(v))
	}

	// 4) global fallback
	return "fallback", fmt.Sprintf("grpc: source=fallback -> %s(%d)", strings.ToUpper(m.fallbackGRPC.String()), int(m.fallbackGRPC))
}
