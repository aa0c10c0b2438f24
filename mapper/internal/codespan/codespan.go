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

package codespan

import (
	"errors"
	"fmt"
)

// Index is a narrowest-match interval index for signed status codes (errnos).
// Each span covers an inclusive [lo, hi] range; when several spans contain
// the queried code, the narrowest one wins, so a more specific rule always
// beats a broader one. Ties on width are broken by insertion order.
type Index[T any] struct {
	spans []span[T]
}

type span[T any] struct {
	lo, hi int
	val    T
	// pattern is the canonical "[lo..hi]" form, built once at insert time so
	// Explain callers don't pay for string formatting on the lookup path.
	pattern string
}

var (
	// ErrInvalidSpan is returned when inserting a span whose bounds are
	// reversed or which covers the success code 0.
	ErrInvalidSpan = errors.New("codespan: invalid span")
)

// New creates an empty index ready for inserts.
func New[T any]() *Index[T] {
	return &Index[T]{}
}

// Insert adds an inclusive [lo, hi] span and associates it with val.
//
// Examples:
//
//	Insert(-11, -1, v)      // firmware-reported errors
//	Insert(-4012, -4000, v) // SDK validation errors
//
// A span with lo > hi is rejected. A span containing 0 is rejected too:
// the protocol reserves 0 for success, so such a rule could never be a
// deliberate errno match. Returns ErrInvalidSpan on malformed input.
func (x *Index[T]) Insert(lo, hi int, val T) error {
	if x == nil {
		return ErrInvalidSpan
	}
	if lo > hi {
		return ErrInvalidSpan
	}
	if lo <= 0 && hi >= 0 {
		return ErrInvalidSpan
	}
	s := span[T]{lo: lo, hi: hi, val: val, pattern: fmt.Sprintf("[%d..%d]", lo, hi)}

	// Keep spans ordered by width, narrowest first. Insertion order is
	// preserved among equal widths, which makes lookups deterministic.
	w := width(lo, hi)
	pos := len(x.spans)
	for i, have := range x.spans {
		if width(have.lo, have.hi) > w {
			pos = i
			break
		}
	}
	x.spans = append(x.spans, span[T]{})
	copy(x.spans[pos+1:], x.spans[pos:])
	x.spans[pos] = s
	return nil
}

// Match finds the narrowest span containing code.
// It returns (value, true) on success, or the zero value and false when no
// span contains the code.
func (x *Index[T]) Match(code int) (T, bool) {
	var zero T
	if x == nil {
		return zero, false
	}
	for _, s := range x.spans {
		if s.lo <= code && code <= s.hi {
			return s.val, true
		}
	}
	return zero, false
}

// MatchWithPattern returns value + the stored span pattern (if any) for
// Explain(). The pattern string is taken from the span as stored at insert
// time, so no formatting happens during lookup.
func (x *Index[T]) MatchWithPattern(code int) (T, bool, string) {
	var zero T
	if x == nil {
		return zero, false, ""
	}
	for _, s := range x.spans {
		if s.lo <= code && code <= s.hi {
			return s.val, true, s.pattern
		}
	}
	return zero, false, ""
}

// Len returns the number of stored spans.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.spans)
}

// width computes the inclusive size of a span.
func width(lo, hi int) int { return hi - lo + 1 }
