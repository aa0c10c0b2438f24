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
	"strconv"
	"strings"
)

// MultipleErrors aggregates several failures from a batched or multi-step
// operation into a single error value.
//
// It keeps the original ordered sequence for programmatic inspection and
// renders a summary that counts occurrences per distinct error. Distinctness
// for *Error values follows the (Kind, Errno, Message) equality contract;
// any other error is keyed by its Error() string.
//
// MultipleErrors is never produced by Classify or Check — callers construct
// it explicitly when they collect more than one failure.
type MultipleErrors struct {
	errs []error
}

// Aggregate constructs a MultipleErrors from an ordered sequence of errors.
// The sequence may be empty. The slice is copied, so later mutations of the
// caller's slice do not affect the aggregate.
func Aggregate(errs []error) *MultipleErrors {
	cp := make([]error, len(errs))
	copy(cp, errs)
	return &MultipleErrors{errs: cp}
}

// Error implements the built-in error interface.
//
// The format is:
//
//	Multiple errors occurred: {<error>: <count>, ...}
//
// Distinct errors appear in first-occurrence order of the aggregated
// sequence, which keeps the summary deterministic for a given input.
func (m *MultipleErrors) Error() string {
	if m == nil {
		return "<nil>"
	}

	type bucket struct {
		display string
		count   int
	}
	var order []string
	counts := make(map[string]*bucket, len(m.errs))
	for _, err := range m.errs {
		k := aggregateKey(err)
		if b, ok := counts[k]; ok {
			b.count++
			continue
		}
		counts[k] = &bucket{display: err.Error(), count: 1}
		order = append(order, k)
	}

	var b strings.Builder
	b.WriteString("Multiple errors occurred: {")
	for i, k := range order {
		if i > 0 {
			b.WriteString(", ")
		}
		bk := counts[k]
		b.WriteString(bk.display)
		b.WriteString(": ")
		b.WriteString(strconv.Itoa(bk.count))
	}
	b.WriteString("}")
	return b.String()
}

// Errors returns a copy of the original ordered sequence. The copy keeps the
// aggregate immutable after construction.
func (m *MultipleErrors) Errors() []error {
	if m == nil || len(m.errs) == 0 {
		return nil
	}
	cp := make([]error, len(m.errs))
	copy(cp, m.errs)
	return cp
}

// Len returns the number of aggregated errors, including duplicates.
func (m *MultipleErrors) Len() int {
	if m == nil {
		return 0
	}
	return len(m.errs)
}

// Unwrap exposes the aggregated errors to errors.Is / errors.As (Go 1.20
// multi-error unwrapping).
func (m *MultipleErrors) Unwrap() []error {
	if m == nil {
		return nil
	}
	return m.errs
}

// aggregateKey derives the identity used for counting. Typed errors use the
// equality contract; foreign errors fall back to their rendered message. The
// "!" prefix keeps the two key spaces from colliding.
func aggregateKey(err error) string {
	if e, ok := err.(*Error); ok && e != nil {
		return e.key()
	}
	return "!" + err.Error()
}
