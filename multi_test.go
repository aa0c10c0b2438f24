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
	"errors"
	"testing"

	"blkit.dev/blerrors/kind"
)

func TestAggregate_CountsAndOrder(t *testing.T) {
	errA := Classify(-1)
	errB := Classify(-8)

	m := Aggregate([]error{errA, Classify(-1), errB})

	want := "Multiple errors occurred: {[Errno -1] Authentication failed: 2, [Errno -8] Send error: 1}"
	if got := m.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	seq := m.Errors()
	if len(seq) != 3 {
		t.Fatalf("Errors() len = %d, want 3", len(seq))
	}
	if !errors.Is(seq[0].(*Error), errA) || !errors.Is(seq[1].(*Error), errA) || !errors.Is(seq[2].(*Error), errB) {
		t.Fatal("Errors() must preserve the original order")
	}
}

func TestAggregate_Empty(t *testing.T) {
	m := Aggregate(nil)
	if got := m.Error(); got != "Multiple errors occurred: {}" {
		t.Fatalf("Error() = %q", got)
	}
	if m.Len() != 0 {
		t.Fatalf("Len() = %d", m.Len())
	}
	if m.Errors() != nil {
		t.Fatal("Errors() of an empty aggregate must be nil")
	}
}

func TestAggregate_ForeignErrors(t *testing.T) {
	plain := errors.New("socket closed")
	m := Aggregate([]error{plain, plain, Classify(-3)})

	want := "Multiple errors occurred: {socket closed: 2, [Errno -3] The device is offline: 1}"
	if got := m.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestAggregate_EqualityContractDedup(t *testing.T) {
	// Distinct instances with identical (kind, errno, message) count as one.
	m := Aggregate([]error{
		E(kind.Write, "Write error", WithErrnoOption(-9)),
		E(kind.Write, "Write error", WithErrnoOption(-9)),
	})
	want := "Multiple errors occurred: {[Errno -9] Write error: 2}"
	if got := m.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}

	// Same display but different kinds must stay distinct. The rendered
	// summary carries both entries even though their text is identical.
	m2 := Aggregate([]error{
		E(kind.Send, "transfer failed"),
		E(kind.Read, "transfer failed"),
	})
	want2 := "Multiple errors occurred: {transfer failed: 1, transfer failed: 1}"
	if got := m2.Error(); got != want2 {
		t.Fatalf("Error() = %q, want %q", got, want2)
	}
}

func TestAggregate_Unwrap(t *testing.T) {
	offline := Classify(-3)
	m := Aggregate([]error{Classify(-1), offline})

	if !errors.Is(m, offline) {
		t.Fatal("errors.Is must see aggregated members")
	}
	var e *Error
	if !errors.As(m, &e) {
		t.Fatal("errors.As must reach aggregated members")
	}
}

func TestAggregate_CopiesInput(t *testing.T) {
	in := []error{Classify(-1), Classify(-2)}
	m := Aggregate(in)
	in[0] = Classify(-3)

	if seq := m.Errors(); !errors.Is(seq[0].(*Error), Classify(-1)) {
		t.Fatal("aggregate must not observe caller mutations")
	}
}
