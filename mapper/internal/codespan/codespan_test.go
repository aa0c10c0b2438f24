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
	"testing"
)

func TestInsert_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int
	}{
		{"reversed bounds", -1, -11},
		{"covers zero", -5, 5},
		{"exactly zero", 0, 0},
		{"touches zero from below", -3, 0},
		{"touches zero from above", 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := New[int]()
			if err := x.Insert(tt.lo, tt.hi, 1); !errors.Is(err, ErrInvalidSpan) {
				t.Fatalf("Insert(%d, %d) = %v, want ErrInvalidSpan", tt.lo, tt.hi, err)
			}
		})
	}
}

func TestMatch_Basic(t *testing.T) {
	x := New[string]()
	if err := x.Insert(-11, -1, "firmware"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := x.Insert(-4012, -4000, "sdk"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if v, ok := x.Match(-3); !ok || v != "firmware" {
		t.Fatalf("Match(-3) = %q, %v; want firmware", v, ok)
	}
	if v, ok := x.Match(-4007); !ok || v != "sdk" {
		t.Fatalf("Match(-4007) = %q, %v; want sdk", v, ok)
	}
	if _, ok := x.Match(-2040); ok {
		t.Fatal("Match(-2040) must not hit any span")
	}
	if _, ok := x.Match(7); ok {
		t.Fatal("positive codes must not match")
	}
}

func TestMatch_NarrowestWins(t *testing.T) {
	x := New[int]()
	if err := x.Insert(-4012, -4000, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := x.Insert(-4011, -4007, 2); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// inner span is narrower and must win for codes it contains
	if v, ok := x.Match(-4009); !ok || v != 2 {
		t.Fatalf("Match(-4009) = %d, %v; want 2", v, ok)
	}
	// codes outside the inner span still hit the outer one
	if v, ok := x.Match(-4000); !ok || v != 1 {
		t.Fatalf("Match(-4000) = %d, %v; want 1", v, ok)
	}
}

func TestMatch_TieBreaksByInsertionOrder(t *testing.T) {
	x := New[int]()
	if err := x.Insert(-10, -6, 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := x.Insert(-8, -4, 2); err != nil {
		t.Fatalf("insert: %v", err)
	}
	// Both spans have width 5 and contain -7; the earlier insert wins.
	if v, ok := x.Match(-7); !ok || v != 1 {
		t.Fatalf("Match(-7) = %d, %v; want 1 (first inserted)", v, ok)
	}
}

func TestMatchWithPattern(t *testing.T) {
	x := New[string]()
	if err := x.Insert(-11, -1, "firmware"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	v, ok, pat := x.MatchWithPattern(-5)
	if !ok || v != "firmware" {
		t.Fatalf("MatchWithPattern(-5) = %q, %v", v, ok)
	}
	if pat != "[-11..-1]" {
		t.Fatalf("pattern = %q, want [-11..-1]", pat)
	}
	if _, ok, pat := x.MatchWithPattern(-99); ok || pat != "" {
		t.Fatal("miss must return empty pattern")
	}
}

func TestNilIndex(t *testing.T) {
	var x *Index[int]
	if _, ok := x.Match(-1); ok {
		t.Fatal("nil index must not match")
	}
	if err := x.Insert(-2, -1, 1); !errors.Is(err, ErrInvalidSpan) {
		t.Fatal("nil index Insert must fail")
	}
	if x.Len() != 0 {
		t.Fatal("nil index Len must be 0")
	}
}
