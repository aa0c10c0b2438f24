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

package kind

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim spaces", "  device_offline  ", "device_offline"},
		{"to lower", "DeViCe_OfFlInE", "device_offline"},
		{"dash to underscore", "device-offline", "device_offline"},
		{"mixed", "  SSID-NOT-FOUND  ", "ssid_not_found"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Kind
	}{
		{"simple", "storage", Kind("storage")},
		{"with spaces", "  network_timeout  ", Kind("network_timeout")},
		{"upper", "UNKNOWN", Kind("unknown")},
		{"dash", "data-validation", Kind("data_validation")},
		{"min length", "abc", Kind("abc")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"too short", "a"},
		{"starts with digit", "1offline"},
		{"contains dash after normalize", "x-"},
		{"dot separated", "device.offline"},
		{"too long", "a_very_long_kind_that_is_definitely_more_than_sixty_four_characters_long"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err == nil {
				t.Fatalf("Parse(%q) = %q, want error", tt.in, got)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Kind{
		"authentication",
		"device_offline",
		"ssid_not_found",
		"abc",
	}
	for _, k := range valid {
		if err := Validate(k); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", k, err)
		}
	}

	invalid := []Kind{
		"",
		"X",
		"Device_Offline",
		"device-offline",
	}
	for _, k := range invalid {
		if err := Validate(k); err == nil {
			t.Fatalf("Validate(%q) must fail", k)
		}
	}
}

func TestDeclaredKinds_AreCanonical(t *testing.T) {
	for _, k := range All() {
		if err := Validate(k); err != nil {
			t.Fatalf("declared kind %q is not canonical: %v", k, err)
		}
		if !Known(k) {
			t.Fatalf("declared kind %q is not in the closed set", k)
		}
	}
	if len(All()) != 14 {
		t.Fatalf("closed set has %d kinds, want 14", len(All()))
	}
	if Known(Kind("made_up")) {
		t.Fatal("Known must reject undeclared kinds")
	}
}

func TestTextMarshaling(t *testing.T) {
	b, err := DeviceOffline.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText: %v", err)
	}
	if string(b) != "device_offline" {
		t.Fatalf("MarshalText = %q", b)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("  DEVICE-OFFLINE ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if k != DeviceOffline {
		t.Fatalf("UnmarshalText result = %q", k)
	}

	if _, err := Empty.MarshalText(); err == nil {
		t.Fatal("marshaling the empty kind must fail")
	}
	if err := k.UnmarshalText([]byte("!!")); err == nil {
		t.Fatal("unmarshaling garbage must fail")
	}
}
