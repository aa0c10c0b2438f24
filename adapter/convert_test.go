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

package adapter

import (
	"testing"

	"blkit.dev/blerrors"
	"blkit.dev/blerrors/apis"
	"google.golang.org/grpc/codes"
)

func TestToDescriptor(t *testing.T) {
	e := blerrors.Classify(-3)
	st := apis.Status{HTTP: 503, GRPC: codes.Unavailable}

	d := ToDescriptor(e, st)
	if d.Kind != "device_offline" || d.Errno != -3 {
		t.Fatalf("descriptor identity = %q/%d", d.Kind, d.Errno)
	}
	if d.HTTPStatus != 503 || d.GRPCCode != int(codes.Unavailable) {
		t.Fatalf("descriptor statuses = %d/%d", d.HTTPStatus, d.GRPCCode)
	}
	if d.Message != "The device is offline" {
		t.Fatalf("descriptor message = %q", d.Message)
	}

	if d := ToDescriptor(nil, st); d != (apis.ErrorDescriptor{}) {
		t.Fatal("nil error must produce a zero descriptor")
	}
}

func TestToView(t *testing.T) {
	e := blerrors.Classify(-1)

	v := ToView(e)
	if v.Kind != "authentication" || v.Errno != -1 {
		t.Fatalf("view identity = %q/%d", v.Kind, v.Errno)
	}
	if v.Message != "Authentication failed" {
		t.Fatalf("view message = %q", v.Message)
	}
	if v.Display != "[Errno -1] Authentication failed" {
		t.Fatalf("view display = %q", v.Display)
	}

	if v := ToView(nil); v != (apis.ErrorView{}) {
		t.Fatal("nil error must produce a zero view")
	}
}
