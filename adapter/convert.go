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
	"blkit.dev/blerrors"
	"blkit.dev/blerrors/apis"
)

// ToDescriptor converts a classified device error together with its resolved
// transport status into a portable ErrorDescriptor.
//
// The descriptor is intended for structured logging, tracing, or message bus
// propagation. It carries both the logical kind/errno and the concrete
// transport statuses (HTTP and gRPC).
func ToDescriptor(e *blerrors.Error, st apis.Status) apis.ErrorDescriptor {
	if e == nil {
		return apis.ErrorDescriptor{}
	}
	return apis.ErrorDescriptor{
		Kind:       string(e.Kind),
		Errno:      e.Errno,
		HTTPStatus: st.HTTP,
		GRPCCode:   int(st.GRPC),
		Message:    e.Message,
	}
}

// ToView converts a classified device error into a public ErrorView. This
// function performs no automatic redaction or filtering; it exposes exactly
// what the error instance contains.
//
// The Display field carries the combined user-facing form produced by
// Error(), i.e. "[Errno <code>] <message>" when an errno is present.
func ToView(e *blerrors.Error) apis.ErrorView {
	if e == nil {
		return apis.ErrorView{}
	}
	return apis.ErrorView{
		Kind:    string(e.Kind),
		Errno:   e.Errno,
		Message: e.Message,
		Display: e.Error(),
	}
}
