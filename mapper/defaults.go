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

// defaultHTTP defines the library's built-in HTTP mappings for the device
// error kinds. These are only defaults: bridges and gateways are expected to
// override them at the boundary where HTTP is actually produced.
//
// The perspective is that of a bridge surfacing device errors to its own
// clients: the device plays the role of the upstream, so transfer and
// validation failures lean on the 502/504 family.
var defaultHTTP = map[kind.Kind]int{
	// Session / credentials.
	kind.Authentication:   http.StatusUnauthorized, // Handshake failed; client must re-pair or fix key material.
	kind.ConnectionClosed: http.StatusUnauthorized, // Device logged this controller out; re-authentication required.
	kind.Authorization:    http.StatusForbidden,    // Session is live but the control key is expired/invalid.

	// Device / command.
	kind.DeviceOffline:       http.StatusServiceUnavailable, // Target device unreachable; retry later.
	kind.CommandNotSupported: http.StatusNotImplemented,     // Firmware lacks the command; retrying is pointless.
	kind.Storage:             http.StatusInsufficientStorage, // Device-side storage full (e.g. IR learning slots).
	kind.StructureAbnormal:   http.StatusBadGateway,         // Device rejected the payload structure.
	kind.SSIDNotFound:        http.StatusNotFound,           // AP-setup SSID absent from the device's scan.

	// Transfer failures inside the device.
	kind.Send:  http.StatusBadGateway,
	kind.Write: http.StatusBadGateway,
	kind.Read:  http.StatusBadGateway,

	// Local validation.
	kind.NetworkTimeout: http.StatusGatewayTimeout, // Device did not answer in time.
	kind.DataValidation: http.StatusBadGateway,     // Response failed a local integrity check.

	// Fallback classification.
	kind.Unknown: http.StatusInternalServerError, // Untabled errno; do not guess a more specific status.
}

// defaultGRPC defines the library's built-in gRPC mappings for the device
// error kinds. These values are chosen to align with canonical gRPC status
// codes while still preserving the device-level meanings. As with HTTP,
// callers may override these at the transport edge if a different policy is
// required.
var defaultGRPC = map[kind.Kind]codes.Code{
	// Session / credentials.
	kind.Authentication:   codes.Unauthenticated,
	kind.ConnectionClosed: codes.Unauthenticated, // Logged out — caller is no longer authenticated.
	kind.Authorization:    codes.PermissionDenied,

	// Device / command.
	kind.DeviceOffline:       codes.Unavailable,
	kind.CommandNotSupported: codes.Unimplemented,
	kind.Storage:             codes.ResourceExhausted, // Device storage full.
	kind.StructureAbnormal:   codes.Internal,          // Device-side structural failure; nothing the caller can fix.
	kind.SSIDNotFound:        codes.NotFound,

	// Transfer failures inside the device.
	kind.Send:  codes.Unavailable,
	kind.Write: codes.Unavailable,
	kind.Read:  codes.Unavailable,

	// Local validation.
	kind.NetworkTimeout: codes.DeadlineExceeded,
	kind.DataValidation: codes.DataLoss, // Packet arrived but failed length/check/type validation.

	// Fallback classification.
	kind.Unknown: codes.Unknown,
}
