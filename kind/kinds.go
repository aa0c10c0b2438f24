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

// Session / credential error kinds
//
// These kinds cover failures of the authentication handshake and of the
// control-key authorization that gates every subsequent command.
const (
	// Authentication indicates that the encrypted authentication handshake
	// with the device failed. The device rejects the provided key material,
	// so no session could be established.
	// Reported by firmware as errno -1.
	Authentication Kind = "authentication"

	// Authorization indicates that the session was established but the
	// control key is no longer accepted (expired key, wrong control ID).
	// Reported by firmware as errno -7 and by the SDK as errno -4012.
	Authorization Kind = "authorization"

	// ConnectionClosed indicates that the device terminated the session,
	// typically because another controller logged in. The client must
	// re-authenticate before issuing further commands.
	// Reported by firmware as errno -2.
	ConnectionClosed Kind = "connection_closed"
)

// Device / command error kinds
//
// These kinds describe conditions reported by the device firmware about
// the command itself or about the device's own state.
const (
	// DeviceOffline indicates that the cloud or hub cannot reach the target
	// device. The device may be powered off or disconnected from the network.
	// Reported by firmware as errno -3.
	DeviceOffline Kind = "device_offline"

	// CommandNotSupported indicates that the device firmware does not
	// implement the requested command. Retrying is pointless; the caller
	// should check the device model and firmware capabilities.
	// Reported by firmware as errno -4.
	CommandNotSupported Kind = "command_not_supported"

	// Storage indicates that the device's internal storage is full, e.g.
	// when learning IR/RF codes on a remote with no free slots.
	// Reported by firmware as errno -5.
	Storage Kind = "storage"

	// StructureAbnormal indicates that the device considers the payload
	// structure malformed.
	// Reported by firmware as errno -6.
	StructureAbnormal Kind = "structure_abnormal"

	// SSIDNotFound indicates that the SSID given during AP-mode setup could
	// not be found in the device's access point scan.
	// Reported by firmware as errno -11.
	SSIDNotFound Kind = "ssid_not_found"
)

// Transfer error kinds
//
// These kinds describe low-level data transfer failures inside the device.
const (
	// Send indicates a send failure inside the device.
	// Reported by firmware as errno -8.
	Send Kind = "send"

	// Write indicates a write failure inside the device.
	// Reported by firmware as errno -9.
	Write Kind = "write"

	// Read indicates a read failure inside the device.
	// Reported by firmware as errno -10.
	Read Kind = "read"
)

// Local validation error kinds
//
// These kinds are generated by the client/SDK side while validating
// responses, not by the device firmware.
const (
	// NetworkTimeout indicates that the device did not answer within the
	// network time budget.
	// Generated locally as errno -4000.
	NetworkTimeout Kind = "network_timeout"

	// DataValidation indicates that a received packet failed a local
	// integrity check: wrong length, bad checksum, unexpected information
	// type, or a truncated device descriptor.
	// Generated locally as errnos -2040 and -4007..-4011.
	DataValidation Kind = "data_validation"

	// Unknown is the fallback for status codes that are not present in the
	// classification table. The original errno is preserved on the error so
	// it can still be correlated with vendor documentation.
	Unknown Kind = "unknown"
)

// known is the closed set of kinds produced by the classifier. It is
// populated once at package load and never mutated afterwards.
var known = map[Kind]struct{}{
	Authentication:      {},
	Authorization:       {},
	ConnectionClosed:    {},
	DeviceOffline:       {},
	CommandNotSupported: {},
	Storage:             {},
	StructureAbnormal:   {},
	SSIDNotFound:        {},
	Send:                {},
	Write:               {},
	Read:                {},
	NetworkTimeout:      {},
	DataValidation:      {},
	Unknown:             {},
}

// Known reports whether k is one of the kinds this package declares.
// Parse accepts any canonical identifier; Known distinguishes the closed
// taxonomy from caller-invented values.
func Known(k Kind) bool {
	_, ok := known[k]
	return ok
}

// All returns the closed set of declared kinds in a deterministic order.
// The returned slice is freshly allocated on every call.
func All() []Kind {
	return []Kind{
		Authentication,
		Authorization,
		ConnectionClosed,
		DeviceOffline,
		CommandNotSupported,
		Storage,
		StructureAbnormal,
		SSIDNotFound,
		Send,
		Write,
		Read,
		NetworkTimeout,
		DataValidation,
		Unknown,
	}
}
