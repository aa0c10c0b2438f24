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
	"encoding/binary"
	"errors"

	"blkit.dev/blerrors/kind"
)

// ErrBadStatusWidth is returned by Check when the status field is not exactly
// 2 bytes. This is a caller contract violation (a framing bug in the layer
// that extracted the field), not a protocol error reported by the device, so
// it is deliberately kept outside the classified taxonomy.
var ErrBadStatusWidth = errors.New("blerrors: status field must be exactly 2 bytes")

// statusWidth is the wire size of the protocol status field: a little-endian
// signed 16-bit integer.
const statusWidth = 2

// entry pairs the kind and the default message for one table code.
type entry struct {
	kind    kind.Kind
	message string
}

// codeTable maps every known status code to its classification.
//
// The table is populated once at package load and never mutated afterwards,
// which is what makes Classify safe for unsynchronized concurrent use.
//
// Codes -1..-11 are firmware errors generated by the device itself;
// -2040 and -4000..-4012 are generated by the vendor SDK / local validation.
var codeTable = map[int]entry{
	// Firmware-related errors reported by the device.
	-1:  {kind.Authentication, "Authentication failed"},
	-2:  {kind.ConnectionClosed, "You have been logged out"},
	-3:  {kind.DeviceOffline, "The device is offline"},
	-4:  {kind.CommandNotSupported, "Command not supported"},
	-5:  {kind.Storage, "The device storage is full"},
	-6:  {kind.StructureAbnormal, "Structure is abnormal"},
	-7:  {kind.Authorization, "Control key is expired"},
	-8:  {kind.Send, "Send error"},
	-9:  {kind.Write, "Write error"},
	-10: {kind.Read, "Read error"},
	-11: {kind.SSIDNotFound, "SSID could not be found in AP configuration"},
	// SDK-related errors generated by local validation.
	-2040: {kind.DataValidation, "Device information is not intact"},
	-4000: {kind.NetworkTimeout, "Network timeout"},
	-4007: {kind.DataValidation, "Received data packet length error"},
	-4008: {kind.DataValidation, "Received data packet check error"},
	-4009: {kind.DataValidation, "Received data packet information type error"},
	-4010: {kind.DataValidation, "Received encrypted data packet length error"},
	-4011: {kind.DataValidation, "Received encrypted data packet check error"},
	-4012: {kind.Authorization, "Device control ID error"},
}

// Classify returns the typed error corresponding to a status code.
//
// Codes present in the table produce an error of the mapped kind carrying the
// code and the table's default message. Any other code produces a
// kind.Unknown error with the literal message "Unknown error". Classify never
// fails and has no side effects.
func Classify(code int) *Error {
	if ent, ok := codeTable[code]; ok {
		return E(ent.kind, ent.message, WithErrnoOption(code))
	}
	return E(kind.Unknown, "Unknown error", WithErrnoOption(code))
}

// Check decodes a raw 2-byte little-endian signed status field and returns
// nil when it encodes zero (success), or the classified error otherwise.
//
// The surrounding device-communication layer is responsible for extracting a
// field of the correct width; any other length returns ErrBadStatusWidth.
func Check(raw []byte) error {
	if len(raw) != statusWidth {
		return ErrBadStatusWidth
	}
	code := int(int16(binary.LittleEndian.Uint16(raw)))
	if code == 0 {
		return nil
	}
	return Classify(code)
}
