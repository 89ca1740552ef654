// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import "fmt"

// StatusOK is the response status byte for success. Any other value
// is a service-side rejection.
const StatusOK byte = 0x00

// Error reports a malformed, truncated, or rejected response. The
// codec never trusts length information from the peer beyond the
// bound the transport's receive already enforced, so every shape
// violation surfaces here rather than as garbage data.
type Error struct {
	// Reason describes what was wrong with the response.
	Reason string

	// Status is the response status byte when the failure is a
	// service-side rejection, zero otherwise.
	Status byte
}

func (e *Error) Error() string {
	return "protocol: " + e.Reason
}

// EncodeRequest frames a request as [opcode][payload]. The payload is
// opaque at this layer: framing an opcode this build has no name for
// is fine, the service's table is authoritative.
func EncodeRequest(op Opcode, payload []byte) []byte {
	frame := make([]byte, 1+len(payload))
	frame[0] = byte(op)
	copy(frame[1:], payload)
	return frame
}

// DecodeResponse splits a response into its status byte and opaque
// payload. A nonzero status is a rejection and returns *Error with
// the status attached; the payload is still returned so diagnostics
// can include whatever the service sent with the rejection.
func DecodeResponse(buffer []byte) (status byte, payload []byte, err error) {
	if len(buffer) == 0 {
		return 0, nil, &Error{Reason: "empty response"}
	}
	status = buffer[0]
	payload = buffer[1:]
	if status != StatusOK {
		return status, payload, &Error{
			Reason: fmt.Sprintf("service rejected request (status 0x%02X)", status),
			Status: status,
		}
	}
	return status, payload, nil
}
