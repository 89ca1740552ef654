// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/skylift-dev/skylift/lib/capability"
)

const (
	// ClientProtocolVersion is the protocol version this client
	// speaks, sent in the handshake request.
	ClientProtocolVersion uint32 = 1

	// MaxVersionLength bounds the service version string, excluding
	// its NUL terminator.
	MaxVersionLength = 31

	// MaxHandshakeResponse is the receive bound for a handshake
	// response: status byte, version string with terminator, 4-byte
	// capability mask, with slack for future trailing fields.
	MaxHandshakeResponse = 64

	// minHandshakeResponse is the shortest well-formed success
	// response: status, one-byte version, NUL, 4-byte mask. Shorter
	// buffers are truncation, never a degenerate success.
	minHandshakeResponse = 1 + 1 + 1 + 4
)

// EncodeHandshakeRequest builds the handshake request frame: the
// handshake opcode followed by the client's protocol version as a
// 4-byte little-endian integer.
func EncodeHandshakeRequest(clientVersion uint32) []byte {
	payload := make([]byte, 4)
	binary.LittleEndian.PutUint32(payload, clientVersion)
	return EncodeRequest(OpHandshake, payload)
}

// DecodeHandshakeResponse parses a handshake response: status byte,
// NUL-terminated service version string, 4-byte little-endian
// capability bitmask. Returns *Error when the buffer is shorter than
// the minimum success shape, the status signals rejection, or the
// version string is empty or not terminated within its bound.
func DecodeHandshakeResponse(buffer []byte) (string, capability.Set, error) {
	if len(buffer) < minHandshakeResponse {
		return "", capability.Set{}, &Error{
			Reason: fmt.Sprintf("handshake response truncated: %d bytes, need at least %d",
				len(buffer), minHandshakeResponse),
		}
	}

	if _, _, err := DecodeResponse(buffer); err != nil {
		return "", capability.Set{}, err
	}
	rest := buffer[1:]

	bound := MaxVersionLength + 1
	if len(rest) < bound {
		bound = len(rest)
	}
	terminator := bytes.IndexByte(rest[:bound], 0)
	if terminator < 0 {
		return "", capability.Set{}, &Error{
			Reason: fmt.Sprintf("service version not NUL-terminated within %d bytes", bound),
		}
	}
	if terminator == 0 {
		return "", capability.Set{}, &Error{Reason: "service version is empty"}
	}
	version := string(rest[:terminator])

	maskStart := terminator + 1
	if len(rest) < maskStart+4 {
		return "", capability.Set{}, &Error{
			Reason: "handshake response truncated before capability bitmask",
		}
	}
	mask := binary.LittleEndian.Uint32(rest[maskStart : maskStart+4])

	return version, capability.Decode(mask), nil
}

// EncodeHandshakeResponse builds a success response frame for the
// given service version and capability set. The inverse of
// DecodeHandshakeResponse; used by the mock service and by tests.
func EncodeHandshakeResponse(version string, capabilities capability.Set) []byte {
	frame := make([]byte, 0, 1+len(version)+1+4)
	frame = append(frame, StatusOK)
	frame = append(frame, version...)
	frame = append(frame, 0)
	frame = binary.LittleEndian.AppendUint32(frame, capabilities.Encode())
	return frame
}
