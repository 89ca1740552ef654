// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/skylift-dev/skylift/lib/capability"
)

func TestEncodeHandshakeRequest(t *testing.T) {
	frame := EncodeHandshakeRequest(ClientProtocolVersion)

	if len(frame) != 5 {
		t.Fatalf("request frame is %d bytes, want 5", len(frame))
	}
	if Opcode(frame[0]) != OpHandshake {
		t.Errorf("opcode = 0x%02X, want 0x%02X", frame[0], byte(OpHandshake))
	}
	if got := binary.LittleEndian.Uint32(frame[1:]); got != ClientProtocolVersion {
		t.Errorf("client version = %d, want %d", got, ClientProtocolVersion)
	}
}

func TestHandshakeResponseRoundTrip(t *testing.T) {
	frame := EncodeHandshakeResponse("9.9.9", capability.Decode(0x7F))

	version, capabilities, err := DecodeHandshakeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeHandshakeResponse: %v", err)
	}
	if version != "9.9.9" {
		t.Errorf("version = %q, want %q", version, "9.9.9")
	}
	if capabilities.Count() != 7 {
		t.Errorf("capability count = %d, want 7", capabilities.Count())
	}
	if !capabilities.FullyFunctional() {
		t.Error("capabilities not fully functional for mask 0x7F")
	}
}

func TestDecodeHandshakeResponseTruncated(t *testing.T) {
	// Every prefix shorter than the minimum success shape must be a
	// protocol error, never a partial success.
	full := EncodeHandshakeResponse("2.1.23", capability.Decode(0x7F))
	for length := 0; length < minHandshakeResponse; length++ {
		_, _, err := DecodeHandshakeResponse(full[:min(length, len(full))])
		var protocolError *Error
		if !errors.As(err, &protocolError) {
			t.Fatalf("decode of %d-byte response: got %v, want *Error", length, err)
		}
	}
}

func TestDecodeHandshakeResponseRejected(t *testing.T) {
	frame := EncodeHandshakeResponse("2.1.23", capability.Decode(0x7F))
	frame[0] = 0x01

	_, _, err := DecodeHandshakeResponse(frame)
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
	if protocolError.Status != 0x01 {
		t.Errorf("Error.Status = 0x%02X, want 0x01", protocolError.Status)
	}
}

func TestDecodeHandshakeResponseUnterminatedVersion(t *testing.T) {
	// 40 bytes of version with no NUL within the 32-byte bound.
	frame := []byte{StatusOK}
	for i := 0; i < 40; i++ {
		frame = append(frame, 'v')
	}
	frame = binary.LittleEndian.AppendUint32(frame, 0x7F)

	_, _, err := DecodeHandshakeResponse(frame)
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
}

func TestDecodeHandshakeResponseEmptyVersion(t *testing.T) {
	frame := []byte{StatusOK, 0x00}
	frame = binary.LittleEndian.AppendUint32(frame, 0x7F)
	// Pad to the minimum length so truncation is not the failure.
	frame = append(frame, 0x00)

	_, _, err := DecodeHandshakeResponse(frame)
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
}

func TestDecodeHandshakeResponseMissingMask(t *testing.T) {
	// Valid version string but only two bytes of mask after it.
	frame := []byte{StatusOK, '1', '.', '0', 0x00, 0x7F, 0x00}

	_, _, err := DecodeHandshakeResponse(frame)
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
}

func TestDecodeHandshakeResponseUnknownBits(t *testing.T) {
	frame := EncodeHandshakeResponse("3.0.0", capability.Decode(0x8000007F))

	_, capabilities, err := DecodeHandshakeResponse(frame)
	if err != nil {
		t.Fatalf("DecodeHandshakeResponse: %v", err)
	}
	if got := capabilities.Encode(); got != 0x8000007F {
		t.Errorf("mask = 0x%08X, want 0x8000007F (unknown bits preserved)", got)
	}
	if capabilities.Count() != 7 {
		t.Errorf("count = %d, want 7", capabilities.Count())
	}
}
