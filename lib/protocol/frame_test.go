// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeRequestOpaquePayload(t *testing.T) {
	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	frame := EncodeRequest(OpWindowSetFrame, payload)

	if Opcode(frame[0]) != OpWindowSetFrame {
		t.Errorf("opcode = 0x%02X, want 0x%02X", frame[0], byte(OpWindowSetFrame))
	}
	if !bytes.Equal(frame[1:], payload) {
		t.Errorf("payload = %v, want %v", frame[1:], payload)
	}

	// An opcode this build has no name for frames identically: the
	// codec does not need to understand a payload to transmit it.
	future := EncodeRequest(Opcode(0x42), payload)
	if future[0] != 0x42 || !bytes.Equal(future[1:], payload) {
		t.Errorf("future opcode frame = %v", future)
	}
}

func TestDecodeResponse(t *testing.T) {
	status, payload, err := DecodeResponse([]byte{StatusOK, 0x01, 0x02})
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if status != StatusOK {
		t.Errorf("status = 0x%02X", status)
	}
	if !bytes.Equal(payload, []byte{0x01, 0x02}) {
		t.Errorf("payload = %v", payload)
	}
}

func TestDecodeResponseEmpty(t *testing.T) {
	_, _, err := DecodeResponse(nil)
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
}

func TestDecodeResponseRejection(t *testing.T) {
	status, payload, err := DecodeResponse([]byte{0x7F, 'n', 'o'})
	var protocolError *Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *Error", err)
	}
	if status != 0x7F || protocolError.Status != 0x7F {
		t.Errorf("status = 0x%02X, Error.Status = 0x%02X, want 0x7F both", status, protocolError.Status)
	}
	// The rejection payload is still surfaced for diagnostics.
	if string(payload) != "no" {
		t.Errorf("payload = %q", payload)
	}
}

func TestOpcodeString(t *testing.T) {
	if got := OpHandshake.String(); got != "handshake" {
		t.Errorf("OpHandshake.String() = %q", got)
	}
	if got := OpDisplayGetList.String(); got != "display-get-list" {
		t.Errorf("OpDisplayGetList.String() = %q", got)
	}
	if got := Opcode(0x99).String(); got != "opcode(0x99)" {
		t.Errorf("unknown opcode String() = %q", got)
	}
	if Opcode(0x99).Known() {
		t.Error("Opcode(0x99).Known() = true")
	}
}
