// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"log/slog"
	"net"
	"path/filepath"
	"testing"

	"github.com/skylift-dev/skylift/lib/capability"
	"github.com/skylift-dev/skylift/lib/client"
	"github.com/skylift-dev/skylift/lib/protocol"
	"github.com/skylift-dev/skylift/lib/testutil"
)

func newMock(caps capability.Set) *mockService {
	return &mockService{
		version:      "2.1.23",
		capabilities: caps,
		logger:       slog.New(slog.DiscardHandler),
	}
}

func TestRespondHandshake(t *testing.T) {
	mock := newMock(capability.Decode(capability.MaskAll))

	request := protocol.EncodeHandshakeRequest(protocol.ClientProtocolVersion)
	response := mock.respond(request)

	version, caps, err := protocol.DecodeHandshakeResponse(response)
	if err != nil {
		t.Fatalf("decoding handshake response: %v", err)
	}
	if version != "2.1.23" {
		t.Errorf("version = %q, want 2.1.23", version)
	}
	if caps.Encode() != capability.MaskAll {
		t.Errorf("capability mask = %#x, want %#x", caps.Encode(), capability.MaskAll)
	}
}

func TestRespondHandshakeTruncatedRequest(t *testing.T) {
	mock := newMock(capability.Decode(capability.MaskAll))

	// Handshake opcode with a short client-version payload.
	response := mock.respond([]byte{byte(protocol.OpHandshake), 0x01})
	if len(response) != 1 || response[0] == protocol.StatusOK {
		t.Errorf("truncated handshake should be rejected, got % x", response)
	}
}

func TestRespondKnownOpcode(t *testing.T) {
	mock := newMock(capability.Decode(capability.MaskAll))

	response := mock.respond(protocol.EncodeRequest(protocol.OpSpaceFocus, []byte{1, 0, 0, 0}))
	if len(response) != 1 || response[0] != protocol.StatusOK {
		t.Errorf("known opcode should get empty success, got % x", response)
	}
}

func TestRespondUnknownOpcode(t *testing.T) {
	mock := newMock(capability.Decode(capability.MaskAll))

	response := mock.respond([]byte{0xFF})
	if len(response) != 1 || response[0] == protocol.StatusOK {
		t.Errorf("unknown opcode should be rejected, got % x", response)
	}
}

func TestServeEndToEnd(t *testing.T) {
	socketPath := filepath.Join(testutil.SocketDir(t), "mock.socket")

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	mock := newMock(capability.Decode(uint32(capability.DockSpaces | capability.AddSpace)))
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go mock.serve(conn)
		}
	}()

	serviceClient := client.New(client.Options{SocketPath: socketPath})
	result, err := serviceClient.Handshake(context.Background())
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	if result.Version != "2.1.23" {
		t.Errorf("version = %q, want 2.1.23", result.Version)
	}
	if result.Capabilities.Count() != 2 {
		t.Errorf("capability count = %d, want 2", result.Capabilities.Count())
	}
	if !result.Capabilities.Has(capability.AddSpace) {
		t.Error("add-space capability should be advertised")
	}
}
