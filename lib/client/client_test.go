// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"net"
	"path/filepath"
	"testing"

	"github.com/skylift-dev/skylift/lib/capability"
	"github.com/skylift-dev/skylift/lib/protocol"
	"github.com/skylift-dev/skylift/lib/testutil"
	"github.com/skylift-dev/skylift/lib/transport"
)

// serveResponses listens on path and answers each connection's first
// request with the fixed response bytes.
func serveResponses(t *testing.T, path string, response []byte) {
	t.Helper()
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { listener.Close() })

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				defer conn.Close()
				buffer := make([]byte, 256)
				if _, err := conn.Read(buffer); err != nil {
					return
				}
				conn.Write(response)
			}(conn)
		}
	}()
}

func TestHandshake(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "sa.socket")
	serveResponses(t, path, protocol.EncodeHandshakeResponse("9.9.9", capability.Decode(0x7F)))

	client := New(Options{SocketPath: path})
	result, err := client.Handshake(context.Background())
	if err != nil {
		t.Fatalf("Handshake: %v", err)
	}
	if result.Version != "9.9.9" {
		t.Errorf("Version = %q, want %q", result.Version, "9.9.9")
	}
	if result.Capabilities.Count() != 7 {
		t.Errorf("capability count = %d, want 7", result.Capabilities.Count())
	}
	for _, flag := range capability.All {
		if !result.Capabilities.Has(flag) {
			t.Errorf("capability %s missing", flag)
		}
	}
}

func TestHandshakeServiceAbsent(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "absent.socket")

	client := New(Options{SocketPath: path})
	_, err := client.Handshake(context.Background())
	var connectError *transport.ConnectError
	if !errors.As(err, &connectError) {
		t.Fatalf("got %v, want *transport.ConnectError", err)
	}
}

func TestHandshakeMalformedResponse(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "sa.socket")
	serveResponses(t, path, []byte{protocol.StatusOK, 0x01})

	client := New(Options{SocketPath: path})
	_, err := client.Handshake(context.Background())
	var protocolError *protocol.Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *protocol.Error", err)
	}
}

func TestExchange(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "sa.socket")
	serveResponses(t, path, []byte{protocol.StatusOK, 0xAA, 0xBB})

	client := New(Options{SocketPath: path})
	status, payload, err := client.Exchange(context.Background(), protocol.OpDisplayGetCount, nil, 64)
	if err != nil {
		t.Fatalf("Exchange: %v", err)
	}
	if status != protocol.StatusOK {
		t.Errorf("status = 0x%02X", status)
	}
	if len(payload) != 2 || payload[0] != 0xAA || payload[1] != 0xBB {
		t.Errorf("payload = %v", payload)
	}
}

func TestExchangeRejection(t *testing.T) {
	path := filepath.Join(testutil.SocketDir(t), "sa.socket")
	serveResponses(t, path, []byte{0x02})

	client := New(Options{SocketPath: path})
	status, _, err := client.Exchange(context.Background(), protocol.OpSpaceCreate, nil, 64)
	var protocolError *protocol.Error
	if !errors.As(err, &protocolError) {
		t.Fatalf("got %v, want *protocol.Error", err)
	}
	if status != 0x02 {
		t.Errorf("status = 0x%02X, want 0x02", status)
	}
}

func TestSocketPathAccessor(t *testing.T) {
	client := New(Options{SocketPath: "/tmp/x.socket"})
	if got := client.SocketPath(); got != "/tmp/x.socket" {
		t.Errorf("SocketPath() = %q", got)
	}
}
