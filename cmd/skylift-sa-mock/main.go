// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Skylift-sa-mock is a drop-in stand-in for the scripting addition's
// socket service in integration tests and on non-macOS development
// machines. It speaks the real wire protocol: handshake requests get a
// status byte, a NUL-terminated version string, and a capability
// bitmask; every other known opcode gets an empty success response.
//
// The advertised version and capability mask are flag-controlled so
// tests can exercise degraded services (partial capabilities, empty
// capability set, old versions) without a real window server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/skylift-dev/skylift/lib/capability"
	"github.com/skylift-dev/skylift/lib/protocol"
	"github.com/skylift-dev/skylift/lib/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		socketPath     string
		serviceVersion string
		maskString     string
		showVersion    bool
	)
	flag.StringVar(&socketPath, "socket", "/tmp/skylift-sa.socket", "unix socket path to listen on")
	flag.StringVar(&serviceVersion, "service-version", "2.1.23", "version string to advertise in the handshake")
	flag.StringVar(&maskString, "capabilities", "0x7f", "capability bitmask to advertise (accepts hex or decimal)")
	flag.BoolVar(&showVersion, "version", false, "print version information and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("skylift-sa-mock %s\n", version.Info())
		return nil
	}

	mask, err := strconv.ParseUint(maskString, 0, 32)
	if err != nil {
		return fmt.Errorf("invalid capability mask %q: %w", maskString, err)
	}
	if len(serviceVersion) == 0 || len(serviceVersion) > protocol.MaxVersionLength {
		return fmt.Errorf("service version must be 1..%d bytes, got %d",
			protocol.MaxVersionLength, len(serviceVersion))
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	mock := &mockService{
		version:      serviceVersion,
		capabilities: capability.Decode(uint32(mask)),
		logger:       logger,
	}

	// A stale socket file from a previous run would make Listen fail
	// with "address already in use" even though nothing is listening.
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing stale socket %s: %w", socketPath, err)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", socketPath, err)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	logger.Info("mock scripting addition running",
		"socket", socketPath,
		"version", serviceVersion,
		"capabilities", mock.capabilities.String(),
	)

	go func() {
		<-ctx.Done()
		listener.Close()
	}()

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil {
				logger.Info("shutting down")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go mock.serve(conn)
	}
}

// mockService answers protocol requests with canned responses.
type mockService struct {
	version      string
	capabilities capability.Set
	logger       *slog.Logger
}

// serve handles one connection: a single request, a single response.
// The real service behaves the same way; clients reconnect per
// exchange.
func (m *mockService) serve(conn net.Conn) {
	defer conn.Close()
	conn.SetDeadline(time.Now().Add(5 * time.Second))

	request := make([]byte, 512)
	n, err := conn.Read(request)
	if err != nil || n == 0 {
		return
	}

	response := m.respond(request[:n])
	if _, err := conn.Write(response); err != nil {
		m.logger.Debug("write failed", "error", err)
	}
}

// respond maps a request frame to its response frame.
func (m *mockService) respond(request []byte) []byte {
	op := protocol.Opcode(request[0])
	payload := request[1:]

	switch {
	case op == protocol.OpHandshake:
		if len(payload) < 4 {
			m.logger.Warn("malformed handshake request", "bytes", len(payload))
			return []byte{0x01}
		}
		m.logger.Debug("handshake", "op", op.String())
		return protocol.EncodeHandshakeResponse(m.version, m.capabilities)

	case op.Known():
		m.logger.Debug("request", "op", op.String(), "payload_bytes", len(payload))
		return []byte{protocol.StatusOK}

	default:
		m.logger.Warn("unknown opcode", "op", op.String())
		return []byte{0x01}
	}
}
