// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package client performs single request/response exchanges with the
// scripting addition.
//
// A [Client] holds the resolved socket path, a log sink, and timeouts
// — never a connection. Every call dials, exchanges, and closes. The
// service may be unloaded and reloaded between CLI invocations, so
// pooling or keep-alive would only cache a connection to a process
// that no longer exists; trust is re-established from zero on every
// logical operation instead.
package client

import (
	"context"
	"log/slog"
	"time"

	"github.com/skylift-dev/skylift/lib/capability"
	"github.com/skylift-dev/skylift/lib/protocol"
	"github.com/skylift-dev/skylift/lib/transport"
)

// Default timeouts applied when Options leaves them zero.
const (
	DefaultConnectTimeout = 5 * time.Second
	DefaultIOTimeout      = 5 * time.Second
)

// Options configures a Client.
type Options struct {
	// SocketPath is the Unix socket the scripting addition listens
	// on. Required.
	SocketPath string

	// Logger receives debug-level exchange traces. Nil discards.
	// The Client must not outlive the logger's sink.
	Logger *slog.Logger

	// ConnectTimeout bounds the dial. Zero means
	// DefaultConnectTimeout.
	ConnectTimeout time.Duration

	// IOTimeout bounds each send and each receive. Zero means
	// DefaultIOTimeout.
	IOTimeout time.Duration
}

// Client exchanges single requests with the scripting addition. It is
// stateless across calls: no connection, no cached handshake.
type Client struct {
	socketPath     string
	logger         *slog.Logger
	connectTimeout time.Duration
	ioTimeout      time.Duration
}

// HandshakeResult is the service's side of a completed handshake.
type HandshakeResult struct {
	// Version is the service's build version string, opaque beyond
	// display.
	Version string `json:"version"`

	// Capabilities is the feature set this service build supports.
	Capabilities capability.Set `json:"-"`
}

// New creates a Client from options, applying default timeouts and a
// discard logger where unset.
func New(options Options) *Client {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	connectTimeout := options.ConnectTimeout
	if connectTimeout == 0 {
		connectTimeout = DefaultConnectTimeout
	}
	ioTimeout := options.IOTimeout
	if ioTimeout == 0 {
		ioTimeout = DefaultIOTimeout
	}
	return &Client{
		socketPath:     options.SocketPath,
		logger:         logger,
		connectTimeout: connectTimeout,
		ioTimeout:      ioTimeout,
	}
}

// SocketPath returns the socket path this client dials.
func (c *Client) SocketPath() string {
	return c.socketPath
}

// Handshake performs the version/capability exchange: dial, send the
// handshake request, receive one bounded response, decode, close.
// Errors are *transport.ConnectError (nobody listening),
// *transport.TimeoutError / *transport.IOError (exchange failed), or
// *protocol.Error (malformed or rejected response).
func (c *Client) Handshake(ctx context.Context) (HandshakeResult, error) {
	conn, err := transport.Dial(ctx, c.socketPath, c.connectTimeout, c.ioTimeout)
	if err != nil {
		return HandshakeResult{}, err
	}
	defer conn.Close()

	if err := conn.Send(protocol.EncodeHandshakeRequest(protocol.ClientProtocolVersion)); err != nil {
		return HandshakeResult{}, err
	}
	response, err := conn.Receive(protocol.MaxHandshakeResponse)
	if err != nil {
		return HandshakeResult{}, err
	}

	version, capabilities, err := protocol.DecodeHandshakeResponse(response)
	if err != nil {
		return HandshakeResult{}, err
	}

	c.logger.Debug("handshake complete",
		"socket", c.socketPath,
		"service_version", version,
		"capabilities", capabilities.String())
	return HandshakeResult{Version: version, Capabilities: capabilities}, nil
}

// Exchange performs one opaque request/response round trip for any
// opcode, with the same open→send→receive→close discipline as
// Handshake. The payload is not interpreted; maxResponse bounds the
// receive. Returns the response status byte and payload. The status
// error from a rejection is returned alongside the payload so callers
// can log what the service sent with the refusal.
func (c *Client) Exchange(ctx context.Context, op protocol.Opcode, payload []byte, maxResponse int) (byte, []byte, error) {
	conn, err := transport.Dial(ctx, c.socketPath, c.connectTimeout, c.ioTimeout)
	if err != nil {
		return 0, nil, err
	}
	defer conn.Close()

	if err := conn.Send(protocol.EncodeRequest(op, payload)); err != nil {
		return 0, nil, err
	}
	response, err := conn.Receive(maxResponse)
	if err != nil {
		return 0, nil, err
	}

	status, body, err := protocol.DecodeResponse(response)
	c.logger.Debug("exchange complete",
		"socket", c.socketPath,
		"opcode", op.String(),
		"status", status,
		"response_bytes", len(body))
	return status, body, err
}
