// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// Conn is one Unix-socket connection to the scripting addition. It
// lives for exactly one request/response exchange and is not safe for
// concurrent use — the client is single-threaded by design.
type Conn struct {
	conn      *net.UnixConn
	ioTimeout time.Duration
	closed    bool
}

// Dial opens a stream connection to the Unix socket at path. The
// connect attempt is bounded by connectTimeout (and by ctx); every
// subsequent Send/Receive is bounded by ioTimeout. Any failure to
// establish the connection returns a *ConnectError.
func Dial(ctx context.Context, path string, connectTimeout, ioTimeout time.Duration) (*Conn, error) {
	dialer := net.Dialer{Timeout: connectTimeout}
	netConn, err := dialer.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, &ConnectError{Path: path, Err: err}
	}

	unixConn, ok := netConn.(*net.UnixConn)
	if !ok {
		// DialContext("unix", ...) always returns *net.UnixConn;
		// anything else is a programming error.
		netConn.Close()
		return nil, &ConnectError{Path: path, Err: fmt.Errorf("unexpected connection type %T", netConn)}
	}

	return &Conn{conn: unixConn, ioTimeout: ioTimeout}, nil
}

// Send writes the entire payload, bounded by the connection's I/O
// timeout. Partial-write exhaustion and broken pipes surface as
// *IOError; deadline expiry as *TimeoutError.
func (c *Conn) Send(payload []byte) error {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.ioTimeout)); err != nil {
		return &IOError{Op: "send", Err: err}
	}
	if _, err := c.conn.Write(payload); err != nil {
		return classifyIO("send", err)
	}
	return nil
}

// Receive performs a single bounded read and returns the bytes the
// service sent, at most maxLen of them. The bound is supplied by the
// caller so no peer can force unbounded buffering. A peer that closes
// the connection before sending anything yields *IOError; deadline
// expiry yields *TimeoutError.
func (c *Conn) Receive(maxLen int) ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.ioTimeout)); err != nil {
		return nil, &IOError{Op: "receive", Err: err}
	}

	buffer := make([]byte, maxLen)
	n, err := c.conn.Read(buffer)
	if n > 0 {
		return buffer[:n], nil
	}
	if err == nil || err == io.EOF {
		return nil, &IOError{Op: "receive", Err: io.ErrUnexpectedEOF}
	}
	return nil, classifyIO("receive", err)
}

// Close shuts down both directions of the connection and then closes
// the descriptor. Safe to call more than once; callers defer it
// immediately after Dial so every exit path releases the descriptor.
func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	// Shutdown failures are not interesting: the peer may already
	// have torn the connection down. The close itself must succeed.
	_ = c.conn.CloseRead()
	_ = c.conn.CloseWrite()
	return c.conn.Close()
}
