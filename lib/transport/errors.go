// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package transport

import (
	"errors"
	"fmt"
	"os"
)

// ConnectError reports a failure to establish a connection to the
// service socket. All connect-time failures (path missing, not a
// socket, peer refusing) collapse into this one kind: the transport
// cannot tell "not installed" from "not loaded", only that nobody
// answered at the path.
type ConnectError struct {
	// Path is the socket path that was dialed.
	Path string

	// Err is the underlying dial error.
	Err error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connecting to %s: %v", e.Path, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// IOError reports a failure during an established exchange: a partial
// write, broken pipe, connection reset, or a peer that closed before
// sending any response bytes.
type IOError struct {
	// Op is "send" or "receive".
	Op string

	// Err is the underlying I/O error.
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// TimeoutError reports that an operation's explicit deadline expired
// before the service answered. Distinct from IOError so callers can
// tell "the service is wedged" from "the connection broke".
type TimeoutError struct {
	// Op is "send" or "receive".
	Op string

	// Err is the underlying deadline error.
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s: timed out waiting for service: %v", e.Op, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// classifyIO wraps an I/O error as either a TimeoutError (deadline
// expiry) or an IOError (everything else).
func classifyIO(op string, err error) error {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return &TimeoutError{Op: op, Err: err}
	}
	return &IOError{Op: op, Err: err}
}
