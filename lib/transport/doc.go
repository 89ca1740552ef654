// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport owns a single Unix-socket connection for the
// duration of one request/response exchange with the scripting
// addition.
//
// The service may be unloaded and reloaded between CLI invocations, so
// no connection survives an exchange: callers dial, send one request,
// receive one response, and close. [Conn.Close] shuts down both
// directions before closing the descriptor and is safe on every exit
// path, so repeated invocations never accumulate leaked descriptors.
//
// Every operation carries an explicit deadline. The platform default
// (block forever) is never used: an unresponsive service yields a
// [TimeoutError] rather than a hung CLI.
//
// Connection failures collapse into a single [ConnectError] kind. At
// this layer "socket path missing", "not a socket", and "peer refused"
// are indistinguishable states of the same fact — nobody is listening.
// Distinguishing "not installed" from "not loaded" requires the
// filesystem check that lib/lifecycle performs.
package transport
