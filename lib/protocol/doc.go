// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package protocol frames requests and responses for the scripting
// addition's control socket.
//
// A request is [opcode: 1 byte][payload]; a response is
// [status: 1 byte][payload]. Opcodes live in a single append-only
// namespace (0x01–0x1E today): codes are never reassigned, so an old
// client and a new service always agree on what a byte means.
//
// Only the handshake payload is interpreted at this layer. Every other
// opcode's payload is framed and transmitted opaquely — the payload
// schemas belong to the service and evolve independently of this
// client. [Opcode.String] falls back to a hex rendering for codes
// appended after this build, so logs stay readable against newer
// services.
package protocol
