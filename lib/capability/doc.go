// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package capability models the optional features a scripting-addition
// build may support.
//
// The service advertises its capabilities during the handshake as a
// 32-bit bitmask. Seven flags are defined; a given build of the
// addition may support any subset of them depending on the macOS
// version it was compiled against. A [Set] decoded from the wire
// preserves bits it does not recognize so that a client built against
// an older flag table can still round-trip a newer service's mask
// unchanged — unknown bits are carried, never interpreted.
//
// A Set with zero bits is valid: it means the service is present and
// answering but degraded, with no optional feature available.
//
// All functions in this package are pure and total. This package has
// no dependencies on other skylift packages.
package capability
