// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package lifecycle manages the scripting addition's installation and
// activation state machine.
//
// The state — Uninstalled, InstalledNotLoaded, Loaded — is derived,
// never persisted. Two independent signals feed it: whether the
// bundle directory exists at the install path, and whether a live
// handshake succeeds. Either signal alone is ambiguous. A refused
// socket cannot distinguish "not installed" from "installed but not
// loaded"; a present bundle says nothing about whether the host
// process ever activated it. Every query recomputes the state from
// both signals, and every transition re-verifies against the live
// service rather than trusting filesystem state or the host's
// activation report.
//
// The [Manager] is the only component with cross-call memory, and
// that memory is advisory: the last state it derived, for logging.
// The probes for host requirements (root user, security posture,
// boot-time flag) and the activation mechanism are injected, so the
// state machine tests without a macOS host.
//
// One transition is documented as degraded rather than resolved:
// uninstalling while loaded removes the bundle but cannot evict the
// already-activated instance from the host process. There is no
// unload operation in the service's protocol; the stale instance
// persists until the host process restarts. [Manager.Uninstall]
// detects and reports this instead of hiding it.
package lifecycle
