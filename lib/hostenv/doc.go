// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package hostenv supplies the production host-environment probes and
// the activation command runner.
//
// The lifecycle state machine consumes these only through injected
// interfaces — a []lifecycle.Requirement of plain func() bool probes
// and a lifecycle.Activator — so everything host-specific lives here
// and everything else tests with stubs.
//
// Loading code into the window-server process requires three things
// of the host: the caller runs as root, System Integrity Protection
// has its Filesystem Protections and Debugging Restrictions lifted,
// and on Apple silicon the kernel was booted with the
// -arm64e_preview_abi boot-arg (the addition's arm64e code cannot
// load without it). Intel machines have no boot-arg requirement, so
// [Requirements] only includes that probe on arm64 builds.
package hostenv
