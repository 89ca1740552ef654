// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package hostenv

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/skylift-dev/skylift/lib/lifecycle"
)

// IsRoot reports whether the process runs with root privileges,
// effective or real.
func IsRoot() bool {
	return os.Geteuid() == 0 || os.Getuid() == 0
}

// SecurityPosturePermitsInjection reports whether System Integrity
// Protection is relaxed enough to load code into the window-server
// process: fully disabled, or with both Filesystem Protections and
// Debugging Restrictions disabled. Parses `csrutil status`; a missing
// or failing csrutil reads as "not permitted".
func SecurityPosturePermitsInjection() bool {
	output, err := exec.Command("csrutil", "status").CombinedOutput()
	if err != nil {
		return false
	}
	return csrutilPermitsInjection(string(output))
}

// csrutilPermitsInjection parses csrutil status output. Split out for
// tests; the output format has been stable across macOS releases.
func csrutilPermitsInjection(output string) bool {
	lower := strings.ToLower(output)

	if strings.Contains(lower, "system integrity protection status: disabled") {
		return true
	}

	// Custom configuration: the two restrictions that block
	// injection must both be disabled.
	filesystem := strings.Contains(lower, "filesystem protections: disabled")
	debugging := strings.Contains(lower, "debugging restrictions: disabled")
	return filesystem && debugging
}

// Requirements returns the production host requirement set for the
// lifecycle manager. The boot-arg requirement applies only on Apple
// silicon, so it is appended only on arm64 builds.
func Requirements() []lifecycle.Requirement {
	requirements := []lifecycle.Requirement{
		{
			Name:   "root-user",
			Detail: "loading the scripting addition requires root; re-run with sudo",
			Probe:  IsRoot,
		},
		{
			Name: "security-posture",
			Detail: "System Integrity Protection must have Filesystem Protections and " +
				"Debugging Restrictions disabled (csrutil in recovery mode)",
			Probe: SecurityPosturePermitsInjection,
		},
	}
	if runtime.GOARCH == "arm64" {
		requirements = append(requirements, lifecycle.Requirement{
			Name:   "boot-arg",
			Detail: "Apple silicon requires the -arm64e_preview_abi boot-arg (sudo nvram boot-args=-arm64e_preview_abi)",
			Probe:  BootArgsHavePreviewABI,
		})
	}
	return requirements
}
