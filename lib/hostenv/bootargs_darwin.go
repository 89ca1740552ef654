// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package hostenv

import (
	"strings"

	"golang.org/x/sys/unix"
)

// BootArgsHavePreviewABI reports whether the kernel was booted with
// the -arm64e_preview_abi flag, read from the kern.bootargs sysctl.
// An unreadable sysctl reads as "not set".
func BootArgsHavePreviewABI() bool {
	bootArgs, err := unix.Sysctl("kern.bootargs")
	if err != nil {
		return false
	}
	return strings.Contains(bootArgs, "-arm64e_preview_abi")
}
