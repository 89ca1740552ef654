// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !darwin

package hostenv

// BootArgsHavePreviewABI is darwin-only; on other platforms the
// boot-arg can never be satisfied. The probe only reaches a
// requirement list on arm64 darwin builds anyway.
func BootArgsHavePreviewABI() bool {
	return false
}
