// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"
	"os"

	"github.com/skylift-dev/skylift/lib/bundle"
)

// Install unpacks the bundle archive into the install directory.
// Idempotent: when the installed manifest matches the archive
// (version and content hashes) and the installed files still verify,
// nothing is rewritten. The transition is all-or-nothing: the archive
// extracts into a temporary sibling directory that is renamed into
// place, and any partial temporary tree is removed on failure, so a
// crash never leaves a half-written bundle mistaken for a valid one.
func (m *Manager) Install(ctx context.Context) error {
	// Cancellation is observed before any filesystem work begins;
	// once extraction starts, the operation runs to completion or
	// failure so the temp-and-rename transition stays all-or-nothing.
	if err := ctx.Err(); err != nil {
		return &InstallError{Path: m.bundlePath(), Err: err}
	}
	if m.artifactPath == "" {
		return &InstallError{Path: m.bundlePath(), Err: fmt.Errorf("no bundle artifact configured")}
	}

	archive, err := bundle.Open(m.artifactPath)
	if err != nil {
		return &InstallError{Path: m.artifactPath, Err: err}
	}

	target := m.bundlePath()
	if manifest, err := bundle.LoadInstalledManifest(target); err == nil {
		if manifest.Matches(archive) && bundle.VerifyInstalled(manifest, target) == nil {
			m.logger.Debug("bundle already installed", "path", target, "version", manifest.Version)
			m.lastState = deriveState(true, m.lastState == Loaded)
			return nil
		}
	}

	if err := os.MkdirAll(m.installDir, 0o755); err != nil {
		return &InstallError{Path: m.installDir, Err: err}
	}

	// Extract into a hidden sibling so the rename below is atomic
	// within the same filesystem.
	temporary, err := os.MkdirTemp(m.installDir, "."+m.bundleName+".*")
	if err != nil {
		return &InstallError{Path: m.installDir, Err: err}
	}
	if err := bundle.Extract(archive, temporary); err != nil {
		os.RemoveAll(temporary)
		return &InstallError{Path: target, Err: err}
	}

	// Replace any stale or corrupt previous install wholesale.
	if err := os.RemoveAll(target); err != nil {
		os.RemoveAll(temporary)
		return &InstallError{Path: target, Err: err}
	}
	if err := os.Rename(temporary, target); err != nil {
		os.RemoveAll(temporary)
		return &InstallError{Path: target, Err: err}
	}

	m.logger.Debug("bundle installed", "path", target, "version", archive.Version)
	m.lastState = InstalledNotLoaded
	return nil
}
