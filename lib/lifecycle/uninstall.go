// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"os"
)

// UninstallOutcome reports what Uninstall did and what it could not
// do.
type UninstallOutcome struct {
	// Removed is true when a bundle directory was deleted, false
	// when there was nothing to remove.
	Removed bool `json:"removed"`

	// StaleInstanceLoaded is true when the service still answered
	// the handshake after the bundle was removed. The protocol has
	// no unload operation: an already-activated instance persists
	// inside the host process until the host restarts. Callers must
	// surface this rather than report a clean uninstall.
	StaleInstanceLoaded bool `json:"stale_instance_loaded"`
}

// Uninstall removes the installed bundle. Idempotent: an absent
// bundle is a no-op success. It never attempts to force-unload a live
// instance from the host process — when the service still answers
// after removal, the outcome carries StaleInstanceLoaded instead.
func (m *Manager) Uninstall(ctx context.Context) (UninstallOutcome, error) {
	target := m.bundlePath()

	if _, err := os.Stat(target); os.IsNotExist(err) {
		m.lastState = Uninstalled
		return UninstallOutcome{}, nil
	}

	if err := os.RemoveAll(target); err != nil {
		return UninstallOutcome{}, &UninstallError{Path: target, Err: err}
	}
	m.lastState = Uninstalled

	outcome := UninstallOutcome{Removed: true}
	if _, err := m.client.Handshake(ctx); err == nil {
		outcome.StaleInstanceLoaded = true
		m.logger.Debug("bundle removed but an activated instance is still answering",
			"socket", m.client.SocketPath())
	}
	return outcome, nil
}
