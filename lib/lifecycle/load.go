// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"fmt"

	"github.com/skylift-dev/skylift/lib/client"
)

// Load brings the scripting addition to the Loaded state: install if
// the bundle is absent, trigger the host's activation mechanism, then
// confirm with a handshake requiring a non-empty capability set. The
// activation step's own success report is not trusted — if the
// handshake fails afterward, or the service answers with no
// capabilities at all, Load returns *VerificationError and the
// operation did not succeed.
func (m *Manager) Load(ctx context.Context) (client.HandshakeResult, error) {
	if !m.installed() {
		if err := m.Install(ctx); err != nil {
			return client.HandshakeResult{}, err
		}
	}

	if m.activate == nil {
		return client.HandshakeResult{}, fmt.Errorf("load: no activation command configured")
	}
	if err := m.activate(ctx); err != nil {
		return client.HandshakeResult{}, fmt.Errorf("activating scripting addition: %w", err)
	}

	result, err := m.client.Handshake(ctx)
	if err != nil {
		m.lastState = InstalledNotLoaded
		return client.HandshakeResult{}, &VerificationError{
			Reason: "activation reported success but the service did not answer the handshake",
			Err:    err,
		}
	}
	if result.Capabilities.Encode() == 0 {
		m.lastState = InstalledNotLoaded
		return result, &VerificationError{
			Reason: fmt.Sprintf("service %s answered with an empty capability set", result.Version),
		}
	}

	m.logger.Debug("scripting addition loaded",
		"service_version", result.Version,
		"capabilities", result.Capabilities.String())
	m.lastState = Loaded
	return result, nil
}
