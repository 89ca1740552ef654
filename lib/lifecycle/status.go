// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"

	"github.com/skylift-dev/skylift/lib/bundle"
	"github.com/skylift-dev/skylift/lib/capability"
)

// StatusReport is the read-only composition of the filesystem check,
// a handshake attempt, and the requirement checks. It is always fully
// populated: when every sub-check fails the report simply says so,
// it never becomes an error.
type StatusReport struct {
	// State is the derived lifecycle state.
	State InstallationState `json:"-"`

	// StateName is State rendered for JSON output.
	StateName string `json:"state"`

	// Installed is the filesystem signal: bundle directory present.
	Installed bool `json:"installed"`

	// BundlePath is the install location that was checked.
	BundlePath string `json:"bundle_path"`

	// InstalledVersion is the version recorded in the installed
	// manifest, empty when absent or unreadable.
	InstalledVersion string `json:"installed_version,omitempty"`

	// ServiceResponding is the live signal: handshake succeeded.
	ServiceResponding bool `json:"service_responding"`

	// ServiceVersion is the version the service reported, empty
	// when it did not answer.
	ServiceVersion string `json:"service_version,omitempty"`

	// Capabilities is the service's advertised capability set.
	Capabilities capability.Set `json:"-"`

	// CapabilityNames lists the advertised capabilities for JSON
	// output.
	CapabilityNames []string `json:"capabilities"`

	// HandshakeError describes why the handshake failed, empty on
	// success.
	HandshakeError string `json:"handshake_error,omitempty"`

	// StaleInstance is true when the service answers but no bundle
	// is installed: a previously loaded instance outliving its
	// uninstall.
	StaleInstance bool `json:"stale_instance"`

	// Requirements holds the host requirement check results.
	Requirements []RequirementResult `json:"requirements"`
}

// Status composes the filesystem existence check, a handshake
// attempt, and the requirement checks into one report. Read-only and
// total: it never mutates state and never fails — an absent service
// yields a report with every sub-check marked failed, so the caller
// always has something to print.
func (m *Manager) Status(ctx context.Context) StatusReport {
	state, handshake, handshakeErr := m.derive(ctx)

	report := StatusReport{
		State:           state,
		StateName:       state.String(),
		Installed:       state != Uninstalled,
		BundlePath:      m.bundlePath(),
		CapabilityNames: []string{},
	}

	if report.Installed {
		if manifest, err := bundle.LoadInstalledManifest(m.bundlePath()); err == nil {
			report.InstalledVersion = manifest.Version
		}
	}

	if handshakeErr == nil {
		report.ServiceResponding = true
		report.ServiceVersion = handshake.Version
		report.Capabilities = handshake.Capabilities
		for _, flag := range handshake.Capabilities.List() {
			report.CapabilityNames = append(report.CapabilityNames, flag.String())
		}
		report.StaleInstance = !report.Installed
	} else {
		report.HandshakeError = handshakeErr.Error()
	}

	// Check's error restates what the results already carry; the
	// report keeps the per-requirement detail.
	report.Requirements, _ = m.Check()

	return report
}
