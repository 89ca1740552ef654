// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

// InstallationState is the derived lifecycle state. It is recomputed
// on every query from the filesystem check and a live handshake;
// nothing persists it, because the two signals can disagree at any
// time (bundle present but never activated, or bundle removed while
// an activated instance lives on).
type InstallationState int

const (
	// Uninstalled: no bundle at the install path.
	Uninstalled InstallationState = iota

	// InstalledNotLoaded: bundle present, service not answering.
	InstalledNotLoaded

	// Loaded: bundle present and the service answers the handshake.
	Loaded
)

// String returns the state name used in CLI output.
func (s InstallationState) String() string {
	switch s {
	case Uninstalled:
		return "uninstalled"
	case InstalledNotLoaded:
		return "installed (not loaded)"
	case Loaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// deriveState combines the two signals. A service that answers while
// no bundle is installed derives Uninstalled — the answering instance
// is stale, which the status report surfaces separately.
func deriveState(installed, responding bool) InstallationState {
	switch {
	case installed && responding:
		return Loaded
	case installed:
		return InstalledNotLoaded
	default:
		return Uninstalled
	}
}
