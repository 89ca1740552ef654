// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/skylift-dev/skylift/lib/client"
)

// Activator triggers the host mechanism that loads the installed
// bundle into the window-server process. Its success report is a
// claim, not a fact: Load always confirms with a handshake afterward.
type Activator func(ctx context.Context) error

// Options configures a Manager.
type Options struct {
	// Client performs handshakes against the service socket.
	// Required.
	Client *client.Client

	// InstallDir is the directory the bundle is installed into.
	InstallDir string

	// BundleName is the bundle directory name inside InstallDir.
	BundleName string

	// ArtifactPath is the bundle archive that Install unpacks.
	ArtifactPath string

	// Requirements are the host preconditions Check evaluates.
	Requirements []Requirement

	// Activate triggers bundle loading in the host process. Nil
	// means Load fails before attempting activation.
	Activate Activator

	// Logger receives debug-level transition traces. Nil discards.
	// Failures are returned, never logged: presentation belongs to
	// the command layer.
	Logger *slog.Logger
}

// Manager drives the install/load/uninstall/check state machine. It
// is the only component with cross-call memory, and that memory is
// advisory: the last state it derived. Every operation recomputes the
// real state from the filesystem and the live service.
type Manager struct {
	client       *client.Client
	installDir   string
	bundleName   string
	artifactPath string
	requirements []Requirement
	activate     Activator
	logger       *slog.Logger

	lastState InstallationState
}

// New creates a Manager.
func New(options Options) *Manager {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{
		client:       options.Client,
		installDir:   options.InstallDir,
		bundleName:   options.BundleName,
		artifactPath: options.ArtifactPath,
		requirements: options.Requirements,
		activate:     options.Activate,
		logger:       logger,
		lastState:    Uninstalled,
	}
}

// Client returns the underlying protocol client, for commands that
// talk to the service directly (test, raw opcode exchanges).
func (m *Manager) Client() *client.Client {
	return m.client
}

// BelievedState returns the state derived by the most recent
// operation. Advisory only — callers that need the truth run Status.
func (m *Manager) BelievedState() InstallationState {
	return m.lastState
}

// bundlePath is the installed bundle directory.
func (m *Manager) bundlePath() string {
	return filepath.Join(m.installDir, m.bundleName)
}

// installed reports the filesystem signal: a directory at the bundle
// path. This is deliberately only half the story; callers pair it
// with a handshake before naming a state.
func (m *Manager) installed() bool {
	info, err := os.Stat(m.bundlePath())
	return err == nil && info.IsDir()
}

// derive recomputes and remembers the current state.
func (m *Manager) derive(ctx context.Context) (InstallationState, client.HandshakeResult, error) {
	installed := m.installed()
	result, err := m.client.Handshake(ctx)
	state := deriveState(installed, err == nil)
	m.lastState = state
	m.logger.Debug("derived lifecycle state",
		"state", state.String(),
		"bundle_present", installed,
		"service_responding", err == nil)
	return state, result, err
}
