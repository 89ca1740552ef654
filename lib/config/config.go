// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for skylift.
//
// Configuration is loaded from a single YAML file specified by:
//   - SKYLIFT_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides.
// Running without a config file uses [Default] values, which individual
// flags (--socket) may still override.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the master configuration for skylift.
type Config struct {
	// SocketPath is the Unix socket the scripting addition listens
	// on. The service owns this path; skylift only dials it.
	SocketPath string `yaml:"socket_path"`

	// InstallDir is the directory the bundle is installed into.
	InstallDir string `yaml:"install_dir"`

	// BundleName is the directory name of the installed bundle
	// inside InstallDir. Presence of this directory is the sole
	// filesystem-level signal of "installed".
	BundleName string `yaml:"bundle_name"`

	// ArtifactPath is the bundle archive that install unpacks.
	// Empty means: look next to the running binary, then under
	// /usr/local/share/skylift.
	ArtifactPath string `yaml:"artifact_path"`

	// ActivationCommand is the command (argv) that triggers the host
	// mechanism loading the installed bundle into the window-server
	// process. Activation reporting success is never trusted on its
	// own; load always verifies with a handshake afterwards.
	ActivationCommand []string `yaml:"activation_command"`

	// ConnectTimeout bounds each socket dial, as a Go duration
	// string.
	ConnectTimeout string `yaml:"connect_timeout"`

	// IOTimeout bounds each socket send and receive, as a Go
	// duration string.
	IOTimeout string `yaml:"io_timeout"`
}

// Default returns the default configuration. These are real working
// values, not placeholders: skylift runs without a config file on a
// standard deployment.
func Default() *Config {
	return &Config{
		SocketPath:     "/tmp/skylift-sa.socket",
		InstallDir:     "/Library/ScriptingAdditions",
		BundleName:     "skylift-sa.osax",
		ConnectTimeout: "5s",
		IOTimeout:      "5s",
	}
}

// Load loads configuration from the SKYLIFT_CONFIG environment
// variable, falling back to [Default] when it is unset. An unset
// variable is not an error — unlike a set-but-unreadable one.
func Load() (*Config, error) {
	configPath := os.Getenv("SKYLIFT_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// [Default]. The config file is the single source of truth;
// environment variables do not override individual values. The only
// expansion performed is ${HOME} and similar path variables for
// portability.
func LoadFile(path string) (*Config, error) {
	configuration := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, configuration); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	configuration.expandVariables()
	return configuration, nil
}

// InstalledBundlePath returns the full path of the installed bundle
// directory.
func (c *Config) InstalledBundlePath() string {
	return filepath.Join(c.InstallDir, c.BundleName)
}

// ResolveArtifactPath returns the bundle archive path: the configured
// one when set, otherwise the first existing candidate of
// "skylift-sa.bundle" next to the running binary and the shared data
// directory. Returns an error naming the candidates when none exists,
// so the install failure message is actionable.
func (c *Config) ResolveArtifactPath() (string, error) {
	if c.ArtifactPath != "" {
		return c.ArtifactPath, nil
	}

	var candidates []string
	if executable, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(executable), "skylift-sa.bundle"))
	}
	candidates = append(candidates, "/usr/local/share/skylift/skylift-sa.bundle")

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("bundle artifact not found (tried %s); set artifact_path in the config file",
		strings.Join(candidates, ", "))
}

// Timeouts parses the connect and I/O timeout strings.
func (c *Config) Timeouts() (connect, io time.Duration, err error) {
	connect, err = time.ParseDuration(c.ConnectTimeout)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing connect_timeout: %w", err)
	}
	io, err = time.ParseDuration(c.IOTimeout)
	if err != nil {
		return 0, 0, fmt.Errorf("parsing io_timeout: %w", err)
	}
	return connect, io, nil
}

// expandVariables expands ${HOME} and $HOME in path fields so config
// files stay portable across users.
func (c *Config) expandVariables() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	expand := func(path string) string {
		path = strings.ReplaceAll(path, "${HOME}", home)
		path = strings.ReplaceAll(path, "$HOME", home)
		return path
	}
	c.SocketPath = expand(c.SocketPath)
	c.InstallDir = expand(c.InstallDir)
	c.ArtifactPath = expand(c.ArtifactPath)
}
