// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	configuration := Default()

	if configuration.SocketPath != "/tmp/skylift-sa.socket" {
		t.Errorf("SocketPath = %q", configuration.SocketPath)
	}
	if configuration.InstallDir != "/Library/ScriptingAdditions" {
		t.Errorf("InstallDir = %q", configuration.InstallDir)
	}
	if configuration.BundleName != "skylift-sa.osax" {
		t.Errorf("BundleName = %q", configuration.BundleName)
	}

	connect, ioTimeout, err := configuration.Timeouts()
	if err != nil {
		t.Fatalf("Timeouts: %v", err)
	}
	if connect != 5*time.Second || ioTimeout != 5*time.Second {
		t.Errorf("timeouts = %v, %v", connect, ioTimeout)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skylift.yaml")
	content := `
socket_path: /run/skylift/sa.socket
install_dir: /opt/scripting-additions
bundle_name: custom.osax
artifact_path: /opt/artifacts/sa.bundle
activation_command: ["osascript", "-e", "tell application \"Finder\" to activate"]
connect_timeout: 2s
io_timeout: 750ms
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if configuration.SocketPath != "/run/skylift/sa.socket" {
		t.Errorf("SocketPath = %q", configuration.SocketPath)
	}
	if configuration.InstalledBundlePath() != "/opt/scripting-additions/custom.osax" {
		t.Errorf("InstalledBundlePath() = %q", configuration.InstalledBundlePath())
	}
	if len(configuration.ActivationCommand) != 3 || configuration.ActivationCommand[0] != "osascript" {
		t.Errorf("ActivationCommand = %v", configuration.ActivationCommand)
	}

	connect, ioTimeout, err := configuration.Timeouts()
	if err != nil {
		t.Fatalf("Timeouts: %v", err)
	}
	if connect != 2*time.Second || ioTimeout != 750*time.Millisecond {
		t.Errorf("timeouts = %v, %v", connect, ioTimeout)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skylift.yaml")
	if err := os.WriteFile(path, []byte("socket_path: /tmp/other.socket\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if configuration.SocketPath != "/tmp/other.socket" {
		t.Errorf("SocketPath = %q", configuration.SocketPath)
	}
	// Unset fields retain defaults.
	if configuration.InstallDir != "/Library/ScriptingAdditions" {
		t.Errorf("InstallDir = %q, want default", configuration.InstallDir)
	}
}

func TestLoadFileExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	path := filepath.Join(t.TempDir(), "skylift.yaml")
	if err := os.WriteFile(path, []byte("artifact_path: ${HOME}/sa.bundle\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	configuration, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if want := filepath.Join(home, "sa.bundle"); configuration.ArtifactPath != want {
		t.Errorf("ArtifactPath = %q, want %q", configuration.ArtifactPath, want)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("LoadFile on missing file succeeded")
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skylift.yaml")
	if err := os.WriteFile(path, []byte("socket_path: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("LoadFile on malformed YAML succeeded")
	}
}

func TestResolveArtifactPathConfigured(t *testing.T) {
	configuration := Default()
	configuration.ArtifactPath = "/explicit/sa.bundle"

	resolved, err := configuration.ResolveArtifactPath()
	if err != nil {
		t.Fatalf("ResolveArtifactPath: %v", err)
	}
	if resolved != "/explicit/sa.bundle" {
		t.Errorf("resolved = %q", resolved)
	}
}

func TestTimeoutsMalformed(t *testing.T) {
	configuration := Default()
	configuration.IOTimeout = "soon"
	if _, _, err := configuration.Timeouts(); err == nil {
		t.Fatal("Timeouts on malformed duration succeeded")
	}
}
