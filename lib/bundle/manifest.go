// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the manifest written into the installed bundle
// directory by [Extract]. Its presence and contents let the lifecycle
// manager decide idempotence and verify an install without re-reading
// the archive.
const ManifestFileName = "manifest.yaml"

// InstalledManifest records what an extracted bundle contains.
type InstalledManifest struct {
	Name         string           `yaml:"name"`
	Version      string           `yaml:"version"`
	ManifestHash string           `yaml:"manifest_hash"`
	Entries      []InstalledEntry `yaml:"entries"`
}

// InstalledEntry is one extracted file, hash in hex.
type InstalledEntry struct {
	Path string `yaml:"path"`
	Mode uint32 `yaml:"mode"`
	Size uint64 `yaml:"size"`
	Hash string `yaml:"hash"`
}

// manifestFor builds the installed manifest describing an archive.
func manifestFor(archive *Archive) *InstalledManifest {
	manifest := &InstalledManifest{
		Name:         archive.Name,
		Version:      archive.Version,
		ManifestHash: FormatHash(hashFromBytes(archive.ManifestHash)),
		Entries:      make([]InstalledEntry, len(archive.Entries)),
	}
	for i, entry := range archive.Entries {
		manifest.Entries[i] = InstalledEntry{
			Path: entry.Path,
			Mode: entry.Mode,
			Size: entry.Size,
			Hash: FormatHash(hashFromBytes(entry.Hash)),
		}
	}
	return manifest
}

// LoadInstalledManifest reads the manifest from an installed bundle
// directory.
func LoadInstalledManifest(bundleDir string) (*InstalledManifest, error) {
	data, err := os.ReadFile(filepath.Join(bundleDir, ManifestFileName))
	if err != nil {
		return nil, fmt.Errorf("reading installed manifest: %w", err)
	}
	var manifest InstalledManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing installed manifest: %w", err)
	}
	return &manifest, nil
}

// Matches reports whether the installed manifest describes exactly
// the given archive: same version and same manifest hash. This is the
// install idempotence predicate — when it holds, rewriting the bundle
// would produce an identical tree.
func (m *InstalledManifest) Matches(archive *Archive) bool {
	return m.Version == archive.Version &&
		m.ManifestHash == FormatHash(hashFromBytes(archive.ManifestHash))
}

// VerifyInstalled re-hashes every file the manifest names and reports
// the first mismatch. A nil return means the installed tree still
// matches the manifest byte for byte.
func VerifyInstalled(manifest *InstalledManifest, bundleDir string) error {
	for _, entry := range manifest.Entries {
		content, err := os.ReadFile(filepath.Join(bundleDir, filepath.FromSlash(entry.Path)))
		if err != nil {
			return fmt.Errorf("installed file %s: %w", entry.Path, err)
		}
		expected, err := ParseHash(entry.Hash)
		if err != nil {
			return fmt.Errorf("installed file %s: %w", entry.Path, err)
		}
		if HashEntry(content) != expected {
			return fmt.Errorf("installed file %s: content hash mismatch", entry.Path)
		}
	}
	return nil
}
