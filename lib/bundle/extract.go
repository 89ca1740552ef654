// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Extract writes the archive's entries into destDir, preserving file
// modes, and finishes with a manifest.yaml describing the tree. Each
// entry's content hash is verified during decompression; any failure
// aborts the extract with the destination left as-is for the caller
// to clean up (the lifecycle manager extracts into a temporary
// directory and removes it on error).
func Extract(archive *Archive, destDir string) error {
	for i := range archive.Entries {
		entry := &archive.Entries[i]

		// Open already rejects escaping paths, but Extract is the
		// place that writes into a privileged directory, so it does
		// not trust the archive to have come through Open.
		if invalidEntryPath(entry.Path) {
			return fmt.Errorf("entry path %q must be clean and relative", entry.Path)
		}

		content, err := entry.Content()
		if err != nil {
			return err
		}

		target := filepath.Join(destDir, filepath.FromSlash(entry.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", entry.Path, err)
		}
		if err := os.WriteFile(target, content, os.FileMode(entry.Mode)); err != nil {
			return fmt.Errorf("writing %s: %w", entry.Path, err)
		}
	}

	manifest, err := yaml.Marshal(manifestFor(archive))
	if err != nil {
		return fmt.Errorf("encoding installed manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(destDir, ManifestFileName), manifest, 0o644); err != nil {
		return fmt.Errorf("writing installed manifest: %w", err)
	}
	return nil
}
