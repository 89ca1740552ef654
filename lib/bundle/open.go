// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"bytes"
	"fmt"
	"os"

	"github.com/skylift-dev/skylift/lib/codec"
)

// Open reads and verifies an archive file. The container structure,
// format version, entry paths, and manifest hash are checked here;
// per-entry content hashes are checked lazily by [Entry.Content] so
// inspecting a header does not decompress the whole archive.
func Open(path string) (*Archive, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bundle archive: %w", err)
	}

	var archive Archive
	if err := codec.Unmarshal(data, &archive); err != nil {
		return nil, fmt.Errorf("decoding bundle archive %s: %w", path, err)
	}

	if archive.FormatVersion != FormatVersion {
		return nil, fmt.Errorf("bundle archive %s: format version %d, this build supports %d",
			path, archive.FormatVersion, FormatVersion)
	}
	if archive.Name == "" || archive.Version == "" {
		return nil, fmt.Errorf("bundle archive %s: missing name or version", path)
	}
	if len(archive.Entries) == 0 {
		return nil, fmt.Errorf("bundle archive %s: no entries", path)
	}
	for i := range archive.Entries {
		if invalidEntryPath(archive.Entries[i].Path) {
			return nil, fmt.Errorf("bundle archive %s: entry path %q must be clean and relative",
				path, archive.Entries[i].Path)
		}
	}

	manifestHash := HashManifest(archive.entryHashes())
	if !bytes.Equal(manifestHash[:], archive.ManifestHash) {
		return nil, fmt.Errorf("bundle archive %s: manifest hash mismatch", path)
	}

	return &archive, nil
}
