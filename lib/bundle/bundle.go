// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"fmt"
	"time"
)

// FormatVersion is the archive container format version. Bumped only
// for incompatible layout changes; unknown newer fields are ignored
// by the CBOR decoder and do not require a bump.
const FormatVersion = 1

// Archive is the bundle archive container: one CBOR document holding
// the header and all file entries.
type Archive struct {
	// FormatVersion is the container layout version.
	FormatVersion int `cbor:"format_version"`

	// Name is the bundle name, e.g. "skylift-sa".
	Name string `cbor:"name"`

	// Version is the scripting addition's version string, the same
	// string a loaded service reports in the handshake.
	Version string `cbor:"version"`

	// Created is the archive creation time (UTC).
	Created time.Time `cbor:"created"`

	// ManifestHash is the manifest-domain hash over all entry
	// hashes in archive order.
	ManifestHash []byte `cbor:"manifest_hash"`

	// Entries are the bundle's files, sorted by path.
	Entries []Entry `cbor:"entries"`
}

// Entry is one file inside the archive.
type Entry struct {
	// Path is the file's path relative to the bundle root, with
	// forward slashes.
	Path string `cbor:"path"`

	// Mode is the file's permission bits.
	Mode uint32 `cbor:"mode"`

	// Size is the uncompressed content length.
	Size uint64 `cbor:"size"`

	// Hash is the entry-domain BLAKE3 hash of the uncompressed
	// content.
	Hash []byte `cbor:"hash"`

	// Compression tags the algorithm used for Data.
	Compression uint8 `cbor:"compression"`

	// Data is the compressed payload.
	Data []byte `cbor:"data"`
}

// Content decompresses the entry's payload and verifies it against
// the entry hash.
func (e *Entry) Content() ([]byte, error) {
	data, err := decompress(e.Data, CompressionTag(e.Compression), int(e.Size))
	if err != nil {
		return nil, fmt.Errorf("entry %s: %w", e.Path, err)
	}
	if HashEntry(data) != hashFromBytes(e.Hash) {
		return nil, fmt.Errorf("entry %s: content hash mismatch", e.Path)
	}
	return data, nil
}

// entryHashes collects the entry hashes in archive order.
func (a *Archive) entryHashes() []Hash {
	hashes := make([]Hash, len(a.Entries))
	for i, entry := range a.Entries {
		hashes[i] = hashFromBytes(entry.Hash)
	}
	return hashes
}

// hashFromBytes converts a stored hash slice to a Hash. Short or long
// slices produce a zero-padded/truncated value that can never match a
// real digest, so corruption still fails verification.
func hashFromBytes(raw []byte) Hash {
	var hash Hash
	copy(hash[:], raw)
	return hash
}
