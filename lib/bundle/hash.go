// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"encoding/hex"
	"fmt"

	"github.com/zeebo/blake3"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// domainKey is a 32-byte key for BLAKE3 keyed hashing. Domain
// separation ensures the same input bytes produce different hashes in
// different contexts, preventing cross-domain collisions.
type domainKey [32]byte

// Domain separation keys. These are fixed constants — changing them
// invalidates every existing archive. The byte values are the ASCII
// encoding of the domain name, zero-padded to 32 bytes, so the keys
// are inspectable in hex dumps without sacrificing any cryptographic
// property.
var (
	entryDomainKey = domainKey{
		's', 'k', 'y', 'l', 'i', 'f', 't', '.', 'b', 'u', 'n', 'd', 'l', 'e', '.',
		'e', 'n', 't', 'r', 'y', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	manifestDomainKey = domainKey{
		's', 'k', 'y', 'l', 'i', 'f', 't', '.', 'b', 'u', 'n', 'd', 'l', 'e', '.',
		'm', 'a', 'n', 'i', 'f', 'e', 's', 't', 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}
)

// HashEntry computes the entry-domain hash of a file's uncompressed
// content. This is the hash stored per entry and re-checked on every
// extract and verify.
func HashEntry(data []byte) Hash {
	return keyedHash(entryDomainKey, data)
}

// HashManifest computes the manifest-domain hash over the entry
// hashes in archive order (entries are sorted by path, so the input
// is canonical). Two archives with the same manifest hash hold the
// same file contents.
func HashManifest(entryHashes []Hash) Hash {
	combined := make([]byte, 0, len(entryHashes)*32)
	for _, entryHash := range entryHashes {
		combined = append(combined, entryHash[:]...)
	}
	return keyedHash(manifestDomainKey, combined)
}

// FormatHash returns the hex-encoded string representation of a hash.
// This is the format used in manifest.yaml, logs, and CLI output.
func FormatHash(hash Hash) string {
	return hex.EncodeToString(hash[:])
}

// ParseHash parses a 64-character hex string into a Hash.
func ParseHash(hexString string) (Hash, error) {
	var hash Hash
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return hash, fmt.Errorf("parsing bundle hash: %w", err)
	}
	if len(decoded) != 32 {
		return hash, fmt.Errorf("bundle hash is %d bytes, want 32", len(decoded))
	}
	copy(hash[:], decoded)
	return hash, nil
}

// keyedHash computes the BLAKE3 keyed hash with the given domain key.
func keyedHash(key domainKey, data []byte) Hash {
	// NewKeyed requires exactly 32 bytes, which domainKey guarantees.
	hasher, err := blake3.NewKeyed(key[:])
	if err != nil {
		panic("bundle: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)
	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}
