// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package bundle implements the scripting-addition bundle archive:
// the single-file artifact that install unpacks into the
// ScriptingAdditions directory.
//
// An archive is one CBOR document holding a header (format version,
// bundle name, service version, creation time) and the bundle's files
// as per-entry compressed payloads. Every entry carries a keyed
// BLAKE3 hash of its uncompressed content; the header carries a
// manifest hash over all entry hashes. Decompression is always
// verified against the entry hash, and entry paths are confined to
// the bundle root at open and extract time, so a corrupt or tampered
// archive fails loudly before anything reaches a privileged
// directory.
//
// [Extract] writes a manifest.yaml beside the extracted files. The
// lifecycle manager reads that manifest to decide install idempotence
// (same version, same hashes: nothing to rewrite) and to verify an
// installed bundle without re-reading the archive.
//
// Entries are sorted by path and encoded deterministically, so
// packing the same inputs twice produces byte-identical archives.
package bundle
