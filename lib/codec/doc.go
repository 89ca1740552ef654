// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides skylift's standard CBOR encoding
// configuration.
//
// Skylift uses two serialization formats with a clear boundary: JSON
// for CLI --json output, YAML for configuration and the installed
// bundle manifest, and CBOR for the bundle archive container. This
// package provides the shared CBOR modes so every package encodes
// identically without duplicating configuration.
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2):
// sorted map keys, smallest integer encoding, no indefinite-length
// items. Same logical data always produces identical bytes — a bundle
// archive built twice from the same inputs is byte-identical, which
// keeps install idempotence checks honest.
//
// The decoder ignores unknown fields, so an older skylift build can
// open an archive written by a newer one as long as the fields it
// knows are intact.
package codec
