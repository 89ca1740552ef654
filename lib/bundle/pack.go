// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package bundle

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/skylift-dev/skylift/lib/codec"
)

// Definition describes a bundle to pack, parsed from a JSONC
// definition file. Source paths are resolved relative to the
// definition file's directory.
type Definition struct {
	// Name is the bundle name.
	Name string `json:"name"`

	// Version is the scripting addition version string.
	Version string `json:"version"`

	// Files lists the bundle's contents.
	Files []FileDefinition `json:"files"`
}

// FileDefinition is one file in a bundle definition.
type FileDefinition struct {
	// Path is the file's path inside the bundle.
	Path string `json:"path"`

	// Source is the file to read, relative to the definition file.
	// Empty means Path is also the source.
	Source string `json:"source,omitempty"`

	// Compression selects the algorithm: "zstd" (default), "lz4",
	// or "none".
	Compression string `json:"compression,omitempty"`
}

// ParseDefinition parses a JSONC bundle definition. Comments and
// trailing commas are allowed, matching the other skylift definition
// file formats.
func ParseDefinition(data []byte) (*Definition, error) {
	var definition Definition
	if err := json.Unmarshal(jsonc.ToJSON(data), &definition); err != nil {
		return nil, fmt.Errorf("parsing bundle definition: %w", err)
	}
	if definition.Name == "" {
		return nil, fmt.Errorf("bundle definition: name is required")
	}
	if definition.Version == "" {
		return nil, fmt.Errorf("bundle definition: version is required")
	}
	if len(definition.Files) == 0 {
		return nil, fmt.Errorf("bundle definition: at least one file is required")
	}
	for _, file := range definition.Files {
		if file.Path == "" {
			return nil, fmt.Errorf("bundle definition: file with empty path")
		}
		if invalidEntryPath(file.Path) {
			return nil, fmt.Errorf("bundle definition: path %q must be clean and relative", file.Path)
		}
	}
	return &definition, nil
}

// Pack builds an archive from the definition file at definitionPath
// and writes it to outputPath. The write is crash-atomic: the archive
// is written to a temporary sibling and renamed into place.
func Pack(definitionPath, outputPath string) (*Archive, error) {
	data, err := os.ReadFile(definitionPath)
	if err != nil {
		return nil, fmt.Errorf("reading bundle definition: %w", err)
	}
	definition, err := ParseDefinition(data)
	if err != nil {
		return nil, err
	}

	archive, err := build(definition, filepath.Dir(definitionPath))
	if err != nil {
		return nil, err
	}

	encoded, err := codec.Marshal(archive)
	if err != nil {
		return nil, fmt.Errorf("encoding archive: %w", err)
	}
	if err := writeAtomic(outputPath, encoded, 0o644); err != nil {
		return nil, fmt.Errorf("writing archive: %w", err)
	}
	return archive, nil
}

// build assembles an Archive from the definition, reading sources
// relative to baseDir. Entries are sorted by path so the encoded
// archive is deterministic.
func build(definition *Definition, baseDir string) (*Archive, error) {
	entries := make([]Entry, 0, len(definition.Files))

	for _, file := range definition.Files {
		source := file.Source
		if source == "" {
			source = file.Path
		}
		content, err := os.ReadFile(filepath.Join(baseDir, source))
		if err != nil {
			return nil, fmt.Errorf("reading bundle file %s: %w", file.Path, err)
		}
		info, err := os.Stat(filepath.Join(baseDir, source))
		if err != nil {
			return nil, fmt.Errorf("stat bundle file %s: %w", file.Path, err)
		}

		requested, err := ParseCompressionTag(file.Compression)
		if err != nil {
			return nil, fmt.Errorf("bundle file %s: %w", file.Path, err)
		}
		payload, tag, err := compress(content, requested)
		if err != nil {
			return nil, fmt.Errorf("compressing bundle file %s: %w", file.Path, err)
		}

		contentHash := HashEntry(content)
		entries = append(entries, Entry{
			Path:        filepath.ToSlash(file.Path),
			Mode:        uint32(info.Mode().Perm()),
			Size:        uint64(len(content)),
			Hash:        contentHash[:],
			Compression: uint8(tag),
			Data:        payload,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	for i := 1; i < len(entries); i++ {
		if entries[i].Path == entries[i-1].Path {
			return nil, fmt.Errorf("bundle definition: duplicate path %q", entries[i].Path)
		}
	}

	archive := &Archive{
		FormatVersion: FormatVersion,
		Name:          definition.Name,
		Version:       definition.Version,
		Created:       time.Now().UTC().Truncate(time.Second),
		Entries:       entries,
	}
	manifestHash := HashManifest(archive.entryHashes())
	archive.ManifestHash = manifestHash[:]
	return archive, nil
}

// writeAtomic writes data to path via a temporary sibling and rename,
// so a killed process never leaves a half-written file mistaken for a
// valid one.
func writeAtomic(path string, data []byte, mode os.FileMode) error {
	temporary, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	temporaryPath := temporary.Name()

	_, writeErr := temporary.Write(data)
	closeErr := temporary.Close()
	if writeErr != nil || closeErr != nil {
		os.Remove(temporaryPath)
		if writeErr != nil {
			return writeErr
		}
		return closeErr
	}
	if err := os.Chmod(temporaryPath, mode); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return err
	}
	return nil
}

// invalidEntryPath reports whether a bundle-relative path could
// resolve outside the bundle root: empty, absolute, unclean, or
// containing a ".." element. Checked when a definition is parsed and
// again when an archive is opened or extracted — the archive file is
// untrusted input, so extraction must not rely on the packer having
// been honest.
func invalidEntryPath(path string) bool {
	return path == "" || filepath.IsAbs(path) || filepath.Clean(path) != path || hasDotDot(path)
}

// hasDotDot reports whether a slash path contains a ".." element.
func hasDotDot(path string) bool {
	for _, element := range strings.Split(path, "/") {
		if element == ".." {
			return true
		}
	}
	return false
}
