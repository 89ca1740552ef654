// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
	"github.com/skylift-dev/skylift/lib/bundle"
	"github.com/skylift-dev/skylift/lib/codec"
)

func bundleCommand() *cli.Command {
	return &cli.Command{
		Name:    "bundle",
		Summary: "pack, inspect, and verify bundle archives",
		Description: "Bundle archives are single CBOR documents carrying the scripting\n" +
			"addition's files with per-entry compression and keyed BLAKE3\n" +
			"integrity hashes. Packing is deterministic: the same definition and\n" +
			"sources always produce the same manifest hash.",
		Subcommands: []*cli.Command{
			bundlePackCommand(),
			bundleInspectCommand(),
			bundleVerifyCommand(),
		},
	}
}

func bundlePackCommand() *cli.Command {
	var outputPath string
	return &cli.Command{
		Name:    "pack",
		Summary: "build a bundle archive from a definition file",
		Description: "Pack reads a JSONC bundle definition, collects the listed files\n" +
			"relative to the definition's directory, and writes a bundle archive.\n" +
			"The output write is crash-atomic.",
		Usage: "skylift bundle pack <definition.jsonc> [flags]",
		Examples: []cli.Example{
			{Description: "Pack an archive next to the definition", Command: "skylift bundle pack sa/bundle.jsonc -o skylift-sa.bundle"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("pack", pflag.ContinueOnError)
			flags.StringVarP(&outputPath, "output", "o", "", "archive output path (default: <name>.bundle)")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one definition file, got %d arguments", len(args))
			}
			return runBundlePack(args[0], outputPath)
		},
	}
}

func runBundlePack(definitionPath, outputPath string) error {
	if outputPath == "" {
		data, err := os.ReadFile(definitionPath)
		if err != nil {
			return fmt.Errorf("reading bundle definition: %w", err)
		}
		definition, err := bundle.ParseDefinition(data)
		if err != nil {
			return err
		}
		outputPath = definition.Name + ".bundle"
	}

	archive, err := bundle.Pack(definitionPath, outputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Packed %s %s: %d entries, manifest %s\n",
		archive.Name, archive.Version, len(archive.Entries),
		bundle.FormatHash(bundle.Hash(archive.ManifestHash)))
	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}

func bundleInspectCommand() *cli.Command {
	var raw bool
	var jsonOutput bool
	return &cli.Command{
		Name:    "inspect",
		Summary: "show an archive's header and entries",
		Usage:   "skylift bundle inspect <archive> [flags]",
		Examples: []cli.Example{
			{Description: "List the archive's contents", Command: "skylift bundle inspect skylift-sa.bundle"},
			{Description: "Dump the raw CBOR document", Command: "skylift bundle inspect skylift-sa.bundle --raw"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
			flags.BoolVar(&raw, "raw", false, "print CBOR diagnostic notation instead of a summary")
			flags.BoolVar(&jsonOutput, "json", false, "output as JSON")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one archive, got %d arguments", len(args))
			}
			return runBundleInspect(args[0], raw, jsonOutput)
		},
	}
}

// inspectEntry is the per-file view printed by inspect.
type inspectEntry struct {
	Path        string `json:"path"`
	Mode        string `json:"mode"`
	Size        uint64 `json:"size"`
	Compression string `json:"compression"`
	Hash        string `json:"hash"`
}

func runBundleInspect(archivePath string, raw, jsonOutput bool) error {
	if raw {
		data, err := os.ReadFile(archivePath)
		if err != nil {
			return fmt.Errorf("reading archive: %w", err)
		}
		notation, err := codec.Diagnose(data)
		if err != nil {
			return fmt.Errorf("decoding archive: %w", err)
		}
		fmt.Println(notation)
		return nil
	}

	archive, err := bundle.Open(archivePath)
	if err != nil {
		return err
	}

	entries := make([]inspectEntry, len(archive.Entries))
	for i, entry := range archive.Entries {
		entries[i] = inspectEntry{
			Path:        entry.Path,
			Mode:        fmt.Sprintf("%04o", entry.Mode),
			Size:        entry.Size,
			Compression: bundle.CompressionTag(entry.Compression).String(),
			Hash:        bundle.FormatHash(bundle.Hash(entry.Hash)),
		}
	}

	if jsonOutput {
		return cli.WriteJSON(struct {
			Name         string         `json:"name"`
			Version      string         `json:"version"`
			Created      string         `json:"created"`
			ManifestHash string         `json:"manifest_hash"`
			Entries      []inspectEntry `json:"entries"`
		}{
			Name:         archive.Name,
			Version:      archive.Version,
			Created:      archive.Created.Format("2006-01-02T15:04:05Z07:00"),
			ManifestHash: bundle.FormatHash(bundle.Hash(archive.ManifestHash)),
			Entries:      entries,
		})
	}

	fmt.Printf("Name:      %s\n", archive.Name)
	fmt.Printf("Version:   %s\n", archive.Version)
	fmt.Printf("Created:   %s\n", archive.Created.Format("2006-01-02 15:04:05 MST"))
	fmt.Printf("Manifest:  %s\n", bundle.FormatHash(bundle.Hash(archive.ManifestHash)))
	fmt.Printf("Entries:   %d\n\n", len(archive.Entries))
	for _, entry := range entries {
		fmt.Printf("  %s  %8d  %-4s  %s\n", entry.Mode, entry.Size, entry.Compression, entry.Path)
	}
	return nil
}

func bundleVerifyCommand() *cli.Command {
	var installedDir string
	return &cli.Command{
		Name:    "verify",
		Summary: "check an archive's integrity hashes",
		Description: "Verify decompresses every entry and checks it against its keyed\n" +
			"BLAKE3 hash. With --installed, the files under an installed bundle\n" +
			"directory are re-hashed against the archive instead.",
		Usage: "skylift bundle verify <archive> [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("verify", pflag.ContinueOnError)
			flags.StringVar(&installedDir, "installed", "", "verify this installed bundle directory against the archive")
			return flags
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one archive, got %d arguments", len(args))
			}
			return runBundleVerify(args[0], installedDir)
		},
	}
}

func runBundleVerify(archivePath, installedDir string) error {
	archive, err := bundle.Open(archivePath)
	if err != nil {
		return err
	}

	results := make([]cli.CheckResult, 0, len(archive.Entries)+1)
	for i := range archive.Entries {
		entry := &archive.Entries[i]
		if _, err := entry.Content(); err != nil {
			results = append(results, cli.Fail(entry.Path, err.Error()))
		} else {
			results = append(results, cli.Pass(entry.Path, "hash ok"))
		}
	}

	if installedDir != "" {
		manifest, err := bundle.LoadInstalledManifest(installedDir)
		if err != nil {
			results = append(results, cli.Fail("installed manifest", err.Error()))
		} else if !manifest.Matches(archive) {
			results = append(results, cli.Fail("installed manifest",
				fmt.Sprintf("installed version %s does not match archive %s", manifest.Version, archive.Version)))
		} else if err := bundle.VerifyInstalled(manifest, installedDir); err != nil {
			results = append(results, cli.Fail("installed files", err.Error()))
		} else {
			results = append(results, cli.Pass("installed files", "match archive"))
		}
	}

	return cli.PrintChecklist(results, "archive verification failed")
}
