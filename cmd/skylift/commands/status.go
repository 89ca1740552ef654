// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
	"github.com/skylift-dev/skylift/lib/capability"
	"github.com/skylift-dev/skylift/lib/lifecycle"
)

func statusCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "status",
		Summary: "report installation, loading, and requirement state",
		Description: "Status composes the filesystem check, a live handshake, and the host\n" +
			"requirement checks into one report. Read-only; it always produces a\n" +
			"full report even when the service is entirely absent.",
		Usage: "skylift status [flags]",
		Examples: []cli.Example{
			{Description: "Machine-readable status for scripts", Command: "skylift status --json"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("status", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runStatus(params)
		},
	}
}

func runStatus(params *commonParams) error {
	manager, _, err := params.buildManager(false)
	if err != nil {
		return err
	}

	report := manager.Status(context.Background())

	if params.jsonOutput {
		if err := cli.WriteJSON(report); err != nil {
			return err
		}
		if report.State != lifecycle.Loaded {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	checklist := []cli.CheckResult{}
	if report.Installed {
		message := "bundle present at " + report.BundlePath
		if report.InstalledVersion != "" {
			message = fmt.Sprintf("version %s at %s", report.InstalledVersion, report.BundlePath)
		}
		checklist = append(checklist, cli.Pass("installed", message))
	} else {
		checklist = append(checklist, cli.Fail("installed", "no bundle at "+report.BundlePath))
	}

	if report.ServiceResponding {
		checklist = append(checklist, cli.Pass("loaded",
			fmt.Sprintf("service %s answering (%s)",
				report.ServiceVersion,
				capabilityCount(report.Capabilities.Count(), len(capability.All)))))
	} else {
		checklist = append(checklist, cli.Fail("loaded", report.HandshakeError))
	}

	checklist = append(checklist, requirementChecklist(report.Requirements)...)

	if report.StaleInstance {
		checklist = append(checklist, cli.Warn("stale-instance",
			"service answering without an installed bundle; it persists until the window server restarts"))
	}

	fmt.Printf("State: %s\n\n", report.State)
	return cli.PrintChecklist(checklist, "Run 'skylift check' for requirement details.")
}
