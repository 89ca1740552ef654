// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
	"github.com/skylift-dev/skylift/lib/capability"
)

func testCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "test",
		Summary: "handshake with the loaded service and list its capabilities",
		Description: "Test performs a live handshake and prints a per-capability checklist.\n" +
			"A service build compiled against an older macOS may legitimately\n" +
			"support fewer than all capabilities; test makes the gaps visible and\n" +
			"exits non-zero when any capability is missing.",
		Usage: "skylift test [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runTest(params)
		},
	}
}

func runTest(params *commonParams) error {
	manager, _, err := params.buildManager(false)
	if err != nil {
		return err
	}

	result, err := manager.Client().Handshake(context.Background())
	if err != nil {
		return fmt.Errorf("scripting addition is not answering: %w (run 'skylift status' for details)", err)
	}

	if params.jsonOutput {
		type capabilityReport struct {
			Name      string `json:"name"`
			Supported bool   `json:"supported"`
		}
		capabilities := make([]capabilityReport, len(capability.All))
		for i, flag := range capability.All {
			capabilities[i] = capabilityReport{flag.String(), result.Capabilities.Has(flag)}
		}
		if err := cli.WriteJSON(struct {
			ServiceVersion  string             `json:"service_version"`
			Capabilities    []capabilityReport `json:"capabilities"`
			FullyFunctional bool               `json:"fully_functional"`
		}{result.Version, capabilities, result.Capabilities.FullyFunctional()}); err != nil {
			return err
		}
		if !result.Capabilities.FullyFunctional() {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	fmt.Printf("Service version: %s\n\n", result.Version)
	checklist := make([]cli.CheckResult, len(capability.All))
	for i, flag := range capability.All {
		if result.Capabilities.Has(flag) {
			checklist[i] = cli.Pass(flag.String(), "supported")
		} else {
			checklist[i] = cli.Fail(flag.String(), "not supported by this service build")
		}
	}
	return cli.PrintChecklist(checklist,
		"Missing capabilities usually mean the addition was built against a different macOS version.")
}
