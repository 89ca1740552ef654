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

func loadCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "load",
		Summary: "install if needed, activate, and verify the scripting addition",
		Description: "Load brings the scripting addition to the loaded state: installs the\n" +
			"bundle when absent, runs the configured activation command, then\n" +
			"confirms with a live handshake. The activation step's own success\n" +
			"report is never trusted — a load that does not answer the handshake\n" +
			"with at least one capability is a failed load.",
		Usage: "skylift load [flags]",
		Examples: []cli.Example{
			{Description: "Load and print the negotiated capability set", Command: "sudo skylift load"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("load", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runLoad(params)
		},
	}
}

func runLoad(params *commonParams) error {
	manager, logger, err := params.buildManager(true)
	if err != nil {
		return err
	}

	result, err := manager.Load(context.Background())
	if err != nil {
		return err
	}
	logger.Info("scripting addition loaded",
		"service_version", result.Version,
		"capabilities", result.Capabilities.String())

	if params.jsonOutput {
		names := []string{}
		for _, flag := range result.Capabilities.List() {
			names = append(names, flag.String())
		}
		return cli.WriteJSON(struct {
			Loaded         bool     `json:"loaded"`
			ServiceVersion string   `json:"service_version"`
			Capabilities   []string `json:"capabilities"`
		}{true, result.Version, names})
	}

	fmt.Printf("Scripting addition %s loaded (%s).\n",
		result.Version,
		capabilityCount(result.Capabilities.Count(), len(capability.All)))
	if !result.Capabilities.FullyFunctional() {
		fmt.Println("Some capabilities are unavailable; run 'skylift test' for details.")
	}
	return nil
}
