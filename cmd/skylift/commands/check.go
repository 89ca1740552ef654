// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
	"github.com/skylift-dev/skylift/lib/lifecycle"
)

func checkCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "check",
		Summary: "verify the host requirements for loading the scripting addition",
		Description: "Check evaluates every host requirement — root privileges, System\n" +
			"Integrity Protection posture, and on Apple silicon the\n" +
			"-arm64e_preview_abi boot-arg — and reports each one individually.\n" +
			"Nothing is modified.",
		Usage: "skylift check [flags]",
		Examples: []cli.Example{
			{Description: "Check this machine before a first install", Command: "sudo skylift check"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runCheck(params)
		},
	}
}

func runCheck(params *commonParams) error {
	manager, _, err := params.buildManager(false)
	if err != nil {
		return err
	}

	// The error restates what the results carry; rendering works
	// from the full result list either way.
	results, _ := manager.Check()

	if params.jsonOutput {
		ok := true
		for _, result := range results {
			ok = ok && result.Satisfied
		}
		if err := cli.WriteJSON(struct {
			Requirements []lifecycle.RequirementResult `json:"requirements"`
			OK           bool                          `json:"ok"`
		}{results, ok}); err != nil {
			return err
		}
		if !ok {
			return &cli.ExitError{Code: 1}
		}
		return nil
	}

	return cli.PrintChecklist(requirementChecklist(results), "")
}
