// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
)

func installCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "install",
		Summary: "install the scripting-addition bundle",
		Description: "Install unpacks the bundle archive into the ScriptingAdditions\n" +
			"directory. Idempotent: an installed bundle that already matches the\n" +
			"archive is left untouched. The filesystem transition is atomic —\n" +
			"a crash mid-install never leaves a half-written bundle behind.",
		Usage: "skylift install [flags]",
		Examples: []cli.Example{
			{Description: "Install using the bundled artifact", Command: "sudo skylift install"},
		},
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("install", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runInstall(params)
		},
	}
}

func runInstall(params *commonParams) error {
	manager, logger, err := params.buildManager(true)
	if err != nil {
		return err
	}

	if err := manager.Install(context.Background()); err != nil {
		return err
	}
	logger.Info("scripting addition installed", "state", manager.BelievedState().String())

	if params.jsonOutput {
		return cli.WriteJSON(struct {
			Installed bool   `json:"installed"`
			State     string `json:"state"`
		}{true, manager.BelievedState().String()})
	}
	fmt.Println("Scripting addition installed. Run 'skylift load' to activate it.")
	return nil
}
