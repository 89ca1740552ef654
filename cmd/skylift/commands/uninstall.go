// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
)

func uninstallCommand() *cli.Command {
	params := &commonParams{}
	return &cli.Command{
		Name:    "uninstall",
		Summary: "remove the installed scripting-addition bundle",
		Description: "Uninstall removes the bundle from the ScriptingAdditions directory.\n" +
			"Removing the bundle cannot unload an already-activated instance from\n" +
			"the window-server process — there is no unload operation in the\n" +
			"protocol. When a loaded instance survives, uninstall says so; it\n" +
			"persists until the window server restarts.",
		Usage: "skylift uninstall [flags]",
		Flags: func() *pflag.FlagSet {
			flags := pflag.NewFlagSet("uninstall", pflag.ContinueOnError)
			params.bind(flags)
			return flags
		},
		Run: func(args []string) error {
			return runUninstall(params)
		},
	}
}

func runUninstall(params *commonParams) error {
	manager, logger, err := params.buildManager(false)
	if err != nil {
		return err
	}

	outcome, err := manager.Uninstall(context.Background())
	if err != nil {
		return err
	}
	logger.Info("uninstall finished",
		"removed", outcome.Removed,
		"stale_instance", outcome.StaleInstanceLoaded)

	if params.jsonOutput {
		return cli.WriteJSON(outcome)
	}

	if outcome.Removed {
		fmt.Println("Scripting addition uninstalled.")
	} else {
		fmt.Println("Scripting addition is not installed; nothing to do.")
	}
	if outcome.StaleInstanceLoaded {
		fmt.Println("A previously loaded instance is still active in the window server" +
			" and will persist until the window server restarts.")
	}
	return nil
}
