// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands defines the skylift command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/skylift-dev/skylift/cmd/skylift/cli"
	"github.com/skylift-dev/skylift/lib/client"
	"github.com/skylift-dev/skylift/lib/config"
	"github.com/skylift-dev/skylift/lib/hostenv"
	"github.com/skylift-dev/skylift/lib/lifecycle"
)

// Root returns the skylift command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "skylift",
		Summary: "manage the skylift scripting addition for the macOS window server",
		Description: "Skylift installs, loads, and talks to the scripting addition that\n" +
			"performs space and window manipulations inside the window-server\n" +
			"process. Lifecycle state is always derived live: the filesystem says\n" +
			"whether the bundle is installed, a handshake says whether the service\n" +
			"is actually loaded, and no report trusts one signal without the other.",
		Subcommands: []*cli.Command{
			checkCommand(),
			installCommand(),
			loadCommand(),
			uninstallCommand(),
			statusCommand(),
			testCommand(),
			bundleCommand(),
			versionCommand(),
		},
	}
}

// commonParams are the flags shared by every lifecycle command.
type commonParams struct {
	configPath string
	socketPath string
	verbose    bool
	jsonOutput bool
}

// bind registers the shared flags on a command's flag set.
func (p *commonParams) bind(flags *pflag.FlagSet) {
	flags.StringVar(&p.configPath, "config", "", "path to the skylift config file (overrides SKYLIFT_CONFIG)")
	flags.StringVar(&p.socketPath, "socket", "", "scripting addition socket path (overrides config)")
	flags.BoolVarP(&p.verbose, "verbose", "v", false, "enable debug logging")
	flags.BoolVar(&p.jsonOutput, "json", false, "output as JSON")
}

// loadConfig resolves the configuration: explicit --config flag, then
// SKYLIFT_CONFIG, then defaults; --socket overrides the resolved
// socket path.
func (p *commonParams) loadConfig() (*config.Config, error) {
	var configuration *config.Config
	var err error
	if p.configPath != "" {
		configuration, err = config.LoadFile(p.configPath)
	} else {
		configuration, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if p.socketPath != "" {
		configuration.SocketPath = p.socketPath
	}
	return configuration, nil
}

// buildManager assembles the lifecycle manager from configuration.
// needArtifact is true for commands that unpack the bundle archive
// (install, load); resolving the artifact for read-only commands
// would make "status" fail on a machine with no artifact present.
func (p *commonParams) buildManager(needArtifact bool) (*lifecycle.Manager, *slog.Logger, error) {
	configuration, err := p.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	connectTimeout, ioTimeout, err := configuration.Timeouts()
	if err != nil {
		return nil, nil, err
	}

	logger := cli.NewLogger(p.verbose)

	artifactPath := ""
	if needArtifact {
		artifactPath, err = configuration.ResolveArtifactPath()
		if err != nil {
			return nil, nil, err
		}
	}

	var activate lifecycle.Activator
	if len(configuration.ActivationCommand) > 0 {
		activate = hostenv.CommandActivator(configuration.ActivationCommand)
	}

	manager := lifecycle.New(lifecycle.Options{
		Client: client.New(client.Options{
			SocketPath:     configuration.SocketPath,
			Logger:         logger,
			ConnectTimeout: connectTimeout,
			IOTimeout:      ioTimeout,
		}),
		InstallDir:   configuration.InstallDir,
		BundleName:   configuration.BundleName,
		ArtifactPath: artifactPath,
		Requirements: hostenv.Requirements(),
		Activate:     activate,
		Logger:       logger,
	})
	return manager, logger, nil
}

// requirementChecklist renders requirement results as checklist lines.
func requirementChecklist(results []lifecycle.RequirementResult) []cli.CheckResult {
	checklist := make([]cli.CheckResult, len(results))
	for i, result := range results {
		if result.Satisfied {
			checklist[i] = cli.Pass(result.Name, "ok")
		} else {
			checklist[i] = cli.Fail(result.Name, result.Detail)
		}
	}
	return checklist
}

// capabilityCount renders "n/7" for capability summaries.
func capabilityCount(count, total int) string {
	return fmt.Sprintf("%d/%d capabilities", count, total)
}
