// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package hostenv

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/skylift-dev/skylift/lib/lifecycle"
)

// CommandActivator returns an Activator that runs the configured
// activation command, the host mechanism that injects the installed
// bundle into the window-server process. The command's exit status is
// only the host's claim of success; lifecycle.Load verifies with a
// handshake regardless.
func CommandActivator(argv []string) lifecycle.Activator {
	return func(ctx context.Context) error {
		if len(argv) == 0 {
			return fmt.Errorf("activation command is empty")
		}
		command := exec.CommandContext(ctx, argv[0], argv[1:]...)
		output, err := command.CombinedOutput()
		if err != nil {
			return fmt.Errorf("running %s: %w (output: %s)", argv[0], err, string(output))
		}
		return nil
	}
}
