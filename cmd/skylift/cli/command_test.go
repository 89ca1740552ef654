// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "skylift",
		Subcommands: []*Command{
			{
				Name: "status",
				Run: func(args []string) error {
					called = "status"
					return nil
				},
			},
			{
				Name: "install",
				Run: func(args []string) error {
					called = "install"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"install"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "install" {
		t.Errorf("dispatched to %q, want %q", called, "install")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var called string
	var receivedArgs []string

	root := &Command{
		Name: "skylift",
		Subcommands: []*Command{
			{
				Name: "bundle",
				Subcommands: []*Command{
					{
						Name: "pack",
						Run: func(args []string) error {
							called = "bundle pack"
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute([]string{"bundle", "pack", "sa/bundle.jsonc"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "bundle pack" {
		t.Errorf("dispatched to %q, want %q", called, "bundle pack")
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "sa/bundle.jsonc" {
		t.Errorf("args = %v, want [sa/bundle.jsonc]", receivedArgs)
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var socketPath string
	var target string

	command := &Command{
		Name: "test",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flagSet.StringVar(&socketPath, "socket", "/default.socket", "socket path")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				target = args[0]
			}
			return nil
		},
	}

	if err := command.Execute([]string{"--socket", "/custom.socket", "add-space"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if socketPath != "/custom.socket" {
		t.Errorf("socketPath = %q, want %q", socketPath, "/custom.socket")
	}
	if target != "add-space" {
		t.Errorf("target = %q, want %q", target, "add-space")
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "skylift",
		Subcommands: []*Command{
			{Name: "install", Run: func(args []string) error { return nil }},
			{Name: "uninstall", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"instal"})
	if err == nil {
		t.Fatal("Execute() should fail for unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "install"`) {
		t.Errorf("error should suggest install, got: %v", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "status",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("status", pflag.ContinueOnError)
			flagSet.Bool("json", false, "output as JSON")
			flagSet.String("socket", "/default.socket", "socket path")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--jsno"})
	if err == nil {
		t.Fatal("Execute() should fail for unknown flag")
	}
	if !strings.Contains(err.Error(), "--json") {
		t.Errorf("error should suggest --json, got: %v", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name: "skylift",
		Subcommands: []*Command{
			{Name: "status", Run: func(args []string) error { return nil }},
		},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("Execute() with no args should require a subcommand")
	}
}
