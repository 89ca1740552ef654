// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package hostenv

import (
	"context"
	"strings"
	"testing"
)

func TestCsrutilPermitsInjection(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   bool
	}{
		{
			name:   "fully disabled",
			output: "System Integrity Protection status: disabled.\n",
			want:   true,
		},
		{
			name:   "fully enabled",
			output: "System Integrity Protection status: enabled.\n",
			want:   false,
		},
		{
			name: "custom with both restrictions lifted",
			output: "System Integrity Protection status: unknown (Custom Configuration).\n" +
				"\nConfiguration:\n" +
				"\tApple Internal: disabled\n" +
				"\tKext Signing: enabled\n" +
				"\tFilesystem Protections: disabled\n" +
				"\tDebugging Restrictions: disabled\n" +
				"\tNVRAM Protections: enabled\n",
			want: true,
		},
		{
			name: "custom with only filesystem lifted",
			output: "System Integrity Protection status: unknown (Custom Configuration).\n" +
				"\tFilesystem Protections: disabled\n" +
				"\tDebugging Restrictions: enabled\n",
			want: false,
		},
		{
			name:   "garbage",
			output: "csrutil: command not found",
			want:   false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := csrutilPermitsInjection(test.output); got != test.want {
				t.Errorf("csrutilPermitsInjection(%q) = %v, want %v", test.output, got, test.want)
			}
		})
	}
}

func TestRequirementsIncludeRootFirst(t *testing.T) {
	requirements := Requirements()
	if len(requirements) < 2 {
		t.Fatalf("got %d requirements, want at least 2", len(requirements))
	}
	if requirements[0].Name != "root-user" {
		t.Errorf("first requirement = %q, want root-user", requirements[0].Name)
	}
	if requirements[1].Name != "security-posture" {
		t.Errorf("second requirement = %q, want security-posture", requirements[1].Name)
	}
	for _, requirement := range requirements {
		if requirement.Probe == nil || requirement.Detail == "" {
			t.Errorf("requirement %q missing probe or detail", requirement.Name)
		}
	}
}

func TestCommandActivatorRunsCommand(t *testing.T) {
	activate := CommandActivator([]string{"true"})
	if err := activate(context.Background()); err != nil {
		t.Fatalf("activator: %v", err)
	}
}

func TestCommandActivatorReportsFailure(t *testing.T) {
	activate := CommandActivator([]string{"false"})
	if err := activate(context.Background()); err == nil {
		t.Fatal("failing command reported success")
	}
}

func TestCommandActivatorEmpty(t *testing.T) {
	activate := CommandActivator(nil)
	err := activate(context.Background())
	if err == nil || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("got %v, want empty-command error", err)
	}
}
