// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"
	"os"
	"strings"
)

// CheckStatus is the outcome of a single checklist line.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusFail CheckStatus = "fail"
	StatusWarn CheckStatus = "warn"
)

// CheckResult is one line of a checklist report: a requirement, a
// capability, or a status sub-check.
type CheckResult struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// Pass creates a passing check result.
func Pass(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing check result.
func Fail(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning check result. Warnings do not cause a
// non-zero exit.
func Warn(name, message string) CheckResult {
	return CheckResult{Name: name, Status: StatusWarn, Message: message}
}

// PrintChecklist prints check results as a human-readable checklist
// and returns an *ExitError with code 1 when any check failed, so the
// caller can return it directly.
func PrintChecklist(results []CheckResult, failureHint string) error {
	anyFailed := false
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(os.Stdout, "[%-5s]  %-28s  %s\n", prefix, result.Name, result.Message)
		if result.Status == StatusFail {
			anyFailed = true
		}
	}

	fmt.Fprintln(os.Stdout)
	if anyFailed {
		fmt.Fprintln(os.Stdout, "Some checks failed.")
		if failureHint != "" {
			fmt.Fprintln(os.Stdout, failureHint)
		}
		return &ExitError{Code: 1}
	}
	fmt.Fprintln(os.Stdout, "All checks passed.")
	return nil
}
