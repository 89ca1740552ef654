// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

import (
	"fmt"
	"strings"
)

// RequirementsError reports unmet host requirements. It carries the
// unmet subset so the command layer can name exactly what failed
// instead of a bare "requirements not met".
type RequirementsError struct {
	// Unmet holds the failed requirements, in check order.
	Unmet []RequirementResult
}

func (e *RequirementsError) Error() string {
	names := make([]string, len(e.Unmet))
	for i, result := range e.Unmet {
		names[i] = result.Name
	}
	return "unmet requirements: " + strings.Join(names, ", ")
}

// InstallError reports a failed filesystem transition during install:
// permission denial, missing source artifact, or a write failure. Any
// partially written target has already been removed when this error
// is returned.
type InstallError struct {
	// Path is the file or directory the failure concerns.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *InstallError) Error() string {
	return fmt.Sprintf("install %s: %v", e.Path, e.Err)
}

func (e *InstallError) Unwrap() error { return e.Err }

// UninstallError reports a failed bundle removal.
type UninstallError struct {
	// Path is the bundle directory that could not be removed.
	Path string

	// Err is the underlying failure.
	Err error
}

func (e *UninstallError) Error() string {
	return fmt.Sprintf("uninstall %s: %v", e.Path, e.Err)
}

func (e *UninstallError) Unwrap() error { return e.Err }

// VerificationError reports that the host's activation mechanism
// claimed success but the live service did not confirm it: the
// handshake failed, or it answered with an empty capability set.
// Activation reports are never trusted on their own.
type VerificationError struct {
	// Reason says what the verification expected and did not get.
	Reason string

	// Err is the handshake error, when there was one.
	Err error
}

func (e *VerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load verification failed: %s: %v", e.Reason, e.Err)
	}
	return "load verification failed: " + e.Reason
}

func (e *VerificationError) Unwrap() error { return e.Err }
