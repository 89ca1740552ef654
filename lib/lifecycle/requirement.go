// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package lifecycle

// Requirement is one host precondition for installing and loading the
// scripting addition. Probes are injected (lib/hostenv supplies the
// production set) so the state machine tests without a macOS host.
type Requirement struct {
	// Name is the short identifier used in reports, e.g.
	// "root-user".
	Name string

	// Detail says what must be true and how to get there; rendered
	// when the requirement fails.
	Detail string

	// Probe reports whether the requirement is currently met. Must
	// be side-effect free.
	Probe func() bool
}

// RequirementResult is one evaluated requirement.
type RequirementResult struct {
	// Name identifies the requirement.
	Name string `json:"name"`

	// Satisfied reports whether the probe passed.
	Satisfied bool `json:"satisfied"`

	// Detail carries the requirement's description for rendering
	// failures.
	Detail string `json:"detail,omitempty"`
}

// Check evaluates every requirement probe and returns the structured
// results. When any requirement is unmet the error is a
// *RequirementsError carrying exactly the unmet subset; the full
// result list is returned either way so callers can render the
// passing checks too. No side effects.
func (m *Manager) Check() ([]RequirementResult, error) {
	results := make([]RequirementResult, len(m.requirements))
	var unmet []RequirementResult

	for i, requirement := range m.requirements {
		satisfied := requirement.Probe()
		results[i] = RequirementResult{
			Name:      requirement.Name,
			Satisfied: satisfied,
			Detail:    requirement.Detail,
		}
		if !satisfied {
			unmet = append(unmet, results[i])
		}
	}

	if len(unmet) > 0 {
		return results, &RequirementsError{Unmet: unmet}
	}
	return results, nil
}
