// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"fmt"
	"math/bits"
	"strings"
)

// Capability is a single optional feature flag. Each capability
// occupies one bit in the wire bitmask. The bit assignments are
// protocol constants — changing them breaks handshake compatibility
// with every deployed service build.
type Capability uint32

const (
	// DockSpaces indicates the addition can resolve the window
	// server's per-display space lists.
	DockSpaces Capability = 0x01

	// DesktopPictureManager indicates access to the desktop picture
	// manager, required for space creation on newer macOS builds.
	DesktopPictureManager Capability = 0x02

	// AddSpace indicates the addition can create spaces.
	AddSpace Capability = 0x04

	// RemoveSpace indicates the addition can destroy spaces.
	RemoveSpace Capability = 0x08

	// MoveSpace indicates the addition can reorder spaces.
	MoveSpace Capability = 0x10

	// SetWindow indicates the addition can manipulate window
	// properties (frame, opacity, layer, sticky, shadow).
	SetWindow Capability = 0x20

	// AnimationTime indicates the addition can override the window
	// server's animation duration.
	AnimationTime Capability = 0x40
)

// All lists the defined capabilities in ascending bit order. The
// length of this slice is the capability count a fully functional
// service reports.
var All = []Capability{
	DockSpaces,
	DesktopPictureManager,
	AddSpace,
	RemoveSpace,
	MoveSpace,
	SetWindow,
	AnimationTime,
}

// MaskAll is the bitmask with every defined capability set.
const MaskAll uint32 = 0x7F

// String returns the canonical flag name used in CLI output and logs.
func (c Capability) String() string {
	switch c {
	case DockSpaces:
		return "dock-spaces"
	case DesktopPictureManager:
		return "desktop-picture-manager"
	case AddSpace:
		return "add-space"
	case RemoveSpace:
		return "remove-space"
	case MoveSpace:
		return "move-space"
	case SetWindow:
		return "set-window"
	case AnimationTime:
		return "animation-time"
	default:
		return fmt.Sprintf("capability(0x%02X)", uint32(c))
	}
}

// Set is a capability bitmask as advertised by the service. The zero
// value is the empty set. Bits beyond the defined flags are preserved
// verbatim through Decode/Encode so a newer service's mask survives a
// round trip through an older client.
type Set struct {
	bits uint32
}

// Decode interprets a wire bitmask as a Set.
func Decode(mask uint32) Set {
	return Set{bits: mask}
}

// Encode returns the wire bitmask, including any unknown bits the Set
// was decoded with.
func (s Set) Encode() uint32 {
	return s.bits
}

// Has reports whether the given capability flag is set.
func (s Set) Has(c Capability) bool {
	return s.bits&uint32(c) != 0
}

// Count returns the number of defined capabilities present. Unknown
// bits do not contribute: a count of 7 from a future service means
// the same thing it means from a current one.
func (s Set) Count() int {
	return bits.OnesCount32(s.bits & MaskAll)
}

// List returns the defined capabilities present, in ascending bit
// order. Unknown bits are not listed; use Encode to inspect them.
func (s Set) List() []Capability {
	var present []Capability
	for _, c := range All {
		if s.Has(c) {
			present = append(present, c)
		}
	}
	return present
}

// FullyFunctional reports whether every defined capability is
// available. Builds on older macOS versions may legitimately report
// fewer; callers use this to distinguish "working" from "working with
// gaps".
func (s Set) FullyFunctional() bool {
	return s.Count() == len(All)
}

// String renders the set as a comma-separated flag list, or "(none)"
// for the empty set. Unknown bits are appended as one hex remainder so
// they are visible in logs without being named.
func (s Set) String() string {
	names := make([]string, 0, len(All)+1)
	for _, c := range s.List() {
		names = append(names, c.String())
	}
	if unknown := s.bits &^ MaskAll; unknown != 0 {
		names = append(names, fmt.Sprintf("unknown(0x%X)", unknown))
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ",")
}
