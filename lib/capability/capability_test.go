// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package capability

import (
	"math/bits"
	"testing"
)

func TestDecodeEncodeLossless(t *testing.T) {
	// Every combination of the seven defined bits must survive a
	// round trip, and Count must equal the popcount.
	for mask := uint32(0); mask <= MaskAll; mask++ {
		set := Decode(mask)
		if got := set.Encode(); got != mask {
			t.Fatalf("Decode(0x%02X).Encode() = 0x%02X", mask, got)
		}
		if got, want := set.Count(), bits.OnesCount32(mask); got != want {
			t.Fatalf("Decode(0x%02X).Count() = %d, want %d", mask, got, want)
		}
	}
}

func TestUnknownBitsPreserved(t *testing.T) {
	// Bits above the defined flags come from a newer service build.
	// They must round-trip through Encode but never affect Count.
	const mask = 0x80000000 | 0x100 | uint32(AddSpace)

	set := Decode(mask)
	if got := set.Encode(); got != mask {
		t.Errorf("Encode() = 0x%08X, want 0x%08X", got, mask)
	}
	if got := set.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1 (unknown bits must not count)", got)
	}
	if set.FullyFunctional() {
		t.Error("FullyFunctional() = true with only add-space set")
	}
}

func TestHas(t *testing.T) {
	set := Decode(uint32(DockSpaces) | uint32(AnimationTime))

	if !set.Has(DockSpaces) {
		t.Error("Has(DockSpaces) = false")
	}
	if !set.Has(AnimationTime) {
		t.Error("Has(AnimationTime) = false")
	}
	if set.Has(SetWindow) {
		t.Error("Has(SetWindow) = true for a set without it")
	}
}

func TestZeroSetIsValid(t *testing.T) {
	// A degraded service advertises no capabilities at all. The empty
	// set is a legitimate value, not an error.
	var set Set
	if set.Count() != 0 {
		t.Errorf("zero Set Count() = %d", set.Count())
	}
	if set.FullyFunctional() {
		t.Error("zero Set reports fully functional")
	}
	if got := set.String(); got != "(none)" {
		t.Errorf("zero Set String() = %q", got)
	}
	if list := set.List(); len(list) != 0 {
		t.Errorf("zero Set List() = %v", list)
	}
}

func TestFullyFunctional(t *testing.T) {
	set := Decode(MaskAll)
	if !set.FullyFunctional() {
		t.Error("FullyFunctional() = false for MaskAll")
	}
	if got := set.Count(); got != len(All) {
		t.Errorf("Count() = %d, want %d", got, len(All))
	}
	if got := len(set.List()); got != len(All) {
		t.Errorf("List() has %d entries, want %d", got, len(All))
	}
}

func TestCapabilityString(t *testing.T) {
	tests := []struct {
		capability Capability
		want       string
	}{
		{DockSpaces, "dock-spaces"},
		{DesktopPictureManager, "desktop-picture-manager"},
		{AddSpace, "add-space"},
		{RemoveSpace, "remove-space"},
		{MoveSpace, "move-space"},
		{SetWindow, "set-window"},
		{AnimationTime, "animation-time"},
		{Capability(0x100), "capability(0x100)"},
	}
	for _, test := range tests {
		if got := test.capability.String(); got != test.want {
			t.Errorf("Capability(0x%02X).String() = %q, want %q",
				uint32(test.capability), got, test.want)
		}
	}
}

func TestSetString(t *testing.T) {
	set := Decode(uint32(DockSpaces) | uint32(SetWindow) | 0x200)
	want := "dock-spaces,set-window,unknown(0x200)"
	if got := set.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
