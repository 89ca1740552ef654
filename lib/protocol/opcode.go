// Copyright 2026 The Skylift Authors
// SPDX-License-Identifier: Apache-2.0

package protocol

import "fmt"

// Opcode identifies a request kind. Opcodes share one namespace and
// are protocol constants: stable across versions, never reassigned,
// only appended. Reordering or reusing a code breaks wire
// compatibility with every deployed service build.
type Opcode byte

const (
	OpHandshake Opcode = 0x01

	OpSpaceFocus   Opcode = 0x02
	OpSpaceCreate  Opcode = 0x03
	OpSpaceDestroy Opcode = 0x04
	OpSpaceMove    Opcode = 0x05

	OpWindowMove         Opcode = 0x06
	OpWindowOpacity      Opcode = 0x07
	OpWindowOpacityFade  Opcode = 0x08
	OpWindowLayer        Opcode = 0x09
	OpWindowSticky       Opcode = 0x0A
	OpWindowShadow       Opcode = 0x0B
	OpWindowFocus        Opcode = 0x0C
	OpWindowScale        Opcode = 0x0D
	OpWindowSwapProxyIn  Opcode = 0x0E
	OpWindowSwapProxyOut Opcode = 0x0F
	OpWindowOrder        Opcode = 0x10
	OpWindowOrderIn      Opcode = 0x11
	OpWindowListToSpace  Opcode = 0x12
	OpWindowToSpace      Opcode = 0x13
	OpWindowResize       Opcode = 0x14
	OpWindowSetFrame     Opcode = 0x15
	OpWindowGetOpacity   Opcode = 0x16
	OpWindowGetFrame     Opcode = 0x17
	OpWindowIsSticky     Opcode = 0x18
	OpWindowGetLayer     Opcode = 0x19
	OpWindowMinimize     Opcode = 0x1A
	OpWindowUnminimize   Opcode = 0x1B
	OpWindowIsMinimized  Opcode = 0x1C

	OpDisplayGetCount Opcode = 0x1D
	OpDisplayGetList  Opcode = 0x1E
)

var opcodeNames = map[Opcode]string{
	OpHandshake:          "handshake",
	OpSpaceFocus:         "space-focus",
	OpSpaceCreate:        "space-create",
	OpSpaceDestroy:       "space-destroy",
	OpSpaceMove:          "space-move",
	OpWindowMove:         "window-move",
	OpWindowOpacity:      "window-opacity",
	OpWindowOpacityFade:  "window-opacity-fade",
	OpWindowLayer:        "window-layer",
	OpWindowSticky:       "window-sticky",
	OpWindowShadow:       "window-shadow",
	OpWindowFocus:        "window-focus",
	OpWindowScale:        "window-scale",
	OpWindowSwapProxyIn:  "window-swap-proxy-in",
	OpWindowSwapProxyOut: "window-swap-proxy-out",
	OpWindowOrder:        "window-order",
	OpWindowOrderIn:      "window-order-in",
	OpWindowListToSpace:  "window-list-to-space",
	OpWindowToSpace:      "window-to-space",
	OpWindowResize:       "window-resize",
	OpWindowSetFrame:     "window-set-frame",
	OpWindowGetOpacity:   "window-get-opacity",
	OpWindowGetFrame:     "window-get-frame",
	OpWindowIsSticky:     "window-is-sticky",
	OpWindowGetLayer:     "window-get-layer",
	OpWindowMinimize:     "window-minimize",
	OpWindowUnminimize:   "window-unminimize",
	OpWindowIsMinimized:  "window-is-minimized",
	OpDisplayGetCount:    "display-get-count",
	OpDisplayGetList:     "display-get-list",
}

// String returns the opcode's wire name, or a hex rendering for codes
// appended after this build. The fallback keeps logs readable against
// a newer service without this client knowing the new names.
func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("opcode(0x%02X)", byte(op))
}

// Known reports whether this build has a name for the opcode. Unknown
// opcodes still frame and transmit normally; Known only affects
// rendering and diagnostics.
func (op Opcode) Known() bool {
	_, ok := opcodeNames[op]
	return ok
}
