// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// PointerEvents controls whether a node can be the target of pointer
// hit testing, as in the CSS pointer-events property:
// https://developer.mozilla.org/en-US/docs/Web/CSS/pointer-events
//
// Unlike most style attributes, the effective value is inherited: a
// node with no explicit entry uses its parent's resolved value, so
// disabling pointer events on a container disables its whole subtree
// unless a descendant explicitly overrides it.
type PointerEvents int

const (
	// Auto means the node is a pointer target. This is the default.
	Auto PointerEvents = iota

	// NoPointerEvents means the node is never a pointer target,
	// although its subtree is still walked so that descendants can
	// override the inherited value.
	NoPointerEvents
)

func (pe PointerEvents) String() string {
	if pe == NoPointerEvents {
		return "none"
	}
	return "auto"
}

// Display controls whether a node is displayed at all, as in the CSS
// display property restricted to the cases the scene core cares about.
type Display int

const (
	// DisplayNormal means the node displays normally. This is the default.
	DisplayNormal Display = iota

	// DisplayNone means the node does not display and is skipped by
	// hit testing, with the exception of text span nodes, which carry
	// DisplayNone while remaining hit-testable.
	DisplayNone
)

func (d Display) String() string {
	if d == DisplayNone {
		return "none"
	}
	return "normal"
}
