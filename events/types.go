// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the pointer transition events produced by the
// hover pass and the queue they are delivered through. The standard
// [JavaScript events](https://developer.mozilla.org/en-US/docs/Web/Events)
// provide the basis for the event type names and semantics.
package events

// Types determines the type of event. Enter/Leave are directed at a
// single node; Over/Out bubble from the target through its layout
// ancestors, mirroring the mouseenter/mouseleave vs. mouseover/mouseout
// distinction in the DOM.
type Types int

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// MouseEnter is sent directly to the new hover target when the
	// hover changes. It does not bubble: entering a child does not
	// re-enter its ancestors.
	MouseEnter

	// MouseLeave is sent directly to the previous hover target when
	// the hover changes. It does not bubble.
	MouseLeave

	// MouseOver is sent to the new hover target and bubbles through
	// its layout ancestors.
	MouseOver

	// MouseOut is sent to the previous hover target and bubbles
	// through its layout ancestors.
	MouseOut

	// SetCursor asks the windowing layer to change the cursor icon to
	// the one declared by the new hover target. It is not sent while
	// the cursor is locked by an ongoing interaction such as a drag.
	SetCursor
)

var typeNames = map[Types]string{
	UnknownType: "unknown",
	MouseEnter:  "mouse-enter",
	MouseLeave:  "mouse-leave",
	MouseOver:   "mouse-over",
	MouseOut:    "mouse-out",
	SetCursor:   "set-cursor",
}

func (tp Types) String() string {
	if name, ok := typeNames[tp]; ok {
		return name
	}
	return "unknown"
}
