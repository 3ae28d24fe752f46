// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cursors defines the standard pointer cursor icons. The scene
// core only selects a cursor; rendering it is up to the windowing layer.
package cursors

// Cursor is a pointer cursor icon, following the CSS cursor names:
// https://developer.mozilla.org/en-US/docs/Web/CSS/cursor
type Cursor int

const (
	// Arrow is the default arrow cursor.
	Arrow Cursor = iota

	// Pointer is a pointing hand, used for links and buttons.
	Pointer

	// Text is an I-beam, used over selectable text.
	Text

	// Crosshair is a thin cross, used for precise selection.
	Crosshair

	// Grab is an open hand, used over something that can be dragged.
	Grab

	// Grabbing is a closed hand, used while dragging.
	Grabbing

	// ResizeEW is a horizontal double-ended arrow, used on
	// east/west resize handles.
	ResizeEW

	// ResizeNS is a vertical double-ended arrow, used on
	// north/south resize handles.
	ResizeNS

	// NotAllowed indicates the action will not be carried out.
	NotAllowed

	// None hides the cursor.
	None
)

var cursorNames = map[Cursor]string{
	Arrow:      "default",
	Pointer:    "pointer",
	Text:       "text",
	Crosshair:  "crosshair",
	Grab:       "grab",
	Grabbing:   "grabbing",
	ResizeEW:   "ew-resize",
	ResizeNS:   "ns-resize",
	NotAllowed: "not-allowed",
	None:       "none",
}

func (c Cursor) String() string {
	if name, ok := cursorNames[c]; ok {
		return name
	}
	return "default"
}
