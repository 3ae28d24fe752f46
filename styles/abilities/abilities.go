// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abilities defines the per-node ability flags that gate which
// states an element can take on.
package abilities

// Abilities represent abilities of UI elements to take on different
// states, and are aligned with the states flags. They correspond to
// some of the global attributes in CSS:
// https://developer.mozilla.org/en-US/docs/Web/HTML/Global_attributes
type Abilities int64

const (
	// Selectable means it can be Selected.
	Selectable Abilities = 1 << iota

	// Activatable means it can be made Active by pressing down on it,
	// which gives it a visible state layer color change.
	Activatable

	// DoubleClickable indicates that an element does something different
	// when it is clicked on twice in a row.
	DoubleClickable

	// Draggable means it can be Dragged.
	Draggable

	// Droppable means it can receive drag enter, leave, and drop events.
	Droppable

	// Slideable means it has a slider element that can be dragged
	// to change value.
	Slideable

	// Checkable means it can be Checked.
	Checkable

	// Scrollable means it can be Scrolled.
	Scrollable

	// Focusable means it can be Focused: capable of receiving and
	// processing key events directly.
	Focusable

	// Hoverable means it can be Hovered: the hover pass considers it
	// and its descendants when resolving the pointer target. A node
	// with no abilities entry in the style store is treated as
	// Hoverable by default; clearing Hoverable removes the whole
	// subtree from hit testing.
	Hoverable
)

// HasFlag returns whether these abilities include the given flag.
func (ab Abilities) HasFlag(flag Abilities) bool {
	return ab&flag != 0
}

// SetFlag sets or clears the given flags and returns the result.
func (ab Abilities) SetFlag(on bool, flags Abilities) Abilities {
	if on {
		return ab | flags
	}
	return ab &^ flags
}

// IsPressable returns whether an element is Selectable, Activatable,
// DoubleClickable, Draggable, Slideable, or Checkable.
func (ab Abilities) IsPressable() bool {
	return ab.HasFlag(Selectable | Activatable | DoubleClickable | Draggable | Slideable | Checkable)
}
