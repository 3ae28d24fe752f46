// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package states defines the per-node state flags that drive
// pseudo-class styling.
package states

// States are the states of UI elements that are relevant for styling,
// based on [CSS pseudo-classes](https://developer.mozilla.org/en-US/docs/Web/CSS/Pseudo-classes).
type States int64

const (
	// Disabled elements cannot be interacted with or selected,
	// but do display.
	Disabled States = 1 << iota

	// Selected elements have been marked for clipboard or other
	// such actions.
	Selected

	// Active elements are currently being interacted with, such as a
	// button being pressed or an element being dragged.
	Active

	// Focused elements receive keyboard input.
	Focused

	// Checked is for check boxes, radio buttons, and similar elements.
	Checked

	// Over indicates that the pointer position currently falls within
	// the element's clipped bounds. It is a transient flag maintained
	// for every node the hover pass visits, independent of which node
	// ultimately wins the hover.
	Over

	// Hovered indicates that the element is the current hover target
	// or one of its layout ancestors: the terminal hover pseudo-state,
	// as opposed to the intermediate Over.
	Hovered
)

// HasFlag returns whether these states include the given flag.
func (st States) HasFlag(flag States) bool {
	return st&flag != 0
}

// SetFlag sets or clears the given flags and returns the result.
func (st States) SetFlag(on bool, flags States) States {
	if on {
		return st | flags
	}
	return st &^ flags
}
