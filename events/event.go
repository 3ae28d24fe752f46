// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"

	"github.com/emberui/ember/cursors"
	"github.com/emberui/ember/tree"
)

// Event is a single event delivered through a [Queue]. The dispatch
// layer routes it to the target node's listeners and, if Bubbles is
// set, to each layout ancestor's listeners in turn.
type Event struct {
	// Type is the event type.
	Type Types

	// Target is the node the event is directed at. It is [tree.Nil]
	// for window-level events such as [SetCursor].
	Target tree.NodeId

	// Bubbles indicates that the event propagates from the target
	// through its layout ancestors.
	Bubbles bool

	// Cursor is the requested cursor icon for [SetCursor] events.
	Cursor cursors.Cursor
}

// Direct returns a non-bubbling event of the given type directed at the
// given node.
func Direct(tp Types, target tree.NodeId) Event {
	return Event{Type: tp, Target: target}
}

// Bubble returns a bubbling event of the given type targeted at the
// given node.
func Bubble(tp Types, target tree.NodeId) Event {
	return Event{Type: tp, Target: target, Bubbles: true}
}

// CursorChange returns a [SetCursor] event requesting the given cursor icon.
func CursorChange(c cursors.Cursor) Event {
	return Event{Type: SetCursor, Target: tree.Nil, Cursor: c}
}

func (e Event) String() string {
	if e.Type == SetCursor {
		return fmt.Sprintf("%v(%v)", e.Type, e.Cursor)
	}
	return fmt.Sprintf("%v(%v)", e.Type, e.Target)
}
