// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles holds the per-node spatial and style attributes that
// the scene core consumes: bounds, clip region, transform, z-index,
// pointer-events policy, ability and state flags, display mode, and
// cursor. Attributes are stored sparsely, keyed by [tree.NodeId]; every
// read has a documented default for absent entries, so layout and style
// passes only write what they need.
package styles

import (
	"github.com/emberui/ember/cursors"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/styles/abilities"
	"github.com/emberui/ember/styles/states"
	"github.com/emberui/ember/tree"
)

// Style is the attribute store. It is written by the layout and style
// passes that precede hover resolution in the frame pipeline and read
// by the hover pass; the single UI thread serializes the two.
type Style struct {
	bounds        map[tree.NodeId]math32.Box2
	clips         map[tree.NodeId]math32.Box2
	transforms    map[tree.NodeId]math32.Matrix2
	zIndex        map[tree.NodeId]int
	pointerEvents map[tree.NodeId]PointerEvents
	abilities     map[tree.NodeId]abilities.Abilities
	states        map[tree.NodeId]states.States
	display       map[tree.NodeId]Display
	textSpan      map[tree.NodeId]bool
	cursor        map[tree.NodeId]cursors.Cursor

	restyle    []tree.NodeId
	restyleSet map[tree.NodeId]struct{}
}

// NewStyle returns a new empty attribute store.
func NewStyle() *Style {
	return &Style{
		bounds:        map[tree.NodeId]math32.Box2{},
		clips:         map[tree.NodeId]math32.Box2{},
		transforms:    map[tree.NodeId]math32.Matrix2{},
		zIndex:        map[tree.NodeId]int{},
		pointerEvents: map[tree.NodeId]PointerEvents{},
		abilities:     map[tree.NodeId]abilities.Abilities{},
		states:        map[tree.NodeId]states.States{},
		display:       map[tree.NodeId]Display{},
		textSpan:      map[tree.NodeId]bool{},
		cursor:        map[tree.NodeId]cursors.Cursor{},
		restyleSet:    map[tree.NodeId]struct{}{},
	}
}

// Delete expunges every attribute stored for the given id. It must be
// called for each id freed by [tree.Tree.Remove], so that a later id
// reusing the slot starts from defaults instead of reading the removed
// node's stale attributes.
func (s *Style) Delete(id tree.NodeId) {
	delete(s.bounds, id)
	delete(s.clips, id)
	delete(s.transforms, id)
	delete(s.zIndex, id)
	delete(s.pointerEvents, id)
	delete(s.abilities, id)
	delete(s.states, id)
	delete(s.display, id)
	delete(s.textSpan, id)
	delete(s.cursor, id)
	delete(s.restyleSet, id)
}

// SetBounds sets the node's bounds rectangle, in window coordinates
// before any transforms apply. The hover pass maps the pointer through
// the inverse of the accumulated transform rather than transforming
// the bounds.
func (s *Style) SetBounds(id tree.NodeId, b math32.Box2) {
	s.bounds[id] = b
}

// Bounds returns the node's bounds rectangle. Default: the empty box,
// so a node the layout pass has not reached yet can never match a hit test.
func (s *Style) Bounds(id tree.NodeId) math32.Box2 {
	if b, ok := s.bounds[id]; ok {
		return b
	}
	return math32.B2Empty()
}

// SetClipRegion sets the node's clip rectangle.
func (s *Style) SetClipRegion(id tree.NodeId, b math32.Box2) {
	s.clips[id] = b
}

// ClipRegion returns the node's clip rectangle. Default: everything,
// meaning the node does not clip its subtree.
func (s *Style) ClipRegion(id tree.NodeId) math32.Box2 {
	if b, ok := s.clips[id]; ok {
		return b
	}
	return math32.B2Everything()
}

// SetTransform sets the node's affine transform relative to its parent.
func (s *Style) SetTransform(id tree.NodeId, m math32.Matrix2) {
	s.transforms[id] = m
}

// Transform returns the node's affine transform. Default: identity.
func (s *Style) Transform(id tree.NodeId) math32.Matrix2 {
	if m, ok := s.transforms[id]; ok {
		return m
	}
	return math32.Identity2()
}

// SetZIndex sets the node's z-index. This is the styled duplicate of
// [tree.Tree.SetZOrder]; the style cascade writes both so that draw
// ordering and hover deferral agree.
func (s *Style) SetZIndex(id tree.NodeId, z int) {
	s.zIndex[id] = z
}

// ZIndex returns the node's z-index. Default: 0.
func (s *Style) ZIndex(id tree.NodeId) int {
	return s.zIndex[id]
}

// SetPointerEvents sets the node's explicit pointer-events policy.
func (s *Style) SetPointerEvents(id tree.NodeId, pe PointerEvents) {
	s.pointerEvents[id] = pe
}

// PointerEvents returns the node's explicit pointer-events policy and
// whether one is set. Absent entries inherit the parent's resolved
// value; that resolution happens in the hover pass, which is why the
// "is set" bool is exposed rather than a default.
func (s *Style) PointerEvents(id tree.NodeId) (PointerEvents, bool) {
	pe, ok := s.pointerEvents[id]
	return pe, ok
}

// SetAbilities sets the node's ability flags.
func (s *Style) SetAbilities(id tree.NodeId, ab abilities.Abilities) {
	s.abilities[id] = ab
}

// Abilities returns the node's ability flags and whether any are set.
// A node with no entry is treated as hoverable (see [abilities.Hoverable]).
func (s *Style) Abilities(id tree.NodeId) (abilities.Abilities, bool) {
	ab, ok := s.abilities[id]
	return ab, ok
}

// State returns the node's state flags. Default: none.
func (s *Style) State(id tree.NodeId) states.States {
	return s.states[id]
}

// HasState returns whether the node has the given state flag.
func (s *Style) HasState(id tree.NodeId, flag states.States) bool {
	return s.states[id].HasFlag(flag)
}

// SetState sets or clears the given state flags on the node.
func (s *Style) SetState(id tree.NodeId, on bool, flags states.States) {
	st := s.states[id].SetFlag(on, flags)
	if st == 0 {
		delete(s.states, id)
		return
	}
	s.states[id] = st
}

// SetDisplay sets the node's display mode.
func (s *Style) SetDisplay(id tree.NodeId, d Display) {
	s.display[id] = d
}

// Display returns the node's display mode. Default: [DisplayNormal].
func (s *Style) Display(id tree.NodeId) Display {
	return s.display[id]
}

// SetTextSpan marks the node as a text span: a run of text managed by
// its parent's text layout. Text spans are hit-testable even though
// they carry [DisplayNone].
func (s *Style) SetTextSpan(id tree.NodeId, span bool) {
	if !span {
		delete(s.textSpan, id)
		return
	}
	s.textSpan[id] = true
}

// TextSpan returns whether the node is a text span. Default: false.
func (s *Style) TextSpan(id tree.NodeId) bool {
	return s.textSpan[id]
}

// SetCursor sets the cursor icon declared for the node.
func (s *Style) SetCursor(id tree.NodeId, c cursors.Cursor) {
	s.cursor[id] = c
}

// Cursor returns the cursor icon declared for the node.
// Default: [cursors.Arrow].
func (s *Style) Cursor(id tree.NodeId) cursors.Cursor {
	return s.cursor[id]
}

// NeedsRestyle marks the node as needing style recomputation. Marks
// are deduplicated and kept in insertion order.
func (s *Style) NeedsRestyle(id tree.NodeId) {
	if _, ok := s.restyleSet[id]; ok {
		return
	}
	s.restyleSet[id] = struct{}{}
	s.restyle = append(s.restyle, id)
}

// RestyleNeeded returns whether the node is marked as needing style
// recomputation.
func (s *Style) RestyleNeeded(id tree.NodeId) bool {
	_, ok := s.restyleSet[id]
	return ok
}

// DrainRestyle returns the nodes marked as needing style recomputation,
// in mark order, and clears the marks. The style pass calls this once
// per frame.
func (s *Style) DrainRestyle() []tree.NodeId {
	ids := s.restyle
	s.restyle = nil
	s.restyleSet = map[tree.NodeId]struct{}{}
	return ids
}
