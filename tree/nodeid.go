// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the generational-id scene tree at the core of
// Ember: a slot-arena of nodes with parent / sibling adjacency, ordered
// traversal iterators, and z-order aware child ordering. The tree owns
// structure only; all spatial and style attributes live in external
// stores keyed by [NodeId] (see the styles package).
package tree

import "fmt"

// nilIndex marks a NodeId that does not refer to any slot.
const nilIndex = ^uint32(0)

// NodeId is a generational identifier for a node in a [Tree]. It packs
// an index into the tree's slot arena together with the generation the
// slot had when the id was issued. When a slot is reused after removal,
// its generation is bumped, so a stale id never aliases the new
// occupant: it simply stops resolving.
//
// The zero NodeId is [Root], which always refers to the live tree root.
type NodeId struct {
	index      uint32
	generation uint32
}

// Root is the reserved id of the tree root. It is always live and
// can never be removed.
var Root = NodeId{}

// Nil is the id that refers to no node. Queries return it where a
// link is absent, such as the parent of the root.
var Nil = NodeId{index: nilIndex}

// NodeIdFor returns the NodeId with the given slot index and generation.
// Ids should normally come from [Tree.NewNodeId]; this is for callers
// that persist and reconstruct ids externally.
func NodeIdFor(index, generation uint32) NodeId {
	return NodeId{index: index, generation: generation}
}

// Index returns the slot index of this id.
func (id NodeId) Index() uint32 {
	return id.index
}

// Generation returns the slot generation this id was issued with.
func (id NodeId) Generation() uint32 {
	return id.generation
}

// IsNil returns whether this id is [Nil].
func (id NodeId) IsNil() bool {
	return id.index == nilIndex
}

func (id NodeId) String() string {
	if id.IsNil() {
		return "id.nil"
	}
	return fmt.Sprintf("id%d.%d", id.index, id.generation)
}
