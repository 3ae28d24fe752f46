// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "fmt"

// Tree holds the structural links of the scene: parent, first child,
// and sibling adjacency for every live node, stored in parallel slices
// indexed by [NodeId] slot index, plus a free-list of reusable slots.
//
// The tree exclusively owns structure. Z-order is carried here because
// it determines draw and hit-test child ordering, but it never alters
// the sibling links themselves. A single writer (the UI thread) must
// serialize mutations with traversals; iterators borrow the tree live
// and are invalidated by structural changes.
type Tree struct {
	parent      []NodeId
	firstChild  []NodeId
	nextSibling []NodeId
	prevSibling []NodeId
	zOrder      []int
	ignored     []bool
	live        []bool
	generations []uint32
	freelist    []uint32
	free        []bool
}

// NewTree returns a new [Tree] containing only the live root node.
func NewTree() *Tree {
	t := &Tree{}
	t.grow(0)
	t.live[0] = true
	return t
}

// grow ensures slot storage exists for the given index, filling new
// adjacency entries with [Nil].
func (t *Tree) grow(index uint32) {
	for uint32(len(t.parent)) <= index {
		t.parent = append(t.parent, Nil)
		t.firstChild = append(t.firstChild, Nil)
		t.nextSibling = append(t.nextSibling, Nil)
		t.prevSibling = append(t.prevSibling, Nil)
		t.zOrder = append(t.zOrder, 0)
		t.ignored = append(t.ignored, false)
		t.live = append(t.live, false)
		t.generations = append(t.generations, 0)
		t.free = append(t.free, false)
	}
}

// NewNodeId allocates an id for a new node, reusing a freed slot if one
// is available (with its generation already bumped past every id issued
// for the previous occupant) and appending a fresh slot otherwise. The
// node is not part of the tree until [Tree.Add] is called with the id.
func (t *Tree) NewNodeId() NodeId {
	// Slots can leave the free-list out of order when a caller adds a
	// reconstructed id directly, so entries are checked before reuse.
	for n := len(t.freelist); n > 0; n = len(t.freelist) {
		index := t.freelist[n-1]
		t.freelist = t.freelist[:n-1]
		if !t.free[index] {
			continue
		}
		t.free[index] = false
		return NodeId{index: index, generation: t.generations[index]}
	}
	index := uint32(len(t.parent))
	t.grow(index)
	return NodeId{index: index}
}

// IsLive returns whether the given id refers to a node currently in the
// tree. A stale id (one whose slot has been freed or reused since it
// was issued) is not live, even if the slot index is occupied again.
func (t *Tree) IsLive(id NodeId) bool {
	if id.IsNil() || id.index >= uint32(len(t.parent)) {
		return false
	}
	return t.live[id.index] && t.generations[id.index] == id.generation
}

// Add inserts the node with the given id as the last child of parent.
// It returns [ErrAlreadyExists] if the id's slot is already occupied,
// [ErrNotFound] if the id carries a stale generation, and
// [ErrParentNotFound] if parent does not resolve to a live node.
func (t *Tree) Add(id, parent NodeId) error {
	if id.IsNil() {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	t.grow(id.index)
	if t.live[id.index] {
		return fmt.Errorf("%w: %v", ErrAlreadyExists, id)
	}
	// A generation mismatch means the id is stale: its slot has been
	// freed (and possibly reissued) since the id was made. Accepting it
	// would resurrect the slot under an old generation and let a live
	// node alias previously issued ids.
	if id.generation != t.generations[id.index] {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if !t.IsLive(parent) {
		return fmt.Errorf("%w: %v", ErrParentNotFound, parent)
	}
	i := id.index
	t.free[i] = false
	t.live[i] = true
	t.parent[i] = parent
	t.firstChild[i] = Nil
	t.nextSibling[i] = Nil
	t.prevSibling[i] = Nil
	t.zOrder[i] = 0
	t.ignored[i] = false

	// Append as last child, keeping the sibling chain doubly linked.
	last := t.firstChild[parent.index]
	if last.IsNil() {
		t.firstChild[parent.index] = id
		return nil
	}
	for !t.nextSibling[last.index].IsNil() {
		last = t.nextSibling[last.index]
	}
	t.nextSibling[last.index] = id
	t.prevSibling[i] = last
	return nil
}

// Remove detaches the subtree rooted at id from the tree and frees
// every node in it, bumping slot generations so all outstanding ids
// into the subtree go stale. The detach itself is O(1) in the subtree
// size; the whole subtree becomes unreachable from the root before any
// slot is reclaimed. The freed ids are returned in pre-order so that
// attribute stores can expunge their entries (see [styles.Style.Delete]).
func (t *Tree) Remove(id NodeId) ([]NodeId, error) {
	if !t.IsLive(id) {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	if id == Root {
		return nil, ErrRemoveRoot
	}

	// Unlink the subtree root from its parent's sibling chain.
	i := id.index
	prev, next, parent := t.prevSibling[i], t.nextSibling[i], t.parent[i]
	if prev.IsNil() {
		t.firstChild[parent.index] = next
	} else {
		t.nextSibling[prev.index] = next
	}
	if !next.IsNil() {
		t.prevSibling[next.index] = prev
	}

	// The subtree's internal links are still intact; collect it in
	// pre-order and then reclaim each slot.
	var removed []NodeId
	stack := []NodeId{id}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		removed = append(removed, n)
		for c := t.LastChild(n); !c.IsNil(); c = t.prevSibling[c.index] {
			stack = append(stack, c)
		}
	}
	for _, n := range removed {
		j := n.index
		t.parent[j] = Nil
		t.firstChild[j] = Nil
		t.nextSibling[j] = Nil
		t.prevSibling[j] = Nil
		t.zOrder[j] = 0
		t.ignored[j] = false
		t.live[j] = false
		t.generations[j]++
		t.free[j] = true
		t.freelist = append(t.freelist, j)
	}
	return removed, nil
}

// Parent returns the parent of the given node. The second return value
// distinguishes "node has no parent" from "node not found": the root
// returns ([Nil], true), while a dead or stale id returns ([Nil], false).
func (t *Tree) Parent(id NodeId) (NodeId, bool) {
	if !t.IsLive(id) {
		return Nil, false
	}
	return t.parent[id.index], true
}

// FirstChild returns the first child of the given node, or [Nil] if it
// has none or does not resolve.
func (t *Tree) FirstChild(id NodeId) NodeId {
	if !t.IsLive(id) {
		return Nil
	}
	return t.firstChild[id.index]
}

// LastChild returns the last child of the given node, or [Nil] if it
// has none or does not resolve.
func (t *Tree) LastChild(id NodeId) NodeId {
	c := t.FirstChild(id)
	if c.IsNil() {
		return Nil
	}
	for !t.nextSibling[c.index].IsNil() {
		c = t.nextSibling[c.index]
	}
	return c
}

// NextSibling returns the next sibling of the given node, or [Nil] if
// it is the last child or does not resolve.
func (t *Tree) NextSibling(id NodeId) NodeId {
	if !t.IsLive(id) {
		return Nil
	}
	return t.nextSibling[id.index]
}

// PrevSibling returns the previous sibling of the given node, or [Nil]
// if it is the first child or does not resolve.
func (t *Tree) PrevSibling(id NodeId) NodeId {
	if !t.IsLive(id) {
		return Nil
	}
	return t.prevSibling[id.index]
}

// NumChildren returns the number of children of the given node.
func (t *Tree) NumChildren(id NodeId) int {
	n := 0
	for c := t.FirstChild(id); !c.IsNil(); c = t.nextSibling[c.index] {
		n++
	}
	return n
}

// IsAncestorOf returns whether a is a strict ancestor of b.
func (t *Tree) IsAncestorOf(a, b NodeId) bool {
	p, ok := t.Parent(b)
	for ok && !p.IsNil() {
		if p == a {
			return true
		}
		p, ok = t.Parent(p)
	}
	return false
}

// SetZOrder sets the z-order of the given node: a signed draw / hit-test
// priority among children, default 0. It is a pure attribute write and
// does not alter sibling links. Returns [ErrNotFound] for a dead id.
func (t *Tree) SetZOrder(id NodeId, z int) error {
	if !t.IsLive(id) {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	t.zOrder[id.index] = z
	return nil
}

// ZOrder returns the z-order of the given node, or 0 if it does not resolve.
func (t *Tree) ZOrder(id NodeId) int {
	if !t.IsLive(id) {
		return 0
	}
	return t.zOrder[id.index]
}

// SetIgnored marks the given node as ignored for layout and draw
// ordering: its children are treated as children of its layout parent,
// which is how reparenting views splice their content into the tree.
func (t *Tree) SetIgnored(id NodeId, ignored bool) error {
	if !t.IsLive(id) {
		return fmt.Errorf("%w: %v", ErrNotFound, id)
	}
	t.ignored[id.index] = ignored
	return nil
}

// IsIgnored returns whether the given node is ignored for layout and
// draw ordering.
func (t *Tree) IsIgnored(id NodeId) bool {
	if !t.IsLive(id) {
		return false
	}
	return t.ignored[id.index]
}

// LayoutParent returns the first non-ignored ancestor of the given
// node, which can differ from the structural parent under reparenting
// views. The root returns ([Nil], true) as in [Tree.Parent].
func (t *Tree) LayoutParent(id NodeId) (NodeId, bool) {
	p, ok := t.Parent(id)
	if !ok {
		return Nil, false
	}
	for !p.IsNil() && t.IsIgnored(p) {
		p, _ = t.Parent(p)
	}
	return p, true
}
