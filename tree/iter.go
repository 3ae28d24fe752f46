// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// Iterator is a double-ended depth-first pre-order iterator over a
// subtree. Pre-order ("tree order") is the canonical draw and layout
// order: a node is visited before its children, children in sibling
// order. The two cursors are independent and can be driven to meet in
// the middle: across any interleaving of [Iterator.Next] and
// [Iterator.NextBack] calls, every node in the subtree is yielded
// exactly once.
//
// Iterators borrow the tree live. A node removed mid-iteration is never
// yielded: removal of a cursor's node ends that iterator, since the
// freed slot no longer carries the links needed to advance past it.
type Iterator struct {
	tree  *Tree
	root  NodeId
	front NodeId
	back  NodeId
	done  bool
}

// All returns a pre-order [Iterator] over the whole tree.
func All(t *Tree) *Iterator {
	return Subtree(t, Root)
}

// Subtree returns a pre-order [Iterator] over the subtree rooted at the
// given node, inclusive. A dead or stale root yields nothing.
func Subtree(t *Tree, root NodeId) *Iterator {
	it := &Iterator{tree: t, root: root}
	if !t.IsLive(root) {
		it.done = true
		return it
	}
	it.front = root
	it.back = Last(t, root)
	return it
}

// Next yields the next node from the front cursor, in pre-order.
func (it *Iterator) Next() (NodeId, bool) {
	if it.done || !it.tree.IsLive(it.front) {
		it.done = true
		return Nil, false
	}
	n := it.front
	if n == it.back {
		it.done = true
	} else {
		it.front = Next(it.tree, n, it.root)
	}
	return n, true
}

// NextBack yields the next node from the back cursor, in reverse
// pre-order.
func (it *Iterator) NextBack() (NodeId, bool) {
	if it.done || !it.tree.IsLive(it.back) {
		it.done = true
		return Nil, false
	}
	n := it.back
	if n == it.front {
		it.done = true
	} else {
		it.back = Previous(it.tree, n, it.root)
	}
	return n, true
}

// Collect drains the front cursor and returns the remaining nodes.
func (it *Iterator) Collect() []NodeId {
	var ids []NodeId
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		ids = append(ids, n)
	}
	return ids
}

// BreadthIterator iterates a subtree in level order: a node is yielded
// only after every node at a strictly shallower depth, using an
// explicit FIFO queue. Children are enqueued in layout order.
type BreadthIterator struct {
	tree  *Tree
	queue []NodeId
}

// BreadthFirst returns a [BreadthIterator] over the whole tree.
func BreadthFirst(t *Tree) *BreadthIterator {
	return BreadthSubtree(t, Root)
}

// BreadthSubtree returns a [BreadthIterator] over the subtree rooted at
// the given node, inclusive.
func BreadthSubtree(t *Tree, root NodeId) *BreadthIterator {
	it := &BreadthIterator{tree: t}
	if t.IsLive(root) {
		it.queue = append(it.queue, root)
	}
	return it
}

// Next yields the next node in level order. Queued nodes removed since
// they were enqueued are skipped.
func (it *BreadthIterator) Next() (NodeId, bool) {
	for len(it.queue) > 0 {
		n := it.queue[0]
		it.queue = it.queue[1:]
		if !it.tree.IsLive(n) {
			continue
		}
		lc := LayoutChildren(it.tree, n)
		for c, ok := lc.Next(); ok; c, ok = lc.Next() {
			it.queue = append(it.queue, c)
		}
		return n, true
	}
	return Nil, false
}

// ChildIterator iterates the direct structural children of a node in
// sibling order.
type ChildIterator struct {
	tree    *Tree
	current NodeId
}

// Children returns a [ChildIterator] over the children of the given node.
func Children(t *Tree, parent NodeId) *ChildIterator {
	return &ChildIterator{tree: t, current: t.FirstChild(parent)}
}

// Next yields the next child.
func (it *ChildIterator) Next() (NodeId, bool) {
	if !it.tree.IsLive(it.current) {
		it.current = Nil
		return Nil, false
	}
	n := it.current
	it.current = it.tree.NextSibling(n)
	return n, true
}

// LayoutChildIterator iterates the layout children of a node: its
// structural children in sibling order, except that an ignored child is
// replaced, in place, by its own layout children. This is how the
// content of reparenting views is spliced into its layout parent.
type LayoutChildIterator struct {
	tree  *Tree
	stack []NodeId
}

// LayoutChildren returns a [LayoutChildIterator] over the layout
// children of the given node.
func LayoutChildren(t *Tree, parent NodeId) *LayoutChildIterator {
	it := &LayoutChildIterator{tree: t}
	it.push(parent)
	return it
}

// push adds the children of n to the stack in reverse sibling order,
// so that they pop in sibling order.
func (it *LayoutChildIterator) push(n NodeId) {
	for c := it.tree.LastChild(n); !c.IsNil(); c = it.tree.PrevSibling(c) {
		it.stack = append(it.stack, c)
	}
}

// Next yields the next layout child.
func (it *LayoutChildIterator) Next() (NodeId, bool) {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if !it.tree.IsLive(n) {
			continue
		}
		if it.tree.IsIgnored(n) {
			it.push(n)
			continue
		}
		return n, true
	}
	return Nil, false
}

// DrawChildIterator iterates the layout children of a node in draw
// order: stably sorted by ascending z-order, so that equal z-order
// children keep sibling order. Draw order is also the hit-test descent
// order of the hover pass.
type DrawChildIterator struct {
	tree     *Tree
	children []NodeId
	i        int
}

// DrawChildren returns a [DrawChildIterator] over the children of the
// given node in draw order.
func DrawChildren(t *Tree, parent NodeId) *DrawChildIterator {
	it := &DrawChildIterator{tree: t}
	lc := LayoutChildren(t, parent)
	for c, ok := lc.Next(); ok; c, ok = lc.Next() {
		it.children = append(it.children, c)
	}
	slices.SortStableFunc(it.children, func(a, b NodeId) int {
		return t.ZOrder(a) - t.ZOrder(b)
	})
	return it
}

// Next yields the next child in draw order. Children removed since the
// order was captured are skipped.
func (it *DrawChildIterator) Next() (NodeId, bool) {
	for it.i < len(it.children) {
		n := it.children[it.i]
		it.i++
		if !it.tree.IsLive(n) {
			continue
		}
		return n, true
	}
	return Nil, false
}

// ParentIterator iterates a node and then its layout ancestors up to
// and including the root.
type ParentIterator struct {
	tree    *Tree
	current NodeId
}

// LayoutAncestors returns a [ParentIterator] starting at the given
// node, inclusive.
func LayoutAncestors(t *Tree, start NodeId) *ParentIterator {
	it := &ParentIterator{tree: t}
	if t.IsLive(start) {
		it.current = start
	} else {
		it.current = Nil
	}
	return it
}

// Next yields the next ancestor, starting with the node itself.
func (it *ParentIterator) Next() (NodeId, bool) {
	if !it.tree.IsLive(it.current) {
		it.current = Nil
		return Nil, false
	}
	n := it.current
	it.current, _ = it.tree.LayoutParent(n)
	return n, true
}
