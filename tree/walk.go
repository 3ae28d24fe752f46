// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides basic tree walking functions for iterative traversal
of the tree in the forward and backward pre-order directions. The
iterator types in iter.go are built on these; they are also useful
directly for more dynamic, piecemeal processing.
*/

package tree

// Last returns the last node, in pre-order, of the subtree rooted at
// the given node: its deepest last descendant, or the node itself if it
// has no children.
func Last(t *Tree, n NodeId) NodeId {
	for {
		c := t.LastChild(n)
		if c.IsNil() {
			return n
		}
		n = c
	}
}

// Next returns the pre-order successor of n within the subtree rooted
// at root, or [Nil] if n is the last node of that subtree: first the
// node's first child, then the next sibling of the nearest ancestor
// (not escaping root) that has one.
func Next(t *Tree, n, root NodeId) NodeId {
	if c := t.FirstChild(n); !c.IsNil() {
		return c
	}
	for n != root && t.IsLive(n) {
		if s := t.NextSibling(n); !s.IsNil() {
			return s
		}
		n, _ = t.Parent(n)
	}
	return Nil
}

// Previous returns the pre-order predecessor of n within the subtree
// rooted at root, or [Nil] if n is root: the deepest last descendant of
// the previous sibling if there is one, and the parent otherwise.
func Previous(t *Tree, n, root NodeId) NodeId {
	if n == root {
		return Nil
	}
	if s := t.PrevSibling(n); !s.IsNil() {
		return Last(t, s)
	}
	p, _ := t.Parent(n)
	return p
}

// WalkDown calls fun on every node of the subtree rooted at n in
// pre-order, stopping the descent into a node's children when fun
// returns false for it.
func (t *Tree) WalkDown(n NodeId, fun func(NodeId) bool) {
	if !t.IsLive(n) {
		return
	}
	if !fun(n) {
		return
	}
	for c := t.FirstChild(n); !c.IsNil(); c = t.NextSibling(c) {
		t.WalkDown(c, fun)
	}
}
