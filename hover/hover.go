// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hover resolves which node the pointer currently targets: a
// priority tree walk over the scene that respects z-index, affine
// transforms, clip regions, pointer-events policy, and ability flags,
// and emits enter/leave/over/out transitions exactly once per change.
package hover

import (
	"container/heap"
	"log/slog"

	"github.com/emberui/ember/events"
	"github.com/emberui/ember/math32"
	"github.com/emberui/ember/styles"
	"github.com/emberui/ember/styles/abilities"
	"github.com/emberui/ember/styles/states"
	"github.com/emberui/ember/tree"
)

// Context is the UI-thread-owned state threaded through each resolution
// pass. There is no hidden global: callers pass the context in and read
// the updated Hovered value out. The resolver takes exclusive access to
// the tree and style store for the duration of one [Resolve] call, which
// always runs to completion.
type Context struct {
	// Tree is the scene tree being hit-tested.
	Tree *tree.Tree

	// Style is the spatial attribute store, read-only from the
	// resolver's perspective except for state flags and restyle marks.
	Style *styles.Style

	// Events receives the transition events of each pass.
	Events *events.Queue

	// Hovered is the current hover target. It defaults to [tree.Root]
	// and is updated exactly once per pass.
	Hovered tree.NodeId

	// CursorLocked suppresses cursor icon changes while an unrelated
	// interaction, such as a drag, owns the cursor. Hover changes are
	// still resolved and emitted while locked.
	CursorLocked bool
}

// zNode is a pending work item in the priority walk: a node whose
// subtree has been deferred until every lower z-index subtree has been
// processed, together with the pointer-events value it resolved at
// discovery time.
type zNode struct {
	z             int
	pointerEvents bool
	node          tree.NodeId
	seq           int
}

// zQueue is a binary heap of [zNode] ordered by ascending z-index,
// ties broken by insertion order so that among equal z-index subtrees
// the first discovered is processed first. Since the last match of the
// whole walk wins, later-popped subtrees of equal z paint over earlier
// ones, deterministically matching draw order.
type zQueue struct {
	items []zNode
	seq   int
}

func (q *zQueue) Len() int { return len(q.items) }

func (q *zQueue) Less(i, j int) bool {
	if q.items[i].z != q.items[j].z {
		return q.items[i].z < q.items[j].z
	}
	return q.items[i].seq < q.items[j].seq
}

func (q *zQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *zQueue) Push(x any) { q.items = append(q.items, x.(zNode)) }

func (q *zQueue) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}

func (q *zQueue) push(z int, pointerEvents bool, n tree.NodeId) {
	q.seq++
	heap.Push(q, zNode{z: z, pointerEvents: pointerEvents, node: n, seq: q.seq})
}

// Resolve determines the hovered node for the given pointer position in
// window coordinates and commits the result to cx: it updates
// cx.Hovered, maintains the Over and Hovered state flags, and on a
// hover change pushes, in order, MouseEnter (direct, new target),
// MouseLeave (direct, old target), MouseOver (bubbling, new), MouseOut
// (bubbling, old), then a SetCursor request unless the cursor is
// locked, and marks both old and new target for restyle.
//
// A negative pointer coordinate means the pointer is outside the
// window: the walk is skipped entirely and the hover left unchanged.
func Resolve(cx *Context, pointer math32.Vector2) {
	if pointer.X < 0 || pointer.Y < 0 {
		return
	}

	queue := &zQueue{}
	rootEvents := true
	if pe, ok := cx.Style.PointerEvents(tree.Root); ok {
		rootEvents = pe == styles.Auto
	}
	queue.push(0, rootEvents, tree.Root)

	hovered := tree.Root
	for queue.Len() > 0 {
		it := heap.Pop(queue).(zNode)
		cx.hoverNode(it.node, it.z, it.pointerEvents,
			math32.Identity2(), math32.B2Everything(), queue, &hovered, pointer)
	}

	// The winning node's layout ancestor chain gets the terminal
	// Hovered state wherever the walk left the transient Over state.
	ancestors := tree.LayoutAncestors(cx.Tree, hovered)
	for a, ok := ancestors.Next(); ok; a, ok = ancestors.Next() {
		if cx.Style.HasState(a, states.Over) && !cx.Style.HasState(a, states.Hovered) {
			cx.Style.SetState(a, true, states.Hovered)
		}
	}

	if hovered == cx.Hovered {
		return
	}
	slog.Debug("hover changed", "node", hovered, "previous", cx.Hovered,
		"bounds", cx.Style.Bounds(hovered))

	cx.Events.Push(events.Direct(events.MouseEnter, hovered))
	cx.Events.Push(events.Direct(events.MouseLeave, cx.Hovered))
	cx.Events.Push(events.Bubble(events.MouseOver, hovered))
	cx.Events.Push(events.Bubble(events.MouseOut, cx.Hovered))
	if !cx.CursorLocked {
		cx.Events.Push(events.CursorChange(cx.Style.Cursor(hovered)))
	}

	cx.Style.NeedsRestyle(cx.Hovered)
	cx.Style.NeedsRestyle(hovered)
	cx.Hovered = hovered
}

// hoverNode visits one node of the priority walk. floorZ is the z-index
// of the subtree being processed: a node with a strictly higher z-index
// is deferred onto the queue instead of descended into, so that higher
// z-index subtrees across the whole tree resolve after (and thereby
// override) lower ones. Deferred subtrees restart with the identity
// transform and an unbounded clip, accumulating only from the deferral
// point down.
func (cx *Context) hoverNode(n tree.NodeId, floorZ int, parentEvents bool,
	parentTransform math32.Matrix2, clip math32.Box2,
	queue *zQueue, hovered *tree.NodeId, pointer math32.Vector2) {

	// A non-hoverable node removes its whole subtree from hit testing.
	if ab, ok := cx.Style.Abilities(n); ok && !ab.HasFlag(abilities.Hoverable) {
		return
	}

	// Undisplayed nodes are skipped too, except text spans, which are
	// hit-testable runs inside their parent's text layout.
	if cx.Style.Display(n) == styles.DisplayNone && !cx.Style.TextSpan(n) {
		return
	}

	pointerEvents := parentEvents
	if pe, ok := cx.Style.PointerEvents(n); ok {
		pointerEvents = pe == styles.Auto
	}

	if z := cx.Style.ZIndex(n); z > floorZ {
		queue.push(z, pointerEvents, n)
		return
	}

	transform := parentTransform.Mul(cx.Style.Transform(n))
	singular := transform.Det() == 0
	if singular {
		// Cannot hit-test this node; its children are still walked
		// using the parent transform.
		transform = parentTransform
	}
	clipping := clip.Intersect(cx.Style.ClipRegion(n))

	cx.Style.SetState(n, false, states.Hovered)

	if pointerEvents && !singular {
		local := transform.Inverse().MulVector2AsPoint(pointer)
		b := cx.Style.Bounds(n).Intersect(clipping)
		// Half-open bounds: adjacent siblings sharing an edge never
		// both claim the boundary point.
		if b.ContainsPointHalfOpen(local) {
			*hovered = n
			if !cx.Style.HasState(n, states.Over) {
				cx.Style.SetState(n, true, states.Over)
				cx.Style.NeedsRestyle(n)
			}
		} else if cx.Style.HasState(n, states.Over) {
			cx.Style.SetState(n, false, states.Over)
			cx.Style.NeedsRestyle(n)
		}
	}

	children := tree.DrawChildren(cx.Tree, n)
	for c, ok := children.Next(); ok; c, ok = children.Next() {
		cx.hoverNode(c, floorZ, pointerEvents, transform, clipping, queue, hovered, pointer)
	}
}
