// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "errors"

// Structural errors returned by [Tree] mutations. These are always
// surfaced to the caller and never swallowed, since a structural bug
// corrupts every downstream traversal. Test with [errors.Is].
var (
	// ErrAlreadyExists is returned by [Tree.Add] when the given id
	// already occupies a live slot.
	ErrAlreadyExists = errors.New("tree: node already exists")

	// ErrParentNotFound is returned by [Tree.Add] when the given
	// parent id does not resolve to a live node.
	ErrParentNotFound = errors.New("tree: parent not found")

	// ErrNotFound is returned when the given id does not resolve to a
	// live node, either because it was never added, was removed, or
	// carries a stale generation.
	ErrNotFound = errors.New("tree: node not found")

	// ErrRemoveRoot is returned by [Tree.Remove] for the root id;
	// the root always exists.
	ErrRemoveRoot = errors.New("tree: cannot remove the root")
)
