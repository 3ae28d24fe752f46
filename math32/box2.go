// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Ember functionality.

package math32

import (
	"image"

	"golang.org/x/image/math/fixed"
)

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2Everything returns a new [Box2] that contains every finite point.
// It is the seed value for accumulating clip regions: intersecting
// with it leaves the other box unchanged.
func B2Everything() Box2 {
	return B2(-MaxFloat32/2, -MaxFloat32/2, MaxFloat32/2, MaxFloat32/2)
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	b := Box2{}
	b.SetFromRect(rect)
	return b
}

// B2FromFixed returns a new [Box2] from the given [fixed.Rectangle26_6].
func B2FromFixed(rect fixed.Rectangle26_6) Box2 {
	b := Box2{}
	b.Min.SetFixed(rect.Min)
	b.Max.SetFixed(rect.Max)
	return b
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b *Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// SetFromRect sets this bounding box from an [image.Rectangle].
func (b *Box2) SetFromRect(rect image.Rectangle) {
	b.Min = FromPoint(rect.Min)
	b.Max = FromPoint(rect.Max)
}

// ToRect returns the [image.Rectangle] version of this bounding box,
// using Floor for Min and Ceil for Max.
func (b Box2) ToRect() image.Rectangle {
	rect := image.Rectangle{}
	rect.Min = b.Min.ToPointFloor()
	rect.Max = b.Max.ToPointCeil()
	return rect
}

// ToFixed returns the [fixed.Rectangle26_6] version of this bounding box.
func (b Box2) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: b.Min.ToFixed(), Max: b.Max.ToFixed()}
}

// Canon returns the canonical version of this bounding box, with the
// minimum and maximum coordinates swapped as needed so that Min <= Max.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint expands this bounding box to include the given point.
func (b *Box2) ExpandByPoint(point Vector2) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Center returns the center of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Size returns the size of this bounding box (Max - Min).
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ContainsPoint returns whether this bounding box contains the given
// point, using closed intervals on both edges. Hit testing does not use
// this: it uses half-open intervals so that adjacent boxes sharing an
// edge never both claim a boundary point.
func (b Box2) ContainsPoint(point Vector2) bool {
	return !(point.X < b.Min.X || point.X > b.Max.X ||
		point.Y < b.Min.Y || point.Y > b.Max.Y)
}

// ContainsPointHalfOpen returns whether the given point falls within
// [Min.X, Max.X) x [Min.Y, Max.Y).
func (b Box2) ContainsPointHalfOpen(point Vector2) bool {
	return point.X >= b.Min.X && point.X < b.Max.X &&
		point.Y >= b.Min.Y && point.Y < b.Max.Y
}

// Intersect returns the intersection of this box with the other given box.
// The result is empty if the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	return Box2{
		Min: b.Min.Max(other.Min),
		Max: b.Max.Min(other.Max),
	}
}

// Union returns the union of this box with the other given box.
func (b Box2) Union(other Box2) Box2 {
	return Box2{
		Min: b.Min.Min(other.Min),
		Max: b.Max.Max(other.Max),
	}
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// MulMatrix2 returns this box transformed by the given matrix, as the
// bounding box of the four transformed corners.
func (b Box2) MulMatrix2(m Matrix2) Box2 {
	nb := B2Empty()
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Min))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Max.X, b.Min.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(Vec2(b.Min.X, b.Max.Y)))
	nb.ExpandByPoint(m.MulVector2AsPoint(b.Max))
	return nb
}
