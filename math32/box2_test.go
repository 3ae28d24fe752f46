// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBox2Intersect(t *testing.T) {
	a := B2(0, 0, 100, 100)
	b := B2(50, 50, 150, 150)
	got := a.Intersect(b)
	assert.Equal(t, B2(50, 50, 100, 100), got)
	assert.False(t, got.IsEmpty())

	disjoint := a.Intersect(B2(200, 200, 300, 300))
	assert.True(t, disjoint.IsEmpty())

	// Everything is the neutral element for clip accumulation.
	assert.Equal(t, a, B2Everything().Intersect(a))
}

func TestBox2ContainsPointHalfOpen(t *testing.T) {
	b := B2(0, 0, 100, 100)
	assert.True(t, b.ContainsPointHalfOpen(Vec2(0, 0)))
	assert.True(t, b.ContainsPointHalfOpen(Vec2(99.5, 99.5)))
	assert.False(t, b.ContainsPointHalfOpen(Vec2(100, 50)))
	assert.False(t, b.ContainsPointHalfOpen(Vec2(50, 100)))
	assert.False(t, b.ContainsPointHalfOpen(Vec2(-0.5, 50)))

	// The closed version does include the max edge.
	assert.True(t, b.ContainsPoint(Vec2(100, 100)))
}

func TestBox2Empty(t *testing.T) {
	e := B2Empty()
	assert.True(t, e.IsEmpty())
	assert.False(t, e.ContainsPointHalfOpen(Vec2(0, 0)))

	e.ExpandByPoint(Vec2(1, 2))
	e.ExpandByPoint(Vec2(-3, 4))
	assert.Equal(t, B2(-3, 2, 1, 4), e)
	assert.False(t, e.IsEmpty())
}

func TestBox2Rect(t *testing.T) {
	b := B2(0.5, 1.5, 10.5, 20.5)
	assert.Equal(t, image.Rect(0, 1, 11, 21), b.ToRect())
	assert.Equal(t, B2(1, 2, 3, 4), B2FromRect(image.Rect(1, 2, 3, 4)))

	fx := B2(1, 2, 3, 4).ToFixed()
	assert.Equal(t, B2(1, 2, 3, 4), B2FromFixed(fx))
}

func TestBox2Transform(t *testing.T) {
	b := B2(0, 0, 10, 10)
	assert.Equal(t, B2(5, 5, 15, 15), b.Translate(Vec2(5, 5)))
	assert.Equal(t, B2(0, 0, 20, 20), b.MulMatrix2(Scale2D(2, 2)))
	assert.Equal(t, Vec2(5, 5), b.Center())
	assert.Equal(t, Vec2(10, 10), b.Size())
}
