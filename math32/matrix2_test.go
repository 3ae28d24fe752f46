// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	assert.InDelta(t, vt.X, va.X, float64(tol))
	assert.InDelta(t, vt.Y, va.Y, float64(tol))
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(90)).Inverse().MulVector2AsPoint(vy))

	tolAssertEqualVector(t, standardTol, vxy,
		Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(45))).MulVector2AsPoint(vxy))
}

func TestMatrix2MulOrder(t *testing.T) {
	// The right operand of Mul applies first.
	m := Translate2D(10, 0).Mul(Scale2D(2, 2))
	assert.Equal(t, Vec2(12, 2), m.MulVector2AsPoint(Vec2(1, 1)))
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(3, -7).Mul(Scale2D(2, 4))
	p := Vec2(5, 9)
	tolAssertEqualVector(t, standardTol, p, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(p)))
	assert.True(t, m.Mul(m.Inverse()).IsIdentity())
}

func TestMatrix2Singular(t *testing.T) {
	m := Scale2D(0, 1)
	assert.Equal(t, float32(0), m.Det())
	assert.Equal(t, Identity2(), m.Inverse())

	assert.NotEqual(t, float32(0), Rotate2D(1).Det())
}
