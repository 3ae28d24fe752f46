// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Ember functionality.

package math32

// Matrix2 is a 3x2 affine transformation matrix in column-major order,
// as used for 2D graphics. It maps local coordinates to parent coordinates:
//
//	x' = XX*x + XY*y + X0
//	y' = YX*x + YY*y + Y0
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		XX: 1,
		YY: 1,
	}
}

// Translate2D returns a new [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{1, 0, 0, 1, x, y}
}

// Scale2D returns a new [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{x, 0, 0, y, 0, 0}
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{c, s, -s, c, 0, 0}
}

// IsIdentity returns whether this matrix is the identity matrix.
func (m Matrix2) IsIdentity() bool {
	return m == Identity2()
}

// Mul returns this matrix multiplied by the other given matrix.
// The other matrix is applied first: (m.Mul(o)).MulVector2AsPoint(v)
// is equivalent to m.MulVector2AsPoint(o.MulVector2AsPoint(v)).
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// MulVector2AsPoint returns the given point transformed by this matrix,
// including the translation components.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y+m.X0, m.YX*v.X+m.YY*v.Y+m.Y0)
}

// MulVector2AsVector returns the given vector transformed by this matrix,
// without the translation components.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y, m.YX*v.X+m.YY*v.Y)
}

// Det returns the determinant of this matrix. A zero determinant means
// the matrix is singular and cannot be inverted.
func (m Matrix2) Det() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of this matrix, such that
// m.Mul(m.Inverse()) is the identity. If the matrix is singular
// (Det is zero), the identity matrix is returned; callers that
// need to distinguish that case must check [Matrix2.Det] first.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Det()
	if det == 0 {
		return Identity2()
	}
	id := 1 / det
	return Matrix2{
		XX: m.YY * id,
		YX: -m.YX * id,
		XY: -m.XY * id,
		YY: m.XX * id,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * id,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * id,
	}
}
