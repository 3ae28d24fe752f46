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
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// FromPoint returns a new [Vector2] from the given [image.Point].
func FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func FromFixed(pt fixed.Point26_6) Vector2 {
	v := Vector2{}
	v.SetFixed(pt)
	return v
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all components of this vector to the given scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// SetFixed sets this vector from the given [fixed.Point26_6].
func (v *Vector2) SetFixed(pt fixed.Point26_6) {
	v.X = FromFixed26_6(pt.X)
	v.Y = FromFixed26_6(pt.Y)
}

// ToFixed returns this vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed26_6(v.X), Y: ToFixed26_6(v.Y)}
}

// ToPoint returns this vector as an [image.Point] with the components truncated.
func (v Vector2) ToPoint() image.Point {
	return image.Point{int(v.X), int(v.Y)}
}

// ToPointFloor returns this vector as an [image.Point] with the components floored.
func (v Vector2) ToPointFloor() image.Point {
	return image.Point{int(Floor(v.X)), int(Floor(v.Y))}
}

// ToPointCeil returns this vector as an [image.Point] with the components ceiled.
func (v Vector2) ToPointCeil() image.Point {
	return image.Point{int(Ceil(v.X)), int(Ceil(v.Y))}
}

// ToFixed26_6 returns the given float32 as a [fixed.Int26_6].
func ToFixed26_6(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

// FromFixed26_6 returns the given [fixed.Int26_6] as a float32.
func FromFixed26_6(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the result as a new vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar value
// and returns the result as a new vector.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Negate negates each component of this vector and returns the result as a new vector.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Min returns a new vector with the minimum of each component of
// this vector and the corresponding one of the other given vector.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// Max returns a new vector with the maximum of each component of
// this vector and the corresponding one of the other given vector.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normal returns this vector divided by its length (its norm).
func (v Vector2) Normal() Vector2 {
	l := v.Length()
	if l == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / l)
}
