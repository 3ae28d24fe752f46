// Copyright (c) 2026, Ember UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Ember functionality.

// Package math32 is a float32 based vector, matrix, and math package
// for the 2D geometry used by the scene core.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	Pi = math.Pi
)

// Floating-point limit values.
const (
	MaxFloat32 = math.MaxFloat32
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 {
	return math32.Ceil(x)
}

// Min returns the smaller of x or y.
func Min(x, y float32) float32 {
	return math32.Min(x, y)
}

// Max returns the larger of x or y.
func Max(x, y float32) float32 {
	return math32.Max(x, y)
}

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}
