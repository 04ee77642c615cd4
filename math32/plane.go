// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Plane represents a plane in 3D space by its normal vector and a constant offset.
// When the the normal vector is the unit vector the offset is the distance from the origin.
type Plane struct {
	Norm Vector3
	Off  float32
}

// NewPlane creates and returns a new plane from a normal vector and a offset.
func NewPlane(normal Vector3, offset float32) Plane {
	return Plane{Norm: normal, Off: offset}
}

// PlaneFromNormalAndPoint returns the plane with the given normal
// that passes through the given point. The normal is normalized.
func PlaneFromNormalAndPoint(normal, point Vector3) Plane {
	n := normal.Normal()
	return Plane{Norm: n, Off: -point.Dot(n)}
}

// DistanceToPoint returns the signed distance from this plane to the specified point.
func (p Plane) DistanceToPoint(point Vector3) float32 {
	return p.Norm.Dot(point) + p.Off
}

// ProjectPoint returns the projection of the given point onto the plane.
func (p Plane) ProjectPoint(point Vector3) Vector3 {
	return point.Sub(p.Norm.MulScalar(p.DistanceToPoint(point)))
}
