// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Ray represents an oriented 3D line segment defined by an origin point and a direction vector.
type Ray struct {
	Origin Vector3
	Dir    Vector3
}

// NewRay creates and returns a pointer to a Ray object with
// the specified origin and direction vectors.
// The direction is normalized.
func NewRay(origin, dir Vector3) Ray {
	return Ray{Origin: origin, Dir: dir.Normal()}
}

// IsValid returns true if the ray has a finite origin and
// a finite, non-zero direction.
func (ray Ray) IsValid() bool {
	return ray.Origin.IsFinite() && ray.Dir.IsFinite() && ray.Dir.LengthSquared() > Epsilon*Epsilon
}

// At returns the point along the ray at distance t from its origin,
// in units of the ray direction.
func (ray Ray) At(t float32) Vector3 {
	return ray.Dir.MulScalar(t).Add(ray.Origin)
}

// DistanceToPlane returns the ray parameter t at which the ray
// reaches the given plane, and false if the ray is parallel to the
// plane (and not on it) or the plane lies behind the ray origin.
func (ray Ray) DistanceToPlane(plane Plane) (float32, bool) {
	denom := plane.Norm.Dot(ray.Dir)
	if Abs(denom) < Epsilon {
		if plane.DistanceToPoint(ray.Origin) == 0 {
			return 0, true
		}
		return 0, false
	}
	t := -(ray.Origin.Dot(plane.Norm) + plane.Off) / denom
	if t < 0 {
		return 0, false
	}
	return t, true
}

// IntersectPlane returns the point where this ray intersects the
// given plane, and false if it does not.
func (ray Ray) IntersectPlane(plane Plane) (Vector3, bool) {
	t, ok := ray.DistanceToPlane(plane)
	if !ok {
		return Vector3{}, false
	}
	return ray.At(t), true
}

// IntersectSphere returns the ray parameter of the nearest
// intersection with the given sphere at or in front of the origin.
// A ray starting inside the sphere hits its far side.
func (ray Ray) IntersectSphere(sphere Sphere) (float32, bool) {
	oc := ray.Origin.Sub(sphere.Center)
	a := ray.Dir.LengthSquared()
	if a == 0 {
		return 0, false
	}
	b := oc.Dot(ray.Dir)
	c := oc.LengthSquared() - sphere.Radius*sphere.Radius
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := Sqrt(disc)
	t0 := (-b - sq) / a
	t1 := (-b + sq) / a
	if t1 < 0 {
		return 0, false
	}
	if t0 < 0 {
		return t1, true
	}
	return t0, true
}

// IntersectBox returns the ray parameter of the nearest intersection
// with the given axis-aligned box, using the slab method.
// A ray starting inside the box returns 0.
func (ray Ray) IntersectBox(box Box3) (float32, bool) {
	if box.IsEmpty() {
		return 0, false
	}
	tmin := -Infinity
	tmax := Infinity
	for d := X; d <= Z; d++ {
		o := ray.Origin.Dim(d)
		dir := ray.Dir.Dim(d)
		lo, hi := box.Min.Dim(d), box.Max.Dim(d)
		if Abs(dir) < Epsilon {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}
		inv := 1 / dir
		t0 := (lo - o) * inv
		t1 := (hi - o) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tmin = Max(tmin, t0)
		tmax = Min(tmax, t1)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return 0, true
	}
	return tmin, true
}

// IntersectTriangle returns the ray parameter where this ray intersects
// the triangle a, b, c, using the Möller-Trumbore algorithm.
// If backfaceCulling is true, triangles facing away from the ray
// (counter-clockwise winding seen from behind) are ignored.
func (ray Ray) IntersectTriangle(a, b, c Vector3, backfaceCulling bool) (float32, bool) {
	e1 := b.Sub(a)
	e2 := c.Sub(a)
	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if backfaceCulling && det < Epsilon {
		return 0, false
	}
	if Abs(det) < Epsilon {
		return 0, false
	}
	inv := 1 / det
	s := ray.Origin.Sub(a)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t < 0 {
		return 0, false
	}
	return t, true
}
