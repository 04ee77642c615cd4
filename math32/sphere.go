// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Sphere represents a 3D sphere defined by its center point and a radius
type Sphere struct {
	Center Vector3 `yaml:"center"`
	Radius float32 `yaml:"radius"`
}

// ContainsPoint returns if this sphere contains the specified point.
func (s Sphere) ContainsPoint(point Vector3) bool {
	return point.DistanceToSquared(s.Center) <= s.Radius*s.Radius
}

// BBox returns the bounding box of the sphere.
func (s Sphere) BBox() Box3 {
	r := Vector3Scalar(s.Radius)
	return Box3{Min: s.Center.Sub(r), Max: s.Center.Add(r)}
}
