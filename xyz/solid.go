// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/metabrush/math32"
)

// Shapes are the kinds of [Solid].
type Shapes int32 //enums:enum

const (
	// Sphere is a sphere of Radius centered at Pos.
	Sphere Shapes = iota

	// Box is an axis-aligned box of Size centered at Pos.
	Box

	// Plane is an infinite plane through Pos with the given Normal.
	Plane

	// Mesh is a set of triangles, relative to Pos.
	Mesh
)

// Solid is a static surface in the scene that snap placement
// can hit. It is not changed by the brush.
type Solid struct {
	Name string `yaml:"name"`

	Shape Shapes `yaml:"shape"`

	Pos math32.Vector3 `yaml:"pos"`

	Radius float32 `yaml:"radius,omitempty"`

	Size math32.Vector3 `yaml:"size,omitempty"`

	Normal math32.Vector3 `yaml:"normal,omitempty"`

	Triangles []math32.Triangle `yaml:"triangles,omitempty"`
}

// NewSphere returns a new sphere solid.
func NewSphere(name string, pos math32.Vector3, radius float32) *Solid {
	return &Solid{Name: name, Shape: Sphere, Pos: pos, Radius: radius}
}

// NewBox returns a new box solid centered at pos.
func NewBox(name string, pos, size math32.Vector3) *Solid {
	return &Solid{Name: name, Shape: Box, Pos: pos, Size: size}
}

// NewPlane returns a new plane solid.
func NewPlane(name string, pos, normal math32.Vector3) *Solid {
	return &Solid{Name: name, Shape: Plane, Pos: pos, Normal: normal}
}

// Validate returns an error if the solid has no surface.
func (sd *Solid) Validate() error {
	if sd.Name == "" {
		return fmt.Errorf("xyz: %v solid has no name", sd.Shape)
	}
	var bad bool
	switch sd.Shape {
	case Sphere:
		bad = !(sd.Radius > 0)
	case Box:
		bad = !(sd.Size.X > 0 && sd.Size.Y > 0 && sd.Size.Z > 0)
	case Plane:
		bad = sd.Normal.LengthSquared() < math32.Epsilon*math32.Epsilon
	case Mesh:
		bad = len(sd.Triangles) == 0
	default:
		return fmt.Errorf("xyz: solid %q has invalid shape %v", sd.Name, sd.Shape)
	}
	if bad {
		return fmt.Errorf("xyz: %v solid %q has no surface", sd.Shape, sd.Name)
	}
	return nil
}

// BBox returns the world bounding box of the solid.
// It is infinite for a [Plane].
func (sd *Solid) BBox() math32.Box3 {
	switch sd.Shape {
	case Sphere:
		return math32.Sphere{Center: sd.Pos, Radius: sd.Radius}.BBox()
	case Box:
		half := sd.Size.MulScalar(0.5)
		return math32.Box3{Min: sd.Pos.Sub(half), Max: sd.Pos.Add(half)}
	case Mesh:
		bb := math32.B3Empty()
		for _, tri := range sd.Triangles {
			bb.ExpandByBox(tri.BBox())
		}
		return math32.Box3{Min: bb.Min.Add(sd.Pos), Max: bb.Max.Add(sd.Pos)}
	}
	inf := math32.Vector3Scalar(math32.Infinity)
	return math32.Box3{Min: inf.Negate(), Max: inf}
}

// Intersect returns the ray parameter and surface normal of the
// nearest intersection of the ray with the solid.
// The normal faces back along the ray.
func (sd *Solid) Intersect(ray math32.Ray) (float32, math32.Vector3, bool) {
	var t float32
	var nrm math32.Vector3
	var ok bool
	switch sd.Shape {
	case Sphere:
		t, ok = ray.IntersectSphere(math32.Sphere{Center: sd.Pos, Radius: sd.Radius})
		if ok {
			nrm = ray.At(t).Sub(sd.Pos).Normal()
		}
	case Box:
		bb := sd.BBox()
		t, ok = ray.IntersectBox(bb)
		if ok {
			nrm = bb.FaceNormal(ray.At(t))
		}
	case Plane:
		t, ok = ray.DistanceToPlane(math32.PlaneFromNormalAndPoint(sd.Normal, sd.Pos))
		nrm = sd.Normal.Normal()
	case Mesh:
		t, nrm, ok = sd.intersectMesh(ray)
	}
	if !ok {
		return 0, math32.Vector3{}, false
	}
	if nrm.Dot(ray.Dir) > 0 {
		nrm = nrm.Negate()
	}
	return t, nrm, true
}

func (sd *Solid) intersectMesh(ray math32.Ray) (float32, math32.Vector3, bool) {
	if _, ok := ray.IntersectBox(sd.BBox()); !ok {
		return 0, math32.Vector3{}, false
	}
	best := math32.Infinity
	var nrm math32.Vector3
	for _, tri := range sd.Triangles {
		a, b, c := tri.A.Add(sd.Pos), tri.B.Add(sd.Pos), tri.C.Add(sd.Pos)
		t, ok := ray.IntersectTriangle(a, b, c, false)
		if ok && t < best {
			best = t
			nrm = math32.Normal(a, b, c)
		}
	}
	if best == math32.Infinity {
		return 0, math32.Vector3{}, false
	}
	return best, nrm, true
}
