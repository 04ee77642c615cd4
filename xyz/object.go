// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/metabrush/base/ordmap"
	"cogentcore.org/metabrush/brush"
	"cogentcore.org/metabrush/math32"
)

// Object is a metaball object: an implicit surface made of
// the field of its elements, one object per brush stroke.
type Object struct {
	ID brush.ObjectID

	Name string

	// Resolution is the polygonization resolution of the surface.
	Resolution float32

	// Elements are the primitives of the object, in placement order.
	Elements ordmap.Map[brush.ElementID, brush.Element]
}

// NewObject returns a new empty object.
func NewObject(id brush.ObjectID, resolution float32) *Object {
	ob := &Object{ID: id, Name: fmt.Sprintf("Metaball.%03d", id), Resolution: resolution}
	ob.Elements.Init()
	return ob
}

// Len returns the number of elements.
func (ob *Object) Len() int {
	return ob.Elements.Len()
}

// BBox returns the bounding box of the element spheres.
func (ob *Object) BBox() math32.Box3 {
	bb := math32.B3Empty()
	for _, el := range ob.Elements.Values() {
		bb.ExpandByBox(elementSphere(el).BBox())
	}
	return bb
}

// Intersect returns the nearest element sphere hit by the ray.
func (ob *Object) Intersect(ray math32.Ray) (float32, brush.Hit, bool) {
	if _, ok := ray.IntersectBox(ob.BBox()); !ok {
		return 0, brush.Hit{}, false
	}
	best := math32.Infinity
	var hit brush.Hit
	for _, el := range ob.Elements.Values() {
		sp := elementSphere(el)
		t, ok := ray.IntersectSphere(sp)
		if !ok || t >= best {
			continue
		}
		best = t
		pt := ray.At(t)
		hit = brush.Hit{Pos: pt, Normal: pt.Sub(sp.Center).Normal(), Object: ob.ID}
	}
	if best == math32.Infinity {
		return 0, brush.Hit{}, false
	}
	return best, hit, true
}

func elementSphere(el brush.Element) math32.Sphere {
	return math32.Sphere{Center: el.Placement.Pos, Radius: el.Radius}
}
