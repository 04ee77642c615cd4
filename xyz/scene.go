// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/metabrush/base/ordmap"
	"cogentcore.org/metabrush/brush"
	"cogentcore.org/metabrush/math32"
)

// Scene is the overall scene: the camera that views it, the static
// solids, and the metaball objects created by the brush.
// It implements [brush.Scene]; like the brush, it is only used
// from a single event thread.
type Scene struct {
	Name string

	// Camera determines the view onto the scene.
	Camera Camera

	// Solids are the static surfaces, by name.
	Solids ordmap.Map[string, *Solid]

	// Objects are the metaball objects, in creation order.
	Objects ordmap.Map[brush.ObjectID, *Object]

	lastObject brush.ObjectID

	// owners maps each element to its object.
	owners map[brush.ElementID]brush.ObjectID
}

// NewScene returns a new empty scene with the default camera.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Defaults()
	return sc
}

// Defaults resets the scene to empty with the default camera.
func (sc *Scene) Defaults() {
	sc.Camera.Defaults()
	sc.Solids.Init()
	sc.Objects.Init()
	sc.lastObject = 0
	sc.owners = map[brush.ElementID]brush.ObjectID{}
}

// AddSolid adds a solid, which must be valid and have a unique name.
func (sc *Scene) AddSolid(sd *Solid) error {
	if err := sd.Validate(); err != nil {
		return err
	}
	if sc.Solids.Has(sd.Name) {
		return fmt.Errorf("xyz: duplicate solid name %q", sd.Name)
	}
	sc.Solids.Add(sd.Name, sd)
	return nil
}

// NumElements returns the number of elements over all objects.
func (sc *Scene) NumElements() int {
	return len(sc.owners)
}

// Element returns the element with the given identifier.
func (sc *Scene) Element(id brush.ElementID) (brush.Element, bool) {
	oid, ok := sc.owners[id]
	if !ok {
		return brush.Element{}, false
	}
	ob, _ := sc.Objects.ValueByKeyTry(oid)
	return ob.Elements.ValueByKeyTry(id)
}

// NewObject creates a new empty metaball object.
func (sc *Scene) NewObject(resolution float32) (brush.ObjectID, error) {
	if !(resolution > 0) {
		return 0, fmt.Errorf("xyz: invalid object resolution %g", resolution)
	}
	sc.lastObject++
	sc.Objects.Add(sc.lastObject, NewObject(sc.lastObject, resolution))
	return sc.lastObject, nil
}

// RemoveObject removes an object and all of its elements.
func (sc *Scene) RemoveObject(id brush.ObjectID) error {
	ob, ok := sc.Objects.ValueByKeyTry(id)
	if !ok {
		return fmt.Errorf("xyz: no object %d", id)
	}
	for _, eid := range ob.Elements.Keys() {
		delete(sc.owners, eid)
	}
	sc.Objects.DeleteKey(id)
	return nil
}

// AddPrimitive adds the element to its object.
func (sc *Scene) AddPrimitive(el brush.Element) error {
	ob, ok := sc.Objects.ValueByKeyTry(el.Object)
	if !ok {
		return fmt.Errorf("xyz: element %d: no object %d", el.ID, el.Object)
	}
	if _, has := sc.owners[el.ID]; has {
		return fmt.Errorf("xyz: duplicate element %d", el.ID)
	}
	ob.Elements.Add(el.ID, el)
	sc.owners[el.ID] = el.Object
	return nil
}

// RemovePrimitive removes the element from its object.
func (sc *Scene) RemovePrimitive(id brush.ElementID) error {
	oid, ok := sc.owners[id]
	if !ok {
		return fmt.Errorf("xyz: no element %d", id)
	}
	ob, _ := sc.Objects.ValueByKeyTry(oid)
	ob.Elements.DeleteKey(id)
	delete(sc.owners, id)
	return nil
}

// RayIntersection is one surface hit along a ray.
type RayIntersection struct {
	brush.Hit

	// Dist is the distance along the ray.
	Dist float32

	// Solid is the solid hit, or nil for a metaball object.
	Solid *Solid
}

// RayIntersections returns all the solids and objects hit by the ray,
// except the ignored object, sorted from closest to furthest.
func (sc *Scene) RayIntersections(ray math32.Ray, ignore brush.ObjectID) []RayIntersection {
	var hits []RayIntersection
	for _, sd := range sc.Solids.Values() {
		t, nrm, ok := sd.Intersect(ray)
		if !ok {
			continue
		}
		hits = append(hits, RayIntersection{Hit: brush.Hit{Pos: ray.At(t), Normal: nrm}, Dist: t, Solid: sd})
	}
	for _, ob := range sc.Objects.Values() {
		if ob.ID == ignore {
			continue
		}
		if t, hit, ok := ob.Intersect(ray); ok {
			hits = append(hits, RayIntersection{Hit: hit, Dist: t})
		}
	}
	slices.SortStableFunc(hits, func(a, b RayIntersection) int {
		return cmp.Compare(a.Dist, b.Dist)
	})
	return hits
}

// RayCast returns the closest hit along the ray.
func (sc *Scene) RayCast(ray math32.Ray, ignore brush.ObjectID) (brush.Hit, bool) {
	hits := sc.RayIntersections(ray, ignore)
	if len(hits) == 0 {
		return brush.Hit{}, false
	}
	return hits[0].Hit, true
}

var _ brush.Scene = (*Scene)(nil)
var _ brush.View = (*Camera)(nil)
