// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"errors"
	"time"

	"cogentcore.org/metabrush/math32"
)

// testView looks straight down the -Z axis from z = 100,
// with one world unit per pixel.
type testView struct {
	forward math32.Vector3
	err     error
}

func newTestView() *testView {
	return &testView{forward: math32.Vec3(0, 0, -1)}
}

func (v *testView) Ray(p math32.Vector2) (math32.Ray, error) {
	if v.err != nil {
		return math32.Ray{}, v.err
	}
	return math32.NewRay(math32.Vec3(p.X, p.Y, 100), math32.Vec3(0, 0, -1)), nil
}

func (v *testView) Forward() math32.Vector3 {
	return v.forward
}

// testScene is an arena of primitives with a floor at z = 0
// covering x >= 0 that snap raycasts can hit.
type testScene struct {
	objects  map[ObjectID]bool
	prims    map[ElementID]Element
	order    []ElementID
	nextObj  ObjectID
	failAddN int // fail the nth AddPrimitive call, counting from 1
	adds     int
	raycasts int
}

func newTestScene() *testScene {
	return &testScene{objects: map[ObjectID]bool{}, prims: map[ElementID]Element{}}
}

func (sc *testScene) NewObject(resolution float32) (ObjectID, error) {
	sc.nextObj++
	sc.objects[sc.nextObj] = true
	return sc.nextObj, nil
}

func (sc *testScene) RemoveObject(id ObjectID) error {
	if !sc.objects[id] {
		return errors.New("no such object")
	}
	delete(sc.objects, id)
	return nil
}

func (sc *testScene) AddPrimitive(el Element) error {
	sc.adds++
	if sc.adds == sc.failAddN {
		return errors.New("host refused primitive")
	}
	if _, has := sc.prims[el.ID]; has {
		return errors.New("duplicate element id")
	}
	sc.prims[el.ID] = el
	sc.order = append(sc.order, el.ID)
	return nil
}

func (sc *testScene) RemovePrimitive(id ElementID) error {
	if _, has := sc.prims[id]; !has {
		return errors.New("no such element")
	}
	delete(sc.prims, id)
	return nil
}

func (sc *testScene) RayCast(ray math32.Ray, ignore ObjectID) (Hit, bool) {
	sc.raycasts++
	pt, ok := ray.IntersectPlane(math32.PlaneFromNormalAndPoint(math32.Vec3(0, 0, 1), math32.Vector3{}))
	if !ok || pt.X < 0 {
		return Hit{}, false
	}
	return Hit{Pos: pt, Normal: math32.Vec3(0, 0, 1)}, true
}

// positions returns the live primitive positions.
func (sc *testScene) positions() []math32.Vector3 {
	var ps []math32.Vector3
	for _, id := range sc.order {
		if el, has := sc.prims[id]; has {
			ps = append(ps, el.Placement.Pos)
		}
	}
	return ps
}

var t0 = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns a mouse sample at x, y taken ms milliseconds after t0.
func at(x, y float32, ms int) InputSample {
	return MouseSample(math32.Vec2(x, y), t0.Add(time.Duration(ms)*time.Millisecond))
}

// testConfig returns a valid config for the given mode.
func testConfig(mode Modes) *Config {
	cfg := NewConfig()
	cfg.Mode = mode
	return cfg
}
