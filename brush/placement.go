// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"fmt"

	"cogentcore.org/metabrush/math32"
)

// Modes are the ways a screen sample is resolved to a 3D position.
type Modes int32 //enums:enum

const (
	// ViewDepth places the point at a fixed distance along the view ray,
	// or on the depth plane of the previous element.
	ViewDepth Modes = iota

	// CursorDepth places the point on the plane through the 3D cursor,
	// perpendicular to the view direction.
	CursorDepth

	// SnapRaycast places the point on the first scene surface
	// under the pointer.
	SnapRaycast
)

// Resolver converts screen samples into placements.
// It never modifies the scene.
type Resolver struct {
	Mode Modes

	// Depth is the distance along the view ray for [ViewDepth].
	Depth float32

	// FollowDepth makes [ViewDepth] keep the depth plane of the
	// previous placement of the stroke, if there is one.
	FollowDepth bool

	// Cursor is the 3D cursor position for [CursorDepth].
	Cursor math32.Vector3

	// Scene is raycast against for [SnapRaycast].
	Scene Scene

	// Ignore is an object that [SnapRaycast] does not hit,
	// normally the object of the stroke being drawn.
	Ignore ObjectID
}

// Resolve returns the placement for the given screen position,
// using the view as it is at the time of the call. prev is the
// previous placement of the current stroke, or nil.
// It fails with [ErrNoIntersection] or [ErrDegenerateView].
func (rs *Resolver) Resolve(view View, pos math32.Vector2, prev *Placement) (Placement, error) {
	if view == nil {
		return Placement{}, fmt.Errorf("%w: no view", ErrDegenerateView)
	}
	ray, err := view.Ray(pos)
	if err != nil {
		return Placement{}, fmt.Errorf("%w: %v", ErrDegenerateView, err)
	}
	if !ray.IsValid() {
		return Placement{}, fmt.Errorf("%w: invalid view ray", ErrDegenerateView)
	}
	ray.Dir = ray.Dir.Normal()
	pl := Placement{Normal: ray.Dir, Mode: rs.Mode}
	switch rs.Mode {
	case ViewDepth:
		if rs.FollowDepth && prev != nil {
			pl.Pos, err = rs.onViewPlane(view, ray, prev.Pos)
			if err != nil {
				return Placement{}, err
			}
			break
		}
		if rs.Depth <= 0 {
			return Placement{}, fmt.Errorf("%w: view depth %g", ErrDegenerateView, rs.Depth)
		}
		pl.Pos = ray.At(rs.Depth)
	case CursorDepth:
		pl.Pos, err = rs.onViewPlane(view, ray, rs.Cursor)
		if err != nil {
			return Placement{}, err
		}
	case SnapRaycast:
		if rs.Scene == nil {
			return Placement{}, ErrNoIntersection
		}
		hit, ok := rs.Scene.RayCast(ray, rs.Ignore)
		if !ok {
			return Placement{}, ErrNoIntersection
		}
		pl.Pos = hit.Pos
		pl.Normal = hit.Normal
	default:
		return Placement{}, fmt.Errorf("brush: unknown placement mode %v", rs.Mode)
	}
	return pl, nil
}

// onViewPlane intersects the ray with the plane through pt
// that is perpendicular to the view direction.
func (rs *Resolver) onViewPlane(view View, ray math32.Ray, pt math32.Vector3) (math32.Vector3, error) {
	fwd := view.Forward()
	if !fwd.IsFinite() || fwd.LengthSquared() < math32.Epsilon*math32.Epsilon {
		return math32.Vector3{}, fmt.Errorf("%w: zero-length view vector", ErrDegenerateView)
	}
	p, ok := ray.IntersectPlane(math32.PlaneFromNormalAndPoint(fwd, pt))
	if !ok {
		return math32.Vector3{}, fmt.Errorf("%w: depth plane at %v is not in front of the view", ErrDegenerateView, pt)
	}
	return p, nil
}
