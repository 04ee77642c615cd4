// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import "cogentcore.org/metabrush/math32"

// Hit is the result of a scene raycast.
type Hit struct {
	Pos    math32.Vector3
	Normal math32.Vector3

	// Object is the object that was hit, if it is a brush object.
	Object ObjectID
}

// Scene is the host scene that the brush places primitives into.
// All methods are called on the host event thread.
type Scene interface {

	// NewObject creates a new object to hold the elements of one stroke,
	// with the given surface resolution.
	NewObject(resolution float32) (ObjectID, error)

	// RemoveObject removes an object created by NewObject.
	RemoveObject(id ObjectID) error

	// AddPrimitive creates an implicit-surface primitive for the element.
	AddPrimitive(el Element) error

	// RemovePrimitive removes the primitive with the given identifier.
	RemovePrimitive(id ElementID) error

	// RayCast returns the nearest hit along the ray, ignoring
	// everything in the given object.
	RayCast(ray math32.Ray, ignore ObjectID) (Hit, bool)
}

// View is the current camera state of the viewport being drawn in.
// It must be evaluated at call time, since the view can change
// in the middle of a stroke.
type View interface {

	// Ray returns the view ray through the given screen position.
	Ray(screen math32.Vector2) (math32.Ray, error)

	// Forward returns the view direction.
	Forward() math32.Vector3
}

// Overlay draws transient screen-space shapes over the viewport.
type Overlay interface {
	DrawLineLoop(pts []math32.Vector2, color math32.Vector4)
}
