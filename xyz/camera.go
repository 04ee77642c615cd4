// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"fmt"

	"cogentcore.org/metabrush/base/errors"
	"cogentcore.org/metabrush/math32"
)

// ErrDegenerateCamera is returned when the camera state
// cannot produce a view ray.
var ErrDegenerateCamera = errors.New("xyz: degenerate camera")

// Camera defines the properties of the camera. Screen positions
// are in viewport pixels with the origin at the top left.
type Camera struct {

	// Pos is the position of the camera.
	Pos math32.Vector3 `yaml:"pos"`

	// Target is where the camera is pointing.
	Target math32.Vector3 `yaml:"target"`

	// UpDir is which way is up; it defaults to the positive Y axis.
	UpDir math32.Vector3 `yaml:"up"`

	// Ortho makes the camera orthographic instead of perspective.
	Ortho bool `yaml:"ortho,omitempty"`

	// FOV is the vertical field of view in degrees, for perspective.
	FOV float32 `yaml:"fov" default:"30"`

	// Height is the height of the view volume in world units, for ortho.
	Height float32 `yaml:"height" default:"10"`

	// Size is the viewport size in pixels.
	Size math32.Vector2 `yaml:"size"`
}

// Defaults sets the default camera, looking at the origin
// from 0,0,10 with the Y axis up, in an 800x600 viewport.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Height = 10
	cm.Ortho = false
	cm.Size = math32.Vec2(800, 600)
	cm.Pos = math32.Vec3(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at the given target location, using the
// given up direction, which defaults to the Y axis if nil.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir.IsNil() {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
}

// LookAtOrigin points the camera at the origin with the Y axis up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Forward returns the unit view direction, or the zero vector if
// the camera is at its target or has no valid up direction.
func (cm *Camera) Forward() math32.Vector3 {
	fwd, _, _, err := cm.basis()
	if err != nil {
		return math32.Vector3{}
	}
	return fwd
}

// basis returns the orthonormal camera frame.
func (cm *Camera) basis() (fwd, right, up math32.Vector3, err error) {
	vv := cm.Target.Sub(cm.Pos)
	if !vv.IsFinite() || vv.LengthSquared() < math32.Epsilon*math32.Epsilon {
		err = fmt.Errorf("%w: camera is at its target", ErrDegenerateCamera)
		return
	}
	fwd = vv.Normal()
	up = cm.UpDir
	if up.IsNil() {
		up = math32.Vec3(0, 1, 0)
	}
	right = fwd.Cross(up)
	if right.LengthSquared() < math32.Epsilon*math32.Epsilon {
		err = fmt.Errorf("%w: up direction %v is parallel to the view", ErrDegenerateCamera, up)
		return
	}
	right = right.Normal()
	up = right.Cross(fwd)
	return
}

// frame returns the camera frame together with the aspect ratio and
// the half height of the view at unit distance (perspective) or in
// world units (ortho).
func (cm *Camera) frame() (fwd, right, up math32.Vector3, aspect, half float32, err error) {
	fwd, right, up, err = cm.basis()
	if err != nil {
		return
	}
	if !(cm.Size.X > 0 && cm.Size.Y > 0) {
		err = fmt.Errorf("%w: viewport size %v", ErrDegenerateCamera, cm.Size)
		return
	}
	aspect = cm.Size.X / cm.Size.Y
	if cm.Ortho {
		if !(cm.Height > 0) {
			err = fmt.Errorf("%w: ortho height %g", ErrDegenerateCamera, cm.Height)
		}
		half = cm.Height / 2
		return
	}
	if !(cm.FOV > 0 && cm.FOV < 180) {
		err = fmt.Errorf("%w: field of view %g", ErrDegenerateCamera, cm.FOV)
		return
	}
	half = math32.Tan(math32.DegToRad(cm.FOV / 2))
	return
}

// Ray returns the view ray through the given screen position.
func (cm *Camera) Ray(screen math32.Vector2) (math32.Ray, error) {
	fwd, right, up, aspect, half, err := cm.frame()
	if err != nil {
		return math32.Ray{}, err
	}
	nx := 2*screen.X/cm.Size.X - 1
	ny := 1 - 2*screen.Y/cm.Size.Y
	offset := right.MulScalar(nx * half * aspect).Add(up.MulScalar(ny * half))
	if cm.Ortho {
		return math32.NewRay(cm.Pos.Add(offset), fwd), nil
	}
	return math32.NewRay(cm.Pos, fwd.Add(offset)), nil
}

// Project returns the screen position of the given world point,
// and false if it is behind a perspective camera or the camera
// is degenerate.
func (cm *Camera) Project(pt math32.Vector3) (math32.Vector2, bool) {
	fwd, right, up, aspect, half, err := cm.frame()
	if err != nil {
		return math32.Vector2{}, false
	}
	rel := pt.Sub(cm.Pos)
	x, y := rel.Dot(right), rel.Dot(up)
	if !cm.Ortho {
		z := rel.Dot(fwd)
		if z < math32.Epsilon {
			return math32.Vector2{}, false
		}
		x /= z
		y /= z
	}
	nx := x / (half * aspect)
	ny := y / half
	return math32.Vec2((nx+1)/2*cm.Size.X, (1-ny)/2*cm.Size.Y), true
}
