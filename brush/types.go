// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"fmt"
	"math/bits"
	"strings"
	"time"

	"cogentcore.org/metabrush/math32"
)

// ElementID is the stable identifier of one placed element.
// Identifiers are never reused within a [Session].
type ElementID uint64

// StrokeID identifies one stroke within a [Session].
type StrokeID uint64

// ObjectID identifies a host object that holds the elements of a stroke.
// Zero means no object.
type ObjectID uint64

// IDSource hands out element and stroke identifiers from two
// monotonically increasing counters, starting at 1.
type IDSource struct {
	element uint64
	stroke  uint64
}

// NextElement returns a new element identifier.
func (ids *IDSource) NextElement() ElementID {
	ids.element++
	return ElementID(ids.element)
}

// NextStroke returns a new stroke identifier.
func (ids *IDSource) NextStroke() StrokeID {
	ids.stroke++
	return StrokeID(ids.stroke)
}

// Modifiers are the modifier keys held while a sample was taken.
type Modifiers uint8

const (
	Shift Modifiers = 1 << iota
	Control
	Alt
	Meta
)

// Has returns whether all of the given modifiers are set.
func (m Modifiers) Has(f Modifiers) bool {
	return m&f == f
}

// DefaultPressure is used for devices that report no pressure.
const DefaultPressure float32 = 1

// InputSample is one pointer sample. It is transient: it is only
// used to produce an [Element] during the event that delivered it.
type InputSample struct {

	// Pos is the position in screen (region) pixels,
	// with the origin at the top left.
	Pos math32.Vector2

	// Pressure is the pen pressure in the 0-1 range.
	Pressure float32

	// Time is when the sample was taken.
	Time time.Time

	// Mods are the modifier keys held.
	Mods Modifiers
}

// NewSample returns a sample with the pressure clamped to [0, 1].
func NewSample(pos math32.Vector2, pressure float32, t time.Time) InputSample {
	return InputSample{Pos: pos, Pressure: ClampPressure(pressure), Time: t}
}

// MouseSample returns a sample for a device that reports no pressure,
// which uses [DefaultPressure].
func MouseSample(pos math32.Vector2, t time.Time) InputSample {
	return InputSample{Pos: pos, Pressure: DefaultPressure, Time: t}
}

// ClampPressure clamps p to [0, 1], mapping NaN to [DefaultPressure].
func ClampPressure(p float32) float32 {
	if math32.IsNaN(p) {
		return DefaultPressure
	}
	return math32.Clamp(p, 0, 1)
}

// Placement is a resolved 3D position for a sample.
type Placement struct {

	// Pos is the world position.
	Pos math32.Vector3 `yaml:"pos"`

	// Normal is the surface normal for [SnapRaycast],
	// or the view ray direction for the other modes.
	Normal math32.Vector3 `yaml:"normal"`

	// Mode is the resolution mode that produced this placement.
	Mode Modes `yaml:"mode"`
}

// Axes is a set of mirror axes.
type Axes uint8

const (
	AxisX Axes = 1 << iota
	AxisY
	AxisZ
)

// Has returns whether all of the given axes are set.
func (a Axes) Has(b Axes) bool {
	return a&b == b
}

// Count returns the number of axes set.
func (a Axes) Count() int {
	return bits.OnesCount8(uint8(a))
}

func (a Axes) String() string {
	var sb strings.Builder
	for i, nm := range []string{"X", "Y", "Z"} {
		if a.Has(Axes(1 << i)) {
			sb.WriteString(nm)
		}
	}
	return sb.String()
}

func (a Axes) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText sets the axes from letters such as "XZ", in any case.
func (a *Axes) UnmarshalText(text []byte) error {
	var ax Axes
	for _, r := range strings.ToUpper(string(text)) {
		switch r {
		case 'X':
			ax |= AxisX
		case 'Y':
			ax |= AxisY
		case 'Z':
			ax |= AxisZ
		default:
			return fmt.Errorf("brush: invalid mirror axes %q", text)
		}
	}
	*a = ax
	return nil
}

// Element is one implicit-surface primitive placed by the brush.
// Elements are never changed after they are created.
type Element struct {
	ID ElementID `yaml:"id"`

	// Stroke is the stroke that placed this element.
	Stroke StrokeID `yaml:"stroke"`

	// Object is the host object holding this element.
	Object ObjectID `yaml:"object"`

	Placement Placement `yaml:",inline"`

	// Radius is the primitive radius in world units.
	Radius float32 `yaml:"radius"`

	// Stiffness is the field weight of the primitive.
	Stiffness float32 `yaml:"stiffness"`

	// Mirror is the set of axes this copy was mirrored across;
	// it is empty for the original element.
	Mirror Axes `yaml:"mirror,omitempty"`
}

// IsMirror returns whether the element is a mirror-generated copy.
func (el *Element) IsMirror() bool {
	return el.Mirror != 0
}

// Pos returns the world position of the element.
func (el *Element) Pos() math32.Vector3 {
	return el.Placement.Pos
}

// Group is one original element plus all of its mirror copies,
// the original first. A group is added and undone as a unit.
type Group struct {
	Elements []Element
}

// IDs returns the identifiers of the group elements, in order.
func (g Group) IDs() []ElementID {
	ids := make([]ElementID, len(g.Elements))
	for i := range g.Elements {
		ids[i] = g.Elements[i].ID
	}
	return ids
}

// Stroke is the ordered sequence of element groups placed in one
// drawing interaction, in drawing order. It is open while drawing
// and closed once the interaction ends.
type Stroke struct {
	ID StrokeID

	// Object is the host object holding the stroke elements.
	Object ObjectID

	Groups []Group

	closed bool
}

// Closed returns whether the stroke has been sealed.
func (st *Stroke) Closed() bool {
	return st.closed
}

// Len returns the number of elements in the stroke, mirrors included.
func (st *Stroke) Len() int {
	n := 0
	for _, g := range st.Groups {
		n += len(g.Elements)
	}
	return n
}

// Elements returns all elements of the stroke in drawing order.
func (st *Stroke) Elements() []Element {
	els := make([]Element, 0, st.Len())
	for _, g := range st.Groups {
		els = append(els, g.Elements...)
	}
	return els
}

// IDs returns the identifiers of all elements in drawing order.
func (st *Stroke) IDs() []ElementID {
	ids := make([]ElementID, 0, st.Len())
	for _, g := range st.Groups {
		ids = append(ids, g.IDs()...)
	}
	return ids
}
