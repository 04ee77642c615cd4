// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"fmt"
	"time"

	"cogentcore.org/metabrush/math32"
)

// Spaces are the spaces in which placement spacing is measured.
type Spaces int32 //enums:enum

const (
	// World measures spacing between placed positions in world units.
	World Spaces = iota

	// Screen measures spacing between pointer positions in pixels.
	Screen
)

// dedupePlaces is the number of decimal places that positions are
// rounded to when looking for coincident mirror copies.
const dedupePlaces = 7

// CommitFunc writes a placed group to the scene. If it fails,
// the group is not added to the stroke.
type CommitFunc func(g Group) error

// StrokeBuilder owns one in-progress stroke and appends element
// groups to it, one per accepted sample.
type StrokeBuilder struct {
	Resolver *Resolver
	Curve    PressureCurve
	Symmetry Symmetry

	// BaseSize scales the pressure curve output into a world radius.
	BaseSize float32

	Stiffness float32

	// Spacing is the minimum distance between consecutive placements,
	// in SpacingSpace units. Zero disables it.
	Spacing      float32
	SpacingSpace Spaces

	// Interval is the minimum time between consecutive placements.
	// Zero disables it.
	Interval time.Duration

	// Dedupe drops mirror copies that coincide with an earlier copy.
	Dedupe bool

	ids    *IDSource
	stroke *Stroke
	last   *accepted
}

// accepted is the last placement appended to the stroke.
type accepted struct {
	placement Placement
	screen    math32.Vector2
	time      time.Time
}

// NewStrokeBuilder returns a builder for a new open stroke, configured
// from cfg, drawing identifiers from ids.
func NewStrokeBuilder(cfg *Config, rs *Resolver, ids *IDSource, object ObjectID) *StrokeBuilder {
	return &StrokeBuilder{
		Resolver:     rs,
		Curve:        cfg.PressureCurve(),
		Symmetry:     cfg.Mirror,
		BaseSize:     cfg.BaseSize,
		Stiffness:    cfg.Stiffness,
		Spacing:      cfg.Spacing,
		SpacingSpace: cfg.SpacingSpace,
		Interval:     time.Duration(float64(cfg.Interval) * float64(time.Second)),
		Dedupe:       cfg.Dedupe,
		ids:          ids,
		stroke:       &Stroke{ID: ids.NextStroke(), Object: object},
	}
}

// Stroke returns the stroke being built.
func (sb *StrokeBuilder) Stroke() *Stroke {
	return sb.stroke
}

// Last returns the last accepted placement of the stroke, or nil.
func (sb *StrokeBuilder) Last() *Placement {
	if sb.last == nil {
		return nil
	}
	pl := sb.last.placement
	return &pl
}

// Place resolves the sample and, unless it is too close to the previous
// placement, appends one element group for it: the original element
// and its mirror copies. The group is passed to commit before it is
// appended; commit may be nil.
//
// It returns the group and true if one was appended, and false with
// a nil error if the sample was skipped by the spacing rules.
// Resolution failures return [ErrNoIntersection] or [ErrDegenerateView]
// and a sealed stroke returns [ErrStrokeClosed]; the stroke is not
// changed in any of these cases.
func (sb *StrokeBuilder) Place(view View, smp InputSample, commit CommitFunc) (Group, bool, error) {
	if sb.stroke.closed {
		return Group{}, false, ErrStrokeClosed
	}
	if sb.tooSoon(smp) {
		return Group{}, false, nil
	}
	if sb.last != nil && sb.SpacingSpace == Screen && sb.Spacing > 0 &&
		smp.Pos.DistanceTo(sb.last.screen) < sb.Spacing {
		return Group{}, false, nil
	}
	pl, err := sb.Resolver.Resolve(view, smp.Pos, sb.Last())
	if err != nil {
		return Group{}, false, err
	}
	if sb.last != nil && sb.SpacingSpace == World && sb.Spacing > 0 &&
		pl.Pos.DistanceTo(sb.last.placement.Pos) < sb.Spacing {
		return Group{}, false, nil
	}

	orig := Element{
		Stroke:    sb.stroke.ID,
		Object:    sb.stroke.Object,
		Placement: pl,
		Radius:    sb.BaseSize * sb.Curve.Map(smp.Pressure),
		Stiffness: sb.Stiffness,
	}
	els := sb.Symmetry.Expand(orig)
	if sb.Dedupe {
		els = dedupe(els)
	}
	for i := range els {
		els[i].ID = sb.ids.NextElement()
	}
	g := Group{Elements: els}
	if commit != nil {
		if err := commit(g); err != nil {
			return Group{}, false, fmt.Errorf("brush: commit element group: %w", err)
		}
	}
	sb.stroke.Groups = append(sb.stroke.Groups, g)
	sb.last = &accepted{placement: pl, screen: smp.Pos, time: smp.Time}
	return g, true, nil
}

func (sb *StrokeBuilder) tooSoon(smp InputSample) bool {
	if sb.Interval <= 0 || sb.last == nil || sb.last.time.IsZero() || smp.Time.IsZero() {
		return false
	}
	return smp.Time.Sub(sb.last.time) < sb.Interval
}

// Finish seals the stroke and returns it. Calling it again
// returns the same stroke.
func (sb *StrokeBuilder) Finish() *Stroke {
	sb.stroke.closed = true
	return sb.stroke
}

// dedupe drops elements whose rounded position matches an earlier element.
func dedupe(els []Element) []Element {
	type key [3]float64
	seen := make(map[key]bool, len(els))
	out := els[:0]
	for _, el := range els {
		p := el.Placement.Pos
		k := key{math32.RoundTo(p.X, dedupePlaces), math32.RoundTo(p.Y, dedupePlaces), math32.RoundTo(p.Z, dedupePlaces)}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, el)
	}
	return out
}
