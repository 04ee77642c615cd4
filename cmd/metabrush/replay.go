// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"cogentcore.org/metabrush/base/errors"
	"cogentcore.org/metabrush/brush"
	"cogentcore.org/metabrush/math32"
	"cogentcore.org/metabrush/xyz"
)

// Event kinds.
const (
	ModeOn  = "mode-on"
	ModeOff = "mode-off"
	Press   = "press"
	Move    = "move"
	Release = "release"
	Redraw  = "redraw"
	Undo    = "undo"
	View    = "view"
	Escape  = "esc"
)

// event is one step of an event script.
type event struct {
	Kind string `yaml:"kind"`

	// X and Y are the pointer position in viewport pixels.
	X float32 `yaml:"x,omitempty"`
	Y float32 `yaml:"y,omitempty"`

	// Pressure is the pen pressure; a mouse is assumed if absent.
	Pressure *float32 `yaml:"pressure,omitempty"`

	// T is the time of the event in seconds from the start of the script.
	T float64 `yaml:"t,omitempty"`

	// Button is "left" or "right"; a right press cancels drawing mode.
	Button string `yaml:"button,omitempty"`

	// Shift, Ctrl and Alt are the modifier keys held.
	Shift bool `yaml:"shift,omitempty"`
	Ctrl  bool `yaml:"ctrl,omitempty"`
	Alt   bool `yaml:"alt,omitempty"`

	// Camera and cursor updates, for view events.
	Pos    *math32.Vector3 `yaml:"pos,omitempty"`
	Target *math32.Vector3 `yaml:"target,omitempty"`
	Ortho  *bool           `yaml:"ortho,omitempty"`
	Cursor *math32.Vector3 `yaml:"cursor,omitempty"`
}

// script is an event script file.
type script struct {
	Events []event `yaml:"events"`
}

func openScript(filename string) (*script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readScript(f)
}

func readScript(r io.Reader) (*script, error) {
	sp := &script{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(sp); err != nil && err != io.EOF {
		return nil, err
	}
	for i, ev := range sp.Events {
		switch ev.Kind {
		case ModeOn, ModeOff, Press, Move, Release, Redraw, Undo, View, Escape:
		default:
			return nil, fmt.Errorf("event %d: unknown kind %q", i+1, ev.Kind)
		}
	}
	return sp, nil
}

// overlay counts the brush markers drawn.
type overlay struct {
	loops int
	last  []math32.Vector2
}

func (ov *overlay) DrawLineLoop(pts []math32.Vector2, color math32.Vector4) {
	ov.loops++
	ov.last = pts
}

// replay drives a brush session from script events.
type replay struct {
	scene   *xyz.Scene
	session *brush.Session
	overlay *overlay
	start   time.Time

	// statuses are the undo status messages, printed once the
	// progress bar is done.
	statuses []string
}

func newReplay(sc *xyz.Scene, cfg *brush.Config) *replay {
	return &replay{
		scene:   sc,
		session: brush.NewSession(sc, cfg),
		overlay: &overlay{},
		start:   time.Now(),
	}
}

func (rp *replay) sample(ev event) brush.InputSample {
	pos := math32.Vec2(ev.X, ev.Y)
	tm := rp.start.Add(time.Duration(ev.T * float64(time.Second)))
	var smp brush.InputSample
	if ev.Pressure != nil {
		smp = brush.NewSample(pos, *ev.Pressure, tm)
	} else {
		smp = brush.MouseSample(pos, tm)
	}
	if ev.Shift {
		smp.Mods |= brush.Shift
	}
	if ev.Ctrl {
		smp.Mods |= brush.Control
	}
	if ev.Alt {
		smp.Mods |= brush.Alt
	}
	return smp
}

func (rp *replay) apply(ev event) error {
	s := rp.session
	view := &rp.scene.Camera
	switch ev.Kind {
	case ModeOn:
		return s.Activate()
	case ModeOff, Escape:
		s.Deactivate()
	case Press:
		if ev.Button == "right" {
			s.Deactivate()
			return nil
		}
		errors.Log(s.Press(view, rp.sample(ev)))
	case Move:
		s.Move(view, rp.sample(ev))
	case Release:
		s.Release(view, rp.sample(ev))
	case Redraw:
		s.Redraw(view, rp.overlay)
	case Undo:
		msg, _ := s.Undo()
		rp.statuses = append(rp.statuses, msg)
	case View:
		if ev.Pos != nil {
			rp.scene.Camera.Pos = *ev.Pos
		}
		if ev.Target != nil {
			rp.scene.Camera.Target = *ev.Target
		}
		if ev.Ortho != nil {
			rp.scene.Camera.Ortho = *ev.Ortho
		}
		if ev.Cursor != nil {
			s.Cursor = *ev.Cursor
		}
	}
	return nil
}

// finish ends an open stroke at the end of the script.
func (rp *replay) finish() {
	rp.session.Deactivate()
}
