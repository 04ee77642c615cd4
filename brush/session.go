// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"cogentcore.org/metabrush/base/errors"
	"cogentcore.org/metabrush/base/logx"
	"cogentcore.org/metabrush/math32"
	"cogentcore.org/metabrush/undo"
)

// States are the drawing states of a [Session].
type States int32 //enums:enum

const (
	// Idle is between strokes.
	Idle States = iota

	// Drawing is while the pointer is pressed and a stroke is open.
	Drawing
)

// Stats are running counts for a [Session].
type Stats struct {

	// Strokes is the number of non-empty strokes committed
	// and not yet fully undone.
	Strokes int

	// Groups is the number of element groups placed.
	Groups int

	// Live is the number of placed elements not yet undone.
	Live int

	// Dropped is the number of samples dropped because they
	// could not be placed.
	Dropped int

	// History is the number of undo entries.
	History int
}

// Session is the brush state machine. It is driven only by calls
// from the host event thread: mode toggles, pointer press, move and
// release, redraw ticks and undo requests. It is Idle or Drawing,
// and separately active or inactive: input and preview are only
// handled while active.
type Session struct {

	// ID identifies the session in log messages.
	ID uuid.UUID

	// Scene is the host scene that elements are written to.
	Scene Scene

	// Settings are the user settings, copied on each [Session.Activate].
	Settings *Config

	// Cursor is the 3D cursor used by the CursorDepth mode.
	// It is read when each stroke starts.
	Cursor math32.Vector3

	config     Config
	active     bool
	state      States
	resolver   Resolver
	preview    Preview
	builder    *StrokeBuilder
	history    *undo.Manager[ElementID]
	ids        IDSource
	pointer    InputSample
	hasPointer bool
	degenerate *logx.Once
	owners     map[ElementID]ObjectID
	counts     map[ObjectID]int
	status     string
	stats      Stats
	log        *slog.Logger
}

// NewSession returns a new inactive session drawing into the given
// scene with the given settings. A nil settings uses the defaults.
func NewSession(sc Scene, settings *Config) *Session {
	if settings == nil {
		settings = NewConfig()
	}
	s := &Session{ID: uuid.New(), Scene: sc, Settings: settings}
	s.owners = map[ElementID]ObjectID{}
	s.counts = map[ObjectID]int{}
	s.log = slog.Default().With("session", s.ID.String())
	s.history = undo.New(settings.Undo, s.remove)
	return s
}

// Active returns whether drawing mode is on.
func (s *Session) Active() bool {
	return s.active
}

// State returns the drawing state.
func (s *Session) State() States {
	return s.state
}

// Config returns the settings snapshot in effect.
func (s *Session) Config() Config {
	return s.config
}

// Status returns the last user-visible status message.
func (s *Session) Status() string {
	return s.status
}

// Stats returns the running counts.
func (s *Session) Stats() Stats {
	st := s.stats
	st.History = s.history.Len()
	return st
}

// Stroke returns the open stroke, or nil if not drawing.
func (s *Session) Stroke() *Stroke {
	if s.builder == nil {
		return nil
	}
	return s.builder.Stroke()
}

// Activate turns drawing mode on, taking a snapshot of the settings,
// which must be valid. It does nothing if already active.
func (s *Session) Activate() error {
	if s.active {
		return nil
	}
	var cfg Config
	if err := copier.CopyWithOption(&cfg, s.Settings, copier.Option{DeepCopy: true}); err != nil {
		return fmt.Errorf("brush: copy settings: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.config = cfg
	s.history.Granularity = cfg.Undo
	s.resolver = Resolver{Mode: cfg.Mode, Depth: cfg.ViewDepth, FollowDepth: cfg.FollowDepth, Cursor: s.Cursor, Scene: s.Scene}
	s.preview = Preview{Resolver: &s.resolver, Curve: cfg.PressureCurve(), BaseSize: cfg.BaseSize}
	s.degenerate = &logx.Once{Logger: s.log}
	s.active = true
	s.hasPointer = false
	s.log.Info("brush mode on", "mode", cfg.Mode, "undo", cfg.Undo, "mirror", cfg.Mirror.Axes().String())
	return nil
}

// Deactivate turns drawing mode off. An open stroke is finished
// and committed, not discarded, and returned.
func (s *Session) Deactivate() *Stroke {
	if !s.active {
		return nil
	}
	var st *Stroke
	if s.state == Drawing {
		st = s.finish()
	}
	s.active = false
	s.hasPointer = false
	s.log.Info("brush mode off", "strokes", s.stats.Strokes, "live", s.stats.Live)
	return st
}

// Press starts a stroke at the given sample.
// It is ignored while inactive or already drawing.
func (s *Session) Press(view View, smp InputSample) error {
	if !s.active || s.state == Drawing {
		return nil
	}
	s.setPointer(smp)
	obj, err := s.Scene.NewObject(s.config.Resolution)
	if err != nil {
		s.status = "Could not start stroke: " + err.Error()
		return fmt.Errorf("brush: new stroke object: %w", err)
	}
	s.resolver.Cursor = s.Cursor
	s.resolver.Ignore = obj
	s.builder = NewStrokeBuilder(&s.config, &s.resolver, &s.ids, obj)
	s.state = Drawing
	s.log.Debug("stroke begin", "stroke", s.builder.Stroke().ID, "object", obj)
	s.place(view, smp)
	return nil
}

// Move records the pointer position for the preview and, while
// drawing, places an element group at it if the spacing allows.
func (s *Session) Move(view View, smp InputSample) {
	if !s.active {
		return
	}
	s.setPointer(smp)
	if s.state == Drawing {
		s.place(view, smp)
	}
}

// Release ends the stroke, committing it to the undo history,
// and returns it. It returns nil if not drawing.
func (s *Session) Release(view View, smp InputSample) *Stroke {
	if !s.active || s.state != Drawing {
		return nil
	}
	s.setPointer(smp)
	return s.finish()
}

// Redraw draws the brush marker for the current pointer position,
// returning whether one was drawn. Failures only suppress the marker.
func (s *Session) Redraw(view View, ov Overlay) bool {
	if !s.active || !s.hasPointer {
		return false
	}
	var prev *Placement
	if s.builder != nil {
		prev = s.builder.Last()
	}
	return s.preview.Draw(ov, view, s.pointer, prev)
}

// Undo reverses the most recent history entry: a whole stroke or a
// single element group, depending on the granularity it was recorded
// at. An open stroke is finished first so that it is the one undone.
// An empty history is not an error for the user: the returned status
// message says so, and [ErrNothingToUndo] is returned for callers that
// need to know.
func (s *Session) Undo() (string, error) {
	if s.state == Drawing {
		s.finish()
	}
	e, err := s.history.Undo()
	switch {
	case errors.Is(err, ErrNothingToUndo):
		s.status = "Nothing to undo"
	case e != nil:
		what := "stroke"
		if e.Granularity == undo.Element {
			what = "element group"
		}
		s.status = fmt.Sprintf("Undid %s (%d elements)", what, len(e.IDs))
		s.log.Debug("undo", "action", e.Action, "elements", len(e.IDs))
		if err != nil {
			s.status += ": " + err.Error()
			s.log.Error("undo", "err", err)
		}
	}
	return s.status, err
}

func (s *Session) setPointer(smp InputSample) {
	s.pointer = smp
	s.hasPointer = true
}

// place places one sample on the open stroke. Sample level failures
// are absorbed here.
func (s *Session) place(view View, smp InputSample) {
	g, ok, err := s.builder.Place(view, smp, s.commit)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoIntersection):
		s.stats.Dropped++
		return
	case errors.Is(err, ErrDegenerateView):
		s.stats.Dropped++
		s.degenerate.Warn("brush samples dropped", "err", err)
		return
	default:
		s.stats.Dropped++
		s.log.Error("brush place", "err", err)
		return
	}
	if !ok {
		return
	}
	s.stats.Groups++
	if s.history.Granularity == undo.Element {
		s.history.RecordGroup("Add Metaball Element(s)", g.IDs())
	}
}

// commit writes a group to the scene, all or nothing.
func (s *Session) commit(g Group) error {
	for i, el := range g.Elements {
		if err := s.Scene.AddPrimitive(el); err != nil {
			for _, done := range g.Elements[:i] {
				errors.Log(s.Scene.RemovePrimitive(done.ID))
			}
			return err
		}
	}
	for _, el := range g.Elements {
		s.owners[el.ID] = el.Object
		s.counts[el.Object]++
	}
	s.stats.Live += len(g.Elements)
	return nil
}

// finish seals the open stroke and records it.
func (s *Session) finish() *Stroke {
	st := s.builder.Finish()
	s.builder = nil
	s.state = Idle
	s.resolver.Ignore = 0
	if st.Len() == 0 {
		errors.Log(s.Scene.RemoveObject(st.Object))
		s.log.Debug("stroke empty", "stroke", st.ID)
		return st
	}
	s.stats.Strokes++
	if s.history.Granularity == undo.Stroke {
		s.history.RecordStroke("Metaball Stroke", st.IDs())
	}
	s.log.Debug("stroke commit", "stroke", st.ID, "groups", len(st.Groups), "elements", st.Len())
	return st
}

// remove is the undo removal callback. A stroke object is removed
// with its last element, so undoing every entry restores the scene.
func (s *Session) remove(ids []ElementID) error {
	var errs []error
	for _, id := range ids {
		if err := s.Scene.RemovePrimitive(id); err != nil {
			errs = append(errs, err)
			continue
		}
		s.stats.Live--
		obj, ok := s.owners[id]
		if !ok {
			continue
		}
		delete(s.owners, id)
		s.counts[obj]--
		if s.counts[obj] > 0 {
			continue
		}
		delete(s.counts, obj)
		s.stats.Strokes--
		if err := s.Scene.RemoveObject(obj); err != nil {
			errs = append(errs, err)
		}
		s.log.Debug("stroke object removed", "object", obj)
	}
	return errors.Join(errs...)
}
