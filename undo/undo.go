// Copyright (c) 2021, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package undo provides a LIFO undo history of additions, each
// recorded as the set of identifiers it added, together with a
// removal callback that reverses exactly those additions.
//
// Only identifiers are kept, not geometry, so that the memory used
// by a long session is bounded by the number of additions.
package undo

//go:generate core generate

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNothingToUndo is returned by [Manager.Undo] when the history is empty.
var ErrNothingToUndo = errors.New("nothing to undo")

// Granularities are the units at which additions are recorded.
type Granularities int32 //enums:enum

const (
	// Stroke records one entry per completed stroke.
	Stroke Granularities = iota

	// Element records one entry per placed element group
	// (an original element plus its mirror copies).
	Element
)

// Entry is one undo record, associated with one addition.
type Entry[K comparable] struct {

	// Granularity is the unit this entry was recorded at.
	Granularity Granularities

	// Action is a description of this action, for the user to see.
	Action string

	// IDs are the identifiers added by this action, in the order added.
	IDs []K
}

// Manager is the undo manager, holding the history of entries.
// It is not safe for concurrent use: the brush runs entirely
// on the host event thread.
type Manager[K comparable] struct {

	// Granularity is the unit that new entries should be recorded at,
	// as chosen by the owner before recording starts. Each entry keeps
	// its own granularity, so undo order is unaffected by changes to it.
	Granularity Granularities

	// Remove removes the given identifiers from the scene.
	// It is called by [Manager.Undo] with exactly the IDs of the entry being undone.
	Remove func(ids []K) error

	// Entries is the history, oldest first.
	Entries []*Entry[K]
}

// New returns a new [Manager] with the given granularity and removal function.
func New[K comparable](gran Granularities, remove func(ids []K) error) *Manager[K] {
	return &Manager[K]{Granularity: gran, Remove: remove}
}

// Record pushes a new entry covering the given ids, at the given
// granularity. Nothing is recorded for an empty set of ids, in which
// case nil is returned. The ids are copied.
func (um *Manager[K]) Record(gran Granularities, action string, ids []K) *Entry[K] {
	if len(ids) == 0 {
		return nil
	}
	e := &Entry[K]{Granularity: gran, Action: action, IDs: slices.Clone(ids)}
	um.Entries = append(um.Entries, e)
	return e
}

// RecordStroke records one entry covering every id added by a stroke,
// mirror copies included.
func (um *Manager[K]) RecordStroke(action string, ids []K) *Entry[K] {
	return um.Record(Stroke, action, ids)
}

// RecordGroup records one entry for a single element group, so that
// an original and its mirror copies are always undone together.
func (um *Manager[K]) RecordGroup(action string, ids []K) *Entry[K] {
	return um.Record(Element, action, ids)
}

// IsUndoAvail returns true if there is at least one undo record available.
func (um *Manager[K]) IsUndoAvail() bool {
	return len(um.Entries) > 0
}

// Len returns the number of entries in the history.
func (um *Manager[K]) Len() int {
	return len(um.Entries)
}

// Peek returns the entry that would be undone next, or nil.
func (um *Manager[K]) Peek() *Entry[K] {
	if len(um.Entries) == 0 {
		return nil
	}
	return um.Entries[len(um.Entries)-1]
}

// Undo pops the most recent entry and removes exactly its ids
// using [Manager.Remove]. It returns [ErrNothingToUndo] if the
// history is empty. The entry is popped even if removal fails,
// so that a broken entry can never block older ones.
func (um *Manager[K]) Undo() (*Entry[K], error) {
	n := len(um.Entries)
	if n == 0 {
		return nil, ErrNothingToUndo
	}
	e := um.Entries[n-1]
	um.Entries[n-1] = nil
	um.Entries = um.Entries[:n-1]
	if um.Remove == nil {
		return e, nil
	}
	if err := um.Remove(e.IDs); err != nil {
		return e, fmt.Errorf("undo %q: %w", e.Action, err)
	}
	return e, nil
}

// Reset clears the history without removing anything.
func (um *Manager[K]) Reset() {
	um.Entries = nil
}
