// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"cogentcore.org/metabrush/base/errors"
	"cogentcore.org/metabrush/undo"
)

var (
	// ErrNoIntersection means a snap raycast hit nothing.
	// The sample is dropped.
	ErrNoIntersection = errors.New("brush: no surface under the pointer")

	// ErrDegenerateView means the view state could not produce a usable ray
	// or depth plane. The sample is dropped.
	ErrDegenerateView = errors.New("brush: degenerate view")

	// ErrStrokeClosed means a placement was attempted on a sealed stroke.
	ErrStrokeClosed = errors.New("brush: stroke is closed")

	// ErrNothingToUndo means undo was requested with an empty history.
	ErrNothingToUndo = undo.ErrNothingToUndo
)
