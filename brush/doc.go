// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package brush implements a freehand metaball brush: pointer samples
// are resolved to 3D placements, scaled by a pressure curve, mirrored
// across symmetry planes, and appended to strokes of implicit-surface
// elements that can be undone per stroke or per element group.
//
// [Session] is the entry point. It is a single-threaded state machine
// driven by host events; nothing in this package blocks, spawns
// goroutines or keeps a placement across events without writing it
// to the [Scene].
package brush
