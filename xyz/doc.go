// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a headless 3D scene that hosts the metaball brush:
// a camera that produces view rays, solid shapes to snap onto, and
// metaball objects holding the placed elements. A Scene implements
// [brush.Scene] and a Camera implements [brush.View].
//
// Scenes are read from and written to YAML files.
package xyz

//go:generate core generate
