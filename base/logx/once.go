// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"log/slog"
	"sync"
)

// Once logs a message the first time it is called and drops all
// later messages, so that a condition hit on every input event is
// reported only once. The zero value logs to [slog.Default].
type Once struct {
	// Logger is used instead of the default logger if non-nil.
	Logger *slog.Logger

	once sync.Once
}

// Log logs msg at the given level if nothing has been logged yet,
// and reports whether it did.
func (o *Once) Log(level slog.Level, msg string, args ...any) bool {
	logged := false
	o.once.Do(func() {
		lg := o.Logger
		if lg == nil {
			lg = slog.Default()
		}
		lg.Log(context.Background(), level, msg, args...)
		logged = true
	})
	return logged
}

// Warn is [Once.Log] at [slog.LevelWarn].
func (o *Once) Warn(msg string, args ...any) bool {
	return o.Log(slog.LevelWarn, msg, args...)
}
