// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// NewHandler returns a text [slog.Handler] writing to w that only
// handles records at or above [UserLevel] at the time it is called.
// Level names are colored when w is a terminal that supports it.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: UserLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				a.Value = slog.StringValue(LevelStyle(out, lvl).String())
			}
			return a
		},
	})
}

// LevelStyle returns the level name styled with the color
// used for that level on the given output.
func LevelStyle(out *termenv.Output, lvl slog.Level) termenv.Style {
	st := out.String(lvl.String())
	switch {
	case lvl >= slog.LevelError:
		return st.Foreground(termenv.ANSIRed).Bold()
	case lvl >= slog.LevelWarn:
		return st.Foreground(termenv.ANSIYellow)
	case lvl >= slog.LevelInfo:
		return st.Foreground(termenv.ANSICyan)
	default:
		return st.Foreground(termenv.ANSIBrightBlack)
	}
}

// SetDefaultLogger sets the default logger to one using [NewHandler]
// on [os.Stderr] with the current [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
