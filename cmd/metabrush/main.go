// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command metabrush replays a pointer event script through the
// metaball brush against a scene, and writes the resulting scene.
//
//	metabrush -scene desk.yaml -events strokes.yaml -out result.yaml
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"

	"cogentcore.org/metabrush/base/logx"
	"cogentcore.org/metabrush/brush"
	"cogentcore.org/metabrush/xyz"
)

type options struct {
	config string
	scene  string
	events string
	out    string
	quiet  bool
}

func run() error {
	var opt options
	flag.StringVar(&opt.config, "config", "", "brush config `file` (TOML); defaults are used if empty")
	flag.StringVar(&opt.scene, "scene", "", "scene `file` (YAML); an empty scene is used if empty")
	flag.StringVar(&opt.events, "events", "", "event script `file` (YAML)")
	flag.StringVar(&opt.out, "out", "", "write the resulting scene to this YAML `file`")
	flag.BoolVar(&opt.quiet, "quiet", false, "do not show replay progress")
	vv := flag.Bool("vv", false, "log debug messages")
	v := flag.Bool("v", false, "log info messages")
	q := flag.Bool("q", false, "only log errors")
	flag.Parse()

	logx.UserLevel = logx.LevelFromFlags(*vv, *v, *q)
	logx.SetDefaultLogger()

	if opt.events == "" {
		flag.Usage()
		return fmt.Errorf("-events is required")
	}

	cfg := brush.NewConfig()
	if opt.config != "" {
		var err error
		cfg, err = brush.OpenConfig(opt.config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	sc := xyz.NewScene("scene")
	if opt.scene != "" {
		var err error
		sc, err = xyz.Open(opt.scene)
		if err != nil {
			return fmt.Errorf("failed to load scene: %w", err)
		}
	}

	sp, err := openScript(opt.events)
	if err != nil {
		return fmt.Errorf("failed to load events: %w", err)
	}

	var pb *progressbar.ProgressBar
	if opt.quiet {
		pb = progressbar.DefaultSilent(int64(len(sp.Events)), "replay")
	} else {
		pb = progressbar.Default(int64(len(sp.Events)), "replay")
	}
	defer pb.Close()

	rp := newReplay(sc, cfg)
	for i, ev := range sp.Events {
		if err := rp.apply(ev); err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, ev.Kind, err)
		}
		pb.Add(1)
	}
	rp.finish()
	pb.Finish()
	for _, msg := range rp.statuses {
		fmt.Println(msg)
	}

	st := rp.session.Stats()
	fmt.Printf("strokes: %d  groups: %d  elements: %d  dropped: %d  history: %d  markers: %d\n",
		st.Strokes, st.Groups, st.Live, st.Dropped, st.History, rp.overlay.loops)

	if opt.out != "" {
		if err := sc.Save(opt.out); err != nil {
			return fmt.Errorf("failed to save scene: %w", err)
		}
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "metabrush: %v\n", err)
		os.Exit(1)
	}
}
