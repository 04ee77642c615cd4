// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package brush

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"cogentcore.org/metabrush/base/errors"
	"cogentcore.org/metabrush/base/reflectx"
	"cogentcore.org/metabrush/undo"
)

// Config is the brush configuration. It is edited between sessions;
// a [Session] takes a snapshot of it when it is activated, so that
// the mode, undo granularity and symmetry stay fixed while drawing.
type Config struct {

	// Mode is how each sample is resolved to a 3D position.
	Mode Modes `toml:"mode" default:"CursorDepth"`

	// Undo is whether one undo reverses a whole stroke or a single element group.
	Undo undo.Granularities `toml:"undo" default:"Stroke"`

	// Curve is the pressure response curve.
	Curve Curves `toml:"curve" default:"Linear"`

	// Exponent is the gamma of the Power curve: below 1 is softer, above 1 is sharper.
	Exponent float32 `toml:"exponent" default:"0.5"`

	// MinSize is the radius multiplier at zero pressure.
	MinSize float32 `toml:"min_size" default:"0.25"`

	// MaxSize is the radius multiplier at full pressure.
	MaxSize float32 `toml:"max_size" default:"1"`

	// BaseSize is the base brush radius in world units.
	BaseSize float32 `toml:"base_size" default:"1"`

	// Spacing is the minimum distance between consecutive placements
	// of a stroke, in SpacingSpace units.
	Spacing float32 `toml:"spacing" default:"0.1"`

	// SpacingSpace is whether Spacing is in world units or screen pixels.
	SpacingSpace Spaces `toml:"spacing_space" default:"World"`

	// Interval is the minimum time in seconds between consecutive
	// placements of a stroke; 0 disables it.
	Interval float32 `toml:"interval" default:"0"`

	// ViewDepth is the distance along the view ray for the ViewDepth mode.
	ViewDepth float32 `toml:"view_depth" default:"10"`

	// FollowDepth places each ViewDepth element on the depth plane of the
	// previous element of its stroke, instead of at ViewDepth.
	FollowDepth bool `toml:"follow_depth" default:"false"`

	// Stiffness is the field weight of each element.
	Stiffness float32 `toml:"stiffness" default:"2"`

	// Resolution is the surface resolution of each stroke object.
	Resolution float32 `toml:"resolution" default:"0.1"`

	// Mirror is the symmetry applied to every placement.
	Mirror Symmetry `toml:"mirror"`

	// Dedupe collapses mirror copies that coincide with an earlier
	// copy of the same group, as happens on a mirror plane.
	Dedupe bool `toml:"dedupe" default:"true"`
}

// NewConfig returns a new [Config] with default values.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Defaults()
	return cfg
}

// Defaults sets all fields to their default values.
func (cfg *Config) Defaults() {
	*cfg = Config{}
	if err := reflectx.SetFromDefaultTags(cfg); err != nil {
		panic(err)
	}
}

// PressureCurve returns the configured pressure curve.
func (cfg *Config) PressureCurve() PressureCurve {
	return PressureCurve{Kind: cfg.Curve, Min: cfg.MinSize, Max: cfg.MaxSize, Exponent: cfg.Exponent}
}

// Validate returns an error describing every invalid setting.
func (cfg *Config) Validate() error {
	var errs []error
	positive := func(name string, v float32) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, not %g", name, v))
		}
	}
	positive("base_size", cfg.BaseSize)
	positive("spacing", cfg.Spacing)
	positive("min_size", cfg.MinSize)
	positive("max_size", cfg.MaxSize)
	positive("view_depth", cfg.ViewDepth)
	positive("resolution", cfg.Resolution)
	if cfg.Curve == Power {
		positive("exponent", cfg.Exponent)
	}
	if cfg.MinSize > cfg.MaxSize {
		errs = append(errs, fmt.Errorf("min_size %g is larger than max_size %g", cfg.MinSize, cfg.MaxSize))
	}
	if cfg.Interval < 0 {
		errs = append(errs, fmt.Errorf("interval must not be negative, not %g", cfg.Interval))
	}
	if cfg.Stiffness < 0 {
		errs = append(errs, fmt.Errorf("stiffness must not be negative, not %g", cfg.Stiffness))
	}
	if cfg.Mode < 0 || cfg.Mode >= ModesN {
		errs = append(errs, fmt.Errorf("invalid mode %v", cfg.Mode))
	}
	if cfg.Undo < 0 || cfg.Undo >= undo.GranularitiesN {
		errs = append(errs, fmt.Errorf("invalid undo granularity %v", cfg.Undo))
	}
	if cfg.Curve < 0 || cfg.Curve >= CurvesN {
		errs = append(errs, fmt.Errorf("invalid curve %v", cfg.Curve))
	}
	if len(errs) > 0 {
		return fmt.Errorf("brush.Config: %w", errors.Join(errs...))
	}
	return nil
}

// OpenConfig reads a TOML config file on top of the default values
// and validates the result. Unknown keys are an error.
func OpenConfig(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	cfg := NewConfig()
	if err := cfg.ReadTOML(b); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// ReadTOML decodes TOML data on top of the current values and validates the result.
func (cfg *Config) ReadTOML(b []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

// Save writes the config to the given file in TOML format.
func (cfg *Config) Save(filename string) error {
	b, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}
