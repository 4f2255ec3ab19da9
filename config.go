// raster2stl - convert raster silhouettes into extruded STL meshes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package raster2stl

import "log/slog"

const (
	defaultThreshold uint8   = 128
	defaultHeight    float64 = 10.0
	defaultScale     float64 = 0.05
)

// Config holds the recognized pipeline options. Use [NewConfig] to
// build one with defaults filled in, then apply [Option] values to
// override individual fields.
type Config struct {
	// Threshold is the luminance cutoff; pixels with luminance <=
	// Threshold are foreground (unless Invert is set, which flips the
	// comparison).
	Threshold uint8

	// Height is the extrusion height in final output units.
	Height float64

	// Scale is the uniform multiplier applied to every triangle
	// coordinate as the final pipeline step.
	Scale float64

	// Invert flips the foreground test to luminance > Threshold.
	// Purely additive; not part of the minimal option set.
	Invert bool

	// Logger receives stage-by-stage progress narration. [NewConfig]
	// replaces a nil Logger with slog.Default().
	Logger *slog.Logger
}

// Option configures a Config field.
type Option func(*Config)

// WithThreshold overrides the luminance threshold.
func WithThreshold(t uint8) Option {
	return func(c *Config) { c.Threshold = t }
}

// WithHeight overrides the extrusion height.
func WithHeight(h float64) Option {
	return func(c *Config) { c.Height = h }
}

// WithScale overrides the uniform output scale factor.
func WithScale(s float64) Option {
	return func(c *Config) { c.Scale = s }
}

// WithInvert flips which side of Threshold counts as foreground.
func WithInvert(invert bool) Option {
	return func(c *Config) { c.Invert = invert }
}

// WithLogger sets the logger used for pipeline progress narration.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// NewConfig returns a Config with the documented defaults (threshold
// 128, height 10.0, scale 0.05), with opts applied on top.
func NewConfig(opts ...Option) Config {
	c := Config{
		Threshold: defaultThreshold,
		Height:    defaultHeight,
		Scale:     defaultScale,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}
