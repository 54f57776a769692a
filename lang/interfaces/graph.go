// Mathlang
// Copyright (C) James Shubin and the project contributors
// Written by James Shubin <james@shubin.ca> and the project contributors
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


package interfaces

import (
	"io"
)

// GraphOptions are the parameters that graph samples and renders with.
type GraphOptions struct {
	// Width and Height are the size of the plot in characters.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Min and Max are the range of x values that are sampled.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// Samples is the number of x values in the range.
	Samples int `yaml:"samples"`
}

// DefaultGraphOptions returns the options used when none are configured.
func DefaultGraphOptions() *GraphOptions {
	return &GraphOptions{
		Width:   60,
		Height:  15,
		Min:     -10,
		Max:     10,
		Samples: 120,
	}
}

// Series is a sampled function. Y has one entry per sample, and it is NaN where
// the function has no value.
type Series struct {
	Name string
	Y    []float64
}

// Plotter renders sampled functions to a writer.
type Plotter interface {
	Plot(w io.Writer, series []*Series, opts *GraphOptions) error
}
