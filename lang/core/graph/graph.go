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


// Package coregraph contains the graph built-in, which samples functions and
// draws them in the terminal.
package coregraph

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/mathlang/mathlang/lang/funcs"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/guptarohit/asciigraph"
)

// ModuleName is the prefix given to all the functions in this module.
const ModuleName = "graph"

// Module returns the graph built-in.
func Module() *funcs.Module {
	return &funcs.Module{
		Name: ModuleName,
		Builtins: []*interfaces.Builtin{
			{
				Name:     "graph",
				Sig:      "graph(f...)",
				Doc:      "draw each function of one arg over the configured range",
				Arity:    1,
				Variadic: true,
				Sink:     true,
				Fn:       Graph,
			},
		},
	}
}

// Graph samples each of the functions and hands the result to the plotter of
// the runtime. Points where a function is undefined are left as gaps.
func Graph(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	opts := scope.Runtime.Graph
	if opts == nil {
		opts = interfaces.DefaultGraphOptions()
	}
	if opts.Samples < 2 || !(opts.Min < opts.Max) {
		return nil, types.Errorf(types.ErrDomain, "invalid graph range [%v, %v] with %d samples", opts.Min, opts.Max, opts.Samples)
	}

	series := []*interfaces.Series{}
	for _, arg := range args {
		name, err := types.ToFuncName(arg)
		if err != nil {
			return nil, err
		}
		s, err := Sample(scope, name, opts)
		if err != nil {
			return nil, errwrap.Wrapf(err, "could not sample `%s`", name)
		}
		series = append(series, s)
	}

	plotter := scope.Runtime.Plotter
	if plotter == nil {
		plotter = &Terminal{}
	}
	w := scope.Runtime.Stdout
	if w == nil {
		w = io.Discard
	}
	if err := plotter.Plot(w, series, opts); err != nil {
		return nil, errwrap.Wrapf(err, "could not plot")
	}
	return types.Default(), nil
}

// Sample calls the function at evenly spaced points across the range. A point
// which is outside of the domain of the function, or which has no finite value,
// is NaN.
func Sample(scope *interfaces.Scope, name string, opts *interfaces.GraphOptions) (*interfaces.Series, error) {
	step := (opts.Max - opts.Min) / float64(opts.Samples-1)
	y := []float64{}
	for i := 0; i < opts.Samples; i++ {
		x := opts.Min + float64(i)*step
		result, err := scope.Call(name, []types.Value{types.NewNumber(x)})
		if errors.Is(err, types.ErrDomain) || errors.Is(err, types.ErrArithmetic) {
			y = append(y, math.NaN())
			continue
		}
		if err != nil {
			return nil, err
		}
		f, err := types.ToNumber(result)
		if err != nil {
			return nil, err
		}
		if math.IsInf(f, 0) {
			f = math.NaN()
		}
		y = append(y, f)
	}
	return &interfaces.Series{
		Name: name,
		Y:    y,
	}, nil
}

// Terminal is the plotter which draws line charts with text characters.
type Terminal struct{}

// Plot draws all the series on one chart, captioned with their names.
func (obj *Terminal) Plot(w io.Writer, series []*interfaces.Series, opts *interfaces.GraphOptions) error {
	names := []string{}
	data := [][]float64{}
	for _, s := range series {
		names = append(names, s.Name)
		if empty(s.Y) {
			continue // nothing to draw
		}
		data = append(data, s.Y)
	}
	caption := fmt.Sprintf("%s over [%v, %v]", strings.Join(names, ", "), opts.Min, opts.Max)

	if len(data) == 0 {
		_, err := fmt.Fprintf(w, "%s: no points to draw\n", caption)
		return err
	}

	chart := asciigraph.PlotMany(data,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Caption(caption),
	)
	_, err := fmt.Fprintln(w, chart)
	return err
}

// empty returns true if none of the samples are numbers.
func empty(y []float64) bool {
	for _, f := range y {
		if !math.IsNaN(f) {
			return false
		}
	}
	return true
}
