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


// Package coremath contains the numeric built-ins.
package coremath

import (
	"math"

	"github.com/mathlang/mathlang/lang/funcs"
	"github.com/mathlang/mathlang/lang/funcs/simple"
	"github.com/mathlang/mathlang/lang/interfaces"
)

const (
	// ModuleName is the prefix given to all the functions in this module.
	ModuleName = "math"
)

// Module returns the numeric built-ins.
func Module() *funcs.Module {
	return &funcs.Module{
		Name: ModuleName,
		Builtins: []*interfaces.Builtin{
			simple.Unary("round", "round to the nearest integer, half away from zero", math.Round),
			simple.Unary("ceil", "round up to an integer", math.Ceil),
			simple.Unary("floor", "round down to an integer", math.Floor),
			simple.Unary("log", "natural logarithm", math.Log),
			simple.Unary("sin", "sine of an angle in radians", math.Sin),
			simple.Unary("cos", "cosine of an angle in radians", math.Cos),
			simple.Unary("tan", "tangent of an angle in radians", math.Tan),
			simple.Unary("sqrt", "square root", math.Sqrt),
			simple.Unary("cbrt", "cube root", math.Cbrt),
			simple.Unary("abs", "absolute value", math.Abs),
			simple.Unary("exp", "e raised to the power of the arg", math.Exp),
			simple.Binary("nrt", "the nth root of a number, as in nrt(x, n)", Nrt),
		},
	}
}
