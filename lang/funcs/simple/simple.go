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


// Package simple contains helpers for the common shapes of built-in, so that
// most of them can be written as a plain golang function over numbers.
package simple

import (
	"fmt"
	"strings"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"
)

// Unary builds a built-in which takes one number and returns one number.
func Unary(name, doc string, fn func(float64) float64) *interfaces.Builtin {
	return &interfaces.Builtin{
		Name:  name,
		Sig:   sig(name, 1),
		Doc:   doc,
		Arity: 1,
		Fn: func(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
			x, err := types.ToNumber(args[0])
			if err != nil {
				return nil, err
			}
			return types.NewNumber(fn(x)), nil
		},
	}
}

// Binary builds a built-in which takes two numbers and returns one number. The
// function may fail.
func Binary(name, doc string, fn func(float64, float64) (float64, error)) *interfaces.Builtin {
	return &interfaces.Builtin{
		Name:  name,
		Sig:   sig(name, 2),
		Doc:   doc,
		Arity: 2,
		Fn: func(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
			nums, err := Numbers(args)
			if err != nil {
				return nil, err
			}
			result, err := fn(nums[0], nums[1])
			if err != nil {
				return nil, err
			}
			return types.NewNumber(result), nil
		},
	}
}

// Numbers coerces each of the args to a number.
func Numbers(args []types.Value) ([]float64, error) {
	nums := []float64{}
	for i, x := range args {
		f, err := types.ToNumber(x)
		if err != nil {
			return nil, errwrap.Wrapf(err, "arg %s", util.NumToAlpha(i))
		}
		nums = append(nums, f)
	}
	return nums, nil
}

// sig builds a signature with alphabetical arg names, such as `f(a, b)`.
func sig(name string, n int) string {
	args := []string{}
	for i := 0; i < n; i++ {
		args = append(args, util.NumToAlpha(i))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}
