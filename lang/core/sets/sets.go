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


// Package coresets contains the built-ins which work with bounded and symbolic
// sets.
package coresets

import (
	"math"

	"github.com/mathlang/mathlang/lang/funcs"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
)

const (
	// ModuleName is the prefix given to all the functions in this module.
	ModuleName = "sets"

	// MaxRange is the largest number of elements that range will build.
	MaxRange = 1000000

	// maxExact is the largest magnitude below which every integer is exactly
	// representable.
	maxExact = 1 << 53
)

// Module returns the set built-ins.
func Module() *funcs.Module {
	return &funcs.Module{
		Name: ModuleName,
		Builtins: []*interfaces.Builtin{
			{
				Name:  "len",
				Sig:   "len(s)",
				Doc:   "number of elements, which is inf for a set that is not known to be finite",
				Arity: 1,
				Fn:    Len,
			},
			{
				Name:  "get",
				Sig:   "get(s, i)",
				Doc:   "the element at the zero-indexed position",
				Arity: 2,
				Fn:    Get,
			},
			{
				Name:  "set",
				Sig:   "set(s, i, v)",
				Doc:   "a copy of the set with the element at the position replaced",
				Arity: 3,
				Fn:    Set,
			},
			{
				Name:     "sum",
				Sig:      "sum(s...)",
				Doc:      "sum of all the elements of all the sets",
				Arity:    1,
				Variadic: true,
				Fn:       reducer(0, func(a, b float64) float64 { return a + b }),
			},
			{
				Name:     "product",
				Sig:      "product(s...)",
				Doc:      "product of all the elements of all the sets",
				Arity:    1,
				Variadic: true,
				Fn:       reducer(1, func(a, b float64) float64 { return a * b }),
			},
			{
				Name:     "min",
				Sig:      "min(s...)",
				Doc:      "smallest of all the elements of all the sets",
				Arity:    1,
				Variadic: true,
				Fn:       extreme("min", math.Min),
			},
			{
				Name:     "max",
				Sig:      "max(s...)",
				Doc:      "largest of all the elements of all the sets",
				Arity:    1,
				Variadic: true,
				Fn:       extreme("max", math.Max),
			},
			{
				Name:     "map",
				Sig:      "map(s..., f)",
				Doc:      "apply the function to each element of each set, in order",
				Arity:    2,
				Variadic: true,
				Fn:       Map,
			},
			{
				Name:  "elements",
				Sig:   "elements(s)",
				Doc:   "the elements of a finite set, as a bounded set",
				Arity: 1,
				Fn:    Elements,
			},
			{
				Name:  "range",
				Sig:   "range(a, b)",
				Doc:   "the integers from a to b inclusive, as a bounded set",
				Arity: 2,
				Fn:    Range,
			},
			{
				Name:  "union",
				Sig:   "union(a, b)",
				Doc:   "symbolic set of the values in either set",
				Arity: 2,
				Fn: algebra(func(a, b types.Domain) types.Domain {
					return &types.UnionDomain{A: a, B: b}
				}),
			},
			{
				Name:  "intersection",
				Sig:   "intersection(a, b)",
				Doc:   "symbolic set of the values in both sets",
				Arity: 2,
				Fn: algebra(func(a, b types.Domain) types.Domain {
					return &types.IntersectionDomain{A: a, B: b}
				}),
			},
			{
				Name:  "difference",
				Sig:   "difference(a, b)",
				Doc:   "symbolic set of the values in the first set but not the second",
				Arity: 2,
				Fn: algebra(func(a, b types.Domain) types.Domain {
					return &types.DifferenceDomain{A: a, B: b}
				}),
			},
		},
	}
}

// Len returns the number of elements of a set. A scalar has one element, and a
// symbolic set which isn't known to be finite has an unbounded number.
func Len(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	switch x := args[0].(type) {
	case *types.SetValue:
		return types.NewNumber(float64(x.Len())), nil
	case *types.DomainValue:
		l, err := types.Len(x.V, scope)
		if err != nil {
			return nil, err
		}
		return types.NewNumber(l), nil
	}
	return types.NewNumber(1), nil
}

// Get returns the element at a position.
func Get(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	s, err := types.ToSet(args[0], scope)
	if err != nil {
		return nil, err
	}
	i, err := types.ToIndex(args[1])
	if err != nil {
		return nil, err
	}
	return s.Get(i)
}

// Set returns a new set with the element at a position replaced.
func Set(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	s, err := types.ToSet(args[0], scope)
	if err != nil {
		return nil, err
	}
	i, err := types.ToIndex(args[1])
	if err != nil {
		return nil, err
	}
	return s.Set(i, args[2])
}

// Elements materializes a finite set.
func Elements(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	return types.ToSet(args[0], scope)
}

// Range returns the integers between the two bounds, inclusive. The bounds are
// rounded inwards.
func Range(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	a, err := types.ToNumber(args[0])
	if err != nil {
		return nil, err
	}
	b, err := types.ToNumber(args[1])
	if err != nil {
		return nil, err
	}
	lo, hi := math.Ceil(a), math.Floor(b)
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return nil, types.Errorf(types.ErrType, "range bounds must be finite")
	}
	if math.Abs(lo) > maxExact || math.Abs(hi) > maxExact {
		return nil, types.Errorf(types.ErrIndex, "range bounds must be within %v", maxExact)
	}
	if hi < lo {
		return types.NewSet(), nil
	}
	if hi-lo+1 > MaxRange {
		return nil, types.Errorf(types.ErrIndex, "range of %v elements is too large", hi-lo+1)
	}
	n := int(hi-lo) + 1
	values := make([]types.Value, n)
	for i := 0; i < n; i++ {
		values[i] = types.NewNumber(lo + float64(i))
	}
	return types.NewSet(values...), nil
}

// flatten coerces each of the args to a set and returns all of the elements as
// numbers.
func flatten(scope *interfaces.Scope, args []types.Value) ([]float64, error) {
	nums := []float64{}
	for _, arg := range args {
		s, err := types.ToSet(arg, scope)
		if err != nil {
			return nil, err
		}
		for _, x := range s.V {
			f, err := types.ToNumber(x)
			if err != nil {
				return nil, err
			}
			nums = append(nums, f)
		}
	}
	return nums, nil
}

// reducer builds a built-in which folds all of the elements with a function.
func reducer(initial float64, fn func(a, b float64) float64) interfaces.BuiltinFunc {
	return func(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
		nums, err := flatten(scope, args)
		if err != nil {
			return nil, err
		}
		result := initial
		for _, x := range nums {
			result = fn(result, x)
		}
		return types.NewNumber(result), nil
	}
}

// extreme is like reducer but there is no initial value, so it needs at least
// one element.
func extreme(name string, fn func(a, b float64) float64) interfaces.BuiltinFunc {
	return func(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
		nums, err := flatten(scope, args)
		if err != nil {
			return nil, err
		}
		if len(nums) == 0 {
			return nil, types.Errorf(types.ErrIndex, "%s of no elements", name)
		}
		result := nums[0]
		for _, x := range nums[1:] {
			result = fn(result, x)
		}
		return types.NewNumber(result), nil
	}
}

// algebra builds a built-in which combines two sets symbolically.
func algebra(fn func(a, b types.Domain) types.Domain) interfaces.BuiltinFunc {
	return func(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
		a, err := types.ToDomain(args[0])
		if err != nil {
			return nil, err
		}
		b, err := types.ToDomain(args[1])
		if err != nil {
			return nil, err
		}
		return types.NewDomain(fn(a, b)), nil
	}
}
