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


package coremath

import (
	"errors"
	"math"
	"testing"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/stretchr/testify/assert"
)

func TestNrt1(t *testing.T) {
	type test struct { // an individual test
		x, n float64
		exp  float64
	}
	values := []test{
		{27, 3, 3},
		{-27, 3, -3},
		{16, 4, 2},
		{2, 1, 2},
		{4, -2, 0.5},
	}
	for index, tc := range values {
		result, err := Nrt(tc.x, tc.n)
		if err != nil {
			t.Errorf("test #%d: error: %+v", index, err)
			continue
		}
		if math.Abs(result-tc.exp) > 1e-12 {
			t.Errorf("test #%d: nrt(%v, %v) = %v, expected %v", index, tc.x, tc.n, result, tc.exp)
		}
	}

	if result, err := Nrt(-16, 4); err != nil || !math.IsNaN(result) {
		t.Errorf("expected an even root of a negative to be nan, got %v (%+v)", result, err)
	}
	if _, err := Nrt(8, 0); !errors.Is(err, types.ErrArithmetic) {
		t.Errorf("expected an arithmetic error, got: %+v", err)
	}
}

func TestModule1(t *testing.T) {
	registry := interfaces.NewRegistry()
	for _, b := range Module().Builtins {
		assert.NoError(t, registry.Register(b))
	}
	scope := interfaces.EmptyScope()
	scope.Registry = registry

	call := func(name string, args ...float64) string {
		values := []types.Value{}
		for _, x := range args {
			values = append(values, types.NewNumber(x))
		}
		result, err := scope.Call(name, values)
		if !assert.NoError(t, err, name) {
			return ""
		}
		return result.String()
	}

	assert.Equal(t, "3", call("round", 2.5))
	assert.Equal(t, "-3", call("round", -2.5))
	assert.Equal(t, "3", call("ceil", 2.1))
	assert.Equal(t, "2", call("floor", 2.9))
	assert.Equal(t, "0", call("log", 1))
	assert.Equal(t, "0", call("sin", 0))
	assert.Equal(t, "1", call("cos", 0))
	assert.Equal(t, "0", call("tan", 0))
	assert.Equal(t, "3", call("sqrt", 9))
	assert.Equal(t, "-2", call("cbrt", -8))
	assert.Equal(t, "4.5", call("abs", -4.5))
	assert.Equal(t, "1", call("exp", 0))
	assert.Equal(t, "4", call("nrt", 16, 2))

	_, err := scope.Call("sqrt", []types.Value{types.NewSet()})
	assert.True(t, errors.Is(err, types.ErrType))
	_, err = scope.Call("nrt", []types.Value{types.NewNumber(8)})
	assert.True(t, errors.Is(err, types.ErrArity))
}
