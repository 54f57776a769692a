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


package simple

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
)

func TestUnary1(t *testing.T) {
	b := Unary("sqrt", "square root", math.Sqrt)
	if b.Sig != "sqrt(a)" {
		t.Errorf("unexpected signature: %s", b.Sig)
	}
	if !b.Unary() {
		t.Errorf("expected a unary built-in")
	}
	scope := interfaces.EmptyScope()
	result, err := b.Call(scope, []types.Value{types.NewNumber(9)})
	if err != nil {
		t.Fatalf("call failed: %+v", err)
	}
	if s := result.String(); s != "3" {
		t.Errorf("unexpected result: %s", s)
	}
	if _, err := b.Call(scope, []types.Value{types.NewSet()}); !errors.Is(err, types.ErrType) {
		t.Errorf("expected a type error, got: %+v", err)
	}
	if _, err := b.Call(scope, []types.Value{}); !errors.Is(err, types.ErrArity) {
		t.Errorf("expected an arity error, got: %+v", err)
	}
}

func TestBinary1(t *testing.T) {
	b := Binary("hypot", "hypotenuse", func(x, y float64) (float64, error) {
		return math.Hypot(x, y), nil
	})
	if b.Sig != "hypot(a, b)" {
		t.Errorf("unexpected signature: %s", b.Sig)
	}
	scope := interfaces.EmptyScope()
	result, err := b.Call(scope, []types.Value{types.NewNumber(3), types.NewNumber(4)})
	if err != nil {
		t.Fatalf("call failed: %+v", err)
	}
	if s := result.String(); s != "5" {
		t.Errorf("unexpected result: %s", s)
	}
	_, err = b.Call(scope, []types.Value{types.NewNumber(3), types.NewFunc("sin")})
	if !errors.Is(err, types.ErrType) {
		t.Errorf("expected a type error, got: %+v", err)
	} else if !strings.HasPrefix(err.Error(), "arg b: ") {
		t.Errorf("expected the arg to be named, got: %s", err)
	}
}
