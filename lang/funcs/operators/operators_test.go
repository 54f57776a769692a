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


package operators

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/mathlang/mathlang/lang/types"
)

func TestOperators1(t *testing.T) {
	type test struct { // an individual test
		op  string
		a   types.Value
		b   types.Value
		exp types.Value
		err error
	}
	values := []test{}

	values = append(values, test{
		op:  "+",
		a:   types.NewNumber(2),
		b:   types.NewBool(true),
		exp: types.NewNumber(3),
	})
	values = append(values, test{
		op:  "-",
		a:   types.NewNumber(2),
		b:   types.NewNumber(5),
		exp: types.NewNumber(-3),
	})
	values = append(values, test{
		op:  "*",
		a:   types.NewNumber(2.5),
		b:   types.NewNumber(4),
		exp: types.NewNumber(10),
	})
	values = append(values, test{
		op:  "/",
		a:   types.NewNumber(1),
		b:   types.NewNumber(4),
		exp: types.NewNumber(0.25),
	})
	values = append(values, test{
		op:  "/",
		a:   types.NewNumber(1),
		b:   types.NewNumber(0),
		err: types.ErrArithmetic,
	})
	values = append(values, test{
		op:  "%",
		a:   types.NewNumber(7.5),
		b:   types.NewNumber(2),
		exp: types.NewNumber(1.5),
	})
	values = append(values, test{
		op:  "%",
		a:   types.NewNumber(7),
		b:   types.NewBool(false),
		err: types.ErrArithmetic,
	})
	values = append(values, test{
		op:  "^",
		a:   types.NewNumber(2),
		b:   types.NewNumber(10),
		exp: types.NewNumber(1024),
	})
	values = append(values, test{
		op:  "+",
		a:   types.NewNumber(2),
		b:   types.NewSet(),
		err: types.ErrType,
	})
	values = append(values, test{
		op:  "==",
		a:   types.NewSet(types.NewNumber(1), types.NewNumber(2)),
		b:   types.NewSet(types.NewNumber(1), types.NewBool(false)),
		exp: types.NewBool(false),
	})
	values = append(values, test{
		op:  "==",
		a:   types.NewBool(true),
		b:   types.NewNumber(1),
		exp: types.NewBool(true),
	})
	values = append(values, test{
		op:  "!=",
		a:   types.NewNumber(1),
		b:   types.NewSet(types.NewNumber(1)),
		err: types.ErrType,
	})
	values = append(values, test{
		op:  "<",
		a:   types.NewNumber(1),
		b:   types.NewNumber(2),
		exp: types.NewBool(true),
	})
	values = append(values, test{
		op:  ">=",
		a:   types.NewNumber(1),
		b:   types.NewNumber(2),
		exp: types.NewBool(false),
	})
	values = append(values, test{
		op:  "<=",
		a:   types.NewNumber(2),
		b:   types.NewNumber(2),
		exp: types.NewBool(true),
	})
	values = append(values, test{
		op:  ">",
		a:   types.NewFunc("sin"),
		b:   types.NewNumber(2),
		err: types.ErrType,
	})

	for index, tc := range values {
		op, err := LookupOperator(tc.op)
		if err != nil {
			t.Errorf("test #%d: lookup of `%s` failed: %+v", index, tc.op, err)
			continue
		}
		result, err := op.F(tc.a, tc.b)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("test #%d: expected error %v, got: %+v", index, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test #%d: error: %+v", index, err)
			continue
		}
		if eq, err := types.Equal(result, tc.exp); err != nil || !eq || result.Kind() != tc.exp.Kind() {
			t.Errorf("test #%d: %s %s %s", index, tc.a, tc.op, tc.b)
			t.Logf("test #%d:   got: %s", index, spew.Sdump(result))
			t.Logf("test #%d:   exp: %s", index, spew.Sdump(tc.exp))
		}
	}
}

func TestLookupOperator1(t *testing.T) {
	if _, err := LookupOperator("E"); err == nil {
		t.Errorf("belongs is not a plain operator")
	}
	if l := len(Operators()); l != 12 {
		t.Errorf("expected 12 operators, got %d", l)
	}
}
