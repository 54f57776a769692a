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

package types

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestToNumber1(t *testing.T) {
	type test struct { // an individual test
		name string
		v    Value
		fail bool
		exp  float64
	}
	values := []test{}

	{
		values = append(values, test{
			name: "number",
			v:    NewNumber(3.5),
			exp:  3.5,
		})
	}
	{
		values = append(values, test{
			name: "true",
			v:    NewBool(true),
			exp:  1.0,
		})
	}
	{
		values = append(values, test{
			name: "false",
			v:    NewBool(false),
			exp:  0.0,
		})
	}
	{
		values = append(values, test{
			name: "set",
			v:    NewSet(NewNumber(1)),
			fail: true,
		})
	}
	{
		values = append(values, test{
			name: "func",
			v:    NewFunc("f"),
			fail: true,
		})
	}
	{
		values = append(values, test{
			name: "domain",
			v:    NewDomain(Real()),
			fail: true,
		})
	}

	for index, tc := range values { // run all the tests
		f, err := ToNumber(tc.v)
		if !tc.fail && err != nil {
			t.Errorf("test #%d (%s): FAIL", index, tc.name)
			t.Errorf("test #%d (%s): error: %+v", index, tc.name, err)
			continue
		}
		if tc.fail {
			if err == nil {
				t.Errorf("test #%d (%s): FAIL", index, tc.name)
				t.Errorf("test #%d (%s): expected error", index, tc.name)
			} else if !errors.Is(err, ErrType) {
				t.Errorf("test #%d (%s): FAIL", index, tc.name)
				t.Errorf("test #%d (%s): expected TypeError, got: %+v", index, tc.name, err)
			}
			continue
		}
		if f != tc.exp {
			t.Errorf("test #%d (%s): FAIL", index, tc.name)
			t.Errorf("test #%d (%s): got %v, expected %v", index, tc.name, f, tc.exp)
		}
	}
}

func TestToSet1(t *testing.T) {
	s, err := ToSet(NewNumber(7), nil)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if s.Len() != 1 || s.String() != "{7}" {
		t.Errorf("expected singleton, got: %s", s)
	}

	set := NewSet(NewNumber(1), NewNumber(2))
	if s, err := ToSet(set, nil); err != nil || s != set {
		t.Errorf("a set should coerce to itself")
	}

	if _, err := ToSet(NewDomain(Real()), nil); !errors.Is(err, ErrType) {
		t.Errorf("expected TypeError for an infinite domain, got: %+v", err)
	}

	// a finite symbolic set can be enumerated
	d := &IntersectionDomain{
		A: Real(),
		B: &EnumDomain{V: []Value{NewNumber(1), NewNumber(2.5), NewBool(true)}},
	}
	s, err = ToSet(NewDomain(d), nil)
	if err != nil {
		t.Errorf("error: %+v", err)
		return
	}
	if str := s.String(); str != "{1, 2.5, true}" {
		t.Errorf("unexpected enumeration: %s", str)
	}
}

func TestToFuncName1(t *testing.T) {
	if name, err := ToFuncName(NewFunc("sin")); err != nil || name != "sin" {
		t.Errorf("unexpected result: %s, %+v", name, err)
	}
	if _, err := ToFuncName(NewNumber(1)); !errors.Is(err, ErrType) {
		t.Errorf("expected TypeError, got: %+v", err)
	}
}

func TestToIndex1(t *testing.T) {
	if i, err := ToIndex(NewNumber(2)); err != nil || i != 2 {
		t.Errorf("unexpected result: %d, %+v", i, err)
	}
	if _, err := ToIndex(NewNumber(1.5)); !errors.Is(err, ErrIndex) {
		t.Errorf("expected IndexError, got: %+v", err)
	}
	if _, err := ToIndex(NewSet()); !errors.Is(err, ErrType) {
		t.Errorf("expected TypeError, got: %+v", err)
	}
}

func TestEqual1(t *testing.T) {
	type test struct { // an individual test
		name string
		a, b Value
		fail bool
		exp  bool
	}
	values := []test{
		{"numbers", NewNumber(2), NewNumber(2), false, true},
		{"numbers differ", NewNumber(2), NewNumber(3), false, false},
		{"bool and number", NewBool(true), NewNumber(1), false, true},
		{"sets", NewSet(NewNumber(1), NewNumber(2)), NewSet(NewNumber(1), NewNumber(2)), false, true},
		{"set order", NewSet(NewNumber(1), NewNumber(2)), NewSet(NewNumber(2), NewNumber(1)), false, false},
		{"set length", NewSet(NewNumber(1)), NewSet(NewNumber(1), NewNumber(1)), false, false},
		{"funcs", NewFunc("f"), NewFunc("f"), false, true},
		{"number and set", NewNumber(1), NewSet(NewNumber(1)), true, false},
		{"domains", NewDomain(Real()), NewDomain(Real()), true, false},
	}

	for index, tc := range values {
		eq, err := Equal(tc.a, tc.b)
		if tc.fail {
			if !errors.Is(err, ErrType) {
				t.Errorf("test #%d (%s): expected TypeError, got: %+v", index, tc.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("test #%d (%s): error: %+v", index, tc.name, err)
			continue
		}
		if eq != tc.exp {
			t.Errorf("test #%d (%s): got %t, expected %t", index, tc.name, eq, tc.exp)
		}
	}
}

func TestSetGetSet1(t *testing.T) {
	s := NewSet(NewNumber(1), NewNumber(2), NewNumber(3))
	for i := 0; i < s.Len(); i++ {
		v := NewNumber(float64(i * 10))
		s2, err := s.Set(i, v)
		if err != nil {
			t.Errorf("set %d: %+v", i, err)
			continue
		}
		got, err := s2.Get(i)
		if err != nil {
			t.Errorf("get %d: %+v", i, err)
			continue
		}
		if eq, err := Equal(got, v); err != nil || !eq {
			t.Errorf("round trip at %d failed: got %s", i, got)
		}
	}
	if str := s.String(); str != "{1, 2, 3}" {
		t.Errorf("original set was mutated: %s", str)
	}

	if _, err := s.Get(3); !errors.Is(err, ErrIndex) {
		t.Errorf("expected IndexError, got: %+v", err)
	}
	if _, err := s.Set(-1, NewNumber(0)); !errors.Is(err, ErrIndex) {
		t.Errorf("expected IndexError, got: %+v", err)
	}
}

func TestString1(t *testing.T) {
	values := map[string]Value{
		"1":                   NewNumber(1),
		"0.25":                NewNumber(0.25),
		"inf":                 NewNumber(math.Inf(1)),
		"true":                NewBool(true),
		"{}":                  NewSet(),
		"{1, {2, false}}":     NewSet(NewNumber(1), NewSet(NewNumber(2), NewBool(false))),
		"Integer":             NewDomain(&BaseDomain{Set: BaseInteger}),
		"union(Real, {1, 2})": NewDomain(&UnionDomain{A: Real(), B: &EnumDomain{V: []Value{NewNumber(1), NewNumber(2)}}}),
	}
	for exp, v := range values {
		if s := v.String(); s != exp {
			t.Errorf("expected %s, got %s", exp, s)
		}
	}
}

func TestErrorKind1(t *testing.T) {
	err := Errorf(ErrDomain, "argument %d", 3)
	if s := err.Error(); s != "DomainError: argument 3" {
		t.Errorf("unexpected message: %s", s)
	}
	wrapped := errors.Wrapf(err, "in function f")
	if !errors.Is(wrapped, ErrDomain) {
		t.Errorf("kind was lost when wrapping")
	}
	if errors.Is(wrapped, ErrIndex) {
		t.Errorf("wrong kind matched")
	}
}
