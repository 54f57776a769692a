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

package util

import (
	"testing"
)

func TestNumToAlpha1(t *testing.T) {
	var numToAlphaTests = []struct {
		number int
		result string
	}{
		{0, "a"},
		{25, "z"},
		{26, "aa"},
		{27, "ab"},
		{702, "aaa"},
		{703, "aab"},
		{63269, "cool"},
	}

	for _, test := range numToAlphaTests {
		actual := NumToAlpha(test.number)
		if actual != test.result {
			t.Errorf("NumToAlpha(%d): expected %s, actual %s", test.number, test.result, actual)
		}
	}
}

func TestStrFirstDuplicate1(t *testing.T) {
	if s, ok := StrFirstDuplicate([]string{"a", "b", "c"}); ok {
		t.Errorf("unexpected duplicate: %s", s)
	}
	if s, ok := StrFirstDuplicate([]string{"a", "b", "a", "b"}); !ok || s != "a" {
		t.Errorf("expected duplicate `a`, got: %s", s)
	}
}

func TestSortedKeys1(t *testing.T) {
	m := map[string]int{"z": 1, "a": 2, "m": 3}
	keys := SortedKeys(m)
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "m" || keys[2] != "z" {
		t.Errorf("unexpected keys: %+v", keys)
	}
}

func TestFormatFloat1(t *testing.T) {
	var formatTests = []struct {
		f      float64
		result string
	}{
		{0, "0"},
		{10, "10"},
		{-2.5, "-2.5"},
		{0.1, "0.1"},
		{1e6, "1000000"},
		{1e21, "1e+21"},
		{0.00001, "0.00001"},
	}

	for _, test := range formatTests {
		if actual := FormatFloat(test.f); actual != test.result {
			t.Errorf("FormatFloat(%v): expected %s, actual %s", test.f, test.result, actual)
		}
	}
}

func TestError1(t *testing.T) {
	const errFoo = Error("foo")
	var err error = errFoo
	if err != errFoo {
		t.Errorf("constant errors should compare equal")
	}
	if err.Error() != "foo" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
