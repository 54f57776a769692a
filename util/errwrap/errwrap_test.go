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

package errwrap

import (
	"fmt"
	"testing"
)

func TestWrapfErr1(t *testing.T) {
	if err := Wrapf(nil, "whatever: %d", 42); err != nil {
		t.Errorf("expected nil result")
	}
}

func TestWrapfErr2(t *testing.T) {
	inner := fmt.Errorf("inner")
	err := Wrapf(inner, "outer %d", 1)
	if s := err.Error(); s != "outer 1: inner" {
		t.Errorf("unexpected message: %s", s)
	}
	if !Is(err, inner) {
		t.Errorf("expected wrapped error to match")
	}
}

func TestAppendErr1(t *testing.T) {
	if err := Append(nil, nil); err != nil {
		t.Errorf("expected nil result")
	}
}

func TestAppendErr2(t *testing.T) {
	reterr := fmt.Errorf("reterr")
	if err := Append(reterr, nil); err != reterr {
		t.Errorf("expected reterr")
	}
}

func TestAppendErr3(t *testing.T) {
	err := fmt.Errorf("err")
	if reterr := Append(nil, err); reterr != err {
		t.Errorf("expected err")
	}
}

func TestAppendIs1(t *testing.T) {
	err1 := fmt.Errorf("err1")
	err2 := fmt.Errorf("err2")
	err3 := fmt.Errorf("err3")
	reterr := Append(err1, Wrapf(err2, "wrapped"))
	if !Is(reterr, err1) {
		t.Errorf("expected err1 in chain")
	}
	if !Is(reterr, err2) {
		t.Errorf("expected err2 in chain")
	}
	if Is(reterr, err3) {
		t.Errorf("did not expect err3 in chain")
	}
	if Is(nil, err3) {
		t.Errorf("nil matches nothing")
	}
}
