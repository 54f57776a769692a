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
	"os/user"
	"path/filepath"
	"testing"
)

func TestExpandHome1(t *testing.T) {
	usr, err := user.Current()
	if err != nil {
		t.Skipf("no current user: %+v", err)
	}
	home := filepath.Clean(usr.HomeDir)

	type test struct {
		path string
		exp  string
	}
	values := []test{
		{"/some/random/path", "/some/random/path"},
		{"relative/path", "relative/path"},
		{"~", home},
		{"~/", home},
		{"~/.mathlang_history", filepath.Join(home, ".mathlang_history")},
		{"~" + usr.Username + "/", home},
		{"~" + usr.Username + "/some/path", filepath.Join(home, "some/path")},
	}
	for index, tc := range values {
		out, err := ExpandHome(tc.path)
		if err != nil {
			t.Errorf("test #%d: could not expand home: %+v", index, err)
			continue
		}
		if out != tc.exp {
			t.Errorf("test #%d: input: %s, expected: %s, got: %s", index, tc.path, tc.exp, out)
		}
	}
}

func TestExpandHomeErr1(t *testing.T) {
	if _, err := ExpandHome("~no-such-user-for-mathlang/x"); err == nil {
		t.Errorf("expected an unknown user to fail")
	}
}
