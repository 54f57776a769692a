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

	"github.com/spf13/afero"
)

func TestReadFile1(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/main.mth", []byte("x = 42\n"), 0660); err != nil {
		t.Errorf("could not write file: %+v", err)
		return
	}

	if !IsFile(fs, "/main.mth") {
		t.Errorf("expected a file")
	}
	if IsFile(fs, "/") {
		t.Errorf("a directory is not a file")
	}
	if IsFile(fs, "/missing.mth") {
		t.Errorf("a missing file is not a file")
	}

	data, err := ReadFile(fs, "/main.mth")
	if err != nil {
		t.Errorf("could not read file: %+v", err)
		return
	}
	if s := string(data); s != "x = 42\n" {
		t.Errorf("unexpected contents: %s", s)
	}
}

func TestFsTree1(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/dir", 0770); err != nil {
		t.Errorf("could not mkdir: %+v", err)
		return
	}
	if err := afero.WriteFile(fs, "/dir/main.mth", []byte("1"), 0660); err != nil {
		t.Errorf("could not write file: %+v", err)
		return
	}

	tree, err := FsTree(fs, "/")
	if err != nil {
		t.Errorf("tree failed: %+v", err)
		return
	}
	exp := ".\n└── dir/\n    └── main.mth\n"
	if tree != exp {
		t.Errorf("unexpected tree:\n%s", tree)
	}
}
