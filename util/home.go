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
	"fmt"
	"os/user"
	"path/filepath"
	"strings"
)

// ExpandHome expands a leading ~ or ~name into the home dir of the current or
// the named user. Any other path is returned unchanged. This is used for paths
// that come from the command line, such as the history file of the REPL.
func ExpandHome(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	name, rest, _ := strings.Cut(p[len("~"):], "/")

	var usr *user.User
	var err error
	if name == "" {
		usr, err = user.Current()
	} else {
		usr, err = user.Lookup(name)
	}
	if err != nil {
		return p, fmt.Errorf("can't expand ~%s into a home directory", name)
	}
	return filepath.Join(usr.HomeDir, rest), nil
}
