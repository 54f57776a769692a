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


// Package funcs provides a framework for the built-in functions. The built-ins
// themselves live in the core packages, and are grouped into modules which are
// added to a registry together.
package funcs

import (
	"fmt"

	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/util/errwrap"
)

// Module is a named group of built-ins.
type Module struct {
	// Name is used in log and error messages.
	Name string

	Builtins []*interfaces.Builtin
}

// Register adds every built-in of every module to the registry. All of the
// problems that are found are returned together.
func Register(registry *interfaces.Registry, modules ...*Module) error {
	var reterr error
	for _, module := range modules {
		if module == nil {
			reterr = errwrap.Append(reterr, fmt.Errorf("nil module"))
			continue
		}
		for _, b := range module.Builtins {
			if err := registry.Register(b); err != nil {
				reterr = errwrap.Append(reterr, errwrap.Wrapf(err, "module %s", module.Name))
			}
		}
	}
	return reterr
}
