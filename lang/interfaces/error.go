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


package interfaces

import (
	"github.com/mathlang/mathlang/util"
)

const (
	// ErrRedefined is returned when a function is defined twice, or when it
	// would hide a built-in of the same name.
	ErrRedefined = util.Error("function redefined")

	// ErrBadParams is returned when a function is defined with a parameter
	// list that isn't valid, such as one with duplicate names.
	ErrBadParams = util.Error("invalid parameters")
)
