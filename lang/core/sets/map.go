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


package coresets

import (
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
)

// Map applies the function in the last arg to each element of each of the other
// args, which are coerced to sets. The results are collected in order.
func Map(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	fn := args[len(args)-1]

	values := []types.Value{}
	for _, arg := range args[:len(args)-1] {
		s, err := types.ToSet(arg, scope)
		if err != nil {
			return nil, err
		}
		for _, x := range s.V {
			result, err := scope.CallValue(fn, []types.Value{x})
			if err != nil {
				return nil, err
			}
			values = append(values, result)
		}
	}
	return types.NewSet(values...), nil
}
