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


package coremath

import (
	"math"

	"github.com/mathlang/mathlang/lang/types"
)

// Nrt returns the nth root of x, which is x to the power of 1/n. Odd integer
// roots of negative numbers are real.
func Nrt(x, n float64) (float64, error) {
	if n == 0 {
		return 0, types.Errorf(types.ErrArithmetic, "can't take the zeroth root")
	}
	if x < 0 && math.Trunc(n) == n && math.Mod(n, 2) != 0 {
		return -math.Pow(-x, 1/n), nil
	}
	return math.Pow(x, 1/n), nil
}
