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


// Package interpret contains the implementation of the actual interpret
// function that takes an AST and runs it against a scope.
package interpret

import (
	"github.com/mathlang/mathlang/lang/ast"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
)

// ErrRedefined is returned when a function is defined twice, or has the name of
// a built-in.
const ErrRedefined = interfaces.ErrRedefined

// Interpreter is a base struct for handling the Interpret operation. There is
// nothing stateful here, you don't need to preserve this between runs.
type Interpreter struct {
	// Debug represents if we're running in debug mode or not.
	Debug bool

	// Logf is a logger which should be used.
	Logf func(format string, v ...interface{})
}

// Interpret runs the program. Function definitions are hoisted so that they can
// be used before the point where they appear, and then the remaining statements
// are run in order. It returns the resulting scope and the value of the last
// statement which produced one, which may be nil.
func (obj *Interpreter) Interpret(prog *ast.StmtProg, scope *interfaces.Scope) (*interfaces.Scope, types.Value, error) {
	obj.Logf("interpreting...")

	scope, result, err := prog.Exec(scope)
	if err != nil {
		return nil, nil, err
	}
	if obj.Debug {
		obj.Logf("functions: %v", util.SortedKeys(scope.Functions))
	}
	return scope, result, nil
}
