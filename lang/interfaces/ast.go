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


// Package interfaces contains the common interfaces and the execution context
// which the different parts of the language share.
package interfaces

import (
	"fmt"

	"github.com/mathlang/mathlang/lang/types"
)

// Node represents either a Stmt or an Expr. It contains the minimum set of
// methods that they must both implement. In practice it is not used especially
// often since we usually know which kind of node we want.
type Node interface {
	fmt.Stringer

	// Apply is a general purpose iterator method that operates on any node.
	Apply(fn func(Node) error) error
}

// Stmt represents a statement node in the language. A stmt could be a variable
// definition, a function definition, or an expression that runs for its value.
type Stmt interface {
	Node

	// Exec runs the statement in the scope. It returns the scope that any
	// following statements should run in, which is a new scope if this
	// statement defined something. The value is nil if the statement does
	// not produce one.
	Exec(*Scope) (*Scope, types.Value, error)
}

// Expr represents an expression in the language. Expr implementations must have
// their method receivers implemented as pointer receivers so that they can be
// easily copied and moved around.
type Expr interface {
	Node

	// Eval evaluates the expression in the scope and returns the resulting
	// value. The scope is never modified.
	Eval(*Scope) (types.Value, error)
}
