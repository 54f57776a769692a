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

package types

import (
	"fmt"

	"github.com/mathlang/mathlang/util"
)

// These are the kinds of failure that evaluation can produce. Every one of them
// is terminal for the current top-level evaluation.
const (
	// ErrType means a coercion was applied to an incompatible variant.
	ErrType = util.Error("TypeError")

	// ErrArithmetic means a division or modulo by zero.
	ErrArithmetic = util.Error("ArithmeticError")

	// ErrUndefined means a name was not found in any of the tables.
	ErrUndefined = util.Error("UndefinedNameError")

	// ErrArity means a function was called with the wrong number of args.
	ErrArity = util.Error("ArityError")

	// ErrDomain means an argument is not a member of the function domain.
	ErrDomain = util.Error("DomainError")

	// ErrIndex means a set index was out of bounds.
	ErrIndex = util.Error("IndexError")

	// ErrInput means that read got something which is not a number.
	ErrInput = util.Error("InputError")

	// ErrRecursion means the call depth limit was exceeded.
	ErrRecursion = util.Error("RecursionError")
)

// Error is a failure of a particular kind along with a message describing it.
// It unwraps to its kind, so that errors.Is(err, ErrDomain) works even after
// the error has been wrapped with more context.
type Error struct {
	Kind util.Error
	Msg  string
}

// Error displays this error with its kind first.
func (e *Error) Error() string {
	if e.Msg == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap returns the kind of this error.
func (e *Error) Unwrap() error { return e.Kind }

// Errorf builds a new error of the given kind.
func Errorf(kind util.Error, format string, v ...interface{}) error {
	return &Error{
		Kind: kind,
		Msg:  fmt.Sprintf(format, v...),
	}
}
