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


// Package coreio contains the built-ins which talk to the outside world.
package coreio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mathlang/mathlang/lang/funcs"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util/errwrap"
)

// ModuleName is the prefix given to all the functions in this module.
const ModuleName = "io"

// Module returns the io built-ins.
func Module() *funcs.Module {
	return &funcs.Module{
		Name: ModuleName,
		Builtins: []*interfaces.Builtin{
			{
				Name:     "print",
				Sig:      "print(v...)",
				Doc:      "write each value on its own line",
				Arity:    0,
				Variadic: true,
				Sink:     true,
				Fn:       Print,
			},
			{
				Name:  "read",
				Sig:   "read()",
				Doc:   "prompt for a number and read it from a line of input",
				Arity: 0,
				Fn:    Read,
			},
		},
	}
}

// Print writes the display form of each of the args followed by a newline. It
// returns the default value.
func Print(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	w := scope.Runtime.Stdout
	if w == nil {
		w = io.Discard
	}
	for _, x := range args {
		if _, err := fmt.Fprintln(w, x.String()); err != nil {
			return nil, errwrap.Wrapf(err, "could not print")
		}
	}
	return types.Default(), nil
}

// Read writes the prompt and then parses a number from the next line of input.
// Running out of input or a line which isn't a number is an InputError.
func Read(scope *interfaces.Scope, args []types.Value) (types.Value, error) {
	if scope.Runtime.Stdin == nil {
		return nil, types.Errorf(types.ErrInput, "no input available")
	}
	if w := scope.Runtime.Stdout; w != nil && scope.Runtime.Prompt != "" {
		fmt.Fprint(w, scope.Runtime.Prompt)
	}

	line, err := scope.Runtime.Stdin.ReadString('\n')
	if err == io.EOF && line == "" {
		return nil, types.Errorf(types.ErrInput, "end of input")
	}
	if err != nil && err != io.EOF {
		return nil, types.Errorf(types.ErrInput, "could not read: %v", err)
	}

	s := strings.TrimSpace(line)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, types.Errorf(types.ErrInput, "`%s` is not a number", s)
	}
	return types.NewNumber(f), nil
}
