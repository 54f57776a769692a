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


// Package core contains the built-in functions and predefined variables which
// every program starts with, as well as a prelude of functions which are
// written in the language itself.
package core

import (
	"embed"
	"io/fs"
	"math"

	coregraph "github.com/mathlang/mathlang/lang/core/graph"
	coreio "github.com/mathlang/mathlang/lang/core/io"
	coremath "github.com/mathlang/mathlang/lang/core/math"
	coresets "github.com/mathlang/mathlang/lang/core/sets"
	"github.com/mathlang/mathlang/lang/funcs"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/types"
)

//go:embed */*.mth
var mth embed.FS

// Modules returns every module of built-ins.
func Modules() []*funcs.Module {
	return []*funcs.Module{
		coremath.Module(),
		coresets.Module(),
		coreio.Module(),
		coregraph.Module(),
	}
}

// BuildRegistry returns a registry with every built-in in it.
func BuildRegistry() (*interfaces.Registry, error) {
	registry := interfaces.NewRegistry()
	if err := funcs.Register(registry, Modules()...); err != nil {
		return nil, err
	}
	return registry, nil
}

// Variables returns the predefined variables. The base sets are available by
// name as symbolic sets.
func Variables() map[string]types.Value {
	variables := map[string]types.Value{
		"true":  types.NewBool(true),
		"false": types.NewBool(false),
		"pi":    types.NewNumber(math.Pi),
		"e":     types.NewNumber(math.E),
	}
	for name, d := range types.BaseDomains() {
		variables[name] = types.NewDomain(d)
	}
	return variables
}

// AssetNames returns a flattened list of embedded .mth file paths.
func AssetNames() ([]string, error) {
	fileSystem := mth
	paths := []string{}
	if err := fs.WalkDir(fileSystem, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() { // skip the dirs
			return nil
		}
		paths = append(paths, path)
		return nil
	}); err != nil {
		return nil, err
	}
	return paths, nil
}

// Asset returns the contents of an embedded .mth file.
func Asset(name string) ([]byte, error) {
	return mth.ReadFile(name)
}
