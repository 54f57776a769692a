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


// Package lang is the mathematical language front end. It finds and parses the
// program, builds the initial scope, and runs it.
package lang

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/mathlang/mathlang/lang/ast"
	"github.com/mathlang/mathlang/lang/core"
	"github.com/mathlang/mathlang/lang/interfaces"
	"github.com/mathlang/mathlang/lang/interpret"
	"github.com/mathlang/mathlang/lang/parser"
	"github.com/mathlang/mathlang/lang/types"
	"github.com/mathlang/mathlang/util"
	"github.com/mathlang/mathlang/util/errwrap"

	"github.com/spf13/afero"
)

// Lang is the main language object. It holds the scope that programs are run
// in, so that a series of snippets can build on each other in a REPL.
type Lang struct {
	Fs afero.Fs // filesystem where the input and the config exist

	// Input is a string which specifies what the lang should run. If it
	// is a single dash (-), then the program is read from Stdin. If it is
	// the path of a .mth file, then that is run. If it is the path of a
	// directory, then the main.mth file in it is run. If none of those
	// match, it will attempt to run the raw string as code. It is only
	// used by Run.
	Input string

	// Config is used for the runtime parameters. If it is nil, then the
	// defaults are used.
	Config *Config

	// Stdin is where read gets its input from. It is also where the
	// program comes from if the input says so.
	Stdin io.Reader

	// Stdout is where print and graph write to.
	Stdout io.Writer

	// Plotter renders the output of graph. If it is nil, then the graph
	// built-in draws in the terminal.
	Plotter interfaces.Plotter

	Debug bool
	Logf  func(format string, v ...interface{})

	registry *interfaces.Registry
	scope    *interfaces.Scope
}

// Init builds the registry of built-ins and the initial scope, and loads the
// prelude. It must be called before Run or Eval.
func (obj *Lang) Init() error {
	if obj.Config == nil {
		obj.Config = DefaultConfig()
	}
	if err := obj.Config.Validate(); err != nil {
		return errwrap.Wrapf(err, "invalid config")
	}

	registry, err := core.BuildRegistry()
	if err != nil {
		return errwrap.Wrapf(err, "could not build the registry")
	}
	obj.registry = registry
	if obj.Debug {
		obj.Logf("built-ins: %v", registry.Names())
	}

	var stdin *bufio.Reader
	if obj.Stdin != nil {
		stdin = bufio.NewReader(obj.Stdin)
	}
	runtime := &interfaces.Runtime{
		Stdout:   obj.Stdout,
		Stdin:    stdin,
		Prompt:   obj.Config.Prompt,
		Plotter:  obj.Plotter,
		Graph:    obj.Config.Graph,
		MaxDepth: obj.Config.MaxDepth,
		Debug:    obj.Debug,
		Logf: func(format string, v ...interface{}) {
			obj.Logf("runtime: "+format, v...)
		},
	}

	variables := core.Variables()
	for _, name := range util.SortedKeys(obj.Config.Variables) {
		if _, exists := registry.Lookup(name); exists {
			return fmt.Errorf("variable `%s` has the name of a built-in", name)
		}
		variables[name] = types.NewNumber(obj.Config.Variables[name])
	}

	obj.scope = &interfaces.Scope{
		Variables: variables,
		Functions: make(map[string]*interfaces.Function),
		Registry:  registry,
		Runtime:   runtime,
	}

	obj.Logf("loading prelude...")
	names, err := core.AssetNames()
	if err != nil {
		return errwrap.Wrapf(err, "could not list the prelude")
	}
	for _, name := range names {
		b, err := core.Asset(name)
		if err != nil {
			return errwrap.Wrapf(err, "could not read `%s`", name)
		}
		prog, err := parser.LexParseFile(bytes.NewReader(b), name)
		if err != nil {
			return errwrap.Wrapf(err, "could not parse the prelude")
		}
		scope, err := prog.Hoist(obj.scope)
		if err != nil {
			return errwrap.Wrapf(err, "could not load `%s`", name)
		}
		obj.scope = scope
	}
	return nil
}

// Scope returns the current scope.
func (obj *Lang) Scope() *interfaces.Scope {
	return obj.scope
}

// Parse finds the program that the input refers to and builds an AST from it.
func (obj *Lang) Parse() (*ast.StmtProg, error) {
	if obj.Debug {
		obj.Logf("input: %s", obj.Input)
	}
	var stdin io.Reader
	if obj.scope.Runtime.Stdin != nil { // avoid a non-nil interface
		stdin = obj.scope.Runtime.Stdin
	}
	output, err := ParseInput(obj.Input, obj.Fs, stdin)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not activate an input parser")
	}

	obj.Logf("lexing/parsing...")
	prog, err := parser.LexParseFile(bytes.NewReader(output.Main), output.Name)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not generate AST")
	}
	if obj.Debug {
		obj.Logf("behold, the AST: %s", prog)
	}
	return prog, nil
}

// Run parses and runs the program named by the input. It returns the value of
// the last expression in the program, which may be nil.
func (obj *Lang) Run() (types.Value, error) {
	prog, err := obj.Parse()
	if err != nil {
		return nil, err
	}
	return obj.Interpret(prog)
}

// Interpret runs an already parsed program. The scope that it leaves behind is
// kept for the next run.
func (obj *Lang) Interpret(prog *ast.StmtProg) (types.Value, error) {
	interpreter := &interpret.Interpreter{
		Debug: obj.Debug,
		Logf: func(format string, v ...interface{}) {
			obj.Logf("interpret: "+format, v...)
		},
	}
	scope, result, err := interpreter.Interpret(prog, obj.scope)
	if err != nil {
		return nil, errwrap.Wrapf(err, "could not interpret")
	}
	obj.scope = scope
	return result, nil
}

// Eval runs a snippet of code in the current scope, such as a line of the REPL.
// The returned string is what should be displayed. It is empty unless the
// snippet ends with an expression, and that expression isn't a call that is
// only run for its side effect.
func (obj *Lang) Eval(code string) (string, error) {
	prog, err := parser.LexParseString(code)
	if err != nil {
		return "", err
	}
	result, err := obj.Interpret(prog)
	if err != nil {
		return "", err
	}
	if result == nil || !obj.echo(prog) {
		return "", nil
	}
	return result.String(), nil
}

// echo returns true if the value of the program should be displayed.
func (obj *Lang) echo(prog *ast.StmtProg) bool {
	if len(prog.Body) == 0 {
		return false
	}
	stmt, ok := prog.Body[len(prog.Body)-1].(*ast.StmtExpr)
	if !ok {
		return false
	}
	call, ok := stmt.Expr.(*ast.ExprCall)
	if !ok || call.Deriv > 0 {
		return true
	}
	b, exists := obj.registry.Lookup(call.Name)
	return !exists || !b.Sink
}
